package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// WordSource supplies a raw word list for password generation.
type WordSource interface {
	// WordList returns the words this source offers. Callers must not
	// mutate the returned slice.
	WordList() []string
	// SourceDescription identifies the source in logs and CLI output.
	SourceDescription() string
}

// SliceSource adapts an in-memory word list to the WordSource interface.
type SliceSource struct {
	words       []string
	description string
}

// NewSliceSource wraps a word slice. The slice is copied so later mutations
// by the caller cannot reach the generator.
func NewSliceSource(words []string, description string) *SliceSource {
	copied := make([]string, len(words))
	copy(copied, words)
	if description == "" {
		description = fmt.Sprintf("in-memory list of %d words", len(copied))
	}
	return &SliceSource{words: copied, description: description}
}

func (s *SliceSource) WordList() []string { return s.words }

func (s *SliceSource) SourceDescription() string { return s.description }

// FileSource reads words from a text file, one word per line. Blank lines
// and lines starting with # are skipped.
type FileSource struct {
	path  string
	words []string
}

// NewFileSource loads the word file at path.
func NewFileSource(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadSource, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrReadSource, err)
	}
	return &FileSource{path: path, words: words}, nil
}

func (s *FileSource) WordList() []string { return s.words }

func (s *FileSource) SourceDescription() string {
	return fmt.Sprintf("word file %s (%d words)", s.path, len(s.words))
}

// Default returns the built-in English word source.
func Default() *SliceSource {
	return &SliceSource{
		words:       defaultWords,
		description: fmt.Sprintf("built-in English list (%d words)", len(defaultWords)),
	}
}
