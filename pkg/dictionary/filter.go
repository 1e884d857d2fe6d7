package dictionary

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes to NFD, drops combining marks, and recomposes, so
// accented letters fold to their unaccented base form.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Filter retains the words whose rune length lies in [minLen, maxLen].
// Unless allowAccents is true, each retained word has its diacritics removed.
// Filtering an entire source down to nothing is fatal.
func Filter(words []string, minLen, maxLen int, allowAccents bool) ([]string, error) {
	pool := make([]string, 0, len(words))
	for _, word := range words {
		n := utf8.RuneCountInString(word)
		if n < minLen || n > maxLen {
			continue
		}
		if !allowAccents {
			word = RemoveAccents(word)
		}
		pool = append(pool, word)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: length %d to %d", ErrEmptyPool, minLen, maxLen)
	}
	return pool, nil
}

// RemoveAccents maps accented letters in s to their unaccented base form.
func RemoveAccents(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}
	return out
}

// ContainsAccents reports whether removing accents would change any word in
// the list. It informs the statistics engine when accented output is
// allowed; it plays no part in filtering.
func ContainsAccents(words []string) bool {
	for _, word := range words {
		if RemoveAccents(word) != word {
			return true
		}
	}
	return false
}
