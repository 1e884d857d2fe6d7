package dictionary

import "errors"

var (
	// ErrEmptyPool is returned when filtering leaves no usable words.
	ErrEmptyPool = errors.New("no words in the source satisfy the length constraints")

	// ErrReadSource is returned when a file-backed word source cannot be read.
	ErrReadSource = errors.New("failed to read word source")
)
