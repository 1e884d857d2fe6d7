package random

import "errors"

var (
	// ErrNoSource is returned when a Cache has no random source attached.
	ErrNoSource = errors.New("no random source configured")

	// ErrNoValues is returned when the source responds with an empty batch.
	ErrNoValues = errors.New("random source returned no values")

	// ErrOutOfRange is returned when the source produces a value that is not
	// a finite number in [0,1]. The whole batch is rejected.
	ErrOutOfRange = errors.New("random source returned a value outside [0,1]")
)
