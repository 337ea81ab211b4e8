package vector

import "errors"

var (
	// ErrOutOfRange signals an index outside of the vector's elements.
	ErrOutOfRange = errors.New("vector: index out of range")
	// ErrLength signals a requested size beyond MaxLen.
	ErrLength = errors.New("vector: length exceeds maximum")
)
