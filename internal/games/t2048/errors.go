package t2048

import "errors"

var (
	// ErrInvalidDirection is returned for input that names none of the four directions.
	ErrInvalidDirection = errors.New("t2048: invalid direction")

	// ErrMalformedGrid is returned for wrong dimensions or a cell value
	// that is neither 0 nor a power of two >= 2.
	ErrMalformedGrid = errors.New("t2048: malformed grid")
)
