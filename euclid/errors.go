package euclid

import "errors"

var (
	// ErrEmptyInput indicates a vector with no components.
	ErrEmptyInput = errors.New("euclid: input vectors must be non-empty")

	// ErrDimensionMismatch indicates vectors of different lengths.
	ErrDimensionMismatch = errors.New("euclid: vectors must have the same dimension")
)
