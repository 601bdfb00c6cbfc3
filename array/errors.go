package array

import "errors"

var (
	// ErrInvalidArgument is returned for a negative capacity or offset, or for a
	// destination too small to receive the elements.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when an index falls outside the valid logical bounds.
	ErrOutOfRange = errors.New("index out of range")
)
