package domain

import "errors"

var (
	// ErrNotFound signals that no company matched the lookup.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput signals a malformed or out-of-range request parameter.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnavailable signals that the backing store could not be reached.
	ErrUnavailable = errors.New("store unavailable")
)
