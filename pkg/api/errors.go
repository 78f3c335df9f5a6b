package api

import "errors"

// Sentinel errors for generation.
var (
	// ErrInvalidElement reports that the content root is not a valid
	// element-like node. It is returned before any rasterization happens.
	ErrInvalidElement = errors.New("invalid input element")
)
