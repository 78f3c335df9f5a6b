package dom

import "errors"

// Sentinel errors for element handling.
var (
	ErrNoElement = errors.New("document contains no element")
)
