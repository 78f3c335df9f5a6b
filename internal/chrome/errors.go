package chrome

import "errors"

// Sentinel errors for browser operations.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrElementFind    = errors.New("failed to find element")
	ErrSnapshot       = errors.New("failed to snapshot element")
	ErrScreenshot     = errors.New("failed to screenshot element")
	ErrNotLive        = errors.New("element is not attached to a live page")
)
