package toolkit

import "errors"

// Sentinel errors for the toolkit package.
var (
	// ErrNotInitialized is returned when tools are requested (or invoked)
	// before a successful Initialize, or after Close.
	ErrNotInitialized = errors.New("toolkit: not initialized")
)
