package script

import "errors"

// Errors for script operations.
var (
	// ErrClosed is returned when operating on a closed runtime.
	ErrClosed = errors.New("script runtime is closed")

	// ErrTimeout is returned when a script runs past its deadline.
	ErrTimeout = errors.New("script execution timeout")
)
