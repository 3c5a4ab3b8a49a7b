// Package app wires configuration, logging, metrics, the recognition engine
// and scripts into one session used by the command line tools.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrInitialization indicates a component failed to start.
	ErrInitialization = errors.New("initialization failed")

	// ErrClosed indicates the application was already closed.
	ErrClosed = errors.New("application closed")
)

// InitError records which component failed during bootstrap.
type InitError struct {
	Component string
	Err       error
}

// Error implements the error interface.
func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

// Unwrap returns the underlying error.
func (e *InitError) Unwrap() error {
	return e.Err
}

// Is matches ErrInitialization.
func (e *InitError) Is(target error) bool {
	return target == ErrInitialization
}
