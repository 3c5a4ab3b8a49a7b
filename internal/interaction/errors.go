package interaction

import (
	"errors"
	"fmt"
)

// Errors returned by the engine.
var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("invalid registration")

	// ErrUnknownGesture indicates a gesture type outside the known set.
	ErrUnknownGesture = errors.New("unknown gesture type")

	// ErrAlreadyLoaded indicates Load was called more than once.
	ErrAlreadyLoaded = errors.New("interactions already loaded")

	// ErrInvalidConfig matches every *ConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValidationError reports a malformed registration. A registration that
// fails validation leaves the store untouched.
type ValidationError struct {
	// Field is the offending Registration field.
	Field string
	// Reason describes what is wrong with it.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid registration: %s: %s", e.Field, e.Reason)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is matches ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConfigError reports an invalid engine configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Is matches ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
