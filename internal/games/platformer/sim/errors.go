package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrLevelNotFound is returned when a level provider has no level for an id.
	ErrLevelNotFound = errors.New("level not found")

	// ErrInvalidLevelData is returned when level data fails validation.
	ErrInvalidLevelData = errors.New("invalid level data")

	// ErrRenderTargetUnavailable is returned when no usable render target exists.
	ErrRenderTargetUnavailable = errors.New("render target unavailable")
)

// ValidationError contains details about a level validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap lets callers match validation failures with errors.Is.
func (e ValidationError) Unwrap() error {
	return ErrInvalidLevelData
}
