package common

import (
	"errors"
	"fmt"
)

// Domain errors - use errors.Is() to check
var (
	ErrBadRequest = errors.New("bad request")

	// Generation collaborator errors
	ErrNotConfigured = errors.New("generator not configured")
	ErrUpstream      = errors.New("generation service failed")
)

// ValidationError represents a validation error with field details
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// WrapUpstream wraps a generation failure with context
func WrapUpstream(operation string, err error) error {
	return fmt.Errorf("%s: %w", operation, errors.Join(ErrUpstream, err))
}

// IsNotConfigured checks if error means no generator is available
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}

// IsUpstream checks if error came from the generation service
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsBadRequest checks if error is a malformed request error
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}
