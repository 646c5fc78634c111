package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Store errors
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrNotFound         = errors.New("not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrNoSession          = errors.New("no active session")

	// Validation errors
	ErrValidationFailed   = errors.New("validation failed")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Per-entity not-found errors. Each wraps ErrNotFound so callers can match
// the family or the specific entity.
var (
	ErrPostNotFound           = fmt.Errorf("post %w", ErrNotFound)
	ErrSubmissionNotFound     = fmt.Errorf("submission %w", ErrNotFound)
	ErrContactRequestNotFound = fmt.Errorf("contact request %w", ErrNotFound)
	ErrReportNotFound         = fmt.Errorf("report %w", ErrNotFound)
	ErrMessageNotFound        = fmt.Errorf("message %w", ErrNotFound)
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}
