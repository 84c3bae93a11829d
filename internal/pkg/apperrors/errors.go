package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("unauthorized")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Enrollment errors
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrInvalidStatus      = errors.New("invalid status value")
)

// CustomError carries a client-facing message on top of a sentinel error.
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewMissingFieldError reports an absent required field by name.
func NewMissingFieldError(field string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: fmt.Sprintf("Missing required field: %s", field),
		Field:   field,
	}
}

// Message returns the client-facing message for err, falling back to def.
// Only CustomError messages are considered safe to surface.
func Message(err error, def string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return def
}
