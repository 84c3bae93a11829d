package dto

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the uniform error body: every failure surfaces as
// {"error": "<message>"} and nothing else.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// FormatBindingError turns a gin binding failure into a human-readable
// message naming the first offending field, in its wire (snake_case) form.
func FormatBindingError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return formatFieldError(verrs[0])
	}
	return "Invalid request format"
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	name := wireFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "min":
		return name + " must be at least " + e.Param()
	case "max":
		return name + " must be at most " + e.Param()
	case "oneof":
		return name + " must be one of: " + e.Param()
	default:
		return name + " validation failed: " + e.Tag()
	}
}

// wireFieldName converts a Go field name to the snake_case name clients see
// in JSON payloads, so binding errors and service-level validation errors
// speak the same vocabulary.
func wireFieldName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
