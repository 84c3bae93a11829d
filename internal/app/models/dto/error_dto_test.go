package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func TestFormatBindingErrorUsesWireNames(t *testing.T) {
	v := bindingValidator()

	err := v.Struct(RegisterRequest{Email: "asha@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, "full_name is required", FormatBindingError(err))

	err = v.Struct(RegisterRequest{FullName: "Asha Verma", Email: "not-an-email", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, "email must be a valid email address", FormatBindingError(err))

	err = v.Struct(UpdateStatusRequest{})
	require.Error(t, err)
	assert.Equal(t, "status is required", FormatBindingError(err))
}

func TestFormatBindingErrorFallback(t *testing.T) {
	assert.Equal(t, "Invalid request format", FormatBindingError(errors.New("unexpected EOF")))
}
