package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginShape struct {
	Username string `validate:"required,min=1,max=100"`
	Password string `validate:"required"`
}

func TestValidationDetails(t *testing.T) {
	t.Run("extracts per-field details from validator errors", func(t *testing.T) {
		v := validator.New()
		err := v.Struct(loginShape{})
		require.Error(t, err)

		details := ValidationDetails(err)

		require.Len(t, details, 2)
		assert.Equal(t, "username", details[0].Field)
		assert.Equal(t, "required", details[0].Rule)
		assert.Equal(t, "username is required", details[0].Message)
	})

	t.Run("returns nil for non-validator errors", func(t *testing.T) {
		assert.Nil(t, ValidationDetails(errors.New("unexpected EOF")))
	})
}

func TestBindingErrorMessage(t *testing.T) {
	t.Run("joins field messages", func(t *testing.T) {
		v := validator.New()
		err := v.Struct(loginShape{})
		require.Error(t, err)

		msg := BindingErrorMessage(err)

		assert.Contains(t, msg, "username is required")
		assert.Contains(t, msg, "password is required")
	})

	t.Run("falls back to a generic message for JSON errors", func(t *testing.T) {
		msg := BindingErrorMessage(errors.New("invalid character 'k'"))

		assert.Equal(t, "Request body is not valid JSON for this endpoint", msg)
	})
}
