package validator

import (
	"testing"

	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	v := New()

	t.Run("valid register input", func(t *testing.T) {
		assert.NoError(t, v.Validate(&usecase.RegisterInput{Email: "ada@example.com", Password: "Secret#123"}))
	})

	t.Run("missing and malformed fields", func(t *testing.T) {
		err := v.Validate(&usecase.RegisterInput{Email: "not-an-email"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "email must be a valid email")
		assert.Contains(t, appErr.Details(), "password is required")
	})

	t.Run("post requires a technology", func(t *testing.T) {
		err := v.Validate(&usecase.PostInput{Title: "Tour", Link: "https://go.dev/tour"})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "techID is required")
	})

	t.Run("apartment coordinates are range checked", func(t *testing.T) {
		err := v.Validate(&usecase.ApartmentInput{Title: "Loft", Latitude: 91, Longitude: 10})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "latitude must be a valid latitude")
	})

	t.Run("apartment amounts keep two decimals", func(t *testing.T) {
		assert.NoError(t, v.Validate(&usecase.ApartmentInput{Title: "Loft", Price: 1234.56, MSquare: 42.1}))

		err := v.Validate(&usecase.ApartmentInput{Title: "Loft", Price: 1234.567, MSquare: 42.125})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "price must have at most 2 decimal places")
		assert.Contains(t, appErr.Details(), "mSquare must have at most 2 decimal places")
	})

	t.Run("apartment amounts fit their columns", func(t *testing.T) {
		err := v.Validate(&usecase.ApartmentInput{Title: "Loft", Price: 1e10, MSquare: 1e8})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "price must be less than 10000000000")
		assert.Contains(t, appErr.Details(), "mSquare must be less than 100000000")
	})

	t.Run("valid post", func(t *testing.T) {
		assert.NoError(t, v.Validate(&usecase.PostInput{Title: "Tour", Link: "https://go.dev/tour", TechID: uuid.New()}))
	})
}
