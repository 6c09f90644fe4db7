package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrForbidden.WithDetails("apartment 42")

	assert.True(t, stderrors.Is(detailed, ErrForbidden))
	assert.False(t, stderrors.Is(detailed, ErrNotFound))
	assert.Equal(t, "apartment 42", detailed.Details())
	assert.Equal(t, http.StatusForbidden, detailed.HTTPCode())
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrInvalidCredentials.WrapMessage("login failed")

	var appErr AppError
	require.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert apartment")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Error(), "connection reset")
}
