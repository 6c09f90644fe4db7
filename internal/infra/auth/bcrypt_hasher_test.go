package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"rentql/config"
	domainerrors "rentql/internal/domain/errors"
)

func newTestHasher(strength config.PasswordStrengthConfig) *bcryptHasher {
	return NewBcryptHasherWithCost(bcrypt.MinCost, strength).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher(config.PasswordStrengthConfig{})

	hash, err := hasher.Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	again, err := hasher.Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "every call must use a fresh salt")

	ok, err := hasher.Check("hunter22", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher(config.PasswordStrengthConfig{})
	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)

	ok, err := hasher.Check("battery staple", hash)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Check("", hash)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Check("correct horse", "not-a-bcrypt-digest")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_Cost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret-pass")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)

	assert.Equal(t, defaultBcryptCost, NewBcryptHasherWithCost(99, config.PasswordStrengthConfig{}).(*bcryptHasher).cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher(config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        72,
		RequireLowercase: true,
		RequireUppercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	})

	assert.NoError(t, hasher.ValidatePasswordStrength("Str0ng!Pass"))
	assert.NoError(t, hasher.ValidatePasswordStrength("Pässphräse1!"))

	testCases := []struct {
		password string
		details  string
	}{
		{"Ab1!", "at least 8 characters"},
		{"PASSWORD123!", "lowercase"},
		{"password123!", "uppercase"},
		{"Password!!!", "number"},
		{"Password123", "special"},
		{"Aa1!" + strings.Repeat("x", 80), "at most 72 bytes"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Details(), tc.details)
		})
	}
}
