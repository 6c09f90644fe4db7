// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"rentql/config"
	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/domain/service"
	"rentql/internal/errors"
)

const (
	defaultBcryptCost = 10

	// bcrypt ignores every byte past 72.
	bcryptMaxPasswordBytes = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from the auth and passwordStrength config blocks.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := defaultBcryptCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	var strength config.PasswordStrengthConfig
	if cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}

	return NewBcryptHasherWithCost(cost, strength)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost and strength policy.
func NewBcryptHasherWithCost(cost int, strength config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = defaultBcryptCost
	}
	if strength.MaxLength <= 0 || strength.MaxLength > bcryptMaxPasswordBytes {
		strength.MaxLength = bcryptMaxPasswordBytes
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, errors.Wrap(err, "bcrypt.CompareHashAndPassword")
	}
}

// ValidatePasswordStrength checks the password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	s := h.strength

	if s.MinLength > 0 && utf8.RuneCountInString(password) < s.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("must be at least %d characters long", s.MinLength))
	}
	if len(password) > s.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("must be at most %d bytes long", s.MaxLength))
	}
	if s.RequireLowercase && !hasRune(password, unicode.IsLower) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one lowercase letter")
	}
	if s.RequireUppercase && !hasRune(password, unicode.IsUpper) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one uppercase letter")
	}
	if s.RequireNumbers && !hasRune(password, unicode.IsDigit) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one number")
	}
	if s.RequireSpecial && !hasRune(password, isSpecial) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one special character")
	}

	return nil
}

func hasRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}

	return false
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
