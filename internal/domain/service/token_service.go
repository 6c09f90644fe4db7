package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidSignature is returned for forged, malformed or wrongly signed tokens.
	ErrInvalidSignature = errors.New("invalid token signature")

	// ErrTokenExpired is returned once the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
)

// TokenClaims is the payload carried by an access token.
type TokenClaims struct {
	Email  string    `json:"email"`
	UserID uuid.UUID `json:"-"`
}

// Claims is the JWT representation of TokenClaims. The identity travels in the subject.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying access tokens.
type TokenService interface {
	// Issue signs a token for the claims, valid for the configured TTL.
	Issue(claims TokenClaims) (string, error)

	// Verify checks the signature and expiry and returns the claims that were issued.
	Verify(token string) (*TokenClaims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
