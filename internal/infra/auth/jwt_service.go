package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"rentql/config"
	"rentql/internal/domain/service"
	"rentql/internal/errors"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte           // Process-wide signing secret.
	ttl    time.Duration    // Lifetime of issued tokens.
	now    func() time.Time // Clock, replaced in tests.
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// An empty secret is a configuration error and refuses to start.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return newJWTService(cfg.SecretKey.Access, ttl, time.Now)
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(now),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Issue signs a token carrying the email and the identity as subject.
func (s *jwtService) Issue(claims service.TokenClaims) (string, error) {
	issuedAt := s.now().Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		Email: claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "token.SignedString")
	}

	return signed, nil
}

// Verify checks the signature first, then the expiry.
func (s *jwtService) Verify(tokenString string) (*service.TokenClaims, error) {
	claims := &service.Claims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, service.ErrTokenExpired
	default:
		return nil, errors.Wrap(service.ErrInvalidSignature, err.Error())
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidSignature, "subject is not an identity")
	}

	return &service.TokenClaims{Email: claims.Email, UserID: userID}, nil
}

// TTL returns the configured token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
