package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "rentql/internal/delivery/context"
	"rentql/internal/domain/entity"
	"rentql/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer"

// AuthGate resolves the optional caller identity of every request.
// It never rejects a request; operations that need an identity enforce it themselves.
type AuthGate struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthGate is the constructor for AuthGate.
func NewAuthGate(tokenSvc service.TokenService, logger *slog.Logger) *AuthGate {
	return &AuthGate{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate attaches the verified identity, or nothing, and always calls next.
func (m *AuthGate) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := m.resolve(c)
		if identity != nil {
			deliverycontext.SetIdentity(c, identity)
		}

		return next(c)
	}
}

func (m *AuthGate) resolve(c echo.Context) *entity.Identity {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	token, ok := parseBearer(authHeader)
	if !ok {
		logger.Debug("Ignoring malformed authorization header")

		return nil
	}

	claims, err := m.tokenSvc.Verify(token)
	if err != nil {
		logger.Debug("Ignoring unverifiable token", slog.Any("error", err))

		return nil
	}

	return &entity.Identity{UserID: claims.UserID, Email: claims.Email}
}

// parseBearer accepts exactly "<scheme> <token>" with a case-insensitive Bearer scheme.
func parseBearer(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", false
	}
	if !strings.EqualFold(parts[0], bearerScheme) {
		return "", false
	}

	return parts[1], true
}
