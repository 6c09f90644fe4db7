package context

import (
	"context"

	"rentql/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the authenticated identity in context.
const KeyIdentity ContextKey = "identity"

// WithIdentity returns a new context carrying the identity. A nil identity leaves the request unauthenticated.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentity extracts the identity attached by the auth gate, or nil when unauthenticated.
func GetIdentity(ctx context.Context) *entity.Identity {
	identity, _ := valueOf[*entity.Identity](ctx, KeyIdentity)

	return identity
}

// SetIdentity stores the identity in echo.Context and on the request context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
	c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))
}
