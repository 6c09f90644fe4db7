package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentql/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestIdentityRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetIdentity(ctx))

	identity := &entity.Identity{UserID: uuid.New(), Email: "ana@example.com"}
	ctx = WithIdentity(ctx, identity)
	assert.Same(t, identity, GetIdentity(ctx))
}

func TestSetIdentity(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/graphql", nil), httptest.NewRecorder())

	identity := &entity.Identity{UserID: uuid.New()}
	SetIdentity(c, identity)

	assert.Same(t, identity, GetIdentity(c.Request().Context()))
	assert.Same(t, identity, c.Get(string(KeyIdentity)))
}

func TestRequestIDAndLogger(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))

	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	scoped := fallback.With("request_id", "req-1")
	ctx = WithLogger(ctx, scoped)
	assert.Same(t, scoped, GetLogger(ctx))
}
