package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentql/config"
	"rentql/internal/domain/constants"
	"rentql/internal/domain/service"
	"rentql/internal/infra/pubsub"
	"rentql/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

// accountsStub implements only the purge used by the sweeper.
type accountsStub struct {
	usecase.AccountUsecase
	mock.Mock
}

func (s *accountsStub) PurgeOwnedResources(ctx context.Context, ownerID uuid.UUID) (*usecase.PurgeOutput, error) {
	args := s.Called(ctx, ownerID)
	out, _ := args.Get(0).(*usecase.PurgeOutput)

	return out, args.Error(1)
}

func newHandler(t *testing.T, cfg *config.Config, accounts *accountsStub) *PushHandler {
	t.Helper()

	return NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Accounts: accounts,
	})
}

func pushBody(t *testing.T, event *service.AccountDeletedEvent) []byte {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, "projects/test/subscriptions/account-deleted-sub")
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func serve(h *PushHandler, target string, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush(t *testing.T) {
	ownerID := uuid.New()
	event := &service.AccountDeletedEvent{
		RequestID: "req-1",
		EventType: constants.EventTypeAccountDeleted,
		UserID:    ownerID.String(),
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) []byte
		setup      func(s *accountsStub)
		wantStatus int
	}{
		{
			name: "purges the owner",
			body: func(t *testing.T) []byte { return pushBody(t, event) },
			setup: func(s *accountsStub) {
				s.On("PurgeOwnedResources", mock.Anything, ownerID).Return(&usecase.PurgeOutput{Apartments: 2}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "live account is acknowledged",
			body: func(t *testing.T) []byte { return pushBody(t, event) },
			setup: func(s *accountsStub) {
				s.On("PurgeOwnedResources", mock.Anything, ownerID).Return(nil, usecase.ErrAccountStillExists)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "store failure is retried",
			body: func(t *testing.T) []byte { return pushBody(t, event) },
			setup: func(s *accountsStub) {
				s.On("PurgeOwnedResources", mock.Anything, ownerID).Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "other event types are acknowledged",
			body: func(t *testing.T) []byte {
				return pushBody(t, &service.AccountDeletedEvent{EventType: "account.created", UserID: ownerID.String()})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid user id is acknowledged",
			body: func(t *testing.T) []byte {
				return pushBody(t, &service.AccountDeletedEvent{EventType: constants.EventTypeAccountDeleted, UserID: "nope"})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "undecodable data is rejected",
			body:       func(*testing.T) []byte { return []byte(`{"message":{"data":"***"}}`) },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := &accountsStub{}
			accounts.Test(t)
			if tt.setup != nil {
				tt.setup(accounts)
			}

			rec := serve(newHandler(t, &config.Config{}, accounts), "/push", tt.body(t), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			accounts.AssertExpectations(t)
		})
	}
}

func TestHandlePush_PushToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{PushToken: "s3cret"}}
	ownerID := uuid.New()
	body := pushBody(t, &service.AccountDeletedEvent{EventType: constants.EventTypeAccountDeleted, UserID: ownerID.String()})

	accounts := &accountsStub{}
	accounts.Test(t)
	accounts.On("PurgeOwnedResources", mock.Anything, ownerID).Return(&usecase.PurgeOutput{}, nil).Once()
	h := newHandler(t, cfg, accounts)

	assert.Equal(t, http.StatusUnauthorized, serve(h, "/push", body, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "/push?token=wrong", body, nil).Code)
	assert.Equal(t, http.StatusOK, serve(h, "/push?token=s3cret", body, nil).Code)
	accounts.AssertExpectations(t)
}

func TestHandlePush_GoogleOIDC(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction
	ownerID := uuid.New()
	body := pushBody(t, &service.AccountDeletedEvent{EventType: constants.EventTypeAccountDeleted, UserID: ownerID.String()})

	accounts := &accountsStub{}
	accounts.Test(t)
	accounts.On("PurgeOwnedResources", mock.Anything, ownerID).Return(&usecase.PurgeOutput{}, nil).Once()
	h := newHandler(t, cfg, accounts)

	var gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "google-signed" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	assert.Equal(t, http.StatusUnauthorized, serve(h, "/push", body, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "/push", body, http.Header{"Authorization": {"Bearer forged"}}).Code)
	assert.Equal(t, http.StatusOK, serve(h, "/push", body, http.Header{"Authorization": {"Bearer google-signed"}}).Code)
	assert.Equal(t, "http://example.com/push", gotAudience)
	accounts.AssertExpectations(t)
}
