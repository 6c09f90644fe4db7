// Package handler contains the sweeper's Pub/Sub push handler.
package handler

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"rentql/config"
	deliverycontext "rentql/internal/delivery/context"
	"rentql/internal/domain/constants"
	"rentql/internal/domain/service"
	"rentql/internal/errors"
	"rentql/internal/infra/pubsub"
	"rentql/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// idTokenValidator checks a Google-signed OIDC token for the given audience.
type idTokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler reconciles resources left behind by deleted accounts.
type PushHandler struct {
	verifyPushAuth bool
	pushToken      string
	validateToken  idTokenValidator
	logger         *slog.Logger
	accounts       usecase.AccountUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Accounts usecase.AccountUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests with an OIDC token; local development has no signer.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var pushToken string
	if params.Config.PubSub != nil {
		pushToken = params.Config.PubSub.PushToken
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushToken:      pushToken,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		accounts:       params.Accounts,
	}
}

// HandlePush handles one account.deleted push.
// It answers 503 only when a retry can succeed; every other outcome acknowledges the message.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.pushToken != "" && subtle.ConstantTimeCompare([]byte(c.QueryParam("token")), []byte(h.pushToken)) != 1 {
		h.logger.Warn("[Sweeper] Push token mismatch")

		return c.NoContent(http.StatusUnauthorized)
	}
	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Sweeper] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Sweeper] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pubsub.DecodeAccountDeleted(&pushMsg)
	if err != nil {
		h.logger.Error("[Sweeper] Failed to decode account deleted event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if event.EventType != constants.EventTypeAccountDeleted {
		reqLogger.Info("[Sweeper] Ignoring event", slog.String("event_type", event.EventType))

		return c.NoContent(http.StatusOK)
	}

	ownerID, err := uuid.Parse(event.UserID)
	if err != nil {
		reqLogger.Error("[Sweeper] Event carries an invalid user id", slog.String("user_id", event.UserID))

		return c.NoContent(http.StatusOK)
	}

	out, err := h.accounts.PurgeOwnedResources(ctx, ownerID)
	switch {
	case errors.Is(err, usecase.ErrAccountStillExists):
		reqLogger.Warn("[Sweeper] Account still exists, nothing to purge", slog.String("user_id", event.UserID))

		return c.NoContent(http.StatusOK)
	case err != nil:
		reqLogger.Error("[Sweeper] Failed to purge owned resources",
			slog.String("user_id", event.UserID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Sweeper] Purged owned resources",
		slog.String("user_id", event.UserID),
		slog.Int64("apartments", out.Apartments),
		slog.Int64("posts", out.Posts),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then the incoming request.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.AccountDeletedEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken validates the OIDC token Google attaches to authenticated push requests.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
