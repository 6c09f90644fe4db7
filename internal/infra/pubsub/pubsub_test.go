package pubsub

import (
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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAccountDeleted(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.AccountDeletedEvent{
		RequestID: "req-1",
		EventType: constants.EventTypeAccountDeleted,
		UserID:    "0190f4a6-0000-7000-8000-000000000001",
		DeletedAt: 1700000000,
	}
	require.NoError(t, publisher.PublishAccountDeleted(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, event.UserID, received.Message.Attributes["user_id"])

	decoded, err := DecodeAccountDeleted(&received)
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishAccountDeleted(context.Background(), &service.AccountDeletedEvent{UserID: "u"})
	assert.ErrorContains(t, err, "503")
}

func TestDecodeAccountDeleted_BadData(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%"

	_, err := DecodeAccountDeleted(msg)
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: discardLogger(),
		}
	}

	publisher, err := NewEventPublisher(newParams(nil))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishAccountDeleted(context.Background(), &service.AccountDeletedEvent{}))

	publisher, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:4001/push"}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderLocal}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderGoogle}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
	assert.Error(t, err)
}

func TestLocalPushURL(t *testing.T) {
	got, err := localPushURL("http://localhost:4001/push", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4001/push?token=s3cret", got)

	got, err = localPushURL("http://localhost:4001/push", "")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4001/push", got)

	_, err = localPushURL("", "s3cret")
	assert.Error(t, err)

	_, err = localPushURL("://bad", "")
	assert.Error(t, err)
}
