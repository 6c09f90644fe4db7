package pubsub

import (
	"context"
	"log/slog"
	"net/url"

	"rentql/config"
	"rentql/internal/domain/constants"
	"rentql/internal/domain/service"
	"rentql/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured; the cascade already ran in-transaction.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAccountDeleted(_ context.Context, event *service.AccountDeletedEvent) error {
	p.logger.Debug("[NoopPubSub] Publishing disabled, dropping event",
		slog.String("event_type", event.EventType),
		slog.String("user_id", event.UserID),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, account.deleted events are dropped")

		return &noopPublisher{logger: params.Logger}, nil
	}

	publisher, err := newPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing EventPublisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		endpoint, err := localPushURL(cfg.LocalEndpoint, cfg.PushToken)
		if err != nil {
			return nil, err
		}
		logger.Info("Using local HTTP publisher for Pub/Sub", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(endpoint, logger), nil

	case constants.PubSubProviderGoogle:
		switch {
		case cfg.ProjectID == "":
			return nil, errors.New("project ID is required for google provider")
		case cfg.TopicID == "":
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// localPushURL appends the sweeper's push token the way a Google push subscription would.
func localPushURL(endpoint, pushToken string) (string, error) {
	if endpoint == "" {
		return "", errors.New("local endpoint is required for local provider")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", errors.Wrapf(err, "invalid local endpoint %q", endpoint)
	}
	if pushToken != "" {
		query := u.Query()
		query.Set("token", pushToken)
		u.RawQuery = query.Encode()
	}

	return u.String(), nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
