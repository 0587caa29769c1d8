// Package pubsub publishes user lifecycle events to the configured broker.
package pubsub

import (
	"context"
	"log/slog"

	"userhub/config"
	"userhub/internal/domain/constants"
	"userhub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishUserEvent(ctx context.Context, event *service.UserEvent) error {
	p.logger.Debug("Event publishing disabled, dropping event",
		slog.String("type", event.Type),
		slog.Int64("user_id", event.UserID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher named by pubsub.provider and closes it on stop.
// An empty provider yields a publisher that drops every event.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	publisher, err := openPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing event publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("local endpoint is required for local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("project ID and topic ID are required for google provider")
		}
	case constants.PubSubProviderRabbitMQ:
		if cfg.RabbitMQURL == "" {
			return errors.New("rabbitmq URL is required for rabbitmq provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	logger = logger.With(slog.String("provider", cfg.Provider))

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		logger.Info("Publishing events to local endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, cfg.TopicID, logger), nil
	case constants.PubSubProviderGoogle:
		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange, logger)
	}
}

// Module provides the event publisher.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
