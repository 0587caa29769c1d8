package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"userhub/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes user events to a Cloud Pub/Sub topic, ordered per user.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishUserEvent(ctx context.Context, event *service.UserEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	// Ordering per user keeps registered before profile_updated for the same account
	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  attributes,
		OrderingKey: attributes["user_id"],
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// a failed ordered publish pauses the key until resumed
		p.publisher.ResumePublish(attributes["user_id"])

		return errors.Wrap(err, "failed to publish Pub/Sub message")
	}

	p.logger.Debug("Event published to Pub/Sub",
		slog.String("type", event.Type),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
