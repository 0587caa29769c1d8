package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "userhub/internal/delivery/context"
	"userhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localPublishTimeout = 10 * time.Second
	defaultLocalTopic   = "user-events"
)

// localHTTPPublisher posts events to a development endpoint in the shape of a
// Pub/Sub push delivery, so a push consumer can be exercised without the emulator.
type localHTTPPublisher struct {
	endpoint     string
	subscription string
	httpClient   *http.Client
	logger       *slog.Logger
}

type pushEnvelope struct {
	Message      pushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type pushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

func NewLocalHTTPPublisher(endpoint, topicID string, logger *slog.Logger) service.EventPublisher {
	if topicID == "" {
		topicID = defaultLocalTopic
	}

	return &localHTTPPublisher{
		endpoint:     endpoint,
		subscription: "projects/local/subscriptions/" + topicID + "-push",
		httpClient:   &http.Client{Timeout: localPublishTimeout},
		logger:       logger,
	}
}

func (p *localHTTPPublisher) PublishUserEvent(ctx context.Context, event *service.UserEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushEnvelope{
		Message: pushMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  attributes,
			MessageID:   uuid.NewString(),
			PublishTime: time.Now().UTC().Format(time.RFC3339Nano),
		},
		Subscription: p.subscription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to post event to local endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("event endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("Event pushed to local endpoint",
		slog.String("type", event.Type),
		slog.Int64("user_id", event.UserID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
