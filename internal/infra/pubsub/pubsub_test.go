package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"userhub/config"
	"userhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishUserEvent(t *testing.T) {
	var received pushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "", discardLogger())
	event := &service.UserEvent{
		RequestID:  "req-1",
		Type:       service.EventUserRegistered,
		UserID:     42,
		Email:      "a@x.io",
		OccurredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishUserEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "user.registered", received.Message.Attributes["type"])
	assert.Equal(t, "42", received.Message.Attributes["user_id"])
	assert.Equal(t, "projects/local/subscriptions/user-events-push", received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.UserEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, int64(42), decoded.UserID)
	assert.Equal(t, "a@x.io", decoded.Email)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "", discardLogger())
	err := publisher.PublishUserEvent(context.Background(), &service.UserEvent{Type: service.EventUserProfileUpdated, UserID: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNewEventPublisher_Selection(t *testing.T) {
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

	publisher, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "local", LocalEndpoint: "http://127.0.0.1:1"}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "local"}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "rabbitmq"}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
	assert.ErrorContains(t, err, "unknown pubsub provider")
}

func TestEncodeEvent(t *testing.T) {
	_, _, err := encodeEvent(nil)
	require.Error(t, err)

	_, _, err = encodeEvent(&service.UserEvent{UserID: 1})
	require.Error(t, err)

	body, attributes, err := encodeEvent(&service.UserEvent{Type: service.EventUserProfileUpdated, UserID: 9})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"user.profile_updated","user_id":9,"email":"","occurred_at":"0001-01-01T00:00:00Z"}`, string(body))
	assert.Equal(t, map[string]string{"type": "user.profile_updated", "user_id": "9"}, attributes)
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: discardLogger()}

	assert.NoError(t, publisher.PublishUserEvent(context.Background(), &service.UserEvent{Type: service.EventUserRegistered}))
	assert.NoError(t, publisher.Close())
}

func TestValidatePubSubConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.PubSubConfig
		wantErr bool
	}{
		{name: "local", cfg: config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8085"}},
		{name: "local without endpoint", cfg: config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google", cfg: config.PubSubConfig{Provider: "google", ProjectID: "p", TopicID: "t"}},
		{name: "google without topic", cfg: config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "rabbitmq", cfg: config.PubSubConfig{Provider: "rabbitmq", RabbitMQURL: "amqp://localhost"}},
		{name: "unknown", cfg: config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePubSubConfig(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
