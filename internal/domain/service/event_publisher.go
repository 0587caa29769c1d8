package service

import (
	"context"
	"time"
)

// User event types.
const (
	EventUserRegistered     = "user.registered"
	EventUserProfileUpdated = "user.profile_updated"
)

// UserEvent describes a change in a user account.
type UserEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	UserID     int64     `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishUserEvent publishes a user lifecycle event
	PublishUserEvent(ctx context.Context, event *UserEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
