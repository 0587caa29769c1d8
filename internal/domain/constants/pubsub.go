// Package constants holds configuration values shared across layers.
package constants

// Supported event publisher providers (config key pubsub.provider).
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)
