package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"userhub/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultRabbitMQExchange = "userhub.events"
	rabbitMQPublishTimeout  = 5 * time.Second
)

// rabbitMQPublisher implements EventPublisher on a durable topic exchange.
// The event type is the routing key, so consumers bind to "user.*" or a single type.
type rabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger

	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

// NewRabbitMQPublisher dials the broker and declares the exchange
func NewRabbitMQPublisher(url, exchange string, logger *slog.Logger) (service.EventPublisher, error) {
	if exchange == "" {
		exchange = defaultRabbitMQExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open RabbitMQ channel")
	}

	if err := channel.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	logger.Info("RabbitMQ publisher initialized", slog.String("exchange", exchange))

	return &rabbitMQPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}, nil
}

func (p *rabbitMQPublisher) PublishUserEvent(ctx context.Context, event *service.UserEvent) error {
	body, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	publishCtx, cancel := context.WithTimeout(ctx, rabbitMQPublishTimeout)
	defer cancel()

	headers := amqp.Table{}
	for key, value := range attributes {
		headers[key] = value
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(publishCtx,
		p.exchange,
		event.Type, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			CorrelationId: event.RequestID,
			Timestamp:     event.OccurredAt,
			Headers:       headers,
			Body:          body,
		},
	)
	if err != nil {
		return errors.Wrap(err, "failed to publish RabbitMQ message")
	}

	p.logger.Debug("Event published to RabbitMQ",
		slog.String("type", event.Type),
		slog.Int64("user_id", event.UserID),
	)

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var channelErr error
	if p.channel != nil {
		channelErr = p.channel.Close()
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return errors.WithStack(err)
		}
	}

	return errors.WithStack(channelErr)
}
