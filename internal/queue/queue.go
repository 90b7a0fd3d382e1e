package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/config"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	exchangeKind = "topic"
	// YieldSnapshotRoutingKey is the routing key of YieldSnapshotEvent.
	YieldSnapshotRoutingKey = "yield.snapshot"
)

//go:generate mockery --name=Publisher --output=../../tests/mocks --outpkg=mocks --filename=mock_publisher.go
type Publisher interface {
	PublishYieldSnapshot(ctx context.Context, event *YieldSnapshotEvent) error
	Shutdown()
}

// QueueManager publishes events to a durable topic exchange.
type QueueManager struct {
	exchange string
	conn     *amqp.Connection

	// amqp channels must not be used for concurrent publishing
	mu      sync.Mutex
	channel *amqp.Channel
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	conn, err := amqp.Dial(cfg.AmqpURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	err = ch.ExchangeDeclare(cfg.Exchange, exchangeKind, true, false, false, false, nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	return &QueueManager{
		exchange: cfg.Exchange,
		conn:     conn,
		channel:  ch,
	}, nil
}

func (qm *QueueManager) PublishYieldSnapshot(ctx context.Context, event *YieldSnapshotEvent) error {
	return qm.publish(ctx, YieldSnapshotRoutingKey, event)
}

func (qm *QueueManager) publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	qm.mu.Lock()
	defer qm.mu.Unlock()

	err = qm.channel.PublishWithContext(ctx, qm.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}

	return nil
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")

	qm.mu.Lock()
	defer qm.mu.Unlock()

	if err := qm.channel.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close rabbitmq channel")
	}
	if err := qm.conn.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close rabbitmq connection")
	}
}

// NoopPublisher is used when no queue is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (n *NoopPublisher) PublishYieldSnapshot(ctx context.Context, event *YieldSnapshotEvent) error {
	return nil
}

func (n *NoopPublisher) Shutdown() {}
