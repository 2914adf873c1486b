package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cargo-tracker/internal/core/config"
	"cargo-tracker/internal/features/orders/domain"

	"github.com/segmentio/kafka-go"
)

// Writer is the subset of *kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter builds a writer for the status topic.
// Messages are keyed by order id so one order's events stay on one partition.
func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.BrokerList()...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: 5 * time.Second,
		MaxAttempts:  3,
		RequiredAcks: kafka.RequireOne,
	}
}

// KafkaPublisher publishes status changes as JSON messages.
type KafkaPublisher struct {
	writer Writer
}

// NewKafkaPublisher creates a new KafkaPublisher.
func NewKafkaPublisher(w Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// StatusChanged implements ports.Notifier.
func (p *KafkaPublisher) StatusChanged(ctx context.Context, event domain.StatusChanged) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.ID),
		Value: value,
		Time:  event.At,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte("order.status_changed")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish status event for order %s: %w", event.OrderID, err)
	}
	return nil
}

// Close flushes pending messages.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
