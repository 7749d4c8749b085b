// Package kafka publishes order changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var _ ports.OrderEventPublisher = (*OrderEventPublisher)(nil)

// MessageWriter is the part of kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderChangedEvent is the payload written for every committed order change.
type OrderChangedEvent struct {
	EventID    uuid.UUID `json:"eventId"`
	OrderID    uuid.UUID `json:"orderId"`
	MemberID   uuid.UUID `json:"memberId"`
	Status     string    `json:"status"`
	TotalPrice string    `json:"totalPrice"`
	Currency   string    `json:"currency"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewOrderChangedEvent captures the current state of o.
func NewOrderChangedEvent(o *order.Order, now time.Time) OrderChangedEvent {
	total := o.TotalPrice()
	return OrderChangedEvent{
		EventID:    kernel.NewUUID().Bytes(),
		OrderID:    o.ID().Bytes(),
		MemberID:   o.Member().ID().Bytes(),
		Status:     o.Status().String(),
		TotalPrice: total.Amount().String(),
		Currency:   total.Currency().String(),
		OccurredAt: now.UTC(),
	}
}

// OrderEventPublisher writes OrderChangedEvent messages keyed by order id, so
// all changes of one order land on the same partition.
type OrderEventPublisher struct {
	writer MessageWriter
	now    func() time.Time
}

// NewOrderEventPublisher creates a publisher over an existing writer.
func NewOrderEventPublisher(writer MessageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: writer,
		now:    time.Now,
	}
}

const (
	// WriterBatchTimeout bounds how long a synchronous Publish waits for a
	// partial batch to fill.
	WriterBatchTimeout = 10 * time.Millisecond
	WriterBatchSize    = 100
)

// NewWriter creates a kafka.Writer for topic on the given broker address.
func NewWriter(broker string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           WriterBatchTimeout,
		BatchSize:              WriterBatchSize,
	}
}

// Publish writes one message per aggregate in a single batch.
func (p *OrderEventPublisher) Publish(ctx context.Context, aggregates ...*order.Order) error {
	if len(aggregates) == 0 {
		return nil
	}

	now := p.now()
	msgs := make([]kafka.Message, 0, len(aggregates))
	for _, o := range aggregates {
		event := NewOrderChangedEvent(o, now)

		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal order changed event: %w", err)
		}

		msgs = append(msgs, kafka.Message{
			Key:   []byte(event.OrderID.String()),
			Value: payload,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to write order changed events: %w", err)
	}

	return nil
}

// Close flushes pending messages and closes the underlying writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
