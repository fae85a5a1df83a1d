package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/petshop/checkout-service/internal/config"

	"github.com/segmentio/kafka-go"
)

const (
	OrderCreated       = "order.created"
	OrderStatusChanged = "order.status_changed"
	OrderCancelled     = "order.cancelled"
)

// OrderEvent is the message other systems (email, reporting, payment
// reconciliation) consume. Amount is the decimal string, not a float.
type OrderEvent struct {
	Type          string    `json:"type"`
	InvoiceNumber string    `json:"invoice_number"`
	CustomerID    int64     `json:"customer_id"`
	Status        string    `json:"status"`
	TotalAmount   string    `json:"total_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("component", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// PublishOrderEvent keys messages by invoice number so one order's events
// stay in partition order.
func (p *Publisher) PublishOrderEvent(ctx context.Context, event OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.InvoiceNumber),
		Value: value,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
