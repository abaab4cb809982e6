// Package events publishes reservation domain events to a RabbitMQ topic
// exchange. The notification layer (email/push) subscribes on its side;
// the booking engine only ever talks to this publisher.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
)

// Publisher delivers domain events to the exchange, one routing key per
// event type (reserva.creada, reserva.cancelada, reserva.vencida,
// pago.confirmado).
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewPublisher dials the broker and declares the durable topic exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events: dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("events: open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("events: declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish sends the event with its type as routing key. The event id is
// assigned here so retried publishes stay deduplicatable downstream.
func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: marshal event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, amqp.Publishing{
		ContentType: "application/json",
		MessageId:   event.ID,
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("events: publish %s: %w", event.Type, err)
	}
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
