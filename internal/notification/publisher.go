// Package notification broadcasts order state changes over RabbitMQ so
// interested consumers (kitchen displays, customer apps) can react.
// Publishing is fire-and-forget; callers log failures and move on.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/vandev268/fastfood-server/internal/usecase"
)

const (
	exchangeName   = "order_events"
	publishTimeout = 5 * time.Second
)

type Publisher struct {
	conn   *amqp091.Connection
	ch     *amqp091.Channel
	logger *slog.Logger
}

func NewPublisher(url string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Fanout: every bound consumer gets every event.
	err = ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, logger: logger}, nil
}

func (p *Publisher) PublishOrderEvent(ctx context.Context, ev usecase.OrderEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp091.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("publish order event: %w", err)
	}

	p.logger.Debug("order event published", "order_id", ev.OrderID, "status", ev.Status)
	return nil
}

func (p *Publisher) Close() {
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
