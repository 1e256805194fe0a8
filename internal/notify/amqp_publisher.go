package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPPublisher publishes budget warnings as persistent JSON messages to a
// durable direct exchange.
type AMQPPublisher struct {
	conn       *amqp.Connection
	ch         *amqp.Channel
	publisher  channel
	exchange   string
	routingKey string
	mu         sync.Mutex
}

func NewAMQPPublisher(url, exchange, routingKey string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{
		conn:       conn,
		ch:         ch,
		publisher:  ch,
		exchange:   exchange,
		routingKey: routingKey,
	}, nil
}

func (p *AMQPPublisher) NotifyBudgetWarning(ctx context.Context, warning BudgetWarning) error {
	body, err := json.Marshal(warning)
	if err != nil {
		return fmt.Errorf("marshal budget warning: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.publisher.PublishWithContext(
		ctx,
		p.exchange,
		p.routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    warning.OccurredAt,
			Type:         "budget.warning",
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish budget warning: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
