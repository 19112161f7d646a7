package events

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "smartsave.events"

	// Routing keys are stable identifiers consumers bind on.
	RoutingKeyExpenseCreated = "expense.created"
	RoutingKeyGoalCompleted  = "goal.completed"
)

// Publisher emits domain events. Implementations must be safe to call from
// request handlers; publishing failures are returned, never panicked.
type Publisher interface {
	PublishExpenseCreated(ctx context.Context, msg ExpenseCreatedMessage) error
	PublishGoalCompleted(ctx context.Context, msg GoalCompletedMessage) error
	Close() error
}

// Client is an AMQP-backed Publisher. A single channel is held for the
// lifetime of the process.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewClient connects to the broker and declares the events exchange. The
// exchange is a durable topic so consumers choose their own bindings.
func NewClient(url string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Client{conn: conn, channel: ch}, nil
}

func (c *Client) publish(ctx context.Context, routingKey string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return c.channel.PublishWithContext(ctx,
		exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

func (c *Client) PublishExpenseCreated(ctx context.Context, msg ExpenseCreatedMessage) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("encode expense event: %w", err)
	}
	return c.publish(ctx, RoutingKeyExpenseCreated, body)
}

func (c *Client) PublishGoalCompleted(ctx context.Context, msg GoalCompletedMessage) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("encode goal event: %w", err)
	}
	return c.publish(ctx, RoutingKeyGoalCompleted, body)
}

// Close releases the channel and connection.
func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// NopPublisher discards every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishExpenseCreated(context.Context, ExpenseCreatedMessage) error {
	return nil
}

func (NopPublisher) PublishGoalCompleted(context.Context, GoalCompletedMessage) error {
	return nil
}

func (NopPublisher) Close() error { return nil }
