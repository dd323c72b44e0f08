package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	routingKeyCustomerSaved = "customer.saved"
	routingKeyTicketSaved   = "ticket.saved"
	publisherAppID          = "repairshop"
)

type SaveAction string

const (
	ActionCreated SaveAction = "created"
	ActionUpdated SaveAction = "updated"
)

type CustomerSavedEvent struct {
	CustomerID int64      `json:"customerId"`
	Action     SaveAction `json:"action"`
	Timestamp  time.Time  `json:"timestamp"`
}

type TicketSavedEvent struct {
	TicketID   int64      `json:"ticketId"`
	CustomerID int64      `json:"customerId"`
	Tech       string     `json:"tech"`
	Action     SaveAction `json:"action"`
	Timestamp  time.Time  `json:"timestamp"`
}

type EventPublisher interface {
	PublishCustomerSaved(ctx context.Context, event CustomerSavedEvent) error
	PublishTicketSaved(ctx context.Context, event TicketSavedEvent) error
}

type RabbitMQEventPublisher struct {
	conn         *amqp.Connection
	exchangeName string
	logger       *slog.Logger
}

var _ EventPublisher = (*RabbitMQEventPublisher)(nil)

func NewRabbitMQEventPublisher(conn *amqp.Connection, exchangeName string, logger *slog.Logger) (*RabbitMQEventPublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("RabbitMQ connection cannot be nil")
	}
	if exchangeName == "" {
		return nil, fmt.Errorf("RabbitMQ exchange name cannot be empty")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	tempCh, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open temporary channel for exchange declaration: %w", err)
	}
	defer tempCh.Close()

	err = tempCh.ExchangeDeclare(
		exchangeName,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", exchangeName, err)
	}
	logger.Info("Ensured RabbitMQ exchange exists", "exchange", exchangeName, "type", amqp.ExchangeTopic)

	return &RabbitMQEventPublisher{
		conn:         conn,
		exchangeName: exchangeName,
		logger:       logger.With("component", "RabbitMQEventPublisher", "exchange", exchangeName),
	}, nil
}

func (p *RabbitMQEventPublisher) PublishCustomerSaved(ctx context.Context, event CustomerSavedEvent) error {
	return p.publish(ctx, routingKeyCustomerSaved, event)
}

func (p *RabbitMQEventPublisher) PublishTicketSaved(ctx context.Context, event TicketSavedEvent) error {
	return p.publish(ctx, routingKeyTicketSaved, event)
}

func (p *RabbitMQEventPublisher) publish(ctx context.Context, routingKey string, payload interface{}) error {
	logCtx := p.logger.With(slog.String("routingKey", routingKey))

	channel, err := p.conn.Channel()
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to open RabbitMQ channel", slog.Any("error", err))
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer channel.Close()

	body, err := json.Marshal(payload)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to marshal event payload to JSON", slog.Any("error", err))
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	logCtx.DebugContext(ctx, "Publishing message", "bodySize", len(body))

	err = channel.PublishWithContext(
		ctx,
		p.exchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
			AppId:        publisherAppID,
		},
	)

	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to publish message to RabbitMQ", slog.Any("error", err))
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logCtx.InfoContext(ctx, "Successfully published message")
	return nil
}

// NoopEventPublisher is used when event publishing is disabled in config.
type NoopEventPublisher struct{}

var _ EventPublisher = (*NoopEventPublisher)(nil)

func (NoopEventPublisher) PublishCustomerSaved(context.Context, CustomerSavedEvent) error {
	return nil
}

func (NoopEventPublisher) PublishTicketSaved(context.Context, TicketSavedEvent) error {
	return nil
}
