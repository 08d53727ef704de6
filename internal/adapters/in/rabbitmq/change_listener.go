package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minhanhng/salon-availability/internal/config"
	"github.com/minhanhng/salon-availability/internal/core/ports/in"
	"github.com/minhanhng/salon-availability/internal/core/ports/out"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ChangeListener consumes change events the front-of-house app
// publishes whenever appointments, schedules or check-ins are edited,
// and drops the affected cache entries so the next ranking call sees
// fresh data.
type ChangeListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.SchedulingUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type ChangeResourceType string

const (
	ChangeResourceTypeAppointment ChangeResourceType = "appointment"
	ChangeResourceTypeSchedule    ChangeResourceType = "schedule"
	ChangeResourceTypeTimeRecord  ChangeResourceType = "timerecord"
	ChangeResourceTypeAll         ChangeResourceType = "_all_"
)

type ChangeMessageRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType ChangeResourceType
}

type ChangeMessage struct {
	Date       string `json:"date"`
	EmployeeID string `json:"employee_id,omitempty"`
}

func NewChangeListener(useCase in.SchedulingUseCase, cfg *config.Config, logger out.LoggerPort) (*ChangeListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.AmqpUri)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.AmqpUri,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &ChangeListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *ChangeListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	err = l.channel.QueueBind(
		queue.Name,
		"salon.front-desk.#",
		l.cfg.RabbitMQ.Exchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if err := l.processMessage(ctx, msg); err != nil {
					l.logger.Error("change.message.process_failed", out.LogFields{
						"error":      err.Error(),
						"routingKey": msg.RoutingKey,
					})
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	l.logger.Info("change.queue.started", out.LogFields{
		"queue": queue.Name,
	})

	return nil
}

// Example routing keys:
// salon.front-desk.appointment
// salon.front-desk.schedule
// salon.front-desk.timerecord
// salon.front-desk._all_
func (l *ChangeListener) parseRoutingKey(msg amqp.Delivery) (ChangeMessageRoutingKey, error) {
	parts := strings.Split(msg.RoutingKey, ".")

	if len(parts) < 3 {
		return ChangeMessageRoutingKey{}, fmt.Errorf("invalid routing key: %s", msg.RoutingKey)
	}

	return ChangeMessageRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: ChangeResourceType(parts[2]),
	}, nil
}

func (l *ChangeListener) processMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseRoutingKey(msg)
	if err != nil {
		return err
	}

	if routingKey.ResourceType == ChangeResourceTypeAll {
		l.logger.Info("change.message.invalidate_all", out.LogFields{
			"routingKey": msg.RoutingKey,
		})
		return l.useCase.InvalidateAllCache(ctx)
	}

	var message ChangeMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		return err
	}

	l.logger.Info("change.message.received", out.LogFields{
		"resourceType": routingKey.ResourceType,
		"date":         message.Date,
	})

	switch routingKey.ResourceType {
	case ChangeResourceTypeAppointment, ChangeResourceTypeTimeRecord:
		if message.Date == "" {
			return fmt.Errorf("change message without date: %s", string(msg.Body))
		}
		return l.useCase.InvalidateDayCache(ctx, message.Date)
	case ChangeResourceTypeSchedule:
		// Schedule edits change the roster snapshot, not a single day
		return l.useCase.InvalidateRosterCache(ctx)
	}

	l.logger.Warn("change.message.unknown_resource", out.LogFields{
		"resourceType": routingKey.ResourceType,
	})
	return nil
}

func (l *ChangeListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}
