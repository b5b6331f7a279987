package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"newsreader/internal/domain"
	"newsreader/internal/logger"
)

const appID = "newsreader"

var errPublisherClosed = errors.New("rabbitmq publisher closed")

// RabbitMQ publishes download events so a notification host outside the
// process can render progress and offer a cancel action.
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cfg     Config
	logger  *logger.Logger

	mu     sync.Mutex
	closed bool
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, log *logger.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	log = log.WithComponent("rabbitmq")
	log.Info("download events go to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{conn: conn, channel: ch, cfg: cfg, logger: log}, nil
}

// declareTopology sets up a durable direct exchange and the queue the
// notification host consumes from.
func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", cfg.QueueName, err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", q.Name, err)
	}
	return nil
}

// EventMessage is the wire form of a download event. Progress is only set
// while the batch is still running.
type EventMessage struct {
	Event     domain.DownloadEvent `json:"event"`
	Progress  *domain.Progress     `json:"progress,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}

func newEventMessage(event domain.DownloadEvent) EventMessage {
	msg := EventMessage{Event: event, Timestamp: time.Now().UTC()}
	if !event.State.Terminal() {
		msg.Progress = &domain.Progress{Completed: event.Completed, Total: event.Total}
	}
	return msg
}

func (r *RabbitMQ) Notify(ctx context.Context, event domain.DownloadEvent) error {
	msg := newEventMessage(event)
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal download event: %w", err)
	}

	publishing := amqp.Publishing{
		AppId:        appID,
		MessageId:    fmt.Sprintf("%s:%s:%d", event.BatchID, event.Type, event.Completed),
		Type:         string(event.Type),
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    msg.Timestamp,
		Headers:      amqp.Table{"batch_id": event.BatchID},
		Body:         body,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return errPublisherClosed
	}

	if err := r.channel.PublishWithContext(ctx, r.cfg.Exchange, r.cfg.RoutingKey, false, false, publishing); err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}

	r.logger.Debug("published download event",
		"batch_id", event.BatchID,
		"type", string(event.Type),
	)
	return nil
}

// Close is safe to call more than once.
func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	var errs []error
	if err := r.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		errs = append(errs, err)
	}
	if err := r.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
