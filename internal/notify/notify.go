// Package notify announces generated reports on a message broker.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/schema"
	"github.com/rabbitmq/amqp091-go"
)

// EventReportGenerated is the event name carried in every report message.
const EventReportGenerated = "report.generated"

// ReportEvent is the JSON body published after a report is written.
type ReportEvent struct {
	Event     string    `json:"event"`
	Path      string    `json:"path"`
	EndDate   string    `json:"end_date"`
	Uploaded  []string  `json:"uploaded"`
	Timestamp time.Time `json:"timestamp"`
}

// NewReportEvent builds the message for a report output.
func NewReportEvent(out schema.ReportOutput, now time.Time) ReportEvent {
	uploaded := out.Uploaded
	if uploaded == nil {
		uploaded = []string{}
	}
	return ReportEvent{
		Event:     EventReportGenerated,
		Path:      out.Path,
		EndDate:   out.Summary.EndDate.Format(schema.DateFormat),
		Uploaded:  uploaded,
		Timestamp: now.UTC(),
	}
}

// channel is the part of *amqp091.Channel used for publishing.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPNotifier publishes report events to a topic exchange.
type AMQPNotifier struct {
	conn       *amqp091.Connection
	channel    channel
	exchange   string
	routingKey string
	now        func() time.Time
}

var _ contract.Notifier = &AMQPNotifier{}

// NewAMQPNotifier dials the broker and declares a durable topic exchange.
func NewAMQPNotifier(url, exchange, routingKey string) (*AMQPNotifier, error) {
	conn, err := amqp091.Dial(url)
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
		"topic",  // type
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

	return &AMQPNotifier{
		conn:       conn,
		channel:    ch,
		exchange:   exchange,
		routingKey: routingKey,
		now:        time.Now,
	}, nil
}

// PublishReport implements contract.Notifier.
func (n *AMQPNotifier) PublishReport(ctx context.Context, out schema.ReportOutput) error {
	event := NewReportEvent(out, n.now())
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = n.channel.PublishWithContext(
		ctx,
		n.exchange,   // exchange
		n.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.Timestamp,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.InfoContext(ctx, "Published report event",
		"path", event.Path,
		"end_date", event.EndDate,
		"exchange", n.exchange,
		"routing_key", n.routingKey)
	return nil
}

// Close implements contract.Notifier.
func (n *AMQPNotifier) Close() error {
	if n.channel != nil {
		_ = n.channel.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}

// NopNotifier drops every event. It is used when no broker is configured.
type NopNotifier struct{}

var _ contract.Notifier = NopNotifier{}

// PublishReport implements contract.Notifier.
func (NopNotifier) PublishReport(context.Context, schema.ReportOutput) error { return nil }

// Close implements contract.Notifier.
func (NopNotifier) Close() error { return nil }

// NewFromConfig returns an AMQP notifier when a broker URL is configured.
func NewFromConfig(cfg *contract.Config) (contract.Notifier, error) {
	if cfg.AMQPURL == "" {
		return NopNotifier{}, nil
	}
	return NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey)
}
