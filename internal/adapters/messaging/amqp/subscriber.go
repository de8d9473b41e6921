package amqp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/rabbitmq/amqp091-go"
)

// consumeChannel is the subset of *amqp091.Channel the subscriber needs.
type consumeChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error)
	Close() error
}

// ErrDeliveriesClosed is returned by Run when the broker closes the delivery channel.
var ErrDeliveriesClosed = errors.New("amqp delivery channel closed")

// Subscriber receives every budget event on a private, auto-deleted queue.
type Subscriber struct {
	conn       *amqp091.Connection
	channel    consumeChannel
	deliveries <-chan amqp091.Delivery
}

// NewSubscriber dials url and binds a server-named queue to every event type of the exchange.
func NewSubscriber(url, exchangeName string) (*Subscriber, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	s, err := newSubscriber(ch, exchangeName)
	if err != nil {
		conn.Close()
		return nil, err
	}
	s.conn = conn
	return s, nil
}

func newSubscriber(ch consumeChannel, exchangeName string) (*Subscriber, error) {
	fail := func(step string, err error) (*Subscriber, error) {
		ch.Close()
		return nil, fmt.Errorf("%s: %w", step, err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "direct", true, false, false, false, nil); err != nil {
		return fail("declare exchange", err)
	}
	q, err := ch.QueueDeclare(
		"",    // server-named
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fail("declare queue", err)
	}
	for _, t := range domain.EventTypes() {
		if err := ch.QueueBind(q.Name, string(t), exchangeName, false, nil); err != nil {
			return fail("bind queue to "+string(t), err)
		}
	}
	deliveries, err := ch.Consume(
		q.Name, // queue
		"",     // consumer
		true,   // auto-ack
		true,   // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // args
	)
	if err != nil {
		return fail("consume", err)
	}
	return &Subscriber{channel: ch, deliveries: deliveries}, nil
}

// Run calls handle for every event until ctx is done or the deliveries stop.
// Messages that cannot be decoded are logged and dropped.
func (s *Subscriber) Run(ctx context.Context, handle func(context.Context, domain.BudgetEvent)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-s.deliveries:
			if !ok {
				return ErrDeliveriesClosed
			}
			msg, err := BudgetEventMessageFromJSON(d.Body)
			if err != nil {
				slog.WarnContext(ctx, "Dropping undecodable budget event",
					"routing_key", d.RoutingKey,
					"error", err)
				continue
			}
			handle(ctx, msg.ToDomain())
		}
	}
}

func (s *Subscriber) Close() error {
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
