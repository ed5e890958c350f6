// Package rabbitmq publishes order events to a topic exchange. Routing keys are
// order.<status>, so consumers can bind to order.* or to single transitions.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"logistics/internal/adapters/out/events"
	"logistics/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 3 * time.Second

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type session struct {
	conn io.Closer
	ch   channel
}

type dialFunc func(url string) (session, error)

func dialAMQP(url string) (session, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return session{}, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return session{}, err
	}
	return session{conn: conn, ch: ch}, nil
}

// Publisher keeps one connection and channel. A publish on a closed channel dials
// again before giving up.
type Publisher struct {
	mu       sync.Mutex
	url      string
	exchange string
	dial     dialFunc
	session  session
	logger   *slog.Logger
}

// NewPublisher connects to url and declares exchange as a durable topic exchange.
func NewPublisher(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	p := newPublisher(url, exchange, dialAMQP, logger)
	if err := p.connect(); err != nil {
		return nil, fmt.Errorf("rabbitmq connect: %w", err)
	}
	return p, nil
}

func newPublisher(url, exchange string, dial dialFunc, logger *slog.Logger) *Publisher {
	return &Publisher{
		url:      url,
		exchange: exchange,
		dial:     dial,
		logger:   logger.With("component", "rabbitmq-publisher"),
	}
}

func (p *Publisher) Publish(ctx context.Context, evts ...order.ChangedEvent) error {
	if len(evts) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.alive() {
		p.logger.InfoContext(ctx, "channel closed, reconnecting")
		if err := p.connect(); err != nil {
			return fmt.Errorf("rabbitmq reconnect: %w", err)
		}
	}

	for _, e := range evts {
		msg := events.NewOrderChangedMessage(e)
		body, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("marshal order event: %w", err)
		}

		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		err = p.session.ch.PublishWithContext(pubCtx, p.exchange, msg.RoutingKey(), false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         msg.Type,
			MessageId:    msg.OrderID + ":" + msg.Status,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		})
		cancel()
		if err != nil {
			p.closeSession()
			return fmt.Errorf("publish %s: %w", msg.RoutingKey(), err)
		}
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeSession()
}

func (p *Publisher) alive() bool {
	return p.session.ch != nil && !p.session.ch.IsClosed()
}

// connect must be called with mu held, or before the publisher is shared.
func (p *Publisher) connect() error {
	s, err := p.dial(p.url)
	if err != nil {
		return err
	}
	if err := s.ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = s.ch.Close()
		_ = s.conn.Close()
		return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}
	p.session = s
	return nil
}

func (p *Publisher) closeSession() error {
	s := p.session
	p.session = session{}

	var firstErr error
	if s.ch != nil && !s.ch.IsClosed() {
		firstErr = s.ch.Close()
	}
	if s.conn != nil {
		if err := s.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
