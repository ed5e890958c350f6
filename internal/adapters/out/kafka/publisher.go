// Package kafka publishes order events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"logistics/internal/adapters/out/events"
	"logistics/internal/core/domain/model/order"

	kafkago "github.com/segmentio/kafka-go"
)

const (
	writeTimeout = 2 * time.Second
	// batchTimeout bounds how long a write waits for more messages. Events are published
	// inside the request, and the writer's 1s default would hold the reply back that long.
	batchTimeout = 10 * time.Millisecond
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher writes one message per event, keyed by order id so that the events of
// one order stay in one partition and keep their order.
type Publisher struct {
	writer messageWriter
	topic  string
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{writer: kafkago.NewWriter(writerConfig(brokers, topic)), topic: topic}
}

func writerConfig(brokers []string, topic string) kafkago.WriterConfig {
	return kafkago.WriterConfig{
		Brokers:      brokers,
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: batchTimeout,
	}
}

func (p *Publisher) Publish(ctx context.Context, evts ...order.ChangedEvent) error {
	if len(evts) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, 0, len(evts))
	for _, e := range evts {
		msg := events.NewOrderChangedMessage(e)
		body, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("marshal order event: %w", err)
		}
		msgs = append(msgs, kafkago.Message{
			Key:   []byte(msg.OrderID),
			Value: body,
			Time:  msg.OccurredAt,
			Headers: []kafkago.Header{
				{Key: "type", Value: []byte(msg.Type)},
			},
		})
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d order events to %s: %w", len(msgs), p.topic, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
