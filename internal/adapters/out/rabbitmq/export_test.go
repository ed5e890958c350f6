package rabbitmq

import (
	"io"
	"log/slog"
)

type Channel = channel

// NewTestPublisher builds a publisher whose dials hand out ch and conn.
func NewTestPublisher(exchange string, dial func() (io.Closer, Channel, error)) *Publisher {
	return newPublisher("amqp://test", exchange, func(string) (session, error) {
		conn, ch, err := dial()
		if err != nil {
			return session{}, err
		}
		return session{conn: conn, ch: ch}, nil
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
