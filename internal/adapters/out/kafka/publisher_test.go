package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"logistics/internal/adapters/out/events"
	"logistics/internal/adapters/out/kafka"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct{ mock.Mock }

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	return m.Called(ctx, msgs).Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func event(t *testing.T, status order.Status) order.ChangedEvent {
	t.Helper()
	price, err := kernel.MoneyFromString("20.5")
	require.NoError(t, err)
	return order.ChangedEvent{
		OrderID:    kernel.NewUUID(),
		CustomerID: kernel.NewUUID(),
		Status:     status,
		Price:      price,
		OccurredAt: time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_Publish_KeysByOrder(t *testing.T) {
	w := new(MockWriter)
	first := event(t, order.Pending)
	second := event(t, order.Cancelled)

	var written []kafkago.Message
	w.On("WriteMessages", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { written = args.Get(1).([]kafkago.Message) }).
		Return(nil).Once()

	err := kafka.NewPublisherWithWriter(w, "order.changed").Publish(t.Context(), first, second)

	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.Equal(t, first.OrderID.String(), string(written[0].Key))
	assert.Equal(t, second.OrderID.String(), string(written[1].Key))

	var body events.OrderChangedMessage
	require.NoError(t, json.Unmarshal(written[1].Value, &body))
	assert.Equal(t, "Cancelled", body.Status)
	assert.Equal(t, "20.50", body.Price)
	assert.Equal(t, []kafkago.Header{{Key: "type", Value: []byte(events.OrderChangedType)}}, written[1].Headers)
	w.AssertExpectations(t)
}

func TestPublisher_Publish_WriterError(t *testing.T) {
	w := new(MockWriter)
	w.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("leader not available")).Once()

	err := kafka.NewPublisherWithWriter(w, "order.changed").Publish(t.Context(), event(t, order.Pending))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "order.changed")
	assert.Contains(t, err.Error(), "leader not available")
}

func TestPublisher_Publish_NothingToSend(t *testing.T) {
	w := new(MockWriter)

	require.NoError(t, kafka.NewPublisherWithWriter(w, "order.changed").Publish(t.Context()))
	w.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestPublisher_Close(t *testing.T) {
	w := new(MockWriter)
	w.On("Close").Return(nil).Once()

	require.NoError(t, kafka.NewPublisherWithWriter(w, "order.changed").Close())
	w.AssertExpectations(t)
}

func TestWriterConfig(t *testing.T) {
	cfg := kafka.WriterConfig([]string{"kafka-1:9092", "kafka-2:9092"}, "order.changed")

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "order.changed", cfg.Topic)
	assert.IsType(t, &kafkago.Hash{}, cfg.Balancer)
	assert.Positive(t, cfg.BatchTimeout)
	assert.LessOrEqual(t, cfg.BatchTimeout, 50*time.Millisecond)
}
