package observability_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/observability"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, events ...order.ChangedEvent) error {
	return m.Called(ctx, events).Error(0)
}

func event(status order.Status) order.ChangedEvent {
	return order.ChangedEvent{OrderID: kernel.NewUUID(), CustomerID: kernel.NewUUID(), Status: status}
}

func TestCountingPublisher_CountsByStatus(t *testing.T) {
	ctx := t.Context()
	m := observability.NewMetrics()
	next := new(MockPublisher)
	next.On("Publish", ctx, mock.Anything).Return(nil).Twice()
	p := observability.NewCountingPublisher(next, m)

	require.NoError(t, p.Publish(ctx, event(order.Pending), event(order.Pending)))
	require.NoError(t, p.Publish(ctx, event(order.Completed)))

	assert.InDelta(t, 2, testutil.ToFloat64(m.OrderTransitions.WithLabelValues("Pending")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrderTransitions.WithLabelValues("Completed")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.EventPublishErrors), 0)
	next.AssertExpectations(t)
}

func TestCountingPublisher_CountsFailures(t *testing.T) {
	ctx := t.Context()
	m := observability.NewMetrics()
	next := new(MockPublisher)
	next.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	err := observability.NewCountingPublisher(next, m).Publish(ctx, event(order.Cancelled))

	require.EqualError(t, err, "broker down")
	assert.InDelta(t, 1, testutil.ToFloat64(m.EventPublishErrors), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrderTransitions.WithLabelValues("Cancelled")), 0)
}

func TestCountingPublisher_WithoutBroker(t *testing.T) {
	m := observability.NewMetrics()

	require.NoError(t, observability.NewCountingPublisher(nil, m).Publish(t.Context(), event(order.Assigned)))
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrderTransitions.WithLabelValues("Assigned")), 0)
}

func TestMetrics_HandlerExposesObservations(t *testing.T) {
	m := observability.NewMetrics()
	m.ObserveHTTP(http.MethodGet, "/api/v1/orders", http.StatusOK, 15*time.Millisecond)
	m.ObserveDispatch(observability.DispatchIdle)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `logistics_http_requests_total{method="GET",path="/api/v1/orders",status="200"} 1`)
	assert.Contains(t, body, `logistics_dispatch_runs_total{outcome="idle"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
