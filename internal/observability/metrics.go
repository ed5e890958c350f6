// Package observability holds the Prometheus collectors of the service.
package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "logistics"

// Dispatch outcomes.
const (
	DispatchAssigned = "assigned"
	DispatchIdle     = "idle"
	DispatchFailed   = "failed"
)

// Metrics owns a registry of its own so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	OrderTransitions    *prometheus.CounterVec
	EventPublishErrors  prometheus.Counter
	DispatchRuns        *prometheus.CounterVec
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		OrderTransitions: f.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "order_transitions_total", Help: "Committed order changes by resulting status"},
			[]string{"status"},
		),
		EventPublishErrors: f.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "event_publish_errors_total", Help: "Order event batches that failed to publish"},
		),
		DispatchRuns: f.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "dispatch_runs_total", Help: "Auto dispatch runs by outcome"},
			[]string{"outcome"},
		),
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distribution",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one handled request. path is the route template, not the raw URL.
func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveDispatch(outcome string) {
	m.DispatchRuns.WithLabelValues(outcome).Inc()
}

// CountingPublisher counts every event it sees before handing it on.
type CountingPublisher struct {
	next    ports.EventPublisher
	metrics *Metrics
}

// NewCountingPublisher wraps next, which may be nil when no broker is configured.
func NewCountingPublisher(next ports.EventPublisher, metrics *Metrics) *CountingPublisher {
	return &CountingPublisher{next: next, metrics: metrics}
}

func (p *CountingPublisher) Publish(ctx context.Context, events ...order.ChangedEvent) error {
	for _, e := range events {
		p.metrics.OrderTransitions.WithLabelValues(e.Status.String()).Inc()
	}
	if p.next == nil {
		return nil
	}
	if err := p.next.Publish(ctx, events...); err != nil {
		p.metrics.EventPublishErrors.Inc()
		return err
	}
	return nil
}
