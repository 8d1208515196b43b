// Package metrics records per-operation counters and latencies for the
// service layer.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetrics is implemented by the Prometheus recorder and the noop used
// in tests.
type OperationMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, d time.Duration)
	RecordPointImbalance(ctx context.Context, imbalance float64)
	RecordEventPublishFailure(ctx context.Context, topic string)
}

// PrometheusMetrics is the OperationMetrics backed by client_golang.
type PrometheusMetrics struct {
	attempts       *prometheus.CounterVec
	successes      *prometheus.CounterVec
	failures       *prometheus.CounterVec
	durations      *prometheus.HistogramVec
	imbalance      prometheus.Histogram
	publishFailure *prometheus.CounterVec
}

// NewPrometheus registers the collectors on reg.
func NewPrometheus(reg prometheus.Registerer, namespace string) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_attempts_total",
			Help:      "Service operations started.",
		}, []string{"service", "operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_success_total",
			Help:      "Service operations that completed.",
		}, []string{"service", "operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failure_total",
			Help:      "Service operations that failed with an infrastructure error.",
		}, []string{"service", "operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "operation"}),
		imbalance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "game_point_imbalance",
			Help:      "Absolute sum of the four point values of recorded games.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 10, 50},
		}),
		publishFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_failure_total",
			Help:      "Events that could not be published after a committed write.",
		}, []string{"topic"}),
	}

	for _, c := range []prometheus.Collector{m.attempts, m.successes, m.failures, m.durations, m.imbalance, m.publishFailure} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation, service string) {
	m.attempts.WithLabelValues(service, operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation, service string) {
	m.successes.WithLabelValues(service, operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation, service string) {
	m.failures.WithLabelValues(service, operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation, service string, d time.Duration) {
	m.durations.WithLabelValues(service, operation).Observe(d.Seconds())
}

func (m *PrometheusMetrics) RecordPointImbalance(_ context.Context, imbalance float64) {
	if imbalance < 0 {
		imbalance = -imbalance
	}
	m.imbalance.Observe(imbalance)
}

func (m *PrometheusMetrics) RecordEventPublishFailure(_ context.Context, topic string) {
	m.publishFailure.WithLabelValues(topic).Inc()
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func NewNoop() NoopMetrics { return NoopMetrics{} }

func (NoopMetrics) RecordOperationAttempt(context.Context, string, string)                 {}
func (NoopMetrics) RecordOperationSuccess(context.Context, string, string)                 {}
func (NoopMetrics) RecordOperationFailure(context.Context, string, string)                 {}
func (NoopMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}
func (NoopMetrics) RecordPointImbalance(context.Context, float64)                          {}
func (NoopMetrics) RecordEventPublishFailure(context.Context, string)                      {}

var (
	_ OperationMetrics = (*PrometheusMetrics)(nil)
	_ OperationMetrics = NoopMetrics{}
)
