// Package observability bundles the logger, tracer provider and metrics that
// modules receive at construction time.
package observability

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/metrics"
	"github.com/Black-And-White-Club/mahjong-ledger/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const metricsNamespace = "mahjong_ledger"

type Observability struct {
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
	Registry       *prometheus.Registry
	Metrics        metrics.OperationMetrics
}

// New builds the production bundle. Logs go to w as JSON outside development.
func New(cfg config.ObservabilityConfig, w io.Writer) (Observability, error) {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	var handler slog.Handler
	if cfg.Environment == "development" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	logger := slog.New(handler).With(
		slog.String("service", "mahjong-ledger"),
		slog.String("environment", cfg.Environment),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.NewPrometheus(reg, metricsNamespace)
	if err != nil {
		return Observability{}, err
	}

	return Observability{
		Logger:         logger,
		TracerProvider: otel.GetTracerProvider(),
		Registry:       reg,
		Metrics:        m,
	}, nil
}

// NewNoop returns a bundle that discards logs, spans and metrics.
func NewNoop() Observability {
	return Observability{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		TracerProvider: noop.NewTracerProvider(),
		Registry:       prometheus.NewRegistry(),
		Metrics:        metrics.NewNoop(),
	}
}

// Tracer returns a named tracer from the bundle's provider.
func (o Observability) Tracer(name string) trace.Tracer {
	return o.TracerProvider.Tracer(name)
}

// MetricsHandler serves the registry in the Prometheus exposition format.
func (o Observability) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(o.Registry, promhttp.HandlerOpts{Registry: o.Registry})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
