// Package metrics records one report run as Prometheus metrics and writes them in
// the text format read by node_exporter's textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds the metrics of one run on its own registry.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	runs           *prometheus.CounterVec
	rows           prometheus.Gauge
	outputBytes    prometheus.Gauge
	duration       prometheus.Gauge
	lastRunSuccess prometheus.Gauge
	lastRunUnix    prometheus.Gauge
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// NewManager creates a Manager with a fresh registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "apprep",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)
	m.runs = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "runs_total",
		Help:      "Report runs by outcome.",
	}, []string{"outcome"})
	m.rows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "report_rows",
		Help:      "Data rows written by the last run.",
	})
	m.outputBytes = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "output_bytes",
		Help:      "Size of the last verified report.",
	})
	m.duration = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "run_duration_seconds",
		Help:      "Wall time of the last run.",
	})
	m.lastRunSuccess = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "last_run_success",
		Help:      "1 when the last run produced a verified report.",
	})
	m.lastRunUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the last run finished.",
	})
	return m
}

// Run describes a finished run.
type Run struct {
	OK       bool
	Rows     int
	Bytes    int64
	Duration time.Duration
	Finished time.Time
}

// Observe records a finished run.
func (m *Manager) Observe(r Run) {
	outcome, success := "failure", 0.0
	if r.OK {
		outcome, success = "success", 1
	}
	m.runs.WithLabelValues(outcome).Inc()
	m.rows.Set(float64(r.Rows))
	m.outputBytes.Set(float64(r.Bytes))
	m.duration.Set(r.Duration.Seconds())
	m.lastRunSuccess.Set(success)
	m.lastRunUnix.Set(float64(r.Finished.Unix()))
}

// Registry returns the registry the metrics live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteFile writes the metrics to path atomically.
func (m *Manager) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}
