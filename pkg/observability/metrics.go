// Package observability exposes run and step counters as Prometheus
// metrics, delivered to the driver through its lifecycle hooks.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"sortvis/pkg/driver"
	"sortvis/pkg/step"
)

// Metrics holds the Prometheus collectors for the engine.
type Metrics struct {
	runsStarted   *prometheus.CounterVec
	runsCompleted *prometheus.CounterVec
	stepsTotal    *prometheus.CounterVec
	runDuration   *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortvis",
			Name:      "runs_started_total",
			Help:      "Sort runs started, by algorithm.",
		}, []string{"algorithm"}),
		runsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortvis",
			Name:      "runs_completed_total",
			Help:      "Sort runs driven to completion, by algorithm.",
		}, []string{"algorithm"}),
		stepsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortvis",
			Name:      "steps_total",
			Help:      "Steps produced, by algorithm.",
		}, []string{"algorithm"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sortvis",
			Name:      "run_duration_seconds",
			Help:      "Wall time from first to final step, by algorithm.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{"algorithm"}),
	}
	reg.MustRegister(m.runsStarted, m.runsCompleted, m.stepsTotal, m.runDuration)
	return m
}

// Hooks returns driver hooks that feed the collectors.
func (m *Metrics) Hooks() driver.Hooks {
	return driver.Hooks{
		OnRunStart: func(algorithm string, size int) {
			m.runsStarted.WithLabelValues(algorithm).Inc()
		},
		OnStep: func(algorithm string, s step.State) {
			m.stepsTotal.WithLabelValues(algorithm).Inc()
		},
		OnRunComplete: func(algorithm string, steps int, elapsed time.Duration) {
			m.runsCompleted.WithLabelValues(algorithm).Inc()
			m.runDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
		},
	}
}
