// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvassign/assignment"
)

const metricsNamespace = "assignment"

// Solve outcomes used as the "outcome" label.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics owns a private registry so that repeated runs in one process never
// collide with the global default registry.
type Metrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	ops      *prometheus.CounterVec
	solves   *prometheus.CounterVec
}

// NewMetrics creates and registers the solver collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of a single solve.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"solver", "size"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "operations_total",
			Help:      "Elementary operations counted by solvers.",
		}, []string{"solver"}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "solves_total",
			Help:      "Solves by outcome.",
		}, []string{"solver", "outcome"}),
	}
	m.registry.MustRegister(m.duration, m.ops, m.solves)

	return m
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// observe records one solve. A nil receiver is a no-op.
func (m *Metrics) observe(solver string, size int, seconds float64, res *assignment.Result, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.solves.WithLabelValues(solver, OutcomeError).Inc()
		return
	}
	m.solves.WithLabelValues(solver, OutcomeOK).Inc()
	m.duration.WithLabelValues(solver, strconv.Itoa(size)).Observe(seconds)
	if res != nil {
		m.ops.WithLabelValues(solver).Add(float64(res.Ops))
	}
}

// WriteTextfile writes every collected metric to path in the text exposition
// format. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("experiment: write metrics: %w", err)
	}

	return nil
}
