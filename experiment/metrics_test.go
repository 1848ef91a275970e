package experiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countSolves(t *testing.T, m *Metrics, solver, outcome string) float64 {
	t.Helper()
	return testutil.ToFloat64(m.solves.WithLabelValues(solver, outcome))
}

func opsTotal(t *testing.T, m *Metrics, solver string) float64 {
	t.Helper()
	return testutil.ToFloat64(m.ops.WithLabelValues(solver))
}

func TestMetrics_ObserveError(t *testing.T) {
	m := NewMetrics()
	m.observe("hungarian", 3, 0.1, nil, assertErr{})
	assert.Equal(t, 1.0, countSolves(t, m, "hungarian", OutcomeError))
	assert.Equal(t, 0.0, countSolves(t, m, "hungarian", OutcomeOK))
	// Failed solves do not feed the duration histogram.
	assert.Equal(t, 0, testutil.CollectAndCount(m.duration))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() { m.observe("flow", 1, 0, nil, nil) })
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.observe("flow", 4, 0.002, nil, nil)

	path := filepath.Join(t.TempDir(), "assign.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `assignment_solves_total{outcome="ok",solver="flow"} 1`)
	assert.Contains(t, text, `assignment_solve_duration_seconds_count{size="4",solver="flow"} 1`)
}

type assertErr struct{}

func (assertErr) Error() string { return "failed" }
