package assignment_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvassign/assignment"
	"github.com/katalvlaran/lvassign/matrix"
)

func TestPrepare_CopiesAndValidates(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{4, 1}, {2, 0}})
	require.NoError(t, err)

	n, work, err := assignment.Prepare(m)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, []float64{4, 1, 2, 0}, work)

	// The working copy is private to the caller.
	work[0] = -1
	v, _ := m.At(0, 0)
	assert.Equal(t, 4.0, v)
}

func TestPrepare_ErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]float64
		wantKind error
		wantWhy  error
	}{
		{"non-square", [][]float64{{1, 2, 3}, {4, 5, 6}}, assignment.ErrInvalidInput, matrix.ErrNonSquare},
		{"nan", [][]float64{{math.NaN()}}, assignment.ErrNumerical, matrix.ErrNaNInf},
		{"-inf", [][]float64{{0, math.Inf(-1)}, {1, 1}}, assignment.ErrNumerical, matrix.ErrNaNInf},
		{"negative", [][]float64{{0, -1}, {1, 1}}, assignment.ErrInvalidInput, matrix.ErrNegative},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.FromRows(tc.rows)
			require.NoError(t, err)
			_, _, err = assignment.Prepare(m)
			require.ErrorIs(t, err, tc.wantKind)
			require.ErrorIs(t, err, tc.wantWhy)
		})
	}

	_, _, err := assignment.Prepare(nil)
	require.ErrorIs(t, err, assignment.ErrInvalidInput)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCheckPermutation(t *testing.T) {
	require.NoError(t, assignment.CheckPermutation(assignment.Assignment{{0, 1}, {1, 0}}, 2))
	require.NoError(t, assignment.CheckPermutation(nil, 0))

	bad := []assignment.Assignment{
		{{0, 0}},
		{{0, 0}, {1, 0}},
		{{0, 0}, {0, 1}},
		{{0, 0}, {1, 2}},
	}
	for _, a := range bad {
		require.ErrorIs(t, assignment.CheckPermutation(a, 2), assignment.ErrNotPermutation, "%v", a)
	}
}

func TestTotalCostAndMapping(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}})
	require.NoError(t, err)

	a := assignment.FromCols([]int{1, 0, 2})
	total, err := assignment.TotalCost(m, a)
	require.NoError(t, err)
	assert.Equal(t, 5.0, total)
	assert.Equal(t, []int{1, 0, 2}, a.ColOf(3))

	shuffled := assignment.Assignment{{2, 2}, {0, 1}, {1, 0}}
	shuffled.Sort()
	if diff := cmp.Diff(a, shuffled); diff != "" {
		t.Fatalf("sorted assignment mismatch (-want +got):\n%s", diff)
	}
}

func TestCounterMonotone(t *testing.T) {
	var c assignment.Counter
	c.Inc()
	c.Add(4)
	c.Add(-10)
	assert.Equal(t, int64(5), c.Value())
}

func TestApplyOptions(t *testing.T) {
	cfg := assignment.Apply(nil)
	assert.True(t, cfg.Logger.GetSink() == nil || !cfg.Logger.Enabled())
}
