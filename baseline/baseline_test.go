package baseline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvassign/assignment"
	"github.com/katalvlaran/lvassign/baseline"
	"github.com/katalvlaran/lvassign/internal/testutil"
	"github.com/katalvlaran/lvassign/matrix"
)

func TestBruteForce_Scenarios(t *testing.T) {
	for _, sc := range testutil.Scenarios() {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			res, err := baseline.BruteForce(context.Background(), testutil.Dense(sc.Rows))
			require.NoError(t, err)
			assert.Equal(t, baseline.BruteForceName, res.Solver)
			assert.Equal(t, sc.Cost, res.Cost)
			assert.Equal(t, assignment.FromCols(sc.Cols), res.Assignment)
		})
	}
}

func TestBruteForce_OpsCountsEveryPermutation(t *testing.T) {
	// 4! permutations × 4 additions.
	res, err := baseline.BruteForce(context.Background(), testutil.Uniform(1, 4))
	require.NoError(t, err)
	assert.EqualValues(t, 24*4, res.Ops)
}

func TestBruteForce_TooLarge(t *testing.T) {
	m, err := matrix.NewDense(baseline.MaxBruteForceN+1, baseline.MaxBruteForceN+1)
	require.NoError(t, err)

	_, err = baseline.BruteForce(context.Background(), m)
	require.ErrorIs(t, err, baseline.ErrTooLarge)
	require.ErrorIs(t, err, assignment.ErrInvalidInput)
}

func TestBruteForce_Empty(t *testing.T) {
	m, _ := matrix.NewDense(0, 0)
	res, err := baseline.BruteForce(context.Background(), m)
	require.NoError(t, err)
	assert.Empty(t, res.Assignment)
}

func TestGreedy_Scenarios(t *testing.T) {
	// On A greedy grabs the zero at (1,1) and pays 6 against an optimum of 5.
	// On the reroute case it takes (0,0) first and is forced into (1,1).
	want := map[string]struct {
		cols []int
		cost float64
	}{
		"A/3x3":          {[]int{0, 1, 2}, 6},
		"B/2x2 diagonal": {[]int{0, 1}, 2},
		"C/identity":     {[]int{0, 1, 2}, 0},
		"1x1":            {[]int{0}, 3.5},
		"reroute 2x2":    {[]int{0, 1}, 6},
	}
	for _, sc := range testutil.Scenarios() {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			w, ok := want[sc.Name]
			require.True(t, ok)

			res, err := baseline.Greedy(context.Background(), testutil.Dense(sc.Rows))
			require.NoError(t, err)
			assert.Equal(t, baseline.GreedyName, res.Solver)
			assert.Equal(t, assignment.FromCols(w.cols), res.Assignment)
			assert.Equal(t, w.cost, res.Cost)
		})
	}
}

// TestGreedy_NeverBeatsOptimum: greedy is a valid permutation whose cost is
// bounded below by the exhaustive optimum.
func TestGreedy_NeverBeatsOptimum(t *testing.T) {
	ctx := context.Background()
	var n int
	var seed int64
	for n = 1; n <= 7; n++ {
		for seed = 1; seed <= 4; seed++ {
			m := testutil.Ints(seed*7+int64(n), n, 9)
			g, err := baseline.Greedy(ctx, m)
			require.NoError(t, err)
			require.NoError(t, assignment.CheckPermutation(g.Assignment, n))

			total, err := assignment.TotalCost(m, g.Assignment)
			require.NoError(t, err)
			require.Equal(t, total, g.Cost)

			opt, err := baseline.BruteForce(ctx, m)
			require.NoError(t, err)
			require.GreaterOrEqual(t, g.Cost, opt.Cost)
		}
	}
}

func TestGreedy_TieBreakRowMajor(t *testing.T) {
	m := testutil.Dense([][]float64{{1, 1}, {1, 1}})
	res, err := baseline.Greedy(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, assignment.FromCols([]int{0, 1}), res.Assignment)
}

func TestBaselines_InvalidInput(t *testing.T) {
	bad := testutil.Dense([][]float64{{1, 2, 3}})
	_, err := baseline.Greedy(context.Background(), bad)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = baseline.BruteForce(context.Background(), bad)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = baseline.Greedy(context.Background(), nil)
	require.ErrorIs(t, err, assignment.ErrInvalidInput)
}

func TestGreedy_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := baseline.Greedy(ctx, testutil.Uniform(3, 3))
	require.ErrorIs(t, err, context.Canceled)
}
