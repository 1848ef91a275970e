// SPDX-License-Identifier: MIT

package baseline

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvassign/assignment"
	"github.com/katalvlaran/lvassign/matrix"
)

// GreedyName identifies the greedy solver in results and reports.
const GreedyName = "greedy"

// Greedy repeatedly picks the globally cheapest cell among rows and columns
// not yet used, then retires that row and column. Ties go to the first cell in
// row-major order. The result is a valid permutation but usually not optimal.
//
// Ops counts one comparison per candidate cell per pick.
// Complexity: O(n³) time, O(n) extra space.
func Greedy(ctx context.Context, m matrix.Matrix, opts ...assignment.Option) (*assignment.Result, error) {
	cfg := assignment.Apply(opts...)
	if ctx == nil {
		ctx = context.Background()
	}
	n, c, err := assignment.Prepare(m)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}

	var (
		ops     assignment.Counter
		k, i, j int
		bi, bj  int
		best    float64
		total   float64
	)
	rowUsed := make([]bool, n)
	colUsed := make([]bool, n)
	cols := make([]int, n)
	for k = 0; k < n; k++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("baseline: %w", err)
		}
		best, bi, bj = math.Inf(1), -1, -1
		for i = 0; i < n; i++ {
			if rowUsed[i] {
				continue
			}
			for j = 0; j < n; j++ {
				if colUsed[j] {
					continue
				}
				ops.Inc()
				if c[i*n+j] < best {
					best, bi, bj = c[i*n+j], i, j
				}
			}
		}
		rowUsed[bi], colUsed[bj] = true, true
		cols[bi] = bj
		total += best
		cfg.Logger.V(2).Info("greedy pick", "row", bi, "col", bj, "cost", best)
	}

	return &assignment.Result{
		Solver:     GreedyName,
		Assignment: assignment.FromCols(cols),
		Cost:       total,
		Ops:        ops.Value(),
	}, nil
}
