// SPDX-License-Identifier: MIT

package baseline

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvassign/assignment"
	"github.com/katalvlaran/lvassign/matrix"
)

// BruteForceName identifies the exhaustive solver in results and reports.
const BruteForceName = "bruteforce"

// MaxBruteForceN is the largest order BruteForce accepts (10! ≈ 3.6M permutations).
const MaxBruteForceN = 10

// pollEvery is how many permutations run between context checks.
const pollEvery = 1 << 12

// ErrTooLarge is returned by BruteForce for n > MaxBruteForceN.
var ErrTooLarge = errors.New("baseline: instance too large for brute force")

// BruteForce evaluates every permutation and keeps the first one with the
// strictly smallest cost. Permutations are generated iteratively with Heap's
// algorithm, so no recursion depth depends on n.
//
// Ops counts one addition per row per permutation.
// Complexity: O(n·n!) time, O(n) extra space.
func BruteForce(ctx context.Context, m matrix.Matrix, opts ...assignment.Option) (*assignment.Result, error) {
	cfg := assignment.Apply(opts...)
	if ctx == nil {
		ctx = context.Background()
	}
	n, c, err := assignment.Prepare(m)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}
	if n > MaxBruteForceN {
		return nil, fmt.Errorf("%w: n=%d > %d: %w", assignment.ErrInvalidInput, n, MaxBruteForceN, ErrTooLarge)
	}
	if n == 0 {
		return &assignment.Result{Solver: BruteForceName, Assignment: assignment.Assignment{}}, nil
	}

	var (
		ops   assignment.Counter
		perm  = make([]int, n) // perm[row] = col
		best  = make([]int, n)
		stack = make([]int, n) // Heap's algorithm counters
		cost  float64
		low   float64
		i     int
		seen  int64
	)
	for i = 0; i < n; i++ {
		perm[i] = i
	}

	evaluate := func() float64 {
		var sum float64
		var r int
		for r = 0; r < n; r++ {
			ops.Inc()
			sum += c[r*n+perm[r]]
		}
		return sum
	}

	low = evaluate()
	copy(best, perm)
	seen = 1

	i = 1
	for i < n {
		if stack[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[stack[i]], perm[i] = perm[i], perm[stack[i]]
			}
			if cost = evaluate(); cost < low {
				low = cost
				copy(best, perm)
			}
			seen++
			if seen%pollEvery == 0 {
				if err = ctx.Err(); err != nil {
					return nil, fmt.Errorf("baseline: %w", err)
				}
			}
			stack[i]++
			i = 1
			continue
		}
		stack[i] = 0
		i++
	}
	cfg.Logger.V(1).Info("brute force done", "n", n, "permutations", seen)

	return &assignment.Result{
		Solver:     BruteForceName,
		Assignment: assignment.FromCols(best),
		Cost:       low,
		Ops:        ops.Value(),
	}, nil
}
