// SPDX-License-Identifier: MIT

package hungarian

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvassign/assignment"
	"github.com/katalvlaran/lvassign/matrix"
)

// Name identifies this solver in results and reports.
const Name = "hungarian"

// Solve returns a minimum-cost perfect matching for the n×n cost matrix m.
//
// Preconditions (checked before any work):
//   - m is non-nil and square (assignment.ErrInvalidInput, matrix.ErrNonSquare).
//   - every entry is finite (assignment.ErrNumerical, matrix.ErrNaNInf).
//   - every entry is ≥ 0 (assignment.ErrInvalidInput, matrix.ErrNegative).
//
// n == 0 yields an empty assignment with Cost 0 and Ops 0.
// m is never modified; the solver works on a private copy.
func Solve(ctx context.Context, m matrix.Matrix, opts ...assignment.Option) (*assignment.Result, error) {
	cfg := assignment.Apply(opts...)
	if ctx == nil {
		ctx = context.Background()
	}

	// 1) Validate and copy; nothing below runs on malformed input.
	n, work, err := assignment.Prepare(m)
	if err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}
	if n == 0 {
		return &assignment.Result{Solver: Name, Assignment: assignment.Assignment{}}, nil
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}

	// 2) Run the reduction / covering / augmentation loop.
	s := newMunkres(n, work, cfg.Logger)
	if err = s.run(ctx); err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}

	// 3) Stars are the matching; price it against the untouched input.
	a := assignment.FromCols(s.starCol)
	total, err := assignment.TotalCost(m, a)
	if err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}

	return &assignment.Result{
		Solver:     Name,
		Assignment: a,
		Cost:       total,
		Ops:        s.ops.Value(),
	}, nil
}
