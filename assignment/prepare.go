// SPDX-License-Identifier: MIT

package assignment

import (
	"fmt"

	"github.com/katalvlaran/lvassign/matrix"
)

// Prepare validates m as an assignment instance and returns its order n and a
// private row-major copy of the costs (len n*n).
//
// Validation runs completely before the copy is produced, so a solver that
// calls Prepare first never holds partially-built state on failure.
//
// Errors: ErrInvalidInput (nil, non-square, negative) or ErrNumerical
// (NaN/±Inf), each joined with the matrix sentinel that caused it.
// Complexity: O(n²).
func Prepare(m matrix.Matrix) (int, []float64, error) {
	n, err := matrix.ValidateCost(m)
	if err != nil {
		return 0, nil, classify(err)
	}

	work := make([]float64, n*n)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			// At cannot fail after ValidateCost; keep the check for foreign Matrix types.
			if v, err = m.At(i, j); err != nil {
				return 0, nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}
			work[i*n+j] = v
		}
	}

	return n, work, nil
}

// CheckPermutation verifies that a contains exactly one pair per row and per
// column of an n×n instance.
// Complexity: O(n).
func CheckPermutation(a Assignment, n int) error {
	if len(a) != n {
		return fmt.Errorf("%w: %d pairs for n=%d", ErrNotPermutation, len(a), n)
	}
	rowSeen := make([]bool, n)
	colSeen := make([]bool, n)
	for _, p := range a {
		if p.Row < 0 || p.Row >= n || p.Col < 0 || p.Col >= n {
			return fmt.Errorf("%w: pair %s out of range", ErrNotPermutation, p)
		}
		if rowSeen[p.Row] || colSeen[p.Col] {
			return fmt.Errorf("%w: pair %s reuses a row or column", ErrNotPermutation, p)
		}
		rowSeen[p.Row] = true
		colSeen[p.Col] = true
	}

	return nil
}

// TotalCost sums m[row][col] over a.
func TotalCost(m matrix.Matrix, a Assignment) (float64, error) {
	var (
		total float64
		v     float64
		err   error
	)
	for _, p := range a {
		if v, err = m.At(p.Row, p.Col); err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}
