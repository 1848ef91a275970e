// SPDX-License-Identifier: MIT

package assignment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvassign/matrix"
)

// Sentinel error kinds returned by all solvers.
var (
	// ErrInvalidInput indicates a structurally unusable cost matrix.
	ErrInvalidInput = errors.New("assignment: invalid input")

	// ErrNumerical indicates a non-finite cost entry.
	ErrNumerical = errors.New("assignment: non-finite cost entry")

	// ErrInfeasible indicates that no perfect matching was reached.
	// Unreachable for a well-formed dense matrix; kept as an invariant check.
	ErrInfeasible = errors.New("assignment: perfect matching not reached")

	// ErrNotPermutation is returned by CheckPermutation.
	ErrNotPermutation = errors.New("assignment: pairs do not form a permutation")
)

// classify joins a matrix validation failure with its error kind.
func classify(err error) error {
	if errors.Is(err, matrix.ErrNaNInf) {
		return fmt.Errorf("%w: %w", ErrNumerical, err)
	}

	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
