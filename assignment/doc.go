// SPDX-License-Identifier: MIT

// Package assignment defines the vocabulary shared by every solver of the
// linear assignment problem: given an n×n cost matrix, choose one task per
// worker (a permutation) of minimum total cost.
//
// The package itself solves nothing. It provides:
//
//   - Pair, Assignment and Result: what a solver returns.
//   - Counter: the elementary-operation counter used for complexity studies.
//   - Option / Options: functional options accepted by all solvers (logger).
//   - Prepare: eager input validation plus a private working copy, so that a
//     failing call never mutates anything visible to the caller.
//   - CheckPermutation and TotalCost: independent verification helpers.
//
// Error kinds:
//
//	ErrInvalidInput - non-square (or nil, or negative) cost matrix.
//	ErrNumerical    - NaN or ±Inf entry.
//	ErrInfeasible   - a solver could not complete a perfect matching.
//
// Detailed causes from package matrix are joined with the kind, so both
// errors.Is(err, assignment.ErrInvalidInput) and
// errors.Is(err, matrix.ErrNonSquare) hold for a 2×3 input.
package assignment
