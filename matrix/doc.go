// SPDX-License-Identifier: MIT

// Package matrix holds the cost-matrix surface shared by every assignment solver.
//
// A cost matrix is a rows×cols grid of float64 values stored row-major. The
// package offers:
//
//   - Matrix: the minimal read/write interface solvers consume.
//   - Dense: a contiguous row-major implementation (FromRows, NewDense).
//   - Validators: shape, finiteness and sign checks that return plain sentinels.
//
// Dense accepts any shape and any float value. Whether a matrix is a valid
// assignment instance (square, finite, non-negative) is decided by the
// solvers at entry through ValidateCost.
//
// Example:
//
//	m, err := matrix.FromRows([][]float64{
//	    {4, 1, 3},
//	    {2, 0, 5},
//	    {3, 2, 2},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, err := matrix.ValidateCost(m) // n == 3
package matrix
