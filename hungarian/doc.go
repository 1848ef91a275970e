// SPDX-License-Identifier: MIT

// Package hungarian solves the square linear assignment problem with the
// Kuhn–Munkres (Hungarian) primal-dual method.
//
// Algorithm (star / prime / cover formulation):
//
//  1. Row reduction: subtract each row minimum.
//  2. Column reduction: subtract each column minimum.
//  3. Initial starring: row-major scan; star a zero when its row and column
//     hold no star yet. Stars always form a partial matching.
//  4. Cover every column that holds a star. n covered columns ⇒ optimal.
//  5. Find an uncovered zero (row-major, first found) and prime it.
//     - No star in its row: walk the alternating prime/star path, flip it
//       (matching grows by one), clear primes and covers, go to 4.
//     - Star in its row: cover the row, uncover the star's column, repeat 5.
//     - No uncovered zero: let h be the smallest uncovered entry; subtract h
//       from every uncovered entry and add it to every doubly-covered one.
//       Zeros under a single cover survive, at least one uncovered zero
//       appears, and all entries stay ≥ 0.
//
// Complexity:
//
//   - Time:   O(n³) augmentation bound, O(n²) per scan.
//   - Memory: O(n²) for the working matrix, O(n) for markers.
//
// Tie-breaking is first-found in row-major order; it only decides which of
// several equal-cost optima is returned.
//
// Cancellation: ctx is checked between whole phases (after each reduction
// and before every covering pass), never in the middle of a matrix update.
//
// Example:
//
//	m, _ := matrix.FromRows([][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}})
//	res, err := hungarian.Solve(ctx, m)
//	// res.Assignment == {(0,1) (1,0) (2,2)}, res.Cost == 5
package hungarian
