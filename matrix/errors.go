// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it is easy to grep in logs.
// Sentinels are returned wrapped with the validator or method tag; callers
// match them with errors.Is.
var (
	// ErrNilMatrix indicates that a nil Matrix was passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRagged is returned by FromRows when rows have different lengths.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry where costs must be non-negative.
	ErrNegative = errors.New("matrix: negative entry")
)
