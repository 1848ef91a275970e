// SPDX-License-Identifier: MIT

// Validators are pure, deterministic and allocation-free. They return the
// package sentinels wrapped with a validator tag so that the failing check
// shows up in the message while errors.Is keeps working.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed nil *Dense is still nil for our purposes.
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateFinite scans every entry and rejects NaN or ±Inf.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateNonNegative rejects any entry below zero. NaN compares false and
// is left to ValidateFinite.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateNonNegative", err)
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative(%d,%d)", i, j), ErrNegative)
			}
		}
	}

	return nil
}

// ValidateCost is the composite check for assignment instances:
// NotNil → Square → Finite → NonNegative. It returns the order n on success.
//
// The sequence is fixed so that a matrix with several defects always reports
// the same (earliest) sentinel.
// Complexity: O(n²).
func ValidateCost(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, validatorErrorf("ValidateCost", err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, validatorErrorf("ValidateCost", err)
	}
	if err := ValidateFinite(m); err != nil {
		return 0, validatorErrorf("ValidateCost", err)
	}
	if err := ValidateNonNegative(m); err != nil {
		return 0, validatorErrorf("ValidateCost", err)
	}

	return m.Rows(), nil
}
