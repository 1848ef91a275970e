// Package matrix_test contains unit tests for the cost-matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvassign/matrix"
)

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestValidateCost walks the composite validator through every sentinel.
func TestValidateCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantN   int
		wantErr error
	}{
		{"nil interface", nil, 0, matrix.ErrNilMatrix},
		{"typed nil", (*matrix.Dense)(nil), 0, matrix.ErrNilMatrix},
		{"empty", mustRows(t, nil), 0, nil},
		{"1x1", mustRows(t, [][]float64{{7}}), 1, nil},
		{"3x3 ok", mustRows(t, [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}}), 3, nil},
		{"2x3", mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), 0, matrix.ErrNonSquare},
		{"NaN", mustRows(t, [][]float64{{1, math.NaN()}, {0, 1}}), 0, matrix.ErrNaNInf},
		{"+Inf", mustRows(t, [][]float64{{1, 2}, {math.Inf(1), 1}}), 0, matrix.ErrNaNInf},
		{"negative", mustRows(t, [][]float64{{1, -2}, {0, 1}}), 0, matrix.ErrNegative},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			n, err := matrix.ValidateCost(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.Equal(t, tc.wantN, n)
				return
			}
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateCost_Priority locks the order NonSquare → NaN → Negative.
func TestValidateCost_Priority(t *testing.T) {
	t.Parallel()

	// Non-square wins over NaN.
	_, err := matrix.ValidateCost(mustRows(t, [][]float64{{math.NaN(), 1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	// NaN wins over a negative entry scanned later.
	_, err = matrix.ValidateCost(mustRows(t, [][]float64{{-1, math.NaN()}, {0, 0}}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
