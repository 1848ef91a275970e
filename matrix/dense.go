// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps a sentinel with the failing method and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); 0×0 is a valid empty instance.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Zero-sized shapes are accepted because the empty assignment instance is legal.
//
// Errors: ErrBadShape when rows<0 or cols<0.
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows copies a slice of rows into a new Dense.
//
// The column count is taken from the first row; any row of a different length
// yields ErrRagged. Values are copied verbatim (NaN/Inf/negatives included) so
// that solvers can report them precisely.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	var r, c int
	r = len(rows)
	if r > 0 {
		c = len(rows[0])
	}
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}

	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrRagged)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf converts (row, col) into a flat offset with bounds checking.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

// Set writes v at (row, col). No numeric policy is applied here.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() Matrix {
	cp := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(cp.data, m.data)

	return cp
}

// RawRows returns a freshly allocated [][]float64 copy of the matrix.
// Useful for encoders (JSON/YAML/TOML) that expect nested slices.
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// String renders the matrix one row per line, mainly for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
