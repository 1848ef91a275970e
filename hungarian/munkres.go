// SPDX-License-Identifier: MIT

package hungarian

import (
	"context"
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvassign/assignment"
)

// none marks an empty slot in the marker arrays.
const none = -1

// cell is one (row, col) position on an augmenting path.
type cell struct {
	row, col int
}

// munkres holds the mutable state of a single solve. Every slice is owned by
// this value and indexed by row or column; nothing is shared across calls.
type munkres struct {
	n int
	c []float64 // working matrix, row-major, entries stay ≥ 0

	starCol  []int  // starCol[i]  = column of the starred zero in row i, or none
	starRow  []int  // starRow[j]  = row of the starred zero in column j, or none
	primeCol []int  // primeCol[i] = column of the primed zero in row i, or none
	rowCov   []bool // row cover flags
	colCov   []bool // column cover flags

	path []cell // augmenting path buffer, at most 2n+1 cells

	ops assignment.Counter
	log logr.Logger
}

// newMunkres wraps a validated n×n working copy.
func newMunkres(n int, work []float64, log logr.Logger) *munkres {
	s := &munkres{
		n:        n,
		c:        work,
		starCol:  make([]int, n),
		starRow:  make([]int, n),
		primeCol: make([]int, n),
		rowCov:   make([]bool, n),
		colCov:   make([]bool, n),
		path:     make([]cell, 0, 2*n+1),
		log:      log,
	}
	var i int
	for i = 0; i < n; i++ {
		s.starCol[i] = none
		s.starRow[i] = none
		s.primeCol[i] = none
	}

	return s
}

// run executes steps 1–5 until every column is covered by a star.
func (s *munkres) run(ctx context.Context) error {
	s.reduceRows()
	if err := ctx.Err(); err != nil {
		return err
	}
	s.reduceCols()
	if err := ctx.Err(); err != nil {
		return err
	}
	s.starInitial()

	var matched int
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		matched = s.coverStarredColumns()
		if matched == s.n {
			return nil
		}
		if err := s.augment(); err != nil {
			return err
		}
		s.log.V(1).Info("augmented", "matched", matched+1, "n", s.n, "ops", s.ops.Value())
	}
}

// reduceRows subtracts each row's minimum from the row.
func (s *munkres) reduceRows() {
	var (
		i, j int
		row  []float64
		min  float64
	)
	for i = 0; i < s.n; i++ {
		row = s.c[i*s.n : (i+1)*s.n]
		min = row[0]
		for j = 1; j < s.n; j++ {
			s.ops.Inc()
			if row[j] < min {
				min = row[j]
			}
		}
		for j = 0; j < s.n; j++ {
			s.ops.Inc()
			row[j] -= min
		}
	}
}

// reduceCols subtracts each column's minimum from the column.
func (s *munkres) reduceCols() {
	var (
		i, j int
		min  float64
	)
	for j = 0; j < s.n; j++ {
		min = s.c[j]
		for i = 1; i < s.n; i++ {
			s.ops.Inc()
			if s.c[i*s.n+j] < min {
				min = s.c[i*s.n+j]
			}
		}
		for i = 0; i < s.n; i++ {
			s.ops.Inc()
			s.c[i*s.n+j] -= min
		}
	}
}

// starInitial stars a maximal set of independent zeros in row-major order.
// Covers serve as scratch marks here and are cleared before returning.
func (s *munkres) starInitial() {
	var i, j int
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			s.ops.Inc()
			if s.c[i*s.n+j] == 0 && !s.rowCov[i] && !s.colCov[j] {
				s.starCol[i] = j
				s.starRow[j] = i
				s.rowCov[i] = true
				s.colCov[j] = true
			}
		}
	}
	s.clearCovers()
}

// coverStarredColumns covers every column holding a star and returns the count.
func (s *munkres) coverStarredColumns() int {
	var j, count int
	for j = 0; j < s.n; j++ {
		s.colCov[j] = s.starRow[j] != none
		if s.colCov[j] {
			count++
		}
	}

	return count
}

// augment repeats step 5 until the matching has grown by one.
//
// Each pass either primes a zero (and covers its row, at most n times) or
// adjusts the matrix so that the next pass finds a zero, so the loop is
// bounded by O(n) passes of O(n²) each.
func (s *munkres) augment() error {
	var (
		r, c, sc int
		ok       bool
	)
	for {
		r, c, ok = s.findUncoveredZero()
		if !ok {
			if err := s.adjust(); err != nil {
				return err
			}
			continue
		}

		s.primeCol[r] = c
		sc = s.starCol[r]
		if sc == none {
			if err := s.flipPath(r, c); err != nil {
				return err
			}
			s.clearPrimes()
			s.clearCovers()
			return nil
		}

		// Star in the same row: trade its column cover for a row cover.
		s.rowCov[r] = true
		s.colCov[sc] = false
	}
}

// findUncoveredZero returns the first zero, in row-major order, whose row and
// column are both uncovered.
func (s *munkres) findUncoveredZero() (int, int, bool) {
	var i, j int
	for i = 0; i < s.n; i++ {
		if s.rowCov[i] {
			continue
		}
		for j = 0; j < s.n; j++ {
			if s.colCov[j] {
				continue
			}
			s.ops.Inc()
			if s.c[i*s.n+j] == 0 {
				return i, j, true
			}
		}
	}

	return none, none, false
}

// adjust subtracts the smallest uncovered entry h from every uncovered entry
// and adds it to every doubly-covered entry. The cell holding h becomes an
// exact zero because x-x == 0 in IEEE arithmetic.
func (s *munkres) adjust() error {
	var (
		i, j int
		h    = math.Inf(1)
		v    float64
	)
	for i = 0; i < s.n; i++ {
		if s.rowCov[i] {
			continue
		}
		for j = 0; j < s.n; j++ {
			if s.colCov[j] {
				continue
			}
			s.ops.Inc()
			if v = s.c[i*s.n+j]; v < h {
				h = v
			}
		}
	}
	// With fewer than n stars, König's theorem leaves an uncovered cell.
	if math.IsInf(h, 1) {
		return fmt.Errorf("%w: no uncovered entry to adjust", assignment.ErrInfeasible)
	}

	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			switch {
			case !s.rowCov[i] && !s.colCov[j]:
				s.ops.Inc()
				s.c[i*s.n+j] -= h
			case s.rowCov[i] && s.colCov[j]:
				s.ops.Inc()
				s.c[i*s.n+j] += h
			}
		}
	}
	s.log.V(2).Info("adjusted", "min", h)

	return nil
}

// flipPath builds the alternating path that starts at the primed zero (r, c)
// and flips it: stars on the path are removed, primes on the path are starred.
//
// The path alternates prime → star (same column) → prime (same row). It ends
// at a prime whose column has no star. Its length is at most 2n+1.
func (s *munkres) flipPath(r, c int) error {
	var (
		last   cell
		sr, pc int
		k      int
	)
	s.path = append(s.path[:0], cell{row: r, col: c})
	for {
		last = s.path[len(s.path)-1]
		sr = s.starRow[last.col]
		if sr == none {
			break
		}
		pc = s.primeCol[sr]
		if pc == none || len(s.path)+2 > 2*s.n+1 {
			return fmt.Errorf("%w: broken augmenting path at row %d", assignment.ErrInfeasible, sr)
		}
		s.path = append(s.path, cell{row: sr, col: last.col}, cell{row: sr, col: pc})
	}

	// Odd positions are stars: remove them first so the even positions can
	// take over their rows and columns.
	for k = 1; k < len(s.path); k += 2 {
		s.starCol[s.path[k].row] = none
		s.starRow[s.path[k].col] = none
	}
	for k = 0; k < len(s.path); k += 2 {
		s.starCol[s.path[k].row] = s.path[k].col
		s.starRow[s.path[k].col] = s.path[k].row
	}

	return nil
}

func (s *munkres) clearPrimes() {
	var i int
	for i = 0; i < s.n; i++ {
		s.primeCol[i] = none
	}
}

func (s *munkres) clearCovers() {
	var i int
	for i = 0; i < s.n; i++ {
		s.rowCov[i] = false
		s.colCov[i] = false
	}
}
