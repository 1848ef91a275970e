// SPDX-License-Identifier: MIT

package assignment

import (
	"fmt"
	"sort"
)

// Pair assigns worker Row to task Col.
type Pair struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String renders the pair as "(row,col)".
func (p Pair) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Assignment is a set of pairs. Solvers return it sorted by Row with exactly
// one pair per row and per column.
type Assignment []Pair

// Sort orders the pairs by Row, then Col, in place.
func (a Assignment) Sort() {
	sort.Slice(a, func(i, j int) bool {
		if a[i].Row != a[j].Row {
			return a[i].Row < a[j].Row
		}
		return a[i].Col < a[j].Col
	})
}

// ColOf returns the row→column mapping; rows without a pair map to -1.
func (a Assignment) ColOf(n int) []int {
	out := make([]int, n)
	var i int
	for i = range out {
		out[i] = -1
	}
	for _, p := range a {
		if p.Row >= 0 && p.Row < n {
			out[p.Row] = p.Col
		}
	}

	return out
}

// FromCols builds a sorted Assignment from a row→column mapping.
func FromCols(cols []int) Assignment {
	out := make(Assignment, len(cols))
	var i int
	for i = range cols {
		out[i] = Pair{Row: i, Col: cols[i]}
	}

	return out
}

// Result is what every solver returns.
type Result struct {
	// Solver is the name of the algorithm that produced the result.
	Solver string `json:"solver" yaml:"solver"`

	// Assignment holds n pairs sorted by row.
	Assignment Assignment `json:"assignment" yaml:"assignment"`

	// Cost is the total cost of Assignment.
	Cost float64 `json:"cost" yaml:"cost"`

	// Ops is the elementary-operation count observed during the solve.
	Ops int64 `json:"ops" yaml:"ops"`
}
