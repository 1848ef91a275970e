// SPDX-License-Identifier: MIT

// Package testutil holds deterministic instance builders shared by the
// solver test suites. It is stdlib-only on purpose so every package can use
// it without pulling the experiment harness into its tests.
package testutil

import (
	"math/rand"

	"github.com/katalvlaran/lvassign/matrix"
)

// Scenario is a small instance with a unique known optimum.
type Scenario struct {
	Name string
	Rows [][]float64
	Cols []int // optimal row→column mapping
	Cost float64
}

// Scenarios returns the reference instances every exact solver must match.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name: "A/3x3",
			Rows: [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}},
			Cols: []int{1, 0, 2},
			Cost: 5,
		},
		{
			Name: "B/2x2 diagonal",
			Rows: [][]float64{{1, 2}, {2, 1}},
			Cols: []int{0, 1},
			Cost: 2,
		},
		{
			Name: "C/identity",
			Rows: [][]float64{{0, 5, 5}, {5, 0, 5}, {5, 5, 0}},
			Cols: []int{0, 1, 2},
			Cost: 0,
		},
		{
			Name: "1x1",
			Rows: [][]float64{{3.5}},
			Cols: []int{0},
			Cost: 3.5,
		},
		{
			Name: "reroute 2x2",
			Rows: [][]float64{{1, 2}, {1, 5}},
			Cols: []int{1, 0},
			Cost: 3,
		},
	}
}

// Dense wraps FromRows for literal test data; it panics on ragged input,
// which only happens on a broken test table.
func Dense(rows [][]float64) *matrix.Dense {
	m, err := matrix.FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Uniform returns an n×n matrix with entries in [0,1) from a seeded source.
func Uniform(seed int64, n int) *matrix.Dense {
	rng := rand.New(rand.NewSource(seed))
	m, _ := matrix.NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = m.Set(i, j, rng.Float64())
		}
	}

	return m
}

// Ints returns an n×n matrix with integer entries in [0, max]. Small max
// values produce many ties and many simultaneous zeros after reduction.
func Ints(seed int64, n, max int) *matrix.Dense {
	rng := rand.New(rand.NewSource(seed))
	m, _ := matrix.NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = m.Set(i, j, float64(rng.Intn(max+1)))
		}
	}

	return m
}
