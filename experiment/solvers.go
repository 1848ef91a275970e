// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvassign/assignment"
	"github.com/katalvlaran/lvassign/baseline"
	"github.com/katalvlaran/lvassign/flow"
	"github.com/katalvlaran/lvassign/hungarian"
	"github.com/katalvlaran/lvassign/matrix"
)

// All selects every registered solver in Lookup.
const All = "all"

// bruteForceBenchMax keeps the exhaustive baseline out of large sweeps.
const bruteForceBenchMax = 8

// SolveFunc is the common signature of every solver in this module.
type SolveFunc func(ctx context.Context, m matrix.Matrix, opts ...assignment.Option) (*assignment.Result, error)

// Solver is a registry entry.
type Solver struct {
	Name  string
	Exact bool // returns a provable optimum
	MaxN  int  // largest size the harness runs it on; 0 means unbounded
	Solve SolveFunc
}

// Applies reports whether the solver should run on an n×n instance.
func (s Solver) Applies(n int) bool { return s.MaxN <= 0 || n <= s.MaxN }

// DefaultSolvers returns the registry in presentation order.
func DefaultSolvers() []Solver {
	return []Solver{
		{Name: hungarian.Name, Exact: true, Solve: hungarian.Solve},
		{Name: flow.Name, Exact: true, Solve: flow.Solve},
		{Name: baseline.GreedyName, Solve: baseline.Greedy},
		{Name: baseline.BruteForceName, Exact: true, MaxN: bruteForceBenchMax, Solve: baseline.BruteForce},
	}
}

// Names lists the names of solvers in order.
func Names(solvers []Solver) []string {
	out := make([]string, len(solvers))
	var i int
	for i = range solvers {
		out[i] = solvers[i].Name
	}

	return out
}

// Lookup resolves names against DefaultSolvers. Matching is case-insensitive,
// duplicates are dropped, and an empty list or "all" selects everything.
// The result keeps the order of names.
func Lookup(names []string) ([]Solver, error) {
	registry := DefaultSolvers()
	var name string
	for _, name = range names {
		if strings.EqualFold(strings.TrimSpace(name), All) {
			return registry, nil
		}
	}
	if len(names) == 0 {
		return registry, nil
	}

	seen := make(map[string]bool, len(names))
	out := make([]Solver, 0, len(names))
	var (
		key   string
		found bool
		s     Solver
	)
	for _, name = range names {
		key = strings.ToLower(strings.TrimSpace(name))
		if seen[key] {
			continue
		}
		found = false
		for _, s = range registry {
			if s.Name == key {
				out = append(out, s)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownSolver, name, strings.Join(Names(registry), ", "))
		}
		seen[key] = true
	}

	return out, nil
}
