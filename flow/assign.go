// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvassign/assignment"
	"github.com/katalvlaran/lvassign/matrix"
)

// Name identifies the min-cost-flow assignment solver in results and reports.
const Name = "flow"

// bipartite records the node layout of an assignment network.
//
//	0              source
//	1 .. n         workers (worker i at 1+i)
//	n+1 .. 2n      tasks   (task j at 1+n+j)
//	2n+1           sink
type bipartite struct {
	n            int
	source, sink int
}

func (b bipartite) worker(i int) int { return 1 + i }
func (b bipartite) task(j int) int   { return 1 + b.n + j }
func (b bipartite) isTask(v int) bool {
	return v >= 1+b.n && v < 1+2*b.n
}

// buildAssignmentNetwork wires the unit-capacity bipartite network for an
// n×n row-major cost slice.
func buildAssignmentNetwork(n int, c []float64) (*Network, bipartite, error) {
	b := bipartite{n: n, source: 0, sink: 2*n + 1}
	g := NewNetwork(2*n + 2)

	var (
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		if _, err = g.AddEdge(b.source, b.worker(i), 1, 0); err != nil {
			return nil, b, err
		}
	}
	for j = 0; j < n; j++ {
		if _, err = g.AddEdge(b.task(j), b.sink, 1, 0); err != nil {
			return nil, b, err
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if _, err = g.AddEdge(b.worker(i), b.task(j), 1, c[i*n+j]); err != nil {
				return nil, b, err
			}
		}
	}

	return g, b, nil
}

// Solve returns a minimum-cost perfect matching for the n×n cost matrix m by
// reduction to min-cost max-flow.
//
// Validation matches hungarian.Solve and happens before the network exists.
// Cost is the flow cost accumulated from sink potentials. Ops counts
// reduced-cost relaxations during the shortest-path searches.
//
// Errors: assignment.ErrInvalidInput, assignment.ErrNumerical,
// assignment.ErrInfeasible (flow < n), context errors.
func Solve(ctx context.Context, m matrix.Matrix, opts ...assignment.Option) (*assignment.Result, error) {
	cfg := assignment.Apply(opts...)
	if ctx == nil {
		ctx = context.Background()
	}

	// 1) Validate and copy.
	n, c, err := assignment.Prepare(m)
	if err != nil {
		return nil, fmt.Errorf("flow: %w", err)
	}
	if n == 0 {
		return &assignment.Result{Solver: Name, Assignment: assignment.Assignment{}}, nil
	}

	// 2) Build the network.
	g, b, err := buildAssignmentNetwork(n, c)
	if err != nil {
		return nil, fmt.Errorf("flow: %w", err)
	}

	// 3) Ask for a perfect flow.
	var ops assignment.Counter
	got, cost, err := MinCostFlow(ctx, g, b.source, b.sink, n, &Options{Logger: cfg.Logger, Counter: &ops})
	if err != nil {
		return nil, err
	}
	if got < n {
		return nil, fmt.Errorf("flow: reached %d of %d: %w", got, n, assignment.ErrInfeasible)
	}

	// 4) Extract: the used worker→task edge is the one whose partner holds capacity.
	cols, err := extract(g, b)
	if err != nil {
		return nil, err
	}

	return &assignment.Result{
		Solver:     Name,
		Assignment: assignment.FromCols(cols),
		Cost:       cost,
		Ops:        ops.Value(),
	}, nil
}

// extract reads the matched task of every worker from the residual network.
func extract(g *Network, b bipartite) ([]int, error) {
	cols := make([]int, b.n)
	var (
		i  int
		id int
		e  Edge
		ok bool
	)
	for i = 0; i < b.n; i++ {
		ok = false
		for _, id = range g.adj[b.worker(i)] {
			e = g.edges[id]
			if e.Reverse || !b.isTask(e.To) {
				continue
			}
			if g.edges[e.Rev].Cap > 0 {
				cols[i] = e.To - b.task(0)
				ok = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("flow: worker %d unmatched: %w", i, assignment.ErrInfeasible)
		}
	}

	return cols, nil
}
