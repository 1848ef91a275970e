// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvassign/assignment"
)

// MaxFlow pushes as much flow as possible from source to sink, ignoring
// costs, using Edmonds–Karp: each augmenting path is a shortest path in edges,
// found by BFS over residual capacity.
//
// It works on the same arena as MinCostFlow, so the two can be combined: for
// an assignment network MaxFlow == n says a perfect matching exists before
// any cost is considered. g is left holding the final flow.
//
// The context is checked before every BFS.
// Complexity: O(V · E²) time, O(V) extra memory.
func MaxFlow(ctx context.Context, g *Network, source, sink int, opts *Options) (int, error) {
	cfg := opts.normalize()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := checkTerminals(g, source, sink); err != nil {
		return 0, err
	}

	var (
		flow, f int
		err     error
	)
	prevEdge := make([]int, g.Nodes())
	queue := make([]int, 0, g.Nodes())
	for {
		if err = ctx.Err(); err != nil {
			return flow, fmt.Errorf("flow: %w", err)
		}
		if !bfsPath(g, source, sink, prevEdge, queue, cfg) {
			return flow, nil
		}
		if f, err = pathBottleneck(g, source, sink, prevEdge, -1); err != nil {
			return flow, err
		}
		pushPath(g, source, sink, prevEdge, f)
		flow += f
		cfg.Logger.V(1).Info("augmented", "flow", flow, "bottleneck", f)
	}
}

// bfsPath fills prevEdge with a fewest-edges path to sink over edges with
// positive residual capacity and reports whether sink was reached.
func bfsPath(g *Network, source, sink int, prevEdge, queue []int, cfg Options) bool {
	var i, u, id int
	for i = range prevEdge {
		prevEdge[i] = -1
	}
	queue = append(queue[:0], source)
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		for _, id = range g.adj[u] {
			cfg.Counter.Inc()
			e := &g.edges[id]
			if e.Cap <= 0 || e.To == source || prevEdge[e.To] != -1 {
				continue
			}
			prevEdge[e.To] = id
			if e.To == sink {
				return true
			}
			queue = append(queue, e.To)
		}
	}

	return false
}

// pathBottleneck walks prevEdge back from sink and returns the smallest
// residual capacity on the path, capped at limit when limit ≥ 0. The walk is
// bounded by the node count so a corrupt chain cannot loop.
func pathBottleneck(g *Network, source, sink int, prevEdge []int, limit int) (int, error) {
	f := limit
	v := sink
	var steps int
	for v != source {
		if steps == g.Nodes() || prevEdge[v] < 0 {
			return 0, fmt.Errorf("flow: broken predecessor chain at node %d: %w", v, assignment.ErrInfeasible)
		}
		e := g.edges[prevEdge[v]]
		if f < 0 || e.Cap < f {
			f = e.Cap
		}
		v = e.From
		steps++
	}

	return f, nil
}

// pushPath moves f units along the prevEdge path.
func pushPath(g *Network, source, sink int, prevEdge []int, f int) {
	v := sink
	for v != source {
		id := prevEdge[v]
		g.push(id, f)
		v = g.edges[id].From
	}
}

// checkTerminals validates g, source and sink.
func checkTerminals(g *Network, source, sink int) error {
	if g == nil {
		return fmt.Errorf("flow: nil network: %w", ErrNodeOutOfRange)
	}
	V := g.Nodes()
	if source < 0 || source >= V {
		return fmt.Errorf("flow: source %d: %w", source, ErrNodeOutOfRange)
	}
	if sink < 0 || sink >= V {
		return fmt.Errorf("flow: sink %d: %w", sink, ErrNodeOutOfRange)
	}
	if source == sink {
		return ErrSourceIsSink
	}

	return nil
}
