// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"
	"math"
)

// Edge is one record of the edge arena.
//
// For a forward edge Cap is the remaining capacity; for its reverse partner
// Cap equals the flow currently pushed on the forward edge.
type Edge struct {
	From, To int
	Rev      int     // arena index of the paired edge
	Cap      int     // residual capacity
	Cost     float64 // per-unit cost; the reverse edge carries -Cost
	Reverse  bool    // true for edges created as the partner of AddEdge
}

// Network is a directed residual graph over nodes 0..Nodes()-1.
// It is not safe for concurrent mutation; each solve builds its own.
type Network struct {
	edges []Edge  // arena: forward edge at 2k, its reverse at 2k+1
	adj   [][]int // adj[u] = arena indices of edges leaving u
}

// NewNetwork allocates an empty network with the given number of nodes.
// A negative count is treated as zero.
func NewNetwork(nodes int) *Network {
	if nodes < 0 {
		nodes = 0
	}

	return &Network{adj: make([][]int, nodes)}
}

// Nodes returns the number of nodes.
func (g *Network) Nodes() int { return len(g.adj) }

// EdgeCount returns the arena length (forward and reverse edges).
func (g *Network) EdgeCount() int { return len(g.edges) }

// AddEdge inserts from→to with the given capacity and cost together with its
// reverse partner to→from (capacity 0, cost −cost). It returns the arena
// index of the forward edge; the reverse edge is at Edge(id).Rev.
//
// Errors: ErrNodeOutOfRange, ErrBadCapacity, ErrBadCost.
// Complexity: amortized O(1).
func (g *Network) AddEdge(from, to, capacity int, cost float64) (int, error) {
	if from < 0 || from >= len(g.adj) || to < 0 || to >= len(g.adj) {
		return 0, fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrNodeOutOfRange)
	}
	if capacity < 0 {
		return 0, fmt.Errorf("AddEdge(%d→%d): %w: %d", from, to, ErrBadCapacity, capacity)
	}
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0, fmt.Errorf("AddEdge(%d→%d): %w: %g", from, to, ErrBadCost, cost)
	}

	fwd := len(g.edges)
	rev := fwd + 1
	g.edges = append(g.edges,
		Edge{From: from, To: to, Rev: rev, Cap: capacity, Cost: cost},
		Edge{From: to, To: from, Rev: fwd, Cap: 0, Cost: -cost, Reverse: true},
	)
	g.adj[from] = append(g.adj[from], fwd)
	g.adj[to] = append(g.adj[to], rev)

	return fwd, nil
}

// Edge returns a copy of the arena record id.
func (g *Network) Edge(id int) Edge { return g.edges[id] }

// Adjacent returns a copy of the arena indices of edges leaving u.
func (g *Network) Adjacent(u int) []int {
	return append([]int(nil), g.adj[u]...)
}

// Flow reports the flow pushed on edge id, i.e. the capacity now held by its
// partner. Reverse edges report 0.
func (g *Network) Flow(id int) int {
	if g.edges[id].Reverse {
		return 0
	}

	return g.edges[g.edges[id].Rev].Cap
}

// push moves f units along edge id and credits its partner.
func (g *Network) push(id, f int) {
	g.edges[id].Cap -= f
	g.edges[g.edges[id].Rev].Cap += f
}
