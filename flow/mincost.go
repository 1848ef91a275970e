// SPDX-License-Identifier: MIT

package flow

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvassign/assignment"
)

// MinCostFlow pushes up to maxFlow units from source to sink along successive
// shortest paths and returns the flow achieved and its total cost.
//
// Reaching less than maxFlow is not an error here: the search stops as soon
// as the sink is unreachable, and callers that need a perfect flow compare the
// returned value themselves.
//
// Preconditions:
//   - source and sink are nodes of g and differ.
//   - maxFlow ≥ 0.
//   - every edge cost is ≥ 0 (guaranteed by AddEdge), so zero potentials are valid.
//
// The context is checked once before every shortest-path search; the residual
// graph is never left half-updated on cancellation.
//
// Complexity: O(F · E log V) time, O(V + E) extra memory.
func MinCostFlow(ctx context.Context, g *Network, source, sink, maxFlow int, opts *Options) (int, float64, error) {
	cfg := opts.normalize()
	if ctx == nil {
		ctx = context.Background()
	}

	// 1) Validate terminals and demand.
	if err := checkTerminals(g, source, sink); err != nil {
		return 0, 0, err
	}
	if maxFlow < 0 {
		return 0, 0, fmt.Errorf("flow: demand %d: %w", maxFlow, ErrBadCapacity)
	}
	V := g.Nodes()

	// 2) Per-call state; potentials start at zero.
	s := &search{
		g:        g,
		dist:     make([]float64, V),
		prevEdge: make([]int, V),
		pot:      make([]float64, V),
		pq:       make(distPQ, 0, V),
		ops:      cfg.Counter,
	}

	var (
		flow, f int
		cost    float64
		err     error
	)
	for flow < maxFlow {
		if err = ctx.Err(); err != nil {
			return flow, cost, fmt.Errorf("flow: %w", err)
		}

		// 3) Shortest path on reduced costs.
		s.dijkstra(source)
		if math.IsInf(s.dist[sink], 1) {
			break
		}

		// 4) Johnson update keeps every residual reduced cost ≥ 0.
		s.updatePotentials()

		// 5) Bottleneck along the predecessor chain, then push.
		if f, err = pathBottleneck(g, source, sink, s.prevEdge, maxFlow-flow); err != nil {
			return flow, cost, err
		}
		pushPath(g, source, sink, s.prevEdge, f)

		// 6) pot(sink) is now the true cost of the path just used.
		flow += f
		cost += float64(f) * s.pot[sink]
		cfg.Logger.V(1).Info("augmented", "flow", flow, "pathCost", s.pot[sink], "cost", cost)
	}

	return flow, cost, nil
}

// search bundles the scratch arrays reused across Dijkstra runs of one solve.
type search struct {
	g        *Network
	dist     []float64
	prevEdge []int
	pot      []float64
	pq       distPQ
	ops      *assignment.Counter
}

// dijkstra fills dist and prevEdge from src over edges with residual capacity,
// using reduced costs cost + pot(u) − pot(v).
func (s *search) dijkstra(src int) {
	var (
		i    int
		it   distItem
		u    int
		e    *Edge
		w    float64
		nd   float64
		id   int
		inf  = math.Inf(1)
		adjU []int
	)
	for i = range s.dist {
		s.dist[i] = inf
		s.prevEdge[i] = -1
	}
	s.dist[src] = 0
	s.pq = s.pq[:0]
	heap.Push(&s.pq, distItem{node: src, dist: 0})

	for s.pq.Len() > 0 {
		it = heap.Pop(&s.pq).(distItem)
		u = it.node
		// Stale entry: a shorter distance was already recorded.
		if it.dist > s.dist[u] {
			continue
		}
		adjU = s.g.adj[u]
		for _, id = range adjU {
			e = &s.g.edges[id]
			if e.Cap <= 0 {
				continue
			}
			w = e.Cost + s.pot[u] - s.pot[e.To]
			// Exact potentials give w ≥ 0; clamp rounding noise.
			if w < 0 {
				w = 0
			}
			nd = s.dist[u] + w
			s.ops.Inc()
			if nd < s.dist[e.To] {
				s.dist[e.To] = nd
				s.prevEdge[e.To] = id
				heap.Push(&s.pq, distItem{node: e.To, dist: nd})
			}
		}
	}
}

// updatePotentials adds the fresh distance to every reached node.
func (s *search) updatePotentials() {
	var v int
	for v = range s.pot {
		if !math.IsInf(s.dist[v], 1) {
			s.pot[v] += s.dist[v]
		}
	}
}
