// SPDX-License-Identifier: MIT

// Package flow implements a residual flow network and a min-cost max-flow
// solver, plus the reduction of the square assignment problem to it.
//
// # Network
//
// Network stores every edge in a single arena slice. AddEdge appends a
// forward edge and its paired reverse edge (capacity 0, negated cost); each
// edge keeps the arena index of its partner, and each node keeps the arena
// indices of its outgoing edges. Residual updates are O(1) and there are no
// pointer cycles.
//
// # MinCostFlow
//
// Successive shortest augmenting paths with vertex potentials (Johnson's
// technique):
//
//  1. Dijkstra from the source on reduced costs
//     w'(u,v) = cost(u,v) + pot(u) − pot(v) ≥ 0.
//  2. Stop when the sink is unreachable or the requested flow is reached.
//  3. pot(v) += dist(v) for every reached node.
//  4. Walk predecessor edges from sink to source for the bottleneck.
//  5. Push: forward capacity −= f, paired reverse capacity += f.
//  6. cost += f · pot(sink), the true source→sink path cost.
//
// Complexity:
//
//   - Time:   O(F · E log V) for total flow F.
//   - Memory: O(V + E).
//
// Initial potentials are zero, which is valid only when every edge with
// positive capacity has non-negative cost. Negative costs are rejected by
// AddEdge.
//
// # MaxFlow
//
// Edmonds–Karp on the same arena: BFS finds the fewest-edges augmenting path
// over positive residual capacity, costs are ignored. Useful to test whether
// a network admits a given flow at all. O(V · E²).
//
// # Assignment reduction
//
// Solve builds source → n workers → n tasks → sink with unit capacities and
// worker→task cost equal to the matrix entry, asks for flow n, and reads the
// matching from the worker→task edges whose reverse edge carries capacity.
//
// Errors:
//
//	ErrNodeOutOfRange - an edge endpoint is not a node of the network.
//	ErrBadCapacity    - negative capacity.
//	ErrBadCost        - negative or non-finite cost.
//	ErrSourceIsSink   - source and sink coincide.
//	assignment.ErrInfeasible - Solve reached flow < n.
//	context.Canceled / context.DeadlineExceeded - polled before each search.
package flow
