// Package lvassign solves the assignment problem: given an n×n cost matrix,
// give every worker exactly one task so that the total cost is minimal.
//
// 🚀 What is inside?
//
//	Two exact solvers that always agree on the optimal cost:
//		• hungarian: Kuhn–Munkres with star/prime/cover markers, O(n³)
//		• flow: min-cost max-flow reduction, successive shortest paths
//		  with Johnson potentials, O(n·(E log V))
//	Two reference solvers for comparison:
//		• baseline.Greedy: cheapest remaining cell first, fast and suboptimal
//		• baseline.BruteForce: all n! permutations, n ≤ 10
//	A harness and a CLI:
//		• experiment: seeded instances, parallel sweeps, summaries,
//		  Prometheus metrics, YAML/CSV reports
//		• cmd/assignbench: solve a matrix file or run a benchmark sweep
//
// ✨ Guarantees
//
//   - Validation first: a bad matrix never reaches a solver's working state
//   - Typed failures: errors.Is works for both the kind and the cause
//   - Deterministic: ties resolve row-major, so results repeat exactly
//   - No shared state: each call owns its buffers and may run concurrently
//
// Layout:
//
//	matrix/      - Matrix interface, Dense storage, validators
//	assignment/  - Pair, Assignment, Result, Counter, options, error kinds
//	hungarian/   - Kuhn–Munkres solver
//	flow/        - residual network, MinCostFlow, assignment reduction
//	baseline/    - greedy and brute-force reference solvers
//	experiment/  - sweep runner, statistics, metrics, reports
//	internal/cli - assignbench commands
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}})
//	res, err := hungarian.Solve(ctx, m)
//	// res.Assignment == [(0,1) (1,0) (2,2)], res.Cost == 5
package lvassign
