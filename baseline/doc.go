// SPDX-License-Identifier: MIT

// Package baseline provides reference assignment solvers used to judge the
// exact ones:
//
//   - Greedy: repeatedly takes the cheapest remaining cell. O(n³), not optimal.
//   - BruteForce: enumerates all n! permutations with Heap's algorithm.
//     Exact, refused above MaxBruteForceN.
//
// Both accept the same inputs and return the same Result type as the exact
// solvers, and both validate eagerly through assignment.Prepare.
package baseline
