// SPDX-License-Identifier: MIT

// Package experiment runs assignment solvers side by side on generated
// instances and aggregates what it observes.
//
// A run is a sweep over Config.Sizes × Config.Trials. Every (size, trial)
// pair yields one instance, generated deterministically from Config.Seed, and
// every applicable solver runs on that same matrix. Instances are spread over
// a bounded worker pool; a single solve always runs on one goroutine.
//
// Output:
//   - Report.Trials: one row per (solver, size, trial) with cost, ops,
//     wall time and the gap to the best exact cost.
//   - Report.Summaries: per (solver, size) means and standard deviations.
//   - Metrics: a private Prometheus registry that can be dumped in the text
//     exposition format for node_exporter's textfile collector.
//
// Exact solvers are cross-checked on every instance; a disagreement beyond
// Config.Tolerance aborts the run with ErrExactMismatch.
package experiment
