// SPDX-License-Identifier: MIT

package experiment

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the trials of one solver at one size.
type Summary struct {
	Solver      string  `yaml:"solver"`
	Size        int     `yaml:"size"`
	Trials      int     `yaml:"trials"`
	MeanSeconds float64 `yaml:"mean_seconds"`
	StdSeconds  float64 `yaml:"std_seconds"`
	MeanOps     float64 `yaml:"mean_ops"`
	MeanCost    float64 `yaml:"mean_cost"`
	MeanGap     float64 `yaml:"mean_gap"`
}

type summaryKey struct {
	solver string
	size   int
}

// Summarize groups trials by (solver, size). Groups are ordered by size, and
// within a size by the order in which solvers first appear in trials.
// StdSeconds is the sample standard deviation, 0 for a single trial.
func Summarize(trials []Trial) []Summary {
	var (
		order   []summaryKey
		groups  = make(map[summaryKey][]int)
		rank    = make(map[string]int)
		key     summaryKey
		i       int
		ok      bool
		members []int
	)
	for i = range trials {
		key = summaryKey{solver: trials[i].Solver, size: trials[i].Size}
		if _, ok = groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
		if _, ok = rank[key.solver]; !ok {
			rank[key.solver] = len(rank)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		if order[a].size != order[b].size {
			return order[a].size < order[b].size
		}
		return rank[order[a].solver] < rank[order[b].solver]
	})

	out := make([]Summary, 0, len(order))
	var (
		secs, ops, cost, gap []float64
		j                    int
		s                    Summary
	)
	for _, key = range order {
		members = groups[key]
		secs = make([]float64, len(members))
		ops = make([]float64, len(members))
		cost = make([]float64, len(members))
		gap = make([]float64, len(members))
		for j, i = range members {
			secs[j] = trials[i].Seconds
			ops[j] = float64(trials[i].Ops)
			cost[j] = trials[i].Cost
			gap[j] = trials[i].Gap
		}

		s = Summary{Solver: key.solver, Size: key.size, Trials: len(members)}
		if len(members) > 1 {
			s.MeanSeconds, s.StdSeconds = stat.MeanStdDev(secs, nil)
		} else {
			s.MeanSeconds = secs[0]
		}
		s.MeanOps = stat.Mean(ops, nil)
		s.MeanCost = stat.Mean(cost, nil)
		s.MeanGap = stat.Mean(gap, nil)
		out = append(out, s)
	}

	return out
}
