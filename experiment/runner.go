// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvassign/assignment"
	"github.com/katalvlaran/lvassign/matrix"
)

// Trial is one solver run on one instance.
type Trial struct {
	Solver  string  `yaml:"solver"`
	Size    int     `yaml:"size"`
	Trial   int     `yaml:"trial"`
	Seed    int64   `yaml:"seed"`
	Cost    float64 `yaml:"cost"`
	Ops     int64   `yaml:"ops"`
	Seconds float64 `yaml:"seconds"`
	// Gap is Cost minus the best exact cost on the same instance; 0 when no
	// exact solver ran.
	Gap float64 `yaml:"gap"`
}

// instance identifies one generated matrix.
type instance struct {
	size, trial int
}

// Run executes the sweep described by cfg. When solvers is empty the set is
// resolved from cfg.Solvers.
//
// Instances run concurrently on at most cfg.Workers goroutines. The first
// failure cancels the remaining instances and is returned; the report is
// only produced for a complete sweep. Trials come back in (size, trial,
// solver) order regardless of scheduling.
func Run(ctx context.Context, cfg Config, solvers []Solver, opts ...Option) (*Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(solvers) == 0 {
		var err error
		if solvers, err = Lookup(cfg.Solvers); err != nil {
			return nil, err
		}
	}
	ro := applyOptions(opts)
	rep := newReport(cfg)
	gen := NewGenerator(cfg.Seed)

	instances := make([]instance, 0, len(cfg.Sizes)*cfg.Trials)
	var size, t int
	for _, size = range cfg.Sizes {
		for t = 0; t < cfg.Trials; t++ {
			instances = append(instances, instance{size: size, trial: t})
		}
	}
	ro.logger.Info("sweep started", "runID", rep.RunID.String(), "instances", len(instances),
		"solvers", Names(solvers), "workers", cfg.Workers)

	results := make([][]Trial, len(instances))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	var k int
	for k = range instances {
		if gctx.Err() != nil {
			break
		}
		k := k
		g.Go(func() error {
			trials, err := runInstance(gctx, gen, cfg, solvers, instances[k], ro)
			results[k] = trials
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancellation that landed between the last Go and Wait leaves holes.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}

	for k = range results {
		rep.Trials = append(rep.Trials, results[k]...)
	}
	rep.Summaries = Summarize(rep.Trials)
	rep.Finished = time.Now().UTC()
	ro.logger.Info("sweep finished", "runID", rep.RunID.String(), "trials", len(rep.Trials),
		"elapsed", rep.Finished.Sub(rep.StartedAt).Round(time.Millisecond).String())

	return rep, nil
}

// runInstance generates one matrix and runs every applicable solver on it.
func runInstance(ctx context.Context, gen *Generator, cfg Config, solvers []Solver, in instance, ro runOptions) ([]Trial, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}
	m, err := gen.Instance(cfg.Kind, in.size, in.trial, cfg.MaxValue)
	if err != nil {
		return nil, err
	}
	log := ro.logger.WithValues("size", in.size, "trial", in.trial)

	var (
		trials    = make([]Trial, 0, len(solvers))
		exact     = make([]int, 0, len(solvers)) // indexes into trials
		best      = math.Inf(1)
		seed      = gen.InstanceSeed(in.size, in.trial)
		s         Solver
		res       *assignment.Result
		start     time.Time
		elapsed   float64
		i         int
		haveExact bool
	)
	for _, s = range solvers {
		if !s.Applies(in.size) {
			continue
		}
		start = time.Now()
		res, err = solveOne(ctx, s, m, log)
		elapsed = time.Since(start).Seconds()
		ro.metrics.observe(s.Name, in.size, elapsed, res, err)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			return nil, fmt.Errorf("experiment: %s on size=%d trial=%d: %w", s.Name, in.size, in.trial, err)
		}
		log.V(1).Info("solved", "solver", s.Name, "cost", res.Cost, "ops", res.Ops, "seconds", elapsed)

		trials = append(trials, Trial{
			Solver:  s.Name,
			Size:    in.size,
			Trial:   in.trial,
			Seed:    seed,
			Cost:    res.Cost,
			Ops:     res.Ops,
			Seconds: elapsed,
		})
		if s.Exact {
			exact = append(exact, len(trials)-1)
			if res.Cost < best {
				best = res.Cost
			}
			haveExact = true
		}
	}
	if !haveExact {
		return trials, nil
	}

	for _, i = range exact {
		if !withinTolerance(trials[i].Cost, best, cfg.Tolerance) {
			return nil, fmt.Errorf("%w: size=%d trial=%d seed=%d %s=%v best=%v",
				ErrExactMismatch, in.size, in.trial, seed, trials[i].Solver, trials[i].Cost, best)
		}
	}
	for i = range trials {
		trials[i].Gap = trials[i].Cost - best
	}

	return trials, nil
}

// solveOne runs s and double-checks its output against the instance.
func solveOne(ctx context.Context, s Solver, m matrix.Matrix, log logr.Logger) (*assignment.Result, error) {
	res, err := s.Solve(ctx, m, assignment.WithLogger(log.V(1).WithName(s.Name)))
	if err != nil {
		return nil, err
	}
	if err = assignment.CheckPermutation(res.Assignment, m.Rows()); err != nil {
		return nil, err
	}

	return res, nil
}
