// SPDX-License-Identifier: MIT

package experiment

import "github.com/go-logr/logr"

type runOptions struct {
	logger  logr.Logger
	metrics *Metrics
}

// Option configures Run.
type Option func(*runOptions)

// WithLogger routes harness progress to l. Solvers receive l.V(1) so their
// per-augmentation lines only show at higher verbosity.
func WithLogger(l logr.Logger) Option {
	return func(o *runOptions) { o.logger = l }
}

// WithMetrics records every solve into m.
func WithMetrics(m *Metrics) Option {
	return func(o *runOptions) { o.metrics = m }
}

func applyOptions(opts []Option) runOptions {
	cfg := runOptions{logger: logr.Discard()}
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
