// SPDX-License-Identifier: MIT

package assignment

import "github.com/go-logr/logr"

// Options configures a solver call.
//
// Logger – receives V(1) progress lines (one per augmentation) and V(2)
// detail lines. Defaults to logr.Discard().
type Options struct {
	Logger logr.Logger
}

// Option represents a functional option for configuring a solver.
type Option func(*Options)

// WithLogger routes solver progress to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns options with logging disabled.
func DefaultOptions() Options {
	return Options{Logger: logr.Discard()}
}

// Apply builds Options from DefaultOptions and the given overrides.
func Apply(opts ...Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
