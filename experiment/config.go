// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"math"
	"runtime"
)

// Config describes one sweep.
type Config struct {
	// Sizes lists the matrix orders to run, in report order.
	Sizes []int `yaml:"sizes" mapstructure:"sizes"`

	// Trials is the number of instances per size.
	Trials int `yaml:"trials" mapstructure:"trials"`

	// Seed roots the instance generator; 0 is replaced by a fixed default.
	Seed int64 `yaml:"seed" mapstructure:"seed"`

	// Solvers names the registry entries to run; empty means all.
	Solvers []string `yaml:"solvers" mapstructure:"solvers"`

	// Workers bounds the number of instances solved concurrently.
	Workers int `yaml:"workers" mapstructure:"workers"`

	// Tolerance is the relative cost difference allowed between exact solvers.
	Tolerance float64 `yaml:"tolerance" mapstructure:"tolerance"`

	// Kind and MaxValue select the entry distribution.
	Kind     InstanceKind `yaml:"kind" mapstructure:"kind"`
	MaxValue int          `yaml:"max_value" mapstructure:"max_value"`
}

// DefaultConfig sweeps powers of two up to 64 with five trials each.
func DefaultConfig() Config {
	return Config{
		Sizes:     []int{4, 8, 16, 32, 64},
		Trials:    5,
		Seed:      defaultSeed,
		Solvers:   Names(DefaultSolvers()),
		Workers:   runtime.GOMAXPROCS(0),
		Tolerance: 1e-9,
		Kind:      KindUniform,
		MaxValue:  100,
	}
}

// Validate checks c and reports the first problem found.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrBadConfig)
	}
	var n int
	for _, n = range c.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: size %d < 0", ErrBadConfig, n)
		}
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials %d < 1", ErrBadConfig, c.Trials)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d < 1", ErrBadConfig, c.Workers)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance %v", ErrBadConfig, c.Tolerance)
	}
	switch c.Kind {
	case KindUniform, "":
	case KindInteger:
		if c.MaxValue < 0 || c.MaxValue > MaxIntegerValue {
			return fmt.Errorf("%w: max_value %d outside [0, %d]", ErrBadConfig, c.MaxValue, MaxIntegerValue)
		}
	default:
		return fmt.Errorf("%w: instance kind %q", ErrBadConfig, c.Kind)
	}
	if _, err := Lookup(c.Solvers); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	return nil
}

// withinTolerance compares two costs relative to the larger magnitude, with
// an absolute floor of tol for costs near zero.
func withinTolerance(a, b, tol float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= tol*scale
}
