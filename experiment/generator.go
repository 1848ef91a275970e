// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvassign/matrix"
)

// defaultSeed replaces a zero seed so that the zero Config stays reproducible.
const defaultSeed int64 = 1

// InstanceKind selects the entry distribution of generated matrices.
type InstanceKind string

const (
	// KindUniform draws entries from [0,1).
	KindUniform InstanceKind = "uniform"
	// KindInteger draws entries from {0..max}; small max values give many ties.
	KindInteger InstanceKind = "integer"
)

// Generator builds reproducible cost matrices. Each (size, trial) pair owns an
// independent stream, so instances do not depend on generation order and can
// be built concurrently. A Generator itself holds no mutable state.
type Generator struct {
	seed int64
}

// NewGenerator returns a generator rooted at seed (0 means defaultSeed).
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = defaultSeed
	}

	return &Generator{seed: seed}
}

// Seed returns the root seed.
func (g *Generator) Seed() int64 { return g.seed }

// InstanceSeed derives the stream seed of one (size, trial) instance.
func (g *Generator) InstanceSeed(size, trial int) int64 {
	return deriveSeed(deriveSeed(g.seed, uint64(size)), uint64(trial))
}

// Uniform returns a size×size matrix with entries in [0,1).
func (g *Generator) Uniform(size, trial int) (*matrix.Dense, error) {
	rng := rand.New(rand.NewSource(g.InstanceSeed(size, trial)))

	return fill(size, func() float64 { return rng.Float64() })
}

// MaxIntegerValue is the largest max accepted by Integer.
const MaxIntegerValue = 1<<31 - 1

// Integer returns a size×size matrix with integer entries in [0, max].
// max must lie in [0, MaxIntegerValue].
func (g *Generator) Integer(size, trial, max int) (*matrix.Dense, error) {
	if max < 0 || max > MaxIntegerValue {
		return nil, fmt.Errorf("%w: integer max %d outside [0, %d]", ErrBadConfig, max, MaxIntegerValue)
	}
	rng := rand.New(rand.NewSource(g.InstanceSeed(size, trial)))

	return fill(size, func() float64 { return float64(rng.Intn(max + 1)) })
}

// Instance dispatches on kind.
func (g *Generator) Instance(kind InstanceKind, size, trial, max int) (*matrix.Dense, error) {
	switch kind {
	case KindUniform, "":
		return g.Uniform(size, trial)
	case KindInteger:
		return g.Integer(size, trial, max)
	default:
		return nil, fmt.Errorf("%w: instance kind %q", ErrBadConfig, kind)
	}
}

func fill(size int, next func() float64) (*matrix.Dense, error) {
	m, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}
	var i, j int
	for i = 0; i < size; i++ {
		for j = 0; j < size; j++ {
			if err = m.Set(i, j, next()); err != nil {
				return nil, fmt.Errorf("experiment: %w", err)
			}
		}
	}

	return m, nil
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
