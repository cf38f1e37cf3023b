// SPDX-License-Identifier: MIT
// Package: ghsmst/builder
//
// options.go — functional options and the resolved builderConfig.

package builder

import (
	"fmt"
	"math/rand"
)

// defaultConstWeight is the edge weight used when no weight option is given.
const defaultConstWeight = int64(1)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// rng drives every stochastic choice; nil means "no randomness".
	rng *rand.Rand
	// weightFn yields the weight of each emitted edge.
	weightFn func(*rand.Rand) int64
	// distinct replaces all weights by a random permutation of 0..E-1.
	distinct bool
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies options in order over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight gives every edge weight w.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(func(*rand.Rand) int64 { return w })
}

// WithUniformWeight draws weights uniformly from [min, max].
// Panics if max < min. A nil RNG yields min.
func WithUniformWeight(min, max int64) BuilderOption {
	if max < min {
		panic(fmt.Sprintf("builder: WithUniformWeight(min=%d, max=%d)", min, max))
	}
	return WithWeightFn(func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	})
}

// WithDistinctWeights reassigns weights to a random permutation of 0..E-1
// once all constructors ran, so that no two edges share a weight.
func WithDistinctWeights() BuilderOption {
	return func(c *builderConfig) {
		c.distinct = true
	}
}
