// SPDX-License-Identifier: MIT
// Package: ghsmst/builder
//
// api.go — BuildGraph orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ghsmst/edgelist"
)

// Constructor adds edges to g using the resolved builderConfig. Constructors
// validate parameters first, emit edges in a stable documented order and
// return sentinel errors instead of panicking.
type Constructor func(g *edgelist.Graph, cfg builderConfig) error

// BuildGraph creates a graph over n nodes, resolves options and applies all
// constructors in order. Any constructor error is wrapped as "BuildGraph: %w".
//
// Complexity: O(len(bopts)) plus the cost of each constructor; O(E) more for
// WithDistinctWeights.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*edgelist.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w", n, ErrTooFewVertices)
	}
	g := edgelist.NewWithNodes(n)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if cfg.distinct {
		out, err := permuteWeights(g, cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
		g = out
	}

	return g, nil
}

// permuteWeights rebuilds g with weights taken from a shuffled 0..E-1.
func permuteWeights(g *edgelist.Graph, cfg builderConfig) (*edgelist.Graph, error) {
	if cfg.rng == nil {
		return nil, fmt.Errorf("distinct weights: %w", ErrNeedRandSource)
	}
	weights := cfg.rng.Perm(g.Len())
	out := edgelist.NewWithNodes(g.NodeCount())
	for i, e := range g.Edges() {
		e.Weight = int64(weights[i])
		if err := out.AddEdge(e); err != nil {
			return nil, fmt.Errorf("distinct weights: %v: %w", err, ErrConstructFailed)
		}
	}

	return out, nil
}

// addEdge emits u—v with the configured weight.
func addEdge(method string, g *edgelist.Graph, cfg builderConfig, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(edgelist.Edge{U: u, V: v, Weight: w}); err != nil {
		return fmt.Errorf("%s: AddEdge(%d—%d, w=%d): %v: %w", method, u, v, w, err, ErrConstructFailed)
	}

	return nil
}
