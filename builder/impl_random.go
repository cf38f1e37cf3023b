// SPDX-License-Identifier: MIT
// Package: ghsmst/builder
//
// impl_random.go — stochastic constructors.
//
// Determinism:
//   - Bernoulli trials run in (i asc, j asc) order over unordered pairs.
//   - Random trees draw a node permutation, then one parent per node.
//   - Fixed seed ⇒ identical output.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ghsmst/edgelist"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomTree      = "RandomTree"
	methodRandomConnected = "RandomConnected"

	probMin = 0.0
	probMax = 1.0
)

// RandomSparse adds each unordered pair {i,j} not yet present with
// probability p. The result may be disconnected.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) trials.
func RandomSparse(p float64) Constructor {
	return func(g *edgelist.Graph, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		return samplePairs(methodRandomSparse, g, cfg, p)
	}
}

// RandomTree adds a uniformly shuffled spanning tree: nodes are visited in a
// random order and each one attaches to a random earlier node.
//
// Contract:
//   - cfg.rng required (else ErrNeedRandSource).
//
// Complexity: O(n).
func RandomTree() Constructor {
	return func(g *edgelist.Graph, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}

		return randomTree(methodRandomTree, g, cfg)
	}
}

// RandomConnected is RandomTree followed by RandomSparse(density) over the
// remaining pairs, so the graph is always connected.
//
// Complexity: O(n²).
func RandomConnected(density float64) Constructor {
	return func(g *edgelist.Graph, cfg builderConfig) error {
		if density < probMin || density > probMax {
			return fmt.Errorf("%s: density=%.6f not in [%.1f,%.1f]: %w",
				methodRandomConnected, density, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}
		if err := randomTree(methodRandomConnected, g, cfg); err != nil {
			return err
		}

		return samplePairs(methodRandomConnected, g, cfg, density)
	}
}

// randomTree implements RandomTree; cfg.rng is non-nil.
func randomTree(method string, g *edgelist.Graph, cfg builderConfig) error {
	order := cfg.rng.Perm(g.NodeCount())
	for k := 1; k < len(order); k++ {
		parent := order[cfg.rng.Intn(k)]
		if err := addEdge(method, g, cfg, parent, order[k]); err != nil {
			return err
		}
	}

	return nil
}

// samplePairs adds each absent unordered pair with probability p.
func samplePairs(method string, g *edgelist.Graph, cfg builderConfig, p float64) error {
	if p == probMin {
		return nil
	}
	n := g.NodeCount()
	present := g.Pairs()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, ok := present[edgelist.Pair{U: i, V: j}]; ok {
				continue
			}
			if p < probMax && cfg.rng.Float64() >= p {
				continue
			}
			if err := addEdge(method, g, cfg, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}
