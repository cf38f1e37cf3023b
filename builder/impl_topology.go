// SPDX-License-Identifier: MIT
// Package: ghsmst/builder
//
// impl_topology.go — fixed topologies over all nodes of the graph.
//
// Contract shared by every constructor here:
//   - Nodes are 0..n-1 with n = g.NodeCount().
//   - Edges are emitted in increasing index order.
//   - Weights come from cfg.weightFn(cfg.rng).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ghsmst/edgelist"
)

const (
	methodPath     = "Path"
	methodStar     = "Star"
	methodCycle    = "Cycle"
	methodComplete = "Complete"

	minPathNodes  = 2
	minStarNodes  = 2
	minCycleNodes = 3
)

// Path emits (i-1)—i for i = 1..n-1.
// Complexity: O(n).
func Path() Constructor {
	return func(g *edgelist.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star emits 0—i for i = 1..n-1; node 0 is the hub.
// Complexity: O(n).
func Star() Constructor {
	return func(g *edgelist.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle emits the path 0..n-1 and closes it with (n-1)—0.
// Complexity: O(n).
func Cycle() Constructor {
	return func(g *edgelist.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return addEdge(methodCycle, g, cfg, n-1, 0)
	}
}

// Complete emits every pair i<j.
// Complexity: O(n²).
func Complete() Constructor {
	return func(g *edgelist.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
