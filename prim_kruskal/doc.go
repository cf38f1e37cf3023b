// SPDX-License-Identifier: MIT

// Package prim_kruskal provides the centralized reference algorithms for the
// Minimum Spanning Tree (MST) of an undirected, weighted *edgelist.Graph:
// Kruskal's algorithm and Prim's algorithm.
//
// They serve as the oracle against which the distributed GHS emulation in
// package ghs is checked: a run is correct when its canonical branch-edge set
// equals the canonical edge set returned here.
//
// Algorithms Provided
//
//   - Kruskal(g *edgelist.Graph) (*edgelist.Graph, int64, error)
//
//   - Strategy: sort all edges by (Weight, U, V), then scan them once with a
//     disjoint-set forest, keeping every edge that joins two components.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Prim(g *edgelist.Graph, root int) (*edgelist.Graph, int64, error)
//
//   - Strategy: grow a single tree from root with a min-heap of candidate
//     edges ordered by (Weight, U, V).
//
//   - Complexity: O(E log V) time, O(V + E) memory.
//
// Determinism
//
//	Both algorithms order edges by the total order of edgelist.Edge.Less, so
//	the MST is unique even when weights repeat, and Kruskal and Prim return
//	identical canonical edge sets. GHS in package ghs breaks ties the same way.
//
// Error Conditions
//
//   - ErrInvalidGraph   : graph is nil or its node count is unset.
//   - ErrDisconnected   : |V| == 0, or |V| > 1 and no spanning tree exists.
//   - ErrRootOutOfRange : Prim only; root is not in 0..n-1.
//
// Results are returned canonicalized, so callers can compare them with
// (*edgelist.Graph).Equal directly.
package prim_kruskal
