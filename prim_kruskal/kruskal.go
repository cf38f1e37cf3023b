// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"github.com/katalvlaran/ghsmst/edgelist"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) forest with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil or its node count is unset.
//   - ErrDisconnected : |V| == 0, or |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate the graph; a single vertex yields the empty tree.
//  2. Copy and canonicalize the edge list: ordered endpoints, sorted by
//     (Weight, U, V), exact duplicates removed. The order is total, so ties
//     never depend on input order.
//  3. Initialize the disjoint-set forest over 0..n-1.
//  4. Scan the sorted edges; keep each edge whose endpoints lie in different sets.
//  5. Stop at |V|-1 edges. Fewer than that after the scan → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *edgelist.Graph) (*edgelist.Graph, int64, error) {
	// 1. Validate.
	n, err := validate(graph)
	if err != nil {
		return nil, 0, err
	}
	mst := edgelist.NewWithNodes(n)
	if n == 1 {
		return mst, 0, nil
	}

	// 2. Canonical, sorted working copy.
	sorted := graph.Clone()
	sorted.Canonicalize()

	// 3. Disjoint sets, one per vertex.
	ds := edgelist.NewDisjointSet(n)

	// 4. Greedy scan.
	var totalWeight int64
	for _, e := range sorted.Edges() {
		if !ds.Union(e.U, e.V) {
			// Both endpoints already connected: e would close a cycle.
			continue
		}
		// AddEdge cannot fail here: e was validated when it entered graph.
		_ = mst.AddEdge(e)
		totalWeight += e.Weight
		if mst.Len() == n-1 {
			break
		}
	}

	// 5. Spanning check.
	if mst.Len() < n-1 {
		return nil, 0, ErrDisconnected
	}

	mst.Canonicalize()

	return mst, totalWeight, nil
}
