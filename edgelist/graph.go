// SPDX-License-Identifier: MIT
// Package: ghsmst/edgelist
//
// graph.go — mutation, canonicalization and comparison of edge lists.

package edgelist

import (
	"fmt"
	"sort"
)

// SetNodeCount fixes the number of nodes. It may be called once, and only on
// a graph created by New. Edges already present are range-checked.
//
// Errors:
//   - ErrNodeCountAlreadySet if the count was set before.
//   - ErrVertexOutOfRange if an existing edge does not fit into 0..n-1.
//
// Complexity: O(E).
func (g *Graph) SetNodeCount(n int) error {
	// 1) A fixed size can never change; this is a configuration misuse.
	if g.nodes != unsetNodeCount {
		return fmt.Errorf("SetNodeCount(%d): have %d: %w", n, g.nodes, ErrNodeCountAlreadySet)
	}
	if n < 0 {
		return fmt.Errorf("SetNodeCount(%d): %w", n, ErrVertexOutOfRange)
	}

	// 2) Edges collected before the size was known must fit the new range.
	for _, e := range g.edges {
		if err := checkRange(e, n); err != nil {
			return err
		}
	}
	g.nodes = n

	return nil
}

// NodeCount returns the number of nodes, or -1 when it is not set.
func (g *Graph) NodeCount() int {
	return g.nodes
}

// HasNodeCount reports whether the node count was fixed.
func (g *Graph) HasNodeCount() bool {
	return g.nodes != unsetNodeCount
}

// AddEdge appends e. Self-loops are rejected; endpoints are range-checked
// when the node count is known.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) error {
	if e.U == e.V {
		return fmt.Errorf("AddEdge(%s): %w", e, ErrSelfLoop)
	}
	if g.nodes != unsetNodeCount {
		if err := checkRange(e, g.nodes); err != nil {
			return err
		}
	}
	g.edges = append(g.edges, e)

	return nil
}

// AddEdges appends every edge of other.
func (g *Graph) AddEdges(other *Graph) error {
	for _, e := range other.edges {
		if err := g.AddEdge(e); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of stored edges.
func (g *Graph) Len() int {
	return len(g.edges)
}

// At returns the i-th edge.
func (g *Graph) At(i int) Edge {
	return g.edges[i]
}

// Edges returns a copy of the edge list in storage order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	return &Graph{nodes: g.nodes, edges: g.Edges()}
}

// Sort orders edges by (Weight, U, V) without touching endpoint order.
// Complexity: O(E log E).
func (g *Graph) Sort() {
	sort.SliceStable(g.edges, func(i, j int) bool {
		return g.edges[i].Less(g.edges[j])
	})
}

// Canonicalize orders each edge's endpoints, sorts by (Weight, U, V) and
// drops exact duplicates. Applying it to a canonical list is a no-op.
//
// Steps:
//  1. Canonicalize every edge in place.
//  2. Sort with the total edge order.
//  3. Compact equal neighbours.
//
// Complexity: O(E log E).
func (g *Graph) Canonicalize() {
	for i := range g.edges {
		g.edges[i] = g.edges[i].Canonical()
	}
	g.Sort()

	if len(g.edges) == 0 {
		return
	}
	w := 1
	for r := 1; r < len(g.edges); r++ {
		if g.edges[r] != g.edges[w-1] {
			g.edges[w] = g.edges[r]
			w++
		}
	}
	g.edges = g.edges[:w]
}

// IsCanonical reports whether g is already sorted, endpoint-ordered and free
// of duplicates.
func (g *Graph) IsCanonical() bool {
	for i, e := range g.edges {
		if e.U > e.V {
			return false
		}
		if i > 0 && !g.edges[i-1].Less(e) {
			return false
		}
	}

	return true
}

// Simple returns a canonical copy of g that keeps only the lightest edge of
// every endpoint pair. Under the (Weight, U, V) order the lightest parallel
// edge is the only one that can belong to a minimum spanning tree.
// Complexity: O(E log E).
func (g *Graph) Simple() *Graph {
	c := g.Clone()
	c.Canonicalize()

	seen := make(map[Pair]struct{}, len(c.edges))
	kept := c.edges[:0]
	for _, e := range c.edges {
		p := e.Pair()
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		kept = append(kept, e)
	}
	c.edges = kept

	return c
}

// Pairs returns the set of canonical endpoint pairs of g.
func (g *Graph) Pairs() map[Pair]struct{} {
	set := make(map[Pair]struct{}, len(g.edges))
	for _, e := range g.edges {
		set[e.Pair()] = struct{}{}
	}

	return set
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() int64 {
	var total int64
	for _, e := range g.edges {
		total += e.Weight
	}

	return total
}

// Equal reports whether g and o hold the same edge sequence.
// Node counts are not compared; canonicalize both sides first to compare sets.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if len(g.edges) != len(o.edges) {
		return false
	}
	for i := range g.edges {
		if g.edges[i] != o.edges[i] {
			return false
		}
	}

	return true
}

// checkRange verifies both endpoints of e are within 0..n-1.
func checkRange(e Edge, n int) error {
	if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
		return fmt.Errorf("edge %s with %d nodes: %w", e, n, ErrVertexOutOfRange)
	}

	return nil
}
