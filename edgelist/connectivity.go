// SPDX-License-Identifier: MIT
// Package: ghsmst/edgelist
//
// connectivity.go — reachability and spanning-tree validation.
//
// Connected runs a plain breadth-first search from node 0 over an adjacency
// list built once from the edge list. ValidateSpanningTree relies on a
// disjoint-set forest to detect cycles in O(E·α(V)).

package edgelist

import "fmt"

// Adjacency returns, for every node, the list of neighbours in edge order.
// Parallel edges produce repeated neighbours.
// Complexity: O(V + E).
func (g *Graph) Adjacency() [][]int {
	n := g.nodes
	if n < 0 {
		n = 0
	}
	adj := make([][]int, n)
	for _, e := range g.edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	return adj
}

// Connected reports whether every node is reachable from node 0.
// Graphs with zero or one node are connected by convention.
//
// Steps:
//  1. Build adjacency.
//  2. BFS from 0 with a FIFO slice queue, marking visited nodes.
//  3. Compare the visited count with the node count.
//
// Complexity: O(V + E) time and memory.
func Connected(g *Graph) bool {
	if g.nodes <= 1 {
		return true
	}

	adj := g.Adjacency()
	visited := make([]bool, g.nodes)
	queue := make([]int, 0, g.nodes)

	visited[0] = true
	queue = append(queue, 0)
	seen := 1
	for head := 0; head < len(queue); head++ {
		curr := queue[head]
		for _, nb := range adj[curr] {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			seen++
			queue = append(queue, nb)
		}
	}

	return seen == g.nodes
}

// ValidateSpanningTree checks that tree is a spanning tree of g:
// exactly n-1 edges, every edge present in g with the same weight, and no cycle.
//
// Errors:
//   - ErrNodeCountUnset if g has no node count.
//   - ErrNotSpanningTree (wrapped with the reason) otherwise.
func ValidateSpanningTree(g, tree *Graph) error {
	if !g.HasNodeCount() {
		return ErrNodeCountUnset
	}
	n := g.nodes

	want := n - 1
	if n == 0 {
		want = 0
	}
	if tree.Len() != want {
		return fmt.Errorf("have %d edges, want %d: %w", tree.Len(), want, ErrNotSpanningTree)
	}

	known := make(map[Edge]struct{}, g.Len())
	for _, e := range g.edges {
		known[e.Canonical()] = struct{}{}
	}

	ds := NewDisjointSet(n)
	for _, e := range tree.edges {
		c := e.Canonical()
		if _, ok := known[c]; !ok {
			return fmt.Errorf("edge %s not in graph: %w", c, ErrNotSpanningTree)
		}
		if !ds.Union(c.U, c.V) {
			return fmt.Errorf("edge %s closes a cycle: %w", c, ErrNotSpanningTree)
		}
	}

	return nil
}
