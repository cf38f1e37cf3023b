// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/ghsmst/edgelist"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from root using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph   : graph is nil or its node count is unset.
//   - ErrRootOutOfRange : root is not in 0..n-1.
//   - ErrDisconnected   : |V| == 0, or |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate graph and root.
//  2. Build an incidence list of canonical edges per vertex.
//  3. Mark root visited and push its incident edges.
//  4. Pop the smallest edge by (Weight, U, V); skip it if both ends are visited,
//     otherwise add it and push the new vertex's edges.
//  5. Fewer than |V|-1 edges when the heap drains → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *edgelist.Graph, root int) (*edgelist.Graph, int64, error) {
	// 1. Validate.
	n, err := validate(graph)
	if err != nil {
		return nil, 0, err
	}
	if root < 0 || root >= n {
		return nil, 0, ErrRootOutOfRange
	}
	mst := edgelist.NewWithNodes(n)
	if n == 1 {
		return mst, 0, nil
	}

	// 2. Incidence lists.
	incident := make([][]edgelist.Edge, n)
	for _, e := range graph.Edges() {
		c := e.Canonical()
		incident[c.U] = append(incident[c.U], c)
		incident[c.V] = append(incident[c.V], c)
	}

	// 3. Seed the heap from root.
	visited := make([]bool, n)
	pq := &edgePQ{}
	heap.Init(pq)
	visit := func(v int) {
		visited[v] = true
		for _, e := range incident[v] {
			if !visited[other(e, v)] {
				heap.Push(pq, e)
			}
		}
	}
	visit(root)

	// 4. Expand.
	var totalWeight int64
	for pq.Len() > 0 && mst.Len() < n-1 {
		e := heap.Pop(pq).(edgelist.Edge)
		var next int
		switch {
		case !visited[e.U]:
			next = e.U
		case !visited[e.V]:
			next = e.V
		default:
			continue
		}
		_ = mst.AddEdge(e)
		totalWeight += e.Weight
		visit(next)
	}

	// 5. Spanning check.
	if mst.Len() < n-1 {
		return nil, 0, ErrDisconnected
	}

	mst.Canonicalize()

	return mst, totalWeight, nil
}

// other returns the endpoint of e opposite to v.
func other(e edgelist.Edge, v int) int {
	if e.U == v {
		return e.V
	}

	return e.U
}

// edgePQ implements heap.Interface for a min-heap of edges ordered by edgelist.Edge.Less.
type edgePQ []edgelist.Edge

func (pq edgePQ) Len() int { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return pq[i].Less(pq[j]) }
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(edgelist.Edge)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
