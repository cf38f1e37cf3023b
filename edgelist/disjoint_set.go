// SPDX-License-Identifier: MIT

package edgelist

// DisjointSet is a union-find forest over 0..n-1 with path compression and
// union by rank.
type DisjointSet struct {
	parent []int
	rank   []int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// Find returns the representative of u. Iterative, halving the path on the way up.
func (ds *DisjointSet) Find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// Union merges the sets of u and v and reports whether they were disjoint.
func (ds *DisjointSet) Union(u, v int) bool {
	ru, rv := ds.Find(u), ds.Find(v)
	if ru == rv {
		return false
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
