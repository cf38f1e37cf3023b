// SPDX-License-Identifier: MIT
// Package: ghsmst/edgelist
//
// types.go — Edge, Pair, Graph and the sentinel errors of the container.

package edgelist

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph container operations.
var (
	// ErrNodeCountAlreadySet indicates the node count was set more than once.
	ErrNodeCountAlreadySet = errors.New("edgelist: node count already set")

	// ErrNodeCountUnset indicates an operation required the node count first.
	ErrNodeCountUnset = errors.New("edgelist: node count is not set")

	// ErrVertexOutOfRange indicates an endpoint outside 0..n-1.
	ErrVertexOutOfRange = errors.New("edgelist: vertex out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("edgelist: self-loop not allowed")

	// ErrMalformedInput indicates the text encoding could not be parsed.
	ErrMalformedInput = errors.New("edgelist: malformed input")

	// ErrDisconnected indicates the graph does not connect all of its nodes.
	ErrDisconnected = errors.New("edgelist: graph is disconnected")

	// ErrNotSpanningTree indicates a candidate tree is not a spanning tree of its graph.
	ErrNotSpanningTree = errors.New("edgelist: not a spanning tree")
)

// unsetNodeCount marks a Graph whose size has not been fixed yet.
const unsetNodeCount = -1

// Pair is an unordered pair of node ids. A canonical Pair has U <= V.
type Pair struct {
	U, V int
}

// Canonical returns the pair with its endpoints ordered.
func (p Pair) Canonical() Pair {
	if p.U > p.V {
		return Pair{U: p.V, V: p.U}
	}

	return p
}

// Edge is an undirected weighted edge between U and V.
type Edge struct {
	// U and V are the endpoints. Canonical edges keep U <= V.
	U, V int

	// Weight is the edge cost.
	Weight int64
}

// Canonical returns e with its endpoints ordered so that (a,b) == (b,a).
func (e Edge) Canonical() Edge {
	if e.U > e.V {
		e.U, e.V = e.V, e.U
	}

	return e
}

// Pair returns the canonical endpoint pair of e.
func (e Edge) Pair() Pair {
	return Pair{U: e.U, V: e.V}.Canonical()
}

// Less orders edges by (Weight, U, V) of their canonical forms.
// It is a strict total order on distinct canonical edges.
func (e Edge) Less(o Edge) bool {
	a, b := e.Canonical(), o.Canonical()
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.U != b.U {
		return a.U < b.U
	}

	return a.V < b.V
}

// String renders the edge in the text format "u v weight".
func (e Edge) String() string {
	return fmt.Sprintf("%d %d %d", e.U, e.V, e.Weight)
}

// Graph is a node count plus an edge list.
//
// The node count is fixed once: either at construction via NewWithNodes or
// by a single SetNodeCount call. Edges added before the count is known are
// range-checked when the count is set.
type Graph struct {
	nodes int
	edges []Edge
}

// New returns an empty Graph whose node count is not set yet.
// Complexity: O(1).
func New() *Graph {
	return &Graph{nodes: unsetNodeCount}
}

// NewWithNodes returns an empty Graph over nodes 0..n-1.
// A negative n is treated as zero.
// Complexity: O(1).
func NewWithNodes(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{nodes: n}
}

// FromEdges builds a graph over n nodes from the given edges, validating each.
// Complexity: O(E).
func FromEdges(n int, edges ...Edge) (*Graph, error) {
	g := NewWithNodes(n)
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}

	return g, nil
}
