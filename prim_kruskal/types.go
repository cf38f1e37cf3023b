// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/ghsmst/edgelist"
)

// ErrInvalidGraph indicates that the graph is nil or has no node count.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a sized, weighted edge list")

// ErrRootOutOfRange indicates that the Prim root is not a node of the graph.
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal, rooted at 0 for Prim.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal, Root: 0}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph, opts.Root).
//	– otherwise:     ErrInvalidGraph.
func Compute(graph *edgelist.Graph, opts MSTOptions) (*edgelist.Graph, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}

// validate applies the checks shared by both algorithms and reports the node count.
func validate(graph *edgelist.Graph) (int, error) {
	if graph == nil || !graph.HasNodeCount() {
		return 0, ErrInvalidGraph
	}
	n := graph.NodeCount()
	if n == 0 {
		// No vertices: by convention there is no spanning tree.
		return 0, ErrDisconnected
	}

	return n, nil
}
