// SPDX-License-Identifier: MIT

// Package edgelist is the graph container used by the distributed MST
// emulation: a node count plus a flat list of undirected, integer-weighted
// edges over node ids 0..n-1.
//
// The container is deliberately small. It knows how to:
//
//   - parse and serialize the whitespace text format
//     "node_count edge_count" followed by "u v weight" lines;
//   - canonicalize an edge list (ordered endpoints, sorted, deduplicated);
//   - collapse parallel edges to the lightest one (Simple);
//   - answer connectivity and spanning-tree validity questions.
//
// Ordering:
//
//	Edges are ordered by (Weight, U, V) after canonicalization. The same
//	order is used by the reference oracle in prim_kruskal and by the GHS
//	protocol in ghs, which makes the minimum spanning tree unique even when
//	weights repeat.
//
// Errors:
//
//	ErrNodeCountAlreadySet - SetNodeCount called on a graph whose size is fixed.
//	ErrNodeCountUnset      - an operation needs the node count before it was set.
//	ErrVertexOutOfRange    - an endpoint is outside 0..n-1.
//	ErrSelfLoop            - an edge connects a node to itself.
//	ErrMalformedInput      - the text input could not be parsed.
//	ErrDisconnected        - the graph does not span all nodes.
//	ErrNotSpanningTree     - a candidate tree fails validation.
//
// Graph values are not safe for concurrent mutation; the emulator is
// single-threaded and only reads the graph after setup.
package edgelist
