// SPDX-License-Identifier: MIT

// Package ghs implements the Gallager–Humblet–Spira distributed minimum
// spanning tree protocol on top of package emulator.
//
// Every vertex of the input graph becomes a Node that knows only its own
// incident edges. Nodes merge into fragments, each identified by the key of
// its core edge and a level. In every phase a fragment searches for its
// minimum outgoing edge (MOE) and merges across it, until no outgoing edge
// is left and End is broadcast down the tree.
//
// Messages:
//
//	WakeUp      spontaneous activation of a sleeping node
//	Connect     propose a merge across an edge
//	Init        broadcast a new fragment identity and state down the tree
//	Test        ask whether an edge leaves the fragment
//	Reject      the tested edge is internal
//	Accept      the tested edge is outgoing
//	Report      convergecast of the best outgoing key towards the core
//	ChangeCore  walk towards the owner of the MOE
//	End         broadcast termination
//
// A Connect from a same-level fragment over an edge this node has not chosen
// yet, a Test from a higher-level fragment, and a core Report that arrives
// while still searching cannot be answered yet. They are postponed and
// replayed, in order, after the next Init and after a merge.
//
// Ordering:
//
//	Edges compare by Key{Weight, Lo, Hi}. Ties in weight are broken by
//	endpoint ids, so the result is the unique MST under that order and is
//	equal to prim_kruskal.Kruskal, whatever the schedule.
//
// Preconditions:
//
//	The graph must be connected; Run returns ErrDisconnected otherwise.
//	Parallel edges are collapsed to the lightest one before the run.
//
// Usage:
//
//	res, err := ghs.Run(g, ghs.WithSeed(1))
//	ok, err := ghs.Verify(g)
package ghs
