// SPDX-License-Identifier: MIT

// Package builder produces deterministic test and benchmark graphs for the
// GHS emulation: paths, stars, cycles, complete graphs and random graphs,
// all over node ids 0..n-1 and stored as *edgelist.Graph.
//
// One orchestrator, BuildGraph(n, opts, cons...), allocates the graph,
// resolves the options and applies constructors in order. Constructors may
// be composed; for instance Path() followed by RandomSparse(0.1) yields a
// connected graph with a few extra chords.
//
// Determinism:
//
//	Same n, options, seed and constructor order ⇒ identical edge lists.
//	Randomness flows only from the *rand.Rand passed via WithSeed/WithRand.
//
// Weights:
//
//	Without options every edge weighs 1, which exercises tie-breaking.
//	WithUniformWeight draws from a closed interval. WithDistinctWeights
//	reassigns a random permutation of 0..E-1 after all constructors ran,
//	as the randomized fixture generator of the MST self-check does.
//
// Errors (use errors.Is):
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
package builder
