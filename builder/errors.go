// SPDX-License-Identifier: MIT
// Package: ghsmst/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w; sentinels never carry parameters.
//   • Option constructors (WithX) panic on meaningless input; constructors never do.

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic step ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an edge the graph refused.
var ErrConstructFailed = errors.New("builder: construction failed")
