// SPDX-License-Identifier: MIT

// Package suite runs batches of GHS-versus-Kruskal checks described in TOML.
//
//	seed = 42
//	trials = 5
//
//	[[case]]
//	name = "triangle"
//	file = "testdata/triangle.txt"
//	expect_weight = 8
//
//	[[case]]
//	name = "random-200"
//	trials = 2
//	[case.random]
//	nodes = 200
//	density = 0.05
//	distinct = true
//
// Relative file paths are resolved against the directory of the suite file.
// Trial i of a case runs the scheduler with seed+i, so a failing trial can be
// replayed with `ghsmst run --seed`.
package suite
