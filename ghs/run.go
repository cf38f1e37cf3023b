// SPDX-License-Identifier: MIT
// Package: ghsmst/ghs
//
// run.go — wiring nodes into the emulator and assembling the tree.

package ghs

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ghsmst/edgelist"
	"github.com/katalvlaran/ghsmst/emulator"
	"github.com/katalvlaran/ghsmst/prim_kruskal"
)

// Result is the outcome of a completed run.
type Result struct {
	// Tree holds the Branch edges of all nodes, canonicalized.
	Tree *edgelist.Graph
	// Stats counts scheduler rounds, activations, wake-ups and deliveries.
	Stats emulator.Stats
}

// runConfig is the resolved set of Run options.
type runConfig struct {
	rng        *rand.Rand
	log        *logrus.Entry
	observer   emulator.Observer
	roundLimit int
}

// Option customizes Run and Verify.
type Option func(*runConfig)

// WithSeed makes the schedule reproducible.
func WithSeed(seed int64) Option {
	return func(c *runConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an existing RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("ghs: WithRand(nil)")
	}
	return func(c *runConfig) {
		c.rng = r
	}
}

// WithLogger routes scheduler and node logs to entry. Panics on nil.
func WithLogger(entry *logrus.Entry) Option {
	if entry == nil {
		panic("ghs: WithLogger(nil)")
	}
	return func(c *runConfig) {
		c.log = entry
	}
}

// WithObserver forwards every scheduling event to o.
func WithObserver(o emulator.Observer) Option {
	return func(c *runConfig) {
		c.observer = o
	}
}

// WithRoundLimit aborts runs that take more than n scheduler rounds.
func WithRoundLimit(n int) Option {
	return func(c *runConfig) {
		c.roundLimit = n
	}
}

func newRunConfig(opts ...Option) runConfig {
	l := logrus.New()
	l.Out = io.Discard
	cfg := runConfig{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		log: logrus.NewEntry(l),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Run computes the minimum spanning tree of g with the distributed GHS
// protocol under a randomized scheduler.
//
// Steps:
//  1. Reject nil, unsized or disconnected graphs.
//  2. Collapse parallel edges to the lightest one (edgelist.Simple).
//  3. Create one Node per vertex and register both sides of every edge.
//  4. Run the emulator until every node has ended.
//  5. Union all Branch edges, canonicalize, and check the tree spans g.
//
// Errors:
//   - ErrInvalidGraph, ErrDisconnected: before any message is sent.
//   - emulator.ErrProtocolViolation: a node sent along a non-edge.
//   - ErrAsymmetricTree: the Branch edges are not a spanning tree.
//
// The tree is unique under the (weight, lo, hi) order and equals the
// result of prim_kruskal.Kruskal on the same graph.
func Run(g *edgelist.Graph, opts ...Option) (*Result, error) {
	// 1. Validate.
	if g == nil || !g.HasNodeCount() {
		return nil, ErrInvalidGraph
	}
	simple := g.Simple()
	if !edgelist.Connected(simple) {
		return nil, ErrDisconnected
	}
	cfg := newRunConfig(opts...)

	// 2–3. One node per vertex.
	n := simple.NodeCount()
	nodes := make([]*Node, n)
	for i := range nodes {
		nodes[i] = NewNode(i)
		nodes[i].log = cfg.log.WithField("node", i)
	}
	for _, e := range simple.Edges() {
		if err := nodes[e.U].AddEdge(e.V, e.Weight); err != nil {
			return nil, err
		}
		if err := nodes[e.V].AddEdge(e.U, e.Weight); err != nil {
			return nil, err
		}
	}

	// 4. Simulate.
	agents := make([]emulator.Node[Message], n)
	for i, node := range nodes {
		agents[i] = node
	}
	emOpts := []emulator.Option{
		emulator.WithRand(cfg.rng),
		emulator.WithLogger(cfg.log),
		emulator.WithObserver(cfg.observer),
		emulator.WithRoundLimit(cfg.roundLimit),
	}
	sched, err := emulator.New(simple, agents, emOpts...)
	if err != nil {
		return nil, err
	}
	stats, err := sched.Run()
	if err != nil {
		return nil, err
	}

	// 5. Assemble.
	tree := edgelist.NewWithNodes(n)
	for _, node := range nodes {
		for _, e := range node.Branches() {
			if err = tree.AddEdge(e); err != nil {
				return nil, err
			}
		}
	}
	tree.Canonicalize()
	if err = edgelist.ValidateSpanningTree(simple, tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAsymmetricTree, err)
	}

	cfg.log.WithFields(logrus.Fields{
		"nodes":       n,
		"edges":       simple.Len(),
		"weight":      tree.TotalWeight(),
		"rounds":      stats.Rounds,
		"activations": stats.Activations,
	}).Info("GHS finished")

	return &Result{Tree: tree, Stats: stats}, nil
}

// Verify runs GHS and the Kruskal oracle on g and reports whether both
// produce the same edge set.
func Verify(g *edgelist.Graph, opts ...Option) (bool, error) {
	res, err := Run(g, opts...)
	if err != nil {
		return false, err
	}
	mst, _, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return false, err
	}

	return res.Tree.Equal(mst), nil
}
