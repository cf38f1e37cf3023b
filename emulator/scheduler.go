// SPDX-License-Identifier: MIT
// Package: ghsmst/emulator
//
// scheduler.go — mailboxes, legality checks and the randomized run loop.

package emulator

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ghsmst/edgelist"
)

// Scheduler owns one Mailbox per node and drives the simulation.
type Scheduler[M Envelope] struct {
	nodes []Node[M]
	boxes []Mailbox[M]
	edges map[edgelist.Pair]struct{}

	rng        *rand.Rand
	log        *logrus.Entry
	observer   Observer
	roundLimit int

	order []int // reusable permutation of node ids
	stats Stats
}

// New builds a Scheduler for graph g. nodes[i] plays node i, so len(nodes)
// must equal g.NodeCount(). The set of legal (sender, recipient) pairs is
// taken from g once and never changes.
func New[M Envelope](g *edgelist.Graph, nodes []Node[M], opts ...Option) (*Scheduler[M], error) {
	if g == nil || !g.HasNodeCount() {
		return nil, ErrNilGraph
	}
	if len(nodes) != g.NodeCount() {
		return nil, fmt.Errorf("%w: have %d nodes, graph has %d", ErrNodeCount, len(nodes), g.NodeCount())
	}

	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Scheduler[M]{
		nodes:      nodes,
		boxes:      make([]Mailbox[M], len(nodes)),
		edges:      g.Pairs(),
		rng:        cfg.rng,
		log:        cfg.log,
		observer:   cfg.observer,
		roundLimit: cfg.roundLimit,
		order:      make([]int, len(nodes)),
	}
	for i := range s.order {
		s.order[i] = i
	}

	return s, nil
}

// Deliver validates msgs and appends each one to its recipient's mailbox,
// preserving order. The batch is all-or-nothing: if any message is illegal,
// nothing is enqueued and the returned error wraps ErrProtocolViolation.
func (s *Scheduler[M]) Deliver(msgs []M) error {
	for _, msg := range msgs {
		if !s.legal(msg.Sender(), msg.Recipient()) {
			s.log.WithFields(logrus.Fields{
				"from": msg.Sender(),
				"to":   msg.Recipient(),
			}).Error("Illegal message")

			return fmt.Errorf("%w: %d -> %d (%v)", ErrProtocolViolation, msg.Sender(), msg.Recipient(), msg)
		}
	}

	for _, msg := range msgs {
		s.boxes[msg.Recipient()].Push(msg)
		s.stats.Delivered++
		s.observer.OnDeliver(msg)
	}

	return nil
}

// Pending returns the number of messages queued for node id.
func (s *Scheduler[M]) Pending(id int) int {
	return s.boxes[id].Len()
}

// Stats returns the counters accumulated so far.
func (s *Scheduler[M]) Stats() Stats {
	return s.stats
}

// Run repeats scheduling rounds until every node reports Ended.
//
// Steps per round:
//  1. If every mailbox is empty, wake up k random distinct nodes, 1 ≤ k ≤ n.
//  2. Otherwise shuffle the node ids, take the first m, 1 ≤ m ≤ n, and for
//     each one with a non-empty mailbox pop the oldest message and Tick it.
//  3. Every batch a node returns goes through Deliver before the next node runs.
//
// Termination looks only at Ended, never at the mailboxes. On a protocol
// violation the run stops at once and the error is returned with the
// statistics gathered so far.
func (s *Scheduler[M]) Run() (Stats, error) {
	n := len(s.nodes)
	idle := s.allEmpty()

	for !s.allEnded() {
		if s.roundLimit > 0 && s.stats.Rounds >= s.roundLimit {
			return s.stats, fmt.Errorf("%w: %d rounds", ErrRoundLimit, s.stats.Rounds)
		}
		s.stats.Rounds++

		var err error
		if idle {
			err = s.wakeUp(1 + s.rng.Intn(n))
		} else {
			err = s.service(1 + s.rng.Intn(n))
		}
		if err != nil {
			return s.stats, err
		}

		idle = s.allEmpty()
	}

	s.log.WithFields(logrus.Fields{
		"rounds":      s.stats.Rounds,
		"activations": s.stats.Activations,
		"wakeups":     s.stats.WakeUps,
		"delivered":   s.stats.Delivered,
	}).Debug("All nodes ended")

	return s.stats, nil
}

// wakeUp spontaneously activates k distinct random nodes.
func (s *Scheduler[M]) wakeUp(k int) error {
	s.shuffle()
	for _, id := range s.order[:k] {
		s.stats.WakeUps++
		s.observer.OnWakeUp(id)
		s.log.WithField("node", id).Debug("WakeUp")

		if err := s.Deliver(s.nodes[id].WakeUp()); err != nil {
			return err
		}
	}

	return nil
}

// service visits m distinct random nodes and ticks those with mail.
func (s *Scheduler[M]) service(m int) error {
	s.shuffle()
	for _, id := range s.order[:m] {
		msg, ok := s.boxes[id].Pop()
		if !ok {
			continue
		}
		s.stats.Activations++
		s.observer.OnTick(id, msg)
		s.log.WithFields(logrus.Fields{
			"node": id,
			"from": msg.Sender(),
		}).Debugf("Tick %v", msg)

		if err := s.Deliver(s.nodes[id].Tick(msg)); err != nil {
			return err
		}
	}

	return nil
}

func (s *Scheduler[M]) shuffle() {
	s.rng.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
}

// legal reports whether u -> v travels along an edge of the graph.
func (s *Scheduler[M]) legal(u, v int) bool {
	if u < 0 || v < 0 || u >= len(s.nodes) || v >= len(s.nodes) {
		return false
	}
	_, ok := s.edges[edgelist.Pair{U: u, V: v}.Canonical()]

	return ok
}

func (s *Scheduler[M]) allEmpty() bool {
	for i := range s.boxes {
		if !s.boxes[i].Empty() {
			return false
		}
	}

	return true
}

func (s *Scheduler[M]) allEnded() bool {
	for _, node := range s.nodes {
		if !node.Ended() {
			return false
		}
	}

	return true
}
