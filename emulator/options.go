// SPDX-License-Identifier: MIT
// Package: ghsmst/emulator
//
// options.go — functional options for New.

package emulator

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// settings is the resolved configuration of a Scheduler. It does not depend
// on the message type, so one Option works for every Scheduler[M].
type settings struct {
	rng        *rand.Rand
	log        *logrus.Entry
	observer   Observer
	roundLimit int
}

// Option customizes a Scheduler at construction time.
type Option func(*settings)

func defaultSettings() settings {
	return settings{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      nopLogger(),
		observer: nopObserver{},
	}
}

// WithRand injects the RNG driving every scheduling decision. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("emulator: WithRand(nil)")
	}
	return func(s *settings) {
		s.rng = r
	}
}

// WithSeed seeds a fresh RNG so that a run can be replayed.
func WithSeed(seed int64) Option {
	return func(s *settings) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes scheduler logs to entry. Panics on nil.
func WithLogger(entry *logrus.Entry) Option {
	if entry == nil {
		panic("emulator: WithLogger(nil)")
	}
	return func(s *settings) {
		s.log = entry
	}
}

// WithObserver registers hooks called on every wake-up, delivery and tick.
// A nil observer resets to the no-op one.
func WithObserver(o Observer) Option {
	return func(s *settings) {
		if o == nil {
			o = nopObserver{}
		}
		s.observer = o
	}
}

// WithRoundLimit makes Run fail with ErrRoundLimit after n rounds.
// n <= 0 means unlimited, which is the default.
func WithRoundLimit(n int) Option {
	return func(s *settings) {
		s.roundLimit = n
	}
}

func nopLogger() *logrus.Entry {
	l := logrus.New()
	l.Out = io.Discard

	return logrus.NewEntry(l)
}
