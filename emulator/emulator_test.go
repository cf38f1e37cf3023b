// SPDX-License-Identifier: MIT

package emulator_test

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghsmst/builder"
	"github.com/katalvlaran/ghsmst/config"
	"github.com/katalvlaran/ghsmst/edgelist"
	"github.com/katalvlaran/ghsmst/emulator"
)

// note is the message type of the test protocols.
type note struct {
	from, to int
	seq      int
}

func (n note) Sender() int { return n.from }
func (n note) Recipient() int { return n.to }

// flooder greets every neighbour once and ends after hearing from all of them.
type flooder struct {
	id    int
	nbrs  []int
	awake bool
	heard int
}

func (f *flooder) WakeUp() []note {
	if f.awake {
		return nil
	}
	f.awake = true
	out := make([]note, 0, len(f.nbrs))
	for _, nb := range f.nbrs {
		out = append(out, note{from: f.id, to: nb})
	}

	return out
}

func (f *flooder) Tick(note) []note {
	out := f.WakeUp()
	f.heard++

	return out
}

func (f *flooder) Ended() bool { return f.awake && f.heard == len(f.nbrs) }

func flooders(g *edgelist.Graph) []emulator.Node[note] {
	adj := g.Adjacency()
	nodes := make([]emulator.Node[note], g.NodeCount())
	for i := range nodes {
		nodes[i] = &flooder{id: i, nbrs: adj[i]}
	}

	return nodes
}

func testEntry(t *testing.T) *logrus.Entry {
	return logrus.NewEntry(config.NewTestLogger(t))
}

func path(t *testing.T, n int) *edgelist.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, nil, builder.Path())
	require.NoError(t, err)

	return g
}

// recorder remembers every event as a string.
type recorder struct {
	events []string
}

func (r *recorder) OnWakeUp(node int) { r.events = append(r.events, fmt.Sprintf("wake %d", node)) }
func (r *recorder) OnDeliver(m emulator.Envelope) {
	r.events = append(r.events, fmt.Sprintf("deliver %d>%d", m.Sender(), m.Recipient()))
}
func (r *recorder) OnTick(node int, m emulator.Envelope) {
	r.events = append(r.events, fmt.Sprintf("tick %d<%d", node, m.Sender()))
}

func TestMailbox_FIFO(t *testing.T) {
	var mb emulator.Mailbox[int]
	assert.True(t, mb.Empty())
	_, ok := mb.Pop()
	assert.False(t, ok)

	for i := 0; i < 100; i++ {
		mb.Push(i)
	}
	assert.Equal(t, 100, mb.Len())
	for i := 0; i < 70; i++ {
		v, ok := mb.Pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	mb.Push(100)
	for i := 70; i <= 100; i++ {
		v, ok := mb.Pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	assert.True(t, mb.Empty())

	mb.Push(7)
	v, ok := mb.Pop()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestNew_Errors(t *testing.T) {
	_, err := emulator.New[note](nil, nil)
	assert.ErrorIs(t, err, emulator.ErrNilGraph)
	_, err = emulator.New[note](edgelist.New(), nil)
	assert.ErrorIs(t, err, emulator.ErrNilGraph)

	g := path(t, 3)
	_, err = emulator.New(g, flooders(g)[:2])
	assert.ErrorIs(t, err, emulator.ErrNodeCount)
}

func TestDeliver_ProtocolViolation(t *testing.T) {
	g := path(t, 3)
	s, err := emulator.New(g, flooders(g), emulator.WithSeed(1), emulator.WithLogger(testEntry(t)))
	require.NoError(t, err)

	require.NoError(t, s.Deliver([]note{{from: 1, to: 0}, {from: 1, to: 2}}))
	assert.Equal(t, 1, s.Pending(0))
	assert.Equal(t, 1, s.Pending(2))

	cases := []struct {
		name  string
		batch []note
	}{
		{"no edge", []note{{from: 0, to: 2}}},
		{"self", []note{{from: 1, to: 1}}},
		{"out of range", []note{{from: 2, to: 3}}},
		{"negative", []note{{from: -1, to: 0}}},
		{"bad tail", []note{{from: 0, to: 1}, {from: 2, to: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.Deliver(tc.batch)
			assert.ErrorIs(t, err, emulator.ErrProtocolViolation)
			// Nothing of a rejected batch is enqueued.
			assert.Equal(t, 0, s.Pending(1))
		})
	}
	assert.Equal(t, 2, s.Stats().Delivered)
}

func TestRun_Flood(t *testing.T) {
	graphs := map[string]*edgelist.Graph{
		"single": edgelist.NewWithNodes(1),
		"path":   path(t, 6),
	}
	complete, err := builder.BuildGraph(7, nil, builder.Complete())
	require.NoError(t, err)
	graphs["complete"] = complete
	random, err := builder.BuildGraph(30, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomConnected(0.1))
	require.NoError(t, err)
	graphs["random"] = random

	for name, g := range graphs {
		for seed := int64(1); seed <= 5; seed++ {
			t.Run(fmt.Sprintf("%s/seed=%d", name, seed), func(t *testing.T) {
				nodes := flooders(g)
				s, err := emulator.New(g, nodes, emulator.WithSeed(seed))
				require.NoError(t, err)

				stats, err := s.Run()
				require.NoError(t, err)
				for _, n := range nodes {
					assert.True(t, n.Ended())
				}
				assert.Equal(t, 2*g.Len(), stats.Delivered)
				assert.Equal(t, stats.Delivered, stats.Activations)
				assert.GreaterOrEqual(t, stats.WakeUps, 1)
				assert.GreaterOrEqual(t, stats.Rounds, 1)
			})
		}
	}
}

func TestRun_EmptyGraph(t *testing.T) {
	s, err := emulator.New[note](edgelist.NewWithNodes(0), nil)
	require.NoError(t, err)
	stats, err := s.Run()
	require.NoError(t, err)
	assert.Zero(t, stats.Rounds)
}

func TestRun_SameSeedSameSchedule(t *testing.T) {
	g, err := builder.BuildGraph(12, []builder.BuilderOption{builder.WithSeed(9)}, builder.RandomConnected(0.3))
	require.NoError(t, err)

	trace := func(seed int64) []string {
		rec := &recorder{}
		s, err := emulator.New(g, flooders(g), emulator.WithSeed(seed), emulator.WithObserver(rec))
		require.NoError(t, err)
		_, err = s.Run()
		require.NoError(t, err)

		return rec.events
	}

	first := trace(42)
	assert.Equal(t, first, trace(42))
	assert.NotEmpty(t, first)
}

// sequencer sends five numbered notes to its right neighbour in one batch;
// the receiver checks they arrive in order.
type sequencer struct {
	t     *testing.T
	id    int
	awake bool
	next  int
}

func (s *sequencer) WakeUp() []note {
	if s.awake {
		return nil
	}
	s.awake = true
	if s.id != 0 {
		return nil
	}
	out := make([]note, 5)
	for i := range out {
		out[i] = note{from: 0, to: 1, seq: i}
	}

	return out
}

func (s *sequencer) Tick(m note) []note {
	out := s.WakeUp()
	assert.Equal(s.t, s.next, m.seq)
	s.next++

	return out
}

func (s *sequencer) Ended() bool {
	if s.id == 0 {
		return s.awake
	}
	return s.next == 5
}

func TestRun_PerSenderOrder(t *testing.T) {
	g := path(t, 2)
	for seed := int64(0); seed < 10; seed++ {
		nodes := []emulator.Node[note]{&sequencer{t: t, id: 0}, &sequencer{t: t, id: 1}}
		s, err := emulator.New(g, nodes, emulator.WithSeed(seed))
		require.NoError(t, err)
		_, err = s.Run()
		require.NoError(t, err)
	}
}

// rogue sends to a node it is not connected to.
type rogue struct{ flooder }

func (r *rogue) WakeUp() []note { return []note{{from: r.id, to: r.id + 2}} }

func TestRun_AbortsOnViolation(t *testing.T) {
	g := path(t, 3)
	nodes := []emulator.Node[note]{&rogue{}, &rogue{flooder{id: 1}}, &rogue{flooder{id: 2}}}
	s, err := emulator.New(g, nodes, emulator.WithSeed(5), emulator.WithLogger(testEntry(t)))
	require.NoError(t, err)

	_, err = s.Run()
	assert.ErrorIs(t, err, emulator.ErrProtocolViolation)
}

// sleeper never ends.
type sleeper struct{}

func (sleeper) WakeUp() []note { return nil }
func (sleeper) Tick(note) []note { return nil }
func (sleeper) Ended() bool { return false }

func TestRun_RoundLimit(t *testing.T) {
	g := path(t, 2)
	s, err := emulator.New(g, []emulator.Node[note]{sleeper{}, sleeper{}}, emulator.WithRoundLimit(50))
	require.NoError(t, err)

	stats, err := s.Run()
	assert.ErrorIs(t, err, emulator.ErrRoundLimit)
	assert.Equal(t, 50, stats.Rounds)
	assert.GreaterOrEqual(t, stats.WakeUps, 50)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { emulator.WithRand(nil) })
	assert.Panics(t, func() { emulator.WithLogger(nil) })
}
