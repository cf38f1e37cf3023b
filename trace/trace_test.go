// SPDX-License-Identifier: MIT

package trace_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghsmst/builder"
	"github.com/katalvlaran/ghsmst/ghs"
	"github.com/katalvlaran/ghsmst/trace"
)

func TestRecorder_GHSRun(t *testing.T) {
	g, err := builder.BuildGraph(10,
		[]builder.BuilderOption{builder.WithSeed(4), builder.WithDistinctWeights()},
		builder.RandomConnected(0.3),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	rec := trace.NewRecorder(&buf)
	res, err := ghs.Run(g, ghs.WithSeed(9), ghs.WithObserver(rec))
	require.NoError(t, err)
	require.NoError(t, rec.Flush())

	recs, err := trace.ReadAll(&buf)
	require.NoError(t, err)
	require.Len(t, recs, rec.Len())

	for i, r := range recs {
		assert.Equal(t, i+1, r.Seq)
	}

	sum := trace.Summarize(recs)
	assert.Equal(t, res.Stats.WakeUps, sum.Events[trace.EventWakeUp])
	assert.Equal(t, res.Stats.Delivered, sum.Events[trace.EventDeliver])
	assert.Equal(t, res.Stats.Activations, sum.Events[trace.EventTick])
	assert.GreaterOrEqual(t, sum.Kinds["Connect"], g.NodeCount()-1)

	// Every tick consumes a message that was delivered to the same node before.
	delivered := map[int]int{}
	for _, r := range recs {
		switch r.Event {
		case trace.EventDeliver:
			assert.Equal(t, r.To, r.Node)
			delivered[r.Node]++
		case trace.EventTick:
			delivered[r.Node]--
			assert.GreaterOrEqual(t, delivered[r.Node], 0)
			assert.NotEmpty(t, r.Kind)
		}
	}
}

func TestReadAll(t *testing.T) {
	in := `{"seq":1,"event":"wakeup","node":2,"from":2,"to":2}

{"seq":2,"event":"deliver","node":1,"from":2,"to":1,"kind":"Connect","msg":"Connect 2->1 {inf L0}"}
`
	recs, err := trace.ReadAll(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, trace.Record{Seq: 1, Event: "wakeup", Node: 2, From: 2, To: 2}, recs[0])
	assert.Equal(t, "Connect", recs[1].Kind)
	assert.Equal(t, "Connect 2->1 {inf L0}", recs[1].Message)

	_, err = trace.ReadAll(strings.NewReader("{\"seq\": oops}\n"))
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRecorder_StickyError(t *testing.T) {
	rec := trace.NewRecorder(failingWriter{})
	rec.OnWakeUp(0)
	assert.EqualError(t, rec.Flush(), "disk full")
	rec.OnWakeUp(1)
	assert.Equal(t, 1, rec.Len())
	assert.Error(t, rec.Err())
}
