// SPDX-License-Identifier: MIT

package builder_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghsmst/builder"
	"github.com/katalvlaran/ghsmst/edgelist"
)

func TestBuildGraph_Topologies(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		cons  builder.Constructor
		edges int
	}{
		{"path", 5, builder.Path(), 4},
		{"star", 5, builder.Star(), 4},
		{"cycle", 5, builder.Cycle(), 5},
		{"complete", 5, builder.Complete(), 10},
		{"complete single", 1, builder.Complete(), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.n, nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.n, g.NodeCount())
			assert.Equal(t, tc.edges, g.Len())
			assert.True(t, edgelist.Connected(g))
			assert.EqualValues(t, tc.edges, g.TotalWeight(), "default weight is 1")
		})
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	_, err := builder.BuildGraph(0, nil)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(1, nil, builder.Path())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(2, nil, builder.Cycle())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(3, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(3, nil, builder.RandomSparse(1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(3, nil, builder.RandomSparse(0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(3, nil, builder.RandomTree())
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(3, []builder.BuilderOption{builder.WithDistinctWeights()}, builder.Path())
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparse_Extremes(t *testing.T) {
	g, err := builder.BuildGraph(6, nil, builder.RandomSparse(0))
	require.NoError(t, err)
	assert.Zero(t, g.Len())

	g, err = builder.BuildGraph(6, nil, builder.RandomSparse(1))
	require.NoError(t, err)
	assert.Equal(t, 15, g.Len())
}

func TestRandomConnected_IsConnectedAndDeterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 50)}

	for _, n := range []int{1, 2, 10, 40} {
		a, err := builder.BuildGraph(n, opts, builder.RandomConnected(0.2))
		require.NoError(t, err)
		assert.True(t, edgelist.Connected(a), "n=%d", n)
		assert.GreaterOrEqual(t, a.Len(), n-1)

		// WithSeed is resolved per BuildGraph call, so a rebuild replays the stream.
		b, err := builder.BuildGraph(n, opts, builder.RandomConnected(0.2))
		require.NoError(t, err)
		assert.True(t, a.Equal(b), "n=%d", n)

		// No parallel edges.
		assert.Equal(t, a.Len(), len(a.Pairs()))
	}
}

func TestRandomTree_IsSpanningTree(t *testing.T) {
	g, err := builder.BuildGraph(25, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomTree())
	require.NoError(t, err)
	assert.NoError(t, edgelist.ValidateSpanningTree(g, g))
}

func TestWithDistinctWeights(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(11), builder.WithDistinctWeights()}
	g, err := builder.BuildGraph(12, opts, builder.RandomConnected(0.3))
	require.NoError(t, err)

	weights := make([]int, 0, g.Len())
	for _, e := range g.Edges() {
		weights = append(weights, int(e.Weight))
	}
	sort.Ints(weights)
	for i, w := range weights {
		assert.Equal(t, i, w)
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithUniformWeight(5, 1) })
}
