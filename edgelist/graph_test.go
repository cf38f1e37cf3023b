// SPDX-License-Identifier: MIT

package edgelist_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghsmst/edgelist"
)

// triangle builds the graph 0-1 (5), 1-2 (3), 0-2 (7).
func triangle(t *testing.T) *edgelist.Graph {
	t.Helper()
	g, err := edgelist.FromEdges(3,
		edgelist.Edge{U: 0, V: 1, Weight: 5},
		edgelist.Edge{U: 1, V: 2, Weight: 3},
		edgelist.Edge{U: 0, V: 2, Weight: 7},
	)
	require.NoError(t, err)

	return g
}

func TestEdge_CanonicalAndLess(t *testing.T) {
	e := edgelist.Edge{U: 4, V: 1, Weight: 9}
	assert.Equal(t, edgelist.Edge{U: 1, V: 4, Weight: 9}, e.Canonical())
	assert.Equal(t, edgelist.Pair{U: 1, V: 4}, e.Pair())

	// weight first, then endpoints
	assert.True(t, edgelist.Edge{U: 5, V: 6, Weight: 1}.Less(edgelist.Edge{U: 0, V: 1, Weight: 2}))
	assert.True(t, edgelist.Edge{U: 0, V: 3, Weight: 2}.Less(edgelist.Edge{U: 1, V: 2, Weight: 2}))
	assert.True(t, edgelist.Edge{U: 1, V: 2, Weight: 2}.Less(edgelist.Edge{U: 3, V: 1, Weight: 2}))
	assert.False(t, e.Less(e.Canonical()))
}

func TestGraph_SetNodeCountTwice(t *testing.T) {
	g := edgelist.New()
	assert.False(t, g.HasNodeCount())
	require.NoError(t, g.SetNodeCount(3))
	assert.Equal(t, 3, g.NodeCount())

	err := g.SetNodeCount(4)
	assert.ErrorIs(t, err, edgelist.ErrNodeCountAlreadySet)
	assert.Equal(t, 3, g.NodeCount())

	assert.ErrorIs(t, edgelist.NewWithNodes(2).SetNodeCount(2), edgelist.ErrNodeCountAlreadySet)
}

func TestGraph_SetNodeCountChecksPendingEdges(t *testing.T) {
	g := edgelist.New()
	require.NoError(t, g.AddEdge(edgelist.Edge{U: 0, V: 5, Weight: 1}))
	assert.ErrorIs(t, g.SetNodeCount(3), edgelist.ErrVertexOutOfRange)
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	g := edgelist.NewWithNodes(3)
	assert.ErrorIs(t, g.AddEdge(edgelist.Edge{U: 1, V: 1, Weight: 1}), edgelist.ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge(edgelist.Edge{U: 0, V: 3, Weight: 1}), edgelist.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(edgelist.Edge{U: -1, V: 2, Weight: 1}), edgelist.ErrVertexOutOfRange)
	assert.Zero(t, g.Len())
}

func TestGraph_Canonicalize(t *testing.T) {
	g, err := edgelist.FromEdges(4,
		edgelist.Edge{U: 2, V: 1, Weight: 3},
		edgelist.Edge{U: 3, V: 0, Weight: 1},
		edgelist.Edge{U: 1, V: 2, Weight: 3},
		edgelist.Edge{U: 0, V: 1, Weight: 3},
	)
	require.NoError(t, err)
	assert.False(t, g.IsCanonical())

	g.Canonicalize()
	want := []edgelist.Edge{
		{U: 0, V: 3, Weight: 1},
		{U: 0, V: 1, Weight: 3},
		{U: 1, V: 2, Weight: 3},
	}
	assert.Equal(t, want, g.Edges())
	assert.True(t, g.IsCanonical())

	// Idempotence: a canonical list is left untouched.
	before := g.Clone()
	g.Canonicalize()
	assert.True(t, before.Equal(g))
}

func TestGraph_Simple(t *testing.T) {
	g, err := edgelist.FromEdges(3,
		edgelist.Edge{U: 0, V: 1, Weight: 9},
		edgelist.Edge{U: 1, V: 0, Weight: 4},
		edgelist.Edge{U: 1, V: 2, Weight: 6},
	)
	require.NoError(t, err)

	s := g.Simple()
	assert.Equal(t, []edgelist.Edge{{U: 0, V: 1, Weight: 4}, {U: 1, V: 2, Weight: 6}}, s.Edges())
	assert.Equal(t, 3, g.Len(), "Simple must not mutate the receiver")
	assert.Equal(t, 3, s.NodeCount())
}

func TestGraph_TotalWeightAndEqual(t *testing.T) {
	g := triangle(t)
	assert.EqualValues(t, 15, g.TotalWeight())
	assert.True(t, g.Equal(g.Clone()))

	other := g.Clone()
	other.Canonicalize()
	assert.False(t, g.Equal(other))
	assert.False(t, g.Equal(nil))
	var nilGraph *edgelist.Graph
	assert.True(t, nilGraph.Equal(nil))
}

func TestRead(t *testing.T) {
	in := "3 3\n0 1 5\n1 2 3\n0 2 7\n"
	g, err := edgelist.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.True(t, triangle(t).Equal(g))
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", edgelist.ErrMalformedInput},
		{"missing edges", "3 2\n0 1 5\n", edgelist.ErrMalformedInput},
		{"not a number", "2 1\n0 x 5\n", edgelist.ErrMalformedInput},
		{"negative count", "-1 0\n", edgelist.ErrMalformedInput},
		{"out of range", "2 1\n0 2 5\n", edgelist.ErrVertexOutOfRange},
		{"self loop", "2 1\n1 1 5\n", edgelist.ErrSelfLoop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := edgelist.Read(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	g := triangle(t)

	var buf bytes.Buffer
	require.NoError(t, edgelist.WriteWithHeader(&buf, g))
	assert.Equal(t, "3 3\n0 1 5\n1 2 3\n0 2 7\n", buf.String())

	back, err := edgelist.Read(&buf)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))

	assert.ErrorIs(t, edgelist.WriteWithHeader(&buf, edgelist.New()), edgelist.ErrNodeCountUnset)
}
