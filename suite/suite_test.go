// SPDX-License-Identifier: MIT

package suite_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghsmst/config"
	"github.com/katalvlaran/ghsmst/prim_kruskal"
	"github.com/katalvlaran/ghsmst/suite"
)

func TestLoadAndRun(t *testing.T) {
	s, err := suite.Load("testdata/smoke.toml")
	require.NoError(t, err)
	require.Len(t, s.Cases, 4)
	assert.EqualValues(t, 42, s.Seed)
	assert.Equal(t, 3, s.Cases[0].Trials)
	assert.Equal(t, 2, s.Cases[2].Trials)
	assert.EqualValues(t, 100, s.Cases[2].Random.MaxWeight)

	rep, err := s.Run(config.NewTestEntry(t, "suite"))
	require.NoError(t, err)
	require.Len(t, rep.Cases, 4)
	for _, c := range rep.Cases {
		assert.True(t, c.OK(), "%s: %v", c.Name, c.Err)
	}
	assert.True(t, rep.OK())
	assert.EqualValues(t, 8, rep.Cases[0].Weight)
	assert.EqualValues(t, 7, rep.Cases[1].Weight)
}

func TestRun_Failures(t *testing.T) {
	s, err := suite.Load("testdata/smoke.toml")
	require.NoError(t, err)

	wrong := int64(9)
	s.Cases[0].ExpectWeight = &wrong
	s.Cases[1].File = "split.txt"
	s.Cases[1].ExpectWeight = nil
	s.Cases[2].File = "missing.txt"
	s.Cases[2].Random = nil

	rep, err := s.Run(config.NewTestEntry(t, "suite"))
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Failed())
	assert.ErrorIs(t, rep.Cases[0].Err, suite.ErrWeightMismatch)
	assert.ErrorIs(t, rep.Cases[1].Err, prim_kruskal.ErrDisconnected)
	assert.Error(t, rep.Cases[2].Err)
	assert.True(t, rep.Cases[3].OK())
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"unknown key", "seed = 1\ncolour = \"red\"\n", suite.ErrUnknownKey},
		{"no source", "[[case]]\nname = \"x\"\n", suite.ErrInvalidCase},
		{"two sources", "[[case]]\nfile = \"a\"\n[case.random]\nnodes = 3\n", suite.ErrInvalidCase},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := suite.Decode(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := suite.Decode(strings.NewReader("seed = [\n"))
	assert.Error(t, err)
}

func TestDecode_Defaults(t *testing.T) {
	s, err := suite.Decode(strings.NewReader("[[case]]\n[case.random]\nnodes = 5\n"))
	require.NoError(t, err)
	require.Len(t, s.Cases, 1)
	assert.Equal(t, "case-1", s.Cases[0].Name)
	assert.Equal(t, 1, s.Cases[0].Trials)

	empty, err := suite.Decode(strings.NewReader("seed = 3\n"))
	require.NoError(t, err)
	_, err = empty.Run(config.NewTestEntry(t, "suite"))
	assert.ErrorIs(t, err, suite.ErrNoCases)
}
