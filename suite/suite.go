// SPDX-License-Identifier: MIT

package suite

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ghsmst/builder"
	"github.com/katalvlaran/ghsmst/edgelist"
	"github.com/katalvlaran/ghsmst/ghs"
	"github.com/katalvlaran/ghsmst/prim_kruskal"
)

var (
	// ErrInvalidCase indicates a case without a graph source or with two of them.
	ErrInvalidCase = errors.New("suite: case needs exactly one of file or random")

	// ErrUnknownKey indicates a TOML key the suite format does not define.
	ErrUnknownKey = errors.New("suite: unknown key")

	// ErrWeightMismatch indicates a tree whose weight differs from expect_weight.
	ErrWeightMismatch = errors.New("suite: unexpected tree weight")

	// ErrTreeMismatch indicates a GHS tree that differs from the oracle tree.
	ErrTreeMismatch = errors.New("suite: GHS tree differs from Kruskal")

	// ErrNoCases indicates a suite without any [[case]].
	ErrNoCases = errors.New("suite: no cases")
)

const (
	defaultTrials    = 1
	defaultMaxWeight = 100
)

// Random describes a generated connected graph.
type Random struct {
	Nodes     int     `toml:"nodes"`
	Density   float64 `toml:"density"`
	Distinct  bool    `toml:"distinct"`
	MaxWeight int64   `toml:"max_weight"`
}

// Case is one graph checked Trials times.
type Case struct {
	Name         string  `toml:"name"`
	File         string  `toml:"file"`
	Random       *Random `toml:"random"`
	Trials       int     `toml:"trials"`
	ExpectWeight *int64  `toml:"expect_weight"`
}

// Suite is a decoded suite file.
type Suite struct {
	Seed   int64  `toml:"seed"`
	Trials int    `toml:"trials"`
	Cases  []Case `toml:"case"`

	dir string
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name   string
	Trials int
	Passed int
	Weight int64
	Err    error
}

// OK reports whether every trial of the case passed.
func (r CaseResult) OK() bool { return r.Err == nil && r.Passed == r.Trials }

// Report collects the results of a suite run.
type Report struct {
	Cases []CaseResult
}

// Failed returns the number of cases that did not pass.
func (r Report) Failed() int {
	failed := 0
	for _, c := range r.Cases {
		if !c.OK() {
			failed++
		}
	}

	return failed
}

// OK reports whether every case passed.
func (r Report) OK() bool { return r.Failed() == 0 }

// Load reads and validates the suite file at path.
func Load(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load suite: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load suite %s: %w", path, err)
	}
	s.dir = filepath.Dir(path)

	return s, nil
}

// Decode parses and validates a suite. Relative file paths resolve against
// the working directory.
func Decode(r io.Reader) (*Suite, error) {
	var s Suite
	meta, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	if s.Trials <= 0 {
		s.Trials = defaultTrials
	}
	for i := range s.Cases {
		c := &s.Cases[i]
		if (c.File == "") == (c.Random == nil) {
			return nil, fmt.Errorf("case %d (%q): %w", i, c.Name, ErrInvalidCase)
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}
		if c.Trials <= 0 {
			c.Trials = s.Trials
		}
		if c.Random != nil && c.Random.MaxWeight <= 0 {
			c.Random.MaxWeight = defaultMaxWeight
		}
	}

	return &s, nil
}

// Run executes every case and returns the per-case results. Case failures
// are reported in the Report, not as an error.
func (s *Suite) Run(log *logrus.Entry) (Report, error) {
	var rep Report
	if len(s.Cases) == 0 {
		return rep, ErrNoCases
	}
	for i, c := range s.Cases {
		cl := log.WithField("case", c.Name)
		res := s.runCase(i, c, cl)
		if res.OK() {
			cl.WithField("weight", res.Weight).Info("PASS")
		} else {
			cl.WithError(res.Err).WithField("passed", res.Passed).Warn("FAIL")
		}
		rep.Cases = append(rep.Cases, res)
	}

	return rep, nil
}

func (s *Suite) runCase(idx int, c Case, log *logrus.Entry) CaseResult {
	res := CaseResult{Name: c.Name, Trials: c.Trials}

	g, err := s.graph(idx, c)
	if err != nil {
		res.Err = err
		return res
	}
	want, weight, err := prim_kruskal.Kruskal(g)
	if err != nil {
		res.Err = err
		return res
	}
	res.Weight = weight
	if c.ExpectWeight != nil && *c.ExpectWeight != weight {
		res.Err = fmt.Errorf("%w: have %d, want %d", ErrWeightMismatch, weight, *c.ExpectWeight)
		return res
	}

	for trial := 0; trial < c.Trials; trial++ {
		seed := s.Seed + int64(trial)
		out, err := ghs.Run(g, ghs.WithSeed(seed), ghs.WithLogger(log.WithField("seed", seed)))
		if err != nil {
			res.Err = fmt.Errorf("seed %d: %w", seed, err)
			return res
		}
		if !out.Tree.Equal(want) {
			res.Err = fmt.Errorf("seed %d: %w", seed, ErrTreeMismatch)
			return res
		}
		res.Passed++
	}

	return res
}

// graph loads or generates the graph of case idx.
func (s *Suite) graph(idx int, c Case) (*edgelist.Graph, error) {
	if c.Random == nil {
		path := c.File
		if !filepath.IsAbs(path) && s.dir != "" {
			path = filepath.Join(s.dir, path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return edgelist.Read(f)
	}

	opts := []builder.BuilderOption{builder.WithSeed(s.Seed + int64(idx))}
	if c.Random.Distinct {
		opts = append(opts, builder.WithDistinctWeights())
	} else {
		opts = append(opts, builder.WithUniformWeight(1, c.Random.MaxWeight))
	}

	return builder.BuildGraph(c.Random.Nodes, opts, builder.RandomConnected(c.Random.Density))
}
