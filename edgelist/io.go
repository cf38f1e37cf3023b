// SPDX-License-Identifier: MIT
// Package: ghsmst/edgelist
//
// io.go — whitespace text encoding:
//
//	node_count edge_count
//	u v weight     (edge_count times)

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Read parses a graph in the text format. Tokens may be separated by any
// whitespace. The edge list is returned in input order, not canonicalized.
//
// Errors:
//   - ErrMalformedInput for missing or non-numeric tokens, or negative counts.
//   - ErrVertexOutOfRange / ErrSelfLoop from edge validation.
//
// Complexity: O(E).
func Read(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	tokens := &tokenReader{sc: sc}

	// 1) Header.
	n, err := tokens.int64("node_count")
	if err != nil {
		return nil, err
	}
	m, err := tokens.int64("edge_count")
	if err != nil {
		return nil, err
	}
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("header %d %d: %w", n, m, ErrMalformedInput)
	}

	g := New()
	if err = g.SetNodeCount(int(n)); err != nil {
		return nil, err
	}

	// 2) Edge lines.
	for i := int64(0); i < m; i++ {
		u, err := tokens.int64("u")
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		v, err := tokens.int64("v")
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		w, err := tokens.int64("weight")
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if err = g.AddEdge(Edge{U: int(u), V: int(v), Weight: w}); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

// Write emits one "u v weight" line per edge, without a header.
func Write(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.edges {
		if _, err := fmt.Fprintln(bw, e.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteWithHeader emits the full text format so that Read can load it back.
func WriteWithHeader(w io.Writer, g *Graph) error {
	n := g.nodes
	if n == unsetNodeCount {
		return ErrNodeCountUnset
	}
	if _, err := fmt.Fprintf(w, "%d %d\n", n, len(g.edges)); err != nil {
		return err
	}

	return Write(w, g)
}

type tokenReader struct {
	sc *bufio.Scanner
}

func (t *tokenReader) int64(field string) (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("missing %s: %w", field, ErrMalformedInput)
	}
	v, err := strconv.ParseInt(t.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, t.sc.Text(), ErrMalformedInput)
	}

	return v, nil
}
