// SPDX-License-Identifier: MIT
// Package: ghsmst/ghs
//
// types.go — node states, edge statuses, edge keys, fragment identity and
// the nine message kinds.

package ghs

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ghsmst/edgelist"
)

var (
	// ErrInvalidGraph indicates a nil graph or a graph without node count.
	ErrInvalidGraph = errors.New("ghs: graph is nil or has no node count")

	// ErrDisconnected indicates that the input does not span all nodes.
	// GHS never terminates on such graphs, so they are rejected up front.
	ErrDisconnected = fmt.Errorf("ghs: %w", edgelist.ErrDisconnected)

	// ErrDuplicateEdge indicates a second AddEdge towards the same neighbour.
	ErrDuplicateEdge = errors.New("ghs: duplicate edge to neighbour")

	// ErrSelfEdge indicates AddEdge with the node's own id.
	ErrSelfEdge = errors.New("ghs: edge to self")

	// ErrAsymmetricTree indicates that a finished run produced Branch edges
	// that do not form a spanning tree of the input.
	ErrAsymmetricTree = errors.New("ghs: branch edges do not form a spanning tree")
)

// State is the run state of a node.
type State uint8

const (
	// Sleep is the initial state: no edge chosen yet.
	Sleep State = iota
	// Found means the node waits for the outcome of merge negotiation.
	Found
	// Search means the fragment is looking for its minimum outgoing edge.
	Search
	// End is terminal.
	End
)

func (s State) String() string {
	switch s {
	case Sleep:
		return "Sleep"
	case Found:
		return "Found"
	case Search:
		return "Search"
	case End:
		return "End"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// EdgeStatus classifies an incident edge from one endpoint's point of view.
type EdgeStatus uint8

const (
	// Unknown edges have not been classified yet.
	Unknown EdgeStatus = iota
	// Rejected edges lead back into the node's own fragment.
	Rejected
	// Branch edges belong to the spanning tree. Never reverted.
	Branch
)

func (s EdgeStatus) String() string {
	switch s {
	case Unknown:
		return "Unknown"
	case Rejected:
		return "Rejected"
	case Branch:
		return "Branch"
	default:
		return fmt.Sprintf("EdgeStatus(%d)", uint8(s))
	}
}

// Key totally orders edges by (Weight, Lo, Hi), where Lo < Hi are the endpoint
// ids. Equal weights are broken by endpoint ids, so the MST is unique and
// matches the oracle in prim_kruskal, which uses the same order.
type Key struct {
	Weight int64
	Lo, Hi int
}

// Infinity is larger than every edge key. It stands for "no outgoing edge"
// and for the fragment id of a node that has not joined a fragment yet.
var Infinity = Key{Weight: math.MaxInt64, Lo: math.MaxInt, Hi: math.MaxInt}

// EdgeKey returns the key of the undirected edge u—v of weight w.
func EdgeKey(u, v int, w int64) Key {
	if u > v {
		u, v = v, u
	}

	return Key{Weight: w, Lo: u, Hi: v}
}

// Less reports whether k orders strictly before o.
func (k Key) Less(o Key) bool {
	if k.Weight != o.Weight {
		return k.Weight < o.Weight
	}
	if k.Lo != o.Lo {
		return k.Lo < o.Lo
	}

	return k.Hi < o.Hi
}

// IsInfinity reports whether k is the Infinity sentinel.
func (k Key) IsInfinity() bool { return k == Infinity }

func (k Key) String() string {
	if k.IsInfinity() {
		return "inf"
	}

	return fmt.Sprintf("%d(%d-%d)", k.Weight, k.Lo, k.Hi)
}

// Component identifies a fragment: the key of its core edge and its level.
type Component struct {
	Fragment Key
	Level    int
}

func (c Component) String() string {
	return fmt.Sprintf("{%v L%d}", c.Fragment, c.Level)
}

// Kind discriminates the nine GHS messages.
type Kind uint8

// Message kinds, see the package documentation for their meaning.
const (
	KindWakeUp Kind = iota
	KindConnect
	KindInit
	KindTest
	KindReject
	KindAccept
	KindReport
	KindChangeCore
	KindEnd
)

var kindNames = [...]string{
	KindWakeUp:     "WakeUp",
	KindConnect:    "Connect",
	KindInit:       "Init",
	KindTest:       "Test",
	KindReject:     "Reject",
	KindAccept:     "Accept",
	KindReport:     "Report",
	KindChangeCore: "ChangeCore",
	KindEnd:        "End",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Message is one GHS message. Only the payload fields of its Kind are set:
//
//	Connect, Test  Component
//	Init           Component, State
//	Report         Best
//
// Messages are plain values; a postponed message is simply kept by value.
type Message struct {
	From, To  int
	Kind      Kind
	Component Component
	State     State
	Best      Key
}

// Sender implements emulator.Envelope.
func (m Message) Sender() int { return m.From }

// Recipient implements emulator.Envelope.
func (m Message) Recipient() int { return m.To }

// Label returns the kind name; trace records it.
func (m Message) Label() string { return m.Kind.String() }

func (m Message) String() string {
	switch m.Kind {
	case KindConnect, KindTest:
		return fmt.Sprintf("%v %d->%d %v", m.Kind, m.From, m.To, m.Component)
	case KindInit:
		return fmt.Sprintf("%v %d->%d %v %v", m.Kind, m.From, m.To, m.Component, m.State)
	case KindReport:
		return fmt.Sprintf("%v %d->%d %v", m.Kind, m.From, m.To, m.Best)
	default:
		return fmt.Sprintf("%v %d->%d", m.Kind, m.From, m.To)
	}
}
