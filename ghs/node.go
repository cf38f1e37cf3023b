// SPDX-License-Identifier: MIT
// Package: ghsmst/ghs
//
// node.go — the per-node GHS state machine.
//
// A Node only sees its own incident edges. Tick consumes one message and
// returns the batch to send; every handler runs to completion. Messages that
// cannot be answered yet go to a local FIFO and are replayed after Init and
// after a merge through changeCore.

package ghs

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ghsmst/edgelist"
)

// none marks an absent edge index or node id.
const none = -1

// link is one incident edge as seen from its owner.
type link struct {
	to     int
	weight int64
	key    Key
	status EdgeStatus
}

// Node is one GHS participant. The zero value is not usable; call NewNode.
type Node struct {
	id     int
	parent int
	state  State
	comp   Component

	links []link
	index map[int]int // neighbour id → position in links

	best     Key // best outgoing key known in the current phase
	bestLink int // link leading towards best, or none
	testing  int // neighbour of the pending Test, or none
	reports  int // children that reported in the current phase

	postponed []Message
	draining  bool

	out []Message
	log *logrus.Entry
}

// NewNode returns a sleeping node with no edges. Its parent is itself and
// its fragment is the Infinity placeholder at level 0.
func NewNode(id int) *Node {
	l := logrus.New()
	l.Out = io.Discard

	return &Node{
		id:       id,
		parent:   id,
		state:    Sleep,
		comp:     Component{Fragment: Infinity},
		index:    make(map[int]int),
		best:     Infinity,
		bestLink: none,
		testing:  none,
		log:      logrus.NewEntry(l).WithField("node", id),
	}
}

// AddEdge registers the edge towards neighbor. Must be called before the
// node receives its first message.
func (n *Node) AddEdge(neighbor int, weight int64) error {
	if neighbor == n.id {
		return ErrSelfEdge
	}
	if _, dup := n.index[neighbor]; dup {
		return ErrDuplicateEdge
	}
	n.index[neighbor] = len(n.links)
	n.links = append(n.links, link{
		to:     neighbor,
		weight: weight,
		key:    EdgeKey(n.id, neighbor, weight),
	})

	return nil
}

// ID returns the node id.
func (n *Node) ID() int { return n.id }

// State returns the current run state.
func (n *Node) State() State { return n.state }

// Level returns the level of the node's fragment.
func (n *Node) Level() int { return n.comp.Level }

// Component returns the node's current fragment identity.
func (n *Node) Component() Component { return n.comp }

// Parent returns the neighbour towards the fragment core, or the node's own
// id before the first Init.
func (n *Node) Parent() int { return n.parent }

// Postponed returns the number of messages waiting for replay.
func (n *Node) Postponed() int { return len(n.postponed) }

// Status returns the status of the edge towards neighbor and whether it exists.
func (n *Node) Status(neighbor int) (EdgeStatus, bool) {
	i, ok := n.index[neighbor]
	if !ok {
		return Unknown, false
	}

	return n.links[i].status, true
}

// Branches returns the Branch edges of this node in canonical form.
func (n *Node) Branches() []edgelist.Edge {
	var res []edgelist.Edge
	for _, l := range n.links {
		if l.status == Branch {
			res = append(res, edgelist.Edge{U: n.id, V: l.to, Weight: l.weight}.Canonical())
		}
	}

	return res
}

// Ended reports whether the node reached End.
func (n *Node) Ended() bool { return n.state == End }

// WakeUp is the spontaneous activation. It has no effect unless the node sleeps.
func (n *Node) WakeUp() []Message {
	return n.Tick(Message{From: n.id, To: n.id, Kind: KindWakeUp})
}

// Tick handles one delivered message and returns the messages to send.
// A sleeping node wakes up first.
func (n *Node) Tick(msg Message) []Message {
	n.out = nil
	if n.state == Sleep {
		n.wakeUp()
	}
	n.dispatch(msg)

	out := n.out
	n.out = nil

	return out
}

// dispatch routes msg to its handler.
func (n *Node) dispatch(msg Message) {
	switch msg.Kind {
	case KindWakeUp:
		n.wakeUp()
	case KindConnect:
		n.onConnect(msg)
	case KindInit:
		n.onInit(msg)
	case KindTest:
		n.onTest(msg)
	case KindReject:
		n.onReject(msg)
	case KindAccept:
		n.onAccept(msg)
	case KindReport:
		n.onReport(msg)
	case KindChangeCore:
		n.changeCore()
	case KindEnd:
		n.onEnd(msg)
	default:
		n.log.WithField("kind", msg.Kind).Error("Dropping message of unknown kind")
	}
}

// wakeUp marks the lightest edge Branch and proposes a merge across it.
// An isolated node ends at once.
func (n *Node) wakeUp() {
	if n.state != Sleep {
		return
	}
	n.bestLink = n.minUnknown()
	if n.bestLink == none {
		n.state = End
		return
	}
	n.state = Found
	l := &n.links[n.bestLink]
	l.status = Branch
	n.send(Message{To: l.to, Kind: KindConnect, Component: n.comp})
}

func (n *Node) onConnect(msg Message) {
	i := n.index[msg.From]
	l := &n.links[i]

	switch {
	case msg.Component.Level < n.comp.Level:
		// Absorb the lower-level fragment.
		l.status = Branch
		n.send(Message{To: msg.From, Kind: KindInit, Component: n.comp, State: n.state})
	case l.status == Branch:
		// Both sides chose this edge: merge into a new fragment one level up.
		n.send(Message{
			To:        msg.From,
			Kind:      KindInit,
			Component: Component{Fragment: l.key, Level: n.comp.Level + 1},
			State:     Search,
		})
	default:
		n.postpone(msg)
	}
}

func (n *Node) onInit(msg Message) {
	n.comp = msg.Component
	n.state = msg.State
	n.parent = msg.From
	n.bestLink = none
	n.best = Infinity

	for _, l := range n.links {
		if l.status == Branch && l.to != n.parent {
			n.send(Message{To: l.to, Kind: KindInit, Component: msg.Component, State: msg.State})
		}
	}

	if n.state == Search {
		n.reports = 0
		n.test()
	}

	n.replay()
}

// test probes the lightest Unknown edge, or reports if none is left.
func (n *Node) test() {
	i := n.minUnknown()
	if i == none {
		n.testing = none
		n.report()
		return
	}
	n.testing = n.links[i].to
	n.send(Message{To: n.testing, Kind: KindTest, Component: n.comp})
}

func (n *Node) onTest(msg Message) {
	l := &n.links[n.index[msg.From]]

	switch {
	case msg.Component.Fragment == n.comp.Fragment:
		if l.status == Unknown {
			l.status = Rejected
		}
		if msg.From == n.testing {
			// Our own probe crossed theirs on the same edge.
			n.test()
		} else {
			n.send(Message{To: msg.From, Kind: KindReject})
		}
	case msg.Component.Level <= n.comp.Level:
		n.send(Message{To: msg.From, Kind: KindAccept})
	default:
		n.postpone(msg)
	}
}

func (n *Node) onReject(msg Message) {
	l := &n.links[n.index[msg.From]]
	if l.status == Unknown {
		l.status = Rejected
	}
	n.test()
}

func (n *Node) onAccept(msg Message) {
	i := n.index[msg.From]
	n.testing = none
	if n.links[i].key.Less(n.best) {
		n.best = n.links[i].key
		n.bestLink = i
	}
	n.report()
}

// report sends the phase result to the parent once every child has
// reported and no Test is outstanding.
func (n *Node) report() {
	children := 0
	for _, l := range n.links {
		if l.status == Branch && l.to != n.parent {
			children++
		}
	}
	if children != n.reports || n.testing != none {
		return
	}

	n.state = Found
	n.send(Message{To: n.parent, Kind: KindReport, Best: n.best})
	n.replay()
}

func (n *Node) onReport(msg Message) {
	if msg.From != n.parent {
		if msg.Best.Less(n.best) {
			n.best = msg.Best
			n.bestLink = n.index[msg.From]
		}
		n.reports++
		n.report()
		return
	}

	// Report across the core edge.
	switch {
	case n.state == Search:
		n.postpone(msg)
	case n.best.Less(msg.Best):
		n.changeCore()
	case msg.Best.IsInfinity() && n.best.IsInfinity():
		n.finish()
	}
}

// changeCore walks towards the owner of the best outgoing edge; the owner
// connects across it.
func (n *Node) changeCore() {
	if n.bestLink == none {
		n.log.Error("ChangeCore without a best edge")
		return
	}
	l := &n.links[n.bestLink]
	if l.status == Branch {
		n.send(Message{To: l.to, Kind: KindChangeCore})
		return
	}
	n.send(Message{To: l.to, Kind: KindConnect, Component: n.comp})
	l.status = Branch
	n.replay()
}

func (n *Node) onEnd(Message) {
	n.finish()
}

// finish enters End and forwards End down the tree.
func (n *Node) finish() {
	n.state = End
	for _, l := range n.links {
		if l.status == Branch && l.to != n.parent {
			n.send(Message{To: l.to, Kind: KindEnd})
		}
	}
}

// minUnknown returns the index of the lightest Unknown link, or none.
func (n *Node) minUnknown() int {
	best := none
	for i, l := range n.links {
		if l.status != Unknown {
			continue
		}
		if best == none || l.key.Less(n.links[best].key) {
			best = i
		}
	}

	return best
}

func (n *Node) send(msg Message) {
	msg.From = n.id
	n.out = append(n.out, msg)
}

func (n *Node) postpone(msg Message) {
	n.log.WithFields(logrus.Fields{
		"kind": msg.Kind,
		"from": msg.From,
	}).Debug("Postpone")
	n.postponed = append(n.postponed, msg)
}

// replay re-dispatches the messages postponed so far, oldest first. Messages
// postponed again during the pass wait for the next call.
func (n *Node) replay() {
	if n.draining {
		return
	}
	n.draining = true
	for pending := len(n.postponed); pending > 0; pending-- {
		msg := n.postponed[0]
		n.postponed = n.postponed[1:]
		n.dispatch(msg)
	}
	n.draining = false
}
