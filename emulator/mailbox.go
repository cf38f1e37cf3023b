// SPDX-License-Identifier: MIT

package emulator

// Mailbox is an unbounded FIFO queue of messages addressed to one node.
// It never drops a message. The zero value is an empty mailbox.
type Mailbox[M any] struct {
	items []M
	head  int
}

// Push appends msg at the tail.
func (mb *Mailbox[M]) Push(msg M) {
	mb.items = append(mb.items, msg)
}

// Pop removes and returns the oldest message. ok is false on an empty mailbox.
func (mb *Mailbox[M]) Pop() (msg M, ok bool) {
	if mb.head == len(mb.items) {
		return msg, false
	}
	msg = mb.items[mb.head]
	var zero M
	mb.items[mb.head] = zero
	mb.head++

	// Reclaim the consumed prefix once it dominates the buffer.
	if mb.head == len(mb.items) {
		mb.items = mb.items[:0]
		mb.head = 0
	} else if mb.head > 32 && mb.head*2 > len(mb.items) {
		n := copy(mb.items, mb.items[mb.head:])
		mb.items = mb.items[:n]
		mb.head = 0
	}

	return msg, true
}

// Len returns the number of queued messages.
func (mb *Mailbox[M]) Len() int {
	return len(mb.items) - mb.head
}

// Empty reports whether no message is queued.
func (mb *Mailbox[M]) Empty() bool {
	return mb.Len() == 0
}
