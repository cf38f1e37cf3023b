// SPDX-License-Identifier: MIT

// Package emulator simulates an asynchronous network of independent agents
// on top of a static graph.
//
// Every node owns a FIFO Mailbox. Nodes never touch each other's state; they
// only return outgoing messages, which the Scheduler validates and enqueues.
// A message is legal only if its (sender, recipient) pair is an edge of the
// input graph. Anything else is a bug in the node protocol and aborts the run
// with ErrProtocolViolation.
//
// Scheduling:
//
//	Each round either wakes up a random non-empty set of nodes (when every
//	mailbox is empty) or services a random number of distinct nodes in a
//	random order, popping the oldest message of each non-empty mailbox. The
//	loop ends when every node reports Ended. Interleavings are deliberately
//	adversarial, not fair.
//
// Determinism:
//
//	All randomness comes from the *rand.Rand given via WithRand or WithSeed.
//	Same graph, same nodes and same seed ⇒ the same sequence of activations.
//
// Concurrency:
//
//	The simulation is single-threaded. One node handler runs at a time and
//	its outgoing batch becomes visible only after it returns. A Scheduler
//	must not be shared between goroutines.
//
// The package is generic over the message type M. Any type implementing
// Envelope works; the GHS protocol in package ghs is the main client.
package emulator
