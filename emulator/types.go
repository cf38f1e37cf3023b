// SPDX-License-Identifier: MIT

package emulator

// Envelope is the addressing part every message must expose.
type Envelope interface {
	Sender() int
	Recipient() int
}

// Node is one agent of the simulation.
//
// WakeUp is the spontaneous activation; Tick consumes exactly one delivered
// message. Both return the messages to send, which the Scheduler validates
// and enqueues after the call returns. Ended reports terminal state.
type Node[M Envelope] interface {
	WakeUp() []M
	Tick(msg M) []M
	Ended() bool
}

// Observer receives a callback for every scheduling event.
// Callbacks run synchronously inside Run and must not call back into the Scheduler.
type Observer interface {
	OnWakeUp(node int)
	OnDeliver(msg Envelope)
	OnTick(node int, msg Envelope)
}

// Stats counts what happened during Run.
type Stats struct {
	Rounds      int // scheduler rounds
	Activations int // Tick calls
	WakeUps     int // WakeUp calls
	Delivered   int // messages accepted by Deliver
}

type nopObserver struct{}

func (nopObserver) OnWakeUp(int) {}
func (nopObserver) OnDeliver(Envelope) {}
func (nopObserver) OnTick(int, Envelope) {}
