// SPDX-License-Identifier: MIT

package trace

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/ugorji/go/codec"

	"github.com/katalvlaran/ghsmst/emulator"
)

// Event names.
const (
	EventWakeUp  = "wakeup"
	EventDeliver = "deliver"
	EventTick    = "tick"
)

// Record is one traced event. Node is the node the event happens at: the
// woken node, the recipient of a delivery, or the ticked node.
type Record struct {
	Seq     int    `codec:"seq"`
	Event   string `codec:"event"`
	Node    int    `codec:"node"`
	From    int    `codec:"from"`
	To      int    `codec:"to"`
	Kind    string `codec:"kind,omitempty"`
	Message string `codec:"msg,omitempty"`
}

// labeler is implemented by messages that can name their kind.
type labeler interface {
	Label() string
}

// Recorder writes Records to an io.Writer. Write errors are sticky: after
// the first one nothing more is written and Err returns it.
type Recorder struct {
	w   *bufio.Writer
	jh  *codec.JsonHandle
	buf []byte
	seq int
	err error
}

var _ emulator.Observer = (*Recorder)(nil)

// NewRecorder returns a Recorder writing to w. Call Flush when done.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{
		w:  bufio.NewWriter(w),
		jh: new(codec.JsonHandle),
	}
}

// OnWakeUp implements emulator.Observer.
func (r *Recorder) OnWakeUp(node int) {
	r.write(Record{Event: EventWakeUp, Node: node, From: node, To: node})
}

// OnDeliver implements emulator.Observer.
func (r *Recorder) OnDeliver(msg emulator.Envelope) {
	r.write(describe(EventDeliver, msg.Recipient(), msg))
}

// OnTick implements emulator.Observer.
func (r *Recorder) OnTick(node int, msg emulator.Envelope) {
	r.write(describe(EventTick, node, msg))
}

// Len returns the number of records written so far.
func (r *Recorder) Len() int { return r.seq }

// Err returns the first write error, if any.
func (r *Recorder) Err() error { return r.err }

// Flush writes buffered records to the underlying writer.
func (r *Recorder) Flush() error {
	if r.err != nil {
		return r.err
	}
	r.err = r.w.Flush()

	return r.err
}

func describe(event string, node int, msg emulator.Envelope) Record {
	rec := Record{
		Event:   event,
		Node:    node,
		From:    msg.Sender(),
		To:      msg.Recipient(),
		Message: fmt.Sprint(msg),
	}
	if l, ok := msg.(labeler); ok {
		rec.Kind = l.Label()
	}

	return rec
}

func (r *Recorder) write(rec Record) {
	if r.err != nil {
		return
	}
	r.seq++
	rec.Seq = r.seq

	r.buf = r.buf[:0]
	if err := codec.NewEncoderBytes(&r.buf, r.jh).Encode(rec); err != nil {
		r.err = err
		return
	}
	r.buf = append(r.buf, '\n')
	_, r.err = r.w.Write(r.buf)
}

// ReadAll decodes a trace written by Recorder. Blank lines are skipped.
func ReadAll(rd io.Reader) ([]Record, error) {
	jh := new(codec.JsonHandle)
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []Record
	for line := 1; sc.Scan(); line++ {
		data := bytes.TrimSpace(sc.Bytes())
		if len(data) == 0 {
			continue
		}
		var rec Record
		if err := codec.NewDecoderBytes(data, jh).Decode(&rec); err != nil {
			return nil, fmt.Errorf("trace: line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Summary counts records per event and per message kind.
type Summary struct {
	Events map[string]int
	Kinds  map[string]int
}

// Summarize tallies recs.
func Summarize(recs []Record) Summary {
	s := Summary{Events: map[string]int{}, Kinds: map[string]int{}}
	for _, rec := range recs {
		s.Events[rec.Event]++
		if rec.Event == EventDeliver && rec.Kind != "" {
			s.Kinds[rec.Kind]++
		}
	}

	return s
}
