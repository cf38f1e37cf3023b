// SPDX-License-Identifier: MIT

// Package trace records every scheduling event of an emulator run as one
// JSON object per line, for offline inspection of interleavings.
//
//	{"seq":1,"event":"wakeup","node":3,"from":3,"to":3}
//	{"seq":2,"event":"deliver","node":5,"from":3,"to":5,"kind":"Connect","msg":"Connect 3->5 {inf L0}"}
//
// Recorder implements emulator.Observer. Encoding and decoding go through
// the ugorji codec JSON handle.
package trace
