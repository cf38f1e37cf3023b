// SPDX-License-Identifier: MIT

package emulator

import "errors"

// ErrProtocolViolation is returned when a node emits a message whose
// (sender, recipient) pair is not an edge of the graph. The run is aborted.
var ErrProtocolViolation = errors.New("emulator: message does not travel along a graph edge")

// ErrNodeCount indicates that the number of nodes does not match the graph.
var ErrNodeCount = errors.New("emulator: node count does not match graph")

// ErrNilGraph indicates a nil or unsized graph.
var ErrNilGraph = errors.New("emulator: graph is nil or has no node count")

// ErrRoundLimit is returned by Run when WithRoundLimit is set and the nodes
// have not all ended within that many rounds.
var ErrRoundLimit = errors.New("emulator: round limit reached before termination")
