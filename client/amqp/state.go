// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package amqp

// State describes the connection lifecycle of a Client.
//
// The lifecycle is linear: Uninitialized -> Connecting -> Ready ->
// Closing -> Closed. A failed Connect moves the client to Failed, which is
// terminal; there is no reconnection.
type State int32

// Client states.
const (
	StateUninitialized State = iota
	StateConnecting
	StateReady
	StateClosing
	StateClosed
	StateFailed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConnecting:
		return "connecting"
	case StateReady:
		return "ready"
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
