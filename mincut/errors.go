// SPDX-License-Identifier: MIT
// Package: densim/mincut
//
// errors.go — sentinel and typed errors.
//
// Error policy:
//   - Protocol violations are *ProtocolError values unwrapping to ErrProtocol.
//   - Oracle failures are wrapped with the operation name via %w.

package mincut

import (
	"errors"
	"fmt"
)

var (
	// ErrProtocol indicates an oracle call out of the required sequence.
	ErrProtocol = errors.New("mincut: oracle protocol violation")

	// ErrBufferSize indicates a cut-set buffer whose length is not the element count.
	ErrBufferSize = errors.New("mincut: buffer size does not match element count")

	// ErrCapacityDecrease indicates UpdateSourceCapacities with a smaller threshold.
	ErrCapacityDecrease = errors.New("mincut: source capacities may only increase")

	// ErrInvalidNetwork indicates a network the oracle cannot load.
	ErrInvalidNetwork = errors.New("mincut: invalid network")
)

// State is the protocol state of a Session or Evaluation.
type State int

const (
	// StateOpen: the oracle is initialized, no evaluation is active.
	StateOpen State = iota
	// StateReady: the network is parameterized; ComputeCut may run.
	StateReady
	// StateComputed: a cut is available for queries.
	StateComputed
	// StateDone: the evaluation has ended.
	StateDone
	// StateClosed: the oracle has been released.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateReady:
		return "ready"
	case StateComputed:
		return "computed"
	case StateDone:
		return "done"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ProtocolError reports an operation attempted in a state that forbids it.
type ProtocolError struct {
	Op    string
	State State
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("mincut: %s not allowed in state %s", e.Op, e.State)
}

// Unwrap returns ErrProtocol.
func (e *ProtocolError) Unwrap() error { return ErrProtocol }
