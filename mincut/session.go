// SPDX-License-Identifier: MIT
// Package: densim/mincut
//
// session.go — protocol guard around an Oracle.
//
// Concurrency:
//   - Begin blocks while another Evaluation of the same Session is active.
//   - Evaluation methods must be called from one goroutine.
//   - Close waits for the active Evaluation to finish, then releases once.

package mincut

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/densim/metagraph"
)

// Session owns an initialized Oracle until Close.
type Session struct {
	oracle Oracle
	net    *metagraph.Network

	active sync.Mutex // held for the lifetime of one Evaluation

	mu     sync.Mutex // guards closed
	closed bool

	closeOnce sync.Once
	closeErr  error
}

// Open initializes oracle with net. On failure the oracle is released.
func Open(oracle Oracle, net *metagraph.Network) (*Session, error) {
	if err := oracle.Init(net); err != nil {
		_ = oracle.Release()
		return nil, fmt.Errorf("mincut: init oracle: %w", err)
	}

	return &Session{oracle: oracle, net: net}, nil
}

// Network returns the network the session was opened with.
func (s *Session) Network() *metagraph.Network { return s.net }

// Begin starts an evaluation for (lambda, c) over elementCount elements.
// The returned Evaluation must be finished with Done.
func (s *Session) Begin(elementCount int, lambda, c float64) (*Evaluation, error) {
	s.active.Lock()
	if s.isClosed() {
		s.active.Unlock()
		return nil, &ProtocolError{Op: "Begin", State: StateClosed}
	}
	if elementCount < 0 {
		s.active.Unlock()
		return nil, fmt.Errorf("%w: negative element count %d", ErrBufferSize, elementCount)
	}
	if err := s.oracle.Recreate(elementCount, lambda, c); err != nil {
		s.active.Unlock()
		return nil, fmt.Errorf("mincut: recreate (lambda=%g, c=%g): %w", lambda, c, err)
	}

	return &Evaluation{s: s, n: elementCount, state: StateReady}, nil
}

// Close releases the oracle exactly once. Later calls return the first result.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.active.Lock()
		defer s.active.Unlock()
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		s.closeErr = s.oracle.Release()
	})

	return s.closeErr
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// Evaluation is one parameterized use of the oracle.
type Evaluation struct {
	s     *Session
	n     int
	state State
}

// ElementCount returns the element count the evaluation was begun with.
func (e *Evaluation) ElementCount() int { return e.n }

// State returns the current protocol state.
func (e *Evaluation) State() State { return e.state }

func (e *Evaluation) require(op string, allowed ...State) error {
	for _, st := range allowed {
		if e.state == st {
			return nil
		}
	}

	return &ProtocolError{Op: op, State: e.state}
}

// ComputeCut runs the min-cut computation.
func (e *Evaluation) ComputeCut(ctx context.Context) error {
	if err := e.require("ComputeCut", StateReady, StateComputed); err != nil {
		return err
	}
	if err := e.s.oracle.ComputeCut(ctx); err != nil {
		e.state = StateReady
		return err
	}
	e.state = StateComputed

	return nil
}

// CutValue returns the value of the computed cut.
func (e *Evaluation) CutValue() (float64, error) {
	if err := e.require("CutValue", StateComputed); err != nil {
		return 0, err
	}

	return e.s.oracle.CutValue(), nil
}

// CutSetSize returns the number of element and other vertices in the cut set.
func (e *Evaluation) CutSetSize() (elements, others int, err error) {
	if err := e.require("CutSetSize", StateComputed); err != nil {
		return 0, 0, err
	}
	elements, others = e.s.oracle.CutSetSize(e.n)

	return elements, others, nil
}

// CutSet fills dst, which must have exactly ElementCount entries.
func (e *Evaluation) CutSet(dst []bool) error {
	if err := e.require("CutSet", StateComputed); err != nil {
		return err
	}
	if len(dst) != e.n {
		return fmt.Errorf("%w: len %d, element count %d", ErrBufferSize, len(dst), e.n)
	}

	return e.s.oracle.CutSet(e.n, dst)
}

// UpdateSourceCapacities raises the threshold to c; the previous cut becomes invalid.
func (e *Evaluation) UpdateSourceCapacities(c float64) error {
	if err := e.require("UpdateSourceCapacities", StateReady, StateComputed); err != nil {
		return err
	}
	if err := e.s.oracle.UpdateSourceCapacities(c, e.n); err != nil {
		return fmt.Errorf("mincut: update source capacities: %w", err)
	}
	e.state = StateReady

	return nil
}

// Done ends the evaluation and lets the next Begin proceed. It is idempotent.
func (e *Evaluation) Done() {
	if e.state == StateDone {
		return
	}
	e.state = StateDone
	e.s.active.Unlock()
}
