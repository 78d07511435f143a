// SPDX-License-Identifier: MIT
// Package: densim/flow
//
// types.go — sentinel errors, options and result type shared by all
// max-flow algorithms.

package flow

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound is returned when the source index is outside the network.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound is returned when the sink index is outside the network or equals the source.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")

// ErrVertexOutOfRange is returned by AddArc for endpoints outside [0, Len()).
var ErrVertexOutOfRange = errors.New("flow: vertex out of range")

// ErrArcNotFound is returned by SetCapacity for an unknown arc id.
var ErrArcNotFound = errors.New("flow: arc not found")

// ErrUnbounded is returned when an augmenting path of unbounded capacity
// joins source and sink; the maximum flow is infinite.
var ErrUnbounded = errors.New("flow: unbounded source-sink path")

// EdgeError is returned when an arc is given a negative or NaN capacity.
type EdgeError struct {
	From, To int
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: invalid capacity on arc %d→%d: %g", e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Epsilon: residual capacities ≤ Epsilon are treated as saturated.
//   - LevelRebuildInterval: for Dinic, rebuild the level graph every N augmentations
//     (0 = only when the blocking flow is exhausted).
type FlowOptions struct {
	Epsilon              float64
	LevelRebuildInterval int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() FlowOptions {
	return FlowOptions{Epsilon: 1e-12}
}

func (o *FlowOptions) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultOptions().Epsilon
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}

// Result is the outcome of one max-flow computation.
type Result struct {
	// MaxFlow is the value of a maximum flow (= capacity of a minimum cut).
	MaxFlow float64
	// SourceSide[v] is true when v is reachable from the source in the final
	// residual network. Its complement is the largest sink side of a minimum cut.
	SourceSide []bool
}
