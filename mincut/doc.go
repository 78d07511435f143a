// SPDX-License-Identifier: MIT

// Package mincut defines the boundary to a minimum-cut engine (Oracle), a
// reference in-memory implementation (Memory) and the Session wrapper that
// enforces the call protocol:
//
//	Open (Init) → { Begin (Recreate) → ComputeCut / CutValue / CutSetSize /
//	CutSet / UpdateSourceCapacities … → Done }* → Close (Release)
//
// A Session admits one Evaluation at a time, so capacity updates of two
// different lambda evaluations never interleave. Calls out of order return a
// *ProtocolError that unwraps to ErrProtocol; Close releases the oracle
// exactly once.
//
// The cut set reported by an oracle is the sink side of the minimum cut,
// i.e. the side that does not contain the source. With the networks built by
// package metagraph this is the selected subset of elements.
//
// Memory normalizes terminal arcs before running a max-flow algorithm from
// package flow: for a vertex with source capacity a and sink capacity b it
// adds min(a, b) to a constant and keeps only the positive remainder on one
// terminal arc. Negative thresholds (c < 0 early in the parametric search)
// are therefore handled exactly, and CutValue = constant + max flow.
package mincut
