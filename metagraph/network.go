// SPDX-License-Identifier: MIT
// Package: densim/metagraph
//
// network.go — the in-memory network description shared by the builder,
// the DIMACS codec and the min-cut oracles.
//
// Vertex numbering is 1-based, as in the written file.

package metagraph

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/densim/multilayer"
)

// Infinity is the textual capacity used for unbounded arcs. Any capacity at
// or above it is read back as +Inf.
const Infinity = 1.79769e+308

// Kind distinguishes the two network constructions.
type Kind int

const (
	// Parametric is the edge-mode network of the lambda search.
	Parametric Kind = iota
	// Baseline is the two-component network of the baseline sweep.
	Baseline
)

// String returns the name used in the DIMACS comment header.
func (k Kind) String() string {
	switch k {
	case Parametric:
		return "parametric"
	case Baseline:
		return "baseline"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func parseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "parametric":
		return Parametric, nil
	case "baseline":
		return Baseline, nil
	}

	return 0, fmt.Errorf("%w: unknown network kind %q", ErrMalformedNetwork, s)
}

// Arc is one directed arc with one or two capacity components.
type Arc struct {
	From, To int
	Caps     []float64
}

// Capacity combines the components of a as Caps[0] + weight·Caps[1].
// Single-component arcs ignore weight.
func (a Arc) Capacity(weight float64) float64 {
	if len(a.Caps) < 2 {
		return a.Caps[0]
	}
	if math.IsInf(a.Caps[0], 1) || math.IsInf(a.Caps[1], 1) {
		return math.Inf(1)
	}

	return a.Caps[0] + weight*a.Caps[1]
}

// Network is a complete capacitated network description.
//
// Element vertices are 1..ElementCount. For Parametric networks the base
// node vertices follow as ElementCount+1..ElementCount+NodeCount.
type Network struct {
	Kind         Kind
	Mode         multilayer.Mode
	Vertices     int
	Source       int
	Sink         int
	ElementCount int
	NodeCount    int
	Arcs         []Arc

	// Totals holds Σ of the primary and secondary degree aggregates.
	// Parametric networks only use Totals[0] (total similarity).
	Totals [2]float64
}

// Total returns the objective total entering the convergence gap:
// Totals[0] for Parametric, Totals[0] + mu·Totals[1] for Baseline.
func (n *Network) Total(mu float64) float64 {
	if n.Kind == Baseline {
		return n.Totals[0] + mu*n.Totals[1]
	}

	return n.Totals[0]
}

// IsElement reports whether vertex v is an element vertex.
func (n *Network) IsElement(v int) bool { return v >= 1 && v <= n.ElementCount }

// Clone returns a deep copy of n.
func (n *Network) Clone() *Network {
	out := *n
	out.Arcs = make([]Arc, len(n.Arcs))
	for i, a := range n.Arcs {
		out.Arcs[i] = Arc{From: a.From, To: a.To, Caps: append([]float64(nil), a.Caps...)}
	}

	return &out
}

func (n *Network) addArc(from, to int, caps ...float64) {
	n.Arcs = append(n.Arcs, Arc{From: from, To: to, Caps: caps})
}
