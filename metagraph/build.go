// SPDX-License-Identifier: MIT
// Package: densim/metagraph
//
// build.go — parametric and baseline network constructions.
//
// Determinism:
//   - Arcs are emitted pairs first (canonical order), then per element by id,
//     then per base node in first-seen order.

package metagraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densim/multilayer"
	"github.com/katalvlaran/densim/similarity"
)

// BuildParametric builds the edge-mode network for threshold c and trade-off
// parameter lambda.
//
// Steps:
//  1. For every similarity pair (a,b): arcs a→b and b→a with capacity s/2.
//  2. For every edge e: source→e (c), e→sink (SimDegree(e)/2), and an
//     unbounded arc from each distinct endpoint node vertex to e.
//  3. For every base node n: source→n (lambda).
//
// Complexity: O(P + E + N) for P similarity pairs.
func BuildParametric(g *multilayer.Graph, x *similarity.Index, lambda, c float64) (*Network, error) {
	if g.Mode() != multilayer.EdgeMode || x.Mode() != multilayer.EdgeMode {
		return nil, fmt.Errorf("%w: parametric network needs edge elements, got graph %s, index %s",
			ErrModeMismatch, g.Mode(), x.Mode())
	}
	if g.Len() != x.Len() {
		return nil, fmt.Errorf("%w: graph has %d elements, index %d", ErrModeMismatch, g.Len(), x.Len())
	}

	e, nodes := g.Len(), g.Nodes()
	net := &Network{
		Kind:         Parametric,
		Mode:         multilayer.EdgeMode,
		Vertices:     e + len(nodes) + 2,
		Source:       e + len(nodes) + 1,
		Sink:         e + len(nodes) + 2,
		ElementCount: e,
		NodeCount:    len(nodes),
		Totals:       [2]float64{x.TotalSimilarity(), 0},
	}
	nodeVertex := func(n int64) int {
		i, _ := g.NodeIndex(n)
		return e + 1 + i
	}

	for _, p := range x.SimilarityPairs() {
		half := x.Similarity(p.A, p.B) / 2
		net.addArc(int(p.A), int(p.B), half)
		net.addArc(int(p.B), int(p.A), half)
	}
	for i := 1; i <= e; i++ {
		id := multilayer.ElementID(i)
		el, _ := g.Element(id)
		net.addArc(net.Source, i, c)
		net.addArc(i, net.Sink, x.SimDegree(id)/2)
		net.addArc(nodeVertex(el.U), i, math.Inf(1))
		if el.V != el.U {
			net.addArc(nodeVertex(el.V), i, math.Inf(1))
		}
	}
	for _, n := range nodes {
		net.addArc(net.Source, nodeVertex(n), lambda)
	}

	return net, nil
}

// BuildBaseline builds the two-component network of the baseline sweep.
// A node-mode index yields the density baseline (primary = link, secondary =
// similarity); an edge-mode index yields the similarity baseline (primary =
// similarity, secondary = link). Source arcs carry (c, c).
//
// Complexity: O(P + n) for P pairs in the union of both maps.
func BuildBaseline(x *similarity.Index, c float64) (*Network, error) {
	primary, secondary := x.Link, x.Similarity
	primaryDeg, secondaryDeg := x.LinkDegree, x.SimDegree
	totals := [2]float64{x.TotalLink(), x.TotalSimilarity()}
	switch x.Mode() {
	case multilayer.NodeMode:
	case multilayer.EdgeMode:
		primary, secondary = x.Similarity, x.Link
		primaryDeg, secondaryDeg = x.SimDegree, x.LinkDegree
		totals = [2]float64{x.TotalSimilarity(), x.TotalLink()}
	default:
		return nil, fmt.Errorf("%w: %s", ErrModeMismatch, x.Mode())
	}

	n := x.Len()
	net := &Network{
		Kind:         Baseline,
		Mode:         x.Mode(),
		Vertices:     n + 2,
		Source:       n + 1,
		Sink:         n + 2,
		ElementCount: n,
		Totals:       totals,
	}
	for _, p := range x.Pairs() {
		p1, p2 := primary(p.A, p.B)/2, secondary(p.A, p.B)/2
		net.addArc(int(p.A), int(p.B), p1, p2)
		net.addArc(int(p.B), int(p.A), p1, p2)
	}
	for i := 1; i <= n; i++ {
		id := multilayer.ElementID(i)
		net.addArc(net.Source, i, c, c)
		net.addArc(i, net.Sink, primaryDeg(id)/2, secondaryDeg(id)/2)
	}

	return net, nil
}
