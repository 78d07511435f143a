// SPDX-License-Identifier: MIT
// Package: densim/similarity
//
// compute.go — pair enumeration strategies.
//
// Steps (both strategies):
//  1. Validate that every element has a non-empty layer set.
//  2. Enumerate candidate pairs (all pairs, or via the inverted indexes).
//  3. Visit candidates in canonical order; store Jaccard > 0 and link > 0,
//     accumulating degrees as pairs are stored.

package similarity

import (
	"fmt"

	"github.com/katalvlaran/densim/multilayer"
)

// Compute builds the Index of g.
//
// Complexity:
//
//	AllPairs:   O(n² · L) time, O(P) memory for P stored pairs.
//	LayerIndex: O(Σ_l |E_l|² + Σ_v deg(v)²) time in the worst case, typically far less.
func Compute(g *multilayer.Graph, opts ...Option) (*Index, error) {
	o := newOptions(opts...)
	n := g.Len()
	for id := 1; id <= n; id++ {
		if len(g.Layers(multilayer.ElementID(id))) == 0 {
			return nil, fmt.Errorf("%w: element %d", ErrEmptyLayerSet, id)
		}
	}

	x := newIndex(g.Mode(), n)
	switch o.strategy {
	case AllPairs:
		computeAllPairs(g, x, o.policy)
	case LayerIndex:
		computeIndexed(g, x, o.policy)
	default:
		return nil, fmt.Errorf("%w: strategy %d", ErrInvalidOption, int(o.strategy))
	}

	return x, nil
}

// computeAllPairs is the reference O(n²) scan; it is the dominant cost of the
// whole pipeline and is kept isolated from the indexed variant on purpose.
func computeAllPairs(g *multilayer.Graph, x *Index, policy LinkPolicy) {
	n := g.Len()
	for i := 1; i <= n; i++ {
		a := multilayer.ElementID(i)
		la := g.Layers(a)
		for j := i + 1; j <= n; j++ {
			b := multilayer.ElementID(j)
			p := multilayer.Pair{A: a, B: b}
			if js := multilayer.Jaccard(la, g.Layers(b)); js > 0 {
				x.addSimilarity(p, js)
			}
			if w := linkWeight(g, a, b, policy); w > 0 {
				x.addLink(p, w)
			}
		}
	}
}

// computeIndexed touches only pairs that share a layer (similarity) or a
// base node (link).
func computeIndexed(g *multilayer.Graph, x *Index, policy LinkPolicy) {
	n := g.Len()

	// Inverted layer index: layer → ascending element ids.
	byLayer := make(map[int][]multilayer.ElementID)
	for i := 1; i <= n; i++ {
		id := multilayer.ElementID(i)
		for _, l := range g.Layers(id) {
			byLayer[l] = append(byLayer[l], id)
		}
	}
	simCandidates := make(map[multilayer.Pair]struct{})
	for _, ids := range byLayer {
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				simCandidates[multilayer.NewPair(ids[i], ids[j])] = struct{}{}
			}
		}
	}
	for _, p := range sortedSet(simCandidates) {
		if js := multilayer.Jaccard(g.Layers(p.A), g.Layers(p.B)); js > 0 {
			x.addSimilarity(p, js)
		}
	}

	for _, p := range linkCandidates(g) {
		if w := linkWeight(g, p.A, p.B, policy); w > 0 {
			x.addLink(p, w)
		}
	}
}

// linkCandidates returns, in canonical order, every pair that may be linked.
func linkCandidates(g *multilayer.Graph) []multilayer.Pair {
	set := make(map[multilayer.Pair]struct{})
	switch g.Mode() {
	case multilayer.NodeMode:
		for _, e := range g.BaseEdges() {
			a, okA := g.ID(multilayer.NodeElement(e.U))
			b, okB := g.ID(multilayer.NodeElement(e.V))
			if okA && okB {
				set[multilayer.NewPair(a, b)] = struct{}{}
			}
		}
	case multilayer.EdgeMode:
		incident := make(map[int64][]multilayer.ElementID)
		for i, e := range g.Elements() {
			id := multilayer.ElementID(i + 1)
			incident[e.U] = append(incident[e.U], id)
			if e.V != e.U {
				incident[e.V] = append(incident[e.V], id)
			}
		}
		for _, ids := range incident {
			for i := 0; i < len(ids); i++ {
				for j := i + 1; j < len(ids); j++ {
					set[multilayer.NewPair(ids[i], ids[j])] = struct{}{}
				}
			}
		}
	}

	return sortedSet(set)
}

// linkWeight evaluates the "linked" relation of a and b under the graph mode.
func linkWeight(g *multilayer.Graph, a, b multilayer.ElementID, policy LinkPolicy) float64 {
	ea, _ := g.Element(a)
	eb, _ := g.Element(b)
	switch g.Mode() {
	case multilayer.NodeMode:
		if g.Adjacent(ea.U, eb.U) {
			return 1
		}
	case multilayer.EdgeMode:
		shared := ea.SharedEndpoints(eb)
		if shared == 0 {
			return 0
		}
		if policy == LinkSharedEndpoints {
			return float64(shared)
		}

		return 1
	}

	return 0
}

func sortedSet(set map[multilayer.Pair]struct{}) []multilayer.Pair {
	out := make([]multilayer.Pair, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	multilayer.SortPairs(out)

	return out
}
