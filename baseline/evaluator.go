// SPDX-License-Identifier: MIT
// Package: densim/baseline
//
// evaluator.go — post-hoc (similarity, density) of a selected set.
//
// Complexity:
//   - Evaluate: O(E + k²) for E edges of the graph and k scored edges.

package baseline

import (
	"fmt"

	"github.com/katalvlaran/densim/multilayer"
	"github.com/katalvlaran/densim/similarity"
)

// Evaluator scores selections against the edge-mode similarity of a graph.
type Evaluator struct {
	g *multilayer.Graph
	x *similarity.Index
}

// NewEvaluator returns an Evaluator over an edge-mode graph and its index.
func NewEvaluator(g *multilayer.Graph, x *similarity.Index) (*Evaluator, error) {
	if g.Mode() != multilayer.EdgeMode || x.Mode() != multilayer.EdgeMode {
		return nil, fmt.Errorf("%w: evaluator needs edge mode, got graph %s, index %s",
			ErrInvalidOption, g.Mode(), x.Mode())
	}
	if g.Len() != x.Len() {
		return nil, fmt.Errorf("%w: graph has %d edges, index %d", ErrInvalidOption, g.Len(), x.Len())
	}

	return &Evaluator{g: g, x: x}, nil
}

// Evaluate scores sel, a set of node elements (Density) or edge elements
// (Similarity). Edge elements unknown to the graph are ignored.
func (ev *Evaluator) Evaluate(kind Kind, sel []multilayer.Element) (sim, den float64, err error) {
	var (
		ids   []multilayer.ElementID
		nodes int
	)
	switch kind {
	case Density:
		ids, nodes = ev.induced(sel)
	case Similarity:
		ids, nodes = ev.covered(sel)
	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if len(ids) == 0 {
		return 0, 0, fmt.Errorf("%w: %d selected elements", ErrEmptyPairSet, len(sel))
	}

	var total float64
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			total += ev.x.Similarity(ids[i], ids[j])
		}
	}

	return total / float64(len(ids)), float64(len(ids)) / float64(nodes), nil
}

// induced returns the edges with both endpoints among the selected nodes.
func (ev *Evaluator) induced(sel []multilayer.Element) ([]multilayer.ElementID, int) {
	in := make(map[int64]struct{}, len(sel))
	for _, e := range sel {
		in[e.U] = struct{}{}
	}
	var ids []multilayer.ElementID
	for i, e := range ev.g.Elements() {
		_, okU := in[e.U]
		_, okV := in[e.V]
		if okU && okV {
			ids = append(ids, multilayer.ElementID(i+1))
		}
	}

	return ids, len(in)
}

// covered returns the ids of the selected edges and the number of their endpoints.
func (ev *Evaluator) covered(sel []multilayer.Element) ([]multilayer.ElementID, int) {
	ends := make(map[int64]struct{}, 2*len(sel))
	ids := make([]multilayer.ElementID, 0, len(sel))
	for _, e := range sel {
		id, ok := ev.g.ID(e)
		if !ok {
			continue
		}
		ids = append(ids, id)
		ends[e.U] = struct{}{}
		ends[e.V] = struct{}{}
	}

	return ids, len(ends)
}
