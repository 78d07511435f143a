// SPDX-License-Identifier: MIT
// Package: densim/multilayer
//
// graph.go — the loaded multilayer graph: element id maps, layer sets and
// the merged base node graph.
//
// Determinism:
//   - Elements() is ordered by ElementID.
//   - Nodes() is ordered by first appearance of each base node in the input.
// Concurrency:
//   - A Graph is immutable once Load/FromElements returns; concurrent reads are safe.

package multilayer

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
)

// Graph is a multilayer graph viewed through one element Mode.
type Graph struct {
	mode Mode

	elements []Element            // id-1 → element
	ids      map[Element]ElementID // element → id
	layers   []LayerSet           // id-1 → layers

	nodes     []int64       // base nodes in first-seen order
	nodeIndex map[int64]int // base node → position in nodes

	base *simple.UndirectedGraph // merged adjacency over all layers
}

func newGraph(mode Mode) *Graph {
	return &Graph{
		mode:      mode,
		ids:       make(map[Element]ElementID),
		nodeIndex: make(map[int64]int),
		base:      simple.NewUndirectedGraph(),
	}
}

// Mode returns the element mode the graph was loaded with.
func (g *Graph) Mode() Mode { return g.mode }

// Len returns the number of elements.
func (g *Graph) Len() int { return len(g.elements) }

// NodeCount returns the number of distinct base nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// ID returns the id of e, if e is an element of the graph.
func (g *Graph) ID(e Element) (ElementID, bool) {
	id, ok := g.ids[e]

	return id, ok
}

// Element returns the element with the given id.
func (g *Graph) Element(id ElementID) (Element, bool) {
	if id < 1 || int(id) > len(g.elements) {
		return Element{}, false
	}

	return g.elements[id-1], true
}

// Elements returns a copy of all elements ordered by id.
func (g *Graph) Elements() []Element {
	out := make([]Element, len(g.elements))
	copy(out, g.elements)

	return out
}

// Layers returns the layer set of element id. The result must not be modified.
func (g *Graph) Layers(id ElementID) LayerSet {
	if id < 1 || int(id) > len(g.layers) {
		return nil
	}

	return g.layers[id-1]
}

// Nodes returns a copy of the base nodes in first-seen order.
func (g *Graph) Nodes() []int64 {
	out := make([]int64, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeIndex returns the 0-based first-seen position of base node n.
func (g *Graph) NodeIndex(n int64) (int, bool) {
	i, ok := g.nodeIndex[n]

	return i, ok
}

// Adjacent reports whether base nodes a and b are joined by an edge in any layer.
func (g *Graph) Adjacent(a, b int64) bool {
	if a == b {
		return false
	}

	return g.base.HasEdgeBetween(a, b)
}

// BaseEdges returns every undirected base edge (self-loops excluded) in
// canonical form, ordered by the first-seen position of their endpoints.
func (g *Graph) BaseEdges() []Element {
	var out []Element
	for _, u := range g.nodes {
		nbrs := g.base.From(u)
		for nbrs.Next() {
			v := nbrs.Node().ID()
			if g.nodeIndex[u] < g.nodeIndex[v] {
				out = append(out, EdgeElement(u, v))
			}
		}
	}
	sortElementsByNodeOrder(out, g.nodeIndex)

	return out
}

// observe registers one input record.
func (g *Graph) observe(layer int, a, b int64) {
	g.addBaseEdge(a, b)
	switch g.mode {
	case EdgeMode:
		id := g.intern(EdgeElement(a, b))
		g.layers[id-1] = g.layers[id-1].Add(layer)
	case NodeMode:
		for _, n := range [2]int64{a, b} {
			id := g.intern(NodeElement(n))
			g.layers[id-1] = g.layers[id-1].Add(layer)
		}
	}
}

// intern returns the id of e, assigning the next id on first sight.
func (g *Graph) intern(e Element) ElementID {
	if id, ok := g.ids[e]; ok {
		return id
	}
	g.elements = append(g.elements, e)
	g.layers = append(g.layers, nil)
	id := ElementID(len(g.elements))
	g.ids[e] = id

	return id
}

func (g *Graph) addNode(n int64) {
	if _, ok := g.nodeIndex[n]; ok {
		return
	}
	g.nodeIndex[n] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	if g.base.Node(n) == nil {
		g.base.AddNode(simple.Node(n))
	}
}

func (g *Graph) addBaseEdge(a, b int64) {
	// EdgeMode numbers endpoints in canonical order, NodeMode in record order.
	if g.mode == EdgeMode && b < a {
		a, b = b, a
	}
	g.addNode(a)
	g.addNode(b)
	if a != b {
		g.base.SetEdge(g.base.NewEdge(simple.Node(a), simple.Node(b)))
	}
}

// FromElements rebuilds a Graph from persisted element data. elements and
// layers are parallel slices ordered by id; nodes lists base nodes in their
// original first-seen order and baseEdges the merged adjacency.
func FromElements(mode Mode, elements []Element, layers []LayerSet, nodes []int64, baseEdges []Element) (*Graph, error) {
	if len(elements) != len(layers) {
		return nil, fmt.Errorf("%w: %d elements but %d layer sets", ErrInconsistentInput, len(elements), len(layers))
	}
	g := newGraph(mode)
	for _, n := range nodes {
		g.addNode(n)
	}
	for i, e := range elements {
		if _, dup := g.ids[e]; dup {
			return nil, fmt.Errorf("%w: duplicate element %s", ErrInconsistentInput, e)
		}
		if len(layers[i]) == 0 {
			return nil, fmt.Errorf("%w: element %s has no layers", ErrInconsistentInput, e)
		}
		id := g.intern(e)
		g.layers[id-1] = layers[i].Clone()
		for _, n := range [2]int64{e.U, e.V} {
			if _, ok := g.nodeIndex[n]; !ok {
				return nil, fmt.Errorf("%w: element %s references unknown node %d", ErrInconsistentInput, e, n)
			}
		}
	}
	for _, e := range baseEdges {
		if e.U == e.V {
			continue
		}
		if _, ok := g.nodeIndex[e.U]; !ok {
			return nil, fmt.Errorf("%w: base edge %s references unknown node %d", ErrInconsistentInput, e, e.U)
		}
		if _, ok := g.nodeIndex[e.V]; !ok {
			return nil, fmt.Errorf("%w: base edge %s references unknown node %d", ErrInconsistentInput, e, e.V)
		}
		g.base.SetEdge(g.base.NewEdge(simple.Node(e.U), simple.Node(e.V)))
	}

	return g, nil
}
