// SPDX-License-Identifier: MIT
// Package: densim/multilayer
//
// types.go — element identities, canonical pairs and layer sets.
//
// Determinism:
//   - Pair is always stored with A < B; NewPair is the only constructor callers need.
//   - LayerSet is a sorted, duplicate-free slice; equality is slice equality.

package multilayer

import (
	"fmt"
	"sort"
	"strings"
)

// Mode selects what an element of the multilayer graph is.
type Mode int

const (
	// EdgeMode treats every undirected edge of the base graph as an element.
	EdgeMode Mode = iota
	// NodeMode treats every node of the base graph as an element.
	NodeMode
)

// String returns the canonical lower-case mode name.
func (m Mode) String() string {
	switch m {
	case EdgeMode:
		return "edge"
	case NodeMode:
		return "node"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps "edge"/"edges" and "node"/"nodes" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "edge", "edges":
		return EdgeMode, nil
	case "node", "nodes":
		return NodeMode, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ElementID is the stable 1-based identifier of an element.
type ElementID int

// Element identifies a node (U == V) or an undirected edge (U <= V) of the
// base graph. Edge elements are always canonical: EdgeElement(b, a) equals
// EdgeElement(a, b).
type Element struct {
	U int64 `json:"u"`
	V int64 `json:"v"`
}

// NodeElement returns the element for base node n.
func NodeElement(n int64) Element { return Element{U: n, V: n} }

// EdgeElement returns the canonical element for the undirected edge {a,b}.
func EdgeElement(a, b int64) Element {
	if b < a {
		a, b = b, a
	}

	return Element{U: a, V: b}
}

// SharedEndpoints reports how many distinct endpoints two edge elements have
// in common (0, 1 or 2).
func (e Element) SharedEndpoints(o Element) int {
	shared := 0
	if e.U == o.U || e.U == o.V {
		shared++
	}
	if e.V != e.U && (e.V == o.U || e.V == o.V) {
		shared++
	}

	return shared
}

// String formats the element as "(u, v)".
func (e Element) String() string { return fmt.Sprintf("(%d, %d)", e.U, e.V) }

// Pair is an unordered pair of distinct elements stored with A < B.
type Pair struct {
	A ElementID `json:"a"`
	B ElementID `json:"b"`
}

// NewPair orders a and b so that the resulting Pair satisfies A <= B.
// Every map keyed by Pair must be written and queried through NewPair.
func NewPair(a, b ElementID) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// Less orders pairs lexicographically by (A, B).
func (p Pair) Less(q Pair) bool {
	if p.A != q.A {
		return p.A < q.A
	}

	return p.B < q.B
}

// Contains reports whether id is one of the pair's members.
func (p Pair) Contains(id ElementID) bool { return p.A == id || p.B == id }

// SortPairs sorts ps in place in canonical (A, B) order.
func SortPairs(ps []Pair) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Less(ps[j]) })
}

// LayerSet is the sorted set of layer identifiers an element participates in.
type LayerSet []int

// Add inserts layer keeping the set sorted; adding an existing layer is a no-op.
// Complexity: O(log n) search + O(n) shift.
func (s LayerSet) Add(layer int) LayerSet {
	i := sort.SearchInts(s, layer)
	if i < len(s) && s[i] == layer {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = layer

	return s
}

// Contains reports membership of layer.
func (s LayerSet) Contains(layer int) bool {
	i := sort.SearchInts(s, layer)

	return i < len(s) && s[i] == layer
}

// Clone returns an independent copy of s.
func (s LayerSet) Clone() LayerSet {
	out := make(LayerSet, len(s))
	copy(out, s)

	return out
}

// Jaccard returns |a ∩ b| / |a ∪ b|, or 0 when both sets are empty.
// Both inputs must be sorted; the merge walk is O(|a| + |b|).
func Jaccard(a, b LayerSet) float64 {
	var i, j, inter int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			inter++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}
