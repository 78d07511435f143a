// SPDX-License-Identifier: MIT

// Package multilayer loads layered edge lists and exposes the elements
// (nodes or edges of the base graph) together with the set of layers each
// element participates in.
//
// Input is a sequence of whitespace-separated records:
//
//	<layerId> <endpointA> <endpointB> [ignored...]
//
// Two element modes are supported:
//
//   - EdgeMode: elements are undirected edges. (a,b) and (b,a) denote the same
//     element; an edge's LayerSet is the set of layers it appears in.
//   - NodeMode: elements are nodes. A node's LayerSet is the set of layers in
//     which any of its incident edges appears.
//
// Element ids are assigned in first-seen order starting at 1, so loading the
// same input twice yields identical id assignments. Repeated records for the
// same (layer, element) are idempotent.
//
// The base node graph (nodes and undirected adjacency, all layers merged) is
// kept in a gonum simple.UndirectedGraph so NodeMode adjacency queries are
// O(1).
//
// Errors:
//
//	ErrMalformedInput    - a record could not be parsed (wrapped by *MalformedInputError).
//	ErrUnknownMode       - ParseMode received an unsupported mode name.
//	ErrInconsistentInput - FromElements received mismatched slices or duplicate elements.
package multilayer
