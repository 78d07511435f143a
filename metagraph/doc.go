// SPDX-License-Identifier: MIT

// Package metagraph builds the capacitated flow networks ("metagraphs") whose
// minimum cuts select dense and similar subsets of a multilayer graph, and
// reads/writes them in the DIMACS-style text format consumed by min-cut
// engines.
//
// Two constructions are provided:
//
//   - BuildParametric: edge-mode network of the parametric search. Vertices
//     are the edges 1..E, the base nodes E+1..E+N, then source and sink.
//     Similarity pairs become opposite arcs of capacity s/2, every edge has a
//     source arc (threshold c) and a sink arc (half its similarity degree),
//     every base node has a source arc (lambda) and unbounded arcs tie each
//     edge to its endpoints.
//   - BuildBaseline: single-mode network of the baseline sweep. Every pair of
//     the union of similarity and link keys becomes two opposite arcs with
//     two capacity components (primary/2, secondary/2); an oracle combines
//     them as primary + mu·secondary.
//
// Arc emission order is deterministic (pairs in canonical order, then
// elements by id, then base nodes) so arc ordinals are stable between the
// builder, the written file and the oracle.
//
// The selected subset of a cut is its sink side, the side without the
// source. Because node→edge arcs are unbounded, an edge can only be selected
// together with both endpoints.
//
// Errors:
//
//	ErrModeMismatch     - the index/graph mode does not fit the construction.
//	ErrMalformedNetwork - ReadDIMACS met a line it cannot parse or an inconsistent header.
package metagraph
