// SPDX-License-Identifier: MIT

// Package similarity computes, for every unordered pair of elements of a
// multilayer.Graph, the Jaccard similarity of their layer sets and the
// structural "linked" relation, together with per-element degree aggregates.
//
// Only strictly positive similarities and links are stored (sparse maps keyed
// by the canonical multilayer.Pair). Degree aggregates are accumulated while
// pairs are discovered, so terminal capacities of the flow network can be
// derived without re-scanning pairs.
//
// Two strategies produce identical indexes:
//
//   - AllPairs:   the O(n²) reference scan over every pair.
//   - LayerIndex: an inverted layer → elements index plus node incidence,
//     touching only pairs that can have a non-zero value.
//
// Both visit pairs in canonical (A, B) order, so the degree sums are
// bit-identical between strategies.
//
// A Snapshot bundles the element maps, layer sets and the Index into a
// canonical JSON document so a later stage can resume without recomputing.
package similarity
