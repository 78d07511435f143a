// SPDX-License-Identifier: MIT

// Package baseline runs the non-adaptive comparison sweeps.
//
// Two baselines exist. The density baseline selects base nodes on a
// node-mode network whose primary component is the link relation and whose
// secondary component is node similarity; the similarity baseline selects
// edges on an edge-mode network with similarity as primary and the
// shared-endpoint link as secondary. A trade-off weight mu combines the
// components as primary + mu·secondary.
//
// Sweep evaluates mu on a fixed linear grid (101 points over [0, 10] by
// default) with the same fixed-parameter loop the parametric search uses,
// then scores every selected set post hoc with an Evaluator against the
// edge-mode similarity of the base graph:
//
//	density baseline:    edges = edges induced by the selected nodes
//	similarity baseline: nodes = endpoints of the selected edges
//	similarity = Σ pair similarity over edges / |edges|
//	density    = |edges| / |nodes|
//
// A selection with no edges has no meaningful score; Evaluate returns
// ErrEmptyPairSet and the sweep reports the point as empty.
package baseline
