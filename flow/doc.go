// SPDX-License-Identifier: MIT

// Package flow implements maximum-flow algorithms on an index-based residual
// network with float64 capacities. It is the engine behind the in-memory
// min-cut oracle: after a computation, Result.SourceSide tells which
// vertices remain reachable from the source, i.e. one side of a minimum cut.
//
// The algorithms offered are:
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-arc) augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Memory: O(V + E) for parent pointers and the BFS queue.
//
//   - Dinic
//
//   - Method: level graph construction + blocking flow via DFS with
//     per-vertex next-arc pointers.
//
//   - Time:   O(V² · E) in general, much faster on the layered networks
//     produced by package metagraph.
//
//   - Memory: O(V + E).
//
// # Network
//
// Vertices are the integers 0..n-1. Every arc added with AddArc is stored as
// a residual pair (forward 2k, reverse 2k+1), so the partner of a residual
// arc is found with a single XOR. Capacities may be +Inf; a source–sink
// path made only of unbounded arcs yields ErrUnbounded.
//
// Every computation starts from the zero flow, so SetCapacity may be called
// freely between computations.
//
// # API
//
//	nw := flow.NewNetwork(4)
//	a, _ := nw.AddArc(0, 1, 3)
//	...
//	res, err := flow.Dinic(ctx, nw, 0, 3, flow.DefaultOptions())
//	_ = nw.SetCapacity(a, 5)
//	res, err = flow.Dinic(ctx, nw, 0, 3, flow.DefaultOptions())
//
// FlowOptions:
//
//	Epsilon              float64 // residual capacities ≤ Epsilon count as saturated (default 1e-12)
//	LevelRebuildInterval int     // Dinic only: rebuild level graph every N pushes
//
// # Errors
//
//	ErrSourceNotFound   - source index outside the network.
//	ErrSinkNotFound     - sink index outside the network or equal to source.
//	ErrVertexOutOfRange - AddArc endpoint outside the network.
//	ErrArcNotFound      - SetCapacity on an unknown arc.
//	ErrUnbounded        - an infinite-capacity source–sink path exists.
//	EdgeError           - negative or NaN capacity.
//	context.Canceled / context.DeadlineExceeded - ctx was canceled.
package flow
