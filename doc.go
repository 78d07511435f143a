// SPDX-License-Identifier: MIT

// Package densim finds subgraphs of a multilayer graph that are at the same
// time dense and similar across layers.
//
// An element (an edge, or a node for the density baseline) carries the set
// of layers it appears in; two elements are similar by the Jaccard overlap
// of those sets. For a node penalty lambda the optimal edge subset maximizes
// the similarity per edge minus lambda per node, and the family of optima
// over lambda is piecewise constant with finitely many breakpoints.
//
// Pipeline:
//
//	multilayer/  load "<layer> <a> <b>" records into element id maps
//	similarity/  sparse pair similarity, link relation, degree aggregates, snapshots
//	metagraph/   parametric and baseline flow networks, DIMACS encoding
//	flow/        Dinic and Edmonds–Karp max-flow on float capacities
//	mincut/      min-cut oracle contract, in-memory oracle, session protocol
//	tradeoff/    fixed-lambda Dinkelbach loop with a two-slot snapshot ring
//	search/      breadth-first lambda bisection and ordered breakpoint set
//	baseline/    fixed-grid baseline sweeps with post-hoc scoring
//	config/      one configuration struct, YAML or TOML files
//	metrics/     Prometheus collectors and an optional /metrics endpoint
//
// The densim command (cmd/densim) exposes construct, search and baseline.
//
// Quick start:
//
//	g, _ := multilayer.LoadFile("data.edges", multilayer.EdgeMode)
//	x, _ := similarity.Compute(g)
//	net, _ := metagraph.BuildParametric(g, x, 0, 0)
//	sess, _ := mincut.Open(mincut.NewMemory(), net)
//	defer sess.Close()
//	solver, _ := tradeoff.NewSolver(sess)
//	srch, _ := search.New(solver, search.DefaultOptions(g.Len()))
//	res, _ := srch.Run(ctx)
//	for _, bp := range res.Breakpoints {
//		fmt.Println(bp.Lambda, bp.Similarity, bp.Density)
//	}
package densim
