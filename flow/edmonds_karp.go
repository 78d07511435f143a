// SPDX-License-Identifier: MIT
// Package: densim/flow
//
// edmonds_karp.go — shortest augmenting paths.

package flow

import (
	"context"
	"math"
)

// EdmondsKarp computes a maximum flow from source to sink in nw, starting
// from the zero flow, by repeatedly augmenting along a BFS-shortest path.
//
// Results and errors are the same as Dinic's.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(ctx context.Context, nw *Network, source, sink int, opts FlowOptions) (Result, error) {
	opts.normalize()
	if err := nw.validate(source, sink); err != nil {
		return Result{}, err
	}
	nw.reset()
	eps := opts.Epsilon

	parent := make([]int, nw.n) // vertex → residual arc used to reach it
	var maxFlow float64
	for {
		if err := ctx.Err(); err != nil {
			return Result{MaxFlow: maxFlow}, err
		}
		bottle, ok := nw.shortestPath(source, sink, eps, parent)
		if !ok {
			break
		}
		if math.IsInf(bottle, 1) {
			return Result{MaxFlow: math.Inf(1)}, ErrUnbounded
		}
		for v := sink; v != source; v = nw.to[parent[v]^1] {
			nw.push(parent[v], bottle)
		}
		maxFlow += bottle
	}

	return Result{MaxFlow: maxFlow, SourceSide: nw.reachable(source, eps)}, nil
}

// shortestPath runs a BFS over arcs with residual > eps, records the arc
// into each reached vertex in parent, and returns the bottleneck of the
// source→sink path found.
func (nw *Network) shortestPath(source, sink int, eps float64, parent []int) (float64, bool) {
	for i := range parent {
		parent[i] = -1
	}
	seen := make([]bool, nw.n)
	seen[source] = true
	queue := []int{source}
	for i := 0; i < len(queue) && !seen[sink]; i++ {
		u := queue[i]
		for _, r := range nw.adj[u] {
			v := nw.to[r]
			if seen[v] || nw.cap[r] <= eps {
				continue
			}
			seen[v] = true
			parent[v] = r
			queue = append(queue, v)
		}
	}
	if !seen[sink] {
		return 0, false
	}

	bottle := math.Inf(1)
	for v := sink; v != source; v = nw.to[parent[v]^1] {
		bottle = math.Min(bottle, nw.cap[parent[v]])
	}

	return bottle, true
}
