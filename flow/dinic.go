// SPDX-License-Identifier: MIT
// Package: densim/flow
//
// dinic.go — Dinic's algorithm (level graph + blocking flows).

package flow

import (
	"context"
	"math"
)

// Dinic computes a maximum flow from source to sink in nw, starting from the
// zero flow, using Dinic's algorithm.
//
// It returns the flow value and the source side of the final residual
// network. Errors: ErrSourceNotFound, ErrSinkNotFound, ErrUnbounded, or the
// context error on cancellation (the partial flow value is still reported).
//
// Steps:
//  1. Normalize options and validate the terminals (O(1)).
//  2. Reset residual capacities to the configured ones (O(E)).
//  3. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS from source to assign levels over arcs with residual > Epsilon.
//     c. Push blocking flow by DFS along level-increasing arcs, keeping a
//     per-vertex next-arc pointer; optionally rebuild levels every
//     LevelRebuildInterval augmentations.
//  4. Mark the vertices still reachable from source (O(V + E)).
//
// Complexity:
//
//	Time:   O(V² · E) in general.
//	Memory: O(V + E) for levels, arc pointers and the BFS queue.
func Dinic(ctx context.Context, nw *Network, source, sink int, opts FlowOptions) (Result, error) {
	opts.normalize()
	if err := nw.validate(source, sink); err != nil {
		return Result{}, err
	}
	nw.reset()
	eps := opts.Epsilon

	level := make([]int, nw.n)
	iter := make([]int, nw.n)
	var maxFlow float64
	augmentCount := 0
	for {
		if err := ctx.Err(); err != nil {
			return Result{MaxFlow: maxFlow}, err
		}
		if !nw.buildLevels(source, sink, eps, level) {
			break
		}
		for i := range iter {
			iter[i] = 0
		}
		for {
			if err := ctx.Err(); err != nil {
				return Result{MaxFlow: maxFlow}, err
			}
			pushed := nw.dinicPush(level, iter, source, sink, math.Inf(1), eps)
			if math.IsInf(pushed, 1) {
				return Result{MaxFlow: math.Inf(1)}, ErrUnbounded
			}
			if pushed <= 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return Result{MaxFlow: maxFlow, SourceSide: nw.reachable(source, eps)}, nil
}

// buildLevels fills level with BFS distances from source (-1 = unreached)
// and reports whether sink was reached.
func (nw *Network) buildLevels(source, sink int, eps float64, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, r := range nw.adj[u] {
			v := nw.to[r]
			if level[v] < 0 && nw.cap[r] > eps {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level[sink] >= 0
}

// dinicPush sends up to available units from u to sink along the level
// graph and returns the amount sent. An infinite return value means an
// unbounded path was found; no residual capacity is modified in that case.
func (nw *Network) dinicPush(level, iter []int, u, sink int, available, eps float64) float64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(nw.adj[u]); iter[u]++ {
		r := nw.adj[u][iter[u]]
		v := nw.to[r]
		if nw.cap[r] <= eps || level[v] != level[u]+1 {
			continue
		}
		send := math.Min(available, nw.cap[r])
		pushed := nw.dinicPush(level, iter, v, sink, send, eps)
		if math.IsInf(pushed, 1) {
			return pushed
		}
		if pushed > 0 {
			nw.push(r, pushed)
			return pushed
		}
	}

	return 0
}
