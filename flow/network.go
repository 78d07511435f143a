// SPDX-License-Identifier: MIT
// Package: densim/flow
//
// network.go — index-based residual network.
//
// Layout:
//   - Vertices are 0..n-1.
//   - Arc k is stored as the residual pair 2k (forward) and 2k+1 (reverse);
//     the partner of residual arc r is r^1.
//   - cap[r] holds the current residual capacity, base[k] the capacity set by
//     the caller. Reset restores cap from base.
// Concurrency:
//   - A Network is not safe for concurrent use; one computation at a time.

package flow

import (
	"fmt"
	"math"
)

// Network is a directed capacitated network with float64 capacities.
// math.Inf(1) is a valid capacity.
type Network struct {
	n    int
	adj  [][]int   // vertex → residual arc ids leaving it
	to   []int     // residual arc → head vertex
	cap  []float64 // residual arc → residual capacity
	base []float64 // arc → configured capacity
}

// NewNetwork returns an empty network on n vertices.
func NewNetwork(n int) *Network {
	return &Network{n: n, adj: make([][]int, n)}
}

// Len returns the number of vertices.
func (nw *Network) Len() int { return nw.n }

// ArcCount returns the number of arcs added with AddArc.
func (nw *Network) ArcCount() int { return len(nw.base) }

// AddArc adds an arc from→to with the given capacity and returns its id.
// Self-loops are accepted and never carry flow.
func (nw *Network) AddArc(from, to int, capacity float64) (int, error) {
	if from < 0 || from >= nw.n || to < 0 || to >= nw.n {
		return 0, fmt.Errorf("%w: arc %d→%d on %d vertices", ErrVertexOutOfRange, from, to, nw.n)
	}
	if capacity < 0 || math.IsNaN(capacity) {
		return 0, EdgeError{From: from, To: to, Cap: capacity}
	}
	id := len(nw.base)
	nw.base = append(nw.base, capacity)
	nw.adj[from] = append(nw.adj[from], len(nw.to))
	nw.to = append(nw.to, to)
	nw.cap = append(nw.cap, capacity)
	nw.adj[to] = append(nw.adj[to], len(nw.to))
	nw.to = append(nw.to, from)
	nw.cap = append(nw.cap, 0)

	return id, nil
}

// SetCapacity changes the configured capacity of arc id. Any flow already
// pushed is discarded on the next computation.
func (nw *Network) SetCapacity(id int, capacity float64) error {
	if id < 0 || id >= len(nw.base) {
		return fmt.Errorf("%w: %d", ErrArcNotFound, id)
	}
	if capacity < 0 || math.IsNaN(capacity) {
		return EdgeError{From: nw.to[2*id+1], To: nw.to[2*id], Cap: capacity}
	}
	nw.base[id] = capacity

	return nil
}

// Capacity returns the configured capacity of arc id.
func (nw *Network) Capacity(id int) float64 { return nw.base[id] }

// Flow returns the flow on arc id after the last computation.
func (nw *Network) Flow(id int) float64 { return nw.cap[2*id+1] }

// reset restores every residual capacity to its configured value.
func (nw *Network) reset() {
	for k, c := range nw.base {
		nw.cap[2*k] = c
		nw.cap[2*k+1] = 0
	}
}

// validate checks the terminal indices.
func (nw *Network) validate(source, sink int) error {
	if source < 0 || source >= nw.n {
		return fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if sink < 0 || sink >= nw.n || sink == source {
		return fmt.Errorf("%w: %d", ErrSinkNotFound, sink)
	}

	return nil
}

// reachable marks every vertex reachable from source through arcs with
// residual capacity > eps.
//
// Complexity: O(V + E).
func (nw *Network) reachable(source int, eps float64) []bool {
	seen := make([]bool, nw.n)
	seen[source] = true
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, r := range nw.adj[u] {
			v := nw.to[r]
			if !seen[v] && nw.cap[r] > eps {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// push moves amount along residual arc r.
func (nw *Network) push(r int, amount float64) {
	nw.cap[r] -= amount
	nw.cap[r^1] += amount
}
