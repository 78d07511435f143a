// SPDX-License-Identifier: MIT
// Package: densim/mincut
//
// memory.go — reference in-memory Oracle backed by package flow.
//
// Layout:
//   - Network vertex v (1-based) is flow vertex v-1.
//   - Arcs between non-terminal vertices keep their own flow arc.
//   - Every vertex with a terminal arc gets exactly one source and one sink
//     flow arc carrying the normalized terminal capacities.

package mincut

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/densim/flow"
	"github.com/katalvlaran/densim/metagraph"
)

// MemoryOption customizes a Memory oracle.
type MemoryOption func(*Memory)

// WithAlgorithm selects the max-flow algorithm (default flow.Dinic).
func WithAlgorithm(alg flow.Algorithm) MemoryOption {
	return func(m *Memory) {
		if alg != nil {
			m.alg = alg
		}
	}
}

// WithFlowOptions sets the options passed to the max-flow algorithm.
func WithFlowOptions(opts flow.FlowOptions) MemoryOption {
	return func(m *Memory) { m.flowOpts = opts }
}

// WithTolerance sets how far UpdateSourceCapacities may lower the threshold
// before ErrCapacityDecrease is returned (default 1e-9).
func WithTolerance(tol float64) MemoryOption {
	return func(m *Memory) { m.tolerance = math.Abs(tol) }
}

// Memory is an Oracle that keeps the network in memory and recomputes a
// maximum flow from scratch on every ComputeCut.
type Memory struct {
	alg       flow.Algorithm
	flowOpts  flow.FlowOptions
	tolerance float64

	net *metagraph.Network
	fn  *flow.Network

	inner    []innerArc // non-terminal arcs
	terminal []int      // network vertex → index into srcCap/sinkCap/flow arcs, -1 if none
	termVert []int      // terminal index → network vertex
	srcCap   []float64  // raw source capacity (may be negative)
	sinkCap  []float64  // raw sink capacity
	srcArc   []int      // flow arc ids
	sinkArc  []int
	srcArcs  [][]int // terminal index → network arc indices of its source arcs
	sinkArcs [][]int

	constant float64
	lambda   float64
	c        float64
	cutValue float64
	sinkSide []bool // network vertex → in cut set (index 0 unused)
}

type innerArc struct {
	desc int // index in net.Arcs
	arc  int // flow arc id
}

// NewMemory returns an uninitialized in-memory oracle.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{alg: flow.Dinic, flowOpts: flow.DefaultOptions(), tolerance: 1e-9}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Init loads net. The network is cloned; later changes to net are not seen.
func (m *Memory) Init(net *metagraph.Network) error {
	if net == nil || net.Vertices < 2 || net.Source < 1 || net.Sink < 1 ||
		net.Source > net.Vertices || net.Sink > net.Vertices || net.Source == net.Sink {
		return fmt.Errorf("%w: bad terminals or vertex count", ErrInvalidNetwork)
	}
	m.net = net.Clone()
	m.fn = flow.NewNetwork(net.Vertices)
	m.inner = m.inner[:0]
	m.terminal = make([]int, net.Vertices+1)
	for i := range m.terminal {
		m.terminal[i] = -1
	}
	m.termVert, m.srcArcs, m.sinkArcs = nil, nil, nil

	term := func(v int) int {
		if m.terminal[v] < 0 {
			m.terminal[v] = len(m.termVert)
			m.termVert = append(m.termVert, v)
			m.srcArcs = append(m.srcArcs, nil)
			m.sinkArcs = append(m.sinkArcs, nil)
		}
		return m.terminal[v]
	}
	for i, a := range m.net.Arcs {
		if a.From < 1 || a.To < 1 || a.From > net.Vertices || a.To > net.Vertices || len(a.Caps) == 0 {
			return fmt.Errorf("%w: arc %d (%d→%d)", ErrInvalidNetwork, i, a.From, a.To)
		}
		switch {
		case a.From == net.Source && a.To != net.Sink && a.To != net.Source:
			t := term(a.To)
			m.srcArcs[t] = append(m.srcArcs[t], i)
		case a.To == net.Sink && a.From != net.Source && a.From != net.Sink:
			t := term(a.From)
			m.sinkArcs[t] = append(m.sinkArcs[t], i)
		default:
			id, err := m.fn.AddArc(a.From-1, a.To-1, 0)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
			}
			m.inner = append(m.inner, innerArc{desc: i, arc: id})
		}
	}

	k := len(m.termVert)
	m.srcCap = make([]float64, k)
	m.sinkCap = make([]float64, k)
	m.srcArc = make([]int, k)
	m.sinkArc = make([]int, k)
	for t, v := range m.termVert {
		m.srcArc[t], _ = m.fn.AddArc(net.Source-1, v-1, 0)
		m.sinkArc[t], _ = m.fn.AddArc(v-1, net.Sink-1, 0)
	}
	m.sinkSide = nil

	return nil
}

// Recreate parameterizes every arc for (lambda, c).
func (m *Memory) Recreate(elementCount int, lambda, c float64) error {
	if m.fn == nil {
		return &ProtocolError{Op: "Recreate", State: StateClosed}
	}
	m.lambda, m.c = lambda, c
	for _, ia := range m.inner {
		if err := m.fn.SetCapacity(ia.arc, m.net.Arcs[ia.desc].Capacity(lambda)); err != nil {
			return fmt.Errorf("mincut: recreate: %w", err)
		}
	}
	for t, v := range m.termVert {
		m.srcCap[t] = 0
		for range m.srcArcs[t] {
			if v <= elementCount {
				m.srcCap[t] += c
			} else {
				m.srcCap[t] += lambda
			}
		}
		m.sinkCap[t] = 0
		for _, i := range m.sinkArcs[t] {
			m.sinkCap[t] += m.net.Arcs[i].Capacity(lambda)
		}
	}
	m.sinkSide = nil

	return m.applyTerminals()
}

// ComputeCut runs the configured max-flow algorithm.
func (m *Memory) ComputeCut(ctx context.Context) error {
	if m.fn == nil {
		return &ProtocolError{Op: "ComputeCut", State: StateClosed}
	}
	res, err := m.alg(ctx, m.fn, m.net.Source-1, m.net.Sink-1, m.flowOpts)
	if err != nil {
		return fmt.Errorf("mincut: compute cut: %w", err)
	}
	m.cutValue = m.constant + res.MaxFlow
	m.sinkSide = make([]bool, m.net.Vertices+1)
	for v := 1; v <= m.net.Vertices; v++ {
		m.sinkSide[v] = !res.SourceSide[v-1]
	}

	return nil
}

// CutValue returns the last cut value (0 before any ComputeCut).
func (m *Memory) CutValue() float64 { return m.cutValue }

// CutSetSize counts cut-set element vertices and the remaining non-terminal ones.
func (m *Memory) CutSetSize(elementCount int) (elements, others int) {
	for v := 1; v < len(m.sinkSide); v++ {
		if !m.sinkSide[v] || v == m.net.Source || v == m.net.Sink {
			continue
		}
		if v <= elementCount {
			elements++
		} else {
			others++
		}
	}

	return elements, others
}

// CutSet fills dst with the cut-set membership of elements 1..elementCount.
func (m *Memory) CutSet(elementCount int, dst []bool) error {
	if len(dst) != elementCount {
		return fmt.Errorf("%w: len %d, element count %d", ErrBufferSize, len(dst), elementCount)
	}
	for i := range dst {
		v := i + 1
		dst[i] = v < len(m.sinkSide) && m.sinkSide[v] && v != m.net.Source && v != m.net.Sink
	}

	return nil
}

// UpdateSourceCapacities raises every source→element arc to c.
func (m *Memory) UpdateSourceCapacities(c float64, elementCount int) error {
	if m.fn == nil {
		return &ProtocolError{Op: "UpdateSourceCapacities", State: StateClosed}
	}
	if c < m.c-m.tolerance {
		return fmt.Errorf("%w: %g < %g", ErrCapacityDecrease, c, m.c)
	}
	for t, v := range m.termVert {
		if v > elementCount || len(m.srcArcs[t]) == 0 {
			continue
		}
		m.srcCap[t] = c * float64(len(m.srcArcs[t]))
	}
	m.c = c
	m.sinkSide = nil

	return m.applyTerminals()
}

// Release drops the network; the oracle may be re-initialized with Init.
func (m *Memory) Release() error {
	m.net, m.fn, m.sinkSide = nil, nil, nil

	return nil
}

// applyTerminals moves min(src, sink) of every vertex into the constant and
// writes the non-negative remainders to the terminal flow arcs.
func (m *Memory) applyTerminals() error {
	m.constant = 0
	for t := range m.termVert {
		a, b := m.srcCap[t], m.sinkCap[t]
		shared := math.Min(a, b)
		srcRest, sinkRest := a-shared, b-shared
		if math.IsInf(shared, 1) {
			srcRest, sinkRest = 0, 0
		}
		m.constant += shared
		if err := m.fn.SetCapacity(m.srcArc[t], srcRest); err != nil {
			return fmt.Errorf("mincut: source capacity: %w", err)
		}
		if err := m.fn.SetCapacity(m.sinkArc[t], sinkRest); err != nil {
			return fmt.Errorf("mincut: sink capacity: %w", err)
		}
	}

	return nil
}
