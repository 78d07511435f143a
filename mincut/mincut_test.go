// SPDX-License-Identifier: MIT

package mincut_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/densim/flow"
	"github.com/katalvlaran/densim/metagraph"
	"github.com/katalvlaran/densim/mincut"
	"github.com/katalvlaran/densim/multilayer"
	"github.com/katalvlaran/densim/similarity"
)

// parametric builds the edge-mode network of a random small layered graph.
func parametric(t require.TestingT, seed int64) (*multilayer.Graph, *metagraph.Network) {
	rng := rand.New(rand.NewSource(seed))
	var b strings.Builder
	for i := 0; i < 7; i++ {
		u, v := rng.Intn(5), rng.Intn(5)
		fmt.Fprintf(&b, "%d %d %d\n", rng.Intn(3), u, v)
	}
	g, err := multilayer.Load(strings.NewReader(b.String()), multilayer.EdgeMode)
	require.NoError(t, err)
	x, err := similarity.Compute(g)
	require.NoError(t, err)
	net, err := metagraph.BuildParametric(g, x, 0, 0)
	require.NoError(t, err)

	return g, net
}

// bruteForceCut enumerates every sink side T of the non-terminal vertices
// and returns the minimum cut value under the oracle's parameterization.
func bruteForceCut(net *metagraph.Network, elementCount int, lambda, c float64) float64 {
	var inner []int
	for v := 1; v <= net.Vertices; v++ {
		if v != net.Source && v != net.Sink {
			inner = append(inner, v)
		}
	}
	best := math.Inf(1)
	sinkSide := make([]bool, net.Vertices+1)
	for mask := 0; mask < 1<<len(inner); mask++ {
		for i, v := range inner {
			sinkSide[v] = mask&(1<<i) != 0
		}
		sinkSide[net.Source], sinkSide[net.Sink] = false, true
		var cut float64
		for _, a := range net.Arcs {
			if sinkSide[a.From] || !sinkSide[a.To] {
				continue
			}
			switch {
			case a.From == net.Source && a.To <= elementCount:
				cut += c
			case a.From == net.Source:
				cut += lambda
			default:
				cut += a.Capacity(lambda)
			}
		}
		best = math.Min(best, cut)
	}

	return best
}

type MemorySuite struct {
	suite.Suite
	ctx context.Context
}

func (s *MemorySuite) SetupTest() { s.ctx = context.Background() }

func TestMemorySuite(t *testing.T) {
	suite.Run(t, new(MemorySuite))
}

// TestNegativeSourceCapacity checks terminal normalization on a single element.
func (s *MemorySuite) TestNegativeSourceCapacity() {
	net := &metagraph.Network{
		Vertices: 3, Source: 2, Sink: 3, ElementCount: 1,
		Arcs: []metagraph.Arc{{From: 2, To: 1, Caps: []float64{0}}, {From: 1, To: 3, Caps: []float64{0.5}}},
	}
	m := mincut.NewMemory()
	require.NoError(s.T(), m.Init(net))
	require.NoError(s.T(), m.Recreate(1, 0, -1))
	require.NoError(s.T(), m.ComputeCut(s.ctx))
	require.Equal(s.T(), -1.0, m.CutValue())

	set := make([]bool, 1)
	require.NoError(s.T(), m.CutSet(1, set))
	require.Equal(s.T(), []bool{true}, set)

	require.NoError(s.T(), m.UpdateSourceCapacities(2, 1))
	require.NoError(s.T(), m.ComputeCut(s.ctx))
	require.Equal(s.T(), 0.5, m.CutValue())
	require.NoError(s.T(), m.CutSet(1, set))
	require.Equal(s.T(), []bool{false}, set)
}

// TestMatchesBruteForce compares the oracle with exhaustive enumeration for
// both flow algorithms and several (lambda, c) settings.
func (s *MemorySuite) TestMatchesBruteForce() {
	for seed := int64(1); seed <= 6; seed++ {
		g, net := parametric(s.T(), seed)
		e := g.Len()
		for _, alg := range []flow.Algorithm{flow.Dinic, flow.EdmondsKarp} {
			m := mincut.NewMemory(mincut.WithAlgorithm(alg))
			require.NoError(s.T(), m.Init(net))
			for _, p := range []struct{ lambda, c float64 }{{0, 0}, {0.1, -0.5}, {0.3, 0.2}, {2, -3}} {
				require.NoError(s.T(), m.Recreate(e, p.lambda, p.c))
				require.NoError(s.T(), m.ComputeCut(s.ctx))
				want := bruteForceCut(net, e, p.lambda, p.c)
				require.InDelta(s.T(), want, m.CutValue(), 1e-9, "seed %d %+v", seed, p)
			}
			require.NoError(s.T(), m.Release())
		}
	}
}

// TestCutSetIsSubgraph checks that a selected edge always comes with both
// endpoints and that the gap identity Q = sim_in − c·|E| − λ·|N| holds.
func (s *MemorySuite) TestCutSetIsSubgraph() {
	g, net := parametric(s.T(), 3)
	x, err := similarity.Compute(g)
	require.NoError(s.T(), err)
	e := g.Len()
	const lambda, c = 0.05, 0.1

	m := mincut.NewMemory()
	require.NoError(s.T(), m.Init(net))
	require.NoError(s.T(), m.Recreate(e, lambda, c))
	require.NoError(s.T(), m.ComputeCut(s.ctx))

	set := make([]bool, e)
	require.NoError(s.T(), m.CutSet(e, set))
	fe, fn := m.CutSetSize(e)

	nodes := map[int64]bool{}
	var simIn float64
	count := 0
	for i, in := range set {
		if !in {
			continue
		}
		count++
		el, _ := g.Element(multilayer.ElementID(i + 1))
		nodes[el.U], nodes[el.V] = true, true
		for j := i + 1; j < e; j++ {
			if set[j] {
				simIn += x.Similarity(multilayer.ElementID(i+1), multilayer.ElementID(j+1))
			}
		}
	}
	require.Equal(s.T(), count, fe)
	require.GreaterOrEqual(s.T(), fn, len(nodes))

	q := -m.CutValue() + 0.5*net.Total(lambda)
	require.InDelta(s.T(), simIn-c*float64(fe)-lambda*float64(fn), q, 1e-9)
}

// TestTwoComponentRecreate checks primary + mu·secondary on a baseline network.
func (s *MemorySuite) TestTwoComponentRecreate() {
	net := &metagraph.Network{
		Kind: metagraph.Baseline, Vertices: 3, Source: 2, Sink: 3, ElementCount: 1,
		Arcs: []metagraph.Arc{
			{From: 2, To: 1, Caps: []float64{0, 0}},
			{From: 1, To: 3, Caps: []float64{1, 0.5}},
		},
	}
	m := mincut.NewMemory()
	require.NoError(s.T(), m.Init(net))
	require.NoError(s.T(), m.Recreate(1, 4, 10))
	require.NoError(s.T(), m.ComputeCut(s.ctx))
	require.Equal(s.T(), 3.0, m.CutValue()) // min(c=10, 1 + 4·0.5)
}

// TestErrors covers capacity decreases, buffer sizes and release.
func (s *MemorySuite) TestErrors() {
	_, net := parametric(s.T(), 2)
	m := mincut.NewMemory()
	require.NoError(s.T(), m.Init(net))
	require.NoError(s.T(), m.Recreate(net.ElementCount, 1, 0.5))
	require.ErrorIs(s.T(), m.UpdateSourceCapacities(0.1, net.ElementCount), mincut.ErrCapacityDecrease)
	require.ErrorIs(s.T(), m.CutSet(net.ElementCount, make([]bool, net.ElementCount+1)), mincut.ErrBufferSize)

	require.NoError(s.T(), m.Release())
	require.ErrorIs(s.T(), m.ComputeCut(s.ctx), mincut.ErrProtocol)
	require.ErrorIs(s.T(), m.Init(&metagraph.Network{Vertices: 2, Source: 1, Sink: 1}), mincut.ErrInvalidNetwork)
}

// countingOracle wraps an Oracle and counts Release calls.
type countingOracle struct {
	mincut.Oracle
	releases int
}

func (c *countingOracle) Release() error {
	c.releases++
	return c.Oracle.Release()
}

type SessionSuite struct {
	suite.Suite
	ctx    context.Context
	net    *metagraph.Network
	oracle *countingOracle
	sess   *mincut.Session
}

func (s *SessionSuite) SetupTest() {
	s.ctx = context.Background()
	_, s.net = parametric(s.T(), 4)
	s.oracle = &countingOracle{Oracle: mincut.NewMemory()}
	var err error
	s.sess, err = mincut.Open(s.oracle, s.net)
	require.NoError(s.T(), err)
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

// TestProtocolOrder checks that queries require a computed cut.
func (s *SessionSuite) TestProtocolOrder() {
	ev, err := s.sess.Begin(s.net.ElementCount, 0.1, 0)
	require.NoError(s.T(), err)

	_, err = ev.CutValue()
	var pe *mincut.ProtocolError
	require.ErrorAs(s.T(), err, &pe)
	require.Equal(s.T(), mincut.StateReady, pe.State)
	require.ErrorIs(s.T(), err, mincut.ErrProtocol)

	require.NoError(s.T(), ev.ComputeCut(s.ctx))
	_, err = ev.CutValue()
	require.NoError(s.T(), err)
	_, _, err = ev.CutSetSize()
	require.NoError(s.T(), err)
	require.ErrorIs(s.T(), ev.CutSet(make([]bool, 1+s.net.ElementCount)), mincut.ErrBufferSize)
	require.NoError(s.T(), ev.CutSet(make([]bool, s.net.ElementCount)))

	require.NoError(s.T(), ev.UpdateSourceCapacities(1))
	require.Equal(s.T(), mincut.StateReady, ev.State())
	_, _, err = ev.CutSetSize()
	require.ErrorIs(s.T(), err, mincut.ErrProtocol)

	ev.Done()
	ev.Done()
	require.ErrorIs(s.T(), ev.ComputeCut(s.ctx), mincut.ErrProtocol)
	require.NoError(s.T(), s.sess.Close())
}

// TestCloseOnce checks idempotent Close and Begin after Close.
func (s *SessionSuite) TestCloseOnce() {
	require.NoError(s.T(), s.sess.Close())
	require.NoError(s.T(), s.sess.Close())
	require.Equal(s.T(), 1, s.oracle.releases)

	_, err := s.sess.Begin(s.net.ElementCount, 0, 0)
	var pe *mincut.ProtocolError
	require.ErrorAs(s.T(), err, &pe)
	require.Equal(s.T(), mincut.StateClosed, pe.State)
}

// TestBeginSerializes checks that a second evaluation waits for Done.
func (s *SessionSuite) TestBeginSerializes() {
	first, err := s.sess.Begin(s.net.ElementCount, 0, 0)
	require.NoError(s.T(), err)

	started := make(chan *mincut.Evaluation)
	go func() {
		ev, err := s.sess.Begin(s.net.ElementCount, 1, 0)
		if err != nil {
			close(started)
			return
		}
		started <- ev
	}()

	select {
	case <-started:
		s.T().Fatal("second Begin returned while the first evaluation was active")
	case <-time.After(50 * time.Millisecond):
	}
	first.Done()

	second, ok := <-started
	require.True(s.T(), ok)
	second.Done()
	require.NoError(s.T(), s.sess.Close())
}
