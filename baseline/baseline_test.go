// SPDX-License-Identifier: MIT

package baseline_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/densim/baseline"
	"github.com/katalvlaran/densim/metagraph"
	"github.com/katalvlaran/densim/mincut"
	"github.com/katalvlaran/densim/multilayer"
	"github.com/katalvlaran/densim/similarity"
	"github.com/katalvlaran/densim/tradeoff"
)

// Edges (1,2) in layers {0,1}, (2,3) in {0}, (1,3) in {1}:
// sim(12,23) = sim(12,13) = 0.5, sim(23,13) = 0.
const pathTriangle = "0 1 2\n1 1 2\n0 2 3\n1 1 3\n"

func load(t require.TestingT, input string, mode multilayer.Mode) (*multilayer.Graph, *similarity.Index) {
	g, err := multilayer.Load(strings.NewReader(input), mode)
	require.NoError(t, err)
	x, err := similarity.Compute(g)
	require.NoError(t, err)

	return g, x
}

type EvaluatorSuite struct {
	suite.Suite
	ev *baseline.Evaluator
}

func (s *EvaluatorSuite) SetupTest() {
	g, x := load(s.T(), pathTriangle, multilayer.EdgeMode)
	ev, err := baseline.NewEvaluator(g, x)
	require.NoError(s.T(), err)
	s.ev = ev
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorSuite))
}

func (s *EvaluatorSuite) TestInducedEdges() {
	nodes := []multilayer.Element{
		multilayer.NodeElement(1), multilayer.NodeElement(2), multilayer.NodeElement(3),
	}
	sim, den, err := s.ev.Evaluate(baseline.Density, nodes)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 1.0/3, sim, 1e-12)
	require.InDelta(s.T(), 1.0, den, 1e-12)

	sim, den, err = s.ev.Evaluate(baseline.Density, nodes[:2])
	require.NoError(s.T(), err)
	require.Zero(s.T(), sim)
	require.InDelta(s.T(), 0.5, den, 1e-12)
}

func (s *EvaluatorSuite) TestCoveredNodes() {
	edges := []multilayer.Element{multilayer.EdgeElement(2, 1), multilayer.EdgeElement(2, 3)}
	sim, den, err := s.ev.Evaluate(baseline.Similarity, edges)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.25, sim, 1e-12)
	require.InDelta(s.T(), 2.0/3, den, 1e-12)
}

func (s *EvaluatorSuite) TestEmptyPairSet() {
	_, _, err := s.ev.Evaluate(baseline.Density, []multilayer.Element{multilayer.NodeElement(1)})
	require.ErrorIs(s.T(), err, baseline.ErrEmptyPairSet)
	_, _, err = s.ev.Evaluate(baseline.Similarity, nil)
	require.ErrorIs(s.T(), err, baseline.ErrEmptyPairSet)
	_, _, err = s.ev.Evaluate(baseline.Similarity, []multilayer.Element{multilayer.EdgeElement(7, 8)})
	require.ErrorIs(s.T(), err, baseline.ErrEmptyPairSet)
}

func TestNewEvaluatorNeedsEdgeMode(t *testing.T) {
	g, x := load(t, pathTriangle, multilayer.NodeMode)
	_, err := baseline.NewEvaluator(g, x)
	require.ErrorIs(t, err, baseline.ErrInvalidOption)
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]baseline.Kind{
		"similarity": baseline.Similarity, "BLSim": baseline.Similarity,
		"density": baseline.Density, " blden ": baseline.Density,
	} {
		got, err := baseline.ParseKind(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := baseline.ParseKind("pareto")
	require.ErrorIs(t, err, baseline.ErrUnknownKind)
	require.Equal(t, multilayer.NodeMode, baseline.Density.Mode())
	require.Equal(t, "similarity", baseline.Similarity.String())
}

// halfway selects edges 1 and 2 below mu = 5 and nothing from there on.
type halfway struct{ mus []float64 }

func (h *halfway) SolveBaseline(_ context.Context, mu float64) (tradeoff.Solution, error) {
	h.mus = append(h.mus, mu)
	sol := tradeoff.Solution{Lambda: mu, Converged: true, Iterations: 2}
	if mu < 5 {
		sol.Selected = []multilayer.ElementID{1, 2}
	}

	return sol, nil
}

func TestSweepGridAndEmptyPoints(t *testing.T) {
	g, x := load(t, pathTriangle, multilayer.EdgeMode)
	ev, err := baseline.NewEvaluator(g, x)
	require.NoError(t, err)
	h := &halfway{}
	sw, err := baseline.NewSweep(h, g, baseline.Similarity, ev, baseline.DefaultOptions())
	require.NoError(t, err)

	points, err := sw.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, points, 101)
	require.Equal(t, sw.Grid(), h.mus)
	require.Equal(t, 0.0, h.mus[0])
	require.InDelta(t, 5.0, h.mus[50], 1e-12)
	require.Equal(t, 10.0, h.mus[100])

	require.False(t, points[0].Empty)
	require.InDelta(t, 0.25, points[0].Similarity, 1e-12)
	require.Equal(t, []multilayer.Element{{U: 1, V: 2}, {U: 2, V: 3}}, points[0].Selected)
	require.True(t, points[100].Empty)
	require.Zero(t, points[100].Density)
}

func TestNewSweepValidates(t *testing.T) {
	g, x := load(t, pathTriangle, multilayer.EdgeMode)
	ev, err := baseline.NewEvaluator(g, x)
	require.NoError(t, err)

	_, err = baseline.NewSweep(&halfway{}, g, baseline.Density, ev, baseline.DefaultOptions())
	require.ErrorIs(t, err, baseline.ErrInvalidOption)
	_, err = baseline.NewSweep(&halfway{}, g, baseline.Similarity, ev, baseline.Options{MaxMu: 1, Points: 1})
	require.ErrorIs(t, err, baseline.ErrInvalidOption)
	_, err = baseline.NewSweep(&halfway{}, g, baseline.Similarity, ev, baseline.Options{MaxMu: 0, Points: 3})
	require.ErrorIs(t, err, baseline.ErrInvalidOption)
}

// TestBaselinesEndToEnd runs both baselines through the in-memory oracle.
// Every weight selects the whole triangle.
func TestBaselinesEndToEnd(t *testing.T) {
	edges, ex := load(t, pathTriangle, multilayer.EdgeMode)
	ev, err := baseline.NewEvaluator(edges, ex)
	require.NoError(t, err)

	for _, kind := range []baseline.Kind{baseline.Similarity, baseline.Density} {
		g, x := edges, ex
		if kind == baseline.Density {
			g, x = load(t, pathTriangle, multilayer.NodeMode)
		}
		net, err := metagraph.BuildBaseline(x, 0)
		require.NoError(t, err)
		sess, err := mincut.Open(mincut.NewMemory(), net)
		require.NoError(t, err)
		solver, err := tradeoff.NewSolver(sess)
		require.NoError(t, err)
		sw, err := baseline.NewSweep(solver, g, kind, ev, baseline.Options{MaxMu: 10, Points: 11})
		require.NoError(t, err)

		points, err := sw.Run(context.Background())
		require.NoError(t, err, kind)
		require.Len(t, points, 11)
		for _, p := range points {
			require.True(t, p.Converged, "%s mu=%g", kind, p.Mu)
			require.Len(t, p.Selected, 3, "%s mu=%g", kind, p.Mu)
			require.InDelta(t, 1.0/3, p.Similarity, 1e-9)
			require.InDelta(t, 1.0, p.Density, 1e-9)
		}
		require.NoError(t, sess.Close())
	}
}
