// SPDX-License-Identifier: MIT

package metagraph_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/densim/metagraph"
	"github.com/katalvlaran/densim/multilayer"
	"github.com/katalvlaran/densim/similarity"
)

const scenarioA = "0 1 2\n1 1 2\n0 3 4\n"

func build(t require.TestingT, input string, mode multilayer.Mode) (*multilayer.Graph, *similarity.Index) {
	g, err := multilayer.Load(strings.NewReader(input), mode)
	require.NoError(t, err)
	x, err := similarity.Compute(g)
	require.NoError(t, err)

	return g, x
}

type MetagraphSuite struct {
	suite.Suite
}

func TestMetagraphSuite(t *testing.T) {
	suite.Run(t, new(MetagraphSuite))
}

// TestParametricScenarioA pins the exact DIMACS text of the scenario A network.
func (s *MetagraphSuite) TestParametricScenarioA() {
	g, x := build(s.T(), scenarioA, multilayer.EdgeMode)
	net, err := metagraph.BuildParametric(g, x, 0.5, -2)
	require.NoError(s.T(), err)

	require.Equal(s.T(), 8, net.Vertices)
	require.Equal(s.T(), 7, net.Source)
	require.Equal(s.T(), 8, net.Sink)
	require.Equal(s.T(), 2, net.ElementCount)
	require.Equal(s.T(), 4, net.NodeCount)
	require.InDelta(s.T(), 1.0, net.Total(0.5), 1e-12)

	var buf bytes.Buffer
	require.NoError(s.T(), metagraph.WriteDIMACS(&buf, net))
	want := strings.Join([]string{
		"c densim kind parametric",
		"c densim mode edge",
		"c densim elements 2",
		"c densim nodes 4",
		"p par-max 8 14",
		"n 7 s",
		"n 8 t",
		"a 1 2 0.25",
		"a 2 1 0.25",
		"a 7 1 -2",
		"a 1 8 0.25",
		"a 3 1 1.79769e+308",
		"a 4 1 1.79769e+308",
		"a 7 2 -2",
		"a 2 8 0.25",
		"a 5 2 1.79769e+308",
		"a 6 2 1.79769e+308",
		"a 7 3 0.5",
		"a 7 4 0.5",
		"a 7 5 0.5",
		"a 7 6 0.5",
	}, "\n") + "\n"
	require.Equal(s.T(), want, buf.String())
}

// TestParametricSelfLoop checks that a self-loop edge is tied to its node once.
func (s *MetagraphSuite) TestParametricSelfLoop() {
	g, x := build(s.T(), "0 5 5\n0 5 6\n", multilayer.EdgeMode)
	net, err := metagraph.BuildParametric(g, x, 1, 0)
	require.NoError(s.T(), err)

	infinite := 0
	for _, a := range net.Arcs {
		if a.To == 1 && math.IsInf(a.Caps[0], 1) {
			infinite++
		}
	}
	require.Equal(s.T(), 1, infinite)
}

// TestParametricRejectsNodeMode checks the mode guard.
func (s *MetagraphSuite) TestParametricRejectsNodeMode() {
	g, x := build(s.T(), scenarioA, multilayer.NodeMode)
	_, err := metagraph.BuildParametric(g, x, 1, 0)
	require.ErrorIs(s.T(), err, metagraph.ErrModeMismatch)
}

// TestBaselineDensity checks the two-component arcs of the node-mode baseline.
func (s *MetagraphSuite) TestBaselineDensity() {
	_, x := build(s.T(), scenarioA, multilayer.NodeMode)
	net, err := metagraph.BuildBaseline(x, 0)
	require.NoError(s.T(), err)

	require.Equal(s.T(), metagraph.Baseline, net.Kind)
	require.Equal(s.T(), 6, net.Vertices)
	require.Len(s.T(), net.Arcs, 2*len(x.Pairs())+2*4)

	// Pair (1,2) is linked and fully similar; (1,3) is only half similar.
	require.Equal(s.T(), metagraph.Arc{From: 1, To: 2, Caps: []float64{0.5, 0.5}}, net.Arcs[0])
	require.Equal(s.T(), metagraph.Arc{From: 2, To: 1, Caps: []float64{0.5, 0.5}}, net.Arcs[1])
	require.Equal(s.T(), metagraph.Arc{From: 1, To: 3, Caps: []float64{0, 0.25}}, net.Arcs[2])

	// Density baseline: primary = link, secondary = similarity.
	require.InDelta(s.T(), x.TotalLink(), net.Totals[0], 1e-12)
	require.InDelta(s.T(), x.TotalSimilarity(), net.Totals[1], 1e-12)
	require.InDelta(s.T(), x.TotalLink()+2*x.TotalSimilarity(), net.Total(2), 1e-12)
	require.InDelta(s.T(), 2*0.25, net.Arcs[2].Capacity(2), 1e-12)
}

// TestBaselineSimilaritySwapsComponents checks the edge-mode baseline order.
func (s *MetagraphSuite) TestBaselineSimilaritySwapsComponents() {
	_, x := build(s.T(), "0 1 2\n0 2 3\n1 2 3\n", multilayer.EdgeMode)
	net, err := metagraph.BuildBaseline(x, 0)
	require.NoError(s.T(), err)

	// Edges (1,2) and (2,3) share node 2 and layer 0 out of {0,1}.
	require.Equal(s.T(), []float64{0.25, 0.5}, net.Arcs[0].Caps)
	require.InDelta(s.T(), x.TotalSimilarity(), net.Totals[0], 1e-12)
}

// TestDIMACSRoundTrip checks that reading then writing reproduces the file.
func (s *MetagraphSuite) TestDIMACSRoundTrip() {
	for _, mode := range []multilayer.Mode{multilayer.EdgeMode, multilayer.NodeMode} {
		g, x := build(s.T(), "0 1 2\n1 1 2\n0 2 3\n2 3 4\n2 4 1\n", mode)
		var net *metagraph.Network
		var err error
		if mode == multilayer.EdgeMode {
			net, err = metagraph.BuildParametric(g, x, 0.125, -1.5)
		} else {
			net, err = metagraph.BuildBaseline(x, 0)
		}
		require.NoError(s.T(), err)

		var first bytes.Buffer
		require.NoError(s.T(), metagraph.WriteDIMACS(&first, net))
		back, err := metagraph.ReadDIMACS(bytes.NewReader(first.Bytes()))
		require.NoError(s.T(), err)
		require.Equal(s.T(), net.Kind, back.Kind)
		require.Equal(s.T(), net.ElementCount, back.ElementCount)
		require.InDelta(s.T(), net.Totals[0], back.Totals[0], 1e-12)

		var second bytes.Buffer
		require.NoError(s.T(), metagraph.WriteDIMACS(&second, back))
		require.Equal(s.T(), first.String(), second.String())
	}
}

// TestReadWithoutMetadata checks inference from a bare DIMACS file.
func (s *MetagraphSuite) TestReadWithoutMetadata() {
	bare := "p par-max 4 4\nn 3 s\nn 4 t\na 3 1 0 0\na 3 2 0 0\na 1 4 0.5 0.25\na 2 4 0.5 0.25\n"
	net, err := metagraph.ReadDIMACS(strings.NewReader(bare))
	require.NoError(s.T(), err)
	require.Equal(s.T(), metagraph.Baseline, net.Kind)
	require.Equal(s.T(), 2, net.ElementCount)
	require.InDelta(s.T(), 2.0, net.Totals[0], 1e-12)
	require.InDelta(s.T(), 1.0, net.Totals[1], 1e-12)
}

// TestReadRejectsMalformed checks the ErrMalformedNetwork sentinel.
func (s *MetagraphSuite) TestReadRejectsMalformed() {
	cases := map[string]string{
		"arc before header": "a 1 2 3\n",
		"count mismatch":    "p par-max 3 2\nn 2 s\nn 3 t\na 2 1 1\n",
		"bad capacity":      "p par-max 3 1\nn 2 s\nn 3 t\na 2 1 x\n",
		"out of range":      "p par-max 3 1\nn 2 s\nn 3 t\na 2 9 1\n",
		"no terminals":      "p par-max 3 1\na 2 1 1\n",
		"unknown line":      "p par-max 3 0\nq\n",
	}
	for name, text := range cases {
		_, err := metagraph.ReadDIMACS(strings.NewReader(text))
		require.ErrorIs(s.T(), err, metagraph.ErrMalformedNetwork, name)
	}
}

func TestInfinityRoundTrip(t *testing.T) {
	text := "p par-max 3 1\nn 2 s\nn 3 t\na 2 1 1.79769e+308\n"
	net, err := metagraph.ReadDIMACS(strings.NewReader(text))
	require.NoError(t, err)
	require.True(t, math.IsInf(net.Arcs[0].Caps[0], 1))
}
