// SPDX-License-Identifier: MIT

package multilayer_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densim/multilayer"
)

func TestNewPairIsCanonical(t *testing.T) {
	require.Equal(t, multilayer.Pair{A: 2, B: 7}, multilayer.NewPair(7, 2))
	require.Equal(t, multilayer.NewPair(2, 7), multilayer.NewPair(7, 2))
	require.True(t, multilayer.NewPair(1, 9).Less(multilayer.NewPair(2, 3)))
	require.True(t, multilayer.NewPair(1, 3).Less(multilayer.NewPair(1, 4)))
}

func TestLayerSetAdd(t *testing.T) {
	var s multilayer.LayerSet
	for _, l := range []int{5, 1, 3, 1, 5} {
		s = s.Add(l)
	}
	require.Equal(t, multilayer.LayerSet{1, 3, 5}, s)
	require.True(t, s.Contains(3))
	require.False(t, s.Contains(2))
}

func TestJaccard(t *testing.T) {
	cases := []struct {
		a, b multilayer.LayerSet
		want float64
	}{
		{multilayer.LayerSet{0, 1}, multilayer.LayerSet{0}, 0.5},
		{multilayer.LayerSet{0}, multilayer.LayerSet{0}, 1},
		{multilayer.LayerSet{0, 1, 2}, multilayer.LayerSet{2, 3}, 0.25},
		{multilayer.LayerSet{0}, multilayer.LayerSet{1}, 0},
		{nil, nil, 0},
	}
	for _, c := range cases {
		require.InDelta(t, c.want, multilayer.Jaccard(c.a, c.b), 1e-12)
		require.InDelta(t, c.want, multilayer.Jaccard(c.b, c.a), 1e-12)
	}
}

func TestSharedEndpoints(t *testing.T) {
	require.Equal(t, 0, multilayer.EdgeElement(1, 2).SharedEndpoints(multilayer.EdgeElement(3, 4)))
	require.Equal(t, 1, multilayer.EdgeElement(1, 2).SharedEndpoints(multilayer.EdgeElement(2, 3)))
	require.Equal(t, 2, multilayer.EdgeElement(1, 2).SharedEndpoints(multilayer.EdgeElement(2, 1)))
	require.Equal(t, 1, multilayer.EdgeElement(1, 1).SharedEndpoints(multilayer.EdgeElement(1, 2)))
}

func TestParseMode(t *testing.T) {
	m, err := multilayer.ParseMode("Edges")
	require.NoError(t, err)
	require.Equal(t, multilayer.EdgeMode, m)

	m, err = multilayer.ParseMode("node")
	require.NoError(t, err)
	require.Equal(t, multilayer.NodeMode, m)

	_, err = multilayer.ParseMode("hyperedge")
	require.ErrorIs(t, err, multilayer.ErrUnknownMode)
}

// ExampleJaccard shows the layer overlap of an edge present in layers {0,1}
// against one present only in layer 0.
func ExampleJaccard() {
	fmt.Println(multilayer.Jaccard(multilayer.LayerSet{0, 1}, multilayer.LayerSet{0}))
	// Output:
	// 0.5
}
