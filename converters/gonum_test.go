package converters_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvroute/converters"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/mapdata"
)

func TestToGonum_Romania(t *testing.T) {
	g, err := mapdata.Romania()
	require.NoError(t, err)

	gg, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), gg.Nodes().Len())

	arad, ok := gg.NodeID("Arad")
	require.True(t, ok)
	assert.Equal(t, "Arad", gg.Name(arad))
	_, ok = gg.NodeID("Atlantis")
	assert.False(t, ok)
	assert.Equal(t, "", gg.Name(-1))

	path, cost, err := gg.ShortestPath("Arad", "Bucharest")
	require.NoError(t, err)
	assert.EqualValues(t, 418, cost)
	assert.Equal(t, []string{"Arad", "Sibiu", "Rimnicu Vilcea", "Pitesti", "Bucharest"}, path)

	_, _, err = gg.ShortestPath("Atlantis", "Arad")
	require.ErrorIs(t, err, converters.ErrUnknownVertex)
}

func TestToGonum_KeepsCheapestParallelEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	_, _ = g.AddEdge("A", "B", 9)
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("A", "A", 1)
	require.NoError(t, g.AddVertex("C"))

	gg, err := converters.ToGonum(g)
	require.NoError(t, err)

	a, _ := gg.NodeID("A")
	b, _ := gg.NodeID("B")
	w, ok := gg.Weight(a, b)
	require.True(t, ok)
	assert.Equal(t, 4.0, w)
	_, ok = gg.Weight(b, a)
	assert.False(t, ok, "directed arcs stay one-way")

	path, cost, err := gg.ShortestPath("A", "C")
	require.NoError(t, err)
	assert.Nil(t, path)
	assert.EqualValues(t, math.MaxInt64, cost)
}

func TestToGonum_NilGraph(t *testing.T) {
	_, err := converters.ToGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)
}

func TestFromGonum(t *testing.T) {
	src := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(0), simple.Node(1), 3))
	src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(1), simple.Node(2), 0))
	src.AddNode(simple.Node(7))

	g, err := converters.FromGonum(src, false, nil)
	require.NoError(t, err)
	assert.False(t, g.Directed())
	assert.Equal(t, []string{"0", "1", "2", "7"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())

	w, err := g.Weight("1", "0")
	require.NoError(t, err)
	assert.EqualValues(t, 3, w)
	w, err = g.Weight("2", "1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, w)
}

func TestFromGonum_RoundTripKeepsNames(t *testing.T) {
	g, err := mapdata.Romania()
	require.NoError(t, err)
	gg, err := converters.ToGonum(g)
	require.NoError(t, err)

	back, err := converters.FromGonum(gg, true, gg.Name)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())

	w, err := back.Weight("Pitesti", "Bucharest")
	require.NoError(t, err)
	assert.EqualValues(t, 101, w)
}

func TestFromGonum_Errors(t *testing.T) {
	_, err := converters.FromGonum(nil, true, nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)

	for name, w := range map[string]float64{
		"fraction": 1.5,
		"negative": -2,
	} {
		t.Run(name, func(t *testing.T) {
			src := simple.NewWeightedDirectedGraph(0, math.Inf(1))
			src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(0), simple.Node(1), w))

			_, err := converters.FromGonum(src, true, nil)
			require.ErrorIs(t, err, converters.ErrBadWeight)
		})
	}
}
