package components

import (
	"math"
	"testing"

	"github.com/katalvlaran/curveembed/graph"
	"github.com/katalvlaran/curveembed/measure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineMeasure() measure.Measure[float64] {
	return measure.Direct[float64]{DistanceFunc: func(a, b float64) float64 { return math.Abs(a - b) }}
}

func TestFindSingleComponent(t *testing.T) {
	g, err := graph.NewWeightedGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	c := Find(g)
	assert.True(t, c.IsConnected())
	assert.Equal(t, 1, c.Count())
}

func TestFindMultipleComponentsSortedBySize(t *testing.T) {
	g, err := graph.NewWeightedGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))

	c := Find(g)
	require.Equal(t, 2, c.Count())
	assert.Len(t, c.MainComponent(), 3)
	assert.Len(t, c.All()[1], 2)
}

func TestConnectBridgesComponents(t *testing.T) {
	g, err := graph.NewWeightedGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	elements := []float64{0, 1, 10, 11}
	added, err := Connect(g, elements, lineMeasure())
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	c := Find(g)
	assert.True(t, c.IsConnected())
}

func TestConnectNoopWhenAlreadyConnected(t *testing.T) {
	g, err := graph.NewWeightedGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	added, err := Connect(g, []float64{0, 1}, lineMeasure())
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}
