package shortestpaths

import (
	"math"
	"testing"

	"github.com/katalvlaran/curveembed/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainGraph(t *testing.T, n int) *graph.WeightedGraph {
	t.Helper()
	g, err := graph.NewWeightedGraph(n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}
	return g
}

func TestFloydWarshallOnChain(t *testing.T) {
	g := chainGraph(t, 5)
	dist := FloydWarshall(g)
	assert.Equal(t, 4.0, dist[0][4])
	assert.Equal(t, 2.0, dist[1][3])
	assert.Equal(t, 0.0, dist[2][2])
}

func TestDijkstraMatchesFloydWarshallOnChain(t *testing.T) {
	g := chainGraph(t, 6)
	dij := Dijkstra(g, g.N())
	fw := FloydWarshall(g)

	for i := 0; i < g.N(); i++ {
		for j := 0; j < g.N(); j++ {
			assert.InDelta(t, fw[i][j], dij[i][j], 1e-9)
		}
	}
}

func TestDijkstraUnreachableIsInf(t *testing.T) {
	g, err := graph.NewWeightedGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	dist := Dijkstra(g, 3)
	assert.True(t, math.IsInf(dist[0][2], 1))
}

func TestAllPairsUsesFloydWarshallForSmallFullGraphs(t *testing.T) {
	g := chainGraph(t, 5)
	// startingPoints == n and n <= cutoff: should equal FloydWarshall exactly.
	got := AllPairs(g, g.N())
	want := FloydWarshall(g)
	for i := range want {
		assert.InDeltaSlice(t, want[i], got[i], 1e-9)
	}
}

func TestAllPairsUsesDijkstraForPartialStartingPoints(t *testing.T) {
	g := chainGraph(t, 5)
	got := AllPairs(g, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, 4.0, got[0][4])
}
