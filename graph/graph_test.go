package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeightedGraphRejectsBadCount(t *testing.T) {
	_, err := NewWeightedGraph(0)
	assert.ErrorIs(t, err, ErrBadVertexCount)
}

func TestAddEdgeIsSymmetric(t *testing.T) {
	g, err := NewWeightedGraph(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 2.5))
	assert.Equal(t, 2.5, g.Weight(0, 1))
	assert.Equal(t, 2.5, g.Weight(1, 0))
	assert.True(t, math.IsInf(g.Weight(0, 2), 1))
}

func TestSelfLoopMustBeZero(t *testing.T) {
	g, err := NewWeightedGraph(2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 0, 1), ErrLoopWeightNotZero)
	assert.NoError(t, g.AddEdge(0, 0, 0))
	assert.Equal(t, 0.0, g.Weight(0, 0))
}

func TestNegativeWeightRejected(t *testing.T) {
	g, err := NewWeightedGraph(2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 1, -1), ErrNegativeWeight)
}

func TestAddEdgeWithInfRemoves(t *testing.T) {
	g, err := NewWeightedGraph(2)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 1, math.Inf(1)))
	assert.True(t, math.IsInf(g.Weight(0, 1), 1))
}

func TestToMatrixIsSymmetricWithZeroDiagonal(t *testing.T) {
	g, err := NewWeightedGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))

	m := g.ToMatrix()
	assert.Equal(t, 0.0, m[0][0])
	assert.Equal(t, 4.0, m[0][1])
	assert.Equal(t, 4.0, m[1][0])
	assert.True(t, math.IsInf(m[0][2], 1))
}

func TestNeighbors(t *testing.T) {
	g, err := NewWeightedGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))

	got := g.Neighbors(0)
	assert.ElementsMatch(t, []int{1, 2}, got)
}

func TestVertexOutOfRange(t *testing.T) {
	g, err := NewWeightedGraph(2)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddEdge(0, 5, 1), ErrVertexOutOfRange)
}
