package knn

import (
	"math"
	"testing"

	"github.com/katalvlaran/curveembed/measure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func euclideanMeasure() measure.Measure[[]float64] {
	return measure.Direct[[]float64]{DistanceFunc: func(a, b []float64) float64 {
		sum := 0.0
		for i := range a {
			d := a[i] - b[i]
			sum += d * d
		}
		return math.Sqrt(sum)
	}}
}

func linePoints(n int) [][]float64 {
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = []float64{float64(i)}
	}
	return pts
}

func TestBruteForceRejectsBadK(t *testing.T) {
	_, err := BruteForce(linePoints(3), 0, euclideanMeasure())
	assert.ErrorIs(t, err, ErrBadK)
}

func TestBruteForceFindsNearestOnLine(t *testing.T) {
	pts := linePoints(10)
	result, err := BruteForce(pts, 2, euclideanMeasure())
	require.NoError(t, err)

	// Vertex 5's two nearest neighbors on a unit-spaced line are 4 and 6.
	assert.ElementsMatch(t, []int{4, 6}, result[5])
}

func TestBruteForceBoundaryVertex(t *testing.T) {
	pts := linePoints(10)
	result, err := BruteForce(pts, 2, euclideanMeasure())
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{1, 2}, result[0])
}

func TestNNDescentConvergesOnLine(t *testing.T) {
	pts := linePoints(30)
	state := NewState(pts, euclideanMeasure(), 42)
	result, err := state.Build(3)
	require.NoError(t, err)
	require.Len(t, result, 30)

	for _, id := range result[15] {
		assert.LessOrEqual(t, abs(id-15), 3)
	}
}

func TestNNDescentWarmStartOnIncreasedK(t *testing.T) {
	pts := linePoints(30)
	state := NewState(pts, euclideanMeasure(), 7)

	small, err := state.Build(2)
	require.NoError(t, err)

	result, err := state.Build(5)
	require.NoError(t, err)
	assert.Len(t, result[10], 5)

	// A true warm start refines rather than discards: every vertex's
	// converged k=2 neighbors are close enough on a line that they must
	// still appear among its k=5 neighbors.
	for v, prior := range small {
		assert.Subset(t, result[v], prior)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
