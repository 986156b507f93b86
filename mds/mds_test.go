package mds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareDistances builds the exact pairwise Euclidean distance matrix
// for a set of points, used as ground truth for MDS reconstruction.
func squareDistances(points [][]float64) [][]float64 {
	n := len(points)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			d[i][j] = euclidean(points[i], points[j])
		}
	}
	return d
}

func TestClassicalRejectsNonSquare(t *testing.T) {
	_, err := Classical([][]float64{{0, 1}}, 1)
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestClassicalRejectsBadDimension(t *testing.T) {
	d := squareDistances([][]float64{{0, 0}, {1, 0}, {0, 1}})
	_, err := Classical(d, 0)
	assert.ErrorIs(t, err, ErrBadDimension)
}

func TestClassicalReconstructsPlanarPoints(t *testing.T) {
	points := [][]float64{{0, 0}, {3, 0}, {0, 4}, {3, 4}}
	d := squareDistances(points)

	coords, err := Classical(d, 2)
	require.NoError(t, err)

	got := squareDistances(coords)
	for i := range d {
		for j := range d[i] {
			assert.InDelta(t, d[i][j], got[i][j], 1e-6)
		}
	}
}

func TestLandmarkRejectsTooFewLandmarks(t *testing.T) {
	_, err := Landmark([][]float64{{0, 1}}, 1, 1)
	assert.ErrorIs(t, err, ErrTooFewLandmarks)
}

func TestLandmarkRejectsMoreLandmarksThanElements(t *testing.T) {
	// 2 landmark rows, but each row only covers 1 total element: wider
	// than it is high.
	_, err := Landmark([][]float64{{0}, {1}}, 2, 1)
	assert.ErrorIs(t, err, ErrTooManyLandmarks)
}

func TestLandmarkApproximatesClassicalOnFullLandmarkSet(t *testing.T) {
	points := [][]float64{{0, 0}, {3, 0}, {0, 4}, {3, 4}}
	full := squareDistances(points)

	// All points as landmarks: landmark distances is landmarks x total,
	// here landmarks == total.
	coords, err := Landmark(full, len(points), 2)
	require.NoError(t, err)
	require.Len(t, coords, len(points))

	got := squareDistances(coords)
	for i := range full {
		for j := range full[i] {
			assert.InDelta(t, full[i][j], got[i][j], 1e-6)
		}
	}
}

func TestResidualVarianceZeroForIdenticalMatrices(t *testing.T) {
	m := [][]float64{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}}
	rv, err := ResidualVariance(m, m)
	require.NoError(t, err)
	assert.InDelta(t, 0, rv, 1e-9)
}

func TestResidualVarianceDimensionMismatch(t *testing.T) {
	_, err := ResidualVariance([][]float64{{0, 1}}, [][]float64{{0, 1}, {1, 0}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestEmbeddingQualityIsLowForGoodEmbedding(t *testing.T) {
	points := [][]float64{{0, 0}, {3, 0}, {0, 4}, {3, 4}}
	d := squareDistances(points)

	coords, err := Classical(d, 2)
	require.NoError(t, err)

	quality, err := EmbeddingQuality(d, coords)
	require.NoError(t, err)
	assert.Less(t, quality, 0.01)
	assert.False(t, math.IsNaN(quality))
}
