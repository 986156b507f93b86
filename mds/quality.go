package mds

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrDimensionMismatch indicates the required-distance matrix and the
// embedding-derived distance matrix have incompatible shapes.
var ErrDimensionMismatch = errors.New("mds: distance matrices have mismatched dimensions")

// EmbeddingDistances computes the rows×cols Euclidean distance matrix
// between embedding[0:rows] and embedding[0:cols]. Classical MDS quality
// uses rows == cols == the full element count; landmark MDS quality uses
// rows == the landmark count against cols == the full element count, so
// the result pairs row-for-row with a landmarks×n required-distance
// matrix instead of forcing it into a square shape.
func EmbeddingDistances(embedding [][]float64, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			if i == j {
				continue
			}
			out[i][j] = euclidean(embedding[i], embedding[j])
		}
	}
	return out
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ResidualVariance computes 1 - r^2, where r is the Pearson correlation
// coefficient between the flattened entries of a and b. Lower values
// indicate a and b's distance structures agree more closely; a value of
// 0 means the embedding perfectly preserves pairwise distances (up to a
// linear relationship).
func ResidualVariance(a, b [][]float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var flatA, flatB []float64
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return 0, ErrDimensionMismatch
		}
		flatA = append(flatA, a[i]...)
		flatB = append(flatB, b[i]...)
	}
	r := stat.Correlation(flatA, flatB, nil)
	return 1 - r*r, nil
}

// EmbeddingQuality computes ResidualVariance between requiredDistances
// and the distances implied by embedding, matching requiredDistances'
// shape exactly (its row count may be fewer than embedding's, as when
// requiredDistances comes from landmark MDS).
func EmbeddingQuality(requiredDistances [][]float64, embedding [][]float64) (float64, error) {
	rows := len(requiredDistances)
	width := 0
	if rows > 0 {
		width = len(requiredDistances[0])
	}
	derived := EmbeddingDistances(embedding, rows, width)
	return ResidualVariance(requiredDistances, derived)
}
