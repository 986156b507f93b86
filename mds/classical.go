// Package mds implements classical and landmark multidimensional
// scaling over a matrix of pairwise (typically geodesic) distances, plus
// a residual-variance quality metric for judging how well a
// lower-dimensional embedding preserves those distances.
//
// Eigendecomposition is delegated to gonum.org/v1/gonum/mat's EigenSym,
// the ecosystem's standard tool for this exact numerical step (see the
// grounding ledger in DESIGN.md); this package does not reimplement
// Jacobi rotations or any other eigensolver.
package mds

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Classical and Landmark.
var (
	// ErrNotSquare indicates a distance matrix that is not square.
	ErrNotSquare = errors.New("mds: distance matrix must be square")

	// ErrBadDimension indicates dimension <= 0 or dimension > matrix size.
	ErrBadDimension = errors.New("mds: dimension out of range")

	// ErrTooFewLandmarks indicates fewer than 2 landmark rows were supplied.
	ErrTooFewLandmarks = errors.New("mds: at least two landmarks are required")

	// ErrTooManyLandmarks indicates a distance matrix wider than it is
	// high: more landmark columns than total elements.
	ErrTooManyLandmarks = errors.New("mds: landmark count cannot exceed the total element count")
)

// eigenvalueFloor is the threshold below which classical MDS treats an
// eigenvalue as zero rather than as a (numerically noisy) negative or
// near-zero contribution.
const eigenvalueFloor = 0.0

// Classical computes a dimension-dimensional Euclidean embedding of a
// symmetric n×n distance matrix via double-centering and top-dimension
// eigendecomposition. Coordinates are returned as an n×dimension slice,
// row i holding the embedding of element i.
func Classical(distances [][]float64, dimension int) ([][]float64, error) {
	n := len(distances)
	if n == 0 || len(distances[0]) != n {
		return nil, ErrNotSquare
	}
	if dimension <= 0 || dimension > n {
		return nil, ErrBadDimension
	}

	b := doubleCenter(distances)
	values, vectors, err := eigenSymTopK(b, dimension)
	if err != nil {
		return nil, err
	}
	for i, lambda := range values {
		values[i] = thresholdEigenvalue(lambda)
	}

	coords := make([][]float64, n)
	for i := range coords {
		coords[i] = make([]float64, dimension)
	}
	for d := 0; d < dimension; d++ {
		scale := math.Sqrt(values[d])
		for i := 0; i < n; i++ {
			coords[i][d] = vectors[i][d] * scale
		}
	}
	return coords, nil
}

// thresholdEigenvalue treats a numerically noisy negative eigenvalue as
// exactly zero, matching classical MDS's usual convention.
func thresholdEigenvalue(lambda float64) float64 {
	if lambda < eigenvalueFloor {
		return 0
	}
	return lambda
}

// eigenSymTopK returns the top-k eigenvalues (descending) and their
// corresponding (unscaled) eigenvectors of symmetric matrix b, via
// gonum's EigenSym.
func eigenSymTopK(b [][]float64, k int) (values []float64, vectors [][]float64, err error) {
	n := len(b)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, b[i][j])
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, nil, errors.New("mds: eigendecomposition failed to converge")
	}

	rawValues := eig.Values(nil)
	var rawVectors mat.Dense
	eig.VectorsTo(&rawVectors)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sortDescending(order, rawValues)

	if k > n {
		k = n
	}
	values = make([]float64, k)
	vectors = make([][]float64, n)
	for i := range vectors {
		vectors[i] = make([]float64, k)
	}
	for d := 0; d < k; d++ {
		idx := order[d]
		values[d] = rawValues[idx]
		for i := 0; i < n; i++ {
			vectors[i][d] = rawVectors.At(i, idx)
		}
	}
	return values, vectors, nil
}

// doubleCenter builds B = -1/2 * J * D2 * J where D2 is the elementwise
// square of distances and J is the centering matrix I - 1/n * ones.
func doubleCenter(distances [][]float64) [][]float64 {
	n := len(distances)
	d2 := make([][]float64, n)
	for i := range d2 {
		d2[i] = make([]float64, n)
		for j := range d2[i] {
			d2[i][j] = distances[i][j] * distances[i][j]
		}
	}

	rowMean := make([]float64, n)
	colMean := make([]float64, n)
	grandMean := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rowMean[i] += d2[i][j]
			colMean[j] += d2[i][j]
			grandMean += d2[i][j]
		}
	}
	for i := 0; i < n; i++ {
		rowMean[i] /= float64(n)
		colMean[i] /= float64(n)
	}
	grandMean /= float64(n * n)

	b := make([][]float64, n)
	for i := range b {
		b[i] = make([]float64, n)
		for j := range b[i] {
			b[i][j] = -0.5 * (d2[i][j] - rowMean[i] - colMean[j] + grandMean)
		}
	}
	return b
}

func sortDescending(order []int, values []float64) {
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && values[order[j]] > values[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
}
