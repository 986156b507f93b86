package mds

import "math"

// landmarkEigenvalueSkip is the threshold below which a landmark
// eigenvalue's contribution to the projection of non-landmark rows is
// treated as zero rather than divided into (which would otherwise blow
// up numerically for near-degenerate landmark configurations).
const landmarkEigenvalueSkip = 0.01

// Landmark computes an embedding of `total` elements into `dimension`
// dimensions given only the distances from each element to `landmarks`
// designated landmark elements (rows 0..landmarks-1 of distances hold
// landmark-to-everyone distances; distances must be `landmarks` rows by
// `total` columns). It runs classical MDS on the landmarks-by-landmarks
// submatrix, then projects every other row using the pseudo-inverse
// projection described by de Silva & Tenenbaum's Landmark MDS.
func Landmark(distances [][]float64, landmarks, dimension int) ([][]float64, error) {
	if landmarks < 2 {
		return nil, ErrTooFewLandmarks
	}
	if len(distances) != landmarks {
		return nil, ErrNotSquare
	}
	total := len(distances[0])
	if total < landmarks {
		return nil, ErrTooManyLandmarks
	}
	if dimension <= 0 || dimension > landmarks {
		return nil, ErrBadDimension
	}

	landmarkSquare := make([][]float64, landmarks)
	for i := range landmarkSquare {
		landmarkSquare[i] = make([]float64, landmarks)
		copy(landmarkSquare[i], distances[i][:landmarks])
	}

	landmarkCoords, err := Classical(landmarkSquare, dimension)
	if err != nil {
		return nil, err
	}

	eigenvalues, eigenvectors, err := classicalSpectrum(landmarkSquare, dimension)
	if err != nil {
		return nil, err
	}

	// Per-landmark-column mean of squared distances, needed to center
	// the non-landmark rows the same way the landmark submatrix was
	// double-centered.
	colMeanSquared := make([]float64, landmarks)
	for l := 0; l < landmarks; l++ {
		sum := 0.0
		for k := 0; k < landmarks; k++ {
			sum += landmarkSquare[l][k] * landmarkSquare[l][k]
		}
		colMeanSquared[l] = sum / float64(landmarks)
	}

	output := make([][]float64, total)
	for i := 0; i < landmarks; i++ {
		output[i] = landmarkCoords[i]
	}

	for i := landmarks; i < total; i++ {
		row := make([]float64, dimension)
		sqDist := make([]float64, landmarks)
		for l := 0; l < landmarks; l++ {
			sqDist[l] = distances[l][i] * distances[l][i]
		}
		for d := 0; d < dimension; d++ {
			lambda := eigenvalues[d]
			if lambda < landmarkEigenvalueSkip {
				continue // treat this axis's contribution as zero
			}
			sum := 0.0
			for l := 0; l < landmarks; l++ {
				sum += eigenvectors[l][d] * (colMeanSquared[l] - sqDist[l])
			}
			row[d] = sum / (2 * math.Sqrt(lambda))
		}
		output[i] = row
	}

	return output, nil
}

// classicalSpectrum re-derives the top-`dimension` eigenvalues and
// (unscaled) eigenvectors of the double-centered landmark matrix, needed
// by Landmark's projection step in addition to the scaled coordinates
// Classical itself returns.
func classicalSpectrum(distances [][]float64, dimension int) (values []float64, vectors [][]float64, err error) {
	b := doubleCenter(distances)
	return eigenSymTopK(b, dimension)
}
