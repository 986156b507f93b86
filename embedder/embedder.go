// Package embedder orchestrates the full pipeline from a collection of
// elements and a dissimilarity Measure down to low-dimensional Euclidean
// coordinates: DirectEmbedder feeds pairwise measured distances straight
// into multidimensional scaling, while Isomap first builds a k-nearest-
// neighbor graph and substitutes graph geodesic distances.
package embedder

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/curveembed/measure"
	"github.com/katalvlaran/curveembed/mds"
)

// minDefaultLandmarks is the floor on the number of landmarks chosen
// automatically for landmark MDS.
const minDefaultLandmarks = 5

// Sentinel errors returned by Embedder configuration methods.
var (
	// ErrTooFewElements indicates fewer than two elements were supplied.
	ErrTooFewElements = errors.New("embedder: at least two elements are required")

	// ErrBadLandmarkCount indicates a landmark count outside [2, n].
	ErrBadLandmarkCount = errors.New("embedder: landmark count must be between 2 and the element count")

	// ErrBadDimension indicates a non-positive embedding dimension.
	ErrBadDimension = errors.New("embedder: dimension must be positive")
)

// RequiredDistances computes the distance matrix Embed needs:
// rows 0..startingPoints-1 (or however many rows the concrete embedder's
// distance semantics require) against every element. DirectEmbedder and
// Isomap each implement this differently.
type RequiredDistances interface {
	RequiredDistances(startingPoints int) ([][]float64, error)
}

// Base holds the state and orchestration common to every embedder:
// a fixed random permutation used so that "first L" elements serve as
// landmarks internally regardless of their original order, landmark
// count management, and the classical/landmark MDS dispatch.
type Base[T any] struct {
	elements     []T
	measure      measure.Measure[T]
	shuffle      []int // shuffle[i] = original index of internal position i
	unshuffle    []int // unshuffle[original] = internal position
	landmarks    int
	useLandmarks bool
}

// NewBase constructs the shared embedder state over elements, seeding
// its internal permutation deterministically from seed so repeated runs
// over the same input are reproducible.
func NewBase[T any](elements []T, m measure.Measure[T], seed int64) (*Base[T], error) {
	n := len(elements)
	if n < 2 {
		return nil, ErrTooFewElements
	}

	shuffle := make([]int, n)
	for i := range shuffle {
		shuffle[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n, func(i, j int) { shuffle[i], shuffle[j] = shuffle[j], shuffle[i] })

	unshuffle := make([]int, n)
	for i, orig := range shuffle {
		unshuffle[orig] = i
	}

	defaultLandmarks := minDefaultLandmarks
	if guess := int(2 * math.Sqrt(float64(n))); guess > defaultLandmarks {
		defaultLandmarks = guess
	}
	if defaultLandmarks > n {
		defaultLandmarks = n
	}

	return &Base[T]{
		elements:  elements,
		measure:   m,
		shuffle:   shuffle,
		unshuffle: unshuffle,
		landmarks: defaultLandmarks,
	}, nil
}

// N returns the number of elements being embedded.
func (b *Base[T]) N() int { return len(b.elements) }

// Element returns the internally-shuffled element at position i.
func (b *Base[T]) Element(i int) T { return b.elements[b.shuffle[i]] }

// Measure returns the configured dissimilarity measure.
func (b *Base[T]) Measure() measure.Measure[T] { return b.measure }

// SetLandmarkCount sets how many landmarks landmark MDS uses; must be
// between 2 and N().
func (b *Base[T]) SetLandmarkCount(landmarks int) error {
	if landmarks < 2 || landmarks > b.N() {
		return ErrBadLandmarkCount
	}
	b.landmarks = landmarks
	return nil
}

// LandmarkCount returns the currently configured landmark count.
func (b *Base[T]) LandmarkCount() int { return b.landmarks }

// UseLandmarks enables or disables landmark MDS; when disabled, Embed
// always uses classical MDS over the full distance matrix.
func (b *Base[T]) UseLandmarks(use bool) { b.useLandmarks = use }

// UsingLandmarks reports whether landmark MDS is currently enabled.
func (b *Base[T]) UsingLandmarks() bool { return b.useLandmarks }

// startingPoints returns how many rows of required distances the
// current configuration needs: LandmarkCount() when landmark MDS is in
// use, otherwise every element.
func (b *Base[T]) startingPoints() int {
	if b.useLandmarks {
		return b.landmarks
	}
	return b.N()
}

// Embed computes a dimension-dimensional embedding, dispatching to
// landmark or classical MDS as configured, then un-shuffling the result
// back into the caller's original element order.
func Embed[T any](b *Base[T], rd RequiredDistances, dimension int) ([][]float64, error) {
	if dimension <= 0 {
		return nil, ErrBadDimension
	}

	distances, err := rd.RequiredDistances(b.startingPoints())
	if err != nil {
		return nil, err
	}

	var internal [][]float64
	if b.useLandmarks {
		internal, err = mds.Landmark(distances, b.landmarks, dimension)
	} else {
		internal, err = mds.Classical(distances, dimension)
	}
	if err != nil {
		return nil, err
	}

	return b.unshuffleRows(internal), nil
}

// EmbeddingQuality computes the residual-variance quality metric of a
// previously computed embedding against the same required distances
// Embed would recompute.
func EmbeddingQuality[T any](b *Base[T], rd RequiredDistances, embedding [][]float64) (float64, error) {
	distances, err := rd.RequiredDistances(b.startingPoints())
	if err != nil {
		return 0, err
	}
	shuffled := b.shuffleRows(embedding)
	return mds.EmbeddingQuality(distances, shuffled)
}

func (b *Base[T]) unshuffleRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for internalIdx, row := range rows {
		out[b.shuffle[internalIdx]] = row
	}
	return out
}

func (b *Base[T]) shuffleRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for originalIdx, row := range rows {
		out[b.unshuffle[originalIdx]] = row
	}
	return out
}
