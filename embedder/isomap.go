package embedder

import (
	"errors"

	"github.com/katalvlaran/curveembed/components"
	"github.com/katalvlaran/curveembed/graph"
	"github.com/katalvlaran/curveembed/knn"
	"github.com/katalvlaran/curveembed/measure"
	"github.com/katalvlaran/curveembed/shortestpaths"
)

// defaultNeighbors is the nearest-neighbor count Isomap uses until
// SetNearestNeighborCount is called explicitly.
const defaultNeighbors = 10

// ErrBadNeighborCount indicates a nearest-neighbor count outside [1, n-1].
var ErrBadNeighborCount = errors.New("embedder: nearest neighbor count must be between 1 and n-1")

// Isomap embeds elements by substituting graph geodesic distances for the
// measure's own distance: it builds a k-nearest-neighbor graph, bridges
// any disconnected components with the cheapest edge the measure can
// find, then runs all-pairs shortest paths and feeds the result to
// multidimensional scaling in place of direct measured distances.
type Isomap[T any] struct {
	base *Base[T]
	k    int

	descent *knn.State[T] // warm-started across SetNearestNeighborCount calls
	g       *graph.WeightedGraph
	cache   [][]float64 // geodesic distances, startingPoints x n
	dirty   bool        // true when the graph needs rebuilding from descent
}

// NewIsomap constructs an Isomap embedder over elements using m, with an
// initial nearest-neighbor count of defaultNeighbors.
func NewIsomap[T any](elements []T, m measure.Measure[T], seed int64) (*Isomap[T], error) {
	base, err := NewBase(elements, m, seed)
	if err != nil {
		return nil, err
	}
	k := defaultNeighbors
	if k > base.N()-1 {
		k = base.N() - 1
	}
	return &Isomap[T]{
		base:    base,
		k:       k,
		descent: knn.NewState(shuffledElements(base), m, seed),
		dirty:   true,
	}, nil
}

// shuffledElements materializes base's internally-permuted element order
// as a plain slice, since knn.State operates on positional indices that
// must agree with Base's internal permutation.
func shuffledElements[T any](base *Base[T]) []T {
	out := make([]T, base.N())
	for i := range out {
		out[i] = base.Element(i)
	}
	return out
}

// Base returns the shared embedder state, for accessor methods such as
// SetLandmarkCount and UseLandmarks.
func (iso *Isomap[T]) Base() *Base[T] { return iso.base }

// NearestNeighborCount returns the currently configured k.
func (iso *Isomap[T]) NearestNeighborCount() int { return iso.k }

// SetNearestNeighborCount changes k, invalidating the cached geodesic
// distance matrix and neighbor graph while preserving the underlying
// NNDescent state so a subsequent rebuild warm-starts from the previous
// neighborhood rather than randomizing from scratch.
func (iso *Isomap[T]) SetNearestNeighborCount(k int) error {
	if k < 1 || k > iso.base.N()-1 {
		return ErrBadNeighborCount
	}
	iso.k = k
	iso.g = nil
	iso.cache = nil
	iso.dirty = true
	return nil
}

// Embed computes a dimension-dimensional embedding of every element.
func (iso *Isomap[T]) Embed(dimension int) ([][]float64, error) {
	return Embed(iso.base, iso, dimension)
}

// EmbeddingQuality computes the residual-variance quality metric of a
// previously computed embedding.
func (iso *Isomap[T]) EmbeddingQuality(embedding [][]float64) (float64, error) {
	return EmbeddingQuality(iso.base, iso, embedding)
}

// RequiredDistances returns the startingPoints×n geodesic distance
// matrix, rebuilding the neighbor graph first if the neighbor count
// changed since the last call.
func (iso *Isomap[T]) RequiredDistances(startingPoints int) ([][]float64, error) {
	if iso.dirty {
		if err := iso.rebuildGraph(); err != nil {
			return nil, err
		}
	}
	if len(iso.cache) >= startingPoints {
		return iso.cache[:startingPoints], nil
	}

	full := shortestpaths.AllPairs(iso.g, startingPoints)
	iso.cache = full
	return iso.cache[:startingPoints], nil
}

// rebuildGraph reconstructs the neighbor graph from the NNDescent state,
// symmetrizing k-NN edges and bridging any disconnected components with
// the cheapest cross-component edge the measure can find.
func (iso *Isomap[T]) rebuildGraph() error {
	n := iso.base.N()
	neighbors, err := iso.descent.Build(iso.k)
	if err != nil {
		return err
	}

	g, err := graph.NewWeightedGraph(n)
	if err != nil {
		return err
	}
	elements := shuffledElements(iso.base)
	for u, list := range neighbors {
		for _, v := range list {
			if u == v {
				continue
			}
			w := iso.base.measure.Distance(elements[u], elements[v])
			if err := g.AddEdge(u, v, w); err != nil {
				return err
			}
		}
	}

	if _, err := components.Connect(g, elements, iso.base.measure); err != nil {
		return err
	}

	iso.g = g
	iso.cache = nil
	iso.dirty = false
	return nil
}
