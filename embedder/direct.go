package embedder

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/curveembed/measure"
)

// DirectEmbedder embeds elements using the measure's own distance as the
// target dissimilarity, with no intermediate graph: RequiredDistances is
// simply the measure evaluated pairwise, computed once and cached.
type DirectEmbedder[T any] struct {
	base  *Base[T]
	cache [][]float64 // cache[i][j], i < startingPoints, full width
}

// NewDirectEmbedder constructs a DirectEmbedder over elements using m.
func NewDirectEmbedder[T any](elements []T, m measure.Measure[T], seed int64) (*DirectEmbedder[T], error) {
	base, err := NewBase(elements, m, seed)
	if err != nil {
		return nil, err
	}
	return &DirectEmbedder[T]{base: base}, nil
}

// Base returns the shared embedder state, for accessor methods such as
// SetLandmarkCount and UseLandmarks.
func (d *DirectEmbedder[T]) Base() *Base[T] { return d.base }

// Embed computes a dimension-dimensional embedding of every element.
func (d *DirectEmbedder[T]) Embed(dimension int) ([][]float64, error) {
	return Embed(d.base, d, dimension)
}

// EmbeddingQuality computes the residual-variance quality metric of a
// previously computed embedding.
func (d *DirectEmbedder[T]) EmbeddingQuality(embedding [][]float64) (float64, error) {
	return EmbeddingQuality(d.base, d, embedding)
}

// RequiredDistances returns the cached startingPoints×n distance matrix,
// growing the cache as needed. Rows beyond what is currently cached are
// computed in parallel, one goroutine per row, bounded by GOMAXPROCS; a
// request for fewer rows than are cached returns a prefix of the cache
// and keeps the rest, so repeated calls never recompute rows already
// done.
func (d *DirectEmbedder[T]) RequiredDistances(startingPoints int) ([][]float64, error) {
	n := d.base.N()
	if len(d.cache) >= startingPoints {
		return d.cache[:startingPoints], nil
	}

	newRows := make([][]float64, startingPoints)
	copy(newRows, d.cache)

	sem := make(chan struct{}, semSize())
	var wg sync.WaitGroup
	for i := len(d.cache); i < startingPoints; i++ {
		i := i
		row := make([]float64, n)
		newRows[i] = row
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				row[j] = d.base.measure.Distance(d.base.Element(i), d.base.Element(j))
			}
		}()
	}
	wg.Wait()

	d.cache = newRows
	return d.cache[:startingPoints], nil
}

func semSize() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}
