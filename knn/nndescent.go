package knn

import (
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"github.com/katalvlaran/curveembed/measure"
)

// sampleRate is the fraction of each vertex's neighborhood sampled as
// "new" candidates in a local join round.
const sampleRate = 0.9

// terminationQuota stops NNDescent once fewer than
// terminationQuota*n*k updates occur in the most recent round.
const terminationQuota = 0.001

// candidate is one neighbor slot: index, current distance, and whether
// it was added since the last round (drives the new/old partition).
type candidate struct {
	index  int
	weight float64
	isNew  bool
}

// State incrementally builds an approximate k-nearest-neighbor graph by
// NN-descent, i.e. randomized local joins (Dong, Charikar & Li, "Efficient K-Nearest
// Neighbor Graph Construction for Generic Similarity Measures").
//
// A State can be reused across calls with different k: State.Build keeps
// its randomized neighborhood as a warm start and only recomputes when
// the requested k exceeds what has already converged.
type State[T any] struct {
	elements []T
	measure  measure.Measure[T]
	rng      *rand.Rand

	neighbors [][]candidate // per-vertex, size >= k once converged
}

// NewState constructs an NNDescent state over elements using m, seeded
// deterministically from seed for reproducibility.
func NewState[T any](elements []T, m measure.Measure[T], seed int64) *State[T] {
	return &State[T]{
		elements:  elements,
		measure:   m,
		rng:       rand.New(rand.NewSource(seed)),
		neighbors: make([][]candidate, len(elements)),
	}
}

// Build computes (or refines) the k-nearest-neighbor graph and returns
// it as an adjacency slice, nearest neighbor first.
func (s *State[T]) Build(k int) ([][]int, error) {
	if k < 1 {
		return nil, ErrBadK
	}
	n := len(s.elements)
	if n == 0 {
		return nil, nil
	}

	refine := true
	if s.neighbors[0] == nil {
		s.initializeNeighborhood(k)
	} else if len(s.neighbors[0]) < k {
		s.growNeighborhood(k)
	} else {
		// Already converged for at least k neighbors: only extract the top k.
		refine = false
	}

	sampleSize := int(math.Ceil(float64(k) * sampleRate))
	if sampleSize < 1 {
		sampleSize = 1
	}

	for refine {
		newSets := make([][]int, n)
		oldSets := make([][]int, n)
		for v := 0; v < n; v++ {
			newSets[v], oldSets[v] = s.partition(v, sampleSize)
		}

		reverseNew := reverse(newSets, n)
		reverseOld := reverse(oldSets, n)

		var updates int64
		var mu sync.Mutex
		var wg sync.WaitGroup
		sem := make(chan struct{}, semSize())

		for v := 0; v < n; v++ {
			v := v
			combinedNew := union(newSets[v], sampleFrom(reverseNew[v], sampleSize, s.rng))
			combinedOld := union(oldSets[v], sampleFrom(reverseOld[v], sampleSize, s.rng))

			wg.Add(1)
			sem <- struct{}{}
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				local := s.localJoin(v, combinedNew, combinedOld)
				if local > 0 {
					mu.Lock()
					updates += int64(local)
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		if float64(updates) < terminationQuota*float64(n)*float64(k) {
			break
		}
	}

	out := make([][]int, n)
	for v := 0; v < n; v++ {
		list := append([]candidate(nil), s.neighbors[v]...)
		sort.Slice(list, func(i, j int) bool { return list[i].weight < list[j].weight })
		if len(list) > k {
			list = list[:k]
		}
		ids := make([]int, len(list))
		for i, c := range list {
			ids[i] = c.index
		}
		out[v] = ids
	}
	return out, nil
}

// initializeNeighborhood seeds each vertex with k random distinct
// neighbors, all marked new, via a Fisher-Yates partial shuffle.
func (s *State[T]) initializeNeighborhood(k int) {
	n := len(s.elements)
	for v := 0; v < n; v++ {
		perm := make([]int, 0, n-1)
		for u := 0; u < n; u++ {
			if u != v {
				perm = append(perm, u)
			}
		}
		s.rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		limit := k
		if limit > len(perm) {
			limit = len(perm)
		}
		list := make([]candidate, limit)
		for i := 0; i < limit; i++ {
			u := perm[i]
			list[i] = candidate{index: u, weight: s.measure.Distance(s.elements[v], s.elements[u]), isNew: true}
		}
		s.neighbors[v] = list
	}
}

// growNeighborhood extends every vertex's neighbor list up to k by
// filling the gap with fresh random distinct candidates, marked new,
// leaving previously converged neighbors untouched. Used when Build is
// called again with a larger k than a prior call already converged.
func (s *State[T]) growNeighborhood(k int) {
	n := len(s.elements)
	for v := 0; v < n; v++ {
		need := k - len(s.neighbors[v])
		if need <= 0 {
			continue
		}

		present := make(map[int]bool, len(s.neighbors[v])+1)
		present[v] = true
		for _, c := range s.neighbors[v] {
			present[c.index] = true
		}

		perm := make([]int, 0, n-len(present))
		for u := 0; u < n; u++ {
			if !present[u] {
				perm = append(perm, u)
			}
		}
		s.rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		if need > len(perm) {
			need = len(perm)
		}
		for i := 0; i < need; i++ {
			u := perm[i]
			s.neighbors[v] = append(s.neighbors[v], candidate{
				index:  u,
				weight: s.measure.Distance(s.elements[v], s.elements[u]),
				isNew:  true,
			})
		}
	}
}

// partition splits vertex v's current neighborhood into a sampled subset
// of "new" candidates (marking them consumed) and the full "old" subset.
func (s *State[T]) partition(v, sampleSize int) (newIdx, oldIdx []int) {
	list := s.neighbors[v]
	var newAll []int
	for i := range list {
		if list[i].isNew {
			newAll = append(newAll, list[i].index)
		} else {
			oldIdx = append(oldIdx, list[i].index)
		}
	}
	newIdx = sampleFrom(newAll, sampleSize, s.rng)
	sampled := make(map[int]bool, len(newIdx))
	for _, idx := range newIdx {
		sampled[idx] = true
	}
	for i := range list {
		if list[i].isNew && sampled[list[i].index] {
			list[i].isNew = false
		}
	}
	return newIdx, oldIdx
}

// localJoin compares every pair drawn from combinedNew x combinedNew
// (with j<i to avoid duplicate work) and combinedNew x combinedOld,
// updating each side's neighbor list with tryUpdate. Returns the number
// of accepted updates.
func (s *State[T]) localJoin(v int, combinedNew, combinedOld []int) int {
	updates := 0
	for i, u1 := range combinedNew {
		for j, u2 := range combinedNew {
			if j >= i {
				continue
			}
			d := s.measure.DistanceCapped(s.elements[u1], s.elements[u2], s.worst(u1))
			if s.tryUpdate(u1, u2, d) {
				updates++
			}
			d2 := s.measure.DistanceCapped(s.elements[u2], s.elements[u1], s.worst(u2))
			if s.tryUpdate(u2, u1, d2) {
				updates++
			}
		}
		for _, u2 := range combinedOld {
			if u1 == u2 {
				continue
			}
			d := s.measure.DistanceCapped(s.elements[u1], s.elements[u2], s.worst(u1))
			if s.tryUpdate(u1, u2, d) {
				updates++
			}
			d2 := s.measure.DistanceCapped(s.elements[u2], s.elements[u1], s.worst(u2))
			if s.tryUpdate(u2, u1, d2) {
				updates++
			}
		}
	}
	_ = v
	return updates
}

func (s *State[T]) worst(v int) float64 {
	list := s.neighbors[v]
	if len(list) == 0 {
		return math.Inf(1)
	}
	w := list[0].weight
	for _, c := range list[1:] {
		if c.weight > w {
			w = c.weight
		}
	}
	return w
}

// tryUpdate replaces v's currently worst neighbor with u if d improves
// on it and u is not already a neighbor of v.
func (s *State[T]) tryUpdate(v, u int, d float64) bool {
	if v == u || math.IsInf(d, 1) {
		return false
	}
	list := s.neighbors[v]
	worstIdx, worstVal := -1, -1.0
	for i, c := range list {
		if c.index == u {
			return false
		}
		if worstIdx == -1 || c.weight > worstVal {
			worstIdx, worstVal = i, c.weight
		}
	}
	if worstIdx == -1 || d >= worstVal {
		return false
	}
	list[worstIdx] = candidate{index: u, weight: d, isNew: true}
	return true
}

func reverse(sets [][]int, n int) [][]int {
	rev := make([][]int, n)
	for v, list := range sets {
		for _, u := range list {
			rev[u] = append(rev[u], v)
		}
	}
	return rev
}

func union(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for _, x := range append(append([]int(nil), a...), b...) {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

func sampleFrom(list []int, size int, rng *rand.Rand) []int {
	if len(list) <= size {
		return append([]int(nil), list...)
	}
	shuffled := append([]int(nil), list...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:size]
}

func semSize() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}
