package shortestpaths

import (
	"math"
	"runtime"
	"sync"

	"github.com/katalvlaran/curveembed/fibheap"
	"github.com/katalvlaran/curveembed/graph"
)

// floydWarshallVertexCutoff is the graph size above which Dijkstra is
// always preferred over Floyd-Warshall, regardless of how many sources
// are requested: dense O(n^3) relaxation stops paying off once n grows
// much past this, while sparse per-source Dijkstra scales with the
// number of sources actually needed.
const floydWarshallVertexCutoff = 210

// runner encapsulates the per-source state of a single Dijkstra run so
// that Dijkstra's outer parallel loop can spin up one runner per
// goroutine without shared mutable state.
type runner struct {
	g    *graph.WeightedGraph
	dist []float64
}

func newRunner(g *graph.WeightedGraph) *runner {
	dist := make([]float64, g.N())
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	return &runner{g: g, dist: dist}
}

func (r *runner) run(source int) []float64 {
	r.dist[source] = 0
	h := fibheap.New[int]()
	handles := make([]*fibheap.Entry[int], r.g.N())
	handles[source] = h.Enqueue(source, 0)

	settled := make([]bool, r.g.N())

	for h.Len() > 0 {
		u, du, _ := h.DequeueMin()
		if settled[u] {
			continue
		}
		settled[u] = true
		if du > r.dist[u] {
			continue
		}
		for _, v := range r.g.Neighbors(u) {
			if settled[v] {
				continue
			}
			w := r.g.Weight(u, v)
			alt := r.dist[u] + w
			if alt < r.dist[v] {
				r.dist[v] = alt
				if handles[v] == nil {
					handles[v] = h.Enqueue(v, alt)
				} else {
					h.DecreaseKey(handles[v], alt)
				}
			}
		}
	}
	return r.dist
}

// Dijkstra computes shortest-path distances from each of the first
// startingPoints vertex indices to every vertex in g, running one
// Fibonacci-heap-backed Dijkstra per source. Sources are processed
// concurrently, bounded by GOMAXPROCS, mirroring the bulk-synchronous
// parallel fan-out used elsewhere in this module.
func Dijkstra(g *graph.WeightedGraph, startingPoints int) [][]float64 {
	result := make([][]float64, startingPoints)

	sem := make(chan struct{}, semSize())
	var wg sync.WaitGroup
	for s := 0; s < startingPoints; s++ {
		s := s
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			result[s] = newRunner(g).run(s)
		}()
	}
	wg.Wait()
	return result
}

// AllPairs chooses between Dijkstra and FloydWarshall following the same
// cutoff the embedding pipeline uses elsewhere: Floyd-Warshall only when
// the graph has at most floydWarshallVertexCutoff vertices AND every
// vertex is a requested starting point; Dijkstra otherwise.
func AllPairs(g *graph.WeightedGraph, startingPoints int) [][]float64 {
	if g.N() > floydWarshallVertexCutoff || startingPoints < g.N() {
		return Dijkstra(g, startingPoints)
	}
	full := FloydWarshall(g)
	return full[:startingPoints]
}

func semSize() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}
