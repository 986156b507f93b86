// Package components finds connected components of a graph.WeightedGraph
// via iterative depth-first search, and reconnects a disconnected graph
// into one component by adding the cheapest bridging edges the supplied
// measure can find, in the manner of Kruskal's minimum spanning tree
// applied to a graph of components rather than a graph of vertices.
package components

import (
	"math"
	"sort"

	"github.com/katalvlaran/curveembed/graph"
	"github.com/katalvlaran/curveembed/measure"
)

// Components holds the connected components of a graph, sorted
// descending by size.
type Components struct {
	parts [][]int
}

// Find computes the connected components of g via iterative DFS,
// returning them sorted from largest to smallest.
func Find(g *graph.WeightedGraph) *Components {
	n := g.N()
	visited := make([]bool, n)
	var parts [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		var part []int
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			part = append(part, v)
			for _, u := range g.Neighbors(v) {
				if !visited[u] {
					visited[u] = true
					stack = append(stack, u)
				}
			}
		}
		parts = append(parts, part)
	}

	sort.Slice(parts, func(i, j int) bool { return len(parts[i]) > len(parts[j]) })
	return &Components{parts: parts}
}

// Count returns the number of connected components.
func (c *Components) Count() int { return len(c.parts) }

// IsConnected reports whether the graph has exactly one component.
func (c *Components) IsConnected() bool { return len(c.parts) == 1 }

// MainComponent returns the largest component's vertex indices.
func (c *Components) MainComponent() []int { return c.parts[0] }

// All returns every component's vertex indices, largest first.
func (c *Components) All() [][]int { return c.parts }

// Connect reconnects g into a single component: for every pair of
// distinct components it finds the cheapest cross-component edge under m
// (scanning vertex pairs, using DistanceCapped against the best distance
// found so far to prune), then runs Kruskal's algorithm over that
// complete graph of components, adding to g only the edges the MST
// selects. It returns the number of edges added.
func Connect[T any](g *graph.WeightedGraph, elements []T, m measure.Measure[T]) (int, error) {
	comps := Find(g)
	if comps.IsConnected() {
		return 0, nil
	}

	type bridge struct {
		a, b   int // component indices
		u, v   int // vertex indices
		weight float64
	}

	var bridges []bridge
	for a := 0; a < len(comps.parts); a++ {
		for b := a + 1; b < len(comps.parts); b++ {
			best := bridge{a: a, b: b, weight: posInf}
			for _, u := range comps.parts[a] {
				for _, v := range comps.parts[b] {
					d := m.DistanceCapped(elements[u], elements[v], best.weight)
					if d < best.weight {
						best = bridge{a: a, b: b, u: u, v: v, weight: d}
					}
				}
			}
			bridges = append(bridges, best)
		}
	}

	sort.Slice(bridges, func(i, j int) bool { return bridges[i].weight < bridges[j].weight })

	parent := make([]int, len(comps.parts))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	added := 0
	for _, br := range bridges {
		ra, rb := find(br.a), find(br.b)
		if ra == rb {
			continue
		}
		if err := g.AddEdge(br.u, br.v, br.weight); err != nil {
			return added, err
		}
		parent[ra] = rb
		added++
	}
	return added, nil
}

var posInf = math.Inf(1)
