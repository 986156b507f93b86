// Package shortestpaths computes all-pairs shortest paths over a
// graph.WeightedGraph, choosing between a parallel per-source Dijkstra
// (Fibonacci-heap backed) and dense Floyd-Warshall depending on graph
// size and how many sources are requested.
package shortestpaths

import "github.com/katalvlaran/curveembed/graph"

// FloydWarshall computes the dense n×n shortest-path matrix via the
// classical triple-nested-loop relaxation, operating directly on the
// matrix returned by g.ToMatrix. O(n^3) time, O(n^2) space.
func FloydWarshall(g *graph.WeightedGraph) [][]float64 {
	dist := g.ToMatrix()
	n := len(dist)

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := dist[i][k]
			for j := 0; j < n; j++ {
				if via := dik + dist[k][j]; via < dist[i][j] {
					dist[i][j] = via
				}
			}
		}
	}
	return dist
}
