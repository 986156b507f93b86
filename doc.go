// Package curveembed computes low-dimensional Euclidean embeddings of
// polygonal curves under a Fréchet-distance-family dissimilarity measure,
// via classical multidimensional scaling or Isomap.
//
// What is curveembed?
//
//	A thread-safe, gonum-backed library that brings together:
//		• Polylines: fixed-dimension vertex sequences with corner and
//		  segment-length queries
//		• Dissimilarity measures: discrete Fréchet, integral discrete
//		  Fréchet, and continuous Fréchet decision/approximation, all
//		  behind one Measure[T] contract
//		• Nearest neighbors: exact brute force and randomized NNDescent
//		• Graphs: an index-vertexed weighted graph, connected-component
//		  detection, and Kruskal-style component bridging
//		• Shortest paths: parallel Dijkstra (Fibonacci-heap-backed) and
//		  Floyd-Warshall, selected automatically by graph size
//		• Scaling: classical and landmark multidimensional scaling, plus a
//		  residual-variance embedding-quality metric
//		• Embedders: DirectEmbedder (measured distances straight into MDS)
//		  and Isomap (k-NN graph geodesics into MDS)
//
// Why choose curveembed?
//
//   - Minimal API surface: construct an embedder over your elements and a
//     Measure, call Embed
//   - Rock-solid guarantees: R/W locks around the graph, deterministic
//     seeded randomization in NNDescent and the embedders' landmark
//     permutation
//   - Pure Go plus gonum for the numerical core: no reimplemented
//     eigensolver
//
// Under the hood, everything is organized under focused subpackages:
//
//	polyline/      — curve representation and vertex geometry
//	measure/       — the Measure[T] contract and its Direct/Interruption adapters
//	frechet/       — the discrete, integral discrete, and continuous Fréchet family
//	graph/         — WeightedGraph
//	knn/           — BruteForce and NNDescent nearest-neighbor graphs
//	components/    — connected components and component-bridging
//	fibheap/       — the Fibonacci heap backing Dijkstra
//	shortestpaths/ — Dijkstra and Floyd-Warshall all-pairs shortest paths
//	mds/           — classical MDS, landmark MDS, and embedding quality
//	embedder/      — DirectEmbedder and Isomap orchestration
//
//	go get github.com/katalvlaran/curveembed
package curveembed
