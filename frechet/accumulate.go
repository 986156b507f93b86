// Package frechet implements the discrete Fréchet distance family, the
// free-space diagram used by the continuous Fréchet decision problem,
// two decider strategies (tabular and path-search), and a bisection-based
// ε-approximation of the continuous Fréchet distance.
//
// Discrete and IntegralDiscrete share a single rolling two-row dynamic
// program parameterized over how adjacent cell costs are combined
// (Accumulate); only the combination rule differs between them.
//
// Complexity:
//
//	Discrete / IntegralDiscrete: O(n·m) time, O(min(n,m)) space.
//	Tabular decider:             O(n·m) time, O(n·m) space.
//	Path decider:                O(n·m) worst case, typically far less.
//	ApproximateContinuous:       O(log((max-min)/precision)) decider calls.
package frechet

import "github.com/katalvlaran/curveembed/polyline"

// Accumulate combines the cost of a cell's local distance with the best
// of its reachable neighbors' accumulated costs. Discrete uses math.Max;
// IntegralDiscrete uses addition.
type Accumulate func(accumulated, local float64) float64

// discreteFrechet runs the rolling two-row DP shared by Discrete and
// IntegralDiscrete. accumulate combines a neighbor's running value with
// the current cell's local distance.
func discreteFrechet(p, q *polyline.Polyline, accumulate Accumulate) float64 {
	if q.Len() > p.Len() {
		// The distance is symmetric; keep the rows as short as the shorter curve.
		p, q = q, p
	}
	n, m := p.Len(), q.Len()

	lastRow := make([]float64, m)
	currentRow := make([]float64, m)

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			local := p.CornerDistance(q, i, j)

			var best float64
			switch {
			case i == 0 && j == 0:
				best = local
			case i == 0:
				best = accumulate(currentRow[j-1], local)
			case j == 0:
				best = accumulate(lastRow[j], local)
			default:
				best = min3(lastRow[j], lastRow[j-1], currentRow[j-1])
				best = accumulate(best, local)
			}
			currentRow[j] = best
		}
		lastRow, currentRow = currentRow, lastRow
	}

	return lastRow[m-1]
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// Discrete computes the discrete Fréchet distance between p and q: the
// minimum, over all monotone pairings of vertices, of the maximum
// pairwise corner distance along the pairing.
func Discrete(p, q *polyline.Polyline) float64 {
	return discreteFrechet(p, q, func(acc, local float64) float64 {
		if local > acc {
			return local
		}
		return acc
	})
}

// IntegralDiscrete computes the integral discrete Fréchet distance: like
// Discrete but accumulates the sum of pairwise corner distances along the
// pairing rather than the maximum.
func IntegralDiscrete(p, q *polyline.Polyline) float64 {
	return discreteFrechet(p, q, func(acc, local float64) float64 {
		return acc + local
	})
}
