package frechet

import (
	"math"

	"github.com/katalvlaran/curveembed/polyline"
)

// Decider decides whether the continuous Fréchet distance between two
// polylines is at most a given eps. DecideTabular and DecidePath both
// satisfy this signature.
type Decider func(p, q *polyline.Polyline, eps float64) bool

// ApproximateContinuous estimates the continuous Fréchet distance
// between p and q to within precision, using the discrete Fréchet
// distance to bound the search interval and then bisecting with decider.
//
// precision must be positive. decider defaults to DecideTabular when nil.
func ApproximateContinuous(p, q *polyline.Polyline, precision float64, decider Decider) float64 {
	return ApproximateContinuousCapped(p, q, precision, decider, math.Inf(1))
}

// ApproximateContinuousCapped is ApproximateContinuous with an early-exit
// budget: once the search interval's lower bound already exceeds max,
// or a single decider call at max fails, it returns +Inf without
// running the full bisection. This lets a caller who only needs to know
// whether two curves are within max of each other skip the O(log) run
// of decider calls in the common case where they plainly are not.
//
// precision must be positive. decider defaults to DecideTabular when nil.
func ApproximateContinuousCapped(p, q *polyline.Polyline, precision float64, decider Decider, max float64) float64 {
	if decider == nil {
		decider = DecideTabular
	}

	discrete := Discrete(p, q)
	longest := p.LongestSegment()
	if q.LongestSegment() > longest {
		longest = q.LongestSegment()
	}

	lo := discrete - longest/2
	if lo < 0 {
		lo = 0
	}
	hi := discrete

	if hi < lo {
		return math.Inf(1)
	}
	if lo > max {
		// Even the loosest lower bound already exceeds the budget.
		return math.Inf(1)
	}
	if hi > max {
		// The usual upper bound overshoots the budget; a single decider
		// call at max settles whether the true distance stays within it.
		if !decider(p, q, max) {
			return math.Inf(1)
		}
		hi = max
	} else if !decider(p, q, hi) {
		// The discrete distance itself does not bound the continuous
		// distance from above for this pair; no finite answer to return.
		return math.Inf(1)
	}
	if decider(p, q, lo) {
		hi = lo
	}

	for (hi-lo)/2 > precision {
		mid := (lo + hi) / 2
		if decider(p, q, mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2
}
