// Package measure defines the dissimilarity-measure contract shared by
// the Fréchet family and the embedding pipeline, plus two adapters that
// derive one method of the contract from the other.
//
// A Measure[T] computes a symmetric, non-negative dissimilarity between
// two elements of type T. Capped evaluation lets callers bound the cost
// of computing a distance they only intend to compare against a
// threshold: an implementation that notices it has already exceeded the
// cap may return early with +Inf instead of finishing the full
// computation.
//
// Go has no default-method inheritance, so where the original capability
// hierarchy relied on an abstract base class supplying one method in
// terms of the other, Direct and Interruption here wrap a single
// caller-supplied function and synthesize the other method by
// composition.
package measure

import "math"

// Measure computes dissimilarity between two elements of type T.
type Measure[T any] interface {
	// Distance returns the exact dissimilarity between a and b.
	Distance(a, b T) float64

	// DistanceCapped returns the dissimilarity between a and b, but may
	// return +Inf as soon as it can prove the true distance exceeds max.
	// Implementations that cannot interrupt early may simply compute the
	// full distance and compare it to max.
	DistanceCapped(a, b T, max float64) float64
}

// Direct wraps a distance function that is cheap to compute in full and
// derives DistanceCapped by computing then comparing, mirroring
// DirectMeasure's default DistanceCapped.
type Direct[T any] struct {
	DistanceFunc func(a, b T) float64
}

// Distance returns DistanceFunc(a, b).
func (d Direct[T]) Distance(a, b T) float64 { return d.DistanceFunc(a, b) }

// DistanceCapped computes the full distance and returns +Inf if it
// exceeds max.
func (d Direct[T]) DistanceCapped(a, b T, max float64) float64 {
	dist := d.DistanceFunc(a, b)
	if dist > max {
		return math.Inf(1)
	}
	return dist
}

// Interruption wraps a capped-distance function that can interrupt early
// and derives Distance by calling it with an unbounded cap, mirroring
// InterruptionMeasure's default Distance.
type Interruption[T any] struct {
	DistanceCappedFunc func(a, b T, max float64) float64
}

// Distance calls DistanceCappedFunc with an infinite cap.
func (d Interruption[T]) Distance(a, b T) float64 {
	return d.DistanceCappedFunc(a, b, math.Inf(1))
}

// DistanceCapped returns DistanceCappedFunc(a, b, max).
func (d Interruption[T]) DistanceCapped(a, b T, max float64) float64 {
	return d.DistanceCappedFunc(a, b, max)
}
