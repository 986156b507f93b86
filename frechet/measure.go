package frechet

import (
	"github.com/katalvlaran/curveembed/measure"
	"github.com/katalvlaran/curveembed/polyline"
)

// DiscreteMeasure exposes Discrete as a measure.Measure, for use
// directly with DirectEmbedder or Isomap.
var DiscreteMeasure measure.Measure[*polyline.Polyline] = measure.Direct[*polyline.Polyline]{
	DistanceFunc: Discrete,
}

// IntegralDiscreteMeasure exposes IntegralDiscrete as a measure.Measure.
var IntegralDiscreteMeasure measure.Measure[*polyline.Polyline] = measure.Direct[*polyline.Polyline]{
	DistanceFunc: IntegralDiscrete,
}

// NewContinuousMeasure builds a measure.Measure that computes the
// continuous Fréchet distance to within precision, using decider (nil
// selects DecideTabular). Its DistanceCapped method calls
// ApproximateContinuousCapped directly, so a caller comparing many pairs
// against a fixed threshold (as Isomap's neighbor graph construction
// does) skips the full bisection for pairs that are plainly too far
// apart.
func NewContinuousMeasure(precision float64, decider Decider) measure.Measure[*polyline.Polyline] {
	return measure.Interruption[*polyline.Polyline]{
		DistanceCappedFunc: func(a, b *polyline.Polyline, max float64) float64 {
			return ApproximateContinuousCapped(a, b, precision, decider, max)
		},
	}
}
