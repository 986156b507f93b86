package frechet

import (
	"math"
	"testing"

	"github.com/katalvlaran/curveembed/polyline"
	"github.com/stretchr/testify/assert"
)

func mustPolyline(t *testing.T, vertices [][]float64) *polyline.Polyline {
	t.Helper()
	pl, err := polyline.New(vertices)
	if err != nil {
		t.Fatalf("polyline.New: %v", err)
	}
	return pl
}

func TestDiscreteIdenticalCurves(t *testing.T) {
	p := mustPolyline(t, [][]float64{{0, 0}, {1, 0}, {2, 0}})
	q := mustPolyline(t, [][]float64{{0, 0}, {1, 0}, {2, 0}})

	assert.Equal(t, 0.0, Discrete(p, q))
}

func TestDiscreteParallelOffset(t *testing.T) {
	p := mustPolyline(t, [][]float64{{0, 0}, {1, 0}, {2, 0}})
	q := mustPolyline(t, [][]float64{{0, 1}, {1, 1}, {2, 1}})

	assert.InDelta(t, 1.0, Discrete(p, q), 1e-9)
}

func TestIntegralDiscreteAccumulatesSum(t *testing.T) {
	p := mustPolyline(t, [][]float64{{0, 0}, {1, 0}})
	q := mustPolyline(t, [][]float64{{0, 1}, {1, 1}})

	// Two aligned vertex pairs, each 1 apart: sum should be >= single pair.
	assert.GreaterOrEqual(t, IntegralDiscrete(p, q), Discrete(p, q))
}

func TestFreeIntervalContainsMidpointWhenClose(t *testing.T) {
	p := mustPolyline(t, [][]float64{{0.5, 0.1}, {0.5, 0.1}})
	q := mustPolyline(t, [][]float64{{0, 0}, {1, 0}})

	lo, hi, ok := FreeInterval(p, 0, q, 0, 0.5)
	if !ok {
		t.Fatalf("expected a non-empty free interval")
	}
	assert.LessOrEqual(t, lo, 0.5)
	assert.GreaterOrEqual(t, hi, 0.5)
}

func TestFreeIntervalEmptyWhenTooFar(t *testing.T) {
	p := mustPolyline(t, [][]float64{{100, 100}, {100, 100}})
	q := mustPolyline(t, [][]float64{{0, 0}, {1, 0}})

	_, _, ok := FreeInterval(p, 0, q, 0, 1)
	assert.False(t, ok)
}

func TestEndpointsTooFar(t *testing.T) {
	p := mustPolyline(t, [][]float64{{0, 0}, {1, 0}})
	q := mustPolyline(t, [][]float64{{10, 10}, {11, 10}})

	assert.True(t, EndpointsTooFar(p, q, 1))
}

func TestDecideTabularIdenticalCurves(t *testing.T) {
	p := mustPolyline(t, [][]float64{{0, 0}, {1, 0}, {2, 1}})
	q := mustPolyline(t, [][]float64{{0, 0}, {1, 0}, {2, 1}})

	assert.True(t, DecideTabular(p, q, 0.01))
}

func TestDecideTabularRejectsSmallEps(t *testing.T) {
	p := mustPolyline(t, [][]float64{{0, 0}, {1, 0}, {2, 0}})
	q := mustPolyline(t, [][]float64{{0, 5}, {1, 5}, {2, 5}})

	assert.False(t, DecideTabular(p, q, 0.1))
	assert.True(t, DecideTabular(p, q, 5.1))
}

func TestDecidePathAgreesWithTabularOnIdenticalCurves(t *testing.T) {
	p := mustPolyline(t, [][]float64{{0, 0}, {1, 0.5}, {2, 0}, {3, 1}})
	q := mustPolyline(t, [][]float64{{0, 0}, {1, 0.5}, {2, 0}, {3, 1}})

	assert.True(t, DecidePath(p, q, 0.01))
	assert.Equal(t, DecideTabular(p, q, 0.01), DecidePath(p, q, 0.01))
}

func TestDecideTabularReachesThroughInteriorCell(t *testing.T) {
	p := mustPolyline(t, [][]float64{
		{2.7758834024266825}, {1.3147489495873455}, {1.1495469810108823}, {3.028696736456318},
	})
	q := mustPolyline(t, [][]float64{
		{2.9191058402741636}, {0.6044703658457817}, {0.9366710862205752},
		{2.9821561410484843}, {0.09961747764031581}, {1.8811902593241152},
	})
	eps := 1.2042077492469394

	assert.True(t, DecideTabular(p, q, eps))
	assert.True(t, DecidePath(p, q, eps))
}

func TestDecidePathClearsRestrictionOnOrthogonalRevisit(t *testing.T) {
	p := mustPolyline(t, [][]float64{
		{3.177319834347214}, {0.35412425263249114}, {2.6957619346568733},
		{1.0329492796554918}, {0.8564463301689534}, {3.6703296197356976},
	})
	q := mustPolyline(t, [][]float64{
		{4.258721262886125}, {2.078589500415047}, {3.711983707066091}, {4.225831205381242},
	})
	eps := 1.5455779324127674

	assert.False(t, DecideTabular(p, q, eps))
	assert.False(t, DecidePath(p, q, eps))
}

func TestDecidePathMatchesTabularOnAsymmetricCurves(t *testing.T) {
	p := mustPolyline(t, [][]float64{{1}, {2}, {4}, {5}})
	q := mustPolyline(t, [][]float64{{2}, {5}, {1}, {5}})

	assert.False(t, DecideTabular(p, q, 1.9))
	assert.False(t, DecidePath(p, q, 1.9))
	assert.True(t, DecideTabular(p, q, 2.0))
	assert.True(t, DecidePath(p, q, 2.0))
}

func TestApproximateContinuousBracketsDiscreteDistance(t *testing.T) {
	p := mustPolyline(t, [][]float64{{0, 0}, {1, 0}, {2, 0}})
	q := mustPolyline(t, [][]float64{{0, 1}, {1, 1}, {2, 1}})

	approx := ApproximateContinuous(p, q, 1e-4, DecideTabular)
	if math.IsInf(approx, 1) {
		t.Fatalf("expected a finite approximation")
	}
	assert.LessOrEqual(t, approx, Discrete(p, q)+1e-3)
}
