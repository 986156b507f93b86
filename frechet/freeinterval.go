package frechet

import (
	"math"

	"github.com/katalvlaran/curveembed/polyline"
)

// FreeInterval computes the sub-interval of segment q[segmentIndex] ->
// q[segmentIndex+1] whose points lie within distance eps of
// p.Vertex(centerIndex), expressed as parameter values in [0, 1] along
// the segment. It returns ok=false if no such sub-interval exists.
//
// The quadratic is solved in the exact operation order of the original
// derivation: accumulate componentwise sums, double them, then solve for
// the roots of the resulting distance-squared quadratic. This order is
// preserved deliberately so numerical results match the reference
// implementation to its stated tolerance; collapsing the arithmetic into
// a textbook a·t²+b·t+c form changes rounding in the last bit or two.
func FreeInterval(p *polyline.Polyline, centerIndex int, q *polyline.Polyline, segmentIndex int, eps float64) (lo, hi float64, ok bool) {
	a := q.Vertex(segmentIndex)
	b := q.Vertex(segmentIndex + 1)
	c := p.Vertex(centerIndex)

	var tmp0, tmp1, tmp2 float64
	for i := range a {
		tmp0 += b[i]*c[i] + a[i]*a[i] - a[i]*c[i] - a[i]*b[i]
		tmp1 += a[i]*a[i] + b[i]*b[i] - 2*a[i]*b[i]
		tmp2 += c[i]*c[i] + a[i]*a[i] - 2*a[i]*c[i]
	}
	tmp0 *= 2
	tmp1 *= 2

	disc := tmp0*tmp0 - 2*tmp1*(tmp2-eps*eps)
	if disc < 0 {
		return 0, 0, false
	}
	disc = math.Sqrt(disc)

	t0 := (tmp0 - disc) / tmp1
	t1 := (tmp0 + disc) / tmp1

	if t0 > 1 || t1 < 0 {
		return 0, 0, false
	}
	if t0 < 0 {
		t0 = 0
	}
	if t1 > 1 {
		t1 = 1
	}
	return t0, t1, true
}

// EndpointsTooFar reports whether either curve's first or last vertex
// pair is already farther apart than eps, a cheap rejection test before
// building the full free-space diagram.
func EndpointsTooFar(p, q *polyline.Polyline, eps float64) bool {
	return p.CornerDistance(q, 0, 0) > eps ||
		p.CornerDistance(q, p.Len()-1, q.Len()-1) > eps
}
