package frechet

import "github.com/katalvlaran/curveembed/polyline"

// interval is a free or reachable sub-interval along one local axis of a
// free-space diagram edge. ok is false when the interval is empty.
type interval struct {
	lo, hi float64
	ok     bool
}

// reach is the reachable sub-interval of a free-space diagram edge,
// expressed as the infimum of the reachable portion; the reachable
// portion is always the suffix [lo, free.hi] of the edge's free
// interval, a consequence of free-space-diagram monotonicity.
type reach struct {
	lo float64
	ok bool
}

// DecideTabular reports whether the Fréchet distance between p and q is
// at most eps, by building the full free-space diagram and propagating
// reachability cell by cell. It is O(n*m) time and space.
func DecideTabular(p, q *polyline.Polyline, eps float64) bool {
	if EndpointsTooFar(p, q, eps) {
		return false
	}

	n, m := p.Len(), q.Len()

	// left[i][j]: free interval on the vertical edge at P-vertex i,
	// spanning Q-segment j, for i in [0,n-1], j in [0,m-2].
	left := make([][]interval, n)
	for i := range left {
		left[i] = make([]interval, m-1)
		for j := range left[i] {
			lo, hi, ok := FreeInterval(p, i, q, j, eps)
			left[i][j] = interval{lo, hi, ok}
		}
	}

	// bottom[i][j]: free interval on the horizontal edge at Q-vertex j,
	// spanning P-segment i, for i in [0,n-2], j in [0,m-1].
	bottom := make([][]interval, n-1)
	for i := range bottom {
		bottom[i] = make([]interval, m)
		for j := range bottom[i] {
			lo, hi, ok := FreeInterval(q, j, p, i, eps)
			bottom[i][j] = interval{lo, hi, ok}
		}
	}

	L := make([][]reach, n)
	for i := range L {
		L[i] = make([]reach, m-1)
	}
	B := make([][]reach, n-1)
	for i := range B {
		B[i] = make([]reach, m)
	}

	// Left-column boundary (P's first vertex against every Q segment):
	// reachable only as a monotone run climbing from the bottom-left
	// corner. Each step needs the previous segment's free interval to
	// reach all the way to its top so the run connects through the
	// shared grid point; the first segment that fails to connect ends
	// the run for every j above it.
	for j := 0; j < m-1; j++ {
		free := left[0][j]
		if !free.ok || free.lo > 0 {
			break
		}
		if j > 0 && left[0][j-1].hi < 1 {
			break
		}
		L[0][j] = reach{lo: 0, ok: true}
	}

	// Bottom-row boundary (Q's first vertex against every P segment):
	// the mirror of the left-column boundary above.
	for i := 0; i < n-1; i++ {
		free := bottom[i][0]
		if !free.ok || free.lo > 0 {
			break
		}
		if i > 0 && bottom[i-1][0].hi < 1 {
			break
		}
		B[i][0] = reach{lo: 0, ok: true}
	}

	// Column by column: B[*][j] (j>0) depends only on column j-1, so it
	// can be finished first; L[*][j] (i>0) then depends only on row i-1
	// of this same column, already available once B[*][j] is in place.
	for j := 0; j < m; j++ {
		if j > 0 {
			for i := 0; i < n-1; i++ {
				B[i][j] = computeBottomReach(left, bottom, L, B, i, j)
			}
		}
		if j < m-1 {
			for i := 1; i < n; i++ {
				L[i][j] = computeLeftReach(left, bottom, L, B, i, j)
			}
		}
	}

	// The top-right corner (n-1, m-1) is reachable iff the final left
	// edge's reach extends to its top, or the final bottom edge's reach
	// extends to its right end.
	if top := L[n-1][m-2]; top.ok && left[n-1][m-2].hi >= 1 {
		return true
	}
	if right := B[n-2][m-1]; right.ok && bottom[n-2][m-1].hi >= 1 {
		return true
	}
	return false
}

// computeLeftReach derives the reachable sub-interval of the left edge
// of cell (i,j) — the vertical edge at P-vertex i spanning Q-segment j,
// which is also the right edge of cell (i-1,j) — from that one
// neighboring cell's own reachability. Only called for i>0; the i==0
// boundary column is seeded separately by a monotone prefix scan, since
// it has no cell to its left to inherit reachability from.
//
// Entering cell (i-1,j) through its bottom edge makes its entire right
// edge reachable, with no further restriction. Entering (or continuing)
// through its left edge only carries forward as far as that edge's own
// reachable interval permits, clipped to this edge's free interval.
func computeLeftReach(left, bottom [][]interval, L, B [][]reach, i, j int) reach {
	free := left[i][j]
	if !free.ok {
		return reach{}
	}

	best := reach{}
	consider := func(lo float64) {
		if lo <= free.hi && (!best.ok || lo < best.lo) {
			best = reach{lo: lo, ok: true}
		}
	}

	if prevB := B[i-1][j]; prevB.ok {
		consider(free.lo)
	}
	if prevL := L[i-1][j]; prevL.ok {
		consider(max(free.lo, prevL.lo))
	}

	return finalize(best, free)
}

// computeBottomReach is the mirror of computeLeftReach for the bottom
// edge of cell (i,j) — the horizontal edge at Q-vertex j spanning
// P-segment i, which is also the top edge of cell (i,j-1). Only called
// for j>0; the j==0 boundary row is seeded separately.
func computeBottomReach(left, bottom [][]interval, L, B [][]reach, i, j int) reach {
	free := bottom[i][j]
	if !free.ok {
		return reach{}
	}

	best := reach{}
	consider := func(lo float64) {
		if lo <= free.hi && (!best.ok || lo < best.lo) {
			best = reach{lo: lo, ok: true}
		}
	}

	if prevL := L[i][j-1]; prevL.ok {
		consider(free.lo)
	}
	if prevB := B[i][j-1]; prevB.ok {
		consider(max(free.lo, prevB.lo))
	}

	return finalize(best, free)
}

func finalize(best reach, free interval) reach {
	if !best.ok {
		return reach{}
	}
	lo := best.lo
	if lo < free.lo {
		lo = free.lo
	}
	if lo > free.hi {
		return reach{}
	}
	return reach{lo: lo, ok: true}
}
