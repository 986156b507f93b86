package frechet

import "github.com/katalvlaran/curveembed/polyline"

// pathCell tracks the state the path-search decider keeps for one
// free-space diagram cell: its indices, whether it has been visited, and
// a signed restriction describing how tightly the cell has already been
// constrained by a previous visit. Free intervals are not stored; each
// step recomputes them with FreeInterval.
//
// A positive restriction r means the cell was entered through its left
// edge (by a step to the right) at height r, so it can leave through its
// right edge only at height r or above; a negative restriction -r means
// it was entered through its bottom edge at position r, so it can leave
// through its top edge only at position r or beyond; zero means
// unconstrained.
type pathCell struct {
	i, j        int
	restriction float64
	visited     bool
}

// DecidePath reports whether the Fréchet distance between p and q is at
// most eps, by a depth-first search of the free-space diagram that
// greedily follows the diagonal and otherwise whichever neighbor stays
// closest to it. In the common case this visits far fewer cells than the
// full tabular diagram.
func DecidePath(p, q *polyline.Polyline, eps float64) bool {
	if EndpointsTooFar(p, q, eps) {
		return false
	}

	n, m := p.Len(), q.Len()
	seen := make(map[int]*pathCell)
	key := func(i, j int) int { return i + j*n }

	get := func(i, j int) *pathCell {
		if i < 0 || j < 0 || i >= n-1 || j >= m-1 {
			return nil
		}
		c, ok := seen[key(i, j)]
		if !ok {
			c = &pathCell{i: i, j: j}
			seen[key(i, j)] = c
		}
		return c
	}

	stack := []*pathCell{get(0, 0)}

	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cell.i == n-2 && cell.j == m-2 {
			if cellReachesTopRight(p, q, eps, cell) {
				return true
			}
			continue
		}

		right := get(cell.i+1, cell.j)
		up := get(cell.i, cell.j+1)
		diag := get(cell.i+1, cell.j+1)

		pushRight := right != nil && stepRight(p, q, eps, cell, right)
		pushUp := up != nil && stepUp(p, q, eps, cell, up)
		pushDiag := diag != nil && stepDiagonal(p, q, eps, cell, diag)

		// Diagonal always has top priority (pushed last, popped first).
		// Between right and up, prefer whichever cell is closer to the
		// ideal diagonal line through the free-space diagram.
		rightDev := deviation(right, n, m)
		upDev := deviation(up, n, m)

		if pushRight && pushUp {
			if rightDev < upDev {
				stack = append(stack, up, right)
			} else {
				stack = append(stack, right, up)
			}
		} else if pushRight {
			stack = append(stack, right)
		} else if pushUp {
			stack = append(stack, up)
		}
		if pushDiag {
			stack = append(stack, diag)
		}
	}

	return false
}

func deviation(c *pathCell, n, m int) float64 {
	if c == nil {
		return 2 // worse than any real deviation, sorts last
	}
	return abs((float64(c.i)+0.5)/float64(n-1) - (float64(c.j)+0.5)/float64(m-1))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func cellReachesTopRight(p, q *polyline.Polyline, eps float64, c *pathCell) bool {
	rlo, rhi, rok := FreeInterval(p, c.i+1, q, c.j, eps)
	tlo, thi, tok := FreeInterval(q, c.j+1, p, c.i, eps)
	if rok && rhi >= 1 && applyRestriction(c.restriction, rlo) <= rhi {
		return true
	}
	if tok && thi >= 1 && applyRestriction(-c.restriction, tlo) <= thi {
		return true
	}
	return false
}

// applyRestriction tightens an entry lower bound by a previously
// recorded restriction: a positive restriction raises the effective
// lower bound (the cell was already known to be enterable only from
// higher up); non-positive restrictions leave lo untouched.
func applyRestriction(restriction, lo float64) float64 {
	if restriction > lo {
		return restriction
	}
	return lo
}

// stepRight attempts to move from cell into the cell directly to its
// right. A first visit adopts the newly computed restriction outright.
// A revisit carrying a negative restriction means the target was
// previously entered from above; that orthogonal entry always clears
// the restriction, since the cell is now known reachable from either
// direction. A same-direction revisit only replaces the restriction if
// the new one is weaker (closer to zero, i.e. less restrictive); a
// same-direction revisit that is no weaker changes nothing and is
// dropped.
func stepRight(p, q *polyline.Polyline, eps float64, cell, target *pathCell) bool {
	lo, hi, ok := FreeInterval(p, target.i, q, cell.j, eps)
	if !ok {
		return false
	}
	entry := applyRestriction(cell.restriction, lo)
	if entry > hi {
		return false
	}

	switch {
	case !target.visited:
		target.restriction = entry
		target.visited = true
		return true
	case target.restriction < 0:
		target.restriction = 0
		return true
	case entry < target.restriction:
		target.restriction = entry
		return true
	default:
		return false
	}
}

// stepUp is the mirror of stepRight along the vertical axis.
func stepUp(p, q *polyline.Polyline, eps float64, cell, target *pathCell) bool {
	lo, hi, ok := FreeInterval(q, target.j, p, cell.i, eps)
	if !ok {
		return false
	}
	entry := applyRestriction(-cell.restriction, lo)
	if entry > hi {
		return false
	}
	restriction := -entry

	switch {
	case !target.visited:
		target.restriction = restriction
		target.visited = true
		return true
	case target.restriction > 0:
		target.restriction = 0
		return true
	case restriction > target.restriction:
		target.restriction = restriction
		return true
	default:
		return false
	}
}

// stepDiagonal moves into the cell immediately up-and-right, reachable
// only when cell's own right and top edges are both free and its right
// edge reaches all the way to the shared corner (equivalent, by
// symmetry of the corner distance, to the top edge doing the same). A
// first visit or a revisit that still carries a nonzero restriction
// clears it to zero; a target already unrestricted has nothing to gain
// from a second diagonal entry and is dropped.
func stepDiagonal(p, q *polyline.Polyline, eps float64, cell, target *pathCell) bool {
	_, rhi, rok := FreeInterval(p, cell.i+1, q, cell.j, eps)
	_, _, tok := FreeInterval(q, cell.j+1, p, cell.i, eps)
	if !rok || !tok || rhi < 1 {
		return false
	}

	switch {
	case !target.visited:
		target.restriction = 0
		target.visited = true
		return true
	case target.restriction != 0:
		target.restriction = 0
		return true
	default:
		return false
	}
}
