package hilbert

import "github.com/dfg-98/hilbertplot-core/workpool"

// buildRegion writes the primitive (H0) traversal of r into out[start:].
// Regions above the base size are partitioned; the first two sub-regions
// are submitted to the pool and the last two built inline. Each child
// writes into a slot range sized by the cumulative area of the children
// before it, so concurrent builders never touch the same element. The
// caller is responsible for draining the pool once the top-level call
// returns.
func buildRegion(r region, out []Point, start int, pool *workpool.Pool) {
	if r.n > 2 || r.m > 2 {
		at := start
		for i, c := range r.partition() {
			if i < 2 && pool != nil {
				c, base := c, at
				pool.Submit(func() { buildRegion(c, out, base, pool) })
			} else {
				buildRegion(c, out, at, pool)
			}
			at += c.area()
		}
		return
	}
	writeBase(r, out, start)
}

// writeBase lays down the traversal of a base region (both sides <= 2).
// Degenerate zero-area regions produced by parity swaps write nothing.
func writeBase(r region, out []Point, at int) {
	x, y := r.x, r.y
	switch {
	case r.n == 1 && r.m == 1:
		out[at] = Point{X: x, Y: y}

	case r.n == 1 && r.m == 2:
		switch r.orient {
		case OrientA, OrientB:
			out[at] = Point{X: x, Y: y}
			out[at+1] = Point{X: x + 1, Y: y}
		default:
			out[at] = Point{X: x + 1, Y: y}
			out[at+1] = Point{X: x, Y: y}
		}

	case r.n == 2 && r.m == 1:
		switch r.orient {
		case OrientA, OrientB:
			out[at] = Point{X: x, Y: y}
			out[at+1] = Point{X: x, Y: y + 1}
		default:
			out[at] = Point{X: x, Y: y + 1}
			out[at+1] = Point{X: x, Y: y}
		}

	case r.n == 2 && r.m == 2:
		switch r.orient {
		case OrientA:
			out[at] = Point{X: x, Y: y}
			out[at+1] = Point{X: x, Y: y + 1}
			out[at+2] = Point{X: x + 1, Y: y + 1}
			out[at+3] = Point{X: x + 1, Y: y}
		case OrientB:
			out[at] = Point{X: x, Y: y}
			out[at+1] = Point{X: x + 1, Y: y}
			out[at+2] = Point{X: x + 1, Y: y + 1}
			out[at+3] = Point{X: x, Y: y + 1}
		case OrientC:
			out[at] = Point{X: x + 1, Y: y + 1}
			out[at+1] = Point{X: x + 1, Y: y}
			out[at+2] = Point{X: x, Y: y}
			out[at+3] = Point{X: x, Y: y + 1}
		default: // OrientD
			out[at] = Point{X: x + 1, Y: y + 1}
			out[at+1] = Point{X: x, Y: y + 1}
			out[at+2] = Point{X: x, Y: y}
			out[at+3] = Point{X: x + 1, Y: y}
		}
	}
}
