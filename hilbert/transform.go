package hilbert

import (
	"fmt"

	"github.com/dfg-98/hilbertplot-core/workpool"
)

// applyTransform rewrites a quadrant's point sequence in place according
// to the production's transform. w, h, ox, oy describe the quadrant the
// points were built on; mirroring reflects within that quadrant.
func applyTransform(pts []Point, tr transform, orient Orientation, w, h, ox, oy int, pool *workpool.Pool) {
	switch tr {
	case trNone:
	case trReverse:
		workpool.Reverse(pool, pts)
	case trMirror:
		mirror(pts, orient, w, h, ox, oy)
	case trMirrorReverse:
		mirror(pts, orient, w, h, ox, oy)
		workpool.Reverse(pool, pts)
	}
}

// mirror reflects the points across the axis picked by the sequence's own
// orientation: A and C flip horizontally, B and D vertically. The
// reflection is expressed relative to the quadrant origin so points stay
// inside [ox, ox+w) × [oy, oy+h).
func mirror(pts []Point, orient Orientation, w, h, ox, oy int) {
	switch orient {
	case OrientA, OrientC:
		workpool.ForEach(pts, func(p *Point) { p.X = w - 1 - p.X + 2*ox })
	case OrientB, OrientD:
		workpool.ForEach(pts, func(p *Point) { p.Y = h - 1 - p.Y + 2*oy })
	default:
		panic(fmt.Sprintf("hilbert: invalid orientation %s", orient))
	}
}
