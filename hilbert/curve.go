package hilbert

import (
	"iter"

	"github.com/dfg-98/hilbertplot-core/workpool"
)

// Curve is an immutable-by-convention traversal of a width×height grid.
// Construct one with Build; mutate it only through Reverse and Mirror.
type Curve struct {
	family           Family
	orient           Orientation
	originX, originY int
	width, height    int
	pts              []Point
	meanDisc         float64
}

// Family returns the curve family the traversal was built from.
func (c *Curve) Family() Family { return c.family }

// Orientation returns the top-level orientation the curve was built with.
func (c *Curve) Orientation() Orientation { return c.orient }

// Width returns the grid width in cells.
func (c *Curve) Width() int { return c.width }

// Height returns the grid height in cells.
func (c *Curve) Height() int { return c.height }

// Origin returns the lower-left grid cell the curve is anchored at.
func (c *Curve) Origin() Point { return Point{X: c.originX, Y: c.originY} }

// Len returns the number of cells visited, always Width*Height.
func (c *Curve) Len() int { return len(c.pts) }

// MeanDiscontinuity returns the average per-cell discontinuity score, or 0
// when the curve was built with WithoutDiscontinuity.
func (c *Curve) MeanDiscontinuity() float64 { return c.meanDisc }

// PointAt returns the i-th point in traversal order, or ErrIndexOutOfRange
// when i is outside [0, Len).
func (c *Curve) PointAt(i int) (Point, error) {
	if i < 0 || i >= len(c.pts) {
		return Point{}, ErrIndexOutOfRange
	}
	return c.pts[i], nil
}

// Points iterates the curve in traversal order.
func (c *Curve) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, p := range c.pts {
			if !yield(p) {
				return
			}
		}
	}
}

// Reverse flips the traversal direction in place. Stored traversal indices
// and discontinuity scores describe the order the curve was built with and
// are not recomputed.
func (c *Curve) Reverse() {
	workpool.Reverse[Point](nil, c.pts)
}

// Mirror reflects the curve across the axis selected by its orientation
// (A and C horizontal, B and D vertical), staying inside the original
// grid. Indices and discontinuity scores are not recomputed.
func (c *Curve) Mirror() {
	mirror(c.pts, c.orient, c.width, c.height, c.originX, c.originY)
}
