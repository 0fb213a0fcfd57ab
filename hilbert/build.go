package hilbert

import (
	"fmt"

	"github.com/dfg-98/hilbertplot-core/workpool"
)

// buildConfig collects the knobs accepted by Build.
type buildConfig struct {
	pool          *workpool.Pool
	workers       int
	discontinuity bool
}

// BuildOption customizes a single Build call.
type BuildOption func(*buildConfig)

// WithPool makes Build use an existing worker pool instead of creating a
// private one. The pool is drained but not closed; the caller keeps
// ownership.
func WithPool(p *workpool.Pool) BuildOption {
	return func(c *buildConfig) { c.pool = p }
}

// WithWorkers sets the worker count of the pool Build creates for itself.
// Ignored when WithPool is supplied. n <= 0 selects the default.
func WithWorkers(n int) BuildOption {
	return func(c *buildConfig) { c.workers = n }
}

// WithoutDiscontinuity skips the discontinuity pass. Traversal indices are
// still assigned; per-point Discontinuity scores and the curve mean stay
// zero.
func WithoutDiscontinuity() BuildOption {
	return func(c *buildConfig) { c.discontinuity = false }
}

// Build constructs the fam-family curve over a width×height grid anchored
// at origin, then scores every cell's traversal discontinuity (unless
// disabled via WithoutDiscontinuity). It returns ErrDimensions when either
// side is < 1 and panics on an invalid family or orientation, since those
// only arise from programmer error.
//
// H0 is built directly by quasi-square partition; every other family is a
// recursive four-quadrant composition of transformed sub-curves that
// bottoms out in H0. Sub-builds of the primitive family run on a worker
// pool, writing disjoint slices of the shared point buffer.
func Build(fam Family, width, height int, origin Point, orient Orientation, opts ...BuildOption) (*Curve, error) {
	if !fam.Valid() {
		panic(fmt.Sprintf("hilbert: invalid family %s", fam))
	}
	if !orient.Valid() {
		panic(fmt.Sprintf("hilbert: invalid orientation %s", orient))
	}
	if width < 1 || height < 1 {
		return nil, ErrDimensions
	}

	cfg := buildConfig{discontinuity: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	pool := cfg.pool
	if pool == nil {
		pool = workpool.New(cfg.workers)
		defer pool.Close()
	}

	c := &Curve{
		family:  fam,
		orient:  orient,
		originX: origin.X,
		originY: origin.Y,
		width:   width,
		height:  height,
		pts:     buildFamily(fam, width, height, origin.X, origin.Y, orient, pool),
	}
	for i := range c.pts {
		c.pts[i].Index = i
	}
	if cfg.discontinuity {
		c.buildDiscontinuity()
	}
	return c, nil
}

// buildFamily returns the point sequence of one family over a w×h grid
// anchored at (ox, oy). Grammar families build their four quadrants in
// place (each quadrant's primitive sub-builds share the pool and are
// drained before its transform runs), then concatenate them in the
// orientation's join order.
func buildFamily(fam Family, w, h, ox, oy int, orient Orientation, pool *workpool.Pool) []Point {
	if fam == H0 {
		pts := make([]Point, w*h)
		buildRegion(region{n: h, m: w, x: ox, y: oy, orient: orient}, pts, 0, pool)
		if pool != nil {
			pool.Drain()
		}
		return pts
	}

	// Quadrant geometry: ceil halves go to the lower-left block.
	w2 := w / 2
	w1 := w - w2
	h2 := h / 2
	h1 := h - h2
	quads := [4]struct{ w, h, dx, dy int }{
		{w1, h1, 0, 0},   // lower-left
		{w1, h2, 0, h1},  // upper-left
		{w2, h2, w1, h1}, // upper-right
		{w2, h1, w1, 0},  // lower-right
	}

	prod := productions[fam][orient]
	var sub [4][]Point
	for i, c := range prod {
		q := quads[i]
		pts := buildFamily(c.fam, q.w, q.h, ox+q.dx, oy+q.dy, c.orient, pool)
		applyTransform(pts, c.tr, c.orient, q.w, q.h, ox+q.dx, oy+q.dy, pool)
		sub[i] = pts
	}

	out := make([]Point, 0, w*h)
	for _, qi := range joinOrder[orient] {
		out = append(out, sub[qi]...)
	}
	return out
}
