// Package hilbert builds generalized Hilbert-family space-filling curves
// over rectangular grids of any size, not just powers of two.
//
// What:
//
//   - Build constructs a Curve visiting every cell of a W×H grid exactly once.
//   - Family H0 is the primitive curve, produced by a quasi-square partition
//     with parity-corrected halves (after Wu & Chang's approximately even
//     partition). Odd squares and thin strips stay edge-connected; on some
//     near-square rectangles a few steps exceed one edge, but the visit
//     order remains a bijection and locality is preserved.
//   - Families H1..H39 are the grammar compositions of the two-dimensional
//     Hilbert taxonomy: each splits the grid into four quadrants, builds a
//     transformed sub-curve per quadrant and joins them in a fixed order.
//   - Every curve carries a per-cell discontinuity score: the mean absolute
//     traversal distance to the cell's 8-connected raster neighbors.
//
// Why:
//
//   - Locality-preserving linearization: map 1D data onto a 2D raster (or
//     back) while keeping near indices spatially near.
//   - Curve taxonomy analysis: compare how the 40 families trade off
//     locality, via the discontinuity map.
//
// Concurrency:
//
//   - Primitive sub-builds run on a workpool.Pool, writing disjoint ranges
//     of one shared point buffer; no locks on the hot path.
//   - Each Build creates and closes a private pool unless WithPool supplies
//     a shared one.
//
// Complexity:
//
//   - Build: O(W×H) time and memory.
//   - Discontinuity pass: O(W×H) time and memory.
//
// Errors & panics:
//
//   - ErrDimensions: width or height < 1.
//   - ErrIndexOutOfRange: PointAt index outside the traversal.
//   - Invalid Family or Orientation values panic; they cannot arise from
//     runtime data, only from caller bugs.
//
// See examples in example_test.go.
package hilbert
