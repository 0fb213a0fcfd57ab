// Package hilbert defines the core types for generalized Hilbert-family
// space-filling curves over arbitrary W×H integer grids.
package hilbert

import "strconv"

// Orientation is one of the four rotational/reflective states that control
// how a region is partitioned and how its quadrants are joined.
type Orientation uint8

const (
	// OrientA starts in the lower-left quadrant and ends in the lower-right.
	OrientA Orientation = iota
	// OrientB starts in the lower-left quadrant and ends in the upper-left.
	OrientB
	// OrientC starts in the upper-right quadrant and ends in the upper-left.
	OrientC
	// OrientD starts in the upper-right quadrant and ends in the lower-right.
	OrientD

	numOrientations = 4
)

// Valid reports whether o is one of the four defined orientations.
func (o Orientation) Valid() bool { return o < numOrientations }

// String returns "A".."D", or a numeric form for out-of-range values.
func (o Orientation) String() string {
	if o.Valid() {
		return string(rune('A' + o))
	}
	return "Orientation(" + strconv.Itoa(int(o)) + ")"
}

// Family identifies one of the 40 curve families of the two-dimensional
// Hilbert taxonomy. H0 is the primitive family built by quasi-square
// partition; H1..H39 are grammar compositions that bottom out in H0.
type Family uint8

const (
	H0 Family = iota
	H1
	H2
	H3
	H4
	H5
	H6
	H7
	H8
	H9
	H10
	H11
	H12
	H13
	H14
	H15
	H16
	H17
	H18
	H19
	H20
	H21
	H22
	H23
	H24
	H25
	H26
	H27
	H28
	H29
	H30
	H31
	H32
	H33
	H34
	H35
	H36
	H37
	H38
	H39

	numFamilies = 40
)

// Valid reports whether f is one of the 40 defined families.
func (f Family) Valid() bool { return f < numFamilies }

// String returns "H0".."H39", or a numeric form for out-of-range values.
func (f Family) String() string {
	if f.Valid() {
		return "H" + strconv.Itoa(int(f))
	}
	return "Family(" + strconv.Itoa(int(f)) + ")"
}

// Point is a single grid cell visited by a curve. X and Y are the cell
// coordinates (non-negative for curves built at the zero origin), Index is
// the cell's position in traversal order, and Discontinuity is the cell's
// locality-break score assigned by the discontinuity pass (zero until the
// pass runs).
type Point struct {
	X, Y          int
	Index         int
	Discontinuity float64
}
