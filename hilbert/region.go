package hilbert

import "fmt"

// region is one cell of the quasi-square recursion: an n-row by m-column
// rectangle anchored at grid cell (x, y), traversed with an orientation.
type region struct {
	n, m   int
	x, y   int
	orient Orientation
}

func (r region) area() int { return r.n * r.m }

// partition splits r into four sub-regions and returns them in traversal
// order. Halves are corrected for parity so that sub-regions stay as close
// to even-sided as the orientation's entry/exit corners allow: A and B
// force the near halves even, C and D the far halves.
func (r region) partition() [4]region {
	n1 := r.n / 2
	n2 := r.n - n1
	m1 := r.m / 2
	m2 := r.m - m1

	switch r.orient {
	case OrientA, OrientB:
		if n1%2 != 0 {
			n1, n2 = n2, n1
		}
		if m1%2 != 0 {
			m1, m2 = m2, m1
		}
	case OrientC, OrientD:
		if n2%2 != 0 {
			n1, n2 = n2, n1
		}
		if m2%2 != 0 {
			m1, m2 = m2, m1
		}
	default:
		panic(fmt.Sprintf("hilbert: invalid orientation %s", r.orient))
	}

	switch r.orient {
	case OrientA:
		return [4]region{
			{n1, m1, r.x, r.y, OrientB},
			{n2, m1, r.x, r.y + n1, OrientA},
			{n2, m2, r.x + m1, r.y + n1, OrientA},
			{n1, m2, r.x + m1, r.y, OrientD},
		}
	case OrientB:
		return [4]region{
			{n1, m1, r.x, r.y, OrientA},
			{n1, m2, r.x + m1, r.y, OrientB},
			{n2, m2, r.x + m1, r.y + n1, OrientB},
			{n2, m1, r.x, r.y + n1, OrientC},
		}
	case OrientC:
		return [4]region{
			{n2, m2, r.x + m1, r.y + n1, OrientD},
			{n1, m2, r.x + m1, r.y, OrientC},
			{n1, m1, r.x, r.y, OrientC},
			{n2, m1, r.x, r.y + n1, OrientB},
		}
	default: // OrientD
		return [4]region{
			{n2, m2, r.x + m1, r.y + n1, OrientC},
			{n2, m1, r.x, r.y + n1, OrientD},
			{n1, m1, r.x, r.y, OrientD},
			{n1, m2, r.x + m1, r.y, OrientA},
		}
	}
}
