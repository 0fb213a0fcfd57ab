package hplot

import "math"

// BestDimensions returns the near-square (width, height) raster whose area
// is closest to length. Perfect squares map to themselves; otherwise the
// closest of floor², ceil² and floor×ceil wins, with ties going to the
// wider floor×ceil rectangle.
func BestDimensions(length int) (width, height int) {
	f := int(math.Sqrt(float64(length)))
	if f*f == length {
		return f, f
	}
	c := f + 1

	d1 := abs(length - f*f)
	d2 := abs(length - c*c)
	d3 := abs(length - f*c)
	if d1 < d2 {
		if d1 < d3 {
			return f, f
		}
		return c, f
	}
	if d2 < d3 {
		return c, c
	}
	return c, f
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
