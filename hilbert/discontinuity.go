package hilbert

import "math"

// neighborOffsets enumerates the 8-connected raster neighborhood.
var neighborOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// buildDiscontinuity scores every cell with the mean absolute traversal
// distance to its raster neighbors, then records the curve-wide running
// mean. A score of 1 means the traversal leaves the cell's neighborhood
// one step at a time; larger scores mark locality breaks where spatially
// adjacent cells sit far apart along the curve.
func (c *Curve) buildDiscontinuity() {
	w, h := c.width, c.height

	// Raster lookup: cell (x, y) -> traversal index.
	at := make([]int, w*h)
	for i, p := range c.pts {
		at[(p.Y-c.originY)*w+(p.X-c.originX)] = i
	}

	scores := make([]float64, w*h)
	mean := 0.0
	k := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			here := float64(at[y*w+x])
			sum := 0.0
			count := 0
			for _, off := range neighborOffsets {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				sum += math.Abs(here - float64(at[ny*w+nx]))
				count++
			}
			score := 0.0
			if count > 0 {
				score = sum / float64(count)
			}
			scores[y*w+x] = score
			k++
			mean += (score - mean) / float64(k)
		}
	}

	for i := range c.pts {
		p := &c.pts[i]
		p.Discontinuity = scores[(p.Y-c.originY)*w+(p.X-c.originX)]
	}
	c.meanDisc = mean
}
