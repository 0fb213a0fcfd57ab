package hplot

// DiscontinuityMark is the sentinel written into Image cells whose curve
// discontinuity exceeds the threshold. It sits above the normalized [0, 1]
// value range so renderers can color it separately.
const DiscontinuityMark = 2.0

// Image renders the plot as a column-major [width][height] matrix of
// normalized values. With threshold > 0, cells whose discontinuity score
// exceeds threshold times the curve mean are overwritten with
// DiscontinuityMark.
func (p *Plot) Image(threshold float64) [][]float64 {
	img := make([][]float64, p.width)
	for x := range img {
		img[x] = make([]float64, p.height)
	}

	scale := p.normScale()
	mean := p.curve.MeanDiscontinuity()
	for pt := range p.curve.Points() {
		v := (p.data[p.toCurve[pt.Y*p.width+pt.X]] - p.min) * scale
		if threshold > 0 && mean > 0 && pt.Discontinuity/mean > threshold {
			v = DiscontinuityMark
		}
		img[pt.X][pt.Y] = v
	}
	return img
}
