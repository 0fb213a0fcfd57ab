package hplot

import (
	"github.com/dfg-98/hilbertplot-core/dataseq"
	"github.com/dfg-98/hilbertplot-core/hilbert"
)

// Plot maps a data sequence onto a raster along a Hilbert-family curve.
// The i-th sample sits at the i-th cell of the traversal.
type Plot struct {
	curve         *hilbert.Curve
	data          dataseq.Sequence
	toCurve       []int // raster cell y*width+x -> traversal index
	width, height int
	min, max      float64
}

// New builds a width×height plot of data traversed by the given curve
// family. Non-positive dimensions are derived from the data length via
// BestDimensions. Data shorter than the raster is zero-padded, longer data
// is truncated. Returns ErrEmptyData when no usable raster results.
func New(data dataseq.Sequence, width, height int, family hilbert.Family) (*Plot, error) {
	if width <= 0 || height <= 0 {
		width, height = BestDimensions(len(data))
	}
	if width < 1 || height < 1 {
		return nil, ErrEmptyData
	}

	size := width * height
	d := make(dataseq.Sequence, size)
	copy(d, data)

	curve, err := hilbert.Build(family, width, height, hilbert.Point{}, hilbert.OrientA)
	if err != nil {
		return nil, err
	}

	p := &Plot{
		curve:   curve,
		data:    d,
		toCurve: make([]int, size),
		width:   width,
		height:  height,
	}
	for pt := range curve.Points() {
		p.toCurve[pt.Y*width+pt.X] = pt.Index
	}
	p.min, p.max = d.Min(), d.Max()
	return p, nil
}

// Width returns the raster width in cells.
func (p *Plot) Width() int { return p.width }

// Height returns the raster height in cells.
func (p *Plot) Height() int { return p.height }

// Len returns the number of samples, always Width*Height.
func (p *Plot) Len() int { return len(p.data) }

// Min returns the smallest stored value.
func (p *Plot) Min() float64 { return p.min }

// Max returns the largest stored value.
func (p *Plot) Max() float64 { return p.max }

// Curve returns the traversal the plot was built on.
func (p *Plot) Curve() *hilbert.Curve { return p.curve }

// Data returns a copy of the stored samples in traversal order.
func (p *Plot) Data() dataseq.Sequence {
	out := make(dataseq.Sequence, len(p.data))
	copy(out, p.data)
	return out
}

// IndexOf returns the traversal index of raster cell (x, y).
func (p *Plot) IndexOf(x, y int) (int, error) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, ErrIndexOutOfRange
	}
	return p.toCurve[y*p.width+x], nil
}

// ValueAt returns the sample at traversal index i.
func (p *Plot) ValueAt(i int) (float64, error) {
	if i < 0 || i >= len(p.data) {
		return 0, ErrIndexOutOfRange
	}
	return p.data[i], nil
}

// ValueAtXY returns the sample stored at raster cell (x, y).
func (p *Plot) ValueAtXY(x, y int) (float64, error) {
	i, err := p.IndexOf(x, y)
	if err != nil {
		return 0, err
	}
	return p.data[i], nil
}

// ValueNormalizedAt returns the sample at traversal index i rescaled to
// [0, 1] by the stored min and max; constant plots normalize to 0.
func (p *Plot) ValueNormalizedAt(i int) (float64, error) {
	v, err := p.ValueAt(i)
	if err != nil {
		return 0, err
	}
	return (v - p.min) * p.normScale(), nil
}

// ValueNormalizedAtXY is ValueNormalizedAt addressed by raster cell.
func (p *Plot) ValueNormalizedAtXY(x, y int) (float64, error) {
	i, err := p.IndexOf(x, y)
	if err != nil {
		return 0, err
	}
	return (p.data[i] - p.min) * p.normScale(), nil
}

// PointAt returns the curve point at traversal index i, with its raster
// coordinates and discontinuity score.
func (p *Plot) PointAt(i int) (hilbert.Point, error) {
	pt, err := p.curve.PointAt(i)
	if err != nil {
		return hilbert.Point{}, ErrIndexOutOfRange
	}
	return pt, nil
}

// PointAtXY returns the curve point occupying raster cell (x, y).
func (p *Plot) PointAtXY(x, y int) (hilbert.Point, error) {
	i, err := p.IndexOf(x, y)
	if err != nil {
		return hilbert.Point{}, err
	}
	return p.PointAt(i)
}

// ReplaceValueAt overwrites the sample at traversal index i and rescans
// the stored min and max.
func (p *Plot) ReplaceValueAt(i int, v float64) error {
	if i < 0 || i >= len(p.data) {
		return ErrIndexOutOfRange
	}
	p.data[i] = v
	p.min, p.max = p.data.Min(), p.data.Max()
	return nil
}

// ReplaceValueAtXY is ReplaceValueAt addressed by raster cell.
func (p *Plot) ReplaceValueAtXY(x, y int, v float64) error {
	i, err := p.IndexOf(x, y)
	if err != nil {
		return err
	}
	return p.ReplaceValueAt(i, v)
}

// ReplaceData swaps the stored samples for data, normalized to [0, 1] by
// data's own range (constant data stores zeros). The length must match
// the plot size exactly; otherwise ErrSizeMismatch is returned.
func (p *Plot) ReplaceData(data dataseq.Sequence) error {
	if len(data) != len(p.data) {
		return ErrSizeMismatch
	}
	min, max := data.Min(), data.Max()
	scale := 0.0
	if max != min {
		scale = 1 / (max - min)
	}
	for i, v := range data {
		p.data[i] = (v - min) * scale
	}
	p.min, p.max = p.data.Min(), p.data.Max()
	return nil
}

// normScale returns the min-max normalization factor, 0 for constant data.
func (p *Plot) normScale() float64 {
	if p.max == p.min {
		return 0
	}
	return 1 / (p.max - p.min)
}
