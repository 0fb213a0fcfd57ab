package hplot

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/dfg-98/hilbertplot-core/dataseq"
)

// SpectralMagnitude computes the 2-D power spectrum of the raster and
// returns it as a sequence in traversal order, so the spectrum can itself
// be plotted along the same curve.
//
// Rows are transformed with a real FFT and the resulting half-plane of
// non-redundant coefficients with a complex FFT down each column. Powers
// are min-max normalized with the DC-dominated global maximum clamped to
// the second-largest value, then mirrored across the vertical axis to
// restore the redundant half. With logScale set, both the span and the
// values go through log, compressing the dynamic range.
func (p *Plot) SpectralMagnitude(logScale bool) (dataseq.Sequence, error) {
	if len(p.data) == 0 {
		return nil, ErrEmptyData
	}
	w, h := p.width, p.height
	w2 := w / 2
	stride := w2 + 1

	half := make([]complex128, h*stride)
	rowFFT := fourier.NewFFT(w)
	row := make([]float64, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			row[x] = p.data[p.toCurve[y*w+x]]
		}
		copy(half[y*stride:(y+1)*stride], rowFFT.Coefficients(nil, row))
	}

	colFFT := fourier.NewCmplxFFT(h)
	col := make([]complex128, h)
	dst := make([]complex128, h)
	for x := 0; x < stride; x++ {
		for y := 0; y < h; y++ {
			col[y] = half[y*stride+x]
		}
		dst = colFFT.Coefficients(dst, col)
		for y := 0; y < h; y++ {
			half[y*stride+x] = dst[y]
		}
	}

	// Scan the half-plane for min, max and the runner-up max. Seeding the
	// maxima with the smallest positive double keeps the span positive
	// even for all-zero spectra.
	max := math.SmallestNonzeroFloat64
	max2 := math.SmallestNonzeroFloat64
	min := math.MaxFloat64
	for _, c := range half {
		v := real(c)*real(c) + imag(c)*imag(c)
		if max < v {
			max = v
		}
		if min > v {
			min = v
		}
		if max2 < v && v < max {
			max2 = v
		}
	}
	span := max2 - min
	if logScale {
		span = math.Log(span)
	}

	power := func(x, y int) float64 {
		c := half[y*stride+x]
		return real(c)*real(c) + imag(c)*imag(c)
	}

	out := make(dataseq.Sequence, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < stride; x++ {
			i1 := p.toCurve[y*w+x]
			i2 := p.toCurve[y*w+(w-1-x)]
			v := power(x, y)
			if logScale {
				if v > max2 {
					v = max2
				}
				nv := math.Log(v-min+1) / span
				out[i1], out[i2] = nv, nv
			} else {
				if v >= max {
					v = max2
				}
				nv := (v - min) / span
				out[i1], out[i2] = nv, nv
			}
		}

		// The x=0 column also represents the mirrored Nyquist/middle
		// column; write its value there explicitly.
		mid := p.toCurve[y*w+w2]
		v := power(0, y)
		if logScale {
			if v > max2 {
				v = max2
			}
			if v-min > 0 {
				out[mid] = math.Log(v-min) / span
			}
		} else {
			if v >= max {
				v = max2
			}
			out[mid] = (v - min) / span
		}
	}
	return out, nil
}
