package dataseq

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Fourier returns the centered power spectrum of the sequence: the squared
// coefficient magnitudes of the real FFT, mirrored around the middle so
// the DC bin sits at index len/2. The result has the receiver's length.
// With logScale set, positive bins are replaced by log of their magnitude
// (half the log of the power). Returns ErrEmptyData on an empty sequence.
func (s Sequence) Fourier(logScale bool) (Sequence, error) {
	n := len(s)
	if n == 0 {
		return nil, ErrEmptyData
	}

	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, s)

	half := n / 2
	out := make(Sequence, n+1)
	for i := 1; i <= half; i++ {
		v := power(coeff[i], logScale)
		out[half+i] = v
		out[half-i] = v
	}
	out[half] = power(coeff[0], logScale)
	return out[:n], nil
}

func power(c complex128, logScale bool) float64 {
	v := real(c)*real(c) + imag(c)*imag(c)
	if logScale && v > 0 {
		v = math.Log(math.Sqrt(v))
	}
	return v
}
