package dataseq

import "math"

// Sequence is a one-dimensional series of float64 samples.
type Sequence []float64

// entropyLevels is the fixed histogram resolution used by Entropy.
const entropyLevels = 65535

// Min returns the smallest element, or 0 for an empty sequence.
func (s Sequence) Min() float64 {
	if len(s) == 0 {
		return 0
	}
	min := s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest element, or 0 for an empty sequence.
func (s Sequence) Max() float64 {
	if len(s) == 0 {
		return 0
	}
	max := s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Mean returns the arithmetic mean, or 0 for an empty sequence.
func (s Sequence) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}

// StdDev returns the sample standard deviation (n−1 denominator), or 0
// when fewer than two elements are present.
func (s Sequence) StdDev() float64 {
	if len(s) < 2 {
		return 0
	}
	mean := s.Mean()
	sum := 0.0
	for _, v := range s {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(s)-1))
}

// Entropy returns the Shannon entropy of the sequence, normalized to
// [0, 1] by the number of occupied histogram bins. Values are bucketed
// into a fixed 65535-level histogram spanning [Min, Max]; constant
// sequences score 0. Returns ErrEmptyData on an empty sequence.
func (s Sequence) Entropy() (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyData
	}
	min, max := s.Min(), s.Max()
	if min == max {
		return 0, nil
	}

	scale := entropyLevels / (max - min)
	freq := make([]int, entropyLevels+1)
	for _, v := range s {
		freq[int(math.Floor((v-min)*scale))]++
	}

	val := 0.0
	nbins := 0
	for _, f := range freq {
		if f == 0 {
			continue
		}
		nbins++
		val += float64(f) * zlog(float64(f))
	}
	if nbins == 1 {
		nbins++
	}

	n := float64(len(s))
	return (-val/n + zlog(n)) / math.Log(float64(nbins)), nil
}

// Granularity coarsens the sequence with block size n: each full n-block
// is replaced by n copies of its mean, and a trailing partial block is
// kept as-is, unaveraged, so the result always has the receiver's length.
// Returns ErrEmptyData on an empty sequence and ErrBadGranularity when n
// is 0 or exceeds len/2.
func (s Sequence) Granularity(n int) (Sequence, error) {
	if len(s) == 0 {
		return nil, ErrEmptyData
	}
	if n <= 0 || n > len(s)/2 {
		return nil, ErrBadGranularity
	}

	blocks := len(s) / n
	out := make(Sequence, 0, len(s))
	for b := 0; b < blocks; b++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += s[b*n+i]
		}
		avg := sum / float64(n)
		for i := 0; i < n; i++ {
			out = append(out, avg)
		}
	}
	out = append(out, s[blocks*n:]...)
	return out, nil
}

// zlog is log with zlog(0) = 0, the usual entropy convention.
func zlog(v float64) float64 {
	if v > 0 {
		return math.Log(v)
	}
	return 0
}
