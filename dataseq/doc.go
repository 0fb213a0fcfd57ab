// Package dataseq provides descriptive statistics and signal transforms
// for one-dimensional float64 sequences.
//
// What:
//
//   - Sequence is a plain []float64 with value-receiver methods.
//   - Min / Max / Mean / StdDev: the usual moments (sample standard
//     deviation, n−1 in the denominator).
//   - Entropy: normalized Shannon entropy over a fixed 65535-level
//     histogram, 0 for constant data, 1 for a maximally spread one.
//   - Granularity: block-averaged coarsening, each full n-block replaced
//     by n copies of its mean, the trailing partial block kept unaveraged.
//   - HammingMatch / ManhattanDistance: element-wise comparison sequences.
//   - Fourier: centered power spectrum via gonum's real FFT.
//
// Complexity:
//
//   - All statistics are O(n) time, O(1) memory (Entropy allocates its
//     histogram, O(levels)).
//   - Fourier: O(n log n).
//
// Errors:
//
//   - ErrEmptyData: the receiver has no elements.
//   - ErrBadGranularity: block size is 0 or exceeds half the length.
//
// See examples in example_test.go.
package dataseq
