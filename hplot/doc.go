// Package hplot maps one-dimensional data sequences onto two-dimensional
// rasters along a Hilbert-family curve, preserving locality: samples that
// are close in the sequence land close on the image.
//
// What:
//
//   - Plot binds a dataseq.Sequence to a hilbert.Curve; the i-th sample
//     lives at the i-th cell of the traversal.
//   - New picks near-square dimensions automatically (BestDimensions) when
//     none are given, padding with zeros or truncating to fit the raster.
//   - Access values by traversal index or by raster coordinates, raw or
//     min-max normalized.
//   - Image renders a [width][height] normalized view, optionally
//     highlighting curve discontinuities above a threshold.
//   - SpectralMagnitude computes a normalized 2-D power spectrum of the
//     raster and writes it back in traversal order.
//
// Complexity:
//
//   - New: O(W×H) (dominated by the curve build).
//   - Value accessors: O(1); ReplaceValueAt rescans min/max, O(W×H).
//   - SpectralMagnitude: O(W×H×log(W×H)).
//
// Errors:
//
//   - ErrEmptyData: no data and no usable dimensions.
//   - ErrIndexOutOfRange: index or coordinates outside the raster.
//   - ErrSizeMismatch: ReplaceData with a different length.
//
// See examples in example_test.go.
package hplot
