// Package hilbertplot maps one-dimensional data onto two-dimensional
// rasters along generalized Hilbert curves — from curve construction to
// plotting, locality scoring and spectral analysis.
//
// 🚀 What is hilbertplot?
//
//	A concurrent library that brings together:
//		• Curve generation: all 40 Hilbert families over grids of any size,
//		  powers of two not required
//		• Locality scoring: per-cell discontinuity maps of every traversal
//		• Plotting: lay a data sequence along a curve, read it back by index
//		  or raster coordinates, raw or normalized
//		• Analysis: entropy, granularity coarsening, distance sequences and
//		  1-D/2-D power spectra
//
// ✨ Why choose hilbertplot?
//
//   - Locality by construction – near samples stay near pixels
//   - Arbitrary rasters – quasi-square partitioning handles odd and thin grids
//   - Parallel builds – disjoint-range writes over a small worker pool
//   - Pure Go – FFTs via gonum, no cgo
//
// Everything is organized under four subpackages:
//
//	hilbert/  — curve families, orientations, builds, transforms, discontinuity
//	hplot/    — plots, raster access, image rendering, 2-D spectra
//	dataseq/  — sequence statistics, entropy, granularity, 1-D spectra
//	workpool/ — the worker pool and parallel slice primitives behind the builds
//
// Quick ASCII sketch, the 4×4 primitive curve:
//
//	 5──6    9──10
//	 │  │    │   │
//	 4  7────8  11
//	 │           │
//	 3──2   13──12
//	    │    │
//	 0──1   14──15
//
//	visits every cell exactly once, consecutive indices one edge apart.
//
// Dive into the per-package docs for complexity notes and examples.
//
//	go get github.com/dfg-98/hilbertplot-core
package hilbertplot
