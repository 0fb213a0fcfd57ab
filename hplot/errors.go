package hplot

import "errors"

var (
	// ErrEmptyData is returned by New when no data is supplied and no
	// positive dimensions can be derived.
	ErrEmptyData = errors.New("hplot: empty data")

	// ErrIndexOutOfRange is returned by value and point accessors for an
	// index or coordinate outside the raster.
	ErrIndexOutOfRange = errors.New("hplot: index out of range")

	// ErrSizeMismatch is returned by ReplaceData when the replacement
	// length differs from the plot size.
	ErrSizeMismatch = errors.New("hplot: replacement data length mismatch")
)
