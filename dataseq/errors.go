package dataseq

import "errors"

var (
	// ErrEmptyData is returned by operations that are undefined on an
	// empty sequence.
	ErrEmptyData = errors.New("dataseq: empty sequence")

	// ErrBadGranularity is returned by Granularity when the block size is
	// zero or larger than half the sequence.
	ErrBadGranularity = errors.New("dataseq: granularity must be in [1, len/2]")
)
