package hilbert

import "errors"

var (
	// ErrDimensions is returned by Build when width or height is < 1.
	ErrDimensions = errors.New("hilbert: width and height must be at least 1")

	// ErrIndexOutOfRange is returned by Curve.PointAt for a traversal
	// index outside [0, Len).
	ErrIndexOutOfRange = errors.New("hilbert: traversal index out of range")
)
