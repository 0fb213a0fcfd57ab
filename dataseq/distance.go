package dataseq

import "math"

// HammingMatch compares s against other element by element and returns a
// sequence of match flags: 1 where the elements are equal, 0 where they
// differ. The result has the receiver's length; positions past the end of
// other count as mismatches.
func (s Sequence) HammingMatch(other Sequence) Sequence {
	out := make(Sequence, len(s))
	for i, v := range s {
		if i < len(other) && v == other[i] {
			out[i] = 1
		}
	}
	return out
}

// ManhattanDistance returns the element-wise absolute differences between
// s and other. The result has the receiver's length; positions past the
// end of other are 0.
func (s Sequence) ManhattanDistance(other Sequence) Sequence {
	out := make(Sequence, len(s))
	for i, v := range s {
		if i < len(other) {
			out[i] = math.Abs(v - other[i])
		}
	}
	return out
}
