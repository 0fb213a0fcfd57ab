package dataseq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfg-98/hilbertplot-core/dataseq"
)

func TestHammingMatch(t *testing.T) {
	a := dataseq.Sequence{1, 2, 3, 4, 5}
	b := dataseq.Sequence{1, 0, 3, 9}

	assert.Equal(t, dataseq.Sequence{1, 0, 1, 0, 0}, a.HammingMatch(b),
		"positions past the shorter operand count as mismatches")
	assert.Equal(t, dataseq.Sequence{1, 0, 1, 0}, b.HammingMatch(a),
		"result length follows the receiver")
	assert.Equal(t, dataseq.Sequence{1, 1, 1, 1, 1}, a.HammingMatch(a))
}

func TestManhattanDistance(t *testing.T) {
	a := dataseq.Sequence{1, 5, -2}
	b := dataseq.Sequence{4, 3}

	assert.Equal(t, dataseq.Sequence{3, 2, 0}, a.ManhattanDistance(b),
		"positions past the shorter operand are zero")
	assert.Equal(t, dataseq.Sequence{3, 2}, b.ManhattanDistance(a))
	assert.Equal(t, dataseq.Sequence{0, 0, 0}, a.ManhattanDistance(a))
}
