package dataseq_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfg-98/hilbertplot-core/dataseq"
)

//----------------------------------------------------------------------------//
// Moments
//----------------------------------------------------------------------------//

func TestMoments(t *testing.T) {
	cases := []struct {
		name                 string
		s                    dataseq.Sequence
		min, max, mean, sdev float64
	}{
		{"Empty", nil, 0, 0, 0, 0},
		{"One", dataseq.Sequence{3.5}, 3.5, 3.5, 3.5, 0},
		{"Constant", dataseq.Sequence{2, 2, 2, 2}, 2, 2, 2, 0},
		{"Mixed", dataseq.Sequence{1, -1, 3, 5}, -1, 5, 2, math.Sqrt(20.0 / 3.0)},
		{"Halves", dataseq.Sequence{0.5, 1.5}, 0.5, 1.5, 1, math.Sqrt(0.5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.min, tc.s.Min(), "Min")
			assert.Equal(t, tc.max, tc.s.Max(), "Max")
			assert.Equal(t, tc.mean, tc.s.Mean(), "Mean")
			assert.InDelta(t, tc.sdev, tc.s.StdDev(), 1e-12, "StdDev")
		})
	}
}

// TestMean_FractionalValues guards against integer truncation in the
// accumulator (means of fractional data must stay fractional).
func TestMean_FractionalValues(t *testing.T) {
	s := dataseq.Sequence{0.25, 0.25, 0.25, 0.25}
	assert.Equal(t, 0.25, s.Mean())
}

//----------------------------------------------------------------------------//
// Entropy
//----------------------------------------------------------------------------//

func TestEntropy(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := dataseq.Sequence{}.Entropy()
		assert.ErrorIs(t, err, dataseq.ErrEmptyData)
	})

	t.Run("Constant", func(t *testing.T) {
		h, err := dataseq.Sequence{7, 7, 7}.Entropy()
		require.NoError(t, err)
		assert.Equal(t, 0.0, h, "constant data carries no information")
	})

	t.Run("TwoEvenLevels", func(t *testing.T) {
		h, err := dataseq.Sequence{0, 0, 1, 1}.Entropy()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, h, 1e-12, "two equiprobable levels maximize normalized entropy")
	})

	t.Run("SkewBelowUniform", func(t *testing.T) {
		h, err := dataseq.Sequence{0, 0, 0, 1}.Entropy()
		require.NoError(t, err)
		assert.Greater(t, h, 0.0)
		assert.Less(t, h, 1.0, "skewed levels must score below the uniform maximum")
	})
}

//----------------------------------------------------------------------------//
// Granularity
//----------------------------------------------------------------------------//

func TestGranularity(t *testing.T) {
	s := dataseq.Sequence{1, 3, 2, 4, 10, 20, 5}

	t.Run("BlockOfTwo", func(t *testing.T) {
		g, err := s.Granularity(2)
		require.NoError(t, err)
		assert.Equal(t, dataseq.Sequence{2, 2, 3, 3, 15, 15, 5}, g,
			"the trailing partial block stays unaveraged")
	})

	t.Run("BlockOfThree", func(t *testing.T) {
		g, err := s.Granularity(3)
		require.NoError(t, err)
		assert.Equal(t, dataseq.Sequence{2, 2, 2, 34.0 / 3.0, 34.0 / 3.0, 34.0 / 3.0, 5}, g)
	})

	t.Run("BlockOfOne", func(t *testing.T) {
		g, err := s.Granularity(1)
		require.NoError(t, err)
		assert.Equal(t, s, g)
	})

	t.Run("RemainderKeepsLength", func(t *testing.T) {
		g, err := dataseq.Sequence{1, 2, 3, 4, 5}.Granularity(2)
		require.NoError(t, err)
		assert.Equal(t, dataseq.Sequence{1.5, 1.5, 3.5, 3.5, 5}, g,
			"coarsening must not shorten the sequence")
		assert.Len(t, g, 5)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := dataseq.Sequence{}.Granularity(2)
		assert.ErrorIs(t, err, dataseq.ErrEmptyData)

		_, err = s.Granularity(0)
		assert.ErrorIs(t, err, dataseq.ErrBadGranularity)

		_, err = s.Granularity(4) // 4 > len/2 = 3
		assert.ErrorIs(t, err, dataseq.ErrBadGranularity)
	})
}
