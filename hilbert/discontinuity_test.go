package hilbert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfg-98/hilbertplot-core/hilbert"
)

// TestDiscontinuity_SingleRow: on a 1×N grid the traversal is a straight
// walk, every cell's neighbors sit exactly one step away, so every score
// and the mean are exactly 1.
func TestDiscontinuity_SingleRow(t *testing.T) {
	c, err := hilbert.Build(hilbert.H0, 8, 1, hilbert.Point{}, hilbert.OrientA)
	require.NoError(t, err)

	for p := range c.Points() {
		assert.Equal(t, 1.0, p.Discontinuity, "cell (%d,%d)", p.X, p.Y)
	}
	assert.Equal(t, 1.0, c.MeanDiscontinuity())
}

// TestDiscontinuity_TwoByTwo: on the 2×2 loop the traversal endpoints see
// the other three cells at distances 1+2+3, the middle cells at 1+1+2.
func TestDiscontinuity_TwoByTwo(t *testing.T) {
	c, err := hilbert.Build(hilbert.H0, 2, 2, hilbert.Point{}, hilbert.OrientA)
	require.NoError(t, err)

	for p := range c.Points() {
		want := 4.0 / 3.0
		if p.Index == 0 || p.Index == 3 {
			want = 2.0
		}
		assert.Equal(t, want, p.Discontinuity, "cell (%d,%d) index %d", p.X, p.Y, p.Index)
	}
	assert.InDelta(t, 5.0/3.0, c.MeanDiscontinuity(), 1e-12)
}

func TestDiscontinuity_SingleCell(t *testing.T) {
	c, err := hilbert.Build(hilbert.H0, 1, 1, hilbert.Point{}, hilbert.OrientA)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.MeanDiscontinuity(), "a lone cell has no neighbors to break from")
}

func TestDiscontinuity_PositiveOnSquares(t *testing.T) {
	for _, fam := range []hilbert.Family{hilbert.H0, hilbert.H1, hilbert.H20} {
		c, err := hilbert.Build(fam, 16, 16, hilbert.Point{}, hilbert.OrientA)
		require.NoError(t, err)
		assert.Greater(t, c.MeanDiscontinuity(), 0.0, "family %s", fam)
		for p := range c.Points() {
			require.Greater(t, p.Discontinuity, 0.0, "family %s cell (%d,%d)", fam, p.X, p.Y)
		}
	}
}

func TestDiscontinuity_Skipped(t *testing.T) {
	c, err := hilbert.Build(hilbert.H0, 8, 8, hilbert.Point{}, hilbert.OrientA,
		hilbert.WithoutDiscontinuity())
	require.NoError(t, err)

	assert.Equal(t, 0.0, c.MeanDiscontinuity())
	for p := range c.Points() {
		require.Equal(t, 0.0, p.Discontinuity)
	}
}
