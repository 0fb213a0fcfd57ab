package hplot_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfg-98/hilbertplot-core/dataseq"
	"github.com/dfg-98/hilbertplot-core/hilbert"
	"github.com/dfg-98/hilbertplot-core/hplot"
)

func TestImage_Normalized(t *testing.T) {
	// 2×2 H0/A traversal: (0,0) (0,1) (1,1) (1,0); values 0..3 normalize
	// in thirds.
	p, err := hplot.New(dataseq.Sequence{0, 1, 2, 3}, 2, 2, hilbert.H0)
	require.NoError(t, err)

	img := p.Image(0)
	want := [][]float64{
		{0, 1.0 / 3.0},
		{1, 2.0 / 3.0},
	}
	if diff := cmp.Diff(want, img); diff != "" {
		t.Errorf("Image mismatch (-want +got):\n%s", diff)
	}
}

// TestImage_Threshold: the 2×2 loop has discontinuity scores 2, 4/3, 4/3,
// 2 with mean 5/3, so the mark set depends on where the threshold falls
// between the ratios 0.8 and 1.2.
func TestImage_Threshold(t *testing.T) {
	p, err := hplot.New(dataseq.Sequence{0, 1, 2, 3}, 2, 2, hilbert.H0)
	require.NoError(t, err)

	img := p.Image(0.75)
	marked := 0
	for x := range img {
		for y := range img[x] {
			if img[x][y] == hplot.DiscontinuityMark {
				marked++
			}
		}
	}
	// Endpoint scores 2 give ratio 6/5 > 0.75; middle scores 4/3 give
	// ratio 4/5 > 0.75 as well: the whole loop is marked.
	assert.Equal(t, 4, marked)

	img = p.Image(1.1)
	marked = 0
	for x := range img {
		for y := range img[x] {
			if img[x][y] == hplot.DiscontinuityMark {
				marked++
			}
		}
	}
	assert.Equal(t, 2, marked, "only the endpoint cells exceed 1.1× the mean")
}

func TestImage_ConstantData(t *testing.T) {
	p, err := hplot.New(dataseq.Sequence{5, 5, 5, 5}, 2, 2, hilbert.H0)
	require.NoError(t, err)

	for _, col := range p.Image(0) {
		for _, v := range col {
			assert.Equal(t, 0.0, v, "constant plots render flat zero")
		}
	}
}
