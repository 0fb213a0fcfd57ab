package hplot_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfg-98/hilbertplot-core/hplot"
)

func TestBestDimensions(t *testing.T) {
	cases := []struct {
		length, w, h int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 2, 1},   // exact floor×ceil fit
		{3, 2, 1},   // floor×ceil wins
		{5, 3, 2},   // floor² ties floor×ceil; ties go wide
		{10, 3, 3},  // 9 beats 12 and 16
		{12, 4, 3},  // exact floor×ceil fit
		{20, 5, 4},  // exact floor×ceil fit
		{24, 5, 5},  // 25 beats 20 and 16
		{25, 5, 5},  // perfect square
		{144, 12, 12},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("len=%d", tc.length), func(t *testing.T) {
			w, h := hplot.BestDimensions(tc.length)
			assert.Equal(t, tc.w, w, "width")
			assert.Equal(t, tc.h, h, "height")
		})
	}
}

// TestBestDimensions_NearSquare checks the invariant rather than pinned
// pairs: the sides differ by at most one and the area stays within one
// side of the target.
func TestBestDimensions_NearSquare(t *testing.T) {
	for l := 1; l <= 500; l++ {
		w, h := hplot.BestDimensions(l)
		assert.LessOrEqual(t, w-h, 1, "len=%d: sides must be near-square", l)
		assert.GreaterOrEqual(t, w, h, "len=%d: width never below height", l)
		diff := l - w*h
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, h, "len=%d: area %d strays too far", l, w*h)
	}
}
