package hilbert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

//----------------------------------------------------------------------------//
// Quasi-square partition
//----------------------------------------------------------------------------//

// TestPartition_TilesParent verifies that the four children of any
// partition cover exactly the parent's area for a spread of shapes and
// all orientations.
func TestPartition_TilesParent(t *testing.T) {
	shapes := []struct{ n, m int }{
		{3, 3}, {4, 4}, {5, 5}, {7, 7}, {5, 6}, {6, 5}, {3, 8}, {13, 12}, {1, 9}, {9, 1},
	}
	for _, sh := range shapes {
		for o := OrientA; o <= OrientD; o++ {
			r := region{n: sh.n, m: sh.m, x: 0, y: 0, orient: o}
			seen := make(map[[2]int]bool)
			for _, c := range r.partition() {
				for dy := 0; dy < c.n; dy++ {
					for dx := 0; dx < c.m; dx++ {
						cell := [2]int{c.x + dx, c.y + dy}
						assert.False(t, seen[cell], "n=%d m=%d orient=%s: cell %v covered twice", sh.n, sh.m, o, cell)
						seen[cell] = true
					}
				}
			}
			assert.Len(t, seen, sh.n*sh.m, "n=%d m=%d orient=%s: children must tile the parent", sh.n, sh.m, o)
		}
	}
}

// TestPartition_ParityCorrection pins down the half-swapping rule: A and B
// keep the near halves even, C and D the far halves.
func TestPartition_ParityCorrection(t *testing.T) {
	// 7 = 3+4: A swaps so the first child gets the even 4.
	a := region{n: 7, m: 7, orient: OrientA}.partition()
	assert.Equal(t, 4, a[0].n, "orientation A must keep n1 even")
	assert.Equal(t, 4, a[0].m, "orientation A must keep m1 even")

	// For C the far halves n2 = 4, m2 = 4 are already even: no swap.
	c := region{n: 7, m: 7, orient: OrientC}.partition()
	assert.Equal(t, 3, c[2].n, "orientation C leaves the near halves odd")
	assert.Equal(t, 3, c[2].m)
}

func TestPartition_TraversalOrderA(t *testing.T) {
	got := region{n: 4, m: 4, x: 10, y: 20, orient: OrientA}.partition()
	want := [4]region{
		{2, 2, 10, 20, OrientB},
		{2, 2, 10, 22, OrientA},
		{2, 2, 12, 22, OrientA},
		{2, 2, 12, 20, OrientD},
	}
	assert.Equal(t, want, got)
}

func TestPartition_InvalidOrientationPanics(t *testing.T) {
	assert.Panics(t, func() {
		region{n: 4, m: 4, orient: Orientation(9)}.partition()
	})
}
