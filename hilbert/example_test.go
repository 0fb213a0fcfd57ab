package hilbert_test

import (
	"fmt"

	"github.com/dfg-98/hilbertplot-core/hilbert"
)

// ExampleBuild constructs the smallest primitive curve and walks it.
func ExampleBuild() {
	c, err := hilbert.Build(hilbert.H0, 2, 2, hilbert.Point{}, hilbert.OrientA)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	for p := range c.Points() {
		fmt.Printf("%d:(%d,%d)\n", p.Index, p.X, p.Y)
	}
	// Output:
	// 0:(0,0)
	// 1:(0,1)
	// 2:(1,1)
	// 3:(1,0)
}

// ExampleCurve_MeanDiscontinuity shows the locality score of a straight
// single-row walk: every step moves exactly one cell.
func ExampleCurve_MeanDiscontinuity() {
	c, _ := hilbert.Build(hilbert.H0, 6, 1, hilbert.Point{}, hilbert.OrientA)
	fmt.Println(c.MeanDiscontinuity())
	// Output:
	// 1
}
