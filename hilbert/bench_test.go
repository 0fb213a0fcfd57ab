package hilbert_test

import (
	"fmt"
	"testing"

	"github.com/dfg-98/hilbertplot-core/hilbert"
)

func BenchmarkBuild_Primitive(b *testing.B) {
	for _, n := range []int{64, 256, 1024} {
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, err := hilbert.Build(hilbert.H0, n, n, hilbert.Point{}, hilbert.OrientA,
					hilbert.WithoutDiscontinuity())
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBuild_Composed(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := hilbert.Build(hilbert.H17, 256, 256, hilbert.Point{}, hilbert.OrientA,
			hilbert.WithoutDiscontinuity())
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_WithDiscontinuity(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := hilbert.Build(hilbert.H0, 256, 256, hilbert.Point{}, hilbert.OrientA)
		if err != nil {
			b.Fatal(err)
		}
	}
}
