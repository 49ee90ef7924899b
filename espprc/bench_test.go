package espprc_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/pricing/espprc"
	"github.com/katalvlaran/pricing/instance"
)

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{10, 15, 20} {
		in, err := instance.Random(n, 42)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := espprc.Solve(in, 2, 3, 300); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
