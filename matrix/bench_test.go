// Package matrix_test provides benchmarks for the matrix kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkQ matrix.QuadrantSet
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, 1337)
			B := RandFilledDense(b, n, 4242)
			C := MustDense(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.Add(A, B, C); err != nil {
					b.Fatal(err)
				}
			}
			sinkM = C
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, order := range loopOrders {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", order, n), func(b *testing.B) {
				A := RandFilledDense(b, n, 11)
				B := RandFilledDense(b, n, 22)
				C := MustDense(b, n)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := matrix.Mul(A, B, C, order); err != nil {
						b.Fatal(err)
					}
				}
				sinkM = C
			})
		}
	}
}

func BenchmarkDecompose(b *testing.B) {
	b.ReportAllocs()
	for _, mode := range blockModes {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", mode, n), func(b *testing.B) {
				A := RandFilledDense(b, n, 7)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					q, err := matrix.Decompose(A, mode)
					if err != nil {
						b.Fatal(err)
					}
					sinkQ = q
				}
			})
		}
	}
}
