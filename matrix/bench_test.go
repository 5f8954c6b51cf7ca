// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the multiplication kernel,
// using deterministic random fill. Sizes follow the fixture sweep.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/QuadnucYard/dsa-practice-code/matrix"
)

// benchSizes are the square sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sink defeats dead-code elimination.
var sinkM *matrix.Dense

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		A := RandFilledDense(b, n, n, 1337)
		B := RandFilledDense(b, n, n, 4242)
		for _, order := range matrix.LoopOrders() {
			b.Run(fmt.Sprintf("n=%d/%s", n, order), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					m, err := matrix.Mul(A, B, matrix.WithLoopOrder(order))
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}

func BenchmarkMul_Fallback(b *testing.B) {
	b.ReportAllocs()
	A := RandFilledDense(b, 64, 64, 1)
	B := RandFilledDense(b, 64, 64, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.Mul(hide{A}, B)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}
