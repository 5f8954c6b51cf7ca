// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/QuadnucYard/dsa-practice-code/matrix"
)

// ExampleMul multiplies two 2×2 matrices.
func ExampleMul() {
	a := matrix.MustFromRows([][]int32{{1, 2}, {3, 4}})
	b := matrix.MustFromRows([][]int32{{5, 6}, {7, 8}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleMul_mismatch shows the ShapeMismatch failure.
func ExampleMul_mismatch() {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(4, 2)

	_, err := matrix.Mul(a, b)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	// Output:
	// true
}
