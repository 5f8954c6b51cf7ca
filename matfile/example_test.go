// SPDX-License-Identifier: MIT
package matfile_test

import (
	"bytes"
	"fmt"

	"github.com/QuadnucYard/dsa-practice-code/matfile"
	"github.com/QuadnucYard/dsa-practice-code/matrix"
)

// ExampleEncode shows both layouts of the same 2×2 answer matrix.
func ExampleEncode() {
	a := matrix.MustFromRows([][]int32{{1, 2}, {3, 4}})
	b := matrix.MustFromRows([][]int32{{5, 6}, {7, 8}})
	c, _ := matrix.Mul(a, b)

	for _, layout := range []matfile.Layout{matfile.HeaderFirst, matfile.DataFirst} {
		var buf bytes.Buffer
		_ = matfile.Encode(&buf, c, matfile.Format{Layout: layout, Order: matfile.LittleEndian})
		fmt.Printf("%-12s % x\n", layout, buf.Bytes())
	}
	// Output:
	// header-first 02 00 00 00 02 00 00 00 13 00 00 00 16 00 00 00 2b 00 00 00 32 00 00 00
	// data-first   13 00 00 00 16 00 00 00 2b 00 00 00 32 00 00 00 02 00 00 00 02 00 00 00
}
