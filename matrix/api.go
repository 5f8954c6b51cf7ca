// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Thin, intention-revealing entry points; each delegates to the canonical
// implementation without changing loop orders or validation.

package matrix

// MustFromRows is FromRows for literals in tests and examples; it panics on error.
func MustFromRows(rows [][]int32) *Dense {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Dot returns Σ_k row_i(a)·col_j(b) computed directly through At, without
// building the full product. Verifiers use it to spot-check single cells.
func Dot(a, b Matrix, i, j int) (int64, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return 0, matrixErrorf("Dot", err)
	}
	var s int64
	for k := 0; k < a.Cols(); k++ {
		av, err := a.At(i, k)
		if err != nil {
			return 0, matrixErrorf("Dot", err)
		}
		bv, err := b.At(k, j)
		if err != nil {
			return 0, matrixErrorf("Dot", err)
		}
		s += int64(av) * int64(bv)
	}

	return s, nil
}
