// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep values inside the fixture range so products never overflow.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/QuadnucYard/dsa-practice-code/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto the generic At/Set fallback.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) int32 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandFilledDense returns an r×c Dense with deterministic values in [0,255).
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Int31n(255)))
		}
	}

	return m
}

// bruteForce computes the product cell by cell with the textbook formula,
// independent of the kernels under test.
func bruteForce(t testing.TB, a, b *matrix.Dense) [][]int64 {
	t.Helper()
	out := make([][]int64, a.Rows())
	var i, j, k int
	for i = 0; i < a.Rows(); i++ {
		out[i] = make([]int64, b.Cols())
		for j = 0; j < b.Cols(); j++ {
			for k = 0; k < a.Cols(); k++ {
				out[i][j] += int64(MustAt(t, a, i, k)) * int64(MustAt(t, b, k, j))
			}
		}
	}

	return out
}
