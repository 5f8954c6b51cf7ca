// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/QuadnucYard/dsa-practice-code/matrix"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Parallel()
	m := matrix.MustFromRows([][]int32{{3, -1}, {7, 0}, {5, 4}})

	s, err := matrix.Summarize(m)
	require.NoError(t, err)
	require.Equal(t, matrix.Stats{Count: 6, Min: -1, Max: 7, Sum: 18}, s)
	require.InDelta(t, 3.0, s.Mean(), 1e-12)

	// generic path agrees with the Dense fast path
	h, err := matrix.Summarize(hide{m})
	require.NoError(t, err)
	require.Equal(t, s, h)

	_, err = matrix.Summarize(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Zero(t, matrix.Stats{}.Mean())
}

func TestSummarize_GeneratedRange(t *testing.T) {
	t.Parallel()
	m := RandFilledDense(t, 40, 50, 1)
	s, err := matrix.Summarize(m)
	require.NoError(t, err)
	require.Equal(t, 2000, s.Count)
	require.GreaterOrEqual(t, s.Min, int32(0))
	require.Less(t, s.Max, int32(255))
}
