// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/QuadnucYard/dsa-practice-code/matrix"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot()
	require.Equal(t, matrix.DefaultLoopOrder, o.LoopOrder)
	require.Equal(t, matrix.IKJ, matrix.NewOptions().LoopOrder())
}

func TestOptions_LastWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot(matrix.WithLoopOrder(matrix.JKI), nil, matrix.WithLoopOrder(matrix.KIJ))
	require.Equal(t, matrix.KIJ, o.LoopOrder)
}

func TestWithLoopOrder_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { matrix.WithLoopOrder(matrix.LoopOrder(6)) })
	require.Panics(t, func() { matrix.WithLoopOrder(matrix.LoopOrder(-1)) })
}

func TestParseLoopOrder(t *testing.T) {
	for i, name := range []string{"ijk", "ikj", "jik", "jki", "kij", "kji"} {
		got, err := matrix.ParseLoopOrder(name)
		require.NoError(t, err)
		require.Equal(t, matrix.LoopOrder(i), got)
		require.Equal(t, name, got.String())

		byDigit, err := matrix.ParseLoopOrder(string(rune('0' + i)))
		require.NoError(t, err)
		require.Equal(t, got, byDigit)
	}

	got, err := matrix.ParseLoopOrder(" KJI ")
	require.NoError(t, err)
	require.Equal(t, matrix.KJI, got)

	for _, bad := range []string{"", "ijj", "6", "ikjk"} {
		_, err = matrix.ParseLoopOrder(bad)
		require.ErrorIs(t, err, matrix.ErrUnknownLoopOrder, "input %q", bad)
	}
	require.Equal(t, "unknown", matrix.LoopOrder(9).String())
}
