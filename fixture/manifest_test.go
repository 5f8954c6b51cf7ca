// SPDX-License-Identifier: MIT
package fixture_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/QuadnucYard/dsa-practice-code/fixture"
	"github.com/QuadnucYard/dsa-practice-code/matfile"
	"github.com/QuadnucYard/dsa-practice-code/matrix"
	"github.com/stretchr/testify/require"
)

func TestManifest_RoundTrip(t *testing.T) {
	t.Parallel()
	seed := int64(-3)
	m := &fixture.Manifest{
		RunID:     "abc",
		Version:   matfile.FormatVersion,
		Layout:    "data-first",
		Order:     "big",
		LoopOrder: "kji",
		Seed:      &seed,
		Sets: []fixture.SetEntry{
			{Dims: fixture.Dims{Rows: 4, Inner: 3, Cols: 5}, Names: fixture.PlainNames()},
		},
	}
	path := filepath.Join(t.TempDir(), fixture.ManifestName)
	require.NoError(t, fixture.WriteManifest(path, m))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "byte_order: big")
	require.Contains(t, string(raw), "a: matA.in")
	require.Contains(t, string(raw), "inner: 3")

	got, err := fixture.ReadManifest(path)
	require.NoError(t, err)
	require.Equal(t, m, got)

	p, err := got.Plan()
	require.NoError(t, err)
	require.Equal(t, matfile.Format{Layout: matfile.DataFirst, Order: matfile.BigEndian}, p.Format)
	require.Equal(t, matrix.KJI, p.LoopOrder)
	require.Equal(t, []fixture.Job{fixture.SingleJob(fixture.Dims{Rows: 4, Inner: 3, Cols: 5})}, p.Jobs)
}

func TestManifest_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	_, err := fixture.ReadManifest(filepath.Join(dir, "none.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sets: [\n"), 0o644))
	_, err = fixture.ReadManifest(bad)
	require.Error(t, err)

	_, err = (&fixture.Manifest{Layout: "sideways"}).Plan()
	require.ErrorIs(t, err, matfile.ErrUnknownLayout)
	_, err = (&fixture.Manifest{Layout: "header", Order: "le", LoopOrder: "xyz"}).Plan()
	require.ErrorIs(t, err, matrix.ErrUnknownLoopOrder)
}
