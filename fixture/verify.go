// SPDX-License-Identifier: MIT

package fixture

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/QuadnucYard/dsa-practice-code/matfile"
	"github.com/QuadnucYard/dsa-practice-code/matrix"
)

// Plan says how to read a directory of fixtures: the file format, the
// kernel loop order used for recomputation and the sets to expect.
type Plan struct {
	Format    matfile.Format
	LoopOrder matrix.LoopOrder
	Jobs      []Job
}

// LoadPlan returns the Plan recorded in dir/manifest.yaml, or fallback when
// dir has no manifest. A manifest that exists but cannot be read is an error.
func LoadPlan(dir string, fallback Plan) (Plan, error) {
	man, err := ReadManifest(filepath.Join(dir, ManifestName))
	if errors.Is(err, fs.ErrNotExist) {
		return fallback, nil
	}
	if err != nil {
		return Plan{}, err
	}

	return man.Plan()
}

// ReferenceProduct computes a·b with gonum's float64 BLAS kernel and
// converts back to int32. For fixture data (elements in [0,255), inner
// dimension well below 2^37) every partial sum is an integer below 2^53, so
// the float64 result is exact.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch as for matrix.Mul.
//   - matrix.ErrElementOverflow when a cell leaves int32.
func ReferenceProduct(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("ReferenceProduct: %w", err)
	}
	var c mat.Dense
	c.Mul(toGonum(a), toGonum(b))

	r, cols := c.Dims()
	out := make([]int32, 0, r*cols)
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			v := math.Round(c.At(i, j))
			if v > math.MaxInt32 || v < math.MinInt32 {
				return nil, fmt.Errorf("ReferenceProduct: cell (%d,%d)=%.0f: %w", i, j, v, matrix.ErrElementOverflow)
			}
			out = append(out, int32(v))
		}
	}

	return matrix.NewDenseFrom(r, cols, out)
}

func toGonum(m *matrix.Dense) *mat.Dense {
	raw := m.Raw()
	f := make([]float64, len(raw))
	for i, v := range raw {
		f[i] = float64(v)
	}

	return mat.NewDense(m.Rows(), m.Cols(), f)
}

// VerifySet checks that c equals a·b, computed once with matrix.Mul under
// opts and once with ReferenceProduct. A mismatch returns an error wrapping
// ErrVerifyFailed that names the first differing cell.
func VerifySet(a, b, c *matrix.Dense, opts ...matrix.Option) error {
	got, err := matrix.Mul(a, b, opts...)
	if errors.Is(err, matrix.ErrDimensionMismatch) {
		return fmt.Errorf("%w: %w", ErrVerifyFailed, err)
	}
	if err != nil {
		return fmt.Errorf("VerifySet: %w", err)
	}
	if err = compare("kernel", got, c); err != nil {
		return err
	}
	ref, err := ReferenceProduct(a, b)
	if err != nil {
		return fmt.Errorf("VerifySet: %w", err)
	}

	return compare("reference", ref, c)
}

func compare(who string, want, have *matrix.Dense) error {
	if have == nil {
		return fmt.Errorf("VerifySet: %w", matrix.ErrNilMatrix)
	}
	if want.Rows() != have.Rows() || want.Cols() != have.Cols() {
		return fmt.Errorf("%w: %s: answer is %dx%d, product is %dx%d",
			ErrVerifyFailed, who, have.Rows(), have.Cols(), want.Rows(), want.Cols())
	}
	i, j, diff, err := want.FirstDiff(have)
	if err != nil {
		return fmt.Errorf("VerifySet: %w", err)
	}
	if diff {
		w, _ := want.At(i, j)
		h, _ := have.At(i, j)
		return fmt.Errorf("%w: %s: cell (%d,%d) is %d, want %d", ErrVerifyFailed, who, i, j, h, w)
	}

	return nil
}

// Result is the outcome of checking one Job.
type Result struct {
	Job Job
	Err error // nil on pass
}

// VerifyPlan reads and checks every job of p in dir. It always checks all
// jobs; the returned error joins the failures and matches ErrVerifyFailed
// when any answer was wrong. Unreadable files are reported as their
// I/O or matfile errors.
func VerifyPlan(dir string, p Plan) ([]Result, error) {
	if len(p.Jobs) == 0 {
		return nil, fmt.Errorf("VerifyPlan: %w", ErrNoJobs)
	}
	results := make([]Result, 0, len(p.Jobs))
	var errs []error
	for _, job := range p.Jobs {
		err := verifyJob(dir, p, job)
		results = append(results, Result{Job: job, Err: err})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", job.Names.C, err))
		}
	}

	return results, errors.Join(errs...)
}

func verifyJob(dir string, p Plan, job Job) error {
	paths := job.Names.In(dir)
	var ms [3]*matrix.Dense
	for i, path := range []string{paths.A, paths.B, paths.C} {
		m, err := matfile.ReadFile(path, p.Format)
		if err != nil {
			return err
		}
		ms[i] = m
	}
	want := job.Dims
	got := Dims{Rows: ms[0].Rows(), Inner: ms[0].Cols(), Cols: ms[1].Cols()}
	if want.Validate() == nil && got != want {
		return fmt.Errorf("%w: files hold %v, expected %v", ErrVerifyFailed, got, want)
	}

	return VerifySet(ms[0], ms[1], ms[2], matrix.WithLoopOrder(p.LoopOrder))
}
