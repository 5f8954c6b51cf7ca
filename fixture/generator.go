// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/QuadnucYard/dsa-practice-code/builder"
	"github.com/QuadnucYard/dsa-practice-code/matfile"
	"github.com/QuadnucYard/dsa-practice-code/matrix"
)

const (
	methodBuild = "Build"
	methodRun   = "Run"
)

// Set is one generated triple with C = A·B.
type Set struct {
	A, B, C *matrix.Dense
}

// Dims returns the shape of the set.
func (s Set) Dims() Dims {
	return Dims{Rows: s.A.Rows(), Inner: s.A.Cols(), Cols: s.B.Cols()}
}

// Generator builds fixture sets. It is not safe for concurrent use: the
// configured RNG is consumed in call order.
type Generator struct {
	cfg config
}

// NewGenerator resolves opts on top of the defaults.
func NewGenerator(opts ...Option) *Generator {
	return &Generator{cfg: newConfig(opts...)}
}

// Format returns the configured file format.
func (g *Generator) Format() matfile.Format { return g.cfg.format }

func (g *Generator) builderOptions() []builder.Option {
	if g.cfg.rng == nil {
		return nil
	}

	return []builder.Option{builder.WithRand(g.cfg.rng)}
}

// Build draws A (Rows×Inner) then B (Inner×Cols), both uniform in [0,255),
// and computes C = A·B.
//
// Errors:
//   - matrix.ErrInvalidDimensions for a non-positive extent.
//   - matrix.ErrElementOverflow if a cell of C leaves int32.
func (g *Generator) Build(d Dims) (Set, error) {
	if err := d.Validate(); err != nil {
		return Set{}, fmt.Errorf("%s: %w", methodBuild, err)
	}
	bopts := g.builderOptions()
	a, err := builder.Random(d.Rows, d.Inner, bopts...)
	if err != nil {
		return Set{}, fmt.Errorf("%s: A: %w", methodBuild, err)
	}
	b, err := builder.Random(d.Inner, d.Cols, bopts...)
	if err != nil {
		return Set{}, fmt.Errorf("%s: B: %w", methodBuild, err)
	}
	c, err := matrix.Mul(a, b, matrix.WithLoopOrder(g.cfg.loopOrder))
	if err != nil {
		return Set{}, fmt.Errorf("%s: C: %w", methodBuild, err)
	}

	return Set{A: a, B: b, C: c}, nil
}

// Run builds every job in order and writes its three files into dir, then
// writes manifest.yaml if enabled. The returned Manifest describes the run
// whether or not it was written.
//
// Files written before a failure are left in place.
func (g *Generator) Run(dir string, jobs ...Job) (*Manifest, error) {
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%s: %w", methodRun, ErrNoJobs)
	}
	if g.cfg.createDir {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRun, err)
		}
	}

	man := g.newManifest()
	for _, job := range jobs {
		set, err := g.Build(job.Dims)
		if err != nil {
			return nil, fmt.Errorf("%s: %v: %w", methodRun, job.Dims, err)
		}
		paths := job.Names.In(dir)
		for _, out := range []struct {
			path string
			m    *matrix.Dense
		}{{paths.A, set.A}, {paths.B, set.B}, {paths.C, set.C}} {
			if err = matfile.WriteFile(out.path, out.m, g.cfg.format); err != nil {
				return nil, fmt.Errorf("%s: %w", methodRun, err)
			}
			g.cfg.logger.Printf("(%d, %d) %s", out.m.Rows(), out.m.Cols(), out.path)
		}
		man.Sets = append(man.Sets, SetEntry{Dims: job.Dims, Names: job.Names})
	}

	if g.cfg.manifest {
		if err := WriteManifest(filepath.Join(dir, ManifestName), man); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRun, err)
		}
	}

	return man, nil
}

func (g *Generator) newManifest() *Manifest {
	id := g.cfg.runID
	if id == "" {
		id = uuid.New().String()
	}

	return &Manifest{
		RunID:     id,
		Version:   matfile.FormatVersion,
		Layout:    g.cfg.format.Layout.String(),
		Order:     g.cfg.format.Order.Resolve().String(),
		LoopOrder: g.cfg.loopOrder.String(),
		Seed:      g.cfg.seed,
	}
}
