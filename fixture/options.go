// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/QuadnucYard/dsa-practice-code/matfile"
	"github.com/QuadnucYard/dsa-practice-code/matrix"
)

// Option configures a Generator. Constructors panic on nonsensical values.
type Option func(*config)

// config is the resolved Generator configuration.
//
// Defaults: process-global RNG, matfile.SweepFormat, matrix.DefaultLoopOrder,
// a discarding logger, a random run id, no manifest, no directory creation.
type config struct {
	rng       *rand.Rand
	seed      *int64
	format    matfile.Format
	loopOrder matrix.LoopOrder
	logger    *log.Logger
	runID     string
	manifest  bool
	createDir bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		format:    matfile.SweepFormat,
		loopOrder: matrix.DefaultLoopOrder,
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSeed makes the run reproducible: one source seeded with seed feeds
// every matrix of the run, A before B, job by job. The seed is recorded in
// the manifest.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
		c.seed = &seed
	}
}

// WithRand injects a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fixture: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
		c.seed = nil
	}
}

// WithFormat selects the on-disk format. Panics on an invalid Format.
func WithFormat(f matfile.Format) Option {
	if err := f.Validate(); err != nil {
		panic(fmt.Sprintf("fixture: WithFormat(%v): %v", f, err))
	}

	return func(c *config) { c.format = f }
}

// WithLoopOrder selects the kernel loop order used to compute C.
// Panics on an undefined order.
func WithLoopOrder(o matrix.LoopOrder) Option {
	if !o.Valid() {
		panic(fmt.Sprintf("fixture: WithLoopOrder(%d): invalid order", int(o)))
	}

	return func(c *config) { c.loopOrder = o }
}

// WithLogger receives one line per written file. nil discards.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		c.logger = l
	}
}

// WithRunID fixes the manifest run id; empty means a random UUID.
func WithRunID(id string) Option { return func(c *config) { c.runID = id } }

// WithManifest toggles writing manifest.yaml next to the files.
func WithManifest(on bool) Option { return func(c *config) { c.manifest = on } }

// WithCreateDir makes Run create the output directory (and parents).
// Without it a missing directory is an I/O error.
func WithCreateDir(on bool) Option { return func(c *config) { c.createDir = on } }
