// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/QuadnucYard/dsa-practice-code/fixture"
	"github.com/QuadnucYard/dsa-practice-code/matfile"
	"github.com/QuadnucYard/dsa-practice-code/matrix"
)

const (
	defaultDataDir = "proj1/data"
	defaultArgsDir = "output/proj1/data"
)

// formatFlags selects a matfile.Format.
type formatFlags struct {
	layout string
	order  string
}

func (f *formatFlags) register(cmd *cobra.Command, defLayout matfile.Layout) {
	cmd.Flags().StringVar(&f.layout, "layout", defLayout.String(), "File layout: header-first or data-first")
	cmd.Flags().StringVar(&f.order, "order", matfile.Native.String(), "Byte order: native, little or big")
}

func (f *formatFlags) format() (matfile.Format, error) {
	return matfile.ParseFormat(f.layout, f.order)
}

// genFlags are shared by sweep, fixed and gen.
type genFlags struct {
	formatFlags
	out       string
	seed      int64
	loopOrder string
	manifest  bool
	name      string
	quiet     bool
	mkdir     bool
}

func (f *genFlags) register(cmd *cobra.Command, defOut string, defLayout matfile.Layout) {
	f.formatFlags.register(cmd, defLayout)
	fl := cmd.Flags()
	fl.StringVarP(&f.out, "out", "o", defOut, "Output directory")
	fl.Int64Var(&f.seed, "seed", 0, "RNG seed for a reproducible run (unseeded when omitted)")
	fl.StringVar(&f.loopOrder, "loop-order", matrix.DefaultLoopOrder.String(), "Multiplication loop order: ijk, ikj, jik, jki, kij, kji or 0-5")
	fl.BoolVar(&f.manifest, "manifest", true, "Write "+fixture.ManifestName+" next to the files")
	fl.StringVarP(&f.name, "name", "n", "", "Run id recorded in the manifest (random UUID when empty)")
	fl.BoolVarP(&f.quiet, "quiet", "q", false, "Do not log written files")
	fl.BoolVar(&f.mkdir, "mkdir", false, "Create the output directory when missing")
}

func (f *genFlags) options(cmd *cobra.Command) ([]fixture.Option, error) {
	format, err := f.format()
	if err != nil {
		return nil, err
	}
	lo, err := matrix.ParseLoopOrder(f.loopOrder)
	if err != nil {
		return nil, err
	}
	var w io.Writer = cmd.ErrOrStderr()
	if f.quiet {
		w = io.Discard
	}
	opts := []fixture.Option{
		fixture.WithFormat(format),
		fixture.WithLoopOrder(lo),
		fixture.WithLogger(log.New(w, "matgen: ", 0)),
		fixture.WithRunID(f.name),
		fixture.WithManifest(f.manifest),
		fixture.WithCreateDir(f.mkdir),
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, fixture.WithSeed(f.seed))
	}

	return opts, nil
}

// run generates jobs into f.out and prints a one-line summary.
func (f *genFlags) run(cmd *cobra.Command, jobs []fixture.Job) error {
	opts, err := f.options(cmd)
	if err != nil {
		return err
	}
	man, err := fixture.NewGenerator(opts...).Run(f.out, jobs...)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d set(s) in %s (%s/%s)\n",
		man.RunID, len(man.Sets), f.out, man.Layout, man.Order)

	return nil
}

// planFlags describe a directory that may lack a manifest.
type planFlags struct {
	formatFlags
	set       string
	sizes     string
	loopOrder string
}

const (
	setPlain = "plain"
	setSweep = "sweep"
)

func (f *planFlags) register(cmd *cobra.Command) {
	f.formatFlags.register(cmd, matfile.HeaderFirst)
	fl := cmd.Flags()
	fl.StringVar(&f.set, "set", setPlain, "Without a manifest: file naming, plain (matA.in) or sweep (mat_{i}_A.in)")
	fl.StringVar(&f.sizes, "sizes", sizesString(fixture.DefaultSweepSizes), "Without a manifest: square sizes of a sweep set")
	fl.StringVar(&f.loopOrder, "loop-order", matrix.DefaultLoopOrder.String(), "Without a manifest: loop order used to recompute C")
}

// plan reads dir/manifest.yaml, falling back to the flags.
func (f *planFlags) plan(dir string) (fixture.Plan, error) {
	format, err := f.format()
	if err != nil {
		return fixture.Plan{}, err
	}
	lo, err := matrix.ParseLoopOrder(f.loopOrder)
	if err != nil {
		return fixture.Plan{}, err
	}
	fallback := fixture.Plan{Format: format, LoopOrder: lo}
	switch f.set {
	case setPlain:
		// shape unknown without a manifest; any consistent triple passes
		fallback.Jobs = []fixture.Job{fixture.SingleJob(fixture.Dims{})}
	case setSweep:
		sizes, err := fixture.ParseSizes(f.sizes)
		if err != nil {
			return fixture.Plan{}, err
		}
		fallback.Jobs = fixture.SweepJobs(sizes)
	default:
		return fixture.Plan{}, fmt.Errorf("--set %q: want %s or %s", f.set, setPlain, setSweep)
	}

	return fixture.LoadPlan(dir, fallback)
}

func sizesString(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, n := range sizes {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, ",")
}
