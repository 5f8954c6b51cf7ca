// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/QuadnucYard/dsa-practice-code/fixture"
	"github.com/QuadnucYard/dsa-practice-code/matfile"
	"github.com/QuadnucYard/dsa-practice-code/matrix"
)

func newVerifyCmd() *cobra.Command {
	var f planFlags
	cmd := &cobra.Command{
		Use:     "verify [dir]",
		Short:   "Recompute A·B for every set in dir and compare with C",
		Aliases: []string{"v"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := defaultDataDir
			if len(args) == 1 {
				dir = args[0]
			}
			p, err := f.plan(dir)
			if err != nil {
				return err
			}
			results, err := fixture.VerifyPlan(dir, p)
			out := cmd.OutOrStdout()
			for _, r := range results {
				switch {
				case r.Err == nil && r.Job.Dims.Validate() == nil:
					fmt.Fprintf(out, "Pass: %s %v\n", r.Job.Names.C, r.Job.Dims)
				case r.Err == nil:
					fmt.Fprintf(out, "Pass: %s\n", r.Job.Names.C)
				default:
					fmt.Fprintf(out, "Fail: %s: %v\n", r.Job.Names.C, r.Err)
				}
			}

			return err
		},
	}
	f.register(cmd)

	return cmd
}

func newInstallCmd() *cobra.Command {
	var f planFlags
	cmd := &cobra.Command{
		Use:   "install src dst",
		Short: "Verify the fixtures in src, then copy src into dst",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.plan(args[0])
			if err != nil {
				return err
			}
			if err = fixture.Install(args[0], args[1], p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "installed %d set(s) into %s\n", len(p.Jobs), args[1])

			return nil
		},
	}
	f.register(cmd)

	return cmd
}

func newInspectCmd() *cobra.Command {
	var (
		layout, order string
		rows, cols    int
	)
	cmd := &cobra.Command{
		Use:     "inspect file",
		Short:   "Print the shape and a truncated view of one matrix file",
		Aliases: []string{"i"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			o, err := matfile.ParseOrder(order)
			if err != nil {
				return err
			}
			l, note, err := pickLayout(path, layout, o)
			if err != nil {
				return err
			}
			m, err := matfile.ReadFile(path, matfile.Format{Layout: l, Order: o})
			if err != nil {
				return err
			}
			st, err := matrix.Summarize(m)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: (%d, %d) %s/%s%s\n", path, m.Rows(), m.Cols(), l, o.Resolve(), note)
			fmt.Fprintln(out, m.Preview(rows, cols))
			fmt.Fprintf(out, "min=%d max=%d mean=%.2f\n", st.Min, st.Max, st.Mean())

			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&layout, "layout", "", "File layout; empty probes the file")
	fl.StringVar(&order, "order", matfile.Native.String(), "Byte order: native, little or big")
	fl.IntVar(&rows, "rows", matrix.DefaultRowLimit, "Rows to show")
	fl.IntVar(&cols, "cols", matrix.DefaultColLimit, "Columns to show")

	return cmd
}

var errNoLayout = errors.New("no layout fits the file size")

// pickLayout parses name, or probes path when name is empty. A file that
// fits both layouts is read header-first and flagged in the note.
func pickLayout(path, name string, o matfile.Order) (matfile.Layout, string, error) {
	if name != "" {
		l, err := matfile.ParseLayout(name)
		return l, "", err
	}
	fits, err := matfile.Probe(path, o)
	if err != nil {
		return 0, "", err
	}
	switch len(fits) {
	case 0:
		return 0, "", fmt.Errorf("%s: %w: %w", path, errNoLayout, matfile.ErrShapeMismatch)
	case 1:
		return fits[0], " (probed)", nil
	}

	return matfile.HeaderFirst, " (ambiguous, both layouts fit)", nil
}
