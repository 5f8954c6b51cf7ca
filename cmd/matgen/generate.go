// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/QuadnucYard/dsa-practice-code/fixture"
	"github.com/QuadnucYard/dsa-practice-code/matfile"
)

func newSweepCmd() *cobra.Command {
	var (
		f     genFlags
		sizes string
	)
	cmd := &cobra.Command{
		Use:     "sweep",
		Short:   "Write one square set per size as mat_{i}_A.in, mat_{i}_B.in, mat_{i}_C.ans",
		Aliases: []string{"s"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ns, err := fixture.ParseSizes(sizes)
			if err != nil {
				return err
			}

			return f.run(cmd, fixture.SweepJobs(ns))
		},
	}
	f.register(cmd, defaultDataDir, matfile.HeaderFirst)
	cmd.Flags().StringVar(&sizes, "sizes", sizesString(fixture.DefaultSweepSizes), "Comma separated square sizes")

	return cmd
}

func newFixedCmd() *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:   "fixed",
		Short: "Write the 8×8×8 set as matA.in, matB.in, matC.ans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return f.run(cmd, []fixture.Job{fixture.SingleJob(fixture.FixedDims)})
		},
	}
	f.register(cmd, defaultDataDir, matfile.HeaderFirst)

	return cmd
}

func newGenCmd() *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:     "gen rows inner cols",
		Short:   "Write one rows×inner · inner×cols set as matA.in, matB.in, matC.ans",
		Aliases: []string{"g"},
		Args: func(_ *cobra.Command, args []string) error {
			_, err := fixture.ParseDims(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := fixture.ParseDims(args)
			if err != nil {
				return err
			}

			return f.run(cmd, []fixture.Job{fixture.SingleJob(d)})
		},
	}
	f.register(cmd, defaultArgsDir, matfile.DataFirst)

	return cmd
}
