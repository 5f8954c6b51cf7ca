// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd assembles the command tree. Each call returns fresh commands
// with their own flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "matgen",
		Short: "Generate and check binary matrix-multiplication fixtures",
		Long: `matgen draws random integer matrices A and B (elements in [0,255)),
computes C = A·B and writes all three as binary files: a shape header of two
uint32 (rows, cols) and the int32 elements in row-major order. Inputs end in
.in, the expected answer in .ans.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newSweepCmd(),
		newFixedCmd(),
		newGenCmd(),
		newVerifyCmd(),
		newInspectCmd(),
		newInstallCmd(),
	)

	return root
}

// Execute runs the command tree and exits 1 on any error; cobra has
// already printed it as "Error: ...". This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
