// SPDX-License-Identifier: MIT

// Package fixture produces and checks matrix-multiplication fixture sets.
//
// A fixture set is the triple A (R×K), B (K×M) and C = A·B (R×M), written as
// three matrix files (see package matfile). The package covers the whole
// pipeline around that triple:
//
//   - dimension sources: Sequence (square sweep), FixedDims, ParseDims
//     (three command-line tokens);
//   - file naming: SweepNames ("mat_{i}_A.in") and PlainNames ("matA.in");
//   - generation: Generator.Build for one set, Generator.Run to write a
//     list of Jobs plus an optional manifest.yaml;
//   - checking: VerifySet recomputes A·B with both the package kernel and
//     a gonum BLAS reference, VerifyPlan walks a directory;
//   - delivery: Install verifies a directory and copies it to a harness.
//
// Runs are synchronous and single-threaded. Two runs writing to the same
// directory race file by file and the last writer wins.
package fixture
