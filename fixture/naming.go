// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"path/filepath"
)

// File extensions: inputs end in .in, expected outputs in .ans.
const (
	ExtInput  = ".in"
	ExtAnswer = ".ans"
)

// Names holds the three file names of one set, relative to a directory.
type Names struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
	C string `yaml:"c"`
}

// SweepNames returns mat_{i}_A.in, mat_{i}_B.in, mat_{i}_C.ans.
func SweepNames(i int) Names {
	stem := fmt.Sprintf("mat_%d_", i)

	return Names{A: stem + "A" + ExtInput, B: stem + "B" + ExtInput, C: stem + "C" + ExtAnswer}
}

// PlainNames returns matA.in, matB.in, matC.ans.
func PlainNames() Names {
	return Names{A: "matA" + ExtInput, B: "matB" + ExtInput, C: "matC" + ExtAnswer}
}

// In joins every name onto dir.
func (n Names) In(dir string) Names {
	return Names{A: filepath.Join(dir, n.A), B: filepath.Join(dir, n.B), C: filepath.Join(dir, n.C)}
}

// Job is one set to produce: its shape and its file names.
type Job struct {
	Dims  Dims
	Names Names
}

// SweepJobs pairs Sequence(sizes) with SweepNames by position.
func SweepJobs(sizes []int) []Job {
	dims := Sequence(sizes)
	jobs := make([]Job, len(dims))
	for i, d := range dims {
		jobs[i] = Job{Dims: d, Names: SweepNames(i)}
	}

	return jobs
}

// SingleJob is one set with PlainNames.
func SingleJob(d Dims) Job { return Job{Dims: d, Names: PlainNames()} }
