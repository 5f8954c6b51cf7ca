// SPDX-License-Identifier: MIT

// Command matgen writes and checks binary matrix-multiplication fixtures.
//
//	matgen sweep                 # mat_{i}_{A,B,C} for 64..1024, header-first
//	matgen fixed                 # matA/matB/matC, 8×8×8, header-first
//	matgen gen 4 3 5             # matA/matB/matC, 4×3×5, data-first
//	matgen verify proj1/data     # recompute every C and compare
//	matgen inspect proj1/data/matC.ans
//	matgen install proj1/data ../harness/data
package main

func main() {
	Execute()
}
