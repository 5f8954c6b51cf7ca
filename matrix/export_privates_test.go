// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported kernels and an options snapshot to the
// external matrix_test package. Compiled only with `go test`.

// MulDenseForTest runs the flat-buffer kernel with an explicit loop order.
var MulDenseForTest = mulDense

// NarrowForTest exposes the int64 → int32 narrowing step.
var NarrowForTest = narrow

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	LoopOrder LoopOrder
}

// GatherOptionsSnapshot resolves opts exactly like the kernels do.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{LoopOrder: o.loopOrder}
}
