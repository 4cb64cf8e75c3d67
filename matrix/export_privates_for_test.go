// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED helpers and the resolved Options to matrix_test ONLY.
//   - Keep the production API narrow while letting black-box tests check the
//     1-based translation layer and option resolution directly.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds.

var (
	// ExportedIndexOf exposes (*Dense).indexOf for white-box tests.
	ExportedIndexOf = (*Dense).indexOf
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicMaxOrderInvalid_TestOnly = panicMaxOrderInvalid
)

// OptionsSnapshot is a read-only copy of the resolved internal Options.
type OptionsSnapshot struct {
	Shortcuts bool
	MaxOrder  int
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the engine does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Shortcuts: o.shortcuts, MaxOrder: o.maxOrder}
}
