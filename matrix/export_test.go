// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the external matrix_test package.
//
// Purpose:
//   - Expose panic messages and a read-only snapshot of the internal Options
//     without widening the production API.

// OptionsSnapshot is a read-only view of Options.
type OptionsSnapshot struct {
	WrapByRow    bool
	GrowthFactor float64
	RowReserve   int
	ColReserve   int
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		WrapByRow:    o.wrapByRow,
		GrowthFactor: o.growthFactor,
		RowReserve:   o.rowReserve,
		ColReserve:   o.colReserve,
	}
}

const (
	PanicGrowthFactorInvalid_TestOnly = panicGrowthFactorInvalid
	PanicReserveInvalid_TestOnly      = panicReserveInvalid
)
