// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Matrix construction.
// This file defines:
//   - Option (functional option over internal Options),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWrapByRow selects row wrap for the legacy linear index (AtLinear,
	// LinearIterator, SortAll): index = row*Cols + col. false selects column
	// wrap: index = col*Rows + row.
	DefaultWrapByRow = true

	// DefaultGrowthFactor multiplies the capacity of a dimension when an
	// insert or resize outgrows it. 1 means "exact fit, reallocate every time".
	DefaultGrowthFactor = 2.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicGrowthFactorInvalid = "matrix: WithGrowthFactor: factor must be finite and >= 1"
	panicReserveInvalid      = "matrix: WithReserve: capacities must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	wrapByRow    bool    // DefaultWrapByRow
	growthFactor float64 // DefaultGrowthFactor, >= 1
	rowReserve   int     // minimum row capacity at construction
	colReserve   int     // minimum column capacity at construction
}

// WithWrapByRow selects the legacy linear wrap direction.
// true: row wrap (row*Cols+col). false: column wrap (col*Rows+row).
func WithWrapByRow(byRow bool) Option {
	return func(o *Options) { o.wrapByRow = byRow }
}

// WithGrowthFactor sets the capacity multiplier used when a dimension outgrows
// its capacity.
// Panics when f is NaN, ±Inf or < 1 (programmer error).
func WithGrowthFactor(f float64) Option {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 1 {
		panic(panicGrowthFactorInvalid)
	}

	return func(o *Options) { o.growthFactor = f }
}

// WithReserve pre-allocates capacity for at least rowCap rows and colCap
// columns. Values below the logical size are ignored.
// Panics on negative capacities.
func WithReserve(rowCap, colCap int) Option {
	if rowCap < 0 || colCap < 0 {
		panic(panicReserveInvalid)
	}

	return func(o *Options) {
		o.rowReserve = rowCap
		o.colReserve = colCap
	}
}

// defaultOptions returns Options populated with documented defaults.
func defaultOptions() Options {
	return Options{
		wrapByRow:    DefaultWrapByRow,
		growthFactor: DefaultGrowthFactor,
	}
}

// gatherOptions applies opts over defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
