// SPDX-License-Identifier: MIT

// Package matrix: small shared types.
// Constraints for numeric element types and closed enumerations used by
// façade operations live here; errors and options stay in their own files.
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types that have a multiplicative identity.
// NewIdentity and the linalg package require it.
type Number interface {
	constraints.Integer | constraints.Float
}

// SortScope selects what Matrix.Sort reorders.
type SortScope int

const (
	// SortAll sorts every element along the legacy linear order (row or
	// column wrap).
	SortAll SortScope = iota
	// SortEachRow sorts every row independently.
	SortEachRow
	// SortEachColumn sorts every column independently.
	SortEachColumn
)

// String returns the scope name.
func (s SortScope) String() string {
	switch s {
	case SortAll:
		return "all"
	case SortEachRow:
		return "each-row"
	case SortEachColumn:
		return "each-column"
	default:
		return fmt.Sprintf("SortScope(%d)", int(s))
	}
}
