// SPDX-License-Identifier: MIT

package linalg

import "golang.org/x/exp/constraints"

// Real is the element constraint of every kernel: any integer or floating
// point type. Values cross the gonum bridge as float64.
type Real interface {
	constraints.Integer | constraints.Float
}

// DefaultRankTolerance is the relative singular-value cutoff used by Rank when
// the caller passes a non-positive tolerance.
const DefaultRankTolerance = 1e-12
