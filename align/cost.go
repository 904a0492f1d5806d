// SPDX-License-Identifier: MIT

package align

import "github.com/katalvlaran/lvalign/scoring"

// CostFunc returns the pairwise cost of aligning x with y.
// Discrete strategies compare it against their threshold (match when
// cost <= threshold); Warping adds it to every move.
type CostFunc[T any, S scoring.Number] func(x, y T) S

// Equality costs 0 for equal elements and 1 otherwise.
func Equality[T comparable, S scoring.Number]() CostFunc[T, S] {
	return func(x, y T) S {
		if x == y {
			return 0
		}

		return 1
	}
}

// AbsDiff costs |x-y|.
func AbsDiff[S scoring.Number]() CostFunc[S, S] {
	return func(x, y S) S {
		if x > y {
			return x - y
		}

		return y - x
	}
}
