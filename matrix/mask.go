// SPDX-License-Identifier: MIT

package matrix

import "strings"

// Mask is a set of predecessor directions recorded in a cell.
// The empty set is Stop: the cell cannot be extended backwards.
//
// A cell may carry 1–3 directions at once when several moves tie for the
// optimal score; all of them are explored during backtracking.
type Mask uint8

const (
	// Stop marks the origin or a non-extendable (clamped) cell.
	Stop Mask = 0

	// Align consumes one element from each sequence (match or substitution).
	Align Mask = 1 << iota

	// Delete consumes one element of X and none of Y.
	Delete

	// Insert consumes one element of Y and none of X.
	Insert
)

// directions lists the single-direction masks in canonical order.
var directions = [...]Mask{Align, Delete, Insert}

const (
	panicInvalidMask = "matrix: direction mask must be a single direction or Stop"
	allDirections    = Align | Delete | Insert
)

// Has reports whether every direction of d is present in m.
func (m Mask) Has(d Mask) bool { return d != Stop && m&d == d }

// Union returns m ∪ d.
func (m Mask) Union(d Mask) Mask { return m | d }

// Count returns the number of directions in m (0..3).
func (m Mask) Count() int {
	n := 0
	for _, d := range directions {
		if m&d != 0 {
			n++
		}
	}

	return n
}

// IsSingle reports whether m holds exactly one direction.
func (m Mask) IsSingle() bool { return m == Align || m == Delete || m == Insert }

// Valid reports whether m only uses known direction bits.
func (m Mask) Valid() bool { return m&^allDirections == 0 }

// Each calls fn for every direction in m, in the order Align, Delete, Insert.
func (m Mask) Each(fn func(d Mask)) {
	for _, d := range directions {
		if m&d != 0 {
			fn(d)
		}
	}
}

// delta returns the forward (dx, dy) of a single direction or Stop.
// Any other value is an invariant violation and panics.
func (m Mask) delta() (dx, dy int) {
	switch m {
	case Align:
		return 1, 1
	case Delete:
		return 1, 0
	case Insert:
		return 0, 1
	case Stop:
		return 0, 0
	default:
		panic(panicInvalidMask)
	}
}

// String renders the set compactly: "A", "D", "I" in canonical order, or "·" for Stop.
func (m Mask) String() string {
	if m == Stop {
		return "·"
	}
	var sb strings.Builder
	if m&Align != 0 {
		sb.WriteByte('A')
	}
	if m&Delete != 0 {
		sb.WriteByte('D')
	}
	if m&Insert != 0 {
		sb.WriteByte('I')
	}
	if !m.Valid() {
		sb.WriteByte('?')
	}

	return sb.String()
}
