// SPDX-License-Identifier: MIT

package scoring

import (
	"math"
	"unsafe"

	"github.com/katalvlaran/lvalign/matrix"
)

// Number is the score constraint: any signed integer or floating-point type.
type Number = matrix.Score

// Unbounded disables the diagonal band.
const Unbounded = -1

// Penalty holds the per-step costs of a discrete model.
// For Warping, Match is added to diagonal moves and Gap is the slope penalty.
type Penalty[S Number] struct {
	Match    S `json:"match" toml:"match"`
	Mismatch S `json:"mismatch" toml:"mismatch"`
	Gap      S `json:"gap" toml:"gap"`
}

// Bounds is an inclusive clamp range [Start, End].
type Bounds[S Number] struct {
	Start S `json:"start" toml:"start"`
	End   S `json:"end" toml:"end"`
}

// Candidate is a scored cursor offered to PickOptimum.
type Candidate[S Number] struct {
	Score  S
	Cursor matrix.Cursor
}

// Transitions are the additive costs of the three moves into one cell.
type Transitions[S Number] struct {
	Align  S
	Delete S
	Insert S
}

// Cell clamps score into b and returns the resulting matrix cell.
//
//   - score <= Start  → (Start, Stop)
//   - score >= End    → (End, Stop)
//   - NaN             → (End, Stop)
//   - otherwise       → (score, steps)
//
// Reaching a bound is inclusive: a score equal to End is not extendable.
func (b Bounds[S]) Cell(score S, steps matrix.Mask) matrix.Cell[S] {
	switch {
	case score != score: // NaN
		return matrix.Cell[S]{Score: b.End, Steps: matrix.Stop}
	case score <= b.Start:
		return matrix.Cell[S]{Score: b.Start, Steps: matrix.Stop}
	case score >= b.End:
		return matrix.Cell[S]{Score: b.End, Steps: matrix.Stop}
	default:
		return matrix.Cell[S]{Score: score, Steps: steps}
	}
}

// Contains reports whether Start <= s <= End.
func (b Bounds[S]) Contains(s S) bool { return b.Start <= s && s <= b.End }

// Unreachable returns the cell written outside the band.
func (b Bounds[S]) Unreachable() matrix.Cell[S] {
	return matrix.Cell[S]{Score: b.End, Steps: matrix.Stop}
}

// FullRange returns [Lowest, Highest] for S.
func FullRange[S Number]() Bounds[S] {
	return Bounds[S]{Start: Lowest[S](), End: Highest[S]()}
}

// IsFloat reports whether S is a floating-point type.
func IsFloat[S Number]() bool {
	var half S = 1
	half /= 2

	return half != 0
}

// Highest returns the largest finite value of S.
func Highest[S Number]() S {
	var z S
	if IsFloat[S]() {
		if unsafe.Sizeof(z) == 4 {
			f := float32(math.MaxFloat32)
			return S(f)
		}
		f := math.MaxFloat64
		return S(f)
	}
	// Sum powers of two until the next one wraps negative.
	var h S
	for v := S(1); v > 0; v *= 2 {
		h += v
	}

	return h
}

// Lowest returns the smallest value of S: MinInt for integers, -MaxFloat for floats.
func Lowest[S Number]() S {
	h := Highest[S]()
	if IsFloat[S]() {
		return -h
	}

	return -h - 1
}

// Add returns a+b saturated to [Lowest, Highest] for integer types.
// Floating-point sums follow IEEE-754 and are clamped later by Bounds.Cell.
func Add[S Number](a, b S) S {
	s := a + b
	if IsFloat[S]() {
		return s
	}
	switch {
	case b > 0 && s < a:
		return Highest[S]()
	case b < 0 && s > a:
		return Lowest[S]()
	}

	return s
}
