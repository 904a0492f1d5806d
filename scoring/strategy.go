// SPDX-License-Identifier: MIT

package scoring

// Strategy is the score model driving one alignment pass.
// Implementations are pure: every method depends only on its arguments and
// the immutable configuration.
type Strategy[S Number] interface {
	// Penalty returns the step costs.
	Penalty() Penalty[S]

	// Window returns the band half-width, or Unbounded.
	Window() int

	// Bounds returns the inclusive clamp range.
	Bounds() Bounds[S]

	// BoundaryScore returns the score of the next row-0 / column-0 cell given
	// the previous one.
	BoundaryScore(prev S) S

	// PickOptimum returns whichever of best and candidate should be the
	// terminal cell. Candidates are offered in row-major order.
	PickOptimum(best, candidate Candidate[S]) Candidate[S]

	// Transitions returns the additive costs of Align, Delete and Insert moves
	// into a cell whose pairwise cost is cost.
	Transitions(cost S) Transitions[S]
}

// Compile-time assertions.
var (
	_ Strategy[int]     = Global[int]{}
	_ Strategy[int]     = Local[int]{}
	_ Strategy[float64] = Warping[float64]{}
)

// towardCorner prefers candidate when it lies at or below-right of best.
func towardCorner[S Number](best, candidate Candidate[S]) Candidate[S] {
	if candidate.Cursor.X >= best.Cursor.X && candidate.Cursor.Y >= best.Cursor.Y {
		return candidate
	}

	return best
}

// ---------- Global ----------

// Global is the Needleman-Wunsch family: both sequences are consumed in full.
type Global[S Number] struct {
	Options[S]
}

// NewGlobal returns a global strategy over DefaultOptions adjusted by opts.
func NewGlobal[S Number](opts ...Option[S]) Global[S] {
	return Global[S]{Options: gatherOptions(DefaultOptions[S](), opts)}
}

// BoundaryScore accumulates one gap per boundary step.
func (g Global[S]) BoundaryScore(prev S) S { return Add(prev, g.penalty.Gap) }

// PickOptimum prefers the candidate closest to the bottom-right corner.
func (g Global[S]) PickOptimum(best, candidate Candidate[S]) Candidate[S] {
	return towardCorner(best, candidate)
}

// Transitions applies Match when cost <= threshold, Mismatch otherwise.
func (g Global[S]) Transitions(cost S) Transitions[S] { return g.discrete(cost) }

// ---------- Local ----------

// Local is the Smith-Waterman family: the best-scoring substring pair.
type Local[S Number] struct {
	Options[S]
}

// NewLocal returns a local strategy. Its default bounds are [Lowest, 0] so
// that any path whose score reaches zero restarts.
func NewLocal[S Number](opts ...Option[S]) Local[S] {
	base := DefaultOptions[S]()
	base.bounds = Bounds[S]{Start: Lowest[S]()}

	return Local[S]{Options: gatherOptions(base, opts)}
}

// BoundaryScore pins every boundary cell to the upper bound, making it a
// restart point.
func (l Local[S]) BoundaryScore(S) S { return l.bounds.End }

// PickOptimum prefers the lower score; on equal scores the later candidate wins.
func (l Local[S]) PickOptimum(best, candidate Candidate[S]) Candidate[S] {
	if candidate.Score <= best.Score {
		return candidate
	}

	return best
}

// Transitions applies Match when cost <= threshold, Mismatch otherwise.
func (l Local[S]) Transitions(cost S) Transitions[S] { return l.discrete(cost) }

// ---------- Warping ----------

// Warping is dynamic time warping: every move pays the pairwise cost, gaps
// additionally pay the slope penalty (Penalty.Gap).
type Warping[S Number] struct {
	Options[S]
}

// NewWarping returns a warping strategy with zero penalties and bounds
// [-Highest, Highest], so a zero distance stays extendable.
func NewWarping[S Number](opts ...Option[S]) Warping[S] {
	h := Highest[S]()
	base := DefaultOptions[S]()
	base.penalty = Penalty[S]{}
	base.bounds = Bounds[S]{Start: -h, End: h}

	return Warping[S]{Options: gatherOptions(base, opts)}
}

// BoundaryScore makes the boundary unreachable: a warping path starts at the
// origin and must align the first elements.
func (w Warping[S]) BoundaryScore(S) S { return w.bounds.End }

// PickOptimum prefers the candidate closest to the bottom-right corner.
func (w Warping[S]) PickOptimum(best, candidate Candidate[S]) Candidate[S] {
	return towardCorner(best, candidate)
}

// Transitions adds cost to every move.
func (w Warping[S]) Transitions(cost S) Transitions[S] {
	gap := Add(cost, w.penalty.Gap)

	return Transitions[S]{Align: Add(cost, w.penalty.Match), Delete: gap, Insert: gap}
}
