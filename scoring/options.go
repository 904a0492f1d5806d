// SPDX-License-Identifier: MIT

// Package scoring: functional configuration shared by every strategy.
//
// Defaults are the Needleman-Wunsch costs over the full range of the score
// type with no band. Constructors panic only on nonsensical values
// (inverted or NaN bounds); those are programmer errors.
package scoring

// ---------- Defaults ----------

const (
	// DefaultMatch is the cost of aligning two equal elements (a bonus).
	DefaultMatch = -1

	// DefaultMismatch is the cost of aligning two different elements.
	DefaultMismatch = 1

	// DefaultGap is the cost of a deletion or insertion.
	DefaultGap = 1

	// DefaultWindow disables banding.
	DefaultWindow = Unbounded
)

// ---------- Panic messages ----------

const (
	panicInvertedBounds = "scoring: bounds start must not exceed end"
	panicNaNBounds      = "scoring: bounds must not be NaN"
)

// Option customises a strategy at construction time.
type Option[S Number] func(*Options[S])

// Options is the configuration embedded by every strategy.
// Fields are read through the Strategy accessors.
type Options[S Number] struct {
	penalty   Penalty[S]
	window    int
	bounds    Bounds[S]
	threshold S
}

// DefaultOptions returns the Needleman-Wunsch defaults:
//   - Penalty {-1, 1, 1}
//   - Window Unbounded
//   - Bounds FullRange
//   - Threshold 0 (a pairwise cost <= 0 counts as a match)
func DefaultOptions[S Number]() Options[S] {
	return Options[S]{
		penalty: Penalty[S]{Match: DefaultMatch, Mismatch: DefaultMismatch, Gap: DefaultGap},
		window:  DefaultWindow,
		bounds:  FullRange[S](),
	}
}

// WithPenalty sets the match, mismatch and gap costs.
func WithPenalty[S Number](p Penalty[S]) Option[S] {
	return func(o *Options[S]) { o.penalty = p }
}

// WithWindow sets the band half-width; any negative value means Unbounded.
func WithWindow[S Number](w int) Option[S] {
	return func(o *Options[S]) {
		if w < 0 {
			w = Unbounded
		}
		o.window = w
	}
}

// WithBounds sets the inclusive clamp range. Panics if start > end or either is NaN.
func WithBounds[S Number](start, end S) Option[S] {
	if start != start || end != end {
		panic(panicNaNBounds)
	}
	if start > end {
		panic(panicInvertedBounds)
	}

	return func(o *Options[S]) { o.bounds = Bounds[S]{Start: start, End: end} }
}

// WithThreshold sets the neutral pairwise cost: cost <= threshold selects
// Match, anything above selects Mismatch. Ignored by Warping.
func WithThreshold[S Number](t S) Option[S] {
	return func(o *Options[S]) { o.threshold = t }
}

// gatherOptions applies opts over base.
func gatherOptions[S Number](base Options[S], opts []Option[S]) Options[S] {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}

	return base
}

// Penalty returns the step costs.
func (o Options[S]) Penalty() Penalty[S] { return o.penalty }

// Window returns the band half-width or Unbounded.
func (o Options[S]) Window() int { return o.window }

// Bounds returns the clamp range.
func (o Options[S]) Bounds() Bounds[S] { return o.bounds }

// Threshold returns the neutral pairwise cost.
func (o Options[S]) Threshold() S { return o.threshold }

// discrete selects Match or Mismatch by the threshold; both gaps cost Gap.
func (o Options[S]) discrete(cost S) Transitions[S] {
	align := o.penalty.Mismatch
	if cost <= o.threshold {
		align = o.penalty.Match
	}

	return Transitions[S]{Align: align, Delete: o.penalty.Gap, Insert: o.penalty.Gap}
}
