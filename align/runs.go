// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"iter"
)

// Span is a half-open index range [Start, End).
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns End-Start.
func (s Span) Len() int { return s.End - s.Start }

// String renders the span as "[start,end)".
func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }

// Run is a maximal sequence of same-kind steps.
// Align runs cover equal-length spans of x and y; Delete runs have an empty
// Y span at the gap position; Insert runs have an empty X span.
type Run struct {
	Op Op   `json:"op"`
	X  Span `json:"x"`
	Y  Span `json:"y"`
}

// Len returns the number of steps merged into r.
func (r Run) Len() int {
	if r.Op == OpInsert {
		return r.Y.Len()
	}

	return r.X.Len()
}

// runOf opens a run of one step.
func runOf(s Step) Run {
	r := Run{Op: s.Op, X: Span{s.X, s.X}, Y: Span{s.Y, s.Y}}
	r.extend()

	return r
}

// extend grows r by one step of its own kind.
func (r *Run) extend() {
	switch r.Op {
	case OpAlign:
		r.X.End++
		r.Y.End++
	case OpDelete:
		r.X.End++
	case OpInsert:
		r.Y.End++
	}
}

// RunsOf greedily merges consecutive steps of the same operation.
func RunsOf(steps iter.Seq[Step]) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		var (
			cur  Run
			open bool
		)
		for s := range steps {
			if open && s.Op == cur.Op {
				cur.extend()
				continue
			}
			if open && !yield(cur) {
				return
			}
			cur, open = runOf(s), true
		}
		if open {
			yield(cur)
		}
	}
}

// Runs returns the run-length compressed steps of the alignment.
func (a Alignment[S]) Runs() iter.Seq[Run] { return RunsOf(a.Steps()) }
