// SPDX-License-Identifier: MIT

package align

import (
	"slices"

	"github.com/katalvlaran/lvalign/matrix"
	"github.com/katalvlaran/lvalign/scoring"
)

// Alignment is one optimal path through the matrix.
//
// Replaying the directions from Origin reaches Terminal exactly, and every
// direction strictly advances the cursor.
type Alignment[S scoring.Number] struct {
	Origin   matrix.Cursor // first cell of the path (backtrace end)
	Terminal matrix.Cursor // last cell of the path (backtrace start)
	Score    S             // score at Terminal
	steps    []matrix.Mask // forward-ordered single directions
}

// Len returns the number of steps.
func (a Alignment[S]) Len() int { return len(a.steps) }

// Directions returns a copy of the forward-ordered directions.
func (a Alignment[S]) Directions() []matrix.Mask { return slices.Clone(a.steps) }

// End replays the directions from Origin and returns the final cursor.
func (a Alignment[S]) End() matrix.Cursor {
	c := a.Origin
	for _, d := range a.steps {
		c = c.Forward(d)
	}

	return c
}
