// SPDX-License-Identifier: MIT

// Package align - backtrace iterator.
//
// The search is a pre-order DFS over predecessor directions driven by an
// explicit stack, so path length is bounded by memory, not by goroutine stack.
//
// Stack frames carry (incoming direction, cursor, depth). A popped frame
// records its direction at index depth-1 of a shared buffer, truncating
// whatever a sibling branch left there. A branch ends at a Stop cell or at
// the origin; the buffer, reversed, is then one alignment.
//
// Complexity:
//   - O(path length) per yielded alignment plus the abandoned branches.
//   - The number of alignments can grow exponentially with the number of ties.

package align

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvalign/matrix"
	"github.com/katalvlaran/lvalign/scoring"
)

// pushOrder lists directions so that Align is popped, and explored, first.
var pushOrder = [...]matrix.Mask{matrix.Insert, matrix.Delete, matrix.Align}

// frame is one pending DFS node.
type frame struct {
	step  matrix.Mask   // direction that led here from the successor; Stop at the root
	at    matrix.Cursor // cell to examine
	depth int           // number of steps between the terminal and at
}

// Iter lazily enumerates optimal alignments. Not safe for concurrent use.
type Iter[S scoring.Number] struct {
	store    matrix.Storage[S]
	terminal matrix.Cursor
	score    S
	stack    []frame
	steps    []matrix.Mask // backward directions, steps[0] enters the terminal
	err      error
}

func newIter[S scoring.Number](store matrix.Storage[S], terminal matrix.Cursor, score S) *Iter[S] {
	return &Iter[S]{
		store:    store,
		terminal: terminal,
		score:    score,
		stack:    []frame{{step: matrix.Stop, at: terminal}},
	}
}

// Next advances the search to the next complete path. It returns false when
// every path has been produced or a read failed (see Err).
func (it *Iter[S]) Next() (Alignment[S], bool) {
	for len(it.stack) > 0 {
		f := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		if f.depth > 0 {
			it.steps = append(it.steps[:f.depth-1], f.step)
		} else {
			it.steps = it.steps[:0]
		}

		cell, err := it.store.At(f.at)
		if err != nil {
			it.fail(err)
			return Alignment[S]{}, false
		}
		if !cell.Steps.Valid() {
			panic(panicInvalidMask)
		}

		if cell.Steps == matrix.Stop || f.at.IsOrigin() {
			if len(it.steps) == 0 {
				continue
			}

			return it.emit(f.at), true
		}

		for _, d := range pushOrder {
			if !cell.Steps.Has(d) {
				continue
			}
			prev, ok := f.at.Backward(d)
			if !ok {
				it.fail(fmt.Errorf("Iter.Next: %v from %v: %w", d, f.at, ErrBrokenPath))
				return Alignment[S]{}, false
			}
			it.stack = append(it.stack, frame{step: d, at: prev, depth: f.depth + 1})
		}
	}

	return Alignment[S]{}, false
}

// Err returns the first error that stopped the iteration, if any.
func (it *Iter[S]) Err() error { return it.err }

func (it *Iter[S]) fail(err error) {
	it.err = err
	it.stack = nil
}

// emit copies the buffer into a forward-ordered alignment.
func (it *Iter[S]) emit(origin matrix.Cursor) Alignment[S] {
	steps := slices.Clone(it.steps)
	slices.Reverse(steps)

	return Alignment[S]{
		Origin:   origin,
		Terminal: it.terminal,
		Score:    it.score,
		steps:    steps,
	}
}
