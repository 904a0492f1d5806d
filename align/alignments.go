// SPDX-License-Identifier: MIT

package align

import (
	"iter"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvalign/matrix"
	"github.com/katalvlaran/lvalign/scoring"
)

// Alignments is the result of a forward pass: the filled matrix and the
// terminal cursor. It owns the matrix until Close.
type Alignments[S scoring.Number] struct {
	store    matrix.Storage[S]
	terminal matrix.Cursor
	score    S
	log      *zap.Logger
	closed   bool
}

// Matrix returns the filled matrix for inspection. It is invalid after Close.
func (a *Alignments[S]) Matrix() matrix.Storage[S] { return a.store }

// Cursor returns the terminal cursor selected by the strategy.
func (a *Alignments[S]) Cursor() matrix.Cursor { return a.terminal }

// Score returns the score at the terminal cursor.
func (a *Alignments[S]) Score() S { return a.score }

// Iter returns a fresh backtrace iterator starting at the terminal cursor.
// Every call restarts the enumeration.
func (a *Alignments[S]) Iter() *Iter[S] {
	it := newIter(a.store, a.terminal, a.score)
	if a.closed {
		it.err = ErrClosed
		it.stack = nil
	}

	return it
}

// All yields every optimal alignment in backtrace order. Enumeration stops
// early if the matrix cannot be read; use Iter to observe that error.
func (a *Alignments[S]) All() iter.Seq[Alignment[S]] {
	return func(yield func(Alignment[S]) bool) {
		it := a.Iter()
		for {
			al, ok := it.Next()
			if !ok || !yield(al) {
				return
			}
		}
	}
}

// Alignment returns the first optimal alignment. ok is false when no
// non-empty path exists (for example when both sequences are empty).
func (a *Alignments[S]) Alignment() (al Alignment[S], ok bool, err error) {
	it := a.Iter()
	al, ok = it.Next()

	return al, ok, it.Err()
}

// Close releases the matrix; a memory-mapped matrix also deletes its file.
// It is safe to call more than once.
func (a *Alignments[S]) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	if err := a.store.Close(); err != nil {
		a.log.Warn("failed to release alignment matrix",
			zap.Stringer("backend", a.store.Backend()),
			zap.Error(err))

		return err
	}
	a.log.Debug("alignment matrix released", zap.Stringer("backend", a.store.Backend()))

	return nil
}
