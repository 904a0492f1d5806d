// SPDX-License-Identifier: MIT

package align

import (
	"errors"

	"github.com/katalvlaran/lvalign/scoring"
)

// All runs the forward pass and returns the handle enumerating every optimal
// alignment. The caller must Close it.
func All[T any, S scoring.Number](
	x, y []T,
	cost CostFunc[T, S],
	strategy scoring.Strategy[S],
	opts ...Option,
) (*Alignments[S], error) {
	return Fill(x, y, cost, strategy, opts...)
}

// Align returns the first optimal alignment of x and y.
// ok is false when no non-empty path exists, e.g. both sequences are empty
// or a local alignment finds nothing below its upper bound.
// The matrix is released before returning.
func Align[T any, S scoring.Number](
	x, y []T,
	cost CostFunc[T, S],
	strategy scoring.Strategy[S],
	opts ...Option,
) (al Alignment[S], ok bool, err error) {
	set, err := Fill(x, y, cost, strategy, opts...)
	if err != nil {
		return Alignment[S]{}, false, err
	}
	defer func() { err = errors.Join(err, set.Close()) }()

	return set.Alignment()
}

// Distance returns the score of the best alignment of x and y.
// ok is false under the same conditions as Align.
func Distance[T any, S scoring.Number](
	x, y []T,
	cost CostFunc[T, S],
	strategy scoring.Strategy[S],
	opts ...Option,
) (score S, ok bool, err error) {
	al, ok, err := Align(x, y, cost, strategy, opts...)
	if err != nil || !ok {
		return score, false, err
	}

	return al.Score, true, nil
}
