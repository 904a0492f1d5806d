// SPDX-License-Identifier: MIT

// Package align - banded forward pass.
//
// Order of writes:
//   - (0,0) = (0, Stop); row 0 left to right, tagged Delete.
//   - For each row y >= 1: column 0 (Insert), then columns 1..m. Columns
//     outside the band receive the unreachable cell (Bounds.End, Stop).
//
// Every cell is written exactly once. Every reachable cell is offered to
// PickOptimum in the same order, starting from the origin as the initial best.
// A cell is unreachable when it holds (Bounds.End, Stop).
//
// Complexity:
//   - Time O(m*n) writes, O((m+n)*window) scored cells when banded.
//   - Space O(m*n) cells on the selected backend.

package align

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvalign/matrix"
	"github.com/katalvlaran/lvalign/scoring"
)

// pass holds the state of one forward pass.
type pass[T any, S scoring.Number] struct {
	x, y     []T
	cost     CostFunc[T, S]
	strategy scoring.Strategy[S]
	bounds   scoring.Bounds[S]
	store    matrix.Storage[S]
	best     scoring.Candidate[S]
	scored   int // cells computed from neighbours (band cells)
}

// Fill runs the forward pass of x against y and returns the filled matrix
// together with the terminal cursor chosen by the strategy.
//
// The returned handle owns the matrix and must be closed. On error nothing
// is leaked: a partially filled matrix is closed before returning.
//
// Errors:
//   - ErrNilCost, ErrNilStrategy for missing collaborators.
//   - matrix.ErrStorage when the mapped backend cannot be created.
//   - matrix.ErrUnknownBackend for an unsupported backend.
func Fill[T any, S scoring.Number](
	x, y []T,
	cost CostFunc[T, S],
	strategy scoring.Strategy[S],
	opts ...Option,
) (*Alignments[S], error) {
	if cost == nil {
		return nil, ErrNilCost
	}
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	o := gatherOptions(opts)

	width, height := len(x)+1, len(y)+1
	store, err := matrix.NewStorage[S](o.Backend, o.Dir, width, height)
	if err != nil {
		return nil, fmt.Errorf("align.Fill(%dx%d, %s): %w", width, height, o.Backend, err)
	}
	o.Logger.Debug("alignment matrix allocated",
		zap.Stringer("backend", o.Backend),
		zap.Int("width", width),
		zap.Int("height", height))

	p := &pass[T, S]{
		x:        x,
		y:        y,
		cost:     cost,
		strategy: strategy,
		bounds:   strategy.Bounds(),
		store:    store,
		best:     scoring.Candidate[S]{Cursor: matrix.Origin},
	}
	if err = p.run(); err != nil {
		if cerr := store.Close(); cerr != nil {
			o.Logger.Warn("failed to release alignment matrix", zap.Error(cerr))
		}

		return nil, fmt.Errorf("align.Fill(%dx%d): %w", width, height, err)
	}

	o.Logger.Debug("forward pass complete",
		zap.Int("cells_scored", p.scored),
		zap.Stringer("terminal", p.best.Cursor),
		zap.Any("score", p.best.Score))

	return &Alignments[S]{
		store:    store,
		terminal: p.best.Cursor,
		score:    p.best.Score,
		log:      o.Logger,
	}, nil
}

// run writes every cell of the matrix in row-major order.
func (p *pass[T, S]) run() error {
	m, n := len(p.x), len(p.y)
	window := p.strategy.Window()
	unreachable := p.bounds.Unreachable()

	row, err := p.store.Row(0)
	if err != nil {
		return err
	}
	row[0] = matrix.Cell[S]{Steps: matrix.Stop}
	for x := 1; x <= m; x++ {
		row[x] = p.bounds.Cell(p.strategy.BoundaryScore(row[x-1].Score), matrix.Delete)
		p.offer(row[x], matrix.Cursor{X: x, Y: 0})
	}

	for y := 1; y <= n; y++ {
		prev, cur, err := p.store.RowPair(y)
		if err != nil {
			return err
		}
		cur[0] = p.bounds.Cell(p.strategy.BoundaryScore(prev[0].Score), matrix.Insert)
		p.offer(cur[0], matrix.Cursor{X: 0, Y: y})

		lo, hi := band(y, m, n, window)
		for x := 1; x <= m; x++ {
			if x < lo || x > hi {
				cur[x] = unreachable
				continue
			}
			cur[x] = p.score(prev, cur, x, y)
			p.scored++
			p.offer(cur[x], matrix.Cursor{X: x, Y: y})
		}
	}

	return nil
}

// score computes cell (x, y) from its diagonal, left and upper neighbours.
// All tied minima are recorded; the result is clamped into the bounds.
func (p *pass[T, S]) score(prev, cur []matrix.Cell[S], x, y int) matrix.Cell[S] {
	t := p.strategy.Transitions(p.cost(p.x[x-1], p.y[y-1]))
	align := scoring.Add(prev[x-1].Score, t.Align)
	del := scoring.Add(cur[x-1].Score, t.Delete)
	ins := scoring.Add(prev[x].Score, t.Insert)

	best := align
	if del < best || best != best {
		best = del
	}
	if ins < best || best != best {
		best = ins
	}

	var steps matrix.Mask
	if align <= best {
		steps |= matrix.Align
	}
	if del <= best {
		steps |= matrix.Delete
	}
	if ins <= best {
		steps |= matrix.Insert
	}

	return p.bounds.Cell(best, steps)
}

// offer passes a reachable cell to PickOptimum.
func (p *pass[T, S]) offer(cell matrix.Cell[S], at matrix.Cursor) {
	if cell.Steps == matrix.Stop && cell.Score == p.bounds.End {
		return
	}
	p.best = p.strategy.PickOptimum(p.best, scoring.Candidate[S]{Score: cell.Score, Cursor: at})
}
