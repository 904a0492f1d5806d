// SPDX-License-Identifier: MIT

// Package matrix - shared row-major cell grid.
//
// Purpose:
//   - Hold the single offset formula (x + y*width) and the bounds checks used by
//     every backend, so Dense and Mapped cannot drift apart.
//   - Backends only decide where the []Cell buffer lives (heap vs mapped file).
//
// Complexity quicksheet:
//   - At/Set: O(1); Row/RowPair: O(1) (slicing, no copy).

package matrix

import "math"

// grid is the backend-independent view over a flat cell buffer.
type grid[S Score] struct {
	kind          string    // backend tag used in error context ("Dense", "Mapped")
	width, height int       // columns and rows (both > 0)
	cells         []Cell[S] // row-major buffer, len == width*height
	closed        bool      // set by Close; all accessors fail afterwards
}

// cellCount validates a shape and returns width*height.
// Stage 1: reject non-positive sides.
// Stage 2: reject products that overflow int (or the given element size).
func cellCount(width, height int, elemSize uintptr) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, ErrInvalidDimensions
	}
	if width > math.MaxInt/height {
		return 0, ErrInvalidDimensions
	}
	n := width * height
	if elemSize > 0 && uintptr(n) > uintptr(math.MaxInt)/elemSize {
		return 0, ErrInvalidDimensions
	}

	return n, nil
}

// Width returns the column count. Complexity: O(1).
func (g *grid[S]) Width() int { return g.width }

// Height returns the row count. Complexity: O(1).
func (g *grid[S]) Height() int { return g.height }

// offset computes x + y*width or returns ErrOutOfRange / ErrClosed.
func (g *grid[S]) offset(c Cursor) (int, error) {
	if g.closed {
		return 0, ErrClosed
	}
	if c.X < 0 || c.X >= g.width || c.Y < 0 || c.Y >= g.height {
		return 0, ErrOutOfRange
	}

	return c.X + c.Y*g.width, nil
}

// At returns the cell under c or a wrapped ErrOutOfRange / ErrClosed.
func (g *grid[S]) At(c Cursor) (Cell[S], error) {
	off, err := g.offset(c)
	if err != nil {
		return Cell[S]{}, gridErrorf(g.kind, ctxAt, c, err)
	}

	return g.cells[off], nil
}

// Set overwrites the cell under c.
func (g *grid[S]) Set(c Cursor, cell Cell[S]) error {
	off, err := g.offset(c)
	if err != nil {
		return gridErrorf(g.kind, ctxSet, c, err)
	}
	g.cells[off] = cell

	return nil
}

// Row returns row y as a slice aliasing the buffer.
func (g *grid[S]) Row(y int) ([]Cell[S], error) {
	if g.closed {
		return nil, rowErrorf(g.kind, ctxRow, y, ErrClosed)
	}
	if y < 0 || y >= g.height {
		return nil, rowErrorf(g.kind, ctxRow, y, ErrOutOfRange)
	}
	start := y * g.width

	// Full slice expression caps the row so appends cannot bleed into y+1.
	return g.cells[start : start+g.width : start+g.width], nil
}

// RowPair returns rows y-1 and y as independent slices (y ≥ 1).
// The forward pass reads prev while writing cur; the slices never overlap.
func (g *grid[S]) RowPair(y int) (prev, cur []Cell[S], err error) {
	if g.closed {
		return nil, nil, rowErrorf(g.kind, ctxRowPair, y, ErrClosed)
	}
	if y < 1 || y >= g.height {
		return nil, nil, rowErrorf(g.kind, ctxRowPair, y, ErrOutOfRange)
	}
	mid := y * g.width
	prev = g.cells[mid-g.width : mid : mid]
	cur = g.cells[mid : mid+g.width : mid+g.width]

	return prev, cur, nil
}
