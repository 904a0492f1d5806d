// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, heap resident).
//
// Purpose:
//   - Provide the default alignment matrix: one contiguous []Cell of width*height.
//   - Construction only fails on an invalid shape; there is no resource to release.
//
// Complexity quicksheet:
//   - NewDense: O(w*h) zero-init; At/Set: O(1); Row/RowPair: O(1).

package matrix

// Dense is the heap-resident backend.
type Dense[S Score] struct {
	grid[S]
}

// Compile-time assertion: *Dense implements Storage.
var _ Storage[int] = (*Dense[int])(nil)

// NewDense creates a width×height matrix with zero-valued cells (score 0, Stop).
// MAIN DESCRIPTION:
//   - Validate the shape, then allocate one flat buffer.
//
// Errors:
//   - ErrInvalidDimensions when width or height ≤ 0 or the product overflows.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func NewDense[S Score](width, height int) (*Dense[S], error) {
	n, err := cellCount(width, height, 0)
	if err != nil {
		return nil, err
	}

	return &Dense[S]{grid: grid[S]{
		kind:   "Dense",
		width:  width,
		height: height,
		cells:  make([]Cell[S], n), // make() zero-fills deterministically
	}}, nil
}

// Backend reports InMemory.
func (m *Dense[S]) Backend() Backend { return InMemory }

// Close drops the buffer reference. Idempotent.
func (m *Dense[S]) Close() error {
	m.closed = true
	m.cells = nil

	return nil
}
