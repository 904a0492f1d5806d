// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the storage backends.
// This file holds ONLY the value types (Score, Cursor, Mask, Cell) and the
// Storage contract. Errors live in errors.go, backends in impl_*.go.
package matrix

import "golang.org/x/exp/constraints"

// Score is the numeric constraint for accumulated alignment costs.
// Lower is better; values must be signed so that bonuses (negative costs)
// can be expressed. Fixed-width integers and floats both qualify.
type Score interface {
	constraints.Signed | constraints.Float
}

// Cursor addresses a cell of the DP matrix.
// X ranges over 0..=len(X), Y over 0..=len(Y); (0,0) is the alignment origin.
type Cursor struct {
	X int `json:"x"` // column: number of elements consumed from the first sequence
	Y int `json:"y"` // row: number of elements consumed from the second sequence
}

// Origin is the cursor every global alignment starts from.
var Origin = Cursor{}

// Cell is one matrix entry: the clamped score reached at a cursor plus every
// direction that reaches it with that score.
//
// The layout is a plain value (no pointers) so that the mapped backend can
// overlay it on raw file-backed memory.
type Cell[S Score] struct {
	Score S    // clamped accumulated cost
	Steps Mask // optimal predecessor directions; Stop when non-extendable
}

// Backend selects the storage implementation used for a matrix.
type Backend int

const (
	// InMemory keeps the matrix in a single heap-allocated slice.
	InMemory Backend = iota

	// MemoryMapped keeps the matrix in a memory-mapped temporary file.
	MemoryMapped
)

// String returns the backend name used in logs and CLI flags.
func (b Backend) String() string {
	switch b {
	case InMemory:
		return "dense"
	case MemoryMapped:
		return "mapped"
	default:
		return "unknown"
	}
}

// Storage is a width×height grid of cells addressed row-major
// (offset = x + y*width). Both backends satisfy it with identical semantics.
//
// Contract:
//   - At/Set never panic: out-of-range cursors return ErrOutOfRange.
//   - Row and RowPair return slices aliasing the backing buffer; writes through
//     them are visible to At. They are invalid after Close.
//   - Close releases backend resources; further access returns ErrClosed.
type Storage[S Score] interface {
	// Width returns the number of columns (len(X)+1 for an alignment matrix).
	Width() int

	// Height returns the number of rows (len(Y)+1 for an alignment matrix).
	Height() int

	// At returns the cell under c.
	At(c Cursor) (Cell[S], error)

	// Set overwrites the cell under c.
	Set(c Cursor, cell Cell[S]) error

	// Row returns row y as a mutable slice of length Width().
	Row(y int) ([]Cell[S], error)

	// RowPair returns rows y-1 and y as two non-overlapping mutable slices.
	// y must be ≥ 1.
	RowPair(y int) (prev, cur []Cell[S], err error)

	// Backend reports which implementation holds the cells.
	Backend() Backend

	// Close releases the storage. It is safe to call more than once.
	Close() error
}
