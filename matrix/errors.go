// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All storage operations return these sentinels (possibly wrapped with the
// method context) and tests check them via errors.Is. Panics are reserved for
// invariant violations (invalid direction masks).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Backends wrap
// with "<Type>.<Method>(...)" context; callers match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// or that width*height overflows the addressable cell count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a cursor or row index is outside the grid.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrClosed indicates access to a storage after Close.
	ErrClosed = errors.New("matrix: storage is closed")

	// ErrStorage indicates that the backing store could not be acquired
	// (temporary file creation, sizing or memory mapping). The OS error is
	// wrapped alongside it.
	ErrStorage = errors.New("matrix: storage allocation failed")

	// ErrUnknownBackend indicates a Backend value with no implementation.
	ErrUnknownBackend = errors.New("matrix: unknown backend")
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRow     = "Row"
	ctxRowPair = "RowPair"
)

// gridErrorf wraps err with the backend name, method and cursor.
func gridErrorf(kind, method string, c Cursor, err error) error {
	return fmt.Errorf("%s.%s%s: %w", kind, method, c, err)
}

// rowErrorf wraps err with the backend name, method and row index.
func rowErrorf(kind, method string, y int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", kind, method, y, err)
}

// storageErrorf wraps an OS failure during mapped-storage construction.
// Both ErrStorage and the cause remain matchable with errors.Is / errors.As.
func storageErrorf(op, path string, cause error) error {
	return fmt.Errorf("Mapped.%s(%s): %w: %w", op, path, ErrStorage, cause)
}
