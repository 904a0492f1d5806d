// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// NewStorage builds a width×height matrix on the requested backend.
// dir is only consulted by MemoryMapped and must name an existing directory.
//
// Errors:
//   - ErrInvalidDimensions for a bad shape (both backends).
//   - ErrStorage for mapped-file failures.
//   - ErrUnknownBackend for an unsupported Backend value.
func NewStorage[S Score](b Backend, dir string, width, height int) (Storage[S], error) {
	switch b {
	case InMemory:
		m, err := NewDense[S](width, height)
		if err != nil {
			return nil, err // never hand out a typed-nil Storage
		}

		return m, nil
	case MemoryMapped:
		m, err := NewMapped[S](dir, width, height)
		if err != nil {
			return nil, err
		}

		return m, nil
	default:
		return nil, fmt.Errorf("NewStorage(%d): %w", int(b), ErrUnknownBackend)
	}
}
