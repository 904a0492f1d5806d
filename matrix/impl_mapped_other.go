// SPDX-License-Identifier: MIT

//go:build !unix

package matrix

import "errors"

// Mapped is unavailable on this platform; NewMapped always fails with ErrStorage.
type Mapped[S Score] struct {
	grid[S]
}

// NewMapped reports ErrStorage wrapping errors.ErrUnsupported.
func NewMapped[S Score](dir string, width, height int) (*Mapped[S], error) {
	if _, err := cellCount(width, height, 0); err != nil {
		return nil, err
	}

	return nil, storageErrorf("Mmap", dir, errors.ErrUnsupported)
}

// Backend reports MemoryMapped.
func (m *Mapped[S]) Backend() Backend { return MemoryMapped }

// Path is always empty on this platform.
func (m *Mapped[S]) Path() string { return "" }

// Close is a no-op on this platform.
func (m *Mapped[S]) Close() error {
	m.closed = true

	return nil
}
