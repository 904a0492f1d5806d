// SPDX-License-Identifier: MIT

//go:build unix

// Package matrix - Mapped storage (file-backed, memory-mapped).
//
// Purpose:
//   - Hold matrices that do not fit comfortably on the heap: the cells live in a
//     uniquely named file inside a caller-chosen directory, mapped read/write.
//   - Behave bit-identically to Dense: both backends share grid[S].
//
// Lifecycle:
//   - NewMapped creates, sizes and maps the file; any failure unwinds what was
//     already acquired (unmap, close, remove) before returning.
//   - Close unmaps, closes and deletes the file. The directory is never removed.
//
// Unsafe surface (this file only):
//   - The mapping is reinterpreted as []Cell[S] via unsafe.Slice.
//   - Preconditions: len(mapping) == w*h*sizeof(Cell[S]); mmap returns page-aligned
//     memory, which satisfies the alignment of every Score type; Cell[S] holds no
//     pointers and every bit pattern is a valid Cell value; offsets are always
//     < w*h because all access goes through grid.offset / grid.Row*.

package matrix

import (
	"errors"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

// mappedFilePrefix names the backing files so stray ones are recognisable.
const mappedFilePrefix = "lvalign-"

// mappedFileSuffix is appended to the uuid.
const mappedFileSuffix = ".matrix"

// Mapped is the memory-mapped backend.
type Mapped[S Score] struct {
	grid[S]
	path string   // backing file path, removed on Close
	file *os.File // open handle to path
	data []byte   // the mapping; cells aliases it
}

// Compile-time assertion: *Mapped implements Storage.
var _ Storage[int] = (*Mapped[int])(nil)

// NewMapped creates a width×height matrix backed by a fresh file in dir.
// The file is named "lvalign-<uuid>.matrix"; its cells start zeroed (score 0, Stop).
//
// Errors:
//   - ErrInvalidDimensions for a bad shape.
//   - ErrStorage (wrapping the OS error) when dir is empty or the file cannot be
//     created, sized or mapped.
//
// Complexity:
//   - Time O(1) syscalls (+ lazy page faults), Space O(w*h) on disk.
func NewMapped[S Score](dir string, width, height int) (m *Mapped[S], err error) {
	size := unsafe.Sizeof(Cell[S]{})
	n, err := cellCount(width, height, size)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return nil, storageErrorf("Create", dir, os.ErrInvalid)
	}

	path := filepath.Join(dir, mappedFilePrefix+uuid.NewString()+mappedFileSuffix)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, storageErrorf("Create", path, err)
	}
	// Unwind on every failure below.
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(path)
		}
	}()

	length := n * int(size)
	if err = f.Truncate(int64(length)); err != nil {
		return nil, storageErrorf("Truncate", path, err)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, storageErrorf("Mmap", path, err)
	}

	cells := unsafe.Slice((*Cell[S])(unsafe.Pointer(unsafe.SliceData(data))), n)

	return &Mapped[S]{
		grid: grid[S]{
			kind:   "Mapped",
			width:  width,
			height: height,
			cells:  cells,
		},
		path: path,
		file: f,
		data: data,
	}, nil
}

// Backend reports MemoryMapped.
func (m *Mapped[S]) Backend() Backend { return MemoryMapped }

// Path returns the backing file path (useful for diagnostics and tests).
func (m *Mapped[S]) Path() string { return m.path }

// Close unmaps the region, closes and deletes the backing file.
// All three steps are attempted; their errors are joined. Idempotent.
func (m *Mapped[S]) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	m.cells = nil

	var errs []error
	if m.data != nil {
		if err := unix.Munmap(m.data); err != nil {
			errs = append(errs, err)
		}
		m.data = nil
	}
	if err := m.file.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := os.Remove(m.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
