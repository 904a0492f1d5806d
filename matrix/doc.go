// Package matrix provides the dynamic-programming grid used by the alignment
// engine.
//
// The matrix package provides:
//
//   - Cursor, a (x, y) position with forward/backward stepping along a direction.
//   - Mask, the set of optimal predecessor directions (Align, Delete, Insert)
//     recorded per cell; the empty set is Stop.
//   - Cell, a (score, mask) pair, and the Storage contract over a width×height
//     row-major grid of cells.
//   - Dense, a heap-resident backend that cannot fail beyond shape validation.
//   - Mapped, a backend that keeps cells in a uuid-named, memory-mapped file in
//     a caller-chosen directory, for matrices too large for the heap.
//
// Both backends share one offset formula and one set of bounds checks, so any
// sequence of reads and writes behaves bit-identically on either of them.
//
// See the examples in this package and align for usage patterns.
package matrix
