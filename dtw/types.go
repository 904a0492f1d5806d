// SPDX-License-Identifier: MIT

// Package dtw defines options and modes for Dynamic Time Warping.
package dtw

import (
	"errors"

	"go.uber.org/zap"
)

// MemoryMode controls where DTW stores its DP matrix.
//
//   - FullMatrix - keep the (n+1)x(m+1) matrix on the heap.
//     Memory: O(n·m).
//
//   - MappedFile - keep the matrix in a memory-mapped file inside Options.Dir.
//     The file is deleted before DTW returns. Use for series whose matrix does
//     not fit comfortably in memory.
type MemoryMode int

const (
	// FullMatrix mode: heap-resident matrix.
	FullMatrix MemoryMode = iota

	// MappedFile mode: file-backed matrix in Options.Dir.
	MappedFile
)

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates invalid options (Window < -1, negative or NaN
	// SlopePenalty, MappedFile without Dir, unknown MemoryMode) or a
	// non-finite sample.
	ErrBadInput = errors.New("dtw: invalid input")
)

// Coord is one matched pair of the warping path: a[I] is paired with b[J].
type Coord struct {
	I int `json:"i"`
	J int `json:"j"`
}

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window       - band half-width around the (length-normalised) diagonal.
//     -1 means no windowing constraint.
//   - SlopePenalty - extra cost of every non-diagonal step (controls locality bias).
//   - ReturnPath   - if true, DTW also returns the optimal warping path.
//   - MemoryMode   - FullMatrix or MappedFile storage.
//   - Dir          - directory of the backing file in MappedFile mode.
//   - Logger       - receives the engine's debug events; nil uses align.Logger().
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10        // only compare elements within ±10 steps of the diagonal
//	opts.SlopePenalty = 0.5 // small penalty for non-diagonal moves
//	opts.ReturnPath = true  // we need the path, not just the distance
//
//	dist, path, err := dtw.DTW(seqA, seqB, &opts)
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
	Dir          string
	Logger       *zap.Logger
}

// DefaultOptions returns Options with:
//   - Window = -1 (unconstrained)
//   - SlopePenalty = 0
//   - ReturnPath = false
//   - MemoryMode = FullMatrix
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}
