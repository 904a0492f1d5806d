// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/matrix"
	"github.com/katalvlaran/lvalign/scoring"
)

// DTW - Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two sequences that may vary
//	in time or speed by finding an optimal “warping path”.
//
// Algorithm Outline:
//  1. Let n = len(a), m = len(b). Allocate an (n+1)x(m+1) matrix D.
//  2. D[0][0] = 0; row 0 and column 0 are unreachable.
//  3. For every cell in the band:
//     cost     = |a[i-1] - b[j-1]|
//     D[i][j]  = cost + min(D[i-1][j-1], D[i-1][j] + SlopePenalty, D[i][j-1] + SlopePenalty)
//  4. distance = D[n][m], or +Inf when the corner cannot be reached.
//  5. If ReturnPath, backtrack from (n,m) to (0,0) and report the matched pairs.
//
// The matrix is filled by align.Fill with scoring.DynamicTimeWarping, so the
// band, tie handling and storage backends are shared with sequence alignment.
//
// Complexity:
//
//	Time   = O(n·m), or O((n+m)·Window) when banded
//	Memory = O(n·m) on the selected backend
//
// Errors:
//   - ErrEmptyInput - if either input is empty.
//   - ErrBadInput   - invalid options or a NaN/Inf sample.
//   - matrix.ErrStorage - MappedFile storage could not be created.
func DTW(a, b []float64, opts *Options) (distance float64, path []Coord, err error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, ErrEmptyInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	alignOpts, err := validate(a, b, o)
	if err != nil {
		return 0, nil, err
	}

	strategy := scoring.DynamicTimeWarping[float64](
		scoring.WithPenalty(scoring.Penalty[float64]{Gap: o.SlopePenalty}),
		scoring.WithWindow[float64](o.Window),
	)
	set, err := align.Fill(a, b, align.AbsDiff[float64](), strategy, alignOpts...)
	if err != nil {
		return 0, nil, fmt.Errorf("dtw.DTW: %w", err)
	}
	defer func() {
		if cerr := set.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("dtw.DTW: %w", cerr)
		}
	}()

	corner := matrix.Cursor{X: len(a), Y: len(b)}
	if set.Cursor() != corner {
		return math.Inf(1), nil, nil
	}
	if !o.ReturnPath {
		return set.Score(), nil, nil
	}

	al, ok, err := set.Alignment()
	if err != nil {
		return 0, nil, fmt.Errorf("dtw.DTW: %w", err)
	}
	if !ok {
		return math.Inf(1), nil, nil
	}

	return al.Score, warpingPath(al), nil
}

// validate checks options and samples and maps the memory mode to align options.
func validate(a, b []float64, o Options) ([]align.Option, error) {
	if o.Window < -1 {
		return nil, fmt.Errorf("Window=%d: %w", o.Window, ErrBadInput)
	}
	if o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) || math.IsInf(o.SlopePenalty, 0) {
		return nil, fmt.Errorf("SlopePenalty=%v: %w", o.SlopePenalty, ErrBadInput)
	}
	for _, seq := range [][]float64{a, b} {
		for i, v := range seq {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("sample %d=%v: %w", i, v, ErrBadInput)
			}
		}
	}

	var storage align.Option
	switch o.MemoryMode {
	case FullMatrix:
		storage = align.WithBackend(matrix.InMemory)
	case MappedFile:
		if o.Dir == "" {
			return nil, fmt.Errorf("MappedFile without Dir: %w", ErrBadInput)
		}
		storage = align.WithMapped(o.Dir)
	default:
		return nil, fmt.Errorf("MemoryMode=%d: %w", o.MemoryMode, ErrBadInput)
	}

	return []align.Option{storage, align.WithLogger(o.Logger)}, nil
}

// warpingPath lists the pair matched by every step: the cell each step enters.
func warpingPath(al align.Alignment[float64]) []Coord {
	path := make([]Coord, 0, al.Len())
	for s := range al.Steps() {
		switch s.Op {
		case align.OpAlign:
			path = append(path, Coord{I: s.X, J: s.Y})
		case align.OpDelete:
			path = append(path, Coord{I: s.X, J: s.Y - 1})
		case align.OpInsert:
			path = append(path, Coord{I: s.X - 1, J: s.Y})
		}
	}

	return path
}
