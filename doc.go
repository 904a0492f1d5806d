// Package lvalign is a pairwise sequence alignment toolkit: global, local and
// edit-distance alignment of arbitrary element sequences, plus dynamic time
// warping of numeric series, on a single banded dynamic-programming engine.
//
// 🚀 What is in the box?
//
//   - scoring/ - score model: penalties, clamping bounds, and the Global,
//     Local and Warping strategies (Needleman-Wunsch, Smith-Waterman,
//     Levenshtein and DTW presets)
//   - matrix/  - the DP grid: cursors, direction masks, and two storage
//     backends (heap-resident Dense, file-backed memory-mapped Mapped)
//   - align/   - the banded forward pass, the lazy backtrace over every
//     optimal path, and the Step / Run / Report projections
//   - dtw/     - Dynamic Time Warping over []float64 built on align
//   - dnagen/  - seeded Markov-chain DNA generator and point mutator
//   - cmd/seqalign - command-line front end (align, dtw, generate)
//
// ✨ Design notes
//
//   - Generic over the score type: any signed integer or float.
//   - Integer arithmetic saturates; scores never wrap.
//   - Every optimal alignment is reachable through an explicit-stack
//     iterator, so deep matrices never exhaust the goroutine stack.
//   - Matrices too large for the heap can live in a temporary mapped file
//     that is deleted when the result is closed.
//
// Quick example:
//
//	x, y := []byte("ACGTTGA"), []byte("ACTTGCA")
//	al, ok, err := align.Align(x, y,
//		align.Equality[byte, int64](),
//		scoring.NeedlemanWunsch[int64]())
//	if err == nil && ok {
//		for run := range al.Runs() {
//			fmt.Println(run.Op, run.X, run.Y)
//		}
//	}
//
//	go get github.com/katalvlaran/lvalign
package lvalign
