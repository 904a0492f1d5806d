// Package align computes optimal pairwise alignments of two sequences.
//
// An alignment is computed in three phases, all owned by one caller:
//
//  1. Fill runs the banded forward pass. It allocates a (len(x)+1)×(len(y)+1)
//     matrix on the chosen backend, seeds row 0 and column 0 through the
//     strategy's BoundaryScore, scores every cell inside the band and records
//     every tied predecessor direction. The running terminal candidate is kept
//     with the strategy's PickOptimum.
//  2. Iter walks the filled matrix backwards from the terminal cursor with an
//     explicit stack, yielding each optimal alignment lazily. Stop pulling to
//     stop the search.
//  3. Alignment.Steps and Alignment.Runs project the recorded directions into
//     position-annotated edits and run-length compressed ranges.
//
// The convenience functions Align and Distance run all three phases and
// release the matrix before returning. All returns the handle so that the
// caller can inspect the matrix or enumerate every alignment; it must be
// closed, which also deletes the backing file of a memory-mapped matrix.
//
// Scores are clamped into the strategy's bounds at every cell, so numeric
// overflow never surfaces as an error. Errors come only from storage: an
// unusable directory for the mapped backend, or access after Close.
package align
