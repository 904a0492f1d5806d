// SPDX-License-Identifier: MIT

package scoring

// NeedlemanWunsch returns the classic global alignment model:
// match -1, mismatch 1, gap 1 over the full range of S, unbounded window.
func NeedlemanWunsch[S Number](opts ...Option[S]) Global[S] {
	return NewGlobal(opts...)
}

// Levenshtein returns the edit-distance model: match 0, mismatch 1, gap 1.
// The resulting distance is the minimum number of single-element edits.
func Levenshtein[S Number](opts ...Option[S]) Global[S] {
	base := []Option[S]{WithPenalty(Penalty[S]{Match: 0, Mismatch: 1, Gap: 1})}

	return NewGlobal(append(base, opts...)...)
}

// SmithWaterman returns the classic local alignment model:
// match -1, mismatch 1, gap 1, bounds [Lowest, 0].
func SmithWaterman[S Number](opts ...Option[S]) Local[S] {
	return NewLocal(opts...)
}

// DynamicTimeWarping returns the plain DTW model: no extra penalties,
// bounds [-Highest, Highest].
func DynamicTimeWarping[S Number](opts ...Option[S]) Warping[S] {
	return NewWarping(opts...)
}
