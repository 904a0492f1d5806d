// Package scoring defines the score model consumed by the alignment engine.
//
// A Strategy bundles three kinds of configuration:
//
//   - Penalty: the match, mismatch and gap costs. Lower scores are better, so
//     bonuses are negative numbers.
//   - Window: the half-width of the diagonal band computed by the forward
//     pass. Unbounded (any negative value) disables banding.
//   - Bounds: the inclusive clamp range. A score that reaches either end is
//     pinned to that end and its cell becomes non-extendable (Stop).
//
// and two policy hooks:
//
//   - BoundaryScore(prev) seeds row 0 and column 0.
//   - PickOptimum(best, candidate) selects the terminal cell of the alignment.
//
// Three strategies are provided. Global (Needleman-Wunsch, Levenshtein)
// accumulates gap costs along the boundary and prefers the candidate closest
// to the bottom-right corner. Local (Smith-Waterman) makes every boundary cell
// a restart point and prefers the lowest score. Warping (dynamic time warping)
// adds the continuous pairwise cost to every move.
//
// All strategies are immutable values with pure methods.
package scoring
