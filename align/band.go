// SPDX-License-Identifier: MIT

package align

// band returns the inclusive column range [lo, hi] scored in row y (y >= 1)
// of an alignment of m columns against n rows.
//
// Row y covers the segment of the reference diagonal between rows y-1 and y,
// floor((y-1)*m/n) .. ceil(y*m/n), widened by window on each side. Taking the
// lower edge from the previous row keeps consecutive bands overlapping
// however much m and n differ. A negative window, or one at least as wide as
// the longer sequence, scores the whole row; the latter also keeps the
// widening below from overflowing.
// lo > hi means the row has no scored cells (only possible when m == 0).
func band(y, m, n, window int) (lo, hi int) {
	if window < 0 || window >= max(m, n) {
		return 1, m
	}
	lo = max(1, (y-1)*m/n-window)
	hi = min(m, (y*m+n-1)/n+window)

	return lo, hi
}
