// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep     = "\t"
	_fmtRowEnd  = "\n"
	_fmtScore   = "%v"
	_fmtBlankLn = "\n"
)

// Format renders s as plain text for debugging: for every matrix row, one line
// of direction masks followed by one line of scores, then a blank line.
// Colouring is left to callers (the CLI highlights Stop cells).
//
// Complexity: O(w*h).
func Format[S Score](s Storage[S]) (string, error) {
	var sb strings.Builder
	for y := 0; y < s.Height(); y++ {
		row, err := s.Row(y)
		if err != nil {
			return "", err
		}
		for x, cell := range row {
			if x > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(cell.Steps.String())
		}
		sb.WriteString(_fmtRowEnd)
		for x, cell := range row {
			if x > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, _fmtScore, cell.Score)
		}
		sb.WriteString(_fmtRowEnd)
		sb.WriteString(_fmtBlankLn)
	}

	return sb.String(), nil
}

// Equal reports whether a and b have the same shape and identical cells.
// Used to check backend equivalence. Complexity: O(w*h).
func Equal[S Score](a, b Storage[S]) (bool, error) {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false, nil
	}
	for y := 0; y < a.Height(); y++ {
		ra, err := a.Row(y)
		if err != nil {
			return false, err
		}
		rb, err := b.Row(y)
		if err != nil {
			return false, err
		}
		for x := range ra {
			if ra[x] != rb[x] {
				return false, nil
			}
		}
	}

	return true, nil
}
