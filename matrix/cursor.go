// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Forward returns the cursor reached by applying direction d.
// ALIGN moves (+1,+1), DELETE (+1,0), INSERT (0,+1), STOP stays put.
// Panics if d is not a single direction or Stop.
func (c Cursor) Forward(d Mask) Cursor {
	dx, dy := d.delta()

	return Cursor{X: c.X + dx, Y: c.Y + dy}
}

// Backward returns the predecessor of c along direction d.
// ok is false when the predecessor would leave the matrix (negative index).
// Panics if d is not a single direction or Stop.
func (c Cursor) Backward(d Mask) (prev Cursor, ok bool) {
	dx, dy := d.delta()
	prev = Cursor{X: c.X - dx, Y: c.Y - dy}
	if prev.X < 0 || prev.Y < 0 {
		return c, false
	}

	return prev, true
}

// IsOrigin reports whether c is (0,0).
func (c Cursor) IsOrigin() bool { return c == Origin }

// String implements fmt.Stringer as "(x,y)".
func (c Cursor) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }
