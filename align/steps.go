// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvalign/matrix"
)

// Op is a semantic edit operation.
type Op uint8

const (
	// OpAlign pairs x[X] with y[Y] (match or substitution).
	OpAlign Op = iota + 1

	// OpDelete consumes x[X]; Y is the gap position in y.
	OpDelete

	// OpInsert consumes y[Y]; X is the gap position in x.
	OpInsert
)

// String returns "align", "delete" or "insert".
func (o Op) String() string {
	switch o {
	case OpAlign:
		return "align"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// MarshalText encodes the operation by name.
func (o Op) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// opOf maps a single direction to its operation.
func opOf(d matrix.Mask) Op {
	switch d {
	case matrix.Align:
		return OpAlign
	case matrix.Delete:
		return OpDelete
	case matrix.Insert:
		return OpInsert
	default:
		panic(panicInvalidMask)
	}
}

// Step is one position-annotated edit. X and Y are the cursor before the
// move, i.e. 0-based indices into x and y.
type Step struct {
	Op Op  `json:"op"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

// Steps replays the alignment from its origin, yielding one Step per direction.
func (a Alignment[S]) Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		c := a.Origin
		for _, d := range a.steps {
			if !yield(Step{Op: opOf(d), X: c.X, Y: c.Y}) {
				return
			}
			c = c.Forward(d)
		}
	}
}
