// SPDX-License-Identifier: MIT

package align

import "errors"

var (
	// ErrNilCost is returned when the pairwise cost function is nil.
	ErrNilCost = errors.New("align: cost function is nil")

	// ErrNilStrategy is returned when no scoring strategy is supplied.
	ErrNilStrategy = errors.New("align: strategy is nil")

	// ErrBrokenPath indicates a recorded direction that leads outside the
	// matrix. It can only arise from a matrix modified after the forward pass.
	ErrBrokenPath = errors.New("align: direction leads outside the matrix")

	// ErrClosed is returned when a closed Alignments handle is used.
	ErrClosed = errors.New("align: alignments are closed")
)

const panicInvalidMask = "align: cell carries unknown direction bits"
