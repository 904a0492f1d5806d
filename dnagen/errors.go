// SPDX-License-Identifier: MIT

package dnagen

import "errors"

var (
	// ErrBadModel indicates a probability row that is negative, NaN or sums to zero.
	ErrBadModel = errors.New("dnagen: invalid probability row")

	// ErrBadRate indicates a mutation rate outside [0, 1].
	ErrBadRate = errors.New("dnagen: mutation rate must be in [0, 1]")

	// ErrNegativeLength indicates a negative sequence length.
	ErrNegativeLength = errors.New("dnagen: length must be >= 0")
)
