// SPDX-License-Identifier: MIT

package align

import (
	"slices"

	"github.com/katalvlaran/lvalign/matrix"
	"github.com/katalvlaran/lvalign/scoring"
)

// Report is the materialised, JSON-ready view of one alignment.
type Report[S scoring.Number] struct {
	Score    S             `json:"score"`
	Origin   matrix.Cursor `json:"origin"`
	Terminal matrix.Cursor `json:"terminal"`
	Steps    []Step        `json:"steps"`
	Runs     []Run         `json:"runs"`
}

// Report materialises the steps and runs of a.
func (a Alignment[S]) Report() Report[S] {
	steps := slices.Collect(a.Steps())
	if steps == nil {
		steps = []Step{}
	}
	runs := slices.Collect(a.Runs())
	if runs == nil {
		runs = []Run{}
	}

	return Report[S]{
		Score:    a.Score,
		Origin:   a.Origin,
		Terminal: a.Terminal,
		Steps:    steps,
		Runs:     runs,
	}
}
