// SPDX-License-Identifier: MIT

package dnagen

import (
	"fmt"
	"math"
)

// Alphabet lists the nucleotides in model index order.
const Alphabet = "ACGT"

// Model is a first-order Markov chain over Alphabet.
// Rows need not be normalised; they are scaled to sum to one.
type Model struct {
	// Init is the distribution of the first nucleotide.
	Init [4]float64 `toml:"init" json:"init"`

	// Next[i] is the distribution of the nucleotide following Alphabet[i].
	Next [4][4]float64 `toml:"next" json:"next"`
}

// DefaultModel returns frequencies measured on human genomic DNA.
func DefaultModel() Model {
	return Model{
		Init: [4]float64{0.328, 0.167, 0.144, 0.360},
		Next: [4][4]float64{
			{0.359, 0.143, 0.167, 0.331}, // after A
			{0.384, 0.156, 0.023, 0.437}, // after C
			{0.305, 0.199, 0.150, 0.345}, // after G
			{0.284, 0.182, 0.177, 0.357}, // after T
		},
	}
}

// Uniform returns a model in which every nucleotide is equally likely.
func Uniform() Model {
	u := [4]float64{1, 1, 1, 1}

	return Model{Init: u, Next: [4][4]float64{u, u, u, u}}
}

// compiled holds normalised cumulative rows.
type compiled struct {
	init [4]float64
	next [4][4]float64
}

// compile validates every row and converts it to a cumulative distribution.
func (m Model) compile() (compiled, error) {
	var c compiled
	var err error
	if c.init, err = cumulative(m.Init); err != nil {
		return c, fmt.Errorf("Model.Init: %w", err)
	}
	for i, row := range m.Next {
		if c.next[i], err = cumulative(row); err != nil {
			return c, fmt.Errorf("Model.Next[%c]: %w", Alphabet[i], err)
		}
	}

	return c, nil
}

func cumulative(row [4]float64) ([4]float64, error) {
	var out [4]float64
	sum := 0.0
	for _, p := range row {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return out, ErrBadModel
		}
		sum += p
	}
	if sum == 0 {
		return out, ErrBadModel
	}
	acc := 0.0
	for i, p := range row {
		acc += p / sum
		out[i] = acc
	}
	out[3] = 1

	return out, nil
}
