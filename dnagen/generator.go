// SPDX-License-Identifier: MIT

package dnagen

import (
	"fmt"
	"math/rand"
)

// Generator draws sequences from a Model.
type Generator struct {
	chain compiled
	rng   *rand.Rand
}

// New returns a Generator for model seeded with seed (0 ⇒ fixed default).
//
// Errors:
//   - ErrBadModel if a probability row is invalid.
func New(model Model, seed int64) (*Generator, error) {
	chain, err := model.compile()
	if err != nil {
		return nil, fmt.Errorf("dnagen.New: %w", err)
	}

	return &Generator{chain: chain, rng: rngFromSeed(seed, streamGenerate)}, nil
}

// Generate returns a sequence of exactly n nucleotides over Alphabet.
//
// Complexity: O(n).
func (g *Generator) Generate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	out := make([]byte, n)
	if n == 0 {
		return out, nil
	}
	prev := pick(g.rng, &g.chain.init)
	out[0] = Alphabet[prev]
	for i := 1; i < n; i++ {
		prev = pick(g.rng, &g.chain.next[prev])
		out[i] = Alphabet[prev]
	}

	return out, nil
}
