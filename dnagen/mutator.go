// SPDX-License-Identifier: MIT

package dnagen

import (
	"fmt"
	"math/rand"
)

// Mutation is the kind of edit applied to one nucleotide.
type Mutation uint8

const (
	// Delete drops the nucleotide.
	Delete Mutation = iota
	// Insert keeps the nucleotide and places a random one before it.
	Insert
	// Replace swaps the nucleotide for a random one (possibly the same).
	Replace
)

// String returns the mutation name.
func (m Mutation) String() string {
	switch m {
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("Mutation(%d)", uint8(m))
	}
}

// Mutator applies random point mutations.
type Mutator struct {
	rate float64
	rng  *rand.Rand
}

// NewMutator returns a Mutator that mutates each nucleotide with probability rate.
//
// Errors:
//   - ErrBadRate if rate is outside [0, 1] or NaN.
func NewMutator(rate float64, seed int64) (*Mutator, error) {
	if !(rate >= 0 && rate <= 1) {
		return nil, fmt.Errorf("dnagen.NewMutator(%v): %w", rate, ErrBadRate)
	}

	return &Mutator{rate: rate, rng: rngFromSeed(seed, streamMutate)}, nil
}

// Mutate returns a mutated copy of src; src is not modified.
//
// Complexity: O(len(src)).
func (m *Mutator) Mutate(src []byte) []byte {
	dst := make([]byte, 0, len(src)+len(src)/8)
	for _, b := range src {
		if m.rng.Float64() >= m.rate {
			dst = append(dst, b)
			continue
		}
		switch Mutation(m.rng.Intn(3)) {
		case Delete:
		case Insert:
			dst = append(dst, m.random(), b)
		case Replace:
			dst = append(dst, m.random())
		}
	}

	return dst
}

func (m *Mutator) random() byte { return Alphabet[m.rng.Intn(len(Alphabet))] }
