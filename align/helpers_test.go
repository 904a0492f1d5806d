package align_test

import (
	"testing"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/dnagen"
	"github.com/katalvlaran/lvalign/matrix"
	"github.com/katalvlaran/lvalign/scoring"
	"github.com/stretchr/testify/require"
)

// dnaPair returns a generated sequence and a mutated relative of it.
func dnaPair(t testing.TB, n int, rate float64, seed int64) (x, y []byte) {
	t.Helper()
	g, err := dnagen.New(dnagen.DefaultModel(), seed)
	require.NoError(t, err)
	x, err = g.Generate(n)
	require.NoError(t, err)
	mut, err := dnagen.NewMutator(rate, seed)
	require.NoError(t, err)

	return x, mut.Mutate(x)
}

// collect drains at most limit alignments from set.
func collect[S scoring.Number](t *testing.T, set *align.Alignments[S], limit int) []align.Alignment[S] {
	t.Helper()
	var out []align.Alignment[S]
	it := set.Iter()
	for len(out) < limit {
		al, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, al)
	}
	require.NoError(t, it.Err())

	return out
}

// requireReachable replays al from its origin, checking that every step is
// recorded in the cell it enters and that the replay ends at the terminal.
func requireReachable[S scoring.Number](t *testing.T, store matrix.Storage[S], al align.Alignment[S]) {
	t.Helper()
	c := al.Origin
	for i, d := range al.Directions() {
		require.True(t, d.IsSingle(), "step %d: %v", i, d)
		c = c.Forward(d)
		cell, err := store.At(c)
		require.NoError(t, err)
		require.True(t, cell.Steps.Has(d), "step %d: %v not recorded at %v (%v)", i, d, c, cell.Steps)
	}
	require.Equal(t, al.Terminal, c)
	require.Equal(t, al.Terminal, al.End())
}

// expand turns runs back into steps.
func expand(runs []align.Run) []align.Step {
	var out []align.Step
	for _, r := range runs {
		for i := 0; i < r.Len(); i++ {
			s := align.Step{Op: r.Op, X: r.X.Start, Y: r.Y.Start}
			switch r.Op {
			case align.OpAlign:
				s.X += i
				s.Y += i
			case align.OpDelete:
				s.X += i
			case align.OpInsert:
				s.Y += i
			}
			out = append(out, s)
		}
	}

	return out
}
