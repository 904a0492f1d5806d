package dnagen_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/lvalign/dnagen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLengthAndAlphabet(t *testing.T) {
	g, err := dnagen.New(dnagen.DefaultModel(), 7)
	require.NoError(t, err)

	for _, n := range []int{0, 1, 2, 100} {
		seq, err := g.Generate(n)
		require.NoError(t, err)
		require.Len(t, seq, n)
		for _, b := range seq {
			assert.Contains(t, dnagen.Alphabet, string(b))
		}
	}

	_, err = g.Generate(-1)
	assert.ErrorIs(t, err, dnagen.ErrNegativeLength)
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := dnagen.New(dnagen.DefaultModel(), 42)
	require.NoError(t, err)
	b, err := dnagen.New(dnagen.DefaultModel(), 42)
	require.NoError(t, err)
	c, err := dnagen.New(dnagen.DefaultModel(), 43)
	require.NoError(t, err)

	sa, _ := a.Generate(64)
	sb, _ := b.Generate(64)
	sc, _ := c.Generate(64)
	assert.Equal(t, sa, sb)
	assert.NotEqual(t, sa, sc)

	z1, _ := dnagen.New(dnagen.Uniform(), 0)
	z2, _ := dnagen.New(dnagen.Uniform(), 0)
	s1, _ := z1.Generate(32)
	s2, _ := z2.Generate(32)
	assert.Equal(t, s1, s2, "seed 0 selects a fixed default")
}

func TestDegenerateModel(t *testing.T) {
	// Only G ever follows anything, and the chain starts with C.
	m := dnagen.Model{
		Init: [4]float64{0, 1, 0, 0},
		Next: [4][4]float64{{0, 0, 1, 0}, {0, 0, 1, 0}, {0, 0, 1, 0}, {0, 0, 1, 0}},
	}
	g, err := dnagen.New(m, 1)
	require.NoError(t, err)
	seq, err := g.Generate(5)
	require.NoError(t, err)
	assert.Equal(t, "CGGGG", string(seq))
}

func TestBadModel(t *testing.T) {
	m := dnagen.DefaultModel()
	m.Next[2] = [4]float64{}
	_, err := dnagen.New(m, 1)
	assert.ErrorIs(t, err, dnagen.ErrBadModel)

	m = dnagen.DefaultModel()
	m.Init[0] = math.NaN()
	_, err = dnagen.New(m, 1)
	assert.ErrorIs(t, err, dnagen.ErrBadModel)
}

func TestMutator(t *testing.T) {
	g, err := dnagen.New(dnagen.DefaultModel(), 3)
	require.NoError(t, err)
	src, err := g.Generate(200)
	require.NoError(t, err)
	orig := bytes.Clone(src)

	none, err := dnagen.NewMutator(0, 3)
	require.NoError(t, err)
	assert.Equal(t, src, none.Mutate(src))

	all, err := dnagen.NewMutator(1, 3)
	require.NoError(t, err)
	mutated := all.Mutate(src)
	assert.Equal(t, orig, src, "source must not be modified")
	assert.NotEqual(t, src, mutated)
	for _, b := range mutated {
		assert.Contains(t, dnagen.Alphabet, string(b))
	}

	_, err = dnagen.NewMutator(1.5, 0)
	assert.ErrorIs(t, err, dnagen.ErrBadRate)
	_, err = dnagen.NewMutator(math.NaN(), 0)
	assert.ErrorIs(t, err, dnagen.ErrBadRate)
}

func TestMutationString(t *testing.T) {
	assert.Equal(t, "delete", dnagen.Delete.String())
	assert.Equal(t, "insert", dnagen.Insert.String())
	assert.Equal(t, "replace", dnagen.Replace.String())
}
