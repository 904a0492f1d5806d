// Package matrix_test contains unit tests for the storage backends.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvalign/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[int](0, 5)                 // zero width
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense[int](5, -1)                 // negative height
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestWidthHeight verifies that Width() and Height() return the requested shape.
func TestWidthHeight(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			s := bc.open(t, 4, 3)
			require.Equal(t, 4, s.Width())
			require.Equal(t, 3, s.Height())
		})
	}
}

// TestZeroInitialised checks that both backends start with (0, Stop) cells.
func TestZeroInitialised(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			s := bc.open(t, 3, 3)
			cell, err := s.At(matrix.Cursor{X: 2, Y: 2})
			require.NoError(t, err)
			assert.Equal(t, matrix.Cell[int64]{}, cell)
		})
	}
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on edge offsets.
func TestAtSetOutOfRange(t *testing.T) {
	bad := []matrix.Cursor{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 2}, {X: 3, Y: 2}}
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			s := bc.open(t, 3, 2)
			for _, c := range bad {
				_, err := s.At(c)
				assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At%v", c)
				err = s.Set(c, matrix.Cell[int64]{Score: 1})
				assert.ErrorIs(t, err, matrix.ErrOutOfRange, "Set%v", c)
			}
			// last valid offset (width*height-1) is addressable
			require.NoError(t, s.Set(matrix.Cursor{X: 2, Y: 1}, matrix.Cell[int64]{Score: 9}))
			cell, err := s.At(matrix.Cursor{X: 2, Y: 1})
			require.NoError(t, err)
			assert.Equal(t, int64(9), cell.Score)
		})
	}
}

// TestSetGet validates Set() followed by At() on every cell.
func TestSetGet(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			s := bc.open(t, 5, 4)
			fillPattern(t, s)
			cell, err := s.At(matrix.Cursor{X: 3, Y: 2})
			require.NoError(t, err)
			assert.Equal(t, int64(3*31-2*17), cell.Score)
			assert.Equal(t, matrix.Stop, cell.Steps) // pattern index (3+2)%5 == 0

			cell, err = s.At(matrix.Cursor{X: 4, Y: 2})
			require.NoError(t, err)
			assert.Equal(t, matrix.Align, cell.Steps)
		})
	}
}

// TestRowPairAliasesBuffer checks that RowPair slices are disjoint views of the grid.
func TestRowPairAliasesBuffer(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			s := bc.open(t, 3, 3)
			prev, cur, err := s.RowPair(2)
			require.NoError(t, err)
			require.Len(t, prev, 3)
			require.Len(t, cur, 3)

			prev[1] = matrix.Cell[int64]{Score: 7, Steps: matrix.Delete}
			cur[0] = matrix.Cell[int64]{Score: -4, Steps: matrix.Insert}

			got, err := s.At(matrix.Cursor{X: 1, Y: 1})
			require.NoError(t, err)
			assert.Equal(t, matrix.Cell[int64]{Score: 7, Steps: matrix.Delete}, got)
			got, err = s.At(matrix.Cursor{X: 0, Y: 2})
			require.NoError(t, err)
			assert.Equal(t, matrix.Cell[int64]{Score: -4, Steps: matrix.Insert}, got)

			// appending to prev must not spill into cur
			_ = append(prev, matrix.Cell[int64]{Score: 99})
			assert.Equal(t, int64(-4), cur[0].Score)

			_, _, err = s.RowPair(0)
			assert.ErrorIs(t, err, matrix.ErrOutOfRange)
			_, _, err = s.RowPair(3)
			assert.ErrorIs(t, err, matrix.ErrOutOfRange)
			_, err = s.Row(3)
			assert.ErrorIs(t, err, matrix.ErrOutOfRange)
		})
	}
}

// TestClosedStorage ensures every accessor fails with ErrClosed after Close.
func TestClosedStorage(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			s := bc.open(t, 2, 2)
			require.NoError(t, s.Close())
			require.NoError(t, s.Close()) // idempotent

			_, err := s.At(matrix.Cursor{})
			assert.ErrorIs(t, err, matrix.ErrClosed)
			assert.ErrorIs(t, s.Set(matrix.Cursor{}, matrix.Cell[int64]{}), matrix.ErrClosed)
			_, err = s.Row(0)
			assert.ErrorIs(t, err, matrix.ErrClosed)
			_, _, err = s.RowPair(1)
			assert.ErrorIs(t, err, matrix.ErrClosed)
		})
	}
}

// TestBackendEquivalence writes the same pattern into both backends and compares.
func TestBackendEquivalence(t *testing.T) {
	cases := backends()
	dense := cases[0].open(t, 17, 9)
	mapped := cases[1].open(t, 17, 9)
	fillPattern(t, dense)
	fillPattern(t, mapped)

	eq, err := matrix.Equal(dense, mapped)
	require.NoError(t, err)
	assert.True(t, eq)

	require.NoError(t, mapped.Set(matrix.Cursor{X: 16, Y: 8}, matrix.Cell[int64]{Score: 1}))
	eq, err = matrix.Equal(dense, mapped)
	require.NoError(t, err)
	assert.False(t, eq)
}

// TestNewStorage checks the backend factory.
func TestNewStorage(t *testing.T) {
	s, err := matrix.NewStorage[float64](matrix.InMemory, "", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, matrix.InMemory, s.Backend())

	_, err = matrix.NewStorage[float64](matrix.Backend(42), "", 2, 2)
	assert.ErrorIs(t, err, matrix.ErrUnknownBackend)

	s, err = matrix.NewStorage[float64](matrix.InMemory, "", 0, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	assert.Nil(t, s, "factory must not return a typed nil")
}
