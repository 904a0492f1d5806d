// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide deterministic fixtures shared by the backend tests.
//   • Run every behavioural test against both backends through one table.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvalign/matrix"
	"github.com/stretchr/testify/require"
)

// backendCase pairs a label with a constructor for table-driven backend tests.
type backendCase struct {
	name string
	open func(t *testing.T, w, h int) matrix.Storage[int64]
}

// backends returns one case per storage implementation.
// The mapped case allocates in t.TempDir(), which the testing package removes.
func backends() []backendCase {
	return []backendCase{
		{name: "dense", open: func(t *testing.T, w, h int) matrix.Storage[int64] {
			t.Helper()
			m, err := matrix.NewDense[int64](w, h)
			require.NoError(t, err)

			return m
		}},
		{name: "mapped", open: func(t *testing.T, w, h int) matrix.Storage[int64] {
			t.Helper()
			m, err := matrix.NewMapped[int64](t.TempDir(), w, h)
			if err != nil {
				t.Skipf("mapped backend unavailable: %v", err)
			}
			t.Cleanup(func() { _ = m.Close() })

			return m
		}},
	}
}

// fillPattern writes a deterministic, position-dependent cell everywhere.
func fillPattern(t *testing.T, s matrix.Storage[int64]) {
	t.Helper()
	masks := []matrix.Mask{matrix.Stop, matrix.Align, matrix.Delete, matrix.Insert, matrix.Align | matrix.Insert}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := matrix.Cell[int64]{
				Score: int64(x*31 - y*17),
				Steps: masks[(x+y)%len(masks)],
			}
			require.NoError(t, s.Set(matrix.Cursor{X: x, Y: y}, cell))
		}
	}
}
