//go:build unix

package matrix_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvalign/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMappedFileLifecycle checks that the backing file exists while open and is
// removed by Close, leaving the directory itself in place.
func TestMappedFileLifecycle(t *testing.T) {
	dir := t.TempDir()
	m, err := matrix.NewMapped[float64](dir, 8, 8)
	require.NoError(t, err)

	base := filepath.Base(m.Path())
	assert.True(t, strings.HasPrefix(base, "lvalign-"))
	assert.True(t, strings.HasSuffix(base, ".matrix"))
	assert.Equal(t, dir, filepath.Dir(m.Path()))

	info, err := os.Stat(m.Path())
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	require.NoError(t, m.Set(matrix.Cursor{X: 7, Y: 7}, matrix.Cell[float64]{Score: 1.5, Steps: matrix.Align}))
	require.NoError(t, m.Close())

	_, err = os.Stat(m.Path())
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

// TestMappedUniqueNames ensures two matrices in one directory never collide.
func TestMappedUniqueNames(t *testing.T) {
	dir := t.TempDir()
	a, err := matrix.NewMapped[int32](dir, 2, 2)
	require.NoError(t, err)
	defer a.Close()
	b, err := matrix.NewMapped[int32](dir, 2, 2)
	require.NoError(t, err)
	defer b.Close()

	assert.NotEqual(t, a.Path(), b.Path())
}

// TestMappedMissingDir ensures failures surface as ErrStorage and leave nothing behind.
func TestMappedMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	_, err := matrix.NewMapped[int64](dir, 3, 3)
	require.ErrorIs(t, err, matrix.ErrStorage)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = matrix.NewMapped[int64]("", 3, 3)
	require.ErrorIs(t, err, matrix.ErrStorage)

	_, err = matrix.NewMapped[int64](t.TempDir(), 0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestMappedNoLeftovers ensures a closed matrix leaves the directory empty.
func TestMappedNoLeftovers(t *testing.T) {
	dir := t.TempDir()
	s, err := matrix.NewStorage[int16](matrix.MemoryMapped, dir, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, matrix.MemoryMapped, s.Backend())
	require.NoError(t, s.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
