package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/matrix"
	"github.com/katalvlaran/lvalign/scoring"
)

func alignBytes(t *testing.T, x, y string, strategy scoring.Strategy[int64]) align.Alignment[int64] {
	t.Helper()
	al, ok, err := align.Align([]byte(x), []byte(y), align.Equality[byte, int64](), strategy)
	require.NoError(t, err)
	require.True(t, ok)
	return al
}

func TestTraceOf(t *testing.T) {
	al := alignBytes(t, "GAT", "GT", scoring.NeedlemanWunsch[int64]())
	tr := traceOf([]byte("GAT"), []byte("GT"), al)

	assert.Equal(t, "GAT", tr.Top)
	assert.Equal(t, "| |", tr.Mid)
	assert.Equal(t, "G-T", tr.Bottom)
}

func TestTraceOfMismatchAndInsert(t *testing.T) {
	al := alignBytes(t, "A", "CA", scoring.Levenshtein[int64]())
	tr := traceOf([]byte("A"), []byte("CA"), al)

	assert.Equal(t, "-A", tr.Top)
	assert.Equal(t, " |", tr.Mid)
	assert.Equal(t, "CA", tr.Bottom)

	al = alignBytes(t, "AC", "AG", scoring.NeedlemanWunsch[int64]())
	tr = traceOf([]byte("AC"), []byte("AG"), al)
	assert.Equal(t, "|.", tr.Mid)
}

func TestTraceRender(t *testing.T) {
	var buf bytes.Buffer
	trace{Top: "GAT", Mid: "| |", Bottom: "G-T"}.render(&buf)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "GAT")
	assert.Contains(t, lines[2], "T")
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "-3", formatScore(-3))
	assert.Equal(t, "∞", formatScore(scoring.Highest[int64]()))
	assert.Equal(t, "-∞", formatScore(scoring.Lowest[int64]()))
}

func TestPathCells(t *testing.T) {
	al := alignBytes(t, "GAT", "GT", scoring.NeedlemanWunsch[int64]())
	cells := pathCells(al)

	assert.Len(t, cells, 4)
	for _, c := range []matrix.Cursor{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 2}} {
		assert.True(t, cells[c], c.String())
	}
}

func TestRenderMatrix(t *testing.T) {
	x, y := []byte("GAT"), []byte("GT")
	set, err := align.All(x, y, align.Equality[byte, int64](), scoring.NeedlemanWunsch[int64]())
	require.NoError(t, err)
	defer set.Close()

	al, ok, err := set.Alignment()
	require.NoError(t, err)
	require.True(t, ok)

	out, err := renderMatrix(set.Matrix(), x, y, pathCells(al))
	require.NoError(t, err)
	assert.Contains(t, out, emptyLabel)
	assert.Contains(t, out, "0 ·")
	assert.Contains(t, out, "-1 A")
	assert.Contains(t, out, "3 D")
	for _, label := range []string{"G", "A", "T"} {
		assert.Contains(t, out, label)
	}
}

func TestRenderMatrixBanded(t *testing.T) {
	x, y := []byte("AAAAAA"), []byte("AAAAAA")
	strategy := scoring.NeedlemanWunsch(scoring.WithWindow[int64](0))
	set, err := align.All(x, y, align.Equality[byte, int64](), strategy)
	require.NoError(t, err)
	defer set.Close()

	out, err := renderMatrix(set.Matrix(), x, y, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "∞ ·")
}
