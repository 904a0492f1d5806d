// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/matrix"
	"github.com/katalvlaran/lvalign/scoring"
)

// Trace symbols.
const (
	symMatch    = '|'
	symMismatch = '.'
	symGap      = '-'
	symSpace    = ' '
)

// headerRow is the row index lipgloss passes to StyleFunc for the header.
const headerRow = -1

// emptyLabel heads the boundary row and column of a rendered matrix.
const emptyLabel = "ε"

// trace is the three-line view of an alignment: x on top, y at the bottom,
// and a marker line between them.
type trace struct {
	Top, Mid, Bottom string
}

// traceOf lays out al over x and y. Matches are marked '|', mismatches '.',
// and gaps show '-' in the sequence that does not advance.
func traceOf(x, y []byte, al align.Alignment[int64]) trace {
	var top, mid, bot strings.Builder
	for s := range al.Steps() {
		switch s.Op {
		case align.OpAlign:
			top.WriteByte(x[s.X])
			bot.WriteByte(y[s.Y])
			if x[s.X] == y[s.Y] {
				mid.WriteByte(symMatch)
			} else {
				mid.WriteByte(symMismatch)
			}
		case align.OpDelete:
			top.WriteByte(x[s.X])
			mid.WriteByte(symSpace)
			bot.WriteByte(symGap)
		case align.OpInsert:
			top.WriteByte(symGap)
			mid.WriteByte(symSpace)
			bot.WriteByte(y[s.Y])
		}
	}

	return trace{Top: top.String(), Mid: mid.String(), Bottom: bot.String()}
}

// render colours the marker line and writes the three lines to w.
func (t trace) render(w io.Writer) {
	var mid strings.Builder
	for _, r := range t.Mid {
		switch r {
		case symMatch:
			mid.WriteString(styleMatch.Render(string(r)))
		case symMismatch:
			mid.WriteString(styleMismatch.Render(string(r)))
		default:
			mid.WriteRune(r)
		}
	}
	fmt.Fprintln(w, colourGaps(t.Top))
	fmt.Fprintln(w, mid.String())
	fmt.Fprintln(w, colourGaps(t.Bottom))
}

func colourGaps(s string) string {
	return strings.ReplaceAll(s, string(symGap), styleGap.Render(string(symGap)))
}

// pathCells returns every cursor visited by al, origin included.
func pathCells(al align.Alignment[int64]) map[matrix.Cursor]bool {
	cells := map[matrix.Cursor]bool{al.Origin: true}
	c := al.Origin
	for _, d := range al.Directions() {
		c = c.Forward(d)
		cells[c] = true
	}

	return cells
}

// formatScore prints saturated scores as infinities.
func formatScore(s int64) string {
	switch {
	case s >= scoring.Highest[int64]():
		return "∞"
	case s <= scoring.Lowest[int64]():
		return "-∞"
	default:
		return strconv.FormatInt(s, 10)
	}
}

// renderMatrix draws the filled matrix as a table: one column per element of
// x, one row per element of y, each cell showing its score and direction
// mask. Cells on path are highlighted; other Stop cells are drawn in red.
func renderMatrix(store matrix.Storage[int64], x, y []byte, path map[matrix.Cursor]bool) (string, error) {
	headers := make([]string, 0, len(x)+2)
	headers = append(headers, "", emptyLabel)
	for _, b := range x {
		headers = append(headers, string(b))
	}

	grid := make([][]matrix.Cell[int64], store.Height())
	rows := make([][]string, store.Height())
	for r := range rows {
		row, err := store.Row(r)
		if err != nil {
			return "", err
		}
		grid[r] = row
		label := emptyLabel
		if r > 0 {
			label = string(y[r-1])
		}
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, label)
		for _, cell := range row {
			cells = append(cells, formatScore(cell.Score)+" "+cell.Steps.String())
		}
		rows[r] = cells
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow || col == 0 {
				return styleHeader.Padding(0, 1)
			}
			at := matrix.Cursor{X: col - 1, Y: row}
			switch {
			case path[at]:
				return stylePathCell
			case grid[row][col-1].Steps == matrix.Stop:
				return styleStopCell
			default:
				return styleCell
			}
		})

	return t.Render(), nil
}

// writeJSON encodes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
