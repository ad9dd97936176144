// Package table aligns list rows into columns by display width.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format returns the rows padded according to the widest entry in each
// column. Widths are measured in terminal cells, so wide runes line up. The
// last left-aligned column is not padded.
func Format(rows [][]string, alignments []Alignment, sep string) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < colCount; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString(sep)
			}
			right := c < len(alignments) && alignments[c] == AlignRight
			switch {
			case right:
				b.WriteString(runewidth.FillLeft(cell, widths[c]))
			case c == colCount-1:
				b.WriteString(cell)
			default:
				b.WriteString(runewidth.FillRight(cell, widths[c]))
			}
		}
		out[i] = b.String()
	}
	return out
}
