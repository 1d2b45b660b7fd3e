package format

import (
	"strings"

	"sudoku-engine/internal/core"
)

// ParseASCII reads a grid from a tolerant ASCII representation: a token is
// either a digit 1..9 (placed) or '.'/'0' (empty); every other character
// (including '|', '-', spaces and newlines) is ignored. Reading stops
// once 81 tokens have been consumed.
func ParseASCII(s string) core.Grid {
	var values [81]int
	i := 0
	for _, r := range s {
		if i >= 81 {
			break
		}
		switch {
		case r >= '1' && r <= '9':
			values[i] = int(r - '0')
			i++
		case r == '.' || r == '0':
			values[i] = 0
			i++
		default:
			// ignored: separators, whitespace, anything else
		}
	}
	return core.FromInts(values)
}

// FormatASCII writes a grid as digits and '.' for empties, with '|' column
// separators every three cells and a divider line every three rows.
func FormatASCII(g core.Grid) string {
	var b strings.Builder
	const divider = "------|-------|------\n"

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			v := g.GetCellAt(core.NewCoord(row, col)).Value()
			if v == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte(byte('0' + v))
			}
			if col < 8 {
				if (col+1)%3 == 0 {
					b.WriteString(" | ")
				} else {
					b.WriteByte(' ')
				}
			}
		}
		b.WriteByte('\n')
		if row < 8 && (row+1)%3 == 0 {
			b.WriteString(divider)
		}
	}
	return b.String()
}
