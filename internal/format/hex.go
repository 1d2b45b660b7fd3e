package format

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// ToHex serializes a grid as 81 concatenated 4-hex-digit words (324
// characters), one per cell, each the raw 16-bit cell word. Round-trips
// exactly, including candidate state.
func ToHex(g core.Grid) string {
	buf := make([]byte, 0, 81*4)
	for i := 0; i < 81; i++ {
		buf = append(buf, []byte(fmt.Sprintf("%04x", uint16(g.GetCellAt(core.Coord(i)))))...)
	}
	return string(buf)
}

// FromHex parses a grid from its ToHex representation. It returns an
// error if s is not exactly 324 hex characters.
func FromHex(s string) (core.Grid, error) {
	if len(s) != 81*4 {
		return core.Grid{}, fmt.Errorf("format: hex grid must be %d characters, got %d", 81*4, len(s))
	}
	var g core.Grid
	for i := 0; i < 81; i++ {
		word := s[i*4 : i*4+4]
		var v uint16
		if _, err := fmt.Sscanf(word, "%04x", &v); err != nil {
			return core.Grid{}, fmt.Errorf("format: invalid hex word %q at cell %d: %w", word, i, err)
		}
		g.SetCell(core.Coord(i), core.Cell(v))
	}
	return g, nil
}
