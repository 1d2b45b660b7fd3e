package rules

import "sudoku-engine/internal/core"

// Survivor implements the naked survivor rule: any undetermined cell whose
// candidate popcount is exactly one gets placed.
func Survivor(g *core.Grid) core.Status {
	status := core.Nothing
	for i := 0; i < 81; i++ {
		c := (*g)[i]
		if c.IsDetermined() || c.PossibleCount() != 1 {
			continue
		}
		g.PlaceValueAt(core.Coord(i), c.OnlyPossibleMark())
		status = core.Updated
	}
	return status
}
