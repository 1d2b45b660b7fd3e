package rules

import "sudoku-engine/internal/core"

// Determined implements the hidden single rule: for every row, column and
// box, build its slice; for each digit still possible somewhere in the
// area, if it is possible in exactly one cell, place it there.
func Determined(g *core.Grid) core.Status {
	status := core.Nothing
	for _, r := range core.AllRows() {
		status = status.Combine(determinedArea(g, r))
	}
	for _, c := range core.AllColumns() {
		status = status.Combine(determinedArea(g, c))
	}
	for _, b := range core.AllBoxes() {
		status = status.Combine(determinedArea(g, b))
	}
	return status
}

func determinedArea(g *core.Grid, area core.Area) core.Status {
	slice := core.SliceFrom(*g, area)
	if slice.IsFullyDetermined() {
		return core.Nothing
	}

	status := core.Nothing
	or := slice.OrAll()
	for _, m := range core.Marks() {
		if !or.IsPossible(m) {
			continue
		}
		index, count := slice.SearchCountPossible(m)
		if count == 1 {
			g.PlaceValueAt(area.GetCoord(index), m)
			status = core.Updated
		}
	}
	return status
}
