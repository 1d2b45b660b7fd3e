package rules

import "sudoku-engine/internal/core"

// Simple applies peer elimination: for every determined cell, clear its
// value from every peer's candidate set. Idempotent after one pass unless
// combined with new placements.
func Simple(g *core.Grid) core.Status {
	status := core.Nothing
	for i := 0; i < 81; i++ {
		c := (*g)[i]
		if !c.IsDetermined() {
			continue
		}
		m := core.MarkFromValue(c.Value())
		mask := core.UnsetInfluence[m.ToIndex()][i]
		before := *g
		g.ApplyMask(mask)
		if *g != before {
			status = core.Updated
		}
	}
	return status
}
