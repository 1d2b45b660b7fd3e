// Package rules holds the independent, idempotent grid transforms the
// solver driver composes: reset, simple peer elimination, hidden single,
// locked candidates, shape elimination, naked survivor, trial elimination,
// and the terminal is-solved check.
package rules

import "sudoku-engine/internal/core"

// Reset canonicalizes every determined cell to value-only, no candidate
// bits, so downstream rules can assume that form. Run once up front; its
// own return value ignores whether anything changed, since it is a
// structural pass rather than a deduction.
func Reset(g *core.Grid) core.Status {
	for i := 0; i < 81; i++ {
		c := (*g)[i]
		if c.IsDetermined() {
			(*g)[i] = c.OnlyDetermined()
		}
	}
	return core.Nothing
}
