package rules

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/validator"
)

// IsSolved is the terminal check: Error when any undetermined cell has no
// value and no candidates or when validator.IsValid rejects the grid (for
// example some area holds two cells determined to the same digit, or a
// digit with neither a placement nor a candidate), otherwise Solved when
// every cell is determined and Nothing when some cell is not. This is the strict contract: "no candidates left" on its own
// is never read as solved, only "every cell has a value" is.
func IsSolved(g *core.Grid) core.Status {
	solved := true
	for _, c := range *g {
		if !c.IsDetermined() {
			solved = false
			if c.IsEmpty() {
				return core.Error
			}
		}
	}
	if !validator.IsValid(*g) {
		return core.Error
	}
	if solved {
		return core.Solved
	}
	return core.Nothing
}
