package rules

import "sudoku-engine/internal/core"

// Shapes implements shape elimination, the dual-direction sibling of
// Occupy: for each box, compute the OR of each of its three rows-within-box
// and each of its three columns-within-box. If a digit is possible in only
// one row-within-box, it is confined to that row inside this box, so it is
// eliminated from the rest of that full row outside the box. Symmetric for
// columns. This often finds eliminations Occupy misses because it reasons
// from box to line rather than line to box.
func Shapes(g *core.Grid) core.Status {
	status := core.Nothing
	for _, box := range core.AllBoxes() {
		status = status.Combine(shapeRows(g, box))
		status = status.Combine(shapeCols(g, box))
	}
	return status
}

func shapeRows(g *core.Grid, box core.Box) core.Status {
	status := core.Nothing
	var rowOr [3]core.Cell
	for lr := 0; lr < 3; lr++ {
		var acc core.Cell
		for lc := 0; lc < 3; lc++ {
			acc |= g.GetCellAt(core.NewCoord(box.Row+lr, box.Col+lc))
		}
		rowOr[lr] = acc
	}
	for _, m := range core.Marks() {
		lr, ok := soleThird(rowOr, m)
		if !ok {
			continue
		}
		row := box.Row + lr
		for col := 0; col < 9; col++ {
			if col >= box.Col && col < box.Col+3 {
				continue
			}
			c := core.NewCoord(row, col)
			if g.GetCellAt(c).IsPossible(m) {
				g.UnsetPossibleAt(c, m)
				status = core.Updated
			}
		}
	}
	return status
}

func shapeCols(g *core.Grid, box core.Box) core.Status {
	status := core.Nothing
	var colOr [3]core.Cell
	for lc := 0; lc < 3; lc++ {
		var acc core.Cell
		for lr := 0; lr < 3; lr++ {
			acc |= g.GetCellAt(core.NewCoord(box.Row+lr, box.Col+lc))
		}
		colOr[lc] = acc
	}
	for _, m := range core.Marks() {
		lc, ok := soleThird(colOr, m)
		if !ok {
			continue
		}
		col := box.Col + lc
		for row := 0; row < 9; row++ {
			if row >= box.Row && row < box.Row+3 {
				continue
			}
			c := core.NewCoord(row, col)
			if g.GetCellAt(c).IsPossible(m) {
				g.UnsetPossibleAt(c, m)
				status = core.Updated
			}
		}
	}
	return status
}

// soleThird reports the single group (0, 1 or 2) in which m is possible.
func soleThird(groups [3]core.Cell, m core.Mark) (index int, ok bool) {
	found, count := -1, 0
	for i, g := range groups {
		if g.IsPossible(m) {
			found = i
			count++
		}
	}
	return found, count == 1
}
