package rules

import "sudoku-engine/internal/core"

// Occupy implements locked candidates. For each band of three parallel
// lines sharing the same three boxes, partition each line into three
// "thirds" (one per box intersection); if a digit is possible in exactly
// one third of one line, it is confined to that box on that line, so it
// is cleared from the corresponding third of the band's other two lines.
// Symmetric for rows and columns.
func Occupy(g *core.Grid) core.Status {
	status := occupyLines(g, rowAreas())
	status = status.Combine(occupyLines(g, columnAreas()))
	return status
}

func rowAreas() [9]core.Area {
	rows := core.AllRows()
	var areas [9]core.Area
	for i, r := range rows {
		areas[i] = r
	}
	return areas
}

func columnAreas() [9]core.Area {
	cols := core.AllColumns()
	var areas [9]core.Area
	for i, c := range cols {
		areas[i] = c
	}
	return areas
}

func occupyLines(g *core.Grid, lines [9]core.Area) core.Status {
	status := core.Nothing
	for band := 0; band < 3; band++ {
		indices := [3]int{band * 3, band*3 + 1, band*3 + 2}
		for _, checkIdx := range indices {
			o1, o2 := otherTwo(indices, checkIdx)
			status = status.Combine(occupyLine(g, lines[checkIdx], lines[o1], lines[o2]))
		}
	}
	return status
}

func otherTwo(band [3]int, exclude int) (int, int) {
	var out [2]int
	n := 0
	for _, i := range band {
		if i != exclude {
			out[n] = i
			n++
		}
	}
	return out[0], out[1]
}

func occupyLine(g *core.Grid, check, other1, other2 core.Area) core.Status {
	status := core.Nothing
	slice := core.SliceFrom(*g, check)
	or := slice.OrAll()
	for _, m := range core.Marks() {
		if !or.IsPossible(m) {
			continue
		}
		third, ok := whichThird(slice, m)
		if !ok {
			continue
		}
		status = status.Combine(unsetThird(g, other1, third, m))
		status = status.Combine(unsetThird(g, other2, third, m))
	}
	return status
}

// whichThird reports the single third (0, 1 or 2) in which m is possible,
// or ok=false if m is possible in more than one third.
func whichThird(s core.Slice, m core.Mark) (third int, ok bool) {
	var groups [3]bool
	for i := 0; i < 9; i++ {
		if s.At(i).IsPossible(m) {
			groups[i/3] = true
		}
	}
	found, count := -1, 0
	for i, has := range groups {
		if has {
			found = i
			count++
		}
	}
	return found, count == 1
}

func unsetThird(g *core.Grid, area core.Area, third int, m core.Mark) core.Status {
	status := core.Nothing
	for i := third * 3; i < third*3+3; i++ {
		c := area.GetCoord(i)
		if g.GetCellAt(c).IsPossible(m) {
			g.UnsetPossibleAt(c, m)
			status = core.Updated
		}
	}
	return status
}
