package core

// GridMask is an 81-entry AND-mask grid, generated once at init time and
// shared process-wide. Placing a digit reduces to one AND pass of a
// GridMask over the live grid's 81 cells.
type GridMask [81]Cell

func identityGridMask() GridMask {
	var m GridMask
	for i := range m {
		m[i] = 0xFFFF
	}
	return m
}

// Influence[i] marks, with all bits set, every cell sharing a row, column
// or box with cell i, including i itself. It is used to scope reductions
// to the cells that can actually interact with i.
var Influence [81]GridMask

// UnsetInfluence[m][i] clears mark m's candidate bit from every peer of
// cell i, and clears the whole candidate region from i itself. Applying
// it is the entire cost of placing m at i.
var UnsetInfluence [9][81]GridMask

// SetPossibleMask[m] is a single-Cell mask with only mark m's candidate
// bit set, broadcast uniformly; ORing it into a cell sets that candidate.
var SetPossibleMask [9]Cell

// UnsetPossibleMask[m] is the complement of SetPossibleMask[m]; ANDing it
// into a cell clears that candidate.
var UnsetPossibleMask [9]Cell

func init() {
	for idx := 0; idx < 81; idx++ {
		coord := Coord(idx)
		peers := influenceIndices(coord)

		var influenceMask GridMask
		for _, p := range peers {
			influenceMask[p] = 0xFFFF
		}
		Influence[idx] = influenceMask

		for _, m := range allMarks {
			mask := identityGridMask()
			for _, p := range peers {
				if p == idx {
					mask[p] = mask[p] &^ candidateMask
				} else {
					mask[p] = mask[p] &^ Cell(m.Bit())
				}
			}
			UnsetInfluence[m.ToIndex()][idx] = mask
		}
	}

	for _, m := range allMarks {
		SetPossibleMask[m.ToIndex()] = Cell(m.Bit())
		UnsetPossibleMask[m.ToIndex()] = ^Cell(m.Bit())
	}
}
