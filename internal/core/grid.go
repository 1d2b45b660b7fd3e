package core

// Grid is the full 81-cell board, laid out row-major. It is a plain value
// type; cloning a grid is a struct copy, never a deep walk.
type Grid [81]Cell

// NewGrid returns a grid where every cell carries every candidate.
func NewGrid() Grid {
	var g Grid
	for i := range g {
		g[i] = NewCell()
	}
	return g
}

// EmptyGrid returns a grid of all-zero cells.
func EmptyGrid() Grid { return Grid{} }

// GetCellAt returns the cell at c.
func (g Grid) GetCellAt(c Coord) Cell { return g[c.Index()] }

// SetCell overwrites the cell at c.
func (g *Grid) SetCell(c Coord, cell Cell) { g[c.Index()] = cell }

// PlaceValueAt determines cell c to mark m and clears m from every peer's
// candidates in one pass, via the precomputed UnsetInfluence mask.
func (g *Grid) PlaceValueAt(c Coord, m Mark) {
	mask := UnsetInfluence[m.ToIndex()][c.Index()]
	for i := range g {
		g[i] &= mask[i]
	}
	g[c.Index()] = PlacedCell(m.ToValue())
}

// UnsetPossibleAt clears m from cell c's candidates without determining it.
func (g *Grid) UnsetPossibleAt(c Coord, m Mark) {
	g[c.Index()] = g[c.Index()].UnsetPossible(m)
}

// ApplyMask ANDs mask into every cell of the grid.
func (g *Grid) ApplyMask(mask GridMask) {
	for i := range g {
		g[i] &= mask[i]
	}
}

// Clone returns an independent copy of g.
func (g Grid) Clone() Grid { return g }

// Equal reports whether two grids are cell-for-cell identical.
func (g Grid) Equal(o Grid) bool { return g == o }

// CountDetermined counts the cells that have an assigned value.
func (g Grid) CountDetermined() int {
	n := 0
	for _, c := range g {
		if c.IsDetermined() {
			n++
		}
	}
	return n
}

// FromInts builds a grid from an 81-length array of 0..9 values, 0 meaning
// unassigned, placing each non-zero value through PlaceValueAt.
func FromInts(values [81]int) Grid {
	g := NewGrid()
	for i, v := range values {
		if v == 0 {
			continue
		}
		g.PlaceValueAt(Coord(i), MarkFromValue(v))
	}
	return g
}

// ToInts flattens a grid to an 81-length array of 0..9 values, 0 meaning
// unassigned.
func (g Grid) ToInts() [81]int {
	var out [81]int
	for i, c := range g {
		out[i] = c.Value()
	}
	return out
}
