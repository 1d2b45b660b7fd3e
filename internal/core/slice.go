package core

// Slice is a fixed-width nine-cell snapshot of an area, padded to sixteen
// entries so bitwise reductions can run over a SIMD-friendly width; the
// padding entries stay empty cells and never participate in a reduction
// that walks only the first nine. A Slice is a copy, never a view: rule
// code never entangles with the grid's lifetime.
type Slice struct {
	cells [16]Cell
}

// SliceFrom copies the nine cells area references out of g.
func SliceFrom(g Grid, a Area) Slice {
	var s Slice
	for _, i := range a.Iter() {
		s.cells[i] = g.GetCellAt(a.GetCoord(i))
	}
	return s
}

// At returns the i'th cell of the slice (0..8).
func (s Slice) At(i int) Cell { return s.cells[i] }

// OrAll bitwise-ors all nine cells, discovering which digits are still in
// play anywhere in the area.
func (s Slice) OrAll() Cell {
	var acc Cell
	for i := 0; i < 9; i++ {
		acc |= s.cells[i]
	}
	return acc
}

// OnlyPossibleValue projects the slice to cells where candidate m is set,
// leaving the rest as empty cells.
func (s Slice) OnlyPossibleValue(m Mark) Slice {
	var out Slice
	for i := 0; i < 9; i++ {
		if s.cells[i].IsPossible(m) {
			out.cells[i] = s.cells[i]
		}
	}
	return out
}

// CountPossible counts the cells carrying m as a candidate.
func (s Slice) CountPossible(m Mark) int {
	n := 0
	for i := 0; i < 9; i++ {
		if s.cells[i].IsPossible(m) {
			n++
		}
	}
	return n
}

// SearchCountPossible returns the index of the last cell carrying m as a
// candidate alongside the total count; callers with count == 1 know the
// returned index is the only one.
func (s Slice) SearchCountPossible(m Mark) (index, count int) {
	for i := 0; i < 9; i++ {
		if s.cells[i].IsPossible(m) {
			count++
			index = i
		}
	}
	return index, count
}

// FirstPossible returns the index of the first cell carrying m as a
// candidate, or 0 if none; callers must gate with CountPossible > 0.
func (s Slice) FirstPossible(m Mark) int {
	for i := 0; i < 9; i++ {
		if s.cells[i].IsPossible(m) {
			return i
		}
	}
	return 0
}

// CountDeterminedValue counts the cells whose value nibble equals v.
func (s Slice) CountDeterminedValue(v int) int {
	n := 0
	for i := 0; i < 9; i++ {
		if s.cells[i].Value() == v {
			n++
		}
	}
	return n
}

// CountDetermined counts the cells that are determined, regardless of value.
func (s Slice) CountDetermined() int {
	n := 0
	for i := 0; i < 9; i++ {
		if s.cells[i].IsDetermined() {
			n++
		}
	}
	return n
}

// IsFullyDetermined reports whether every cell in the slice is determined.
func (s Slice) IsFullyDetermined() bool { return s.CountDetermined() == 9 }
