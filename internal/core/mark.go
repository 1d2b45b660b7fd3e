// Package core implements the bit-packed Sudoku grid representation: the
// digit tag, coordinate, cell word, area abstractions, mask tables and the
// grid itself. Nothing here allocates on the hot path.
package core

// Mark is a digit tag 1..9. It is convertible to a 1..9 value, a zero-based
// index, and a single-hot bit positioned in a cell's candidate region.
type Mark uint8

const (
	N1 Mark = iota + 1
	N2
	N3
	N4
	N5
	N6
	N7
	N8
	N9
)

var allMarks = [9]Mark{N1, N2, N3, N4, N5, N6, N7, N8, N9}

// Marks returns the nine digit tags in ascending order.
func Marks() [9]Mark { return allMarks }

// ToValue returns the 1..9 value of the mark.
func (m Mark) ToValue() int { return int(m) }

// MarkFromValue maps a 1..9 value back to its Mark. from_value(to_value(m)) == m.
func MarkFromValue(v int) Mark { return Mark(v) }

// ToIndex returns the zero-based index of the mark (N1 -> 0 .. N9 -> 8).
func (m Mark) ToIndex() int { return int(m) - 1 }

// MarkFromIndex maps a zero-based index back to its Mark. from_index(to_index(m)) == m.
func MarkFromIndex(i int) Mark { return Mark(i + 1) }

// Bit returns the single-hot candidate bit for this mark, positioned in the
// cell word's candidate region (bits 7..15).
func (m Mark) Bit() uint16 { return 1 << (7 + m.ToIndex()) }
