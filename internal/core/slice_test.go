package core

import "testing"

func TestSliceFromRowCopiesNineCells(t *testing.T) {
	g := NewGrid()
	g.PlaceValueAt(NewCoord(2, 3), N6)

	s := SliceFrom(g, Row{Index: 2})
	if s.CountDetermined() != 1 {
		t.Fatalf("CountDetermined() = %d, want 1", s.CountDetermined())
	}
	if s.At(3).Value() != 6 {
		t.Fatalf("At(3).Value() = %d, want 6", s.At(3).Value())
	}
}

func TestSliceIsACopyNotAView(t *testing.T) {
	g := NewGrid()
	s := SliceFrom(g, Row{Index: 0})
	g.PlaceValueAt(NewCoord(0, 0), N1)
	if s.At(0).IsDetermined() {
		t.Fatal("slice should not reflect mutations made after it was taken")
	}
}
