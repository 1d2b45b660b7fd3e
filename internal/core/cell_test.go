package core

import "testing"

func TestNewCellHasAllCandidatesNoValue(t *testing.T) {
	c := NewCell()
	if c.IsDetermined() {
		t.Fatal("new cell should not be determined")
	}
	for _, m := range allMarks {
		if !c.IsPossible(m) {
			t.Errorf("new cell missing candidate %v", m)
		}
	}
}

func TestPlacedCellClearsCandidates(t *testing.T) {
	c := PlacedCell(5)
	if !c.IsDetermined() || c.Value() != 5 {
		t.Fatalf("PlacedCell(5) = %v, want determined value 5", c)
	}
	for _, m := range allMarks {
		if c.IsPossible(m) {
			t.Errorf("placed cell should have no candidates, found %v", m)
		}
	}
}

func TestSetUnsetPossible(t *testing.T) {
	c := EmptyCell()
	c = c.SetPossible(N3)
	if !c.IsPossible(N3) {
		t.Fatal("expected N3 possible after SetPossible")
	}
	if c.PossibleCount() != 1 {
		t.Fatalf("PossibleCount() = %d, want 1", c.PossibleCount())
	}
	c = c.UnsetPossible(N3)
	if c.IsPossible(N3) {
		t.Fatal("expected N3 not possible after UnsetPossible")
	}
}

func TestOnlyPossibleMarkRequiresSingleCandidate(t *testing.T) {
	c := EmptyCell().SetPossible(N7)
	if c.PossibleCount() != 1 {
		t.Fatalf("PossibleCount() = %d, want 1", c.PossibleCount())
	}
	if got := c.OnlyPossibleMark(); got != N7 {
		t.Fatalf("OnlyPossibleMark() = %v, want N7", got)
	}
}
