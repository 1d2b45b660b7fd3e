package core

import "testing"

func TestPlaceValueAtClearsPeerCandidates(t *testing.T) {
	g := NewGrid()
	target := NewCoord(4, 4)
	g.PlaceValueAt(target, N5)

	for _, idx := range influenceIndices(target) {
		c := g[idx]
		if idx == target.Index() {
			if c.PossibleCount() != 0 {
				t.Errorf("placed cell should have no candidates, got %d", c.PossibleCount())
			}
			continue
		}
		if c.IsPossible(N5) {
			t.Errorf("peer cell %d should have lost candidate 5", idx)
		}
	}

	outside := NewCoord(8, 8)
	if !g.GetCellAt(outside).IsPossible(N5) {
		t.Fatal("cell outside influence should keep candidate 5")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid()
	clone := g.Clone()
	g.PlaceValueAt(NewCoord(0, 0), N1)
	if clone.GetCellAt(NewCoord(0, 0)).IsDetermined() {
		t.Fatal("mutating original grid should not affect clone")
	}
}

func TestFromIntsToIntsRoundTrip(t *testing.T) {
	var values [81]int
	values[0] = 5
	values[40] = 9
	values[80] = 1

	g := FromInts(values)
	out := g.ToInts()
	for i, v := range values {
		if out[i] != v {
			t.Errorf("index %d: got %d, want %d", i, out[i], v)
		}
	}
}
