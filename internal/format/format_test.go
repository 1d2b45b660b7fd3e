package format

import (
	"testing"

	"sudoku-engine/internal/core"
)

var oracle = [81]int{
	4, 3, 5, 2, 6, 9, 7, 8, 1,
	6, 8, 2, 5, 7, 1, 4, 9, 3,
	1, 9, 7, 8, 3, 4, 5, 6, 2,
	8, 2, 6, 1, 9, 5, 3, 4, 7,
	3, 7, 4, 6, 8, 2, 9, 1, 5,
	9, 5, 1, 7, 4, 3, 6, 2, 8,
	5, 1, 9, 3, 2, 6, 8, 7, 4,
	2, 4, 8, 9, 5, 7, 1, 3, 6,
	7, 6, 3, 4, 1, 8, 2, 5, 9,
}

func TestASCIIRoundTripOnFullyDeterminedGrid(t *testing.T) {
	g := core.FromInts(oracle)
	parsed := ParseASCII(FormatASCII(g))

	if !parsed.Equal(g) {
		t.Fatalf("round-trip mismatch: got %v, want %v", parsed.ToInts(), g.ToInts())
	}
}

func TestASCIIParseIgnoresSeparators(t *testing.T) {
	g := ParseASCII("4 3 5 | 2 6 9 | 7 8 1\n------|-------|------\n.0....... ........ .........")
	if got := g.GetCellAt(core.NewCoord(0, 0)).Value(); got != 4 {
		t.Fatalf("first cell = %d, want 4", got)
	}
}

func TestHexRoundTripExact(t *testing.T) {
	g := core.NewGrid()
	g.PlaceValueAt(core.NewCoord(3, 3), core.N7)

	encoded := ToHex(g)
	if len(encoded) != 324 {
		t.Fatalf("hex length = %d, want 324", len(encoded))
	}

	decoded, err := FromHex(encoded)
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if !decoded.Equal(g) {
		t.Fatal("hex round-trip must preserve candidate state exactly")
	}
}

func TestFromHexRejectsWrongLength(t *testing.T) {
	if _, err := FromHex("abc"); err == nil {
		t.Fatal("expected an error for a malformed hex string")
	}
}

func TestEnvelopeFromResultMirrorsStatusOrdinal(t *testing.T) {
	g := core.FromInts(oracle)
	result := core.AnnotatedResult{Grid: g, Status: core.Solved, Iterations: 3}

	env := EnvelopeFromResult(result)
	if env.Result != uint8(core.Solved) {
		t.Fatalf("Result = %d, want %d", env.Result, core.Solved)
	}
	if env.Cells[0].Value != 4 {
		t.Fatalf("Cells[0].Value = %d, want 4", env.Cells[0].Value)
	}
}
