package generator

import (
	"testing"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/solver"
	"sudoku-engine/internal/validator"
)

func TestGenerateWithSeedIsDeterministic(t *testing.T) {
	a := GenerateWithSeed(42)
	b := GenerateWithSeed(42)

	if !a.Equal(b) {
		t.Fatal("identical seeds must produce identical grids")
	}
}

func TestGeneratedGridIsFullyDeterminedAndValid(t *testing.T) {
	g := GenerateWithSeed(7)

	if g.CountDetermined() != 81 {
		t.Fatalf("generated grid has %d determined cells, want 81", g.CountDetermined())
	}
	if !validator.IsValid(g) {
		t.Fatal("generated grid must be structurally valid")
	}
}

func TestRemoveCellsAmountProducesASolvablePuzzle(t *testing.T) {
	gen := NewWithSeed(99)
	full := gen.Generate()
	puzzle := gen.RemoveCellsAmount(full, 40)

	if got := puzzle.CountDetermined(); got != 41 {
		t.Fatalf("puzzle has %d determined cells, want 41", got)
	}

	result := solver.Solve(puzzle, solver.DefaultMaxIterations)
	if result.Status != core.Solved {
		t.Fatalf("status = %v, want Solved", result.Status)
	}
	if !validator.IsValid(result.Grid) {
		t.Fatal("solved grid must be structurally valid")
	}
}
