package rules

import (
	"testing"

	"sudoku-engine/internal/core"
)

// oracle is the canonical fully-solved grid used across the end-to-end
// scenarios: row-major values, no zeros.
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

func oracleGrid() core.Grid { return core.FromInts(oracle) }

func runSimpleLoop(g *core.Grid) core.Status {
	Reset(g)
	Simple(g)
	status := core.Nothing
	for i := 0; i < 1000; i++ {
		step := Occupy(g)
		step = step.Combine(Shapes(g))
		step = step.Combine(Survivor(g))
		step = step.Combine(Determined(g))
		status = step
		if step.IsDone() || step == core.Nothing {
			break
		}
	}
	return status.Combine(IsSolved(g))
}

func TestSingleMissingCellSolves(t *testing.T) {
	values := oracle
	values[0] = 0
	g := core.FromInts(values)

	runSimpleLoop(&g)

	if got := IsSolved(&g); got != core.Solved {
		t.Fatalf("IsSolved() = %v, want Solved", got)
	}
	if got := g.ToInts(); got != oracle {
		t.Fatalf("solved grid = %v, want oracle", got)
	}
}

func TestOneDigitErasedSolves(t *testing.T) {
	values := oracle
	for i, v := range values {
		if v == 5 {
			values[i] = 0
		}
	}
	g := core.FromInts(values)

	runSimpleLoop(&g)

	if got := IsSolved(&g); got != core.Solved {
		t.Fatalf("IsSolved() = %v, want Solved", got)
	}
	if got := g.ToInts(); got != oracle {
		t.Fatalf("solved grid = %v, want oracle", got)
	}
}

func TestInconsistentInputErrors(t *testing.T) {
	values := oracle
	values[1] = values[0] // duplicate 4 in row 0
	g := core.FromInts(values)

	Reset(&g)
	status := Simple(&g)
	status = status.Combine(IsSolved(&g))

	if status != core.Error {
		t.Fatalf("status = %v, want Error", status)
	}
}

func TestRulesAreIdempotent(t *testing.T) {
	g := oracleGrid()
	Reset(&g)

	if status := Simple(&g); status != core.Nothing {
		t.Fatalf("Simple on fully solved grid = %v, want Nothing", status)
	}
	if status := Occupy(&g); status != core.Nothing {
		t.Fatalf("Occupy on fully solved grid = %v, want Nothing", status)
	}
	if status := Shapes(&g); status != core.Nothing {
		t.Fatalf("Shapes on fully solved grid = %v, want Nothing", status)
	}
	if status := Survivor(&g); status != core.Nothing {
		t.Fatalf("Survivor on fully solved grid = %v, want Nothing", status)
	}
	if status := Trial(&g); status != core.Nothing {
		t.Fatalf("Trial on fully solved grid = %v, want Nothing", status)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	g := oracleGrid()
	Reset(&g)
	once := g
	Reset(&g)
	if g != once {
		t.Fatal("Reset(Reset(g)) must equal Reset(g)")
	}
}

func TestTrialEliminationForMarkGatedBelowThreshold(t *testing.T) {
	g := core.NewGrid()
	Reset(&g)
	if status := TrialEliminationForMark(&g, core.N1); status != core.Nothing {
		t.Fatalf("TrialEliminationForMark on an empty grid = %v, want Nothing (below determined threshold)", status)
	}
}

func TestTrialReportsUpdatedOnlyWhenGridChanges(t *testing.T) {
	values := oracle
	for i, v := range values {
		if v == 5 || v == 6 || v == 7 {
			values[i] = 0
		}
	}
	g := core.FromInts(values)
	runSimpleLoop(&g)

	before := g
	status := Trial(&g)
	if status == core.Updated {
		if g == before {
			t.Fatal("Trial reported Updated but left the grid unchanged")
		}
	}
}
