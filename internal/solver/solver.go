// Package solver composes the rule set into the driver loop: pre-solve,
// the simple fixed-point loop, and bounded speculative branching when the
// simple loop stalls short of a solution.
package solver

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/rules"
	"sudoku-engine/internal/validator"
)

// DefaultMaxIterations is the default iteration budget for both the
// simple loop and speculative branching.
const DefaultMaxIterations = 1000

// PreSolve runs Reset then Simple once, the structural init every other
// phase assumes has already happened.
func PreSolve(g core.Grid) core.Grid {
	rules.Reset(&g)
	rules.Simple(&g)
	return g
}

// SolveRound applies exactly one pass of the rule pipeline and returns,
// for step-through callers.
func SolveRound(g core.Grid) (core.Grid, core.Status) {
	status := rules.Occupy(&g)
	status = status.Combine(rules.Shapes(&g))
	status = status.Combine(rules.Survivor(&g))
	status = status.Combine(rules.Determined(&g))
	status = status.Combine(rules.IsSolved(&g))
	return g, status
}

// SolveSimple runs pre-solve once, then the main loop (Occupy, Shapes,
// Survivor, Hidden single, in that order) to a fixed point: it stops when a
// pass returns Solved or Error, when a pass returns Nothing for every rule,
// or when the iteration counter reaches maxIterations.
func SolveSimple(g core.Grid, maxIterations int) core.AnnotatedResult {
	g = PreSolve(g)

	status := core.Nothing
	iterations := 0
	for iterations < maxIterations {
		step := rules.Occupy(&g)
		step = step.Combine(rules.Shapes(&g))
		step = step.Combine(rules.Survivor(&g))
		step = step.Combine(rules.Determined(&g))
		status = step.Combine(rules.IsSolved(&g))
		iterations++
		if status.IsDone() || step == core.Nothing {
			break
		}
	}
	return core.AnnotatedResult{Grid: g, Status: status, Iterations: iterations}
}

// Solve runs SolveSimple and, if it stalls unsolved, runs trial elimination
// as a narrowing pass before falling back to bounded speculative branching.
// Trial elimination can itself unstick the simple loop, so the two retry
// the fixed point together until neither makes progress or the iteration
// budget runs out.
func Solve(g core.Grid, maxIterations int) core.AnnotatedResult {
	result := SolveSimple(g, maxIterations)
	spent := result.Iterations
	for !result.Status.IsDone() && spent < maxIterations {
		if rules.Trial(&result.Grid) == core.Nothing {
			break
		}
		result = SolveSimple(result.Grid, maxIterations-spent)
		spent += result.Iterations
	}
	if result.Status.IsDone() {
		return core.AnnotatedResult{Grid: result.Grid, Status: result.Status, Iterations: spent}
	}
	return trySomeStuff(result.Grid, maxIterations, spent)
}

// trySomeStuff is the speculative branching phase: for each candidate of
// each undetermined cell, clone the grid, place the candidate, and run
// the simple loop on the clone. A clone that solves wins outright; a
// clone that errors eliminates that candidate on the live grid; a clone
// that stalls with more cells determined than the current best becomes
// the new best. Speculation depth is fixed at one: clones are never
// themselves speculated on.
func trySomeStuff(g core.Grid, maxIterations, spentIterations int) core.AnnotatedResult {
	best := g
	bestDetermined := g.CountDetermined()
	iterations := spentIterations

	for iterations < maxIterations {
		tries, errors := 0, 0
		progressed := false

		for i := 0; i < 81; i++ {
			c := core.Coord(i)
			cell := g.GetCellAt(c)
			if cell.IsDetermined() {
				continue
			}
			for _, m := range cell.IterPossible() {
				tries++
				clone := g
				clone.PlaceValueAt(c, m)

				result := SolveSimple(clone, maxIterations-iterations)
				iterations += result.Iterations

				switch {
				case result.Status == core.Solved:
					return core.AnnotatedResult{Grid: result.Grid, Status: core.Solved, Iterations: iterations}
				case result.Status == core.Error || !validator.IsValid(result.Grid):
					g.UnsetPossibleAt(c, m)
					errors++
					progressed = true
				case result.Grid.CountDetermined() > bestDetermined:
					best = result.Grid
					bestDetermined = result.Grid.CountDetermined()
					progressed = true
				}

				if iterations >= maxIterations {
					return core.AnnotatedResult{Grid: best, Status: core.Nothing, Iterations: iterations}
				}
			}
		}

		if tries > 0 && errors == tries {
			return core.AnnotatedResult{Grid: g, Status: core.Error, Iterations: iterations}
		}
		if !progressed {
			return core.AnnotatedResult{Grid: best, Status: core.Nothing, Iterations: iterations}
		}
	}

	return core.AnnotatedResult{Grid: best, Status: core.Nothing, Iterations: iterations}
}
