// Package generator produces fully determined grids by randomized
// placement with propagation, and carves puzzles out of them by removing
// determined cells.
package generator

import (
	"math/rand"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/rules"
	"sudoku-engine/internal/solver"
)

// boxFillAttempts is how many times a single box is retried before the
// whole generation restarts.
const boxFillAttempts = 3

// Generator owns a private RNG, built from a seed at construction, so
// reproducing a run is a property of the seed alone, not of any shared
// state.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded with the process's default random source.
func New() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(rand.Int63()))}
}

// NewWithSeed returns a generator whose fill order and digit choices are
// fully determined by seed: identical seeds produce identical grids.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces a fully solved grid: fill each box in order, retrying
// a box up to boxFillAttempts times and restarting the whole grid if a box
// never succeeds, then hand the result to the full solver to resolve any
// remaining cross-box constraints.
func (g *Generator) Generate() core.Grid {
	for {
		if grid, ok := g.attemptGenerate(); ok {
			return grid
		}
	}
}

func (g *Generator) attemptGenerate() (core.Grid, bool) {
	grid := core.NewGrid()
	grid = solver.PreSolve(grid)

	for _, box := range core.AllBoxes() {
		filled, ok := g.fillBox(grid, box)
		if !ok {
			return core.Grid{}, false
		}
		grid = filled
	}

	result := solver.Solve(grid, solver.DefaultMaxIterations)
	if result.Status != core.Solved {
		return core.Grid{}, false
	}
	return result.Grid, true
}

// fillBox tries up to boxFillAttempts times to place all nine digits in
// box by drawing a random candidate at each coordinate and propagating;
// an attempt fails outright the moment some coordinate runs out of
// candidates.
func (g *Generator) fillBox(grid core.Grid, box core.Box) (core.Grid, bool) {
	for attempt := 0; attempt < boxFillAttempts; attempt++ {
		working := grid
		ok := true
		for i := 0; i < 9; i++ {
			c := box.GetCoord(i)
			cell := working.GetCellAt(c)
			if cell.IsDetermined() {
				continue
			}
			candidates := cell.IterPossible()
			if len(candidates) == 0 {
				ok = false
				break
			}
			pick := candidates[g.rng.Intn(len(candidates))]
			working.PlaceValueAt(c, pick)
		}
		if ok {
			return working, true
		}
	}
	return core.Grid{}, false
}

// RemoveCellsAmount clones grid and clears n randomly chosen determined
// cells, carving a puzzle out of a filled grid.
func (g *Generator) RemoveCellsAmount(grid core.Grid, n int) core.Grid {
	clone := grid
	determined := make([]int, 0, 81)
	for i := 0; i < 81; i++ {
		if clone.GetCellAt(core.Coord(i)).IsDetermined() {
			determined = append(determined, i)
		}
	}
	g.rng.Shuffle(len(determined), func(a, b int) {
		determined[a], determined[b] = determined[b], determined[a]
	})
	if n > len(determined) {
		n = len(determined)
	}
	for _, idx := range determined[:n] {
		clone.SetCell(core.Coord(idx), core.NewCell())
		rules.Simple(&clone)
	}
	return clone
}

// GenerateWithSeed is a convenience wrapper equivalent to
// NewWithSeed(seed).Generate().
func GenerateWithSeed(seed int64) core.Grid {
	return NewWithSeed(seed).Generate()
}
