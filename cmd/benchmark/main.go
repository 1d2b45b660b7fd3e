// benchmark generates and solves a batch of puzzles, aggregating one CSV
// row per run: grid count, timing, iteration count and terminal status
// tallies.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"time"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/generator"
	"sudoku-engine/internal/solver"
)

type dataPoint struct {
	size             int
	generationTime   time.Duration
	solveTime        time.Duration
	iterations       int
	solved, nothing  int
	errored, updated int
}

func (d dataPoint) row() []string {
	perGen := time.Duration(0)
	perSolve := time.Duration(0)
	if d.size > 0 {
		perGen = d.generationTime / time.Duration(d.size)
		perSolve = d.solveTime / time.Duration(d.size)
	}
	return []string{
		fmt.Sprint(d.size),
		fmt.Sprint(d.generationTime.Nanoseconds()),
		fmt.Sprint(d.solveTime.Nanoseconds()),
		fmt.Sprint(perGen.Nanoseconds()),
		fmt.Sprint(perSolve.Nanoseconds()),
		fmt.Sprint(d.iterations),
		fmt.Sprint(d.solved),
		fmt.Sprint(d.nothing),
		fmt.Sprint(d.errored),
		fmt.Sprint(d.updated),
	}
}

var csvHeaders = []string{
	"size", "generation_time_ns", "solve_time_ns", "generation_time_per_ns",
	"solve_time_per_ns", "iterations", "solved", "nothing", "error", "updated",
}

func main() {
	size := flag.Int("n", 100, "number of puzzles to generate and solve")
	removeCells := flag.Int("remove", 45, "determined cells removed per generated grid")
	output := flag.String("o", "", "CSV output path (default: stdout)")
	seed := flag.Int64("seed", 1, "starting seed value")
	flag.Parse()

	point := run(*size, *removeCells, *seed)

	var out *os.File = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating %s: %v\n", *output, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	_ = w.Write(csvHeaders)
	_ = w.Write(point.row())
	w.Flush()
}

func run(size, removeCells int, startSeed int64) dataPoint {
	point := dataPoint{size: size}

	for i := 0; i < size; i++ {
		gen := generator.NewWithSeed(startSeed + int64(i))

		genStart := time.Now()
		full := gen.Generate()
		puzzle := gen.RemoveCellsAmount(full, removeCells)
		point.generationTime += time.Since(genStart)

		solveStart := time.Now()
		result := solver.Solve(puzzle, solver.DefaultMaxIterations)
		point.solveTime += time.Since(solveStart)

		point.iterations += result.Iterations
		switch result.Status {
		case core.Solved:
			point.solved++
		case core.Error:
			point.errored++
		case core.Updated:
			point.updated++
		case core.Nothing:
			point.nothing++
		}
	}

	return point
}
