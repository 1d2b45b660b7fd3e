package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"sudoku-engine/internal/format"
	"sudoku-engine/internal/generator"
	"sudoku-engine/pkg/constants"
)

// puzzleRecord is one generated puzzle: its hex-encoded solution and the
// hex-encoded puzzle carved out of it for each configured difficulty.
type puzzleRecord struct {
	Seed     int64             `json:"seed"`
	Solution string            `json:"solution"`
	Puzzles  map[string]string `json:"puzzles"`
}

type puzzleFile struct {
	Version int            `json:"version"`
	Count   int            `json:"count"`
	Puzzles []puzzleRecord `json:"puzzles"`
}

func main() {
	count := flag.Int("n", 1000, "number of puzzles to generate")
	output := flag.String("o", "puzzles.json", "output file path")
	workers := flag.Int("w", 0, "number of concurrent generators (default: num CPUs)")
	startSeed := flag.Int64("seed", 1, "starting seed value")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	fmt.Printf("generating %d puzzles with %d workers...\n", *count, *workers)
	start := time.Now()

	records := make([]puzzleRecord, *count)
	var generated int64

	done := make(chan struct{})
	go reportProgress(&generated, *count, start, done)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)

	for i := 0; i < *count; i++ {
		idx := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			records[idx] = generatePuzzle(*startSeed + int64(idx))
			atomic.AddInt64(&generated, 1)
			return nil
		})
	}

	err := g.Wait()
	close(done)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Printf("generated %d puzzles in %v (%.1f/sec)\n", *count, elapsed, float64(*count)/elapsed.Seconds())

	file := puzzleFile{Version: 1, Count: *count, Puzzles: records}
	data, err := json.Marshal(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error marshaling JSON: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing file: %v\n", err)
		os.Exit(1)
	}

	info, _ := os.Stat(*output)
	fmt.Printf("done, file size: %.2f MB\n", float64(info.Size())/1024/1024)
}

func reportProgress(generated *int64, total int, start time.Time, done <-chan struct{}) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			n := atomic.LoadInt64(generated)
			elapsed := time.Since(start)
			rate := float64(n) / elapsed.Seconds()
			fmt.Printf("  progress: %d/%d (%.1f/sec)\n", n, total, rate)
		case <-done:
			return
		}
	}
}

func generatePuzzle(seed int64) puzzleRecord {
	gen := generator.NewWithSeed(seed)
	full := gen.Generate()

	puzzles := make(map[string]string, len(constants.TargetGivens))
	for difficulty, target := range constants.TargetGivens {
		remove := constants.TotalCells - target
		puzzles[difficulty] = format.ToHex(gen.RemoveCellsAmount(full, remove))
	}

	return puzzleRecord{
		Seed:     seed,
		Solution: format.ToHex(full),
		Puzzles:  puzzles,
	}
}
