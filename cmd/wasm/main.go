//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"sudoku-engine/internal/format"
	"sudoku-engine/internal/generator"
	"sudoku-engine/internal/solver"
)

// jsArrayToIntSlice converts a JavaScript array to a Go []int.
func jsArrayToIntSlice(arr js.Value) []int {
	length := arr.Length()
	result := make([]int, length)
	for i := 0; i < length; i++ {
		result[i] = arr.Index(i).Int()
	}
	return result
}

// toJSValue converts a Go value to a JavaScript value via JSON.
func toJSValue(v interface{}) js.Value {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return js.ValueOf(nil)
	}
	return js.Global().Get("JSON").Call("parse", string(jsonBytes))
}

func errValue(msg string) js.Value {
	return toJSValue(map[string]interface{}{"error": msg})
}

func cellsArgToEnvelope(args []js.Value) (format.InputEnvelope, bool) {
	if len(args) < 1 {
		return format.InputEnvelope{}, false
	}
	cells := jsArrayToIntSlice(args[0])
	if len(cells) != 81 {
		return format.InputEnvelope{}, false
	}
	var in format.InputEnvelope
	copy(in.Cells[:], cells)
	return in, true
}

// solve runs the full driver (simple loop, then speculative branching).
// Input: cells (number[81]). Output: the JSON envelope from format.OutputEnvelope.
func solve(this js.Value, args []js.Value) interface{} {
	in, ok := cellsArgToEnvelope(args)
	if !ok {
		return errValue("cells must have 81 elements")
	}
	result := solver.Solve(format.GridFromEnvelope(in), solver.DefaultMaxIterations)
	return toJSValue(format.EnvelopeFromResult(result))
}

// solveSimple runs only the fixed-point deduction loop.
func solveSimple(this js.Value, args []js.Value) interface{} {
	in, ok := cellsArgToEnvelope(args)
	if !ok {
		return errValue("cells must have 81 elements")
	}
	result := solver.SolveSimple(format.GridFromEnvelope(in), solver.DefaultMaxIterations)
	return toJSValue(format.EnvelopeFromResult(result))
}

// generate produces a fully solved grid, optionally seeded, and an
// optional puzzle carved out of it.
// Input: seed (number, 0 for random), removeCells (number).
func generate(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errValue("seed and removeCells are required")
	}
	seed := int64(args[0].Int())
	removeCells := args[1].Int()

	var gen *generator.Generator
	if seed == 0 {
		gen = generator.New()
	} else {
		gen = generator.NewWithSeed(seed)
	}

	full := gen.Generate()
	puzzle := full
	if removeCells > 0 {
		puzzle = gen.RemoveCellsAmount(full, removeCells)
	}

	return toJSValue(map[string]interface{}{
		"solution": format.ToHex(full),
		"puzzle":   format.ToHex(puzzle),
	})
}

// toHex/fromHex/toASCII/fromASCII expose the grid codecs directly for
// callers that want to persist or display a grid without round-tripping
// through the full JSON envelope.
func toHex(this js.Value, args []js.Value) interface{} {
	in, ok := cellsArgToEnvelope(args)
	if !ok {
		return errValue("cells must have 81 elements")
	}
	return js.ValueOf(format.ToHex(format.GridFromEnvelope(in)))
}

func fromHex(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errValue("hex string required")
	}
	g, err := format.FromHex(args[0].String())
	if err != nil {
		return errValue(err.Error())
	}
	ints := g.ToInts()
	return toJSValue(ints)
}

func toASCII(this js.Value, args []js.Value) interface{} {
	in, ok := cellsArgToEnvelope(args)
	if !ok {
		return errValue("cells must have 81 elements")
	}
	return js.ValueOf(format.FormatASCII(format.GridFromEnvelope(in)))
}

func fromASCII(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errValue("ascii string required")
	}
	g := format.ParseASCII(args[0].String())
	return toJSValue(g.ToInts())
}

func main() {
	js.Global().Set("sudokuSolve", js.FuncOf(solve))
	js.Global().Set("sudokuSolveSimple", js.FuncOf(solveSimple))
	js.Global().Set("sudokuGenerate", js.FuncOf(generate))
	js.Global().Set("sudokuToHex", js.FuncOf(toHex))
	js.Global().Set("sudokuFromHex", js.FuncOf(fromHex))
	js.Global().Set("sudokuToASCII", js.FuncOf(toASCII))
	js.Global().Set("sudokuFromASCII", js.FuncOf(fromASCII))

	select {} // keep the wasm module alive
}
