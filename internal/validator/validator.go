// Package validator checks grid and area consistency in two styles: a
// cheap boolean form used as the pruning gate during speculation, and a
// descriptive form used in tests and diagnostics.
package validator

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// IsValid is the boolean validity check used during speculation: every
// row, column and box must be valid. It returns false at the first invalid
// area it finds.
func IsValid(g core.Grid) bool {
	for _, r := range core.AllRows() {
		if !IsValidArea(g, r) {
			return false
		}
	}
	for _, c := range core.AllColumns() {
		if !IsValidArea(g, c) {
			return false
		}
	}
	for _, b := range core.AllBoxes() {
		if !IsValidArea(g, b) {
			return false
		}
	}
	return true
}

// IsValidArea checks each digit exactly once: for every digit d, either
// exactly one cell is determined to d, or at least one cell carries d as a
// candidate (determined xor possible, never neither).
func IsValidArea(g core.Grid, area core.Area) bool {
	slice := core.SliceFrom(g, area)
	for _, m := range core.Marks() {
		determined := slice.CountDeterminedValue(m.ToValue()) == 1
		possible := slice.CountPossible(m) > 0
		if determined == possible {
			return false
		}
	}
	return true
}

// ValidateGrid runs the descriptive form of validation: it returns an
// error identifying the first inconsistency found (multiple cells
// determined to the same digit, or a digit with neither a placement nor a
// candidate anywhere in an area), or nil if the grid is structurally
// sound.
func ValidateGrid(g core.Grid) error {
	for i, r := range core.AllRows() {
		if err := validateArea(g, r, "row", i); err != nil {
			return err
		}
	}
	for i, c := range core.AllColumns() {
		if err := validateArea(g, c, "column", i); err != nil {
			return err
		}
	}
	for i, b := range core.AllBoxes() {
		if err := validateArea(g, b, "box", i); err != nil {
			return err
		}
	}
	return nil
}

func validateArea(g core.Grid, area core.Area, kind string, index int) error {
	slice := core.SliceFrom(g, area)
	for _, m := range core.Marks() {
		determinedCount := slice.CountDeterminedValue(m.ToValue())
		possibleCount := slice.CountPossible(m)
		if determinedCount > 1 {
			return fmt.Errorf("%s %d: digit %d determined in %d cells", kind, index, m.ToValue(), determinedCount)
		}
		if determinedCount == 0 && possibleCount == 0 {
			return fmt.Errorf("%s %d: digit %d has no placement and no remaining candidate", kind, index, m.ToValue())
		}
	}
	return nil
}
