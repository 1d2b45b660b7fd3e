package rules

import "sudoku-engine/internal/core"

// Heuristic gate bounds: trial elimination only pays for itself once the
// grid carries enough determined structure, and only for digits that are
// already well on their way to placement everywhere.
const (
	trialMinDetermined     = 25
	trialMinBoxesCompleted = 3
	trialMaxBoxesCompleted = 7
)

// Trial implements trial elimination, a scoped one-ply lookahead: for each
// undetermined cell and each of its candidates, speculatively place the
// candidate on a clone and run a bounded shapes+hidden-single sweep; if
// some box ends up with neither a placement nor a remaining candidate for
// some digit, the candidate was impossible and is eliminated on the live
// grid.
func Trial(g *core.Grid) core.Status {
	status := core.Nothing
	for _, m := range core.Marks() {
		status = status.Combine(TrialEliminationForMark(g, m))
	}
	return status
}

// TrialEliminationForMark runs trial elimination for a single digit, the
// unit Trial sweeps over every mark. Exposed on its own for targeted
// testing and for callers that only care about narrowing one digit at a
// time.
func TrialEliminationForMark(g *core.Grid, m core.Mark) core.Status {
	if !trialHeuristicGate(g, m) {
		return core.Nothing
	}
	status := core.Nothing
	for _, box := range core.AllBoxes() {
		if boxDeterminedFor(g, box, m) {
			continue
		}
		for i := 0; i < 9; i++ {
			c := box.GetCoord(i)
			if !g.GetCellAt(c).IsPossible(m) {
				continue
			}
			if trialEliminates(*g, c, m) {
				g.UnsetPossibleAt(c, m)
				status = core.Updated
			}
		}
	}
	return status
}

func trialHeuristicGate(g *core.Grid, m core.Mark) bool {
	if g.CountDetermined() < trialMinDetermined {
		return false
	}
	complete := 0
	for _, box := range core.AllBoxes() {
		if boxDeterminedFor(g, box, m) {
			complete++
		}
	}
	return complete >= trialMinBoxesCompleted && complete <= trialMaxBoxesCompleted
}

func boxDeterminedFor(g *core.Grid, box core.Box, m core.Mark) bool {
	slice := core.SliceFrom(*g, box)
	return slice.CountDeterminedValue(m.ToValue()) == 1
}

func trialEliminates(g core.Grid, c core.Coord, m core.Mark) bool {
	g.PlaceValueAt(c, m)
	for {
		status := Shapes(&g)
		status = status.Combine(Determined(&g))
		if status != core.Updated {
			break
		}
	}
	return boxInconsistent(g)
}

func boxInconsistent(g core.Grid) bool {
	for _, box := range core.AllBoxes() {
		slice := core.SliceFrom(g, box)
		for _, m := range core.Marks() {
			if slice.CountPossible(m) == 0 && slice.CountDeterminedValue(m.ToValue()) == 0 {
				return true
			}
		}
	}
	return false
}
