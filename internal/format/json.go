package format

import "sudoku-engine/internal/core"

// InputEnvelope is the JSON shape the HTTP facade accepts: 81 cell values,
// 0 denoting empty.
type InputEnvelope struct {
	Cells [81]int `json:"cells"`
}

// CellView is one cell of an OutputEnvelope: its value (0 if unassigned)
// and which of the nine digits remain candidates.
type CellView struct {
	Value    int          `json:"value"`
	Possible PossibleView `json:"possible"`
}

// PossibleView names each candidate bit p1..p9 individually so the JSON
// shape is self-describing without a client-side bit decoder.
type PossibleView struct {
	P1 bool `json:"p1"`
	P2 bool `json:"p2"`
	P3 bool `json:"p3"`
	P4 bool `json:"p4"`
	P5 bool `json:"p5"`
	P6 bool `json:"p6"`
	P7 bool `json:"p7"`
	P8 bool `json:"p8"`
	P9 bool `json:"p9"`
}

// OutputEnvelope is the JSON shape returned after a solve: the iteration
// count spent, the terminal status's ordinal, and the resulting cells.
type OutputEnvelope struct {
	Iterations int        `json:"iterations"`
	Result     uint8      `json:"result"`
	Cells      []CellView `json:"cells"`
}

// GridFromEnvelope builds a grid from an input envelope.
func GridFromEnvelope(in InputEnvelope) core.Grid {
	return core.FromInts(in.Cells)
}

// EnvelopeFromResult builds the output envelope for a solved/unsolved grid.
func EnvelopeFromResult(result core.AnnotatedResult) OutputEnvelope {
	out := OutputEnvelope{
		Iterations: result.Iterations,
		Result:     uint8(result.Status),
		Cells:      make([]CellView, 81),
	}
	for i := 0; i < 81; i++ {
		c := result.Grid.GetCellAt(core.Coord(i))
		out.Cells[i] = CellView{
			Value: c.Value(),
			Possible: PossibleView{
				P1: c.IsPossible(core.N1),
				P2: c.IsPossible(core.N2),
				P3: c.IsPossible(core.N3),
				P4: c.IsPossible(core.N4),
				P5: c.IsPossible(core.N5),
				P6: c.IsPossible(core.N6),
				P7: c.IsPossible(core.N7),
				P8: c.IsPossible(core.N8),
				P9: c.IsPossible(core.N9),
			},
		}
	}
	return out
}
