package constants

// Grid shape
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
	MinGivens  = 17
)

// Solver budgets
const (
	DefaultMaxIterations = 1000
)

// Generator difficulty presets: target number of determined cells left
// in the carved puzzle.
const (
	DifficultyEasy       = "easy"
	DifficultyMedium     = "medium"
	DifficultyHard       = "hard"
	DifficultyExtreme    = "extreme"
	DifficultyImpossible = "impossible"
)

var TargetGivens = map[string]int{
	DifficultyEasy:       40,
	DifficultyMedium:     34,
	DifficultyHard:       28,
	DifficultyExtreme:    24,
	DifficultyImpossible: 20,
}

// API version
const APIVersion = "0.1.0"

// Default listen port
const DefaultPort = "8080"
