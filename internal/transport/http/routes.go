// Package http is the thin web facade the spec treats as an external
// collaborator: it hands grids to the solver/generator core and reports
// back a status, nothing more. Request shape and route wiring are its own
// concern, not the propagation core's.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/format"
	"sudoku-engine/internal/generator"
	"sudoku-engine/internal/solver"
	"sudoku-engine/pkg/config"
	"sudoku-engine/pkg/constants"
)

var cfg *config.Config
var log zerolog.Logger

// RegisterRoutes wires the engine's programmatic surface onto r: solving
// at three granularities, generation, and a health check. Persistence,
// accounts and a step-by-step technique explanation surface are out of
// scope here.
func RegisterRoutes(r *gin.Engine, c *config.Config, logger zerolog.Logger) {
	cfg = c
	log = logger

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler)
		api.POST("/solve-simple", solveSimpleHandler)
		api.POST("/solve-step", solveStepHandler)
		api.POST("/generate", generateHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// solveHandler runs the full driver: simple loop, then speculative
// branching if it stalls.
func solveHandler(c *gin.Context) {
	var in format.InputEnvelope
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := uuid.NewString()
	grid := format.GridFromEnvelope(in)
	result := solver.Solve(grid, cfg.MaxIterations)

	log.Info().Str("request_id", requestID).Str("status", result.Status.String()).
		Int("iterations", result.Iterations).Msg("solve")

	c.JSON(http.StatusOK, format.EnvelopeFromResult(result))
}

// solveSimpleHandler runs only the fixed-point deduction loop, never
// branching speculatively.
func solveSimpleHandler(c *gin.Context) {
	var in format.InputEnvelope
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid := format.GridFromEnvelope(in)
	result := solver.SolveSimple(grid, cfg.MaxIterations)

	c.JSON(http.StatusOK, format.EnvelopeFromResult(result))
}

// solveStepHandler applies exactly one rule-pipeline pass, for
// step-through callers.
func solveStepHandler(c *gin.Context) {
	var in format.InputEnvelope
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid := format.GridFromEnvelope(in)
	resultGrid, status := solver.SolveRound(grid)

	c.JSON(http.StatusOK, format.EnvelopeFromResult(core.AnnotatedResult{
		Grid:       resultGrid,
		Status:     status,
		Iterations: 1,
	}))
}

type generateRequest struct {
	Seed        *int64 `json:"seed"`
	RemoveCells int    `json:"remove_cells"`
}

// generateHandler produces a fully solved grid and, if requested, carves a
// puzzle out of it by removing remove_cells determined cells.
func generateHandler(c *gin.Context) {
	var req generateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var gen *generator.Generator
	if req.Seed != nil {
		gen = generator.NewWithSeed(*req.Seed)
	} else {
		gen = generator.New()
	}

	full := gen.Generate()
	puzzle := full
	if req.RemoveCells > 0 {
		puzzle = gen.RemoveCellsAmount(full, req.RemoveCells)
	}

	puzzleID := uuid.NewString()
	log.Info().Str("puzzle_id", puzzleID).Int("remove_cells", req.RemoveCells).Msg("generate")

	c.JSON(http.StatusOK, gin.H{
		"puzzle_id": puzzleID,
		"puzzle":    format.ToHex(puzzle),
		"solution":  format.ToHex(full),
	})
}
