// Package deduce is the single analysis entry point: board analysis,
// next-move selection, move validation, and error localization all
// route through Engine so generation and live play observe identical
// logic.
package deduce

import (
	"fmt"
	"time"

	"sudoku_logic_go/internal/candidates"
	"sudoku_logic_go/internal/types"
	"sudoku_logic_go/internal/validator"
)

// hintPenalty is the fixed time cost charged whenever a player takes a
// hint, independent of which technique produced it.
const hintPenalty = 30 * time.Second

// Engine runs the deduction techniques over explicit grid arguments.
// It holds no board state, so one Engine can serve generation and any
// number of live sessions.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// AnalyzeBoard recomputes candidates, available moves, and errors from
// the grid content alone. Nothing is cached across calls.
func (e *Engine) AnalyzeBoard(g types.Grid) types.BoardAnalysis {
	cg := candidates.All(g)
	errs := e.detectErrors(g, cg)
	valid := validator.IsValidGrid(g) && len(errs) == 0
	moves := availableMoves(g, cg)
	return types.BoardAnalysis{
		AvailableMoves: moves,
		Candidates:     cg,
		Errors:         errs,
		IsValid:        valid,
		IsSolvable:     valid && (len(moves) > 0 || validator.IsSolved(g)),
	}
}

// FindNextMove returns the top-priority available move. It returns
// false when the board has errors or no technique applies; callers
// distinguish the latter via IsSolvable on the analysis.
func (e *Engine) FindNextMove(g types.Grid) (types.HintMove, bool) {
	analysis := e.AnalyzeBoard(g)
	if len(analysis.Errors) > 0 || len(analysis.AvailableMoves) == 0 {
		return types.HintMove{}, false
	}
	return analysis.AvailableMoves[0], true
}

// MoveResult is the structured outcome of ValidateMove. Violations are
// expected, frequent results on the interactive path and are never
// surfaced as Go errors.
type MoveResult struct {
	Valid         bool                  `json:"valid"`
	ViolatedUnits []types.UnitKind      `json:"violatedUnits,omitempty"`
	Contradiction bool                  `json:"contradiction,omitempty"`
	Explanation   string                `json:"explanation,omitempty"`
	Errors        []types.ErrorLocation `json:"errors,omitempty"`
}

// ValidateMove checks a prospective placement in two phases: the local
// unit constraints first, then a speculative apply and full re-analysis
// to catch moves that are locally legal but strand another cell with no
// candidates.
func (e *Engine) ValidateMove(g types.Grid, row, col, value int) MoveResult {
	if value < types.MinValue || value > types.MaxValue {
		return MoveResult{
			Explanation: fmt.Sprintf("value %d is outside 1..%d", value, types.MaxValue),
		}
	}
	if units := validator.ConflictingUnits(g, row, col, value); len(units) > 0 {
		return MoveResult{
			ViolatedUnits: units,
			Explanation:   fmt.Sprintf("%d already appears in this cell's %s", value, units[0]),
		}
	}
	speculative := g
	speculative[row][col] = value
	analysis := e.AnalyzeBoard(speculative)
	if len(analysis.Errors) > 0 {
		first := analysis.Errors[0]
		return MoveResult{
			Contradiction: true,
			Explanation: fmt.Sprintf("placing %d here leaves row %d, column %d with no possible value",
				value, first.Row+1, first.Col+1),
			Errors: analysis.Errors,
		}
	}
	return MoveResult{Valid: true}
}

// DetectErrors localizes board errors: empty cells with no remaining
// candidates, and filled cells that would be illegal if cleared and
// re-placed (corrupted or injected state).
func (e *Engine) DetectErrors(g types.Grid) []types.ErrorLocation {
	return e.detectErrors(g, candidates.All(g))
}

func (e *Engine) detectErrors(g types.Grid, cg types.CandidateGrid) []types.ErrorLocation {
	var errs []types.ErrorLocation
	for _, cell := range candidates.CellsWithNoCandidates(cg, g) {
		errs = append(errs, types.ErrorLocation{
			Row:             cell.Row,
			Col:             cell.Col,
			Kind:            types.NoSolutionError,
			Description:     fmt.Sprintf("no value can go in row %d, column %d", cell.Row+1, cell.Col+1),
			SuggestedAction: "undo recent moves in this cell's row, column, or box",
		})
	}
	for r := 0; r < types.GridSize; r++ {
		for c := 0; c < types.GridSize; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			cleared := g
			cleared[r][c] = 0
			if !validator.IsValidMove(cleared, r, c, v) {
				errs = append(errs, types.ErrorLocation{
					Row:             r,
					Col:             c,
					Kind:            types.InvalidMoveError,
					Description:     fmt.Sprintf("%d conflicts with another cell in row %d, column %d", v, r+1, c+1),
					SuggestedAction: "clear this cell",
				})
			}
		}
	}
	return errs
}

// HintPenalty is the time cost to charge for any hint.
func (e *Engine) HintPenalty() time.Duration { return hintPenalty }
