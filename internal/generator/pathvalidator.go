package generator

import (
	"sudoku_logic_go/internal/deduce"
	"sudoku_logic_go/internal/types"
	"sudoku_logic_go/internal/validator"
)

// replayTrail independently re-checks a carved puzzle by playing it
// from the clues, always taking the engine's top move, and recording
// the trail. It rejects the puzzle when any intermediate state offers
// fewer than minMoves simultaneous logical moves or when the replay
// does not land exactly on the expected solution.
//
// The bar is capped by the number of open cells: moves are deduped per
// cell, so the forced endgame (fewer open cells than minMoves) can
// never offer more moves than holes and is not a weak state.
//
// The trail's highest technique is taken from the moves actually
// played, so relaxed fallback puzzles carry accurate metadata.
func replayTrail(engine *deduce.Engine, clues, solution types.Grid, minMoves int) (*types.MoveTrail, bool) {
	work := clues
	trail := &types.MoveTrail{HighestTechnique: types.NakedSingle}

	for !validator.IsSolved(work) {
		analysis := engine.AnalyzeBoard(work)
		bar := minMoves
		if open := types.CellCount - work.FilledCount(); open < bar {
			bar = open
		}
		if !analysis.IsValid || len(analysis.AvailableMoves) < bar {
			return nil, false
		}
		mv := analysis.AvailableMoves[0]
		work[mv.Row][mv.Col] = mv.Value
		trail.Moves = append(trail.Moves, mv)
		if mv.Technique == types.HiddenSingle {
			trail.HighestTechnique = types.HiddenSingle
		}
	}

	if work != solution {
		return nil, false
	}
	return trail, true
}
