package generator

import (
	"math/rand"

	"sudoku_logic_go/internal/deduce"
	"sudoku_logic_go/internal/types"
	"sudoku_logic_go/internal/validator"
)

// carve removes clues from a complete solution in shuffled order over
// up to cfg.MaxPasses passes. Each removal must keep the puzzle
// uniquely solvable, keep at least cfg.CarveMinMoves logical moves
// open, and respect the tier's clue floor; otherwise it is rolled
// back. A run of cfg.MaxConsecutiveFailures rejections ends the pass
// early.
//
// Single-pass random removal can strand the player in a state solvable
// only by guessing; testing every removal against the deduction engine
// is what keeps each intermediate state logically solvable.
//
// Returns nil when the target count could not be removed, so the
// caller can fall back to a smaller target.
func carve(engine *deduce.Engine, solution types.Grid, t tier, cfg Config, rng *rand.Rand) *types.Grid {
	work := solution
	removed := 0

	for pass := 0; pass < cfg.MaxPasses && removed < t.remove; pass++ {
		consecutiveFailures := 0
		for _, pos := range rng.Perm(types.CellCount) {
			if removed >= t.remove || consecutiveFailures >= cfg.MaxConsecutiveFailures {
				break
			}
			row, col := pos/types.GridSize, pos%types.GridSize
			if work[row][col] == 0 {
				continue
			}
			prev := work[row][col]
			work[row][col] = 0
			if work.FilledCount() >= t.floor &&
				HasUniqueSolution(work, solution) &&
				minMovesOpen(engine, work, cfg.CarveMinMoves) {
				removed++
				consecutiveFailures = 0
				continue
			}
			work[row][col] = prev
			consecutiveFailures++
		}
	}

	if removed < t.remove {
		return nil
	}
	return &work
}

// minMovesOpen is the single solvability gate shared by carving and
// replay validation: the board must be error-free and either solved or
// offering at least min simultaneous logical moves.
func minMovesOpen(engine *deduce.Engine, g types.Grid, min int) bool {
	if validator.IsSolved(g) {
		return true
	}
	analysis := engine.AnalyzeBoard(g)
	return analysis.IsValid && len(analysis.AvailableMoves) >= min
}
