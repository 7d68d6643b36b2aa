package generator

import (
	"sudoku_logic_go/internal/types"
	"sudoku_logic_go/internal/validator"
)

// HasUniqueSolution reports whether the clue grid admits exactly one
// completion and that completion equals expected. It is a generation
// time oracle only; the exhaustive search is too expensive for the
// live per-move path.
func HasUniqueSolution(clues types.Grid, expected types.Grid) bool {
	count, first := countCompletions(clues, 2)
	return count == 1 && first == expected
}

// countCompletions counts distinct completions of g, short-circuiting
// once limit is reached. The search is deterministic (first empty cell
// row-major, values ascending) so the short-circuit is reproducible.
// It also returns the first completion found.
func countCompletions(g types.Grid, limit int) (int, types.Grid) {
	count := 0
	var first types.Grid

	var dfs func() bool
	dfs = func() bool {
		pos := firstEmpty(g)
		if pos < 0 {
			if count == 0 {
				first = g
			}
			count++
			return count >= limit
		}
		row, col := pos/types.GridSize, pos%types.GridSize
		for v := types.MinValue; v <= types.MaxValue; v++ {
			if validator.IsValidMove(g, row, col, v) {
				g[row][col] = v
				if dfs() {
					return true
				}
				g[row][col] = 0
			}
		}
		return false
	}
	dfs()
	return count, first
}

func firstEmpty(g types.Grid) int {
	for pos := 0; pos < types.CellCount; pos++ {
		if g[pos/types.GridSize][pos%types.GridSize] == 0 {
			return pos
		}
	}
	return -1
}
