package generator

import (
	"math/rand"

	"sudoku_logic_go/internal/types"
	"sudoku_logic_go/internal/validator"
)

// Synthesize produces one fully filled valid grid by row-major
// randomized backtracking: each empty cell tries 1..6 in random order
// and unwinds on dead ends. The 6x6 domain is small enough that this
// always terminates with a solution, so there is no outer retry.
//
// The random source is injected so generation is seedable under test.
func Synthesize(rng *rand.Rand) types.Grid {
	var g types.Grid
	fillFrom(&g, 0, rng)
	return g
}

func fillFrom(g *types.Grid, pos int, rng *rand.Rand) bool {
	if pos == types.CellCount {
		return true
	}
	row, col := pos/types.GridSize, pos%types.GridSize
	for _, n := range rng.Perm(types.MaxValue) {
		v := n + 1
		if validator.IsValidMove(*g, row, col, v) {
			g[row][col] = v
			if fillFrom(g, pos+1, rng) {
				return true
			}
			g[row][col] = 0
		}
	}
	return false
}
