package deduce

import (
	"fmt"

	"github.com/duke-git/lancet/v2/slice"

	"sudoku_logic_go/internal/candidates"
	"sudoku_logic_go/internal/types"
)

// Both techniques are certain deductions, so every hint carries full
// confidence.
const fullConfidence = 1.0

// techniqueFunc produces all moves one rule can justify on the grid.
type techniqueFunc func(g types.Grid, cg types.CandidateGrid) []types.HintMove

// techniqueOrder fixes hint priority: naked singles are easier for a
// player to spot, so they come first.
var techniqueOrder = []techniqueFunc{
	nakedSingleMoves,
	hiddenSingleMoves,
}

// availableMoves runs every technique in priority order and merges the
// results, dropping later duplicates of the same (row, col, value).
func availableMoves(g types.Grid, cg types.CandidateGrid) []types.HintMove {
	var moves []types.HintMove
	for _, technique := range techniqueOrder {
		for _, m := range technique(g, cg) {
			dup := slice.ContainBy(moves, func(seen types.HintMove) bool {
				return seen.Row == m.Row && seen.Col == m.Col && seen.Value == m.Value
			})
			if !dup {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

func nakedSingleMoves(g types.Grid, cg types.CandidateGrid) []types.HintMove {
	var moves []types.HintMove
	for _, cell := range candidates.NakedSingles(cg, g) {
		v, _ := cg[cell.Row][cell.Col].Sole()
		moves = append(moves, types.HintMove{
			Action:      types.PlaceValue,
			Row:         cell.Row,
			Col:         cell.Col,
			Value:       v,
			Technique:   types.NakedSingle,
			Explanation: fmt.Sprintf("only %d remains possible in row %d, column %d", v, cell.Row+1, cell.Col+1),
			Confidence:  fullConfidence,
		})
	}
	return moves
}

func hiddenSingleMoves(g types.Grid, cg types.CandidateGrid) []types.HintMove {
	var moves []types.HintMove
	for _, hs := range candidates.HiddenSingles(cg, g) {
		moves = append(moves, types.HintMove{
			Action:      types.PlaceValue,
			Row:         hs.Cell.Row,
			Col:         hs.Cell.Col,
			Value:       hs.Value,
			Technique:   types.HiddenSingle,
			Explanation: fmt.Sprintf("%d fits nowhere else in %s %d", hs.Value, hs.Unit, hs.Index+1),
			Confidence:  fullConfidence,
		})
	}
	return moves
}
