// Package candidates computes the per-cell remaining legal values the
// deduction techniques operate on.
package candidates

import (
	"sudoku_logic_go/internal/types"
)

// Cell identifies a grid position.
type Cell struct {
	Row int
	Col int
}

// ForCell returns {1..6} minus the values already placed in the cell's
// row, column, and box. A filled cell has no candidates.
func ForCell(g types.Grid, row, col int) types.CandidateSet {
	if g[row][col] != 0 {
		return 0
	}
	set := types.FullCandidates
	for i := 0; i < types.GridSize; i++ {
		if v := g[row][i]; v != 0 {
			set = set.Remove(v)
		}
		if v := g[i][col]; v != 0 {
			set = set.Remove(v)
		}
	}
	br, bc := types.BoxOrigin(row, col)
	for dr := 0; dr < types.BoxHeight; dr++ {
		for dc := 0; dc < types.BoxWidth; dc++ {
			if v := g[br+dr][bc+dc]; v != 0 {
				set = set.Remove(v)
			}
		}
	}
	return set
}

// All recomputes the candidate sets of every cell.
func All(g types.Grid) types.CandidateGrid {
	var cg types.CandidateGrid
	for r := 0; r < types.GridSize; r++ {
		for c := 0; c < types.GridSize; c++ {
			cg[r][c] = ForCell(g, r, c)
		}
	}
	return cg
}

// UpdateAfterMove maintains a candidate grid across a single move
// already applied to g. Placements use the exact narrow update: the
// cell's own set is cleared and the value is struck from all peers.
// Clearing a cell invalidates peers in ways a local patch cannot see,
// so that path falls back to a full recomputation.
func UpdateAfterMove(cg types.CandidateGrid, g types.Grid, mv types.Move) types.CandidateGrid {
	if mv.Clear {
		return All(g)
	}
	cg[mv.Row][mv.Col] = 0
	for i := 0; i < types.GridSize; i++ {
		if g[mv.Row][i] == 0 {
			cg[mv.Row][i] = cg[mv.Row][i].Remove(mv.Value)
		}
		if g[i][mv.Col] == 0 {
			cg[i][mv.Col] = cg[i][mv.Col].Remove(mv.Value)
		}
	}
	br, bc := types.BoxOrigin(mv.Row, mv.Col)
	for dr := 0; dr < types.BoxHeight; dr++ {
		for dc := 0; dc < types.BoxWidth; dc++ {
			if g[br+dr][bc+dc] == 0 {
				cg[br+dr][bc+dc] = cg[br+dr][bc+dc].Remove(mv.Value)
			}
		}
	}
	return cg
}

// CellsWithNoCandidates lists empty cells whose candidate set is empty,
// the signature of a contradiction.
func CellsWithNoCandidates(cg types.CandidateGrid, g types.Grid) []Cell {
	var cells []Cell
	for r := 0; r < types.GridSize; r++ {
		for c := 0; c < types.GridSize; c++ {
			if g[r][c] == 0 && cg[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// NakedSingles lists cells holding exactly one candidate, in row-major
// order so downstream hint selection is deterministic.
func NakedSingles(cg types.CandidateGrid, g types.Grid) []Cell {
	var cells []Cell
	for r := 0; r < types.GridSize; r++ {
		for c := 0; c < types.GridSize; c++ {
			if g[r][c] == 0 && cg[r][c].Count() == 1 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HiddenSingle is a value confined to one cell of a unit.
type HiddenSingle struct {
	Cell  Cell
	Value int
	Unit  types.UnitKind
	Index int // unit index within its kind
}

// HiddenSingles scans every unit and value for candidates appearing in
// exactly one cell of the unit. Scan order is rows, then columns, then
// boxes, each by ascending unit index and value.
func HiddenSingles(cg types.CandidateGrid, g types.Grid) []HiddenSingle {
	var found []HiddenSingle
	for kind, units := range orderedUnits() {
		for idx, cells := range units {
			for v := types.MinValue; v <= types.MaxValue; v++ {
				spot := Cell{Row: -1}
				n := 0
				for _, cell := range cells {
					if g[cell.Row][cell.Col] == 0 && cg[cell.Row][cell.Col].Has(v) {
						spot = cell
						n++
					}
				}
				if n == 1 {
					found = append(found, HiddenSingle{
						Cell:  spot,
						Value: v,
						Unit:  unitKinds[kind],
						Index: idx,
					})
				}
			}
		}
	}
	return found
}

// Eliminate removes a value from one cell's candidate set.
func Eliminate(cg types.CandidateGrid, row, col, value int) types.CandidateGrid {
	cg[row][col] = cg[row][col].Remove(value)
	return cg
}

var unitKinds = []types.UnitKind{types.RowUnit, types.ColumnUnit, types.BoxUnit}

// orderedUnits enumerates the cells of every row, column, and box in
// the deterministic order the techniques scan them.
func orderedUnits() [][][]Cell {
	rows := make([][]Cell, types.GridSize)
	cols := make([][]Cell, types.GridSize)
	boxes := make([][]Cell, types.GridSize)
	for r := 0; r < types.GridSize; r++ {
		for c := 0; c < types.GridSize; c++ {
			rows[r] = append(rows[r], Cell{Row: r, Col: c})
			cols[c] = append(cols[c], Cell{Row: r, Col: c})
			b := types.BoxIndex(r, c)
			boxes[b] = append(boxes[b], Cell{Row: r, Col: c})
		}
	}
	return [][][]Cell{rows, cols, boxes}
}
