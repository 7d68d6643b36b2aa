// Package validator implements the row/column/box constraint checks
// every other component builds on. All functions are pure and total
// over well-formed 6x6 grids.
package validator

import (
	"sudoku_logic_go/internal/types"
)

// IsValidGrid reports whether no row, column, or box contains a
// duplicate filled value. Empty cells never conflict.
func IsValidGrid(g types.Grid) bool {
	// Rows and columns in one pass, one bitmask each.
	for i := 0; i < types.GridSize; i++ {
		var rowMask, colMask int
		for j := 0; j < types.GridSize; j++ {
			if v := g[i][j]; v != 0 {
				bit := 1 << v
				if rowMask&bit != 0 {
					return false
				}
				rowMask |= bit
			}
			if v := g[j][i]; v != 0 {
				bit := 1 << v
				if colMask&bit != 0 {
					return false
				}
				colMask |= bit
			}
		}
	}
	// Boxes.
	for br := 0; br < types.GridSize; br += types.BoxHeight {
		for bc := 0; bc < types.GridSize; bc += types.BoxWidth {
			mask := 0
			for dr := 0; dr < types.BoxHeight; dr++ {
				for dc := 0; dc < types.BoxWidth; dc++ {
					if v := g[br+dr][bc+dc]; v != 0 {
						bit := 1 << v
						if mask&bit != 0 {
							return false
						}
						mask |= bit
					}
				}
			}
		}
	}
	return true
}

// IsValidMove reports whether placing value at (row, col) keeps every
// unit duplicate-free. The grid is taken by value and never mutated.
func IsValidMove(g types.Grid, row, col, value int) bool {
	if value < types.MinValue || value > types.MaxValue {
		return false
	}
	return len(ConflictingUnits(g, row, col, value)) == 0
}

// ConflictingUnits lists the units in which placing value at (row, col)
// would duplicate an existing filled cell. The cell's own current value
// is ignored so re-placing the same value is not a self-conflict.
func ConflictingUnits(g types.Grid, row, col, value int) []types.UnitKind {
	var units []types.UnitKind
	for c := 0; c < types.GridSize; c++ {
		if c != col && g[row][c] == value {
			units = append(units, types.RowUnit)
			break
		}
	}
	for r := 0; r < types.GridSize; r++ {
		if r != row && g[r][col] == value {
			units = append(units, types.ColumnUnit)
			break
		}
	}
	br, bc := types.BoxOrigin(row, col)
	for dr := 0; dr < types.BoxHeight; dr++ {
		for dc := 0; dc < types.BoxWidth; dc++ {
			r, c := br+dr, bc+dc
			if (r != row || c != col) && g[r][c] == value {
				return append(units, types.BoxUnit)
			}
		}
	}
	return units
}

// IsSolved reports whether the grid is completely filled and valid.
func IsSolved(g types.Grid) bool {
	return g.IsFull() && IsValidGrid(g)
}
