// Package visualizer renders 6x6 grids for the terminal.
package visualizer

import (
	"fmt"
	"strings"

	"sudoku_logic_go/internal/types"
)

// Sprint renders the grid with box borders, empty cells as dots.
func Sprint(g types.Grid) string {
	var b strings.Builder
	writeBorder(&b, "┌", "┬", "┐")
	for r := 0; r < types.GridSize; r++ {
		b.WriteString("│")
		for c := 0; c < types.GridSize; c++ {
			if g[r][c] == 0 {
				b.WriteString(" ·")
			} else {
				fmt.Fprintf(&b, " %d", g[r][c])
			}
			if (c+1)%types.BoxWidth == 0 {
				b.WriteString(" │")
			}
		}
		b.WriteString("\n")
		if (r+1)%types.BoxHeight == 0 && r < types.GridSize-1 {
			writeBorder(&b, "├", "┼", "┤")
		}
	}
	writeBorder(&b, "└", "┴", "┘")
	return b.String()
}

func writeBorder(b *strings.Builder, left, mid, right string) {
	segment := strings.Repeat("─", types.BoxWidth*2+1)
	b.WriteString(left)
	for i := 0; i < types.GridSize/types.BoxWidth; i++ {
		if i > 0 {
			b.WriteString(mid)
		}
		b.WriteString(segment)
	}
	b.WriteString(right + "\n")
}

// Print writes the grid to stdout.
func Print(g types.Grid) {
	fmt.Print(Sprint(g))
}

// PrintPuzzle shows a puzzle's clue grid under a one-line summary.
func PrintPuzzle(p *types.Puzzle) {
	fmt.Printf("%s puzzle, %d clues (requires %s)\n",
		p.Difficulty, p.Clues.FilledCount(), p.RequiredTechnique)
	Print(p.Clues)
}
