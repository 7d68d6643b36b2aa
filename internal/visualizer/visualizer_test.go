package visualizer

import (
	"strings"
	"testing"

	"sudoku_logic_go/internal/types"
)

func TestSprint(t *testing.T) {
	var g types.Grid
	g[0][0] = 6
	g[5][5] = 1

	out := Sprint(g)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// 6 grid rows, 2 inner separators, top and bottom borders.
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "6") {
		t.Fatalf("first row missing value 6: %q", lines[1])
	}
	if strings.Count(out, "·") != types.CellCount-2 {
		t.Fatalf("expected %d empty-cell dots", types.CellCount-2)
	}
}
