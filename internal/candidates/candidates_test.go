package candidates

import (
	"reflect"
	"testing"

	"sudoku_logic_go/internal/types"
)

var solved = types.Grid{
	{1, 2, 3, 4, 5, 6},
	{4, 5, 6, 1, 2, 3},
	{2, 3, 1, 5, 6, 4},
	{5, 6, 4, 2, 3, 1},
	{3, 1, 2, 6, 4, 5},
	{6, 4, 5, 3, 1, 2},
}

func TestForCell(t *testing.T) {
	var empty types.Grid
	if got := ForCell(empty, 2, 4); got != types.FullCandidates {
		t.Fatalf("empty grid cell should have all candidates, got %v", got.Values())
	}

	if got := ForCell(solved, 0, 0); got != 0 {
		t.Fatalf("filled cell should have no candidates, got %v", got.Values())
	}

	g := solved
	g[0][0] = 0
	got := ForCell(g, 0, 0)
	if vals := got.Values(); !reflect.DeepEqual(vals, []int{1}) {
		t.Fatalf("cell surrounded by 2..6 should have only [1], got %v", vals)
	}

	// Row holds 1,2,3; column 4,5; box 6. Union covers everything.
	var dead types.Grid
	dead[0][1], dead[0][2], dead[0][3] = 1, 2, 3
	dead[2][0], dead[3][0] = 4, 5
	dead[1][1] = 6
	if got := ForCell(dead, 0, 0); got != 0 {
		t.Fatalf("contradicted cell should have empty set, got %v", got.Values())
	}
}

func TestAllMatchesForCell(t *testing.T) {
	g := solved
	g[0][0], g[2][3], g[5][5] = 0, 0, 0
	cg := All(g)
	for r := 0; r < types.GridSize; r++ {
		for c := 0; c < types.GridSize; c++ {
			if cg[r][c] != ForCell(g, r, c) {
				t.Fatalf("All and ForCell disagree at (%d,%d)", r, c)
			}
		}
	}
}

func TestUpdateAfterMovePlacement(t *testing.T) {
	g := solved
	g[0][0], g[0][1], g[1][0] = 0, 0, 0
	cg := All(g)

	g[0][0] = 1
	got := UpdateAfterMove(cg, g, types.Move{Row: 0, Col: 0, Value: 1})
	if want := All(g); got != want {
		t.Fatalf("incremental placement update diverged from full recompute")
	}
	if got[0][0] != 0 {
		t.Fatal("placed cell should have no candidates")
	}
}

func TestUpdateAfterMoveClearRecomputes(t *testing.T) {
	// With (0,0) and (2,0) already empty, (0,1) holds the last 2
	// visible from (0,0). Clearing it must restore candidates the
	// narrow update could never give back.
	g := solved
	g[0][0], g[2][0] = 0, 0
	cg := All(g)
	if cg[0][0].Has(2) {
		t.Fatal("candidate 2 should still be blocked by (0,1)")
	}

	g[0][1] = 0
	got := UpdateAfterMove(cg, g, types.Move{Row: 0, Col: 1, Clear: true})
	if want := All(g); got != want {
		t.Fatal("clear path did not fully recompute")
	}
	if !got[0][0].Has(2) {
		t.Fatal("clearing (0,1) should reopen candidate 2 for (0,0)")
	}
	if v, ok := got[0][1].Sole(); !ok || v != 2 {
		t.Fatalf("cleared cell should get its own set back, got %v", got[0][1].Values())
	}
}

func TestNakedSingles(t *testing.T) {
	g := solved
	g[0][0] = 0
	g[4][4] = 0
	cells := NakedSingles(All(g), g)
	if len(cells) != 2 {
		t.Fatalf("expected 2 naked singles, got %v", cells)
	}
	// Row-major order.
	if cells[0] != (Cell{Row: 0, Col: 0}) || cells[1] != (Cell{Row: 4, Col: 4}) {
		t.Fatalf("unexpected order: %v", cells)
	}
}

func TestHiddenSingles(t *testing.T) {
	// Three 1s pin value 1 in row 0 to exactly (0,4): the box covers
	// columns 0-2, the column constraints cover 3 and 5.
	var g types.Grid
	g[1][1] = 1
	g[3][3] = 1
	g[5][5] = 1

	found := HiddenSingles(All(g), g)
	if len(found) == 0 {
		t.Fatal("no hidden singles found")
	}
	first := found[0]
	if first.Cell != (Cell{Row: 0, Col: 4}) || first.Value != 1 || first.Unit != types.RowUnit {
		t.Fatalf("first hidden single = %+v, want value 1 at (0,4) in row", first)
	}
}

func TestCellsWithNoCandidates(t *testing.T) {
	var g types.Grid
	g[0][1], g[0][2], g[0][3] = 1, 2, 3
	g[2][0], g[3][0] = 4, 5
	g[1][1] = 6

	dead := CellsWithNoCandidates(All(g), g)
	if len(dead) != 1 || dead[0] != (Cell{Row: 0, Col: 0}) {
		t.Fatalf("expected exactly (0,0) dead, got %v", dead)
	}
}

func TestEliminate(t *testing.T) {
	var g types.Grid
	cg := All(g)
	cg = Eliminate(cg, 2, 2, 5)
	if cg[2][2].Has(5) {
		t.Fatal("value 5 not eliminated")
	}
	if cg[2][2].Count() != 5 {
		t.Fatalf("expected 5 remaining candidates, got %d", cg[2][2].Count())
	}
}

func TestCandidateSetOps(t *testing.T) {
	var s types.CandidateSet
	s = s.Add(3).Add(6)
	if !s.Has(3) || !s.Has(6) || s.Has(1) {
		t.Fatalf("unexpected membership: %v", s.Values())
	}
	if s.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", s.Count())
	}
	s = s.Remove(3)
	if v, ok := s.Sole(); !ok || v != 6 {
		t.Fatalf("Sole() = %d,%v, want 6,true", v, ok)
	}
}
