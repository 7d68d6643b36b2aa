package deduce

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

// deadCellGrid has only locally legal placements, yet (0,0) is left
// with no candidate at all: row holds 1,2,3, column 4,5, box 6.
func deadCellGrid() types.Grid {
	var g types.Grid
	g[0][1], g[0][2], g[0][3] = 1, 2, 3
	g[2][0], g[3][0] = 4, 5
	g[1][1] = 6
	return g
}

func TestAnalyzeBoardSolvedGrid(t *testing.T) {
	a := NewEngine().AnalyzeBoard(solved)
	if !a.IsValid {
		t.Fatal("solved grid reported invalid")
	}
	if !a.IsSolvable {
		t.Fatal("solved grid reported unsolvable")
	}
	if len(a.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", a.Errors)
	}
	if len(a.AvailableMoves) != 0 {
		t.Fatalf("solved grid should offer no moves, got %v", a.AvailableMoves)
	}
}

func TestAnalyzeBoardIsIdempotent(t *testing.T) {
	g := solved
	g[0][0], g[2][3], g[5][1] = 0, 0, 0

	e := NewEngine()
	first := e.AnalyzeBoard(g)
	second := e.AnalyzeBoard(g)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated analysis of an unchanged grid differs")
	}
}

func TestFindNextMoveNakedSingle(t *testing.T) {
	// Scenario: a single empty cell whose row, column, and box
	// already hold the other five values.
	g := solved
	g[0][0] = 0

	mv, ok := NewEngine().FindNextMove(g)
	if !ok {
		t.Fatal("no move found")
	}
	if mv.Row != 0 || mv.Col != 0 || mv.Value != 1 {
		t.Fatalf("got %+v, want 1 at (0,0)", mv)
	}
	if mv.Technique != types.NakedSingle {
		t.Fatalf("technique = %s, want %s", mv.Technique, types.NakedSingle)
	}
	if mv.Confidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", mv.Confidence)
	}
}

func TestFindNextMoveHiddenSingle(t *testing.T) {
	// No cell has a sole candidate, but value 1 fits only (0,4)
	// within row 0.
	var g types.Grid
	g[1][1] = 1
	g[3][3] = 1
	g[5][5] = 1

	mv, ok := NewEngine().FindNextMove(g)
	if !ok {
		t.Fatal("no move found")
	}
	if mv.Technique != types.HiddenSingle {
		t.Fatalf("technique = %s, want %s", mv.Technique, types.HiddenSingle)
	}
	if mv.Row != 0 || mv.Col != 4 || mv.Value != 1 {
		t.Fatalf("got %+v, want 1 at (0,4)", mv)
	}
}

func TestFindNextMoveRefusesErroredBoard(t *testing.T) {
	if _, ok := NewEngine().FindNextMove(deadCellGrid()); ok {
		t.Fatal("move suggested on a contradicted board")
	}
}

func TestNakedBeatsHiddenPriority(t *testing.T) {
	// (0,0) empty in the solved grid is a naked single and also a
	// hidden single in three units; only one deduped move may remain
	// and it must carry the naked-single label.
	g := solved
	g[0][0] = 0

	a := NewEngine().AnalyzeBoard(g)
	if len(a.AvailableMoves) != 1 {
		t.Fatalf("expected 1 deduplicated move, got %d", len(a.AvailableMoves))
	}
	if a.AvailableMoves[0].Technique != types.NakedSingle {
		t.Fatalf("technique = %s, want %s", a.AvailableMoves[0].Technique, types.NakedSingle)
	}
}

func TestValidateMoveConstraintViolation(t *testing.T) {
	g := solved
	g[0][0] = 0

	res := NewEngine().ValidateMove(g, 0, 0, 2)
	if res.Valid {
		t.Fatal("duplicate placement accepted")
	}
	if len(res.ViolatedUnits) == 0 || res.ViolatedUnits[0] != types.RowUnit {
		t.Fatalf("expected row violation first, got %v", res.ViolatedUnits)
	}
	if res.Contradiction {
		t.Fatal("local violation misreported as contradiction")
	}
}

func TestValidateMoveContradiction(t *testing.T) {
	// Placing 6 at (1,1) is locally legal but strips the last
	// candidate from (0,0).
	var g types.Grid
	g[0][1], g[0][2], g[0][3] = 1, 2, 3
	g[2][0], g[3][0] = 4, 5

	e := NewEngine()
	res := e.ValidateMove(g, 1, 1, 6)
	if res.Valid {
		t.Fatal("contradictory move accepted")
	}
	if !res.Contradiction {
		t.Fatalf("expected contradiction, got %+v", res)
	}
	if len(res.ViolatedUnits) != 0 {
		t.Fatalf("contradiction should not report unit violations, got %v", res.ViolatedUnits)
	}

	// The same move elsewhere is fine.
	if res := e.ValidateMove(g, 1, 4, 6); !res.Valid {
		t.Fatalf("harmless move rejected: %+v", res)
	}
}

func TestValidateMoveRejectsOutOfRange(t *testing.T) {
	var g types.Grid
	for _, v := range []int{0, 7} {
		if res := NewEngine().ValidateMove(g, 0, 0, v); res.Valid {
			t.Fatalf("value %d accepted", v)
		}
	}
}

func TestDetectErrorsNoSolution(t *testing.T) {
	// Scenario: exactly one no_solution error at the dead cell.
	errs := NewEngine().DetectErrors(deadCellGrid())
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %v", errs)
	}
	e := errs[0]
	if e.Kind != types.NoSolutionError || e.Row != 0 || e.Col != 0 {
		t.Fatalf("got %+v, want no_solution at (0,0)", e)
	}
}

func TestDetectErrorsInvalidMove(t *testing.T) {
	// Corrupted state: a duplicate injected directly into the grid.
	var g types.Grid
	g[2][1] = 4
	g[2][5] = 4

	errs := NewEngine().DetectErrors(g)
	if len(errs) != 2 {
		t.Fatalf("expected both duplicate cells flagged, got %v", errs)
	}
	for _, e := range errs {
		if e.Kind != types.InvalidMoveError {
			t.Fatalf("kind = %s, want %s", e.Kind, types.InvalidMoveError)
		}
		if e.Row != 2 {
			t.Fatalf("unexpected error location: %+v", e)
		}
	}
}

func TestHintPenaltyIsConstant(t *testing.T) {
	e := NewEngine()
	if e.HintPenalty() <= 0 {
		t.Fatal("hint penalty must be positive")
	}
	if e.HintPenalty() != e.HintPenalty() {
		t.Fatal("hint penalty must be constant")
	}
}
