package types

import (
	"encoding/json"
	"math/bits"
)

// Fixed geometry: a 6x6 grid split into six 3-wide, 2-tall boxes.
const (
	GridSize  = 6
	BoxWidth  = 3
	BoxHeight = 2
	MinValue  = 1
	MaxValue  = 6
	CellCount = GridSize * GridSize
)

// Grid is a 6x6 board. 0 marks an empty cell, filled cells hold 1..6.
// The array value type makes copies cheap and explicit, so callers that
// must not be mutated can take the grid by value.
type Grid [GridSize][GridSize]int

// BoxIndex returns the index (0..5) of the box containing (row, col).
// Boxes are numbered row-major, two per box-column band.
func BoxIndex(row, col int) int {
	return (row/BoxHeight)*(GridSize/BoxWidth) + col/BoxWidth
}

// BoxOrigin returns the top-left cell of the box containing (row, col).
func BoxOrigin(row, col int) (int, int) {
	return (row / BoxHeight) * BoxHeight, (col / BoxWidth) * BoxWidth
}

// FilledCount returns the number of non-empty cells.
func (g Grid) FilledCount() int {
	n := 0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// IsFull reports whether every cell holds a value.
func (g Grid) IsFull() bool {
	return g.FilledCount() == CellCount
}

// ToJSON converts the grid to JSON bytes.
func (g Grid) ToJSON() ([]byte, error) {
	return json.Marshal(g)
}

// GridFromJSON creates a Grid from JSON bytes.
func GridFromJSON(data []byte) (Grid, error) {
	var grid Grid
	err := json.Unmarshal(data, &grid)
	return grid, err
}

// CandidateSet is a bitmask of the values 1..6 still legal for a cell.
// Bit v-1 set means value v is a candidate.
type CandidateSet uint8

// FullCandidates holds all six values.
const FullCandidates CandidateSet = (1 << MaxValue) - 1

func (s CandidateSet) Has(v int) bool { return s&(1<<(v-1)) != 0 }

func (s CandidateSet) Add(v int) CandidateSet { return s | 1<<(v-1) }

func (s CandidateSet) Remove(v int) CandidateSet { return s &^ (1 << (v - 1)) }

// Count returns the number of candidates in the set.
func (s CandidateSet) Count() int { return bits.OnesCount8(uint8(s)) }

// Sole returns the single candidate if exactly one remains.
func (s CandidateSet) Sole() (int, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return bits.TrailingZeros8(uint8(s)) + 1, true
}

// Values lists the candidates in ascending order.
func (s CandidateSet) Values() []int {
	vals := make([]int, 0, s.Count())
	for v := MinValue; v <= MaxValue; v++ {
		if s.Has(v) {
			vals = append(vals, v)
		}
	}
	return vals
}

// CandidateGrid holds the candidate set of every cell. Filled cells
// carry an empty set.
type CandidateGrid [GridSize][GridSize]CandidateSet

// Difficulty selects a carving tier.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Technique names a deduction rule.
type Technique string

const (
	NakedSingle  Technique = "naked_single"
	HiddenSingle Technique = "hidden_single"
)

// UnitKind names the constraint group a cell belongs to.
type UnitKind string

const (
	RowUnit    UnitKind = "row"
	ColumnUnit UnitKind = "column"
	BoxUnit    UnitKind = "box"
)

// HintAction distinguishes placements from candidate eliminations.
type HintAction string

const (
	PlaceValue         HintAction = "place"
	EliminateCandidate HintAction = "eliminate"
)

// Move is a raw player action on a cell. Clear set means the cell was
// emptied; Value is ignored in that case.
type Move struct {
	Row    int  `json:"row"`
	Col    int  `json:"col"`
	Value  int  `json:"value"`
	Clear  bool `json:"clear,omitempty"`
	IsUndo bool `json:"isUndo,omitempty"`
}

// HintMove is a deduced move together with its justification.
type HintMove struct {
	Action      HintAction `json:"action"`
	Row         int        `json:"row"`
	Col         int        `json:"col"`
	Value       int        `json:"value"`
	Technique   Technique  `json:"technique"`
	Explanation string     `json:"explanation"`
	Confidence  float64    `json:"confidence"`
}

// ErrorKind classifies a board error.
type ErrorKind string

const (
	NoSolutionError  ErrorKind = "no_solution"
	InvalidMoveError ErrorKind = "invalid_move"
)

// ErrorLocation pins a board error to a cell.
type ErrorLocation struct {
	Row             int       `json:"row"`
	Col             int       `json:"col"`
	Kind            ErrorKind `json:"kind"`
	Description     string    `json:"description"`
	SuggestedAction string    `json:"suggestedAction"`
}

// BoardAnalysis is the full deduction snapshot of a grid. It is always
// recomputed from grid content, never cached across moves.
type BoardAnalysis struct {
	AvailableMoves []HintMove      `json:"availableMoves"`
	Candidates     CandidateGrid   `json:"candidates"`
	Errors         []ErrorLocation `json:"errors"`
	IsValid        bool            `json:"isValid"`
	IsSolvable     bool            `json:"isSolvable"`
}

// MoveTrail records a deduction path from clues to a solved grid.
type MoveTrail struct {
	Moves            []HintMove `json:"moves"`
	HighestTechnique Technique  `json:"highestTechnique"`
}

// Puzzle pairs a clue grid with its unique solution.
// RequiredTechnique is the hardest rule the validated solving path
// actually used.
type Puzzle struct {
	Clues             Grid       `json:"grid"`
	Solution          Grid       `json:"solution"`
	Difficulty        Difficulty `json:"difficulty"`
	RequiredTechnique Technique  `json:"requiredTechnique,omitempty"`
}

// ToJSON converts the puzzle to JSON bytes.
func (p *Puzzle) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// PuzzleFromJSON creates a Puzzle from JSON bytes.
func PuzzleFromJSON(data []byte) (*Puzzle, error) {
	var p Puzzle
	err := json.Unmarshal(data, &p)
	return &p, err
}
