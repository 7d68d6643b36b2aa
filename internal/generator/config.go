package generator

import (
	"sudoku_logic_go/internal/types"
)

// Config bounds the generation search. The two minimum-move knobs feed
// one shared solvability check: carving keeps at least CarveMinMoves
// logical moves open after every removal, and the replay validation
// demands the stricter PathMinMoves at every step.
type Config struct {
	CarveMinMoves          int
	PathMinMoves           int
	MaxPasses              int // shuffled carving passes over the grid
	MaxConsecutiveFailures int // per-pass cutoff after this many rejected removals
	MaxAttempts            int // fresh solutions tried per removal target
}

func DefaultConfig() Config {
	return Config{
		CarveMinMoves:          1,
		PathMinMoves:           2,
		MaxPasses:              3,
		MaxConsecutiveFailures: 10,
		MaxAttempts:            8,
	}
}

// tier maps a difficulty to a clue-removal target and a minimum count
// of clues that must survive.
type tier struct {
	remove int
	floor  int
}

func tierFor(d types.Difficulty) tier {
	switch d {
	case types.Easy:
		return tier{remove: 16, floor: 14}
	case types.Medium:
		return tier{remove: 22, floor: 10}
	case types.Hard:
		return tier{remove: 26, floor: 8}
	default:
		return tier{remove: 22, floor: 10}
	}
}
