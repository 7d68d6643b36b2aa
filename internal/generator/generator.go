// Package generator builds 6x6 puzzles that stay solvable by pure
// deduction from the first clue to the last cell. The pipeline is
// synthesize -> carve (uniqueness + deduction oracles) -> independent
// replay validation, with a fallback ladder of smaller removal targets
// so generation never fails outright.
package generator

import (
	"math/rand"
	"time"

	"sudoku_logic_go/internal/deduce"
	"sudoku_logic_go/internal/types"
)

// smallestTarget is the bottom of the fallback ladder. Removing this
// few cells leaves a near-complete grid that is essentially always
// uniquely and logically solvable.
const smallestTarget = 4

// Generator produces validated puzzles. It owns its random source, so
// independent Generators are safe to run concurrently and a seeded
// source makes output reproducible.
type Generator struct {
	cfg    Config
	engine *deduce.Engine
	rng    *rand.Rand
}

// New creates a Generator. A nil rng gets a time-seeded source.
func New(cfg Config, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{cfg: cfg, engine: deduce.NewEngine(), rng: rng}
}

// Generate mints a puzzle for the difficulty tier. The clue grid is
// guaranteed unique and end-to-end deducible; on repeated carve or
// validation failure the removal target shrinks until a puzzle passes,
// trading difficulty for availability rather than surfacing an error.
func (g *Generator) Generate(difficulty types.Difficulty) *types.Puzzle {
	t := tierFor(difficulty)

	for target := t.remove; target >= smallestTarget; target -= 2 {
		for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
			solution := Synthesize(g.rng)
			clues := carve(g.engine, solution, tier{remove: target, floor: t.floor}, g.cfg, g.rng)
			if clues == nil {
				continue
			}
			trail, ok := replayTrail(g.engine, *clues, solution, g.cfg.PathMinMoves)
			if !ok {
				continue
			}
			return &types.Puzzle{
				Clues:             *clues,
				Solution:          solution,
				Difficulty:        difficulty,
				RequiredTechnique: trail.HighestTechnique,
			}
		}
	}

	// Last resort: a solved grid is still a valid puzzle by every
	// invariant. The ladder above makes this unreachable in practice.
	solution := Synthesize(g.rng)
	return &types.Puzzle{
		Clues:             solution,
		Solution:          solution,
		Difficulty:        difficulty,
		RequiredTechnique: types.NakedSingle,
	}
}

// Validate replays an existing puzzle through the deduction engine and
// reports whether it still satisfies the minimum-branching guarantee.
func (g *Generator) Validate(p *types.Puzzle) (*types.MoveTrail, bool) {
	return replayTrail(g.engine, p.Clues, p.Solution, g.cfg.PathMinMoves)
}
