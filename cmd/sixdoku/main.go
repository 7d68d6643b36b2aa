// Command sixdoku generates logic-solvable 6x6 Sudoku puzzles, prints
// them, optionally traces the deduction path that solves them, and
// optionally uploads them to PocketBase.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"sudoku_logic_go/internal/db"
	"sudoku_logic_go/internal/deduce"
	"sudoku_logic_go/internal/generator"
	"sudoku_logic_go/internal/types"
	"sudoku_logic_go/internal/visualizer"
)

var (
	count      = flag.Int("count", 1, "number of puzzles to generate")
	difficulty = flag.String("difficulty", "medium", "easy, medium, or hard")
	seed       = flag.Int64("seed", 0, "random seed (0 = time-based)")
	trace      = flag.Bool("trace", false, "print the deduction path that solves each puzzle")
	upload     = flag.Bool("upload", false, "upload generated puzzles to PocketBase")
	dbURL      = flag.String("db-url", "https://base.mljr.eu", "PocketBase URL for -upload")
)

func main() {
	flag.Parse()
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	diff := types.Difficulty(*difficulty)
	switch diff {
	case types.Easy, types.Medium, types.Hard:
	default:
		log.Error("unknown difficulty", "difficulty", *difficulty)
		os.Exit(1)
	}

	seedVal := *seed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedVal))
	gen := generator.New(generator.DefaultConfig(), rng)

	var store *db.Store
	if *upload {
		var err error
		store, err = db.Connect(*dbURL, log)
		if err != nil {
			log.Error("failed to connect to PocketBase", "error", err)
			os.Exit(1)
		}
	}

	for i := 0; i < *count; i++ {
		start := time.Now()
		puzzle := gen.Generate(diff)
		log.Info("generated puzzle",
			"difficulty", diff,
			"clues", puzzle.Clues.FilledCount(),
			"requires", puzzle.RequiredTechnique,
			"elapsed", time.Since(start))

		visualizer.PrintPuzzle(puzzle)

		if *trace {
			printTrace(puzzle)
		}
		if store != nil {
			id := shortID(rng)
			if err := store.Upload(id, puzzle); err != nil {
				log.Error("upload failed", "id", id, "error", err)
			}
		}
	}
}

// printTrace replays the puzzle with the engine and prints every
// deduced move.
func printTrace(p *types.Puzzle) {
	engine := deduce.NewEngine()
	work := p.Clues
	step := 0
	for {
		mv, ok := engine.FindNextMove(work)
		if !ok {
			break
		}
		step++
		fmt.Printf("%2d. r%dc%d=%d  %-13s %s\n",
			step, mv.Row+1, mv.Col+1, mv.Value, mv.Technique, mv.Explanation)
		work[mv.Row][mv.Col] = mv.Value
	}
	visualizer.Print(work)
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func shortID(rng *rand.Rand) string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = idAlphabet[rng.Intn(len(idAlphabet))]
	}
	return string(b)
}
