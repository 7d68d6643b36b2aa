// Package db is the persistence adapter for generated puzzles, backed
// by a PocketBase collection. The core packages never import it; it
// consumes them through the same Puzzle type the CLI does.
package db

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"

	"sudoku_logic_go/internal/types"
)

const collection = "sudokus"

// Store wraps an authenticated PocketBase client.
type Store struct {
	client *pocketbase.Client
	log    *slog.Logger
}

// Connect loads credentials from the environment (or a .env file),
// authenticates, and keeps the session fresh with a re-auth ticker.
func Connect(url string, log *slog.Logger) (*Store, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, using environment as-is")
	}

	client := pocketbase.NewClient(url,
		pocketbase.WithSuperuserEmailPassword(
			os.Getenv("POCKETBASE_EMAIL"),
			os.Getenv("POCKETBASE_PASSWORD"),
		))
	if err := client.Authorize(); err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	s := &Store{client: client, log: log}
	go s.reauthLoop()
	return s, nil
}

func (s *Store) reauthLoop() {
	ticker := time.NewTicker(30 * time.Minute)
	for range ticker.C {
		if err := s.client.Authorize(); err != nil {
			s.log.Error("re-authentication failed", "error", err)
		} else {
			s.log.Info("re-authenticated with PocketBase")
		}
	}
}

// Upload stores a puzzle under the given short id.
func (s *Store) Upload(id string, p *types.Puzzle) error {
	if id == "" || len(id) > 6 {
		return fmt.Errorf("invalid id %q: must be 1-6 characters", id)
	}

	exists, err := s.Exists(id)
	if err != nil {
		return fmt.Errorf("failed to check if puzzle exists: %w", err)
	}
	if exists {
		return fmt.Errorf("puzzle with id %s already exists", id)
	}

	puzzleJSON, err := p.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %w", err)
	}

	data := map[string]any{
		"id":         id,
		"sudoku":     string(puzzleJSON),
		"difficulty": string(p.Difficulty),
		"size":       fmt.Sprintf("%d", types.GridSize),
		"layout":     fmt.Sprintf("%dx%d", types.BoxWidth, types.BoxHeight),
	}
	if _, err := s.client.Create(collection, data); err != nil {
		return fmt.Errorf("failed to upload puzzle: %w", err)
	}
	s.log.Info("uploaded puzzle", "id", id, "difficulty", p.Difficulty)
	return nil
}

// Get loads a puzzle by id.
func (s *Store) Get(id string) (*types.Puzzle, error) {
	record, err := s.client.One(collection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzle %s: %w", id, err)
	}
	raw, ok := record["sudoku"].(string)
	if !ok {
		return nil, fmt.Errorf("puzzle %s has malformed payload", id)
	}
	p, err := types.PuzzleFromJSON([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal puzzle %s: %w", id, err)
	}
	return p, nil
}

// List pages through stored puzzles, optionally filtered by difficulty.
func (s *Store) List(page, perPage int, difficulty types.Difficulty) (*pocketbase.ResponseList[map[string]any], error) {
	var filters []string
	if difficulty != "" {
		filters = append(filters, fmt.Sprintf("difficulty = %q", string(difficulty)))
	}
	params := pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    "-created",
		Filters: strings.Join(filters, " && "),
	}
	result, err := s.client.List(collection, params)
	return &result, err
}

// Exists reports whether a puzzle with the id is already stored.
func (s *Store) Exists(id string) (bool, error) {
	_, err := s.client.One(collection, id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
