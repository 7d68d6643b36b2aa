// Package history keeps a session-scoped log of player moves for undo,
// stuck-player detection, and error recovery guidance. It is the only
// stateful component; a MoveHistory is owned by one session and is not
// shared.
package history

import (
	"fmt"
	"time"

	"github.com/duke-git/lancet/v2/slice"

	"sudoku_logic_go/internal/types"
)

// DefaultCapacity bounds the ring buffer for a session.
const DefaultCapacity = 128

// stuckWindow is how many trailing moves are inspected for the
// all-hints-or-undos stuck signal.
const stuckWindow = 5

// Entry is one recorded player action with the state needed to undo it.
type Entry struct {
	Move        types.Move      `json:"move"`
	Timestamp   time.Time       `json:"timestamp"`
	GridBefore  types.Grid      `json:"gridBefore"`
	WasHintUsed bool            `json:"wasHintUsed"`
	Technique   types.Technique `json:"technique,omitempty"`
}

// MoveHistory is a bounded ring buffer of entries. When full, the
// oldest entry is dropped on append.
type MoveHistory struct {
	entries  []Entry
	capacity int
}

func New(capacity int) *MoveHistory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MoveHistory{capacity: capacity}
}

// Append records a move, evicting the oldest entry when at capacity.
func (h *MoveHistory) Append(e Entry) {
	if len(h.entries) == h.capacity {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, e)
}

// Len returns the number of retained entries.
func (h *MoveHistory) Len() int { return len(h.entries) }

// Last peeks at the most recent entry.
func (h *MoveHistory) Last() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// PopLast removes and returns the most recent entry; the caller
// restores Entry.GridBefore to undo it.
func (h *MoveHistory) PopLast() (Entry, bool) {
	e, ok := h.Last()
	if ok {
		h.entries = h.entries[:len(h.entries)-1]
	}
	return e, ok
}

// Recent returns up to n most recent entries, oldest first.
func (h *MoveHistory) Recent(n int) []Entry {
	if n > len(h.entries) {
		n = len(h.entries)
	}
	return h.entries[len(h.entries)-n:]
}

// Stats summarizes session usage.
type Stats struct {
	Moves           int                     `json:"moves"`
	HintRatio       float64                 `json:"hintRatio"`
	TechniqueCounts map[types.Technique]int `json:"techniqueCounts"`
	AvgMoveLatency  time.Duration           `json:"avgMoveLatency"`
}

// UsageStats computes hint ratio, per-technique counts, and the mean
// latency between consecutive moves.
func (h *MoveHistory) UsageStats() Stats {
	s := Stats{
		Moves:           len(h.entries),
		TechniqueCounts: make(map[types.Technique]int),
	}
	if len(h.entries) == 0 {
		return s
	}
	hints := slice.CountBy(h.entries, func(_ int, e Entry) bool { return e.WasHintUsed })
	s.HintRatio = float64(hints) / float64(len(h.entries))
	for _, e := range h.entries {
		if e.Technique != "" {
			s.TechniqueCounts[e.Technique]++
		}
	}
	if len(h.entries) > 1 {
		span := h.entries[len(h.entries)-1].Timestamp.Sub(h.entries[0].Timestamp)
		s.AvgMoveLatency = span / time.Duration(len(h.entries)-1)
	}
	return s
}

// IsStuck reports whether the last five moves were all hints or undos,
// the signal that the player has stopped making their own progress.
func (h *MoveHistory) IsStuck() bool {
	if len(h.entries) < stuckWindow {
		return false
	}
	recent := h.Recent(stuckWindow)
	return slice.CountBy(recent, func(_ int, e Entry) bool {
		return e.WasHintUsed || e.Move.IsUndo
	}) == stuckWindow
}

// RecoverySuggestion intersects the engine's error cells with recently
// touched cells and suggests which moves to revisit. Empty when there
// is nothing to say.
func (h *MoveHistory) RecoverySuggestion(errs []types.ErrorLocation) string {
	if len(errs) == 0 {
		return ""
	}
	recent := h.Recent(stuckWindow)
	touched := slice.Filter(recent, func(_ int, e Entry) bool {
		return slice.ContainBy(errs, func(loc types.ErrorLocation) bool {
			return sharesUnit(e.Move, loc)
		})
	})
	if len(touched) == 0 {
		first := errs[0]
		return fmt.Sprintf("check row %d, column %d: %s", first.Row+1, first.Col+1, first.Description)
	}
	mv := touched[len(touched)-1].Move
	return fmt.Sprintf("your recent move at row %d, column %d may have caused this; try undoing it",
		mv.Row+1, mv.Col+1)
}

// sharesUnit reports whether a move touches the same row, column, or
// box as an error location.
func sharesUnit(mv types.Move, loc types.ErrorLocation) bool {
	if mv.Row == loc.Row || mv.Col == loc.Col {
		return true
	}
	return types.BoxIndex(mv.Row, mv.Col) == types.BoxIndex(loc.Row, loc.Col)
}
