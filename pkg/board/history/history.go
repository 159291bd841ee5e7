// Package history tracks the append-only position log the threefold
// repetition rule is checked against. It is a thin, process-wide
// collaborator: the position core never mutates it during search, only
// the code applying moves to the live game does (see spec §4.9).
package history

import "github.com/corvid-chess/position/pkg/board"

// History is an ordered sequence of positions. Repetition queries scan it
// comparing positions with IsSamePosition; it keeps no index by Zobrist
// hash. Not safe for concurrent use; callers that fork
// search across goroutines should not share one History across them.
type History struct {
	entries []*board.Position
}

// New returns an empty History.
func New() *History {
	return &History{}
}

// Add appends pos to the end of the log.
func (h *History) Add(pos *board.Position) {
	h.entries = append(h.entries, pos)
}

// Clear empties the log, e.g. when starting a new game.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}

// Current returns the most recently added position, if any.
func (h *History) Current() (*board.Position, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of positions logged.
func (h *History) Len() int {
	return len(h.entries)
}

// Repetitions counts how many positions already in the log are
// IsSamePosition-equal to pos, scanning back only as far as the most
// recent irreversible move (a pawn move, a capture, or a castle) -- no
// earlier position can recur once one of those has been played. It does
// not count pos itself; per spec §4.9, a candidate is a third repetition
// when Repetitions returns >= 2.
func (h *History) Repetitions(pos *board.Position) int {
	count := 0
	for i := len(h.entries) - 1; i >= 0; i-- {
		e := h.entries[i]
		if e.IsSamePosition(pos) {
			count++
		}
		if m, ok := e.LastMove(); ok && isIrreversible(m) {
			break
		}
	}
	return count
}

// IsThreefold reports whether pos would be a threefold repetition given
// the positions already logged.
func (h *History) IsThreefold(pos *board.Position) bool {
	return h.Repetitions(pos) >= 2
}

func isIrreversible(m board.Move) bool {
	return m.Piece == board.Pawn || m.Capture || m.Castle
}
