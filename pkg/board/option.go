package board

import (
	"sync/atomic"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Options holds process-wide configuration for the position core. It
// mirrors a UCI engine's "setoption" surface, but only the one option
// that changes core rules semantics: the rest (hash size, ponder, ...)
// belong to the search collaborator.
type Options struct {
	// Chess960 makes MakeMove treat a king move onto its own rook as a
	// castle. FEN parsing and printing do not depend on it.
	// Unset is equivalent to false.
	Chess960 lang.Optional[bool]
}

var options atomic.Pointer[Options]

// SetOptions replaces the process-wide configuration. Safe to call
// concurrently with Chess960 and PseudoLegalMoves/MakeMove, though
// changing it mid-game is the caller's mistake to make, not this
// package's to prevent.
func SetOptions(opt Options) {
	options.Store(&opt)
}

// Chess960 reports whether Fischer Random rules are in effect.
func Chess960() bool {
	opt := options.Load()
	if opt == nil {
		return false
	}
	v, _ := opt.Chess960.V()
	return v
}
