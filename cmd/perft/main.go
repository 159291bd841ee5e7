// perft is a movegen debugging tool. See:
// https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/corvid-chess/position/pkg/board"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	chess960 = flag.Bool("chess960", false, "Enable the Chess960 option (Shredder-FEN castling letters in -fen are accepted either way)")
	divide   = flag.Bool("divide", false, "Print per-move subtree counts at the final depth")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	logw.Infof(ctx, "perft %v", version)

	if *chess960 {
		board.SetOptions(board.Options{Chess960: lang.Some(true)})
	}
	if *position == "" {
		*position = board.Initial
	}

	pos, err := board.FromFEN(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen %q: %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(pos, i, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", *position, i, nodes, duration.Microseconds())
	}
}

func search(pos *board.Position, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	mover := pos.ActiveArmy()
	list := &board.MoveList{}
	pos.PseudoLegalMoves(list)

	var nodes int64
	for _, m := range list.Moves {
		next := pos.Clone()
		if !next.MakeMove(m) || next.IsChecked(mover) {
			continue
		}

		count := search(next, depth-1, false)
		if d {
			fmt.Printf("%v: %v\n", m, count)
		}
		nodes += count
	}
	return nodes
}
