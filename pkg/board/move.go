package board

import "fmt"

// Move is a not-necessarily-legal move together with enough metadata for
// the mover to replay it and for the rest of the engine to display it.
// Castling is encoded as the king capturing its own rook (To is the
// rook's square) -- the one representation that works uniformly for
// standard chess and Chess960; see spec §4.4 for the outer g/c-file
// encoding accepted on input.
type Move struct {
	From, To  Square
	Piece     Piece
	Promotion Piece // NoPiece if not a promotion

	Capture    bool
	Check      bool
	Checkmate  bool
	Stalemate  bool
	EnPassant  bool
	Castle     bool
	CastleSide Side
}

// IsValid reports whether both endpoints name real squares.
func (m Move) IsValid() bool {
	return m.From.IsValid() && m.To.IsValid()
}

// Equals compares the squares and promotion choice, ignoring metadata
// flags that the core fills in rather than the caller supplying.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// ParseMove parses a move in pure algebraic coordinate notation, such as
// "e2e4" or "e7e8q". It does not resolve castling or en passant; that
// happens when the move is applied to a Position (see Position.MakeMove).
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("board: invalid move %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("board: invalid move %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("board: invalid move %q: %w", str, err)
	}

	m := Move{From: from, To: to}
	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("board: invalid promotion in move %q", str)
		}
		m.Promotion = promo
	}
	return m, nil
}

func (m Move) String() string {
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}
