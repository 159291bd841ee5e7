package board_test

import (
	"testing"

	"github.com/corvid-chess/position/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	assert.True(t, board.Rank1.IsValid())
	assert.True(t, board.Rank3.IsValid())
	assert.True(t, board.Rank8.IsValid())
	assert.False(t, board.Rank(8).IsValid())

	assert.Equal(t, "1", board.Rank1.String())
	assert.Equal(t, "7", board.Rank7.String())
	assert.Equal(t, "5", board.Rank(4).String())
}

func TestFile(t *testing.T) {
	assert.True(t, board.FileA.IsValid())
	assert.True(t, board.FileB.IsValid())
	assert.True(t, board.FileH.IsValid())
	assert.False(t, board.File(8).IsValid())

	assert.Equal(t, "a", board.FileA.String())
	assert.Equal(t, "g", board.FileG.String())
	assert.Equal(t, "e", board.File(4).String())
}

func TestSquare(t *testing.T) {
	assert.Equal(t, board.C2, board.NewSquare(board.FileC, board.Rank2))
	assert.Equal(t, board.G5, board.NewSquare(board.FileG, board.Rank5))

	assert.True(t, board.H1.IsValid())
	assert.True(t, board.D4.IsValid())
	assert.True(t, board.A8.IsValid())
	assert.False(t, board.NoSquare.IsValid())
	assert.False(t, board.Square(64).IsValid())

	assert.Equal(t, "a1", board.A1.String())
	assert.Equal(t, "h1", board.H1.String())
	assert.Equal(t, "e4", board.E4.String())

	assert.Equal(t, board.FileA, board.A1.File())
	assert.Equal(t, board.Rank1, board.A1.Rank())
	assert.Equal(t, board.FileH, board.H8.File())
	assert.Equal(t, board.Rank8, board.H8.Rank())
}

func TestParseSquareStr(t *testing.T) {
	sq, err := board.ParseSquareStr("e4")
	assert.NoError(t, err)
	assert.Equal(t, board.E4, sq)

	_, err = board.ParseSquareStr("e9")
	assert.Error(t, err)
	_, err = board.ParseSquareStr("z4")
	assert.Error(t, err)
	_, err = board.ParseSquareStr("e44")
	assert.Error(t, err)
}

func TestSquareMirror(t *testing.T) {
	assert.Equal(t, board.A8, board.A1.Mirror())
	assert.Equal(t, board.H1, board.H8.Mirror())
	assert.Equal(t, board.E4, board.E5.Mirror())
}
