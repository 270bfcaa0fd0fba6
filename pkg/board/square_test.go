package board_test

import (
	"testing"

	"github.com/clementvp/mcu-max/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	assert.True(t, board.Rank1.IsValid())
	assert.True(t, board.Rank8.IsValid())
	assert.False(t, board.Rank(8).IsValid())

	assert.Equal(t, "1", board.Rank1.String())
	assert.Equal(t, "8", board.Rank8.String())
}

func TestFile(t *testing.T) {
	assert.True(t, board.FileA.IsValid())
	assert.False(t, board.File(8).IsValid())

	assert.Equal(t, "a", board.FileA.String())
	assert.Equal(t, "h", board.FileH.String())
}

func TestSquare(t *testing.T) {
	assert.Equal(t, board.C2, board.NewSquare(board.FileC, board.Rank2))
	assert.Equal(t, board.E1, board.NewSquare(board.FileE, board.Rank1))

	assert.True(t, board.A1.IsValid())
	assert.True(t, board.H8.IsValid())
	assert.False(t, board.InvalidSquare.IsValid())

	assert.Equal(t, "a1", board.A1.String())
	assert.Equal(t, "h8", board.H8.String())
}

func TestSquareOffBoardMask(t *testing.T) {
	// Stepping left off the A-file must be caught by the 0x88 test, not
	// silently wrap to the H-file of the rank below.
	off := board.A1.Offset(-1)
	assert.False(t, off.IsValid())
}

func TestSquareRankFileRoundTrip(t *testing.T) {
	for r := board.Rank(0); r < 8; r++ {
		for f := board.File(0); f < 8; f++ {
			sq := board.NewSquare(f, r)
			assert.True(t, sq.IsValid())
			assert.Equal(t, r, sq.Rank())
			assert.Equal(t, f, sq.File())
		}
	}
}
