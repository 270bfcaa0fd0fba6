package board_test

import (
	"testing"

	"github.com/clementvp/mcu-max/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPositionStandardStart(t *testing.T) {
	pos := board.NewPosition()

	assert.Equal(t, board.White, pos.Side)
	assert.Equal(t, board.InvalidSquare, pos.EnPassant)

	assert.Equal(t, board.Rook, pos.Cell(board.A1).Kind())
	assert.Equal(t, board.White, pos.Cell(board.A1).Color())
	assert.Equal(t, board.King, pos.Cell(board.E1).Kind())
	assert.Equal(t, board.King, pos.Cell(board.E8).Kind())
	assert.True(t, pos.Cell(board.E4).IsEmpty())
}

func TestStandardStartLegalMoveCount(t *testing.T) {
	pos := board.NewPosition()
	moves := pos.LegalMoves(board.White)
	assert.Len(t, moves, 20)
}

func TestApplyUndoRestoresPosition(t *testing.T) {
	pos := board.NewPosition()
	before := *pos

	m := board.Move{From: board.E2, To: board.E4, Type: board.DoublePawnPush}
	u := pos.Apply(m)

	assert.Equal(t, board.Black, pos.Side)
	assert.Equal(t, board.E3, pos.EnPassant)
	assert.True(t, pos.Cell(board.E2).IsEmpty())
	assert.Equal(t, board.PawnUpstream, pos.Cell(board.E4).Kind())

	pos.Undo(u)
	assert.Equal(t, before, *pos)
}

func TestEnPassantCapture(t *testing.T) {
	pos := board.NewPosition()
	u1 := pos.Apply(board.Move{From: board.E2, To: board.E4, Type: board.DoublePawnPush})
	u2 := pos.Apply(board.Move{From: board.A7, To: board.A6})
	u3 := pos.Apply(board.Move{From: board.E4, To: board.E5})
	u4 := pos.Apply(board.Move{From: board.D7, To: board.D5, Type: board.DoublePawnPush})

	require.Equal(t, board.D6, pos.EnPassant)

	ep := board.Move{From: board.E5, To: board.D6, Type: board.EnPassant}
	u5 := pos.Apply(ep)

	assert.True(t, pos.Cell(board.D5).IsEmpty())
	assert.Equal(t, board.PawnUpstream, pos.Cell(board.D6).Kind())

	pos.Undo(u5)
	assert.Equal(t, board.PawnDownstream, pos.Cell(board.D5).Kind())

	pos.Undo(u4)
	pos.Undo(u3)
	pos.Undo(u2)
	pos.Undo(u1)
}

func TestCastlingRequiresEmptySquares(t *testing.T) {
	pos := board.NewPosition()
	moves := pos.LegalMoves(board.White)
	for _, m := range moves {
		assert.NotEqual(t, board.CastleKingSide, m.Type, "standard start has pieces between king and rooks")
		assert.NotEqual(t, board.CastleQueenSide, m.Type, "standard start has pieces between king and rooks")
	}
}

func TestCastlingAfterClearingSquares(t *testing.T) {
	pos := board.NewPosition()
	// Clear the squares between the White king and both rooks, and the
	// intervening pieces, to exercise king-side and queen-side castling.
	for _, sq := range []board.Square{board.B1, board.C1, board.D1, board.F1, board.G1} {
		pos.SetCell(sq, board.Cell(0))
	}

	moves := pos.LegalMoves(board.White)
	var sawKingSide, sawQueenSide bool
	for _, m := range moves {
		if m.Type == board.CastleKingSide {
			sawKingSide = true
		}
		if m.Type == board.CastleQueenSide {
			sawQueenSide = true
		}
	}
	assert.True(t, sawKingSide, "expected king-side castle to be available")
	assert.True(t, sawQueenSide, "expected queen-side castle to be available")
}
