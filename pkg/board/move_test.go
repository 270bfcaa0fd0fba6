package board_test

import (
	"testing"

	"github.com/clementvp/mcu-max/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	m, err := board.ParseMove("e2e4")
	require.NoError(t, err)
	assert.Equal(t, board.E2, m.From)
	assert.Equal(t, board.E4, m.To)
}

func TestParseMoveIgnoresPromotionLetter(t *testing.T) {
	m, err := board.ParseMove("a7a8q")
	require.NoError(t, err)
	assert.Equal(t, board.A7, m.From)
	assert.Equal(t, board.A8, m.To)
}

func TestParseMoveRejectsBadLength(t *testing.T) {
	_, err := board.ParseMove("e2e")
	assert.Error(t, err)
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "e2e4", board.Move{From: board.E2, To: board.E4}.String())
	assert.Equal(t, "0000", board.InvalidMove.String())
}

func TestMoveEqualsIgnoresTypeAndCapture(t *testing.T) {
	a := board.Move{From: board.E2, To: board.E4, Type: board.DoublePawnPush}
	b := board.Move{From: board.E2, To: board.E4, Capture: board.Queen}
	assert.True(t, a.Equals(b))
}
