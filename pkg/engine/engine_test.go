package engine_test

import (
	"context"
	"testing"

	"github.com/clementvp/mcu-max/pkg/board"
	"github.com/clementvp/mcu-max/pkg/board/fen"
	"github.com/clementvp/mcu-max/pkg/engine"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsAtStandardPosition(t *testing.T) {
	e := engine.New(context.Background())
	assert.Equal(t, board.White, e.CurrentSide())
	assert.Equal(t, fen.Initial, e.FEN())
}

func TestSetFENPositionFallsBackOnMalformedInput(t *testing.T) {
	e := engine.New(context.Background())
	e.SetFENPosition(context.Background(), "not a fen")
	assert.Equal(t, fen.Initial, e.FEN())
}

func TestSetFENPositionHonorsSideToMove(t *testing.T) {
	e := engine.New(context.Background())
	e.SetFENPosition(context.Background(), "4k3/4R3/8/8/8/8/8/4K3 b - - 0 1")
	assert.Equal(t, board.Black, e.CurrentSide())
	assert.True(t, e.InCheck(board.Black))
}

func TestEnumerateMovesStandardStart(t *testing.T) {
	e := engine.New(context.Background())
	assert.Equal(t, 20, e.EnumerateMoves(make([]board.Move, 32)))
}

func TestApplyMoveThenFEN(t *testing.T) {
	e := engine.New(context.Background())
	ok := e.ApplyMove(context.Background(), board.Move{From: board.E2, To: board.E4, Type: board.DoublePawnPush})
	require.True(t, ok)
	assert.Equal(t, board.Black, e.CurrentSide())
	assert.Contains(t, e.FEN(), "e3") // en-passant target recorded
}

func TestApplyMoveRejectsIllegal(t *testing.T) {
	e := engine.New(context.Background())
	ok := e.ApplyMove(context.Background(), board.Move{From: board.E2, To: board.E5})
	assert.False(t, ok)
	assert.Equal(t, board.White, e.CurrentSide())
}

func TestFindBestMoveWithDepthLimit(t *testing.T) {
	e := engine.New(context.Background())
	m := e.FindBestMove(context.Background(), 0, lang.Some(2))
	assert.True(t, m.IsValid())
}

func TestIsCheckmateAndStalemate(t *testing.T) {
	e := engine.New(context.Background())
	e.SetFENPosition(context.Background(), "7k/5KQ1/8/8/8/8/8/8 b - - 0 1")
	assert.True(t, e.IsCheckmate(board.Black))

	e.SetFENPosition(context.Background(), "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.True(t, e.IsStalemate(board.Black))
}

func TestHashOptionAttachesHasher(t *testing.T) {
	e := engine.New(context.Background(), engine.WithOptions(engine.Options{Hash: 1 << 16}), engine.WithHashSeed(7))
	// A best-move search should complete without panicking with hashing on.
	m := e.FindBestMove(context.Background(), 0, lang.Some(2))
	assert.True(t, m.IsValid())
}

func TestStopSearchHaltsIterativeDeepening(t *testing.T) {
	e := engine.New(context.Background())
	e.SetCallback(func() {
		e.StopSearch()
	})
	m := e.FindBestMove(context.Background(), 0, lang.Optional[int]{})
	assert.True(t, m.IsValid(), "the rootDepth floor still guarantees a move")
}
