package search_test

import (
	"context"
	"testing"

	"github.com/clementvp/mcu-max/pkg/board"
	"github.com/clementvp/mcu-max/pkg/board/fen"
	"github.com/clementvp/mcu-max/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestPrefersWinningCapture(t *testing.T) {
	// White queen on d1 can take the undefended black rook on d8.
	pos, _, err := fen.Decode("3r1k2/8/8/8/8/8/8/3Q1K2 w - - 0 1")
	require.NoError(t, err)
	e := search.NewEngine(pos)

	resp := e.Run(context.Background(), search.Request{
		Mode:     search.ModeFindBest,
		DepthMax: 3,
	})

	assert.Equal(t, board.D1, resp.Move.From)
	assert.Equal(t, board.D8, resp.Move.To)
}

func TestFindBestStopsAtRootDepthOnImmediateStop(t *testing.T) {
	pos := board.NewPosition()
	e := search.NewEngine(pos)

	resp := e.Run(context.Background(), search.Request{
		Mode:    search.ModeFindBest,
		NodeMax: 1,
	})

	require.True(t, resp.Move.IsValid(), "the 3-iteration floor must still produce a move")
}

func TestEngineStopBeforeRunHasNoEffect(t *testing.T) {
	pos := board.NewPosition()
	e := search.NewEngine(pos)
	e.Stop()

	resp := e.Run(context.Background(), search.Request{
		Mode:     search.ModeFindBest,
		DepthMax: 1,
	})
	// Run resets stopSearch at entry, so a pre-emptive Stop call before Run
	// has no effect; this documents that Stop only matters mid-search.
	assert.True(t, resp.Move.IsValid())
}
