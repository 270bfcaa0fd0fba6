package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/clementvp/mcu-max/pkg/engine"
	"github.com/clementvp/mcu-max/pkg/engine/console"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, commands string) string {
	t.Helper()
	e := engine.New(context.Background())
	var out bytes.Buffer
	d := console.NewDriver(e, strings.NewReader(commands), &out)
	d.Run(context.Background())
	return out.String()
}

func TestConsolePrintsBoardOnStartup(t *testing.T) {
	out := run(t, "quit\n")
	assert.Contains(t, out, "mcu-max console driver")
	assert.Contains(t, out, "rnbqkbnr")
}

func TestConsoleMoveCommand(t *testing.T) {
	out := run(t, "move e2e4\nquit\n")
	assert.Contains(t, out, " b ") // side to move flips to black in the echoed FEN
}

func TestConsoleRejectsIllegalMove(t *testing.T) {
	out := run(t, "move e2e5\nquit\n")
	assert.Contains(t, out, "illegal move")
}

func TestConsoleMovesCommandReportsCount(t *testing.T) {
	out := run(t, "moves\nquit\n")
	assert.Contains(t, out, "20 legal moves")
}

func TestConsoleFenCommandSwitchesPosition(t *testing.T) {
	out := run(t, "fen 7k/5KQ1/8/8/8/8/8/8 b - - 0 1\nquit\n")
	assert.Contains(t, out, "is checkmated")
}

func TestConsoleGoCommandPlaysAMove(t *testing.T) {
	out := run(t, "go 2\nquit\n")
	assert.Contains(t, out, "played")
}
