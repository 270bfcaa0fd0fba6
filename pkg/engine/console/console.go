// Package console implements a line-oriented debug driver for manual
// play against the engine from a terminal. It is a thin shim over
// pkg/engine, not a protocol implementation — there is no UCI/xboard
// framing here, just commands convenient for exercising the engine by
// hand.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/clementvp/mcu-max/pkg/board"
	"github.com/clementvp/mcu-max/pkg/engine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Driver reads commands from in and writes responses to out until in is
// exhausted or a "quit" command is read.
type Driver struct {
	e   *engine.Engine
	in  *bufio.Scanner
	out io.Writer
}

func NewDriver(e *engine.Engine, in io.Reader, out io.Writer) *Driver {
	return &Driver{e: e, in: bufio.NewScanner(in), out: out}
}

// Run processes commands until EOF or "quit". Recognized commands:
//
//	fen <FEN>      set the position
//	go [depth]     search and apply the best move (default depth 6)
//	move <uci>     apply a user move, e.g. e2e4
//	moves          list legal moves
//	board          print the FEN and check/mate/stalemate status
//	quit           exit
func (d *Driver) Run(ctx context.Context) {
	fmt.Fprintln(d.out, "mcu-max console driver")
	d.printBoard()

	for d.in.Scan() {
		line := strings.TrimSpace(d.in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return
		case "fen":
			d.e.SetFENPosition(ctx, strings.TrimPrefix(line, "fen "))
			d.printBoard()
		case "go":
			depth := lang.Some(6)
			if len(fields) > 1 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					depth = lang.Some(n)
				}
			}
			m := d.e.FindBestMove(ctx, 0, depth)
			if !m.IsValid() {
				fmt.Fprintln(d.out, "no legal move")
				break
			}
			if d.e.ApplyMove(ctx, m) {
				fmt.Fprintf(d.out, "played %v\n", m)
			}
			d.printBoard()
		case "move":
			if len(fields) < 2 {
				fmt.Fprintln(d.out, "usage: move <uci>")
				break
			}
			m, err := board.ParseMove(fields[1])
			if err != nil {
				fmt.Fprintf(d.out, "invalid move: %v\n", err)
				break
			}
			if !d.e.ApplyMove(ctx, m) {
				fmt.Fprintln(d.out, "illegal move")
			}
			d.printBoard()
		case "moves":
			buf := make([]board.Move, 64)
			n := d.e.EnumerateMoves(buf)
			fmt.Fprintf(d.out, "%v legal moves: %v\n", n, buf[:min(n, len(buf))])
		case "board":
			d.printBoard()
		default:
			fmt.Fprintf(d.out, "unrecognized command: %v\n", fields[0])
		}
	}
	logw.Infof(ctx, "console driver: input stream closed")
}

func (d *Driver) printBoard() {
	side := d.e.CurrentSide()
	fmt.Fprintln(d.out, d.e.FEN())
	if d.e.IsCheckmate(side) {
		fmt.Fprintf(d.out, "%v is checkmated\n", side)
	} else if d.e.IsStalemate(side) {
		fmt.Fprintln(d.out, "stalemate")
	} else if d.e.InCheck(side) {
		fmt.Fprintf(d.out, "%v is in check\n", side)
	}
}
