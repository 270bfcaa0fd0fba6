// Command mcu-max is a thin CLI driver: it sets a position from a FEN
// (or the standard start), runs the console debug driver over stdin/
// stdout, and exits on EOF or "quit". All game logic lives in
// pkg/engine; this binary is wiring only.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/clementvp/mcu-max/pkg/board/fen"
	"github.com/clementvp/mcu-max/pkg/engine"
	"github.com/clementvp/mcu-max/pkg/engine/console"
	"github.com/seekerror/logw"
)

var (
	position = flag.String("fen", "", "Start position (default to standard)")
	hash     = flag.Uint("hash", 0, "Transposition table size in bytes (0 disables)")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	e := engine.New(ctx, engine.WithOptions(engine.Options{Hash: *hash}))
	if *position != "" {
		e.SetFENPosition(ctx, *position)
	} else {
		e.SetFENPosition(ctx, fen.Initial)
	}

	d := console.NewDriver(e, os.Stdin, os.Stdout)
	d.Run(ctx)

	logw.Infof(ctx, "exiting")
}
