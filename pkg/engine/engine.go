// Package engine exposes the external operations of the chess engine as
// a single owned handle: init, set_fen_position, get_piece,
// get_current_side, enumerate_moves, find_best_move, apply_move,
// set_callback, stop_search, in_check, is_checkmate, is_stalemate, and
// get_fen. It replaces the original's single process-wide global with an
// explicit value so the engine is re-entrant and testable.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/clementvp/mcu-max/pkg/board"
	"github.com/clementvp/mcu-max/pkg/board/fen"
	"github.com/clementvp/mcu-max/pkg/search"
	"github.com/clementvp/mcu-max/pkg/status"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"go.uber.org/atomic"
)

var version = build.NewVersion(1, 0, 6)

// Options are engine creation and runtime options.
type Options struct {
	// Hash is the transposition table size in bytes. Zero disables the
	// transposition-table accelerator entirely.
	Hash uint
	// Noise is reserved for future evaluation jitter; unused today.
	Noise uint
}

func (o Options) String() string {
	return fmt.Sprintf("{hash=%v, noise=%v}", o.Hash, o.Noise)
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithOptions sets the engine's runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithHashSeed fixes the scramble-table seed used when hashing is
// enabled; mainly useful for deterministic tests.
func WithHashSeed(seed int64) Option {
	return func(e *Engine) {
		e.hashSeed = seed
	}
}

// Engine is the process-facing handle. It is safe for concurrent use: all
// operations serialize on a single mutex, matching the spec's "not
// re-entrant, single global state block" resource model while still
// being a normal Go value instead of a package-level global. stopped is
// kept outside that mutex: the per-node callback installed via
// SetCallback runs synchronously on the same goroutine that is holding
// the mutex inside FindBestMove, and that callback is explicitly allowed
// to call StopSearch (the cancellation contract) — so StopSearch cannot
// itself take the mutex without deadlocking against its own caller.
type Engine struct {
	mu sync.Mutex

	opts     Options
	hashSeed int64

	pos    *board.Position
	side   board.Color
	search *search.Engine

	callback func()
	stopped  atomic.Bool
}

// New returns an initialized engine at the standard starting position.
func New(ctx context.Context, opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	e.Init(ctx)
	logw.Infof(ctx, "initialized %v %v, options=%v", "mcu-max", version, e.opts)
	return e
}

// Init resets the engine to the standard starting position and clears all
// search state, as if newly constructed.
func (e *Engine) Init(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pos = board.NewPosition()
	e.side = board.White
	e.attachHashIfEnabled()
	e.search = search.NewEngine(e.pos)
	if e.opts.Hash > 0 {
		e.search.Table = search.NewTable(ctx, uint64(e.opts.Hash))
	}
	e.callback = nil
	e.stopped.Store(false)

	logw.Infof(ctx, "reset to standard starting position")
}

// SetFENPosition resets the engine, then parses s onto the fresh
// position. Malformed fields are silently skipped, per the spec's lenient
// FEN contract; only a structurally wrong field count is refused, and
// even then the engine is left at the standard starting position rather
// than in a partial state.
func (e *Engine) SetFENPosition(ctx context.Context, s string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, side, err := fen.Decode(s)
	if err != nil {
		logw.Warningf(ctx, "invalid fen %q: %v; keeping standard start", s, err)
		pos = board.NewPosition()
		side = board.White
	}
	e.pos = pos
	e.side = side
	e.attachHashIfEnabled()
	e.search = search.NewEngine(e.pos)
	if e.opts.Hash > 0 {
		e.search.Table = search.NewTable(ctx, uint64(e.opts.Hash))
	}

	logw.Infof(ctx, "set position: %v", s)
}

func (e *Engine) attachHashIfEnabled() {
	if e.opts.Hash == 0 {
		e.pos.Hash = nil
		return
	}
	e.pos.Hash = board.NewHasher(e.hashSeed)
	e.pos.Seed()
}

// Piece returns the piece kind XOR'd with the black flag for easy ASCII
// mapping, matching the original's get_piece encoding; off-board squares
// and empty squares both report board.Cell(board.Empty).
func (e *Engine) Piece(sq board.Square) board.Cell {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.pos.Cell(sq)
	if c.IsEmpty() {
		return board.Cell(board.Empty)
	}
	if c.Color() == board.Black {
		return board.NewCell(c.Kind(), board.Black)
	}
	return board.Cell(c.Kind())
}

// CurrentSide returns the side to move.
func (e *Engine) CurrentSide() board.Color {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.side
}

// EnumerateMoves writes up to len(buffer) legal moves into buffer and
// returns the true count, which may exceed len(buffer) — a size-probe
// pattern that lets a caller pass a nil or zero-length buffer purely to
// learn the count.
func (e *Engine) EnumerateMoves(buffer []board.Move) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	resp := e.search.Run(context.Background(), search.Request{
		Mode:      search.ModeEnumerate,
		Buffer:    buffer,
		BufferCap: len(buffer),
	})
	return resp.Count
}

// FindBestMove searches under the given node and depth budgets and
// returns the chosen move, or board.InvalidMove if the side to move has
// no legal move.
func (e *Engine) FindBestMove(ctx context.Context, nodeMax uint32, depthLimit lang.Optional[int]) board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopped.Store(false)
	depthMax, _ := depthLimit.V()

	resp := e.search.Run(ctx, search.Request{
		Mode:     search.ModeFindBest,
		NodeMax:  nodeMax,
		DepthMax: depthMax,
		Callback: e.onNode,
	})
	logw.Infof(ctx, "find-best: move=%v score=%v nodes=%v", resp.Move, resp.Score, resp.NodeCount)
	return resp.Move
}

// onNode runs on the goroutine that is inside FindBestMove and already
// holds e.mu; it must never acquire e.mu itself. The installed callback is
// free to call StopSearch re-entrantly (the documented cancellation
// contract), which is why StopSearch only touches the lock-free stopped
// flag and the search engine's own stop signal.
func (e *Engine) onNode() {
	if e.callback != nil {
		e.callback()
	}
	if e.stopped.Load() {
		e.search.Stop()
	}
}

// ApplyMove attempts to play m and reports whether it was legal under the
// engine's pseudo-legal-plus-king-safe criterion. On success the position
// is mutated permanently; on failure nothing changes.
func (e *Engine) ApplyMove(ctx context.Context, m board.Move) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	resp := e.search.Run(ctx, search.Request{Mode: search.ModeApply, Move: m})
	if resp.Applied {
		e.side = e.pos.Side
		logw.Infof(ctx, "applied move %v", m)
	} else {
		logw.Warningf(ctx, "rejected illegal move %v", m)
	}
	return resp.Applied
}

// SetCallback installs fn to be invoked on every node expansion during
// FindBestMove, the cooperative-cancellation opportunity.
func (e *Engine) SetCallback(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.callback = fn
}

// StopSearch requests that the active search halt at its next node check,
// returning whatever best move has been recorded so far. FindBestMove
// clears the request when it starts, so a call made between searches does
// not affect the next one. It
// deliberately does not take e.mu: it is called both from outside (an
// external goroutine cancelling a long search) and from inside, via the
// per-node callback running synchronously on the goroutine that is
// already holding e.mu inside FindBestMove.
func (e *Engine) StopSearch() {
	e.stopped.Store(true)
	e.search.Stop()
}

func (e *Engine) InCheck(side board.Color) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return status.InCheck(e.pos, side)
}

func (e *Engine) IsCheckmate(side board.Color) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return status.IsCheckmate(e.pos, side)
}

func (e *Engine) IsStalemate(side board.Color) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return status.IsStalemate(e.pos, side)
}

// FEN returns the current position in FEN notation.
func (e *Engine) FEN() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.pos, e.side)
}
