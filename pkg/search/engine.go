// Package search implements move enumeration, best-move search and move
// application as three faces of the same Engine: all three public intents
// are staged through a single Request and dispatched by Engine.Run,
// replacing the original's overloaded square_from/square_to in/out slots
// with an explicit, mode-tagged value.
package search

import (
	"context"

	"github.com/clementvp/mcu-max/pkg/board"
	"github.com/seekerror/logw"
)

// Mode selects the caller intent driving one call to Engine.Run.
type Mode uint8

const (
	// ModeEnumerate fills Request.Buffer with legal moves and reports the
	// true count, which may exceed the buffer's capacity.
	ModeEnumerate Mode = iota
	// ModeFindBest runs the iterative-deepening alpha-beta search and
	// reports the chosen move.
	ModeFindBest
	// ModeApply confirms Request.Move is legal (pseudo-legal generation
	// plus the king-safety criterion) and, if so, commits it.
	ModeApply
)

// Request stages the inputs to one call of Engine.Run.
type Request struct {
	Mode Mode

	Move board.Move // ModeApply: the move to confirm and commit

	Buffer    []board.Move // ModeEnumerate: write destination
	BufferCap int          // ModeEnumerate: maximum entries to write, <= cap(Buffer)

	NodeMax  uint32 // ModeFindBest: 0 means unlimited
	DepthMax int    // ModeFindBest: 0 means unlimited (bounded only by NodeMax/Stop)

	Callback func() // invoked on every node entry; may call Engine.Stop
}

// Response is the result of a call to Engine.Run.
type Response struct {
	Move      board.Move  // ModeFindBest: chosen move, InvalidMove if none exists
	Applied   bool        // ModeApply: whether Request.Move was legal and applied
	Count     int         // ModeEnumerate: true legal move count
	Score     board.Score // ModeFindBest: score of the chosen line
	NodeCount uint32
}

// Engine owns one Position and drives search over it. It is not
// re-entrant: Run mutates the position on the recursion path and expects
// exclusive access for its duration. pkg/engine wraps an Engine with a
// mutex to make it safe for concurrent callers.
type Engine struct {
	Position *board.Position
	Table    *Table // nil disables the transposition-table accelerator

	nodeCount  uint32
	stopSearch bool
	callback   func()
}

func NewEngine(pos *board.Position) *Engine {
	return &Engine{Position: pos}
}

// Stop requests cooperative cancellation. The running search checks it at
// every node: negamax returns its static evaluation, searchRoot ends its
// move loop after the current move, and iterative deepening ends once
// rootDepth iterations are done, returning the best move recorded so far.
func (e *Engine) Stop() {
	e.stopSearch = true
}

func (e *Engine) onNode() {
	e.nodeCount++
	if e.callback != nil {
		e.callback()
	}
}

// Run executes req's mode and returns the corresponding Response.
func (e *Engine) Run(ctx context.Context, req Request) Response {
	e.nodeCount = 0
	e.stopSearch = false
	e.callback = req.Callback

	switch req.Mode {
	case ModeEnumerate:
		return e.runEnumerate(req)
	case ModeApply:
		return e.runApply(ctx, req)
	default:
		return e.runFindBest(ctx, req)
	}
}

func (e *Engine) runEnumerate(req Request) Response {
	legal := e.Position.LegalMoves(e.Position.Side)
	n := len(legal)
	if n > req.BufferCap {
		n = req.BufferCap
	}
	copy(req.Buffer[:n], legal)
	return Response{Count: len(legal), NodeCount: e.nodeCount}
}

func (e *Engine) runApply(ctx context.Context, req Request) Response {
	for _, m := range e.Position.PseudoLegalMoves(e.Position.Side, board.InvalidSquare) {
		if !m.Equals(req.Move) {
			continue
		}
		side := e.Position.Side
		u := e.Position.Apply(m)
		if e.Position.IsAttacked(e.Position.KingSquare(side), side.Opponent()) {
			e.Position.Undo(u)
			continue
		}
		logw.Infof(ctx, "applied %v, fen side now %v", m, e.Position.Side)
		return Response{Applied: true}
	}
	return Response{Applied: false}
}
