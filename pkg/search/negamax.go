package search

import (
	"context"

	"github.com/clementvp/mcu-max/pkg/board"
	"github.com/seekerror/logw"
)

// rootDepth is the floor iterative deepening always reaches before
// honoring Stop or an exhausted node budget, per the "fewer than 3
// iterations completed forces a minimum search" rule.
const rootDepth = 3

// nullMoveReduction is the depth cut applied to the reduced search used to
// prove a position is so good that even passing the move still beats beta.
const nullMoveReduction = 3

// lateMoveDepthFloor and lateMoveIndex gate late move reduction: moves
// visited at or past lateMoveIndex in a depth > lateMoveDepthFloor search,
// that are quiet (non-capturing) and not the replay hint, search one ply
// shallower on the assumption good ordering already sorted the best moves
// first.
const (
	lateMoveDepthFloor = 5
	lateMoveIndex      = 3
)

func (e *Engine) runFindBest(ctx context.Context, req Request) Response {
	pos := e.Position
	side := pos.Side

	var best board.Move = board.InvalidMove
	var bestScore board.Score
	hint := board.InvalidSquare

	depth := 1
	for {
		score, move, ok := e.searchRoot(pos, side, depth, hint)
		if !ok {
			break // no legal move: best stays InvalidMove
		}
		best = move
		bestScore = score
		hint = move.From

		logw.Debugf(ctx, "find-best iter depth=%v best=%v score=%v nodes=%v", depth, best, bestScore, e.nodeCount)

		exhausted := (req.NodeMax > 0 && e.nodeCount >= req.NodeMax) ||
			(req.DepthMax > 0 && depth >= req.DepthMax)
		if depth >= rootDepth && (e.stopSearch || exhausted) {
			break
		}
		depth++
	}

	return Response{Move: best, Score: bestScore, NodeCount: e.nodeCount}
}

// searchRoot evaluates every legal root move at the given depth and
// returns the best. hint, the previous iteration's best origin square, is
// tried first via move ordering so beta cutoffs elsewhere in the tree fire
// earlier; this is the replay-hint mechanism restructured as an explicit
// sort key instead of a goto back into the move loop.
func (e *Engine) searchRoot(pos *board.Position, side board.Color, depth int, hint board.Square) (board.Score, board.Move, bool) {
	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		return 0, board.InvalidMove, false
	}
	moves = orderedMoves(moves, hint)

	alpha, beta := -board.MateScore, board.MateScore
	best := board.InvalidMove
	bestScore := -board.MateScore - 1

	for _, m := range moves {
		e.onNode()

		u := pos.Apply(m)
		childInCheck := pos.IsAttacked(pos.KingSquare(pos.Side), pos.Side.Opponent())
		childScore := evaluate(pos, pos.Side)
		value := -e.negamax(pos, pos.Side, depth-1, -beta, -alpha, childScore, childInCheck, true)
		pos.Undo(u)

		if value > bestScore {
			bestScore = value
			best = m
		}
		if value > alpha {
			alpha = value
		}
		if e.stopSearch {
			break
		}
	}

	return bestScore, best, best.IsValid()
}

// negamax is the recursive alpha-beta workhorse. side is the side to move
// at this node; the returned score is always from side's perspective.
// score is the static evaluation of this node's position from side's
// perspective, computed by the caller; isRootChild marks the first ply
// below the root, where null-move pruning is never attempted (there is
// nothing to prune above the root).
func (e *Engine) negamax(pos *board.Position, side board.Color, depth int, alpha, beta, score board.Score, inCheck bool, isRootChild bool) board.Score {
	e.onNode()

	// Delayed-loss/delayed-win bonus: narrow the window by one unit toward
	// score so a mate or stalemate found sooner is preferred over the same
	// result found later.
	if alpha < score {
		alpha--
	}
	if beta <= score {
		beta--
	}

	if inCheck {
		depth++ // check extension: never let a check be resolved at reduced depth
	}

	if depth <= 0 || e.stopSearch {
		return evaluate(pos, side)
	}

	if ttScore, _, ok, _ := e.Table.Probe(pos.Hash, depth, alpha, beta); ok {
		return ttScore
	}

	if !isRootChild && depth > 2 && !inCheck && pos.NonPawnMaterial > endgameMaterialThreshold {
		if v := e.nullMove(pos, side, depth, score); v >= beta {
			return beta
		}
	}

	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		if inCheck {
			return -board.MateScore + board.Score(depth) // prefer being mated later
		}
		return 0 // stalemate
	}
	_, hintMove, _, hit := e.Table.Probe(pos.Hash, 0, alpha, beta)
	hint := board.InvalidSquare
	if hit {
		hint = hintMove.From
	}
	moves = orderedMoves(moves, hint)

	best := -board.MateScore - 1
	bestMove := board.InvalidMove
	origAlpha := alpha
	for i, m := range moves {
		childDepth := depth - 1
		quiet := m.Capture == board.Empty && m.Type != board.EnPassant
		if quiet && depth > lateMoveDepthFloor && i >= lateMoveIndex {
			childDepth-- // late move reduction
		}

		u := pos.Apply(m)
		childInCheck := pos.IsAttacked(pos.KingSquare(pos.Side), pos.Side.Opponent())
		childScore := evaluate(pos, pos.Side)
		value := -e.negamax(pos, pos.Side, childDepth, -beta, -alpha, childScore, childInCheck, false)
		pos.Undo(u)

		if value > best {
			best = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			break // beta cutoff
		}
	}

	if e.Table != nil && pos.Hash != nil {
		bound := ExactBound
		switch {
		case best <= origAlpha:
			bound = UpperBound
		case best >= beta:
			bound = LowerBound
		}
		e.Table.Write(pos.Hash.Key, pos.Hash.Key2, bound, depth, best, bestMove)
	}

	return best
}

// nullMove executes the null-move pruning probe: pass the turn without
// moving and search at a reduced depth. A result that still fails high
// means the side to move is so far ahead that even forfeiting a tempo
// doesn't help the opponent, so the real subtree can be pruned. score is
// the static evaluation at the node the null move is taken from; the
// opponent sees the same position with the sign flipped.
func (e *Engine) nullMove(pos *board.Position, side board.Color, depth int, score board.Score) board.Score {
	prevSide := pos.Side
	prevEP := pos.EnPassant
	pos.Side = side.Opponent()
	pos.EnPassant = board.InvalidSquare

	value := -e.negamax(pos, pos.Side, depth-1-nullMoveReduction, -board.MateScore, -board.MateScore+1, -score, false, false)

	pos.Side = prevSide
	pos.EnPassant = prevEP
	return value
}
