package search

import (
	"container/heap"

	"github.com/clementvp/mcu-max/pkg/board"
)

// priority is the move order priority: higher pops first.
type priority int32

// moveList is a move priority queue used for move ordering ahead of
// alpha-beta: captures and the replay hint pop before quiet moves, so
// cutoffs fire earlier in the search tree.
type moveList struct {
	h moveHeap
}

// newMoveList builds a move list ordered by MVV (most valuable victim),
// with any move originating from hint promoted to the very front — the
// replay-hint hook for both the root search and interior nodes carrying a
// transposition-table move.
func newMoveList(moves []board.Move, hint board.Square) *moveList {
	h := make(moveHeap, len(moves))
	for i, m := range moves {
		h[i] = elm{m: m, val: priorityOf(m, hint)}
	}
	heap.Init(&h)
	return &moveList{h: h}
}

func priorityOf(m board.Move, hint board.Square) priority {
	if hint != board.InvalidSquare && m.From == hint {
		return 1 << 20
	}
	return priority(board.CaptureValueOf(m.Capture))
}

// next pops the highest-priority remaining move.
func (ml *moveList) next() (board.Move, bool) {
	if ml.h.Len() == 0 {
		return board.InvalidMove, false
	}
	e := heap.Pop(&ml.h).(elm)
	return e.m, true
}

type elm struct {
	m   board.Move
	val priority
}

type moveHeap []elm

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].val > h[j].val }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { *h = append(*h, x.(elm)) }
func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// orderedMoves drains a fresh moveList into a slice, used wherever the
// caller needs to range over moves in priority order rather than pop one
// at a time (the negamax move loop needs the index for late move
// reduction's lateMoveIndex cutoff).
func orderedMoves(moves []board.Move, hint board.Square) []board.Move {
	ml := newMoveList(moves, hint)
	out := make([]board.Move, 0, len(moves))
	for {
		m, ok := ml.next()
		if !ok {
			break
		}
		out = append(out, m)
	}
	return out
}
