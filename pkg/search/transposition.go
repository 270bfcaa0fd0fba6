package search

import (
	"context"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/clementvp/mcu-max/pkg/board"
	"github.com/seekerror/logw"
)

// Bound records whether a stored score is exact or merely a bound,
// matching the two bits the original packs into the stored move's
// from-byte (0x08 upper-bound, 0x80 lower-bound).
type Bound uint8

const (
	ExactBound Bound = iota
	UpperBound
	LowerBound
)

type entry struct {
	key2  uint32
	bound Bound
	depth int
	score board.Score
	move  board.Move
}

// Table is the optional transposition-table accelerator described in the
// spec: entries are keyed by Hasher.Key modulo the table size and
// verified against Hasher.Key2 before use, so a key collision costs only
// a redo, never a wrong answer. Lock-free: concurrent Read/Write from
// multiple Engines sharing a Table never torn-read an entry, following
// the same atomic-pointer swap idiom as a conventional Go engine's TT.
type Table struct {
	slots []unsafe.Pointer // *entry
	mask  uint32
}

// NewTable allocates a table sized to the next power of two number of
// entries at or below sizeBytes/entrySize.
func NewTable(ctx context.Context, sizeBytes uint64) *Table {
	const entrySize = 40
	n := sizeBytes / entrySize
	if n < 1 {
		n = 1
	}
	pow := uint64(1) << (63 - bits.LeadingZeros64(n))

	logw.Infof(ctx, "allocating transposition table: %v entries", pow)

	return &Table{
		slots: make([]unsafe.Pointer, pow),
		mask:  uint32(pow - 1),
	}
}

func (t *Table) Read(key, key2 uint32) (entry, bool) {
	slot := (*entry)(atomic.LoadPointer(&t.slots[key&t.mask]))
	if slot == nil || slot.key2 != key2 {
		return entry{}, false
	}
	return *slot, true
}

func (t *Table) Write(key, key2 uint32, bound Bound, depth int, score board.Score, move board.Move) {
	fresh := &entry{key2: key2, bound: bound, depth: depth, score: score, move: move}
	idx := key & t.mask
	for {
		old := atomic.LoadPointer(&t.slots[idx])
		if old != nil && (*entry)(old).depth > depth {
			return // keep the deeper, more informative entry
		}
		if atomic.CompareAndSwapPointer(&t.slots[idx], old, unsafe.Pointer(fresh)) {
			return
		}
	}
}

// Probe checks the table for a usable bound against the current
// (alpha, beta) window, returning the stored move for ordering even on a
// window mismatch (a stale move is still a reasonable guess).
func (t *Table) Probe(h *board.Hasher, depth int, alpha, beta board.Score) (board.Score, board.Move, bool, bool) {
	if t == nil || h == nil {
		return 0, board.InvalidMove, false, false
	}
	e, ok := t.Read(h.Key, h.Key2)
	if !ok {
		return 0, board.InvalidMove, false, false
	}
	if e.depth < depth {
		return 0, e.move, false, true
	}
	switch e.bound {
	case ExactBound:
		return e.score, e.move, true, true
	case LowerBound:
		if e.score >= beta {
			return e.score, e.move, true, true
		}
	case UpperBound:
		if e.score <= alpha {
			return e.score, e.move, true, true
		}
	}
	return 0, e.move, false, true
}
