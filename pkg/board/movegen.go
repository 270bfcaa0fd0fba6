package board

// scanOrder is the deterministic square-visiting order used by move
// generation: start at square 0 and repeatedly step by 9, masking off bit
// 0x08 after each step. The mask absorbs the carry a +9 step can push into
// the file's high bit, so the sequence walks all 64 valid squares before
// repeating despite never testing validity in the stride itself. This is
// the classic micro-Max traversal, kept because the ordering guarantee
// (enumeration is deterministic) is part of the contract move-ordering and
// perft callers rely on.
var scanOrder [64]Square

func init() {
	sq := Square(0)
	for i := range scanOrder {
		for !sq.IsValid() {
			sq = Square((int(sq) + 9) &^ 8)
		}
		scanOrder[i] = sq
		sq = Square((int(sq) + 9) &^ 8)
	}
}

// startingAt rotates scanOrder so iteration begins at the given square, a
// move-ordering hint fed in by the search's replay mechanism. If hint
// isn't in scanOrder (e.g. InvalidSquare), iteration simply starts at
// index 0.
func startingAt(hint Square) []Square {
	start := 0
	for i, sq := range scanOrder {
		if sq == hint {
			start = i
			break
		}
	}
	out := make([]Square, 0, 64)
	out = append(out, scanOrder[start:]...)
	out = append(out, scanOrder[:start]...)
	return out
}

// PseudoLegalMoves enumerates moves for side without verifying the own
// king ends up safe — that check is LegalMoves' job, via IsAttacked after
// a trial Apply. hint, if valid, reorders the scan to visit that square first,
// implementing the replay-hint ordering guarantee without mutating shared
// state.
func (p *Position) PseudoLegalMoves(side Color, hint Square) []Move {
	var moves []Move
	for _, from := range startingAt(hint) {
		cell := p.cells[from]
		if !cell.IsColor(side) {
			continue
		}
		moves = append(moves, p.pieceMoves(from, cell, side)...)
	}
	return moves
}

func (p *Position) pieceMoves(from Square, cell Cell, side Color) []Move {
	var moves []Move
	kind := cell.Kind()

	if kind == King {
		moves = append(moves, p.castlingMoves(from, side)...)
	}

	for _, v := range vectorsFor(kind, side) {
		to := from
		first := true
		for {
			to = to.Offset(v.Step)
			if !to.IsValid() {
				break
			}
			target := p.cells[to]

			if kind.IsPawn() {
				if v.PushOnly {
					if !target.IsEmpty() {
						break
					}
					moves = append(moves, p.pawnMoves(from, to, side, Empty)...)
					if first && from.Rank() == pawnHomeRank(side) {
						double := from.Offset(pawnDoubleStep(side))
						if p.cells[double].IsEmpty() {
							moves = append(moves, Move{From: from, To: double, Type: DoublePawnPush})
						}
					}
				} else {
					if to == p.EnPassant && p.EnPassant != InvalidSquare {
						moves = append(moves, Move{From: from, To: to, Type: EnPassant, Capture: PawnForward(side.Opponent())})
					} else if !target.IsEmpty() && target.Color() != side {
						moves = append(moves, p.pawnMoves(from, to, side, target.Kind())...)
					}
				}
				break // pawn rays never continue past one step
			}

			if target.IsEmpty() {
				moves = append(moves, Move{From: from, To: to, Capture: Empty})
			} else {
				if target.Color() != side {
					moves = append(moves, Move{From: from, To: to, Capture: target.Kind()})
				}
				break
			}

			if !v.Slider {
				break
			}
			first = false
		}
	}
	return moves
}

func (p *Position) pawnMoves(from, to Square, side Color, capture Kind) []Move {
	if to.Rank() == pawnPromotionRank(side) {
		return []Move{{From: from, To: to, Type: Promotion, Capture: capture}}
	}
	return []Move{{From: from, To: to, Capture: capture}}
}

// castlingMoves generates 0, 1 or 2 castling moves for the king on its
// home square, applying full FIDE legality (king and rook unmoved, empty
// squares between them, king not in, through, or landing in check) per
// the reimplementation license noted against the original's narrower
// "bad castling" heuristic.
func (p *Position) castlingMoves(from Square, side Color) []Move {
	if from != kingHome(side) || p.cells[from].HasMoved() {
		return nil
	}
	if p.IsAttacked(from, side.Opponent()) {
		return nil
	}

	var moves []Move
	if m, ok := p.castlingMove(from, side, CastleKingSide); ok {
		moves = append(moves, m)
	}
	if m, ok := p.castlingMove(from, side, CastleQueenSide); ok {
		moves = append(moves, m)
	}
	return moves
}

func (p *Position) castlingMove(kingSq Square, side Color, which MoveType) (Move, bool) {
	rookSq := rookHome(side, which)
	rook := p.cells[rookSq]
	if rook.Kind() != Rook || !rook.IsColor(side) || rook.HasMoved() {
		return Move{}, false
	}

	step := 1
	if which == CastleQueenSide {
		step = -1
	}

	// Squares strictly between king and rook must be empty.
	for sq := kingSq.Offset(step); sq != rookSq; sq = sq.Offset(step) {
		if !p.cells[sq].IsEmpty() {
			return Move{}, false
		}
	}

	kingTo := kingSq.Offset(2 * step)
	passThrough := kingSq.Offset(step)
	if p.IsAttacked(passThrough, side.Opponent()) || p.IsAttacked(kingTo, side.Opponent()) {
		return Move{}, false
	}

	return Move{From: kingSq, To: kingTo, Type: which}, true
}
