package search

import "github.com/clementvp/mcu-max/pkg/board"

// evaluate scores the position from side's perspective: material (via the
// capture-value table, scaled the same way a capture is scored mid-search
// so the two stay on one scale), piece-square placement from the shared
// weight table, and the pawn-structure and king-safety terms the original
// folds into the same pass.
func evaluate(pos *board.Position, side board.Color) board.Score {
	var score board.Score

	for r := board.Rank(0); r < 8; r++ {
		for f := board.File(0); f < 8; f++ {
			sq := board.NewSquare(f, r)
			c := pos.Cell(sq)
			if c.IsEmpty() {
				continue
			}

			unit := board.Score(1)
			if c.Color() != side {
				unit = -1
			}

			if c.Kind() != board.King {
				score += unit * board.CaptureValueOf(c.Kind()) * board.CaptureScale
			}
			score += unit * board.PositionalWeight(sq)

			if c.Kind().IsPawn() {
				score += unit * pawnStructureTerm(pos, sq, c)
			}
		}
	}

	score += kingSafetyTerm(pos, side)

	return score
}

// pawnStructureTerm penalizes doubled and isolated pawns and, in the
// endgame, penalizes every pawn by its file-plus-rank distance from its
// own king, mirroring the original's folded-in pawn heuristics.
func pawnStructureTerm(pos *board.Position, sq board.Square, c board.Cell) board.Score {
	var penalty board.Score

	doubled := false
	isolated := true
	for r := board.Rank(0); r < 8; r++ {
		other := board.NewSquare(sq.File(), r)
		if other == sq {
			continue
		}
		oc := pos.Cell(other)
		if oc.Kind() == c.Kind() && oc.Color() == c.Color() {
			doubled = true
		}
	}
	for _, df := range []int{-1, 1} {
		nf := int(sq.File()) + df
		if nf < 0 || nf > 7 {
			continue
		}
		for r := board.Rank(0); r < 8; r++ {
			oc := pos.Cell(board.NewSquare(board.File(nf), r))
			if oc.Kind().IsPawn() && oc.Color() == c.Color() {
				isolated = false
			}
		}
	}
	if doubled {
		penalty -= 2 * board.CaptureScale
	}
	if isolated {
		penalty -= board.CaptureScale
	}

	if pos.NonPawnMaterial < endgameMaterialThreshold {
		kingSq := pos.KingSquare(c.Color())
		dist := fileDistance(sq, kingSq) + rankDistance(sq, kingSq)
		penalty -= board.Score(dist)
	}

	return penalty
}

// kingSafetyTerm discourages the king from stepping away from its back
// rank while material remains on the board; the term vanishes in the
// endgame, where king activity is an asset rather than a liability.
func kingSafetyTerm(pos *board.Position, side board.Color) board.Score {
	if pos.NonPawnMaterial < endgameMaterialThreshold {
		return 0
	}
	var score board.Score
	for _, c := range []board.Color{board.White, board.Black} {
		unit := board.Score(1)
		if c != side {
			unit = -1
		}
		kingSq := pos.KingSquare(c)
		homeRank := board.Rank1
		if c == board.Black {
			homeRank = board.Rank8
		}
		if kingSq.Rank() != homeRank {
			score -= unit * board.CaptureScale
		}
	}
	return score
}

func fileDistance(a, b board.Square) int {
	d := int(a.File()) - int(b.File())
	if d < 0 {
		return -d
	}
	return d
}

func rankDistance(a, b board.Square) int {
	d := int(a.Rank()) - int(b.Rank())
	if d < 0 {
		return -d
	}
	return d
}

// endgameMaterialThreshold gates null-move pruning and the pawn-clings-to-
// king / king-safety terms: null-move pruning needs non-pawn material
// above it, per the original's non_pawn_material > 35 test, while the
// evaluation switches to its endgame terms only strictly below it.
const endgameMaterialThreshold board.Score = 35
