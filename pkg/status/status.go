// Package status answers the caller-facing legal-status questions the
// core search does not need for itself: is a side in check, checkmated,
// or stalemated. Checkmate and stalemate share a save/enumerate/restore
// scaffold; the search is not re-entered for this, since board.Position
// already exposes a filtered LegalMoves that trial-applies and undoes
// each candidate.
package status

import "github.com/clementvp/mcu-max/pkg/board"

// InCheck reports whether side's king is currently attacked.
func InCheck(pos *board.Position, side board.Color) bool {
	king := pos.KingSquare(side)
	if king == board.InvalidSquare {
		return false
	}
	return pos.IsAttacked(king, side.Opponent())
}

// IsCheckmate reports whether side is in check and has no legal reply.
func IsCheckmate(pos *board.Position, side board.Color) bool {
	return InCheck(pos, side) && len(pos.LegalMoves(side)) == 0
}

// IsStalemate reports whether side is not in check but has no legal
// reply.
func IsStalemate(pos *board.Position, side board.Color) bool {
	return !InCheck(pos, side) && len(pos.LegalMoves(side)) == 0
}
