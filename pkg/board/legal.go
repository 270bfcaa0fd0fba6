package board

// LegalMoves filters PseudoLegalMoves down to moves that do not leave the
// mover's own king attacked afterward. Castling's own legality (through
// and into check) is already enforced at generation time in
// castlingMoves, so this pass only needs the generic apply/check/undo
// trial that every other move kind requires.
func (p *Position) LegalMoves(side Color) []Move {
	pseudo := p.PseudoLegalMoves(side, InvalidSquare)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		u := p.Apply(m)
		if !p.IsAttacked(p.KingSquare(side), side.Opponent()) {
			legal = append(legal, m)
		}
		p.Undo(u)
	}
	return legal
}
