package board

// Undo captures everything Apply touched so the position can be restored
// byte-for-byte, satisfying the perfect-undo invariant the search relies
// on to explore and retreat from a line without allocating a new Position
// per ply.
type Undo struct {
	move Move

	fromCell, toCell Cell
	rookFrom, rookTo Square
	rookFromCell     Cell

	epCaptureSquare Square
	epCaptureCell   Cell

	prevSide            Color
	prevScore           Score
	prevEnPassant       Square
	prevNonPawnMaterial Score
}

// Apply performs m in place and returns the state needed to undo it. It
// does not check legality beyond what PseudoLegalMoves already guaranteed
// structurally; a move that captures the opposing king is applied exactly
// like any other capture. Callers that need legal moves go through
// LegalMoves, which never yields such a move.
func (p *Position) Apply(m Move) Undo {
	u := Undo{
		move:                m,
		fromCell:            p.cells[m.From],
		toCell:              p.cells[m.To],
		rookFrom:            InvalidSquare,
		rookTo:              InvalidSquare,
		epCaptureSquare:     InvalidSquare,
		prevSide:            p.Side,
		prevScore:           p.Score,
		prevEnPassant:       p.EnPassant,
		prevNonPawnMaterial: p.NonPawnMaterial,
	}

	moving := p.cells[m.From]
	captured := p.cells[m.To]

	if !captured.IsEmpty() && captured.Kind() != King && !captured.Kind().IsPawn() {
		p.NonPawnMaterial -= captureValue[captured.Kind()]
	}

	p.setCell(m.From, Cell(Empty))

	switch m.Type {
	case EnPassant:
		capSq := m.To
		if p.Side == White {
			capSq = capSq.Offset(stepDown)
		} else {
			capSq = capSq.Offset(stepUp)
		}
		u.epCaptureSquare = capSq
		u.epCaptureCell = p.cells[capSq]
		p.setCell(capSq, Cell(Empty))
		p.setCell(m.To, moving.WithMoved())

	case Promotion:
		p.setCell(m.To, moving.WithKind(Queen).WithMoved())
		p.NonPawnMaterial += captureValue[Queen]

	case CastleKingSide, CastleQueenSide:
		u.rookFrom = rookHome(p.Side, m.Type)
		u.rookFromCell = p.cells[u.rookFrom]
		u.rookTo = m.From.Offset(sign(int(m.To) - int(m.From)))
		p.setCell(m.To, moving.WithMoved())
		p.setCell(u.rookTo, p.cells[u.rookFrom].WithMoved())
		p.setCell(u.rookFrom, Cell(Empty))

	default:
		p.setCell(m.To, moving.WithMoved())
	}

	if m.Type == DoublePawnPush {
		mid := m.From
		if p.Side == White {
			mid = mid.Offset(stepUp)
		} else {
			mid = mid.Offset(stepDown)
		}
		p.EnPassant = mid
	} else {
		p.EnPassant = InvalidSquare
	}

	p.Side = p.Side.Opponent()
	return u
}

// Undo restores the position to exactly its state before the Apply call
// that produced u.
func (p *Position) Undo(u Undo) {
	m := u.move

	p.setCell(m.From, u.fromCell)
	p.setCell(m.To, u.toCell)
	if u.rookFrom != InvalidSquare {
		p.setCell(u.rookFrom, u.rookFromCell)
		p.setCell(u.rookTo, Cell(Empty))
	}
	if u.epCaptureSquare != InvalidSquare {
		p.setCell(u.epCaptureSquare, u.epCaptureCell)
	}

	p.Side = u.prevSide
	p.Score = u.prevScore
	p.EnPassant = u.prevEnPassant
	p.NonPawnMaterial = u.prevNonPawnMaterial
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
