package board

import "fmt"

// Score is a signed evaluation in the engine's native units, where capture
// value dominates: the capture table is scaled by 37 so that even the
// smallest material gain outweighs the largest plausible positional delta.
// Positive favors the side to move.
type Score int32

// MateScore bounds the search window and scores a checkmate. It lies so
// far outside the real range (which tops out in the low thousands) that
// it can never be reached by material or positional accumulation.
const MateScore Score = 8000

// captureValue is indexed by Kind and scores the material gain of
// capturing a piece of that kind, in the units mcu-max uses internally:
// pawn undervalued relative to a linear scale on purpose, to discourage
// early trades. King's slot holds -1, kept from the original table; the
// king is excluded before any lookup.
var captureValue = [NumKinds]Score{
	Empty:          0,
	PawnUpstream:   2,
	PawnDownstream: 2,
	Knight:         7,
	King:           -1, // never reached directly; detected before lookup
	Bishop:         8,
	Rook:           12,
	Queen:          23,
}

// CaptureScale is the multiplier applied to captureValue so that the
// smallest capture dominates the largest positional term.
const CaptureScale Score = 37

// CaptureValueOf exposes captureValue to other packages (search's move
// loop, fen's non-pawn-material recompute) without letting them poke at
// the table itself.
func CaptureValueOf(k Kind) Score {
	return captureValue[k]
}

func (s Score) String() string {
	switch {
	case s >= MateScore:
		return "+mate"
	case s <= -MateScore:
		return "-mate"
	default:
		return fmt.Sprintf("%d", int(s))
	}
}
