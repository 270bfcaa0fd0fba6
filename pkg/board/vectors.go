package board

// Step vectors are square-offsets, not file/rank pairs, so they can be
// added directly to a Square and validated with IsValid. "Up" (toward
// rank 8) is -0x10 because Square's rank nibble counts down from Black's
// back rank; see square.go.
const (
	stepUp        = -0x10
	stepDown      = 0x10
	stepLeft      = -0x01
	stepRight     = 0x01
	stepUpLeft    = stepUp + stepLeft
	stepUpRight   = stepUp + stepRight
	stepDownLeft  = stepDown + stepLeft
	stepDownRight = stepDown + stepRight
)

// A vector describes one move-generation ray or leap for a piece kind.
//   Step:        the square offset.
//   Slider:      true if the ray repeats until blocked (bishop/rook/queen).
//   CaptureOnly: for pawns, restricts the step to capture-only (diagonal)
//                use; false for all other kinds.
//   PushOnly:    for pawns, restricts the step to push-only (straight
//                ahead) use; false for all other kinds.
type vector struct {
	Step        int
	Slider      bool
	CaptureOnly bool
	PushOnly    bool
}

// vectorsFor returns the step vectors for a kind, oriented for the given
// color (pawn vectors flip with color; everything else is symmetric).
func vectorsFor(k Kind, c Color) []vector {
	switch k {
	case PawnUpstream, PawnDownstream:
		if c == White {
			return whitePawnVectors
		}
		return blackPawnVectors
	case Knight:
		return knightVectors
	case King:
		return kingVectors
	case Bishop:
		return bishopVectors
	case Rook:
		return rookVectors
	case Queen:
		return queenVectors
	default:
		return nil
	}
}

var whitePawnVectors = []vector{
	{Step: stepUp, PushOnly: true},
	{Step: stepUpLeft, CaptureOnly: true},
	{Step: stepUpRight, CaptureOnly: true},
}

var blackPawnVectors = []vector{
	{Step: stepDown, PushOnly: true},
	{Step: stepDownLeft, CaptureOnly: true},
	{Step: stepDownRight, CaptureOnly: true},
}

var knightVectors = []vector{
	{Step: -33}, {Step: -31}, {Step: -18}, {Step: -14},
	{Step: 14}, {Step: 18}, {Step: 31}, {Step: 33},
}

var kingVectors = []vector{
	{Step: stepUp}, {Step: stepDown}, {Step: stepLeft}, {Step: stepRight},
	{Step: stepUpLeft}, {Step: stepUpRight}, {Step: stepDownLeft}, {Step: stepDownRight},
}

var bishopVectors = []vector{
	{Step: stepUpLeft, Slider: true},
	{Step: stepUpRight, Slider: true},
	{Step: stepDownLeft, Slider: true},
	{Step: stepDownRight, Slider: true},
}

var rookVectors = []vector{
	{Step: stepUp, Slider: true},
	{Step: stepDown, Slider: true},
	{Step: stepLeft, Slider: true},
	{Step: stepRight, Slider: true},
}

var queenVectors = append(append([]vector{}, rookVectors...), bishopVectors...)

// pawnDoubleStep is the offset of a pawn's initial two-square advance, and
// pawnHomeRank is the rank it starts on, per color.
func pawnDoubleStep(c Color) int {
	if c == White {
		return 2 * stepUp
	}
	return 2 * stepDown
}

func pawnHomeRank(c Color) Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

func pawnPromotionRank(c Color) Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}
