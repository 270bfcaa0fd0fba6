package board

import "fmt"

// Square represents a square on the board in 0x88 encoding: 0xRF, where F is
// the file (0-7) in the low nibble and R is the rank in the high nibble,
// counted from Black's back rank (R=0 is rank 8, R=7 is rank 1) so that it
// increases in the direction a White pawn moves *away* from. The scheme
// wastes half the byte space (files 8-15 of each row are never addressed)
// but turns off-board detection into a single mask: a Square is off-board
// iff Square&0x88 != 0. 8 bits.
type Square uint8

const (
	InvalidSquare Square = 0x80
)

const (
	A1 Square = 0x70
	B1 Square = 0x71
	C1 Square = 0x72
	D1 Square = 0x73
	E1 Square = 0x74
	F1 Square = 0x75
	G1 Square = 0x76
	H1 Square = 0x77

	A2 Square = 0x60
	B2 Square = 0x61
	C2 Square = 0x62
	D2 Square = 0x63
	E2 Square = 0x64
	F2 Square = 0x65
	G2 Square = 0x66
	H2 Square = 0x67

	C3 Square = 0x52
	D3 Square = 0x53
	E3 Square = 0x54

	D4 Square = 0x43
	E4 Square = 0x44

	D5 Square = 0x33
	E5 Square = 0x34

	A6 Square = 0x20
	D6 Square = 0x23

	A7 Square = 0x10
	B7 Square = 0x11
	C7 Square = 0x12
	D7 Square = 0x13
	E7 Square = 0x14
	F7 Square = 0x15
	G7 Square = 0x16
	H7 Square = 0x17

	A8 Square = 0x00
	B8 Square = 0x01
	C8 Square = 0x02
	D8 Square = 0x03
	E8 Square = 0x04
	F8 Square = 0x05
	G8 Square = 0x06
	H8 Square = 0x07
)

// NewSquare builds a Square from a 0-based file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(((7 - Square(r)) << 4) | Square(f))
}

func ParseSquare(f, r rune) (Square, error) {
	file, ok := ParseFile(f)
	if !ok {
		return InvalidSquare, fmt.Errorf("invalid file: %v", f)
	}
	rank, ok := ParseRank(r)
	if !ok {
		return InvalidSquare, fmt.Errorf("invalid rank: %v", r)
	}
	return NewSquare(file, rank), nil
}

func ParseSquareStr(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return InvalidSquare, fmt.Errorf("invalid square: %v", str)
	}
	return ParseSquare(runes[0], runes[1])
}

// IsValid reports whether the square lies on the 8x8 board. This is the
// 0x88 trick: any carry out of a rank or file during move generation sets
// one of these bits.
func (s Square) IsValid() bool {
	return s&0x88 == 0
}

func (s Square) Rank() Rank {
	return Rank(7 - ((s >> 4) & 0x7))
}

func (s Square) File() File {
	return File(s & 0x7)
}

// Offset returns s+d, without validity checking. Callers must check
// IsValid on the result before using it as a board index.
func (s Square) Offset(d int) Square {
	return Square(int(s) + d)
}

func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

// Rank represents a chess board rank, Rank1=0 .. Rank8=7. 3 bits.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

func ParseRank(r rune) (Rank, bool) {
	if r < '1' || r > '8' {
		return 0, false
	}
	return Rank(r - '1'), true
}

func (r Rank) IsValid() bool {
	return r <= Rank8
}

func (r Rank) V() int {
	return int(r)
}

func (r Rank) String() string {
	if !r.IsValid() {
		return "?"
	}
	return string(rune('1' + r))
}

// File represents a chess board file, FileA=0 .. FileH=7. 3 bits.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

func ParseFile(r rune) (File, bool) {
	switch r {
	case 'a', 'A':
		return FileA, true
	case 'b', 'B':
		return FileB, true
	case 'c', 'C':
		return FileC, true
	case 'd', 'D':
		return FileD, true
	case 'e', 'E':
		return FileE, true
	case 'f', 'F':
		return FileF, true
	case 'g', 'G':
		return FileG, true
	case 'h', 'H':
		return FileH, true
	default:
		return 0, false
	}
}

func (f File) IsValid() bool {
	return f <= FileH
}

func (f File) V() int {
	return int(f)
}

func (f File) String() string {
	if !f.IsValid() {
		return "?"
	}
	return string(rune('a' + f))
}
