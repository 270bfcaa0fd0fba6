// Package fen reads and writes chess positions in Forsyth-Edwards
// Notation. Decode is deliberately lenient: it is the position-setting
// entry point for a device with no way to surface a parse dialog, so
// unrecognized characters are skipped rather than treated as fatal, and
// only a structurally wrong field count is reported as an error.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clementvp/mcu-max/pkg/board"
)

// Initial is the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string into a fresh Position and the side to move.
// Piece placement, side to move, castling rights and the en-passant
// target are honored; the half-move and full-move fields must be present
// but are not read, since the Position does not track them.
func Decode(s string) (*board.Position, board.Color, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 6 {
		return nil, board.White, fmt.Errorf("fen: want 6 fields, got %d: %q", len(fields), s)
	}

	pos := board.NewPosition()
	pos.ClearAll()

	decodePlacement(pos, fields[0])

	side := board.White
	if fields[1] == "b" {
		side = board.Black
	}
	pos.Side = side

	applyCastlingRights(pos, fields[2])

	pos.EnPassant = board.InvalidSquare
	if fields[3] != "-" {
		if sq, err := board.ParseSquareStr(fields[3]); err == nil {
			pos.EnPassant = sq
		}
	}

	pos.Score = 0
	pos.NonPawnMaterial = nonPawnMaterialOf(pos)

	return pos, side, nil
}

func decodePlacement(pos *board.Position, field string) {
	r, f := 0, 0
	for _, ch := range field {
		switch {
		case ch == '/':
			r++
			f = 0
		case ch >= '1' && ch <= '8':
			f += int(ch - '0')
		default:
			color := board.Black
			if ch >= 'A' && ch <= 'Z' {
				color = board.White
			}
			if kind, ok := board.ParseKind(ch, color); ok && f < 8 && r < 8 {
				sq := board.NewSquare(board.File(f), board.Rank(7-r))
				pos.SetCell(sq, board.NewCell(kind, color).WithMoved())
			}
			f++
		}
	}
}

// applyCastlingRights clears the has-moved flag on the king/rook home
// squares named by the KQkq field, exactly as the spec describes: castling
// rights are not a separate bitmask, they are read back from has-moved.
func applyCastlingRights(pos *board.Position, field string) {
	for _, ch := range field {
		switch ch {
		case 'K':
			pos.ClearMoved(board.E1)
			pos.ClearMoved(board.H1)
		case 'Q':
			pos.ClearMoved(board.E1)
			pos.ClearMoved(board.A1)
		case 'k':
			pos.ClearMoved(board.E8)
			pos.ClearMoved(board.H8)
		case 'q':
			pos.ClearMoved(board.E8)
			pos.ClearMoved(board.A8)
		}
	}
}

func nonPawnMaterialOf(pos *board.Position) board.Score {
	var total board.Score
	for r := board.Rank(0); r < 8; r++ {
		for f := board.File(0); f < 8; f++ {
			c := pos.Cell(board.NewSquare(f, r))
			if !c.IsEmpty() && !c.Kind().IsPawn() && c.Kind() != board.King {
				total += board.CaptureValueOf(c.Kind())
			}
		}
	}
	return total
}

// Encode emits pos in standard six-field FEN. Promotion having always
// resolved to queen on application, there is nothing promotion-specific
// to reconstruct. Half-move clock and full-move number are not tracked by
// the core and are always emitted as "0 1".
func Encode(pos *board.Position, side board.Color) string {
	var sb strings.Builder

	for r := board.Rank(7); ; r-- {
		empty := 0
		for f := board.File(0); f < 8; f++ {
			c := pos.Cell(board.NewSquare(f, r))
			if c.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pieceLetter(c))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == 0 {
			break
		}
		sb.WriteByte('/')
	}

	sb.WriteByte(' ')
	sb.WriteString(side.String())

	sb.WriteByte(' ')
	sb.WriteString(castlingRightsOf(pos))

	sb.WriteByte(' ')
	if pos.EnPassant == board.InvalidSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(pos.EnPassant.String())
	}

	sb.WriteString(" 0 1")
	return sb.String()
}

func pieceLetter(c board.Cell) string {
	letter := c.Kind().String()
	if c.Color() == board.White {
		return strings.ToUpper(letter)
	}
	return letter
}

func castlingRightsOf(pos *board.Position) string {
	var sb strings.Builder
	if !pos.Cell(board.E1).HasMoved() && !pos.Cell(board.H1).HasMoved() && pos.Cell(board.H1).Kind() == board.Rook {
		sb.WriteByte('K')
	}
	if !pos.Cell(board.E1).HasMoved() && !pos.Cell(board.A1).HasMoved() && pos.Cell(board.A1).Kind() == board.Rook {
		sb.WriteByte('Q')
	}
	if !pos.Cell(board.E8).HasMoved() && !pos.Cell(board.H8).HasMoved() && pos.Cell(board.H8).Kind() == board.Rook {
		sb.WriteByte('k')
	}
	if !pos.Cell(board.E8).HasMoved() && !pos.Cell(board.A8).HasMoved() && pos.Cell(board.A8).Kind() == board.Rook {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
