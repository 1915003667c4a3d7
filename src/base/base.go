package base

import (
	"fmt"
	"strings"
)

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type Role uint8

const (
	NoRole Role = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (r Role) String() string {
	switch r {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Rune returns the SAN letter of the role, lowercased ('p', 'n', ...).
func (r Role) Rune() rune {
	switch r {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	default:
		return '.'
	}
}

// Piece is a role/color pair. The zero value (NoRole) means "no piece".
type Piece struct {
	Role  Role
	Color Color
}

var NoPiece = Piece{}

func (p Piece) IsValid() bool {
	return p.Role != NoRole
}

func (p Piece) Rune() rune {
	r := p.Role.Rune()
	if p.Color == White && p.Role != NoRole {
		return r - 'a' + 'A'
	}
	return r
}

func PieceFromRune(r rune) Piece {
	c := Black
	if r >= 'A' && r <= 'Z' {
		c = White
		r = r - 'A' + 'a'
	}
	switch r {
	case 'p':
		return Piece{Pawn, c}
	case 'n':
		return Piece{Knight, c}
	case 'b':
		return Piece{Bishop, c}
	case 'r':
		return Piece{Rook, c}
	case 'q':
		return Piece{Queen, c}
	case 'k':
		return Piece{King, c}
	default:
		return NoPiece
	}
}

// Square indexes the board 0..63, a1=0, b1=1, ..., h8=63.
type Square uint8

func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

func (s Square) File() int {
	return int(s) % 8
}

func (s Square) Rank() int {
	return int(s) / 8
}

// Distance is the Chebyshev (king move) distance between two squares.
func (s Square) Distance(o Square) int {
	df := s.File() - o.File()
	dr := s.Rank() - o.Rank()
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

func (s Square) String() string {
	return string([]rune{rune(s.File() + 'a'), rune(s.Rank() + '1')})
}

func SquareFromAlgebraic(pos string) (Square, error) {
	// 'a' ~ 'h' to 0-7
	// '1' ~ '8' to 0-7
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return 0, fmt.Errorf("invalid position %q", pos)
	}
	return Square(int(pos[1]-'1')*8 + int(pos[0]-'a')), nil
}

// Move is a user move candidate. Promotion is NoRole unless the move
// carries an explicit promotion choice.
type Move struct {
	From      Square
	To        Square
	Promotion Role
}

func (m Move) String() string {
	if m.Promotion != NoRole {
		return m.From.String() + m.To.String() + string(m.Promotion.Rune())
	}
	return m.From.String() + m.To.String()
}

// Placement maps occupied squares to pieces. Squares absent from the map
// are empty.
type Placement map[Square]Piece

func (p Placement) Clone() Placement {
	c := make(Placement, len(p))
	for sq, pc := range p {
		c[sq] = pc
	}
	return c
}

// FEN renders the placement as a full FEN record with the given side to
// move and no castling or en-passant rights, the shape a board editor
// exports.
func (p Placement) FEN(turn Color) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc, ok := p[NewSquare(file, rank)]
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pc.Rune())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if turn == Black {
		sb.WriteString(" b - - 0 1")
	} else {
		sb.WriteString(" w - - 0 1")
	}
	return sb.String()
}

// StartingPlacement returns the classic initial setup.
func StartingPlacement() Placement {
	p := make(Placement, 32)
	back := []Role{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		p[NewSquare(file, 0)] = Piece{back[file], White}
		p[NewSquare(file, 1)] = Piece{Pawn, White}
		p[NewSquare(file, 6)] = Piece{Pawn, Black}
		p[NewSquare(file, 7)] = Piece{back[file], Black}
	}
	return p
}
