// Package chess implements a bitboard-backed chess position representation,
// a complete pseudo-legal and legal move generator for orthodox chess (with
// Chess960 castling support), and a stateful Board that can push/pop moves,
// read and write FEN/EPD, parse and format SAN/UCI/XBoard, validate
// positions, and reason about draws and game termination.
package chess

import "fmt"

// Bitboard is a 64-bit mask; bit i is set iff square i belongs to the set
// the bitboard represents. A Bitboard carries no type information of its
// own — callers interpret the bits against whatever piece/color/ray meaning
// is appropriate.
type Bitboard uint64

// Empty and All are the two degenerate bitboards.
const (
	Empty Bitboard = 0
	All   Bitboard = 0xFFFFFFFFFFFFFFFF
)

// Square is a board square, 0..63, file in the low 3 bits and rank in the
// next 3: A1=0, H1=7, A8=56, H8=63.
type Square int8

// NoSquare is the sentinel for "no square" (e.g. no en passant target).
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File is a board file, 0 (a) .. 7 (h).
type File int8

// Rank is a board rank, 0 (rank 1) .. 7 (rank 8).
type Rank int8

// File returns the file of the square.
func (s Square) File() File { return File(s & 7) }

// Rank returns the rank of the square.
func (s Square) Rank() Rank { return Rank(s >> 3) }

// NewSquare builds the square at the given file and rank.
func NewSquare(f File, r Rank) Square { return Square(int8(r)<<3 | int8(f)) }

var fileNames = "abcdefgh"

func (f File) String() string { return string(fileNames[f]) }
func (r Rank) String() string { return string(rune('1' + r)) }

// String returns the two-character algebraic name of the square, or "-" for
// NoSquare.
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return s.File().String() + s.Rank().String()
}

// ParseSquare parses a two-character algebraic square name ("-" yields
// NoSquare).
func ParseSquare(s string) (Square, error) {
	if s == "-" {
		return NoSquare, nil
	}
	if len(s) != 2 {
		return NoSquare, newValueError("invalid square %q", s)
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare, newValueError("invalid square %q", s)
	}
	return NewSquare(File(f-'a'), Rank(r-'1')), nil
}

// Bb returns the singleton bitboard for this square. NoSquare returns Empty.
func (s Square) Bb() Bitboard {
	if s == NoSquare {
		return Empty
	}
	return Bitboard(1) << uint(s)
}

// Color is one of the two sides. White is index 0 here rather than the
// "true"/index-1 side spec.md's convention names; the two boolean-like
// values are otherwise interchangeable, and occupiedCo/pawnAttacks arrays
// throughout this module are indexed consistently with White==0.
type Color int8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType is one of the six piece kinds.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = -1
)

var pieceTypeLetters = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

func (pt PieceType) String() string {
	if pt < Pawn || pt > King {
		return ""
	}
	return string(pieceTypeLetters[pt])
}

// ParsePieceType parses a single case-insensitive piece letter (pnbrqk).
func ParsePieceType(c byte) (PieceType, error) {
	switch c {
	case 'p', 'P':
		return Pawn, nil
	case 'n', 'N':
		return Knight, nil
	case 'b', 'B':
		return Bishop, nil
	case 'r', 'R':
		return Rook, nil
	case 'q', 'Q':
		return Queen, nil
	case 'k', 'K':
		return King, nil
	}
	return NoPieceType, newValueError("invalid piece letter %q", c)
}

// Piece is a (PieceType, Color) pair.
type Piece struct {
	Type  PieceType
	Color Color
}

// Symbol returns the piece's FEN letter: upper-case for White, lower-case
// for Black.
func (p Piece) Symbol() byte {
	c := pieceTypeLetters[p.Type]
	if p.Color == Black {
		c += 'a' - 'A'
	}
	return c
}

func (p Piece) String() string { return string(p.Symbol()) }

// ParsePiece parses a single FEN piece letter.
func ParsePiece(c byte) (Piece, error) {
	pt, err := ParsePieceType(c)
	if err != nil {
		return Piece{}, err
	}
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
	}
	return Piece{Type: pt, Color: color}, nil
}

// CastlingRights is a subset of squares holding rooks that currently retain
// castling rights (spec.md §3/§4.7) — the source of truth is which rook
// squares are marked, not a 4-bit KQkq flag set, so Chess960 rook choice is
// represented without extra machinery.
type CastlingRights = Bitboard

// String implements fmt.Stringer for debugging.
func (b Bitboard) String() string { return fmt.Sprintf("%064b", uint64(b)) }
