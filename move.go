package chess

import "strings"

// Move is (from, to, promotion?, drop?). A drop is encoded with From==To;
// the null move is NullMove (From==To==A1, Promotion and Drop both
// NoPieceType) and is distinguished from a genuine A1 drop by its Drop
// field. The zero value Move{} is not the null move, since the zero
// PieceType is Pawn. Grounded on the teacher's move.go
// (S1/S2/Promo/HasTag accessors), reworked from a pointer-based struct
// carrying a cached MoveTag bitmask into a small value type: BaseBoard and
// Board recompute capture/check/castle facts from the position rather than
// stashing them on the move itself, so Move stays comparable with ==.
type Move struct {
	From       Square
	To         Square
	Promotion  PieceType // NoPieceType if none
	Drop       PieceType // NoPieceType if not a drop
}

// NullMove is the move with no effect, used as a pass in variants that allow
// it and as a sentinel in some EPD/SAN contexts.
var NullMove = Move{From: A1, To: A1, Promotion: NoPieceType, Drop: NoPieceType}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool { return m == NullMove }

// UCI renders the move as "from to [promo]" for a normal move, "P@sq" for a
// drop, or "0000" for the null move.
func (m Move) UCI() string {
	if m.IsNull() {
		return "0000"
	}
	if m.Drop != NoPieceType {
		return strings.ToUpper(m.Drop.String()) + "@" + m.To.String()
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += strings.ToLower(m.Promotion.String())
	}
	return s
}

// XBoard renders the move UCI-style except the null move spells "@@@@".
func (m Move) XBoard() string {
	if m.IsNull() {
		return "@@@@"
	}
	return m.UCI()
}

// String implements fmt.Stringer as the move's UCI text.
func (m Move) String() string { return m.UCI() }

// ParseUCI parses "from to [promo]", "P@sq", or "0000". It rejects
// From==To for anything other than the null move or a drop.
func ParseUCI(s string) (Move, error) {
	if s == "0000" {
		return NullMove, nil
	}
	if len(s) >= 4 && s[1] == '@' {
		pt, err := ParsePieceType(s[0])
		if err != nil {
			return Move{}, newInvalidMoveError(s, "invalid drop piece: %w", err)
		}
		to, err := ParseSquare(s[2:4])
		if err != nil {
			return Move{}, newInvalidMoveError(s, "invalid drop square: %w", err)
		}
		return Move{From: to, To: to, Promotion: NoPieceType, Drop: pt}, nil
	}
	if len(s) != 4 && len(s) != 5 {
		return Move{}, newInvalidMoveError(s, "wrong length for a UCI move")
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, newInvalidMoveError(s, "invalid from-square: %w", err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, newInvalidMoveError(s, "invalid to-square: %w", err)
	}
	promo := NoPieceType
	if len(s) == 5 {
		promo, err = ParsePieceType(s[4])
		if err != nil {
			return Move{}, newInvalidMoveError(s, "invalid promotion letter: %w", err)
		}
	}
	if from == to {
		return Move{}, newInvalidMoveError(s, "from and to squares are equal")
	}
	return Move{From: from, To: to, Promotion: promo, Drop: NoPieceType}, nil
}
