package chess

import (
	"strconv"
	"strings"
)

// StartingFEN is the FEN of the standard starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// EPDisclosure selects which ep-square disclosure policy FEN() uses, per
// spec.md §4.7/§6: "legal" only shows the ep square when the capture is
// currently legal, "xfen" shows it whenever the capture is pseudo-legal,
// "fen" always echoes back whatever is stored.
type EPDisclosure int

const (
	EPLegal EPDisclosure = iota
	EPXFen
	EPFen
)

// FEN serializes the board with the default "legal" ep disclosure policy.
func (b *Board) FEN() string { return b.FENWithPolicy(EPLegal, false) }

// FENWithPolicy serializes the board, choosing the ep-square disclosure
// policy and optionally marking promoted pieces with '~' in the
// piece-placement field (an XFEN/Shredder extension, not standard FEN).
func (b *Board) FENWithPolicy(policy EPDisclosure, withPromoted bool) string {
	var sb strings.Builder
	sb.WriteString(b.boardFen(withPromoted))
	sb.WriteByte(' ')
	sb.WriteString(b.Turn.String())
	sb.WriteByte(' ')
	sb.WriteString(b.castlingFEN(false))
	sb.WriteByte(' ')
	sb.WriteString(b.epSquareFEN(policy))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveNumber))
	return sb.String()
}

// ShredderFEN serializes castling rights using file letters (A-H/a-h)
// instead of KQkq, per spec.md §6.
func (b *Board) ShredderFEN(policy EPDisclosure) string {
	var sb strings.Builder
	sb.WriteString(b.boardFen(false))
	sb.WriteByte(' ')
	sb.WriteString(b.Turn.String())
	sb.WriteByte(' ')
	sb.WriteString(b.castlingFEN(true))
	sb.WriteByte(' ')
	sb.WriteString(b.epSquareFEN(policy))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveNumber))
	return sb.String()
}

func (b *Board) castlingFEN(shredder bool) string {
	rights := b.cleanCastlingRights()
	if rights == 0 {
		return "-"
	}
	var sb strings.Builder
	for _, c := range [2]Color{White, Black} {
		backrank := rank1
		if c == Black {
			backrank = rank8
		}
		king, hasKing := b.king(c)
		colorRights := rights & backrank & b.occupiedCo[c]
		sc := colorRights.ScanReverse()
		var squares []Square
		for {
			sq, ok := sc.Next()
			if !ok {
				break
			}
			squares = append(squares, sq)
		}
		for i := 0; i < len(squares); i++ {
			sq := squares[i]
			var ch byte
			if shredder || b.Chess960 {
				ch = byte('A' + sq.File())
			} else if hasKing && sq < king {
				ch = 'Q'
			} else {
				ch = 'K'
			}
			if c == Black {
				ch += 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func (b *Board) epSquareFEN(policy EPDisclosure) string {
	if b.EpSquare == NoSquare {
		return "-"
	}
	switch policy {
	case EPFen:
		return b.EpSquare.String()
	case EPXFen:
		if b.hasPseudoLegalEnPassant() {
			return b.EpSquare.String()
		}
	default:
		if b.hasLegalEnPassant() {
			return b.EpSquare.String()
		}
	}
	return "-"
}

// SetFEN replaces the board's entire state (including clearing the move
// stack) by parsing fen.
func (b *Board) SetFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return newValueError("expected 6 FEN fields, got %d", len(fields))
	}

	if err := b.setBoardFen(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		b.Turn = White
	case "b":
		b.Turn = Black
	default:
		return newValueError("invalid side to move %q", fields[1])
	}

	rights, chess960, err := b.parseCastlingField(fields[2])
	if err != nil {
		return err
	}
	b.CastlingRights = rights
	b.Chess960 = b.Chess960 || chess960

	ep, err := ParseSquare(fields[3])
	if err != nil {
		return newValueError("invalid ep square %q", fields[3])
	}
	b.EpSquare = ep

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return newValueError("invalid halfmove clock %q", fields[4])
	}
	b.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 0 {
		return newValueError("invalid fullmove number %q", fields[5])
	}
	if fullmove == 0 {
		fullmove = 1
	}
	b.FullmoveNumber = fullmove

	b.clearStack()
	return nil
}

// parseCastlingField accepts both XFEN (KQkq) and Shredder (file letters)
// spellings, returning the stored rights as a subset of rook squares and
// whether the field implies Chess960 rook disambiguation.
func (b *Board) parseCastlingField(field string) (Bitboard, bool, error) {
	if field == "-" {
		return Empty, false, nil
	}
	var rights Bitboard
	shredder := false
	for i := 0; i < len(field); i++ {
		c := field[i]
		color := White
		letter := c
		if c >= 'a' && c <= 'z' {
			color = Black
			letter = c - ('a' - 'A')
		}
		backrank := rank1
		if color == Black {
			backrank = rank8
		}
		king, hasKing := b.king(color)
		switch letter {
		case 'K', 'Q':
			if !hasKing {
				return Empty, false, newValueError("castling field %q with no %v king", field, color)
			}
			rookRank := b.pieces[Rook] & b.occupiedCo[color] & backrank
			if letter == 'K' {
				side := rookRank &^ (king.Bb()<<1 - 1)
				if side == 0 {
					return Empty, false, newValueError("no kingside rook for castling field %q", field)
				}
				rights |= side.Msb().Bb()
			} else {
				side := rookRank & (king.Bb() - 1)
				if side == 0 {
					return Empty, false, newValueError("no queenside rook for castling field %q", field)
				}
				rights |= side.Lsb().Bb()
			}
		default:
			if letter < 'A' || letter > 'H' {
				return Empty, false, newValueError("invalid castling flag %q", field)
			}
			shredder = true
			sq := NewSquare(File(letter-'A'), backrankRank(color))
			rights |= sq.Bb()
		}
	}
	return rights, shredder, nil
}

func backrankRank(c Color) Rank {
	if c == Black {
		return 7
	}
	return 0
}
