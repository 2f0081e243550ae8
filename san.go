package chess

import (
	"regexp"
	"strings"

	"github.com/halstead/chesscore/internal/corelog"
)

// SAN formatting and parsing, grounded on the teacher's san_decode.go and
// notation.go (Move2SAN-style disambiguation walking other legal moves of
// the same piece type to the same destination), reworked around Board's
// push/pop state machine instead of the teacher's immutable position
// chain, and extended with the null-move and drop spellings spec.md §4.7
// and §9 call for.

var sanPattern = regexp.MustCompile(
	`^([NBKRQ])?([a-h])?([1-8])?(x)?([a-h][1-8])(=?([nbrqkNBRQK]))?([+#])?$`)

var castlingPattern = regexp.MustCompile(`^(O-O(-O)?|0-0(-0)?)([+#])?$`)

// SAN formats m as Standard Algebraic Notation for the current position. m
// must be legal; pushing and popping it is how check/mate and
// disambiguation are determined.
func (b *Board) SAN(m Move) string {
	return b.sanAndPush(m, true)
}

// SANAndPush formats m as SAN and leaves it pushed onto the board (useful
// to callers building a move list without a redundant push).
func (b *Board) SANAndPush(m Move) string {
	return b.sanAndPush(m, false)
}

func (b *Board) sanAndPush(m Move, popAfter bool) string {
	if m.IsNull() {
		return "--"
	}

	san := b.sanWithoutSuffix(m)

	b.Push(m)
	if b.isCheckmate() {
		san += "#"
	} else if b.isCheck() {
		san += "+"
	}
	if popAfter {
		b.Pop()
	}
	return san
}

func (b *Board) sanWithoutSuffix(m Move) string {
	if m.Drop != NoPieceType {
		letter := ""
		if m.Drop != Pawn {
			letter = strings.ToUpper(m.Drop.String())
		}
		return letter + "@" + m.To.String()
	}

	if b.isCastling(m) {
		if m.To.File() < m.From.File() {
			return "O-O-O"
		}
		return "O-O"
	}

	piece, _ := b.pieceAt(m.From)
	isCapture := b.occupiedCo[b.Turn.Other()].Occupied(m.To) || b.isEnPassantCapture(m)

	var sb strings.Builder
	if piece.Type != Pawn {
		sb.WriteString(strings.ToUpper(piece.Type.String()))
		sb.WriteString(b.disambiguate(piece.Type, m))
	} else if isCapture {
		sb.WriteString(m.From.File().String())
	}

	if isCapture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.Promotion != NoPieceType {
		sb.WriteByte('=')
		sb.WriteString(strings.ToUpper(m.Promotion.String()))
	}
	return sb.String()
}

// disambiguate returns the minimal file/rank/both prefix needed to
// distinguish m among the other legal moves of the same piece type to the
// same destination.
func (b *Board) disambiguate(pt PieceType, m Move) string {
	var sameFile, sameRank, any bool
	for _, other := range b.generateLegalMoves(All, m.To.Bb(), nil) {
		if other.From == m.From || other.To != m.To {
			continue
		}
		op, ok := b.pieceAt(other.From)
		if !ok || op.Type != pt {
			continue
		}
		any = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !any {
		return ""
	}
	if !sameFile {
		return m.From.File().String()
	}
	if !sameRank {
		return m.From.Rank().String()
	}
	return m.From.String()
}

// ParseSAN parses s against the current position's legal moves.
func (b *Board) ParseSAN(s string) (Move, error) {
	switch s {
	case "--", "Z0", "0000", "@@@@":
		return NullMove, nil
	}

	if m := castlingPattern.FindStringSubmatch(s); m != nil {
		queenside := m[2] == "-O" || m[3] == "-0"
		return b.findCastlingMove(queenside, s)
	}

	m := sanPattern.FindStringSubmatch(s)
	if m == nil {
		return Move{}, newInvalidMoveError(s, "does not match SAN grammar")
	}

	pt := Pawn
	if m[1] != "" {
		pt, _ = ParsePieceType(m[1][0])
	}
	var fromFile = -1
	var fromRank = -1
	if m[2] != "" {
		fromFile = int(m[2][0] - 'a')
	}
	if m[3] != "" {
		fromRank = int(m[3][0] - '1')
	}
	to, err := ParseSquare(m[5])
	if err != nil {
		return Move{}, newInvalidMoveError(s, "invalid destination square: %w", err)
	}
	promotion := NoPieceType
	if m[7] != "" {
		promotion, _ = ParsePieceType(m[7][0])
	}

	backrank := rank8
	if b.Turn == Black {
		backrank = rank1
	}
	if pt == Pawn && backrank.Occupied(to) && promotion == NoPieceType {
		return Move{}, newInvalidMoveError(s, "missing promotion piece type on backrank move")
	}

	var matches []Move
	for _, cand := range b.generateLegalMoves(All, to.Bb(), nil) {
		if cand.Promotion != promotion {
			continue
		}
		cp, ok := b.pieceAt(cand.From)
		if !ok || cp.Type != pt {
			continue
		}
		if fromFile >= 0 && int(cand.From.File()) != fromFile {
			continue
		}
		if fromRank >= 0 && int(cand.From.Rank()) != fromRank {
			continue
		}
		matches = append(matches, cand)
	}

	switch len(matches) {
	case 0:
		return Move{}, newIllegalMoveError(s, "no legal move matches")
	case 1:
		return matches[0], nil
	default:
		return Move{}, &AmbiguousMoveError{Text: s, Matches: matches}
	}
}

func (b *Board) findCastlingMove(queenside bool, s string) (Move, error) {
	king, ok := b.king(b.Turn)
	if !ok {
		return Move{}, newIllegalMoveError(s, "side to move has no king")
	}
	for _, cand := range b.generateLegalMoves(king.Bb(), All, nil) {
		if !b.isCastling(cand) {
			continue
		}
		isQueenside := b.castlingDestination(cand).File() < king.File()
		if isQueenside == queenside {
			return cand, nil
		}
	}
	return Move{}, newIllegalMoveError(s, "no legal castling move in that direction")
}

func (b *Board) castlingDestination(m Move) Square {
	if m.To.File() < m.From.File() {
		return NewSquare(2, m.From.Rank())
	}
	return NewSquare(6, m.From.Rank())
}

// PushSAN parses s and pushes the resulting move, returning it.
func (b *Board) PushSAN(s string) (Move, error) {
	m, err := b.ParseSAN(s)
	if err != nil {
		corelog.Log.Warningf("pushSAN: rejecting %q: %v", s, err)
		return Move{}, err
	}
	b.Push(m)
	return m, nil
}
