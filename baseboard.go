package chess

import "strings"

// BaseBoard holds piece placement only: six per-type bitboards, per-color
// occupancy, and the promoted-piece subset. Grounded on the teacher's
// board.go, which kept a similar per-type set of masks but behind named
// fields reached via reflection-like dispatch in Update(); here the six
// bitboards are a fixed array indexed by PieceType as spec.md's design
// notes require, so transforms, equality, and snapshotting are uniform
// array operations instead of per-field plumbing.
type BaseBoard struct {
	pieces     [6]Bitboard // indexed by PieceType
	occupiedCo [2]Bitboard // indexed by Color
	occupied   Bitboard
	promoted   Bitboard
}

// NewBaseBoard returns the board set up for a standard chess game.
func NewBaseBoard() *BaseBoard {
	bb := &BaseBoard{}
	bb.resetBoard()
	return bb
}

// NewEmptyBaseBoard returns a board with no pieces.
func NewEmptyBaseBoard() *BaseBoard {
	return &BaseBoard{}
}

func (bb *BaseBoard) resetBoard() {
	bb.pieces[Pawn] = rank2 | rank7
	bb.pieces[Knight] = NewSquare(1, 0).Bb() | NewSquare(6, 0).Bb() | NewSquare(1, 7).Bb() | NewSquare(6, 7).Bb()
	bb.pieces[Bishop] = NewSquare(2, 0).Bb() | NewSquare(5, 0).Bb() | NewSquare(2, 7).Bb() | NewSquare(5, 7).Bb()
	bb.pieces[Rook] = NewSquare(0, 0).Bb() | NewSquare(7, 0).Bb() | NewSquare(0, 7).Bb() | NewSquare(7, 7).Bb()
	bb.pieces[Queen] = NewSquare(3, 0).Bb() | NewSquare(3, 7).Bb()
	bb.pieces[King] = NewSquare(4, 0).Bb() | NewSquare(4, 7).Bb()
	bb.occupiedCo[White] = rank1 | rank2
	bb.occupiedCo[Black] = rank7 | rank8
	bb.occupied = rank1 | rank2 | rank7 | rank8
	bb.promoted = Empty
}

func (bb *BaseBoard) clearBoard() {
	bb.pieces = [6]Bitboard{}
	bb.occupiedCo = [2]Bitboard{}
	bb.occupied = Empty
	bb.promoted = Empty
}

const rank2 Bitboard = rank1 << 8
const rank7 Bitboard = rank1 << 48

// piecesMask returns every square occupied by a piece of the given type and
// color.
func (bb *BaseBoard) piecesMask(pt PieceType, c Color) Bitboard {
	return bb.pieces[pt] & bb.occupiedCo[c]
}

// pieceTypeAt returns the piece type on sq, or NoPieceType if empty.
func (bb *BaseBoard) pieceTypeAt(sq Square) PieceType {
	mask := sq.Bb()
	if bb.occupied&mask == 0 {
		return NoPieceType
	}
	for pt := Pawn; pt <= King; pt++ {
		if bb.pieces[pt]&mask != 0 {
			return pt
		}
	}
	return NoPieceType
}

// colorAt returns the color of the piece on sq, if any.
func (bb *BaseBoard) colorAt(sq Square) (Color, bool) {
	mask := sq.Bb()
	if bb.occupiedCo[White]&mask != 0 {
		return White, true
	}
	if bb.occupiedCo[Black]&mask != 0 {
		return Black, true
	}
	return White, false
}

// pieceAt returns the piece on sq, if any.
func (bb *BaseBoard) pieceAt(sq Square) (Piece, bool) {
	pt := bb.pieceTypeAt(sq)
	if pt == NoPieceType {
		return Piece{}, false
	}
	c, _ := bb.colorAt(sq)
	return Piece{Type: pt, Color: c}, true
}

// king returns the square of the non-promoted king of the given color.
func (bb *BaseBoard) king(c Color) (Square, bool) {
	kings := bb.pieces[King] &^ bb.promoted & bb.occupiedCo[c]
	if kings == 0 {
		return NoSquare, false
	}
	return kings.Lsb(), true
}

// attacksMask dispatches on the piece occupying sq (over the board's
// current occupancy) and returns its attack set, or Empty if sq is vacant.
func (bb *BaseBoard) attacksMask(sq Square) Bitboard {
	pt := bb.pieceTypeAt(sq)
	if pt == NoPieceType {
		return Empty
	}
	c, _ := bb.colorAt(sq)
	return attacksMask(pt, c, sq, bb.occupied)
}

// attackersMaskOcc returns every square holding a piece of color c that
// attacks sq, against the given occupancy (overridable so callers can probe
// hypothetical occupancies, e.g. with the king removed).
func (bb *BaseBoard) attackersMaskOcc(c Color, sq Square, occ Bitboard) Bitboard {
	rankFile := rookAttacksMask(sq, occ)
	diag := bishopAttacksMask(sq, occ)

	queensAndRooks := bb.pieces[Queen] | bb.pieces[Rook]
	queensAndBishops := bb.pieces[Queen] | bb.pieces[Bishop]

	attackers := (knightAttacks[sq] & bb.pieces[Knight]) |
		(rankFile & queensAndRooks) |
		(diag & queensAndBishops) |
		(kingAttacks[sq] & bb.pieces[King]) |
		(pawnAttacks[c.Other()][sq] & bb.pieces[Pawn])
	return attackers & bb.occupiedCo[c]
}

// attackersMask is attackersMaskOcc against the board's actual occupancy.
func (bb *BaseBoard) attackersMask(c Color, sq Square) Bitboard {
	return bb.attackersMaskOcc(c, sq, bb.occupied)
}

// isAttackedBy reports whether any piece of color c attacks sq.
func (bb *BaseBoard) isAttackedBy(c Color, sq Square) bool {
	return bb.attackersMask(c, sq) != 0
}

// pinMask returns the ray on which sq is pinned to the king of c, or All if
// sq is not pinned (or holds no relevance to the king at all).
func (bb *BaseBoard) pinMask(c Color, sq Square) Bitboard {
	king, ok := bb.king(c)
	if !ok {
		return All
	}
	squareMask := sq.Bb()

	for _, group := range []struct {
		attacks func(Square, Bitboard) Bitboard
		sliders Bitboard
	}{
		{rookAttacksMask, bb.pieces[Rook] | bb.pieces[Queen]},
		{bishopAttacksMask, bb.pieces[Bishop] | bb.pieces[Queen]},
	} {
		rays := group.attacks(king, Empty)
		if rays&squareMask == 0 {
			continue
		}
		snipers := rays & group.sliders & bb.occupiedCo[c.Other()]
		sc := snipers.Scan()
		for {
			sniper, ok := sc.Next()
			if !ok {
				break
			}
			between := BETWEEN(king, sniper)
			if between&(bb.occupied|squareMask) == squareMask {
				return RAY(king, sniper)
			}
		}
	}
	return All
}

// setPieceAt places piece p on sq, removing whatever was there.
func (bb *BaseBoard) setPieceAt(sq Square, p Piece, promoted bool) {
	bb.removePieceAt(sq)
	mask := sq.Bb()
	bb.pieces[p.Type] |= mask
	bb.occupied |= mask
	bb.occupiedCo[p.Color] |= mask
	if promoted {
		bb.promoted |= mask
	}
}

// removePieceAt clears sq and returns the piece that was removed, if any.
func (bb *BaseBoard) removePieceAt(sq Square) (Piece, bool) {
	p, ok := bb.pieceAt(sq)
	if !ok {
		return Piece{}, false
	}
	mask := sq.Bb()
	bb.pieces[p.Type] &^= mask
	bb.occupied &^= mask
	bb.occupiedCo[p.Color] &^= mask
	bb.promoted &^= mask
	return p, true
}

// pieceMap returns every occupied square mapped to its piece.
func (bb *BaseBoard) pieceMap() map[Square]Piece {
	m := make(map[Square]Piece, bb.occupied.Popcount())
	sc := bb.occupied.Scan()
	for {
		sq, ok := sc.Next()
		if !ok {
			break
		}
		p, _ := bb.pieceAt(sq)
		m[sq] = p
	}
	return m
}

// setPieceMap replaces every piece on the board with m.
func (bb *BaseBoard) setPieceMap(m map[Square]Piece) {
	bb.clearBoard()
	for sq, p := range m {
		bb.setPieceAt(sq, p, false)
	}
}

// boardFen renders the piece-placement field of a FEN string. A promoted
// piece is suffixed with '~' when withPromoted is set (used by Board.FENWithPolicy's
// "promoted piece" disclosure, not part of standard FEN).
func (bb *BaseBoard) boardFen(withPromoted bool) string {
	var sb strings.Builder
	for r := Rank(7); ; r-- {
		empty := 0
		for f := File(0); f < 8; f++ {
			sq := NewSquare(f, r)
			p, ok := bb.pieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Symbol())
			if withPromoted && bb.promoted.Occupied(sq) {
				sb.WriteByte('~')
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r == 0 {
			break
		}
		sb.WriteByte('/')
	}
	return sb.String()
}

// setBoardFen parses a board-FEN piece-placement field (no side/castling/ep
// fields).
func (bb *BaseBoard) setBoardFen(fen string) error {
	rows := strings.Split(fen, "/")
	if len(rows) != 8 {
		return newValueError("expected 8 rows in board FEN, got %d", len(rows))
	}
	bb.clearBoard()
	for i, row := range rows {
		r := Rank(7 - i)
		f := File(0)
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			if f >= 8 {
				return newValueError("row %d overflows the board", i)
			}
			p, err := ParsePiece(c)
			if err != nil {
				return err
			}
			promoted := false
			if j+1 < len(row) && row[j+1] == '~' {
				promoted = true
				j++
			}
			bb.setPieceAt(NewSquare(f, r), p, promoted)
			f++
		}
		if int(f) != 8 {
			return newValueError("row %d has %d files, expected 8", i, f)
		}
	}
	return nil
}

// applyTransform replaces piece placement with transform(bb) applied to
// every bitboard, both color occupancies included; colors are not swapped
// (applyMirror additionally swaps them).
func (bb *BaseBoard) applyTransform(fn func(Bitboard) Bitboard) {
	for pt := Pawn; pt <= King; pt++ {
		bb.pieces[pt] = fn(bb.pieces[pt])
	}
	bb.occupiedCo[White] = fn(bb.occupiedCo[White])
	bb.occupiedCo[Black] = fn(bb.occupiedCo[Black])
	bb.occupied = fn(bb.occupied)
	bb.promoted = fn(bb.promoted)
}

// applyMirror flips the board vertically and swaps White/Black occupancy,
// turning a White-to-move position into the equivalent Black-to-move one.
func (bb *BaseBoard) applyMirror() {
	bb.applyTransform(flipVertical)
	bb.occupiedCo[White], bb.occupiedCo[Black] = bb.occupiedCo[Black], bb.occupiedCo[White]
}

// Equal reports whether bb and other have identical piece bitboards and
// identical White occupancy (Black occupancy, and therefore everything
// else, follows from those).
func (bb *BaseBoard) Equal(other *BaseBoard) bool {
	if bb.occupiedCo[White] != other.occupiedCo[White] {
		return false
	}
	if bb.occupied != other.occupied {
		return false
	}
	for pt := Pawn; pt <= King; pt++ {
		if bb.pieces[pt] != other.pieces[pt] {
			return false
		}
	}
	return true
}
