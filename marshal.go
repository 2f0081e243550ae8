package chess

import "encoding/binary"

// Binary and text encodings, grounded on the teacher's board.go
// (MarshalBinary/UnmarshalBinary over an array of bitboards) and
// position.go (MarshalBinary encoding turn/castling/ep alongside the
// board), adapted onto this module's BaseBoard array-of-bitboards layout
// and its Bitboard-based castling rights. Not named by spec.md and not
// excluded by a Non-goal — see SPEC_FULL.md §4.

// MarshalBinary encodes the full board state: nine bitboards (six piece
// types, two color occupancies, promoted), then turn, castling rights, ep
// square, halfmove clock, and fullmove number. The move/state stack is not
// included; only the current position is encoded.
func (b *Board) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 9*8+1+8+1+8+8)
	off := 0
	putBB := func(bb Bitboard) {
		binary.BigEndian.PutUint64(buf[off:], uint64(bb))
		off += 8
	}
	for pt := Pawn; pt <= King; pt++ {
		putBB(b.pieces[pt])
	}
	putBB(b.occupiedCo[White])
	putBB(b.occupiedCo[Black])
	putBB(b.promoted)
	buf[off] = byte(b.Turn)
	off++
	putBB(b.CastlingRights)
	buf[off] = byte(b.EpSquare + 1) // 0 means NoSquare
	off++
	binary.BigEndian.PutUint64(buf[off:], uint64(b.HalfmoveClock))
	off += 8
	binary.BigEndian.PutUint64(buf[off:], uint64(b.FullmoveNumber))
	off += 8
	return buf, nil
}

// UnmarshalBinary decodes a buffer produced by MarshalBinary, replacing the
// board's position and clearing the move stack.
func (b *Board) UnmarshalBinary(data []byte) error {
	const want = 9*8 + 1 + 8 + 1 + 8 + 8
	if len(data) != want {
		return newValueError("binary board encoding has wrong length %d, want %d", len(data), want)
	}
	off := 0
	getBB := func() Bitboard {
		v := Bitboard(binary.BigEndian.Uint64(data[off:]))
		off += 8
		return v
	}
	for pt := Pawn; pt <= King; pt++ {
		b.pieces[pt] = getBB()
	}
	b.occupiedCo[White] = getBB()
	b.occupiedCo[Black] = getBB()
	b.occupied = b.occupiedCo[White] | b.occupiedCo[Black]
	b.promoted = getBB()
	b.Turn = Color(data[off])
	off++
	b.CastlingRights = getBB()
	b.EpSquare = Square(data[off]) - 1
	off++
	b.HalfmoveClock = int(binary.BigEndian.Uint64(data[off:]))
	off += 8
	b.FullmoveNumber = int(binary.BigEndian.Uint64(data[off:]))
	off += 8
	b.clearStack()
	return nil
}

// MarshalText implements encoding.TextMarshaler as the board's FEN.
func (b *Board) MarshalText() ([]byte, error) {
	return []byte(b.FEN()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing a FEN string.
func (b *Board) UnmarshalText(text []byte) error {
	return b.SetFEN(string(text))
}
