package chess

import "sync"

// Zobrist hashing, grounded on treepeck-chego's zobrist.go (one random
// 64-bit key per piece/color/square, one per castling-rights bit, one per
// en-passant file, one for side-to-move, all XORed together). Used two
// ways: as the process's Hash() accessor (a cheap, non-cryptographic
// position fingerprint, in place of the teacher's position.go which hashed
// its binary encoding with md5) and as the repetition transposition key
// itself.

var (
	zobristPieceSquare [2][6][64]uint64
	zobristCastling    [64]uint64
	zobristEpFile      [8]uint64
	zobristTurn        uint64

	initZobrist = sync.OnceFunc(func() {
		rng := &xorshiftRand{s: 0x9E3779B97F4A7C15}
		for c := 0; c < 2; c++ {
			for pt := 0; pt < 6; pt++ {
				for sq := 0; sq < 64; sq++ {
					zobristPieceSquare[c][pt][sq] = rng.next()
				}
			}
		}
		for sq := 0; sq < 64; sq++ {
			zobristCastling[sq] = rng.next()
		}
		for f := 0; f < 8; f++ {
			zobristEpFile[f] = rng.next()
		}
		zobristTurn = rng.next()
	})
)

// transpositionKey is the canonical hashable position summary used for
// repetition detection: every piece bitboard, both occupancies, turn,
// cleaned castling rights, and the ep square iff an ep capture is currently
// legal (else a sentinel), folded into one uint64 via Zobrist XOR.
func (b *Board) transpositionKey() uint64 {
	initZobrist()
	var key uint64
	for c := Color(0); c < 2; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := b.piecesMask(pt, c)
			sc := bb.Scan()
			for {
				sq, ok := sc.Next()
				if !ok {
					break
				}
				key ^= zobristPieceSquare[c][pt][sq]
			}
		}
	}
	rights := b.cleanCastlingRights()
	sc := rights.Scan()
	for {
		sq, ok := sc.Next()
		if !ok {
			break
		}
		key ^= zobristCastling[sq]
	}
	if b.hasLegalEnPassant() {
		key ^= zobristEpFile[b.EpSquare.File()]
	}
	if b.Turn == Black {
		key ^= zobristTurn
	}
	return key
}

// Hash returns a cheap, non-cryptographic fingerprint of the current piece
// placement, turn, castling rights, and ep-capture-legality — the same
// value used internally for repetition detection, exposed for callers that
// want a transposition-table key without depending on FEN string equality.
func (b *Board) Hash() uint64 { return b.transpositionKey() }
