package chess

// Board extends BaseBoard with the mutable game state: turn, castling
// rights, en passant square, clocks, and a push/pop move stack. Grounded on
// the teacher's game.go/position.go, but reworked from the teacher's
// immutable copy-on-write Position.Update (which allocated a fresh
// *Position per move) into the mutable snapshot/restore state machine
// spec.md §3/§9 requires: push saves one boardState value onto stateStack
// and mutates in place; pop restores it in O(1) with no inverse-move logic.
type Board struct {
	BaseBoard

	Turn           Color
	CastlingRights Bitboard
	EpSquare       Square
	HalfmoveClock  int
	FullmoveNumber int
	Chess960       bool

	moveStack  []Move
	stateStack []boardState
}

// boardState is the O(1) snapshot pushed before every move: the complete
// piece placement plus the five scalar fields, captured and restored by
// value per spec.md's design notes (no inverse-move derivation).
type boardState struct {
	pieces         [6]Bitboard
	occupiedCo     [2]Bitboard
	occupied       Bitboard
	promoted       Bitboard
	turn           Color
	castlingRights Bitboard
	epSquare       Square
	halfmoveClock  int
	fullmoveNumber int
}

// NewBoard returns a Board set up for a standard game.
func NewBoard() *Board {
	InitAttackTables()
	b := &Board{}
	b.reset()
	return b
}

// NewEmptyBoard returns a Board with no pieces, White to move, no castling
// rights, and no en passant square.
func NewEmptyBoard() *Board {
	InitAttackTables()
	b := &Board{}
	b.clear()
	return b
}

// NewBoardFromFEN parses fen into a new Board.
func NewBoardFromFEN(fen string) (*Board, error) {
	InitAttackTables()
	b := &Board{}
	if err := b.SetFEN(fen); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) reset() {
	b.BaseBoard = BaseBoard{}
	b.resetBoard()
	b.Turn = White
	b.CastlingRights = b.pieces[Rook]
	b.EpSquare = NoSquare
	b.HalfmoveClock = 0
	b.FullmoveNumber = 1
	b.Chess960 = false
	b.moveStack = b.moveStack[:0]
	b.stateStack = b.stateStack[:0]
}

func (b *Board) clear() {
	b.BaseBoard = BaseBoard{}
	b.Turn = White
	b.CastlingRights = Empty
	b.EpSquare = NoSquare
	b.HalfmoveClock = 0
	b.FullmoveNumber = 1
	b.moveStack = b.moveStack[:0]
	b.stateStack = b.stateStack[:0]
}

// Copy returns an independent Board. If withMoveStack is false the copy
// starts with an empty move/state stack (its own lineage, not the
// original's); there is no shared-state aliasing either way.
func (b *Board) Copy(withMoveStack bool) *Board {
	nb := &Board{
		BaseBoard:      b.BaseBoard,
		Turn:           b.Turn,
		CastlingRights: b.CastlingRights,
		EpSquare:       b.EpSquare,
		HalfmoveClock:  b.HalfmoveClock,
		FullmoveNumber: b.FullmoveNumber,
		Chess960:       b.Chess960,
	}
	if withMoveStack {
		nb.moveStack = append([]Move(nil), b.moveStack...)
		nb.stateStack = append([]boardState(nil), b.stateStack...)
	}
	return nb
}

// SetChess960Pos sets up Scharnagl position n (0..959), enables Chess960
// castling semantics, grants castling rights to all four corner-most rooks
// of the decoded backrank, and clears the move stack.
func (b *Board) SetChess960Pos(n int) error {
	if err := b.setChess960Pos(n); err != nil {
		return err
	}
	b.Turn = White
	b.CastlingRights = b.pieces[Rook]
	b.EpSquare = NoSquare
	b.HalfmoveClock = 0
	b.FullmoveNumber = 1
	b.Chess960 = true
	b.clearStack()
	return nil
}

// Chess960Pos recognizes a Chess960 starting position and returns its
// Scharnagl index.
func (b *Board) Chess960Pos() (int, bool) { return b.chess960Pos() }

// Mirror returns a copy of the board flipped vertically (rank i <-> rank
// 7-i) with colors swapped, putting the opposite side to move: White's pieces reflected to Black's
// side of the board and vice versa. Grounded on BaseBoard.applyMirror
// (spec.md §4.3).
func (b *Board) Mirror() *Board {
	nb := b.Copy(false)
	nb.applyMirror()
	nb.Turn = nb.Turn.Other()
	nb.CastlingRights = flipVertical(nb.CastlingRights)
	if nb.EpSquare != NoSquare {
		nb.EpSquare = NewSquare(nb.EpSquare.File(), 7-nb.EpSquare.Rank())
	}
	return nb
}

// King returns the square of the non-promoted king of color c.
func (b *Board) King(c Color) (Square, bool) { return b.king(c) }

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq Square) (Piece, bool) { return b.pieceAt(sq) }

// PieceTypeAt returns the piece type on sq, or NoPieceType.
func (b *Board) PieceTypeAt(sq Square) PieceType { return b.pieceTypeAt(sq) }

// BoardFEN returns just the piece-placement field of the FEN.
func (b *Board) BoardFEN() string { return b.boardFen(false) }

// PieceMap returns every occupied square mapped to its piece.
func (b *Board) PieceMap() map[Square]Piece { return b.pieceMap() }

// SetPieceMap replaces every piece on the board and clears the move stack.
func (b *Board) SetPieceMap(m map[Square]Piece) {
	b.setPieceMap(m)
	b.clearStack()
}

// PiecesMask returns every square occupied by a piece of the given type and
// color.
func (b *Board) PiecesMask(pt PieceType, c Color) Bitboard { return b.piecesMask(pt, c) }

// AttacksMask returns the attack set of whatever piece stands on sq.
func (b *Board) AttacksMask(sq Square) Bitboard { return b.attacksMask(sq) }

// AttackersMask returns every square holding a piece of color c that
// attacks sq.
func (b *Board) AttackersMask(c Color, sq Square) Bitboard { return b.attackersMask(c, sq) }

// IsAttackedBy reports whether any piece of color c attacks sq.
func (b *Board) IsAttackedBy(c Color, sq Square) bool { return b.isAttackedBy(c, sq) }

// SetPieceAt places p on sq and clears the move stack (this is a
// stack-destroying mutator, not push/pop).
func (b *Board) SetPieceAt(sq Square, p Piece) {
	b.setPieceAt(sq, p, false)
	b.clearStack()
}

// RemovePieceAt clears sq and clears the move stack.
func (b *Board) RemovePieceAt(sq Square) (Piece, bool) {
	p, ok := b.removePieceAt(sq)
	b.clearStack()
	return p, ok
}

func (b *Board) clearStack() {
	b.moveStack = b.moveStack[:0]
	b.stateStack = b.stateStack[:0]
}

// IsCheck reports whether the side to move is in check.
func (b *Board) IsCheck() bool { return b.isCheck() }

// IsCheckmate reports checkmate.
func (b *Board) IsCheckmate() bool { return b.isCheckmate() }

// IsStalemate reports stalemate.
func (b *Board) IsStalemate() bool { return b.isStalemate() }

// IsLegal reports whether m is legal in the current position.
func (b *Board) IsLegal(m Move) bool { return b.isLegal(m) }

// LegalMoves returns every legal move for the side to move.
func (b *Board) LegalMoves() []Move { return b.generateLegalMoves(All, All, nil) }

// PseudoLegalMoves returns every pseudo-legal move for the side to move.
func (b *Board) PseudoLegalMoves() []Move { return b.generatePseudoLegalMoves(All, All, nil) }

// isCastling distinguishes a castling move by king movement pattern: moved
// more than one file, or the destination holds the mover's own rook (the
// Chess960 king-to-rook encoding).
func (b *Board) isCastling(m Move) bool {
	if b.pieces[King]&m.From.Bb() == 0 {
		return false
	}
	fileDiff := int(m.To.File()) - int(m.From.File())
	if fileDiff > 1 || fileDiff < -1 {
		return true
	}
	return b.occupiedCo[b.Turn]&b.pieces[Rook]&m.To.Bb() != 0
}

// isEnPassantCapture reports whether m is an en passant capture in the
// current position.
func (b *Board) isEnPassantCapture(m Move) bool {
	if b.EpSquare == NoSquare || m.To != b.EpSquare {
		return false
	}
	return b.pieces[Pawn]&m.From.Bb() != 0 && m.From.File() != m.To.File()
}

// isZeroing reports whether m resets the halfmove clock: a pawn move, a
// capture, or a pawn drop.
func (b *Board) isZeroing(m Move) bool {
	if m.Drop == Pawn {
		return true
	}
	if b.pieces[Pawn]&m.From.Bb() != 0 {
		return true
	}
	if b.occupiedCo[b.Turn.Other()]&m.To.Bb() != 0 {
		return true
	}
	return b.isEnPassantCapture(m)
}

// isIrreversible reports whether m zeroes the clock, strips castling
// rights that were present, or forfeits a currently-legal en passant
// capture.
func (b *Board) isIrreversible(m Move) bool {
	if b.isZeroing(m) {
		return true
	}
	cr := b.cleanCastlingRights()
	if cr == 0 {
		return b.hasLegalEnPassant()
	}
	touched := m.From.Bb() | m.To.Bb()
	if touched&cr != 0 {
		return true
	}
	backrank := rank1
	if b.Turn == Black {
		backrank = rank8
	}
	if b.pieces[King]&m.From.Bb() != 0 && backrank&cr != 0 {
		return true
	}
	return b.hasLegalEnPassant()
}

// cleanCastlingRights filters the stored CastlingRights to rook squares that
// can actually still castle given the current king/rook placement, per
// spec.md §4.7: in standard chess, rights are restricted to the corner rook
// that started the game provided the king still sits on e1/e8; in Chess960,
// rights become "at most one rook left of the king, at most one right".
func (b *Board) cleanCastlingRights() Bitboard {
	castling := b.CastlingRights & b.pieces[Rook]
	if castling == 0 {
		return Empty
	}
	var clean Bitboard
	for _, c := range [2]Color{White, Black} {
		backrank := rank1
		if c == Black {
			backrank = rank8
		}
		rights := castling & backrank & b.occupiedCo[c]
		king, hasKing := b.king(c)
		if !hasKing || (b.promoted&king.Bb() != 0) {
			continue
		}
		if !b.Chess960 {
			if king != NewSquare(4, king.Rank()) {
				continue
			}
			corners := NewSquare(0, king.Rank()).Bb() | NewSquare(7, king.Rank()).Bb()
			clean |= rights & corners
			continue
		}
		if king.Bb()&backrank == 0 {
			continue
		}
		leftOfKing := rights & (king.Bb() - 1)
		rightOfKing := rights &^ leftOfKing
		if leftOfKing != 0 {
			clean |= leftOfKing.Msb().Bb()
		}
		if rightOfKing != 0 {
			clean |= rightOfKing.Lsb().Bb()
		}
	}
	return clean
}

// SetCastlingRights sets the raw stored castling rights bitboard (a subset
// of rook squares). Clears the move stack.
func (b *Board) SetCastlingRights(rights Bitboard) {
	b.CastlingRights = rights
	b.clearStack()
}

// hasPseudoLegalEnPassant reports whether any pseudo-legal ep capture
// exists.
func (b *Board) hasPseudoLegalEnPassant() bool {
	if b.EpSquare == NoSquare {
		return false
	}
	return len(b.generatePawnMoves(All, b.EpSquare.Bb(), nil)) > 0
}

// hasLegalEnPassant reports whether any legal ep capture exists.
func (b *Board) hasLegalEnPassant() bool {
	if b.EpSquare == NoSquare {
		return false
	}
	for _, m := range b.generateLegalMoves(All, b.EpSquare.Bb(), nil) {
		if b.pieces[Pawn]&m.From.Bb() != 0 && m.From.File() != m.To.File() {
			return true
		}
	}
	return false
}

// Push plays m and records its effects on the move/state stack. Per
// spec.md §7, push does not validate legality — it assumes m is at least
// pseudo-legal (or the null move) and is undefined otherwise.
func (b *Board) Push(m Move) {
	if b.Chess960 {
		// Already canonical king-to-rook form; nothing to normalize.
	} else if b.isCastling(m) {
		m = b.normalizeCastlingMove(m)
	}

	b.stateStack = append(b.stateStack, b.snapshot())
	b.moveStack = append(b.moveStack, m)

	epSquare := b.EpSquare
	b.EpSquare = NoSquare

	if b.isZeroing(m) {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	if b.Turn == Black {
		b.FullmoveNumber++
	}

	if m.IsNull() {
		b.Turn = b.Turn.Other()
		return
	}

	if m.Drop != NoPieceType {
		b.setPieceAt(m.To, Piece{Type: m.Drop, Color: b.Turn}, false)
		b.Turn = b.Turn.Other()
		return
	}

	castling := b.isCastling(m)

	if b.pieces[Pawn]&m.From.Bb() != 0 && m.To == epSquare && m.From.File() != m.To.File() {
		capturedSq := m.To - pawnPushDelta(b.Turn)
		b.removePieceAt(capturedSq)
	}

	isPawnDoublePush := b.pieces[Pawn]&m.From.Bb() != 0 && squareDistance(m.From, m.To) == 2 &&
		m.From.File() == m.To.File()
	if isPawnDoublePush {
		b.EpSquare = (m.From + m.To) / 2
	}

	piece, _ := b.removePieceAt(m.From)

	if castling {
		b.executeCastle(piece.Color, m)
	} else {
		promoted := b.promoted&m.From.Bb() != 0
		if m.Promotion != NoPieceType {
			piece.Type = m.Promotion
			promoted = true
		}
		b.setPieceAt(m.To, piece, promoted)
	}

	b.updateCastlingRightsAfterMove(piece, m)
	b.Turn = b.Turn.Other()
}

// normalizeCastlingMove rewrites a standard king-two-squares castling move
// into the canonical king-to-rook encoding push/pop operate on internally.
func (b *Board) normalizeCastlingMove(m Move) Move {
	rank := m.From.Rank()
	aSide := m.To.File() < m.From.File()
	backrank := rank1
	if rank == 7 {
		backrank = rank8
	}
	rights := b.cleanCastlingRights() & backrank
	var rook Bitboard
	if aSide {
		rook = rights & (m.From.Bb() - 1)
	} else {
		rook = rights &^ ((m.From.Bb() << 1) - 1)
	}
	if rook == 0 {
		return m
	}
	var rookSq Square
	if aSide {
		rookSq = rook.Msb()
	} else {
		rookSq = rook.Lsb()
	}
	return Move{From: m.From, To: rookSq, Promotion: NoPieceType, Drop: NoPieceType}
}

func (b *Board) executeCastle(us Color, m Move) {
	rank := m.From.Rank()
	aSide := m.To.File() < m.From.File()
	rookFrom := m.To

	b.removePieceAt(rookFrom)

	var kingToFile, rookToFile File = 6, 5
	if aSide {
		kingToFile, rookToFile = 2, 3
	}
	b.setPieceAt(NewSquare(kingToFile, rank), Piece{Type: King, Color: us}, false)
	b.setPieceAt(NewSquare(rookToFile, rank), Piece{Type: Rook, Color: us}, false)
}

func (b *Board) updateCastlingRightsAfterMove(piece Piece, m Move) {
	touched := m.From.Bb() | m.To.Bb()
	b.CastlingRights &^= touched
	if piece.Type == King {
		backrank := rank1
		if piece.Color == Black {
			backrank = rank8
		}
		b.CastlingRights &^= backrank
	}
}

func (b *Board) snapshot() boardState {
	return boardState{
		pieces:         b.pieces,
		occupiedCo:     b.occupiedCo,
		occupied:       b.occupied,
		promoted:       b.promoted,
		turn:           b.Turn,
		castlingRights: b.CastlingRights,
		epSquare:       b.EpSquare,
		halfmoveClock:  b.HalfmoveClock,
		fullmoveNumber: b.FullmoveNumber,
	}
}

func (b *Board) restore(s boardState) {
	b.pieces = s.pieces
	b.occupiedCo = s.occupiedCo
	b.occupied = s.occupied
	b.promoted = s.promoted
	b.Turn = s.turn
	b.CastlingRights = s.castlingRights
	b.EpSquare = s.epSquare
	b.HalfmoveClock = s.halfmoveClock
	b.FullmoveNumber = s.fullmoveNumber
}

// Pop restores the state immediately before the most recent push and
// returns the move that was undone.
func (b *Board) Pop() (Move, error) {
	if len(b.moveStack) == 0 {
		return Move{}, &IndexError{Op: "pop"}
	}
	m := b.moveStack[len(b.moveStack)-1]
	s := b.stateStack[len(b.stateStack)-1]
	b.moveStack = b.moveStack[:len(b.moveStack)-1]
	b.stateStack = b.stateStack[:len(b.stateStack)-1]
	b.restore(s)
	return m, nil
}

// Peek returns the most recently pushed move without undoing it.
func (b *Board) Peek() (Move, error) {
	if len(b.moveStack) == 0 {
		return Move{}, &IndexError{Op: "peek"}
	}
	return b.moveStack[len(b.moveStack)-1], nil
}

// MoveStack returns the sequence of moves played so far, oldest first. The
// returned slice must not be mutated.
func (b *Board) MoveStack() []Move { return b.moveStack }

// FindMove validates and returns the legal move from->to (with the given
// promotion, if any), disambiguating an underspecified promotion error.
func (b *Board) FindMove(from, to Square, promotion PieceType) (Move, error) {
	if promotion == NoPieceType && b.pieces[Pawn]&from.Bb() != 0 {
		backrank := rank8
		if b.Turn == Black {
			backrank = rank1
		}
		if backrank.Occupied(to) {
			for _, m := range b.generateLegalMoves(from.Bb(), to.Bb(), nil) {
				if m.To == to {
					return Move{}, newIllegalMoveError(from.String()+to.String(),
						"missing promotion piece type")
				}
			}
		}
	}
	candidate := Move{From: from, To: to, Promotion: promotion, Drop: NoPieceType}
	for _, m := range b.generateLegalMoves(from.Bb(), to.Bb(), nil) {
		if m.From == candidate.From && m.To == candidate.To && m.Promotion == candidate.Promotion {
			return m, nil
		}
	}
	return Move{}, newIllegalMoveError(candidate.UCI(), "no legal move found")
}

// PushUCI parses s as UCI, validates it is legal, and pushes it.
func (b *Board) PushUCI(s string) (Move, error) {
	m, err := ParseUCI(s)
	if err != nil {
		return Move{}, err
	}
	if !m.IsNull() && !b.isLegal(m) {
		return Move{}, newIllegalMoveError(s, "move is not legal in this position")
	}
	b.Push(m)
	return m, nil
}
