package chess

// Termination identifies why a game ended.
type Termination int

const (
	TerminationNone Termination = iota
	Checkmate
	InsufficientMaterial
	Stalemate
	SeventyFiveMoves
	FivefoldRepetition
	FiftyMoves
	ThreefoldRepetition
)

// Outcome is the result of a finished (or claimably-drawn) game.
type Outcome struct {
	Termination Termination
	Winner      Color
	HasWinner   bool
}

// Outcome returns the first applicable termination per spec.md §4.7's
// priority order, or nil if the game is ongoing (and, when claimDraw is
// false, if only a claimable draw condition holds).
func (b *Board) Outcome(claimDraw bool) *Outcome {
	if b.isCheckmate() {
		return &Outcome{Termination: Checkmate, Winner: b.Turn.Other(), HasWinner: true}
	}
	if b.isInsufficientMaterial() {
		return &Outcome{Termination: InsufficientMaterial}
	}
	if b.isStalemate() {
		return &Outcome{Termination: Stalemate}
	}
	if b.HalfmoveClock >= 150 && len(b.generateLegalMoves(All, All, nil)) > 0 {
		return &Outcome{Termination: SeventyFiveMoves}
	}
	if b.isRepetition(5) {
		return &Outcome{Termination: FivefoldRepetition}
	}
	if claimDraw {
		if b.HalfmoveClock >= 100 {
			return &Outcome{Termination: FiftyMoves}
		}
		if b.isRepetition(3) {
			return &Outcome{Termination: ThreefoldRepetition}
		}
	}
	return nil
}

// isInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate by any sequence of legal moves, per the per-color
// rule in spec.md §4.7.
func (b *Board) isInsufficientMaterial() bool {
	return b.hasInsufficientMaterial(White) && b.hasInsufficientMaterial(Black)
}

func (b *Board) hasInsufficientMaterial(c Color) bool {
	if b.pieces[Pawn]&b.occupiedCo[c] != 0 {
		return false
	}
	if b.pieces[Rook]&b.occupiedCo[c] != 0 {
		return false
	}
	if b.pieces[Queen]&b.occupiedCo[c] != 0 {
		return false
	}
	knights := (b.pieces[Knight] & b.occupiedCo[c]).Popcount()
	bishops := b.pieces[Bishop] & b.occupiedCo[c]
	if knights > 0 {
		total := b.occupiedCo[c].Popcount()
		if total > 2 {
			return false
		}
		them := c.Other()
		theirNonKing := b.occupiedCo[them] &^ b.pieces[King]
		if theirNonKing&^b.pieces[Queen] != 0 {
			return false
		}
		return true
	}
	if bishops != 0 {
		lightSquares := Bitboard(0x55AA55AA55AA55AA)
		allBishops := b.pieces[Bishop]
		onLight := allBishops & lightSquares
		onDark := allBishops &^ lightSquares
		if onLight != 0 && onDark != 0 {
			return false
		}
		for _, mover := range [2]Color{White, Black} {
			if b.pieces[Pawn]&b.occupiedCo[mover] != 0 || b.pieces[Knight]&b.occupiedCo[mover] != 0 {
				return false
			}
		}
		return true
	}
	return true
}

// isRepetition reports whether the current position has occurred n times
// (including now) per spec.md §4.7: a cheap upper-bound scan over occupied
// masks, then an exact replay comparing transposition keys, stopping early
// at the first irreversible move.
func (b *Board) isRepetition(n int) bool {
	maybeMatches := 1
	occ := b.occupied
	for i := len(b.stateStack) - 1; i >= 0; i-- {
		if b.stateStack[i].occupied == occ {
			maybeMatches++
		}
	}
	if maybeMatches < n {
		return false
	}

	key := b.transpositionKey()
	remaining := n
	var popped []Move
	defer func() {
		for i := len(popped) - 1; i >= 0; i-- {
			b.Push(popped[i])
		}
	}()

	for len(b.moveStack) > 0 {
		if remaining <= 1 {
			return true
		}
		m, _ := b.Pop()
		popped = append(popped, m)
		irreversible := b.isIrreversible(m)
		if b.transpositionKey() == key {
			remaining--
		}
		if irreversible {
			break
		}
	}
	return remaining <= 1
}

// canClaimThreefoldRepetition reports whether the current position has
// already repeated twice, or whether any legal move reaches a position that
// has.
func (b *Board) canClaimThreefoldRepetition() bool {
	if b.isRepetition(3) {
		return true
	}
	for _, m := range b.generateLegalMoves(All, All, nil) {
		b.Push(m)
		rep := b.isRepetition(3)
		b.Pop()
		if rep {
			return true
		}
	}
	return false
}
