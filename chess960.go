package chess

// Scharnagl-index backrank setup/identification, grounded on the teacher's
// engine.go castling handling generalized to arbitrary backranks (the
// teacher only ever played standard chess, so this is new machinery built
// in its idiom: small table-driven helpers rather than a generalized
// combinatorics library).

// scharnaglBackrank decodes Scharnagl index n (0..959) into eight piece
// types for the backrank, file a through h. Algorithm: place the two
// bishops on opposite color complexes, then the queen, then the two
// knights, then let the three remaining slots fill (in order) with
// rook-king-rook.
func scharnaglBackrank(n int) [8]PieceType {
	var rank [8]PieceType
	for i := range rank {
		rank[i] = NoPieceType
	}
	place := func(slot int, pt PieceType) {
		count := -1
		for i := 0; i < 8; i++ {
			if rank[i] != NoPieceType {
				continue
			}
			count++
			if count == slot {
				rank[i] = pt
				return
			}
		}
	}
	placeOnEmptyOfParity := func(slot int, parity int, pt PieceType) {
		count := -1
		for i := 0; i < 8; i++ {
			if rank[i] != NoPieceType || i%2 != parity {
				continue
			}
			count++
			if count == slot {
				rank[i] = pt
				return
			}
		}
	}

	n2, bLight := n/4, n%4
	n3, bDark := n2/4, n2%4
	n4, q := n3/6, n3%6

	placeOnEmptyOfParity(bLight, 1, Bishop)
	placeOnEmptyOfParity(bDark, 0, Bishop)
	place(q, Queen)

	knightTable := [10][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4},
	}
	kn := knightTable[n4]
	// Knights occupy two of the five squares left empty after the bishops
	// and queen, indexed by position among those five (ascending file).
	empties := make([]int, 0, 5)
	for i := 0; i < 8; i++ {
		if rank[i] == NoPieceType {
			empties = append(empties, i)
		}
	}
	// knightTable indices are chosen from the 5 remaining slots (0..4) and
	// put in ascending order; both knights are placed from the same empties
	// list, so placing one does not shift the other's index.
	idxs := []int{kn[0], kn[1]}
	if idxs[0] > idxs[1] {
		idxs[0], idxs[1] = idxs[1], idxs[0]
	}
	rank[empties[idxs[1]]] = Knight
	rank[empties[idxs[0]]] = Knight

	remaining := make([]int, 0, 3)
	for i := 0; i < 8; i++ {
		if rank[i] == NoPieceType {
			remaining = append(remaining, i)
		}
	}
	rank[remaining[0]] = Rook
	rank[remaining[1]] = King
	rank[remaining[2]] = Rook

	return rank
}

// setChess960Pos sets up the board from Scharnagl index n (0..959): pawns on
// the second/seventh ranks, the decoded backrank mirrored for both colors.
func (bb *BaseBoard) setChess960Pos(n int) error {
	if n < 0 || n > 959 {
		return newValueError("chess960 index %d out of range 0..959", n)
	}
	bb.clearBoard()
	backrank := scharnaglBackrank(n)
	for f := File(0); f < 8; f++ {
		bb.setPieceAt(NewSquare(f, 0), Piece{Type: backrank[f], Color: White}, false)
		bb.setPieceAt(NewSquare(f, 7), Piece{Type: backrank[f], Color: Black}, false)
		bb.setPieceAt(NewSquare(f, 1), Piece{Type: Pawn, Color: White}, false)
		bb.setPieceAt(NewSquare(f, 6), Piece{Type: Pawn, Color: Black}, false)
	}
	return nil
}

// chess960Pos recognizes a Chess960 starting position and returns its
// Scharnagl index, if the board is exactly one (standard pawn layout,
// symmetric backranks, and piece counts of 4 bishops/4 rooks/4 knights/2
// queens/2 kings).
func (bb *BaseBoard) chess960Pos() (int, bool) {
	if bb.occupiedCo[White] != (rank1 | rank2) || bb.occupiedCo[Black] != (rank7 | rank8) {
		return 0, false
	}
	if bb.pieces[Pawn] != (rank2 | rank7) {
		return 0, false
	}
	counts := map[PieceType]int{}
	for pt := Pawn; pt <= King; pt++ {
		counts[pt] = bb.pieces[pt].Popcount()
	}
	if counts[Bishop] != 4 || counts[Rook] != 4 || counts[Knight] != 4 || counts[Queen] != 2 || counts[King] != 2 {
		return 0, false
	}
	var whiteBack, blackBack [8]PieceType
	for f := File(0); f < 8; f++ {
		whiteBack[f] = bb.pieceTypeAt(NewSquare(f, 0))
		blackBack[f] = bb.pieceTypeAt(NewSquare(f, 7))
	}
	if whiteBack != blackBack {
		return 0, false
	}
	for n := 0; n <= 959; n++ {
		if scharnaglBackrank(n) == whiteBack {
			return n, true
		}
	}
	return 0, false
}
