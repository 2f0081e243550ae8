package chess

import "testing"

func TestStatusStartingPositionIsValid(t *testing.T) {
	b := NewBoard()
	if st := b.Status(); st != StatusValid {
		t.Errorf("starting position status = %v, want StatusValid", st)
	}
	if !b.IsValid() {
		t.Errorf("IsValid() should be true for the starting position")
	}
}

func TestStatusNoKing(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPieceAt(E1, Piece{Type: King, Color: White})
	if st := b.Status(); st&NoBlackKing == 0 {
		t.Errorf("missing black king should set NoBlackKing, got %v", st)
	}
}

func TestStatusTooManyKings(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPieceAt(E1, Piece{Type: King, Color: White})
	b.SetPieceAt(E8, Piece{Type: King, Color: Black})
	b.SetPieceAt(D1, Piece{Type: King, Color: White})
	if st := b.Status(); st&TooManyKings == 0 {
		t.Errorf("two white kings should set TooManyKings, got %v", st)
	}
}

func TestStatusPawnsOnBackrank(t *testing.T) {
	b := NewEmptyBoard()
	b.SetPieceAt(E1, Piece{Type: King, Color: White})
	b.SetPieceAt(E8, Piece{Type: King, Color: Black})
	b.SetPieceAt(A1, Piece{Type: Pawn, Color: White})
	if st := b.Status(); st&PawnsOnBackrank == 0 {
		t.Errorf("pawn on rank 1 should set PawnsOnBackrank, got %v", st)
	}
}

func TestStatusEmptyBoard(t *testing.T) {
	b := NewEmptyBoard()
	if st := b.Status(); st&EmptyBoard == 0 {
		t.Errorf("empty board should set EmptyBoard, got %v", st)
	}
}
