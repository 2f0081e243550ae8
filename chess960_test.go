package chess

import "testing"

func TestScharnaglStandardPosition(t *testing.T) {
	want := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	if got := scharnaglBackrank(518); got != want {
		t.Errorf("scharnaglBackrank(518) = %v, want standard RNBQKBNR %v", got, want)
	}
}

func TestSetChess960PosAndRecognize(t *testing.T) {
	b := NewBoard()
	for n := 0; n < 960; n += 37 {
		if err := b.SetChess960Pos(n); err != nil {
			t.Fatalf("SetChess960Pos(%d): %v", n, err)
		}
		got, ok := b.Chess960Pos()
		if !ok || got != n {
			t.Errorf("Chess960Pos() after SetChess960Pos(%d) = %d, %v", n, got, ok)
		}
	}
}

func TestChess960CastlingEquivalence(t *testing.T) {
	standard, err := NewBoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	chess960 := NewBoard()
	if err := chess960.SetChess960Pos(518); err != nil {
		t.Fatal(err)
	}
	// Clear the pieces between king and rooks; SetFEN keeps the Chess960 flag.
	if err := chess960.SetFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		standardTo  Square // king-two-squares encoding
		chess960To  Square // king-to-rook encoding
		kingLandsOn Square
	}{
		{G1, H1, G1},
		{C1, A1, C1},
	}

	for _, tc := range cases {
		a := standard.Copy(true)
		m, err := a.FindMove(E1, tc.standardTo, NoPieceType)
		if err != nil {
			t.Fatalf("standard castle to %v: %v", tc.standardTo, err)
		}
		a.Push(m)

		c := chess960.Copy(true)
		cm, err := c.FindMove(E1, tc.chess960To, NoPieceType)
		if err != nil {
			t.Fatalf("chess960 castle to %v: %v", tc.chess960To, err)
		}
		c.Push(cm)

		if a.PieceTypeAt(tc.kingLandsOn) != King || c.PieceTypeAt(tc.kingLandsOn) != King {
			t.Errorf("king should land on %v in both encodings", tc.kingLandsOn)
		}
		if a.BoardFEN() != c.BoardFEN() {
			t.Errorf("standard and chess960 castling should reach the same board: %q vs %q",
				a.BoardFEN(), c.BoardFEN())
		}
	}
}
