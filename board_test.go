package chess

import "testing"

func TestPushPopRoundTrip(t *testing.T) {
	b := NewBoard()
	before := *b
	beforeBase := b.BaseBoard
	for _, m := range b.LegalMoves() {
		b.Push(m)
		if _, err := b.Pop(); err != nil {
			t.Fatalf("pop after push(%v): %v", m.UCI(), err)
		}
		if b.BaseBoard != beforeBase {
			t.Fatalf("push/pop(%v) changed BaseBoard", m.UCI())
		}
		if b.Turn != before.Turn || b.CastlingRights != before.CastlingRights ||
			b.EpSquare != before.EpSquare || b.HalfmoveClock != before.HalfmoveClock ||
			b.FullmoveNumber != before.FullmoveNumber {
			t.Fatalf("push/pop(%v) changed scalar state", m.UCI())
		}
	}
}

func TestPopOnEmptyStack(t *testing.T) {
	b := NewBoard()
	if _, err := b.Pop(); err == nil {
		t.Errorf("expected error popping an empty stack")
	}
}

func TestUCIRoundTrip(t *testing.T) {
	b := NewBoard()
	for _, m := range b.LegalMoves() {
		got, err := ParseUCI(m.UCI())
		if err != nil {
			t.Fatalf("ParseUCI(%q): %v", m.UCI(), err)
		}
		if got != m {
			t.Errorf("ParseUCI(UCI(%v)) = %v, want %v", m, got, m)
		}
	}
}

func TestCastlingRookEndsUpCorrectly(t *testing.T) {
	b, err := NewBoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := b.FindMove(E1, G1, NoPieceType)
	if err != nil {
		t.Fatalf("e1g1 should be legal: %v", err)
	}
	b.Push(m)
	if pt := b.PieceTypeAt(G1); pt != King {
		t.Errorf("expected king on g1 after O-O, got %v", pt)
	}
	if pt := b.PieceTypeAt(F1); pt != Rook {
		t.Errorf("expected rook on f1 after O-O, got %v", pt)
	}
	if _, err := b.Pop(); err != nil {
		t.Fatal(err)
	}
	if pt := b.PieceTypeAt(E1); pt != King {
		t.Errorf("pop should restore king to e1, got %v", pt)
	}
	if pt := b.PieceTypeAt(H1); pt != Rook {
		t.Errorf("pop should restore rook to h1, got %v", pt)
	}
}

func TestEnPassantCaptureAndPop(t *testing.T) {
	b, err := NewBoardFromFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3")
	if err != nil {
		t.Fatal(err)
	}
	m, err := b.ParseSAN("dxe3")
	if err != nil {
		t.Fatalf("dxe3 should parse: %v", err)
	}
	b.Push(m)
	if pt := b.PieceTypeAt(E4); pt != NoPieceType {
		t.Errorf("captured pawn should be removed from e4")
	}
	if _, err := b.Pop(); err != nil {
		t.Fatal(err)
	}
	if pt := b.PieceTypeAt(E4); pt != Pawn {
		t.Errorf("pop should restore captured pawn to e4")
	}
}

func TestBlackDoublePawnPush(t *testing.T) {
	b, err := NewBoardFromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := b.FindMove(E7, E5, NoPieceType)
	if err != nil {
		t.Fatalf("e7e5 should be a legal double push for black: %v", err)
	}
	b.Push(m)
	if pt := b.PieceTypeAt(E5); pt != Pawn {
		t.Errorf("expected black pawn on e5 after double push, got %v", pt)
	}
	if b.EpSquare != E6 {
		t.Errorf("double push to e5 should set the en passant square to e6, got %v", b.EpSquare)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	cp := b.Copy(true)
	m := b.LegalMoves()[0]
	b.Push(m)
	if cp.PieceTypeAt(m.From) == NoPieceType {
		t.Errorf("mutating original board should not affect the copy")
	}
}
