package chess

import "testing"

func TestSANRoundTrip(t *testing.T) {
	b := NewBoard()
	for _, m := range b.LegalMoves() {
		san := b.SAN(m)
		got, err := b.ParseSAN(san)
		if err != nil {
			t.Fatalf("ParseSAN(%q): %v", san, err)
		}
		if got != m {
			t.Errorf("ParseSAN(SAN(%v)) = %v, want %v", m, got, m)
		}
	}
}

func TestPushSANEnPassant(t *testing.T) {
	b, err := NewBoardFromFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3")
	if err != nil {
		t.Fatal(err)
	}
	m, err := b.PushSAN("dxe3")
	if err != nil {
		t.Fatalf("PushSAN(dxe3): %v", err)
	}
	if m.To != E3 {
		t.Errorf("dxe3 should land on e3, got %v", m.To)
	}
}

func TestParseSANPromotionCheck(t *testing.T) {
	b, err := NewBoardFromFEN("k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := b.ParseSAN("e8=Q+")
	if err != nil {
		t.Fatalf("ParseSAN(e8=Q+): %v", err)
	}
	if m.Promotion != Queen {
		t.Errorf("expected promotion to queen, got %v", m.Promotion)
	}
	b.Push(m)
	if !b.IsCheck() {
		t.Errorf("e8=Q should deliver check")
	}
}

func TestParseSANDisambiguation(t *testing.T) {
	b := NewBoard()
	mustPushSAN(t, b, "Nf3")
	mustPushSAN(t, b, "Nf6")
	mustPushSAN(t, b, "d4")
	mustPushSAN(t, b, "d5")

	_, err := b.ParseSAN("Nd2")
	var amb *AmbiguousMoveError
	if !asAmbiguous(err, &amb) {
		t.Fatalf("Nd2 should be ambiguous between b1 and f3 knights, got %v", err)
	}
}

func asAmbiguous(err error, out **AmbiguousMoveError) bool {
	a, ok := err.(*AmbiguousMoveError)
	if ok {
		*out = a
	}
	return ok
}

func mustPushSAN(t *testing.T, b *Board, s string) {
	t.Helper()
	if _, err := b.PushSAN(s); err != nil {
		t.Fatalf("PushSAN(%q): %v", s, err)
	}
}

func TestParseSANKnightFromG1(t *testing.T) {
	b := NewBoard()
	m, err := b.ParseSAN("Nf3")
	if err != nil {
		t.Fatalf("ParseSAN(Nf3): %v", err)
	}
	if m.UCI() != "g1f3" {
		t.Errorf("Nf3 UCI = %q, want g1f3", m.UCI())
	}
}

func TestSANCastling(t *testing.T) {
	b, err := NewBoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := b.FindMove(E1, G1, NoPieceType)
	if err != nil {
		t.Fatal(err)
	}
	if san := b.SAN(m); san != "O-O" {
		t.Errorf("SAN(e1g1 castle) = %q, want O-O", san)
	}
}

func TestParseSANNullMoveAliases(t *testing.T) {
	b := NewBoard()
	for _, alias := range []string{"--", "Z0", "0000", "@@@@"} {
		m, err := b.ParseSAN(alias)
		if err != nil {
			t.Fatalf("ParseSAN(%q): %v", alias, err)
		}
		if !m.IsNull() {
			t.Errorf("ParseSAN(%q) should be the null move", alias)
		}
	}
}
