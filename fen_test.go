package chess

import "testing"

func TestStartingFEN(t *testing.T) {
	b := NewBoard()
	if got := b.FEN(); got != StartingFEN {
		t.Errorf("FEN() = %q, want %q", got, StartingFEN)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3",
	}
	for _, fen := range fens {
		b, err := NewBoardFromFEN(fen)
		if err != nil {
			t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Errorf("round trip %q -> %q", fen, got)
		}
	}
}

func TestSetFENNormalizesZeroFullmove(t *testing.T) {
	b, err := NewBoardFromFEN("8/8/8/8/8/8/8/4K2k w - - 0 0")
	if err != nil {
		t.Fatal(err)
	}
	if b.FullmoveNumber != 1 {
		t.Errorf("fullmove 0 should normalize to 1, got %d", b.FullmoveNumber)
	}
}

func TestSetFENRejectsWrongFieldCount(t *testing.T) {
	_, err := NewBoardFromFEN("8/8/8/8/8/8/8/8 w - -")
	if err == nil {
		t.Errorf("expected error for short FEN")
	}
}

func TestEPDOperations(t *testing.T) {
	b := NewBoard()
	epd := b.EPD(EPDOperation{Opcode: "id", Operands: []string{"start position"}})
	ops, err := b.SetEPD(epd)
	if err != nil {
		t.Fatalf("SetEPD: %v", err)
	}
	if got := ops["id"]; len(got) != 1 || got[0] != "start position" {
		t.Errorf("id operand = %v, want [start position]", got)
	}
}
