package chess

import "testing"

func TestIsRepetitionOneAlwaysTrue(t *testing.T) {
	b := NewBoard()
	if !b.isRepetition(1) {
		t.Errorf("isRepetition(1) should always be true")
	}
	mustPushSAN(t, b, "Nf3")
	if !b.isRepetition(1) {
		t.Errorf("isRepetition(1) should always be true, even mid-game")
	}
}

func TestThreefoldRepetitionByKnightShuffle(t *testing.T) {
	b := NewBoard()
	moves := []string{"Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1", "Ng8"}
	for _, san := range moves {
		mustPushSAN(t, b, san)
	}
	if !b.isRepetition(3) {
		t.Errorf("knight shuffle back to the start should be a threefold repetition")
	}
	outcome := b.Outcome(true)
	if outcome == nil || outcome.Termination != ThreefoldRepetition {
		t.Errorf("Outcome(true) after knight shuffle = %v, want ThreefoldRepetition", outcome)
	}
	if b.Outcome(false) != nil {
		t.Errorf("Outcome(false) should not claim a draw that requires claimDraw")
	}
}

func TestCanClaimThreefoldRepetition(t *testing.T) {
	b := NewBoard()
	moves := []string{"Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1", "Ng8"}
	for _, san := range moves {
		mustPushSAN(t, b, san)
	}
	if !b.canClaimThreefoldRepetition() {
		t.Errorf("canClaimThreefoldRepetition should be true after the knight shuffle")
	}
}

func TestInsufficientMaterialKingsOnly(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !b.isInsufficientMaterial() {
		t.Errorf("bare kings should be insufficient material")
	}
	outcome := b.Outcome(false)
	if outcome == nil || outcome.Termination != InsufficientMaterial {
		t.Errorf("Outcome() with bare kings = %v, want InsufficientMaterial", outcome)
	}
}

func TestInsufficientMaterialOppositeComplexBishops(t *testing.T) {
	// White has a light-squared bishop (f1), Black has a dark-squared
	// bishop (d8); each side alone looks like a lone-bishop draw, but the
	// two bishops together span both color complexes, so this is not
	// insufficient material.
	b, err := NewBoardFromFEN("3bk3/8/8/8/8/8/8/4KB2 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if b.isInsufficientMaterial() {
		t.Errorf("opposite-complex bishops on either side should not be insufficient material")
	}
	if outcome := b.Outcome(false); outcome != nil && outcome.Termination == InsufficientMaterial {
		t.Errorf("Outcome() = %v, want no InsufficientMaterial termination", outcome)
	}
}

func TestInsufficientMaterialSameComplexBishops(t *testing.T) {
	// f1 and g6 are both light squares.
	b, err := NewBoardFromFEN("4k3/8/6b1/8/8/8/8/4KB2 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !b.isInsufficientMaterial() {
		t.Errorf("same-complex bishops with no pawns/knights should be insufficient material")
	}
}

func TestCheckmateOutcome(t *testing.T) {
	b, err := NewBoardFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsCheckmate() {
		t.Fatalf("fool's mate position should be checkmate")
	}
	outcome := b.Outcome(false)
	if outcome == nil || outcome.Termination != Checkmate || !outcome.HasWinner || outcome.Winner != Black {
		t.Errorf("Outcome() = %v, want checkmate won by black", outcome)
	}
}
