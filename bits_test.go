package chess

import "testing"

func TestBitScanner(t *testing.T) {
	bb := A1.Bb() | D4.Bb() | H8.Bb()
	var got []Square
	sc := bb.Scan()
	for {
		sq, ok := sc.Next()
		if !ok {
			break
		}
		got = append(got, sq)
	}
	want := []Square{A1, D4, H8}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReverseBitScanner(t *testing.T) {
	bb := A1.Bb() | D4.Bb() | H8.Bb()
	sc := bb.ScanReverse()
	first, _ := sc.Next()
	if first != H8 {
		t.Errorf("first reverse square = %v, want H8", first)
	}
}

func TestFlipVertical(t *testing.T) {
	bb := A1.Bb()
	if flipVertical(bb) != A8.Bb() {
		t.Errorf("flipVertical(A1) != A8")
	}
}

func TestFlipHorizontal(t *testing.T) {
	bb := A1.Bb()
	if flipHorizontal(bb) != H1.Bb() {
		t.Errorf("flipHorizontal(A1) != H1")
	}
}

func TestFlipDiagonal(t *testing.T) {
	bb := A1.Bb()
	if flipDiagonal(bb) != A1.Bb() {
		t.Errorf("flipDiagonal(A1) should fix A1 (on the diagonal)")
	}
	if flipDiagonal(H1.Bb()) != A8.Bb() {
		t.Errorf("flipDiagonal(H1) != A8")
	}
}

func TestSquareDistance(t *testing.T) {
	if squareDistance(A1, H8) != 7 {
		t.Errorf("squareDistance(A1,H8) = %d, want 7", squareDistance(A1, H8))
	}
	if squareManhattanDistance(A1, H8) != 14 {
		t.Errorf("squareManhattanDistance(A1,H8) = %d, want 14", squareManhattanDistance(A1, H8))
	}
}

func TestSquareKnightDistance(t *testing.T) {
	if squareKnightDistance(A1, A1) != 0 {
		t.Errorf("knight distance to self should be 0")
	}
	if squareKnightDistance(A1, B3) != 1 {
		t.Errorf("squareKnightDistance(A1,B3) = %d, want 1", squareKnightDistance(A1, B3))
	}
	if squareKnightDistance(A1, C2) != 1 {
		t.Errorf("squareKnightDistance(A1,C2) = %d, want 1", squareKnightDistance(A1, C2))
	}
	if squareKnightDistance(A1, B2) != 4 {
		t.Errorf("squareKnightDistance(A1,B2) = %d, want 4 (corner special case)", squareKnightDistance(A1, B2))
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("e4")
	if err != nil || sq != E4 {
		t.Errorf("ParseSquare(e4) = %v, %v; want E4, nil", sq, err)
	}
	if _, err := ParseSquare("z9"); err == nil {
		t.Errorf("expected error for invalid square")
	}
	sq, err = ParseSquare("-")
	if err != nil || sq != NoSquare {
		t.Errorf("ParseSquare(-) = %v, %v; want NoSquare, nil", sq, err)
	}
}
