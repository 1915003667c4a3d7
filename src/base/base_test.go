package base

import (
	"strings"
	"testing"
)

func TestNewSquare(t *testing.T) {
	cases := []struct {
		file, rank int
		want       string
	}{
		{0, 0, "a1"},
		{7, 0, "h1"},
		{0, 7, "a8"},
		{7, 7, "h8"},
		{4, 3, "e4"},
	}
	for _, c := range cases {
		sq := NewSquare(c.file, c.rank)
		if sq.String() != c.want {
			t.Errorf("NewSquare(%d,%d) = %s, want %s", c.file, c.rank, sq, c.want)
		}
		if sq.File() != c.file || sq.Rank() != c.rank {
			t.Errorf("%s: file/rank round trip broken", c.want)
		}
	}
}

func TestSquareFromAlgebraic(t *testing.T) {
	sq, err := SquareFromAlgebraic("e4")
	if err != nil {
		t.Fatalf("parse e4: %v", err)
	}
	if sq != NewSquare(4, 3) {
		t.Errorf("parse e4 = %s", sq)
	}

	for _, bad := range []string{"", "e", "i4", "e9", "e44"} {
		if _, err := SquareFromAlgebraic(bad); err == nil {
			t.Errorf("parse %q: expected error", bad)
		}
	}
}

func TestSquareDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"a1", "a1", 0},
		{"a1", "b2", 1},
		{"a1", "h8", 7},
		{"e4", "e7", 3},
		{"b1", "g2", 5},
	}
	for _, c := range cases {
		a, _ := SquareFromAlgebraic(c.a)
		b, _ := SquareFromAlgebraic(c.b)
		if got := a.Distance(b); got != c.want {
			t.Errorf("Distance(%s,%s) = %d, want %d", c.a, c.b, got, c.want)
		}
		if got := b.Distance(a); got != c.want {
			t.Errorf("Distance(%s,%s) = %d, want %d", c.b, c.a, got, c.want)
		}
	}
}

func TestMoveString(t *testing.T) {
	e7, _ := SquareFromAlgebraic("e7")
	e8, _ := SquareFromAlgebraic("e8")
	m := Move{From: e7, To: e8, Promotion: Queen}
	if m.String() != "e7e8q" {
		t.Errorf("promotion move = %s, want e7e8q", m)
	}
	m = Move{From: e7, To: e8}
	if m.String() != "e7e8" {
		t.Errorf("plain move = %s, want e7e8", m)
	}
}

func TestPieceRuneRoundTrip(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for _, r := range []Role{Pawn, Knight, Bishop, Rook, Queen, King} {
			p := Piece{Role: r, Color: c}
			got := PieceFromRune(p.Rune())
			if got != p {
				t.Errorf("%c: round trip gave %v", p.Rune(), got)
			}
		}
	}
	if PieceFromRune('x').IsValid() {
		t.Error("unknown rune should give invalid piece")
	}
}

func TestStartingPlacement(t *testing.T) {
	p := StartingPlacement()
	if len(p) != 32 {
		t.Fatalf("starting placement has %d pieces", len(p))
	}
	e1, _ := SquareFromAlgebraic("e1")
	if p[e1] != (Piece{King, White}) {
		t.Errorf("e1 = %v", p[e1])
	}
	d8, _ := SquareFromAlgebraic("d8")
	if p[d8] != (Piece{Queen, Black}) {
		t.Errorf("d8 = %v", p[d8])
	}
}

func TestPlacementClone(t *testing.T) {
	p := StartingPlacement()
	c := p.Clone()
	e2, _ := SquareFromAlgebraic("e2")
	delete(c, e2)
	if _, ok := p[e2]; !ok {
		t.Error("clone aliases the original")
	}
}

func TestPlacementFEN(t *testing.T) {
	got := StartingPlacement().FEN(White)
	wantBoard := strings.SplitN(FEN_START_GAME, " ", 2)[0]
	if !strings.HasPrefix(got, wantBoard+" w") {
		t.Errorf("starting FEN = %q", got)
	}

	e4, _ := SquareFromAlgebraic("e4")
	p := Placement{e4: {King, White}}
	if got := p.FEN(Black); got != "8/8/8/8/4K3/8/8/8 b - - 0 1" {
		t.Errorf("lone king FEN = %q", got)
	}

	if got := (Placement{}).FEN(White); got != "8/8/8/8/8/8/8/8 w - - 0 1" {
		t.Errorf("empty FEN = %q", got)
	}
}
