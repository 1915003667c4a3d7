package gboard

import (
	"image"
	"math"
	"testing"

	"chessground/src/base"
)

func sq(t *testing.T, s string) base.Square {
	t.Helper()
	v, err := base.SquareFromAlgebraic(s)
	if err != nil {
		t.Fatalf("square %q: %v", s, err)
	}
	return v
}

func TestSquareToPosRoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		want := base.Square(i)
		got, ok := PosToSquare(SquareToPos(want))
		if !ok || got != want {
			t.Fatalf("%s: round trip gave %s ok=%v", want, got, ok)
		}
	}
}

func TestPosToSquareOutside(t *testing.T) {
	for _, p := range []Pos{
		{X: -0.1, Y: 4},
		{X: 8.1, Y: 4},
		{X: 4, Y: -0.1},
		{X: 4, Y: 8.1},
	} {
		if _, ok := PosToSquare(p); ok {
			t.Errorf("%v: expected outside", p)
		}
	}
}

func TestSquareToPosCenters(t *testing.T) {
	if p := SquareToPos(sq(t, "a1")); p != (Pos{X: 0.5, Y: 7.5}) {
		t.Errorf("a1 center = %v", p)
	}
	if p := SquareToPos(sq(t, "h8")); p != (Pos{X: 7.5, Y: 0.5}) {
		t.Errorf("h8 center = %v", p)
	}
}

func TestNewTransformWhite(t *testing.T) {
	// 900x900 widget: one unit is 100px, board origin at 50,50
	tr := NewTransform(900, 900, base.White)

	if got := tr.UnitPx(); math.Abs(got-100) > 1e-9 {
		t.Fatalf("unit = %v", got)
	}

	x, y := tr.ToWidget(SquareToPos(sq(t, "a8")))
	if math.Abs(x-100) > 1e-9 || math.Abs(y-100) > 1e-9 {
		t.Errorf("a8 center at (%v,%v), want (100,100)", x, y)
	}

	x, y = tr.ToWidget(SquareToPos(sq(t, "h1")))
	if math.Abs(x-800) > 1e-9 || math.Abs(y-800) > 1e-9 {
		t.Errorf("h1 center at (%v,%v), want (800,800)", x, y)
	}
}

func TestNewTransformBlack(t *testing.T) {
	// flipped: a8 renders where h1 renders for white
	tr := NewTransform(900, 900, base.Black)

	x, y := tr.ToWidget(SquareToPos(sq(t, "a8")))
	if math.Abs(x-800) > 1e-9 || math.Abs(y-800) > 1e-9 {
		t.Errorf("a8 center at (%v,%v), want (800,800)", x, y)
	}
}

func TestTransformCentersNonSquareWidget(t *testing.T) {
	// wide widget: the board square hangs on the short side, centered
	tr := NewTransform(1800, 900, base.White)

	x, y := tr.ToWidget(Pos{X: 4, Y: 4})
	if math.Abs(x-900) > 1e-9 || math.Abs(y-450) > 1e-9 {
		t.Errorf("board center at (%v,%v), want (900,450)", x, y)
	}
}

func TestSquareAtInverse(t *testing.T) {
	tr := NewTransform(450, 450, base.White)
	for i := 0; i < 64; i++ {
		want := base.Square(i)
		x, y := tr.ToWidget(SquareToPos(want))
		got, ok := tr.SquareAt(x, y)
		if !ok || got != want {
			t.Fatalf("%s: SquareAt(%v,%v) = %s ok=%v", want, x, y, got, ok)
		}
	}

	if _, ok := tr.SquareAt(-10, -10); ok {
		t.Error("point outside the border should miss")
	}
}

func TestDegenerateTransform(t *testing.T) {
	tr := NewTransform(0, 0, base.White)
	if _, ok := tr.ToBoard(10, 10); ok {
		t.Error("degenerate transform should not invert")
	}
	if _, ok := tr.SquareAt(10, 10); ok {
		t.Error("degenerate transform should resolve no squares")
	}
}

func TestTinyWidgetClampsScale(t *testing.T) {
	// below 9px the scale clamps so the transform stays invertible
	tr := NewTransform(3, 3, base.White)
	if got := tr.UnitPx(); math.Abs(got-1) > 1e-9 {
		t.Errorf("unit = %v, want 1", got)
	}
	if _, ok := tr.ToBoard(1, 1); !ok {
		t.Error("clamped transform should invert")
	}
}

func TestInvalidateSquare(t *testing.T) {
	tr := NewTransform(900, 900, base.White)

	got := tr.InvalidateSquare(sq(t, "a8"))
	want := image.Rect(50, 50, 150, 150)
	if got != want {
		t.Errorf("a8 rect = %v, want %v", got, want)
	}

	// flipped orientation mirrors the rect
	trb := NewTransform(900, 900, base.Black)
	got = trb.InvalidateSquare(sq(t, "a8"))
	want = image.Rect(750, 750, 850, 850)
	if got != want {
		t.Errorf("a8 rect flipped = %v, want %v", got, want)
	}
}

func TestInvalidateRectSnapsOutward(t *testing.T) {
	tr := NewTransform(900, 900, base.White)

	// a piece mid-flight between squares covers both grid cells
	got := tr.InvalidateRect(2.4, 3.0, 1.0, 1.0)
	want := image.Rect(250, 350, 450, 450)
	if got != want {
		t.Errorf("rect = %v, want %v", got, want)
	}
}

func TestEase(t *testing.T) {
	if got := ease(0, 1, 0); got != 0 {
		t.Errorf("ease at 0 = %v", got)
	}
	if got := ease(0, 1, 1); got != 1 {
		t.Errorf("ease at 1 = %v", got)
	}
	if got := ease(0, 1, 0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("ease at 0.5 = %v", got)
	}
	// clamped outside [0,1]
	if got := ease(2, 6, -1); got != 2 {
		t.Errorf("ease below range = %v", got)
	}
	if got := ease(2, 6, 9); got != 6 {
		t.Errorf("ease above range = %v", got)
	}
	// slow start
	if got := ease(0, 1, 0.25); math.Abs(got-0.0625) > 1e-9 {
		t.Errorf("ease at 0.25 = %v, want 0.0625", got)
	}
}
