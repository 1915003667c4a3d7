package gboard

import (
	"image"
	"math"

	"chessground/src/base"
)

// Pos is a point in board units. X grows from the a-file edge, Y from the
// eighth-rank edge; the playing surface spans [0,8)x[0,8) and the border
// occupies the surrounding half unit.
type Pos struct {
	X float64
	Y float64
}

// SquareToPos returns the center of a square in board units.
func SquareToPos(sq base.Square) Pos {
	return Pos{X: 0.5 + float64(sq.File()), Y: 7.5 - float64(sq.Rank())}
}

// PosToSquare floors a board-unit point to a square, rejecting points
// outside the playing surface.
func PosToSquare(p Pos) (base.Square, bool) {
	x := math.Floor(p.X)
	y := math.Floor(p.Y)
	if x < 0 || x > 7 || y < 0 || y > 7 {
		return 0, false
	}
	return base.NewSquare(int(x), 7-int(y)), true
}

// Transform is the affine mapping from board units to widget pixels: a
// square of max(min(w,h),9) pixels centered in the widget, nine units
// across, rotated 180 degrees when oriented for black. The zero Transform
// (degenerate widget) is not invertible and all lookups through it fail.
type Transform struct {
	xx, xy, x0 float64
	yx, yy, y0 float64
}

func NewTransform(width, height int, orientation base.Color) Transform {
	if width <= 0 || height <= 0 {
		return Transform{}
	}

	size := width
	if height < size {
		size = height
	}
	if size < 9 {
		size = 9
	}

	s := float64(size) / 9.0
	if orientation == base.Black {
		// rotate by pi around the board center
		s = -s
	}

	return Transform{
		xx: s, x0: float64(width)/2.0 - 4.0*s,
		yy: s, y0: float64(height)/2.0 - 4.0*s,
	}
}

// UnitPx is the pixel size of one board unit.
func (t Transform) UnitPx() float64 {
	return math.Hypot(t.xx, t.yx)
}

func (t Transform) ToWidget(p Pos) (float64, float64) {
	return t.xx*p.X + t.xy*p.Y + t.x0, t.yx*p.X + t.yy*p.Y + t.y0
}

// TransformDistance scales a board-unit distance to pixels, ignoring
// translation.
func (t Transform) TransformDistance(dx, dy float64) (float64, float64) {
	return t.xx*dx + t.xy*dy, t.yx*dx + t.yy*dy
}

// ToBoard inverts the transform. It fails when the transform is not
// invertible, which only happens for a degenerate widget.
func (t Transform) ToBoard(x, y float64) (Pos, bool) {
	det := t.xx*t.yy - t.xy*t.yx
	if det == 0 {
		return Pos{}, false
	}
	x -= t.x0
	y -= t.y0
	return Pos{
		X: (t.yy*x - t.xy*y) / det,
		Y: (t.xx*y - t.yx*x) / det,
	}, true
}

// SquareAt resolves a widget pixel to a square, if any.
func (t Transform) SquareAt(x, y float64) (base.Square, bool) {
	p, ok := t.ToBoard(x, y)
	if !ok {
		return 0, false
	}
	return PosToSquare(p)
}

// InvalidateRect computes the minimal device-pixel rectangle covering a
// board-unit rectangle, snapped outward to the square grid so a lazily
// redrawn moving piece leaves no trail artifacts.
func (t Transform) InvalidateRect(x, y, w, h float64) image.Rectangle {
	x1, y1 := t.ToWidget(Pos{X: math.Floor(x), Y: math.Floor(y)})
	x2, y2 := t.ToWidget(Pos{X: math.Ceil(x + w), Y: math.Ceil(y + h)})

	xmin := int(math.Floor(math.Min(x1, x2)))
	ymin := int(math.Floor(math.Min(y1, y2)))
	xmax := int(math.Ceil(math.Max(x1, x2)))
	ymax := int(math.Ceil(math.Max(y1, y2)))

	return image.Rect(xmin, ymin, xmax, ymax)
}

func (t Transform) InvalidateSquare(sq base.Square) image.Rectangle {
	return t.InvalidateRect(float64(sq.File()), 7.0-float64(sq.Rank()), 1.0, 1.0)
}

// squareRectPx is the device-pixel rectangle of a square, for drawing.
func (t Transform) squareRectPx(sq base.Square) (x, y, w, h float64) {
	return t.rectPx(float64(sq.File()), 7.0-float64(sq.Rank()), 1.0, 1.0)
}

func (t Transform) rectPx(bx, by, bw, bh float64) (x, y, w, h float64) {
	x1, y1 := t.ToWidget(Pos{X: bx, Y: by})
	x2, y2 := t.ToWidget(Pos{X: bx + bw, Y: by + bh})
	return math.Min(x1, x2), math.Min(y1, y2), math.Abs(x2 - x1), math.Abs(y2 - y1)
}
