package gboard

import (
	"time"

	"chessground/src/base"
)

const (
	// seconds of position/fade animation
	animateDuration = 0.2
	// a figurine dropped within this window snaps to its matched square
	// on the next board update instead of animating
	dragSnapWindow = 200 * time.Millisecond
)

// Figurine is one animated piece sprite. pos is the interpolation start
// point while animating, the frozen position while fading, and the live
// cursor position while dragging.
type Figurine struct {
	square   base.Square
	piece    base.Piece
	pos      Pos
	time     time.Time
	lastDrag time.Time
	fading   bool
	replaced bool
	dragging bool
}

func (f *Figurine) Square() base.Square { return f.square }
func (f *Figurine) Piece() base.Piece   { return f.piece }
func (f *Figurine) Fading() bool        { return f.fading }
func (f *Figurine) Dragging() bool      { return f.dragging }

// SetPos restarts the position animation from p.
func (f *Figurine) SetPos(p Pos, now time.Time) {
	f.pos = p
	f.time = now
}

// Pos is the interpolated position in board units at the given instant.
func (f *Figurine) Pos(now time.Time) Pos {
	end := SquareToPos(f.square)
	switch {
	case f.dragging:
		return end
	case f.fading:
		return f.pos
	default:
		t := f.elapsed(now) / animateDuration
		return Pos{X: ease(f.pos.X, end.X, t), Y: ease(f.pos.Y, end.Y, t)}
	}
}

// Alpha is the opacity of the on-square sprite. A dragged piece leaves a
// faint ghost on its origin square while the full sprite follows the
// cursor.
func (f *Figurine) Alpha(now time.Time) float64 {
	if f.dragging {
		return 0.2 * f.alphaEasing(1.0, now)
	}
	return f.DragAlpha(now)
}

// DragAlpha is the full sprite opacity. A captured piece fades from half
// transparency when its square ends up occupied again, else from opaque.
func (f *Figurine) DragAlpha(now time.Time) float64 {
	from := 1.0
	if f.fading && f.replaced {
		from = 0.5
	}
	return f.alphaEasing(from, now)
}

func (f *Figurine) alphaEasing(from float64, now time.Time) float64 {
	if f.fading {
		return from * ease(1.0, 0.0, f.elapsed(now)/animateDuration)
	}
	return from
}

func (f *Figurine) elapsed(now time.Time) float64 {
	return now.Sub(f.time).Seconds()
}

func (f *Figurine) IsAnimating(now time.Time) bool {
	return !f.dragging && f.elapsed(now) <= animateDuration &&
		(f.fading || f.pos != SquareToPos(f.square))
}

// queueAnimation invalidates the cells the figurine covered at the last
// render and the cells it covers now.
func (f *Figurine) queueAnimation(t Transform, inv *damage, lastRender, now time.Time) {
	if !f.IsAnimating(lastRender) {
		return
	}
	p := f.Pos(lastRender)
	inv.addRect(t.InvalidateRect(p.X-0.5, p.Y-0.5, 1.0, 1.0))
	p = f.Pos(now)
	inv.addRect(t.InvalidateRect(p.X-0.5, p.Y-0.5, 1.0, 1.0))
}
