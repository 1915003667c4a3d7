package gboard

import (
	"image"
	"time"

	"chessground/src/base"
)

// ease interpolates with cubic in/out easing, clamped to [0,1].
func ease(start, end, t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	var e float64
	if t >= 0.5 {
		e = (t-1)*(2*t-2)*(2*t-2) + 1
	} else {
		e = 4 * t * t * t
	}
	return start + (end-start)*e
}

// damage accumulates redraw requests for one event tick. All three layers
// may request repaint independently; the widget coalesces them into one
// region per frame.
type damage struct {
	full bool
	any  bool
	rect image.Rectangle
}

func (d *damage) addAll() {
	d.full = true
	d.any = true
}

func (d *damage) addRect(r image.Rectangle) {
	if r.Empty() {
		return
	}
	if d.any {
		d.rect = d.rect.Union(r)
	} else {
		d.rect = r
	}
	d.any = true
}

// take returns the pending region and clears it. full damage is reported
// as the zero rectangle with ok=true through Ground.Damage.
func (d *damage) take() (image.Rectangle, bool, bool) {
	r, full, ok := d.rect, d.full, d.any
	*d = damage{}
	return r, full, ok
}

// eventCtx resolves one pointer event against the current transform.
// square is nil when the pointer is off the board or the widget is
// degenerate; handlers degrade gracefully in that case.
type eventCtx struct {
	t      Transform
	pos    Pos
	square *base.Square
	now    time.Time
	inv    *damage
}
