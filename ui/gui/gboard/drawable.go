package gboard

import (
	"chessground/src/base"

	"golang.org/x/exp/slices"
)

// DrawBrush is the color of a user annotation, chosen by the modifier
// keys held when the drawing starts.
type DrawBrush uint8

const (
	BrushGreen DrawBrush = iota
	BrushRed
	BrushBlue
	BrushYellow
)

func (b DrawBrush) String() string {
	switch b {
	case BrushGreen:
		return "green"
	case BrushRed:
		return "red"
	case BrushBlue:
		return "blue"
	case BrushYellow:
		return "yellow"
	}
	return "invalid"
}

func BrushFromModifiers(mods Modifiers) DrawBrush {
	switch {
	case mods.Shift && mods.Alt:
		return BrushYellow
	case mods.Alt:
		return BrushBlue
	case mods.Shift:
		return BrushRed
	default:
		return BrushGreen
	}
}

// DrawShape is an arrow or, when Orig == Dest, a circle drawn on the board.
type DrawShape struct {
	Orig  base.Square
	Dest  base.Square
	Brush DrawBrush
}

func (s DrawShape) IsCircle() bool { return s.Orig == s.Dest }
func (s DrawShape) IsArrow() bool  { return s.Orig != s.Dest }

// Drawable is the user-annotation overlay: committed shapes plus the one
// being drawn while the secondary button is held.
type Drawable struct {
	drawing      *DrawShape
	shapes       []DrawShape
	enabled      bool
	eraseOnClick bool
}

func NewDrawable() *Drawable {
	return &Drawable{enabled: true, eraseOnClick: true}
}

func (d *Drawable) Shapes() []DrawShape {
	return slices.Clone(d.shapes)
}

func (d *Drawable) SetEnabled(v bool)      { d.enabled = v }
func (d *Drawable) SetEraseOnClick(v bool) { d.eraseOnClick = v }

// mouseDown starts a shape on the secondary button, or clears all shapes
// on a primary click. It reports whether the shape list changed.
func (d *Drawable) mouseDown(ec *eventCtx, btn Button, mods Modifiers) bool {
	if !d.enabled {
		return false
	}

	switch btn {
	case ButtonPrimary:
		if d.eraseOnClick && len(d.shapes) > 0 {
			d.shapes = nil
			ec.inv.addAll()
			return true
		}
	case ButtonSecondary:
		d.drawing = nil
		if ec.square != nil {
			d.drawing = &DrawShape{Orig: *ec.square, Dest: *ec.square, Brush: BrushFromModifiers(mods)}
		}
		ec.inv.addAll()
	}
	return false
}

func (d *Drawable) mouseMove(ec *eventCtx) {
	if d.drawing == nil {
		return
	}
	dest := d.drawing.Orig
	if ec.square != nil {
		dest = *ec.square
	}
	if d.drawing.Dest != dest {
		ec.inv.addAll()
	}
	d.drawing.Dest = dest
}

// mouseUp commits the in-progress shape. Committing over a shape with the
// same origin and destination removes it instead; the brush is not part
// of shape identity.
func (d *Drawable) mouseUp(ec *eventCtx) bool {
	if d.drawing == nil {
		return false
	}
	drawing := *d.drawing
	d.drawing = nil
	ec.inv.addAll()

	if !d.enabled {
		return false
	}

	drawing.Dest = drawing.Orig
	if ec.square != nil {
		drawing.Dest = *ec.square
	}

	n := len(d.shapes)
	d.shapes = slices.DeleteFunc(d.shapes, func(s DrawShape) bool {
		return s.Orig == drawing.Orig && s.Dest == drawing.Dest
	})
	if n == len(d.shapes) {
		d.shapes = append(d.shapes, drawing)
	}
	return true
}
