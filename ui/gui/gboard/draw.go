package gboard

import (
	"image/color"
	"math"
	"time"

	"chessground/src/base"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

// Draw renders the widget into screen. The widget extent follows the
// screen bounds; now is sampled once by the host so every animation in
// the frame interpolates against the same instant.
func (g *Ground) Draw(screen *ebiten.Image, now time.Time) {
	g.lastRender = now
	g.Resize(screen.Bounds().Dx(), screen.Bounds().Dy())

	t := g.transform()
	if t.UnitPx() == 0 {
		// degenerate widget, skip the frame
		return
	}

	// vector underlay: border, squares, highlights, move hints
	dc := gg.NewContext(g.width, g.height)
	g.drawBoard(dc, t)
	g.drawSelection(dc, t, now)
	screen.DrawImage(ebiten.NewImageFromImage(dc.Image()), nil)

	// figurines: fading first, static next, animating on top
	for _, f := range g.pieces.figurines {
		if f.fading {
			g.drawFigurine(screen, t, f, now)
		}
	}
	for _, f := range g.pieces.figurines {
		if !f.fading && !f.IsAnimating(now) {
			g.drawFigurine(screen, t, f, now)
		}
	}
	for _, f := range g.pieces.figurines {
		if !f.fading && f.IsAnimating(now) {
			g.drawFigurine(screen, t, f, now)
		}
	}

	// vector overlay: user shapes, promotion chooser backdrop and cells
	dc = gg.NewContext(g.width, g.height)
	g.drawShapes(dc, t)
	g.drawPromotionCells(dc, t)
	screen.DrawImage(ebiten.NewImageFromImage(dc.Image()), nil)

	g.drawDrag(screen, t, now)
	g.drawPromotionPieces(screen, t)
}

var (
	colBorder     = [3]float64{0.2, 0.2, 0.5}
	colBorderText = [3]float64{0.8, 0.8, 0.8}
	colDarkSq     = [3]float64{0.55, 0.64, 0.68}
	colLightSq    = [3]float64{0.87, 0.89, 0.90}
)

func (g *Ground) drawBoard(dc *gg.Context, t Transform) {
	// border
	x, y, w, h := t.rectPx(-0.5, -0.5, 9.0, 9.0)
	dc.SetRGB(colBorder[0], colBorder[1], colBorder[2])
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	// coordinates
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(colBorderText[0], colBorderText[1], colBorderText[2])
	for i := 0; i < 8; i++ {
		rankGlyph := string(rune('1' + i))
		px, py := t.ToWidget(Pos{X: -0.25, Y: 7.5 - float64(i)})
		dc.DrawStringAnchored(rankGlyph, px, py, 0.5, 0.35)
		px, py = t.ToWidget(Pos{X: 8.25, Y: 7.5 - float64(i)})
		dc.DrawStringAnchored(rankGlyph, px, py, 0.5, 0.35)

		fileGlyph := string(rune('a' + i))
		px, py = t.ToWidget(Pos{X: 0.5 + float64(i), Y: -0.25})
		dc.DrawStringAnchored(fileGlyph, px, py, 0.5, 0.35)
		px, py = t.ToWidget(Pos{X: 0.5 + float64(i), Y: 8.25})
		dc.DrawStringAnchored(fileGlyph, px, py, 0.5, 0.35)
	}

	// side-to-move dot
	if turn, ok := g.state.Turn(); ok {
		if turn == base.White {
			dc.SetRGB(1, 1, 1)
			px, py := t.ToWidget(Pos{X: 8.25, Y: 8.25})
			dc.DrawCircle(px, py, 0.1*t.UnitPx())
		} else {
			dc.SetRGB(0, 0, 0)
			px, py := t.ToWidget(Pos{X: 8.25, Y: -0.25})
			dc.DrawCircle(px, py, 0.1*t.UnitPx())
		}
		dc.Fill()
	}

	// squares
	for i := 0; i < 64; i++ {
		sq := base.Square(i)
		x, y, w, h := t.squareRectPx(sq)
		if (sq.File()+sq.Rank())%2 == 1 {
			dc.SetRGB(colLightSq[0], colLightSq[1], colLightSq[2])
		} else {
			dc.SetRGB(colDarkSq[0], colDarkSq[1], colDarkSq[2])
		}
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
	}

	// last move highlight
	if last, ok := g.state.LastMove(); ok {
		dc.SetRGBA(0.61, 0.78, 0.0, 0.41)
		x, y, w, h := t.squareRectPx(last.From)
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
		if last.To != last.From {
			x, y, w, h = t.squareRectPx(last.To)
			dc.DrawRectangle(x, y, w, h)
			dc.Fill()
		}
	}

	// check highlight, a radial red glow on the king square
	if check, ok := g.state.Check(); ok {
		cx, cy := t.ToWidget(SquareToPos(check))
		r := math.Hypot(0.5, 0.5) * t.UnitPx()
		grad := gg.NewRadialGradient(cx, cy, 0, cx, cy, r)
		grad.AddColorStop(0.0, color.NRGBA{R: 255, A: 255})
		grad.AddColorStop(0.25, color.NRGBA{R: 232, A: 255})
		grad.AddColorStop(0.89, color.NRGBA{R: 168})
		dc.SetFillStyle(grad)
		x, y, w, h := t.squareRectPx(check)
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
	}
}

func (g *Ground) drawSelection(dc *gg.Context, t Transform, now time.Time) {
	selected, ok := g.pieces.Selected()
	if !ok {
		return
	}

	dc.SetRGBA(0.08, 0.47, 0.11, 0.5)
	x, y, w, h := t.squareRectPx(selected)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	// hovered drop target
	if d := g.pieces.Dragging(); d != nil {
		if hovered, ok := PosToSquare(d.pos); ok && g.state.ValidMove(selected, hovered) {
			dc.SetRGBA(0.08, 0.47, 0.11, 0.25)
			x, y, w, h := t.squareRectPx(hovered)
			dc.DrawRectangle(x, y, w, h)
			dc.Fill()
		}
	}

	g.drawMoveHints(dc, t, selected)
}

// drawMoveHints marks the legal targets of the selected piece: a dot on
// empty squares, corner wedges on occupied ones.
func (g *Ground) drawMoveHints(dc *gg.Context, t Transform, selected base.Square) {
	dc.SetRGBA(0.08, 0.47, 0.11, 0.5)

	unit := t.UnitPx()
	radius := 0.12 * unit
	corner := 1.8 * 0.12 * unit

	for _, sq := range g.state.MoveTargets(selected) {
		if g.pieces.OccupiedAt(sq) {
			x, y, w, h := t.squareRectPx(sq)
			corners := [][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}}
			dirs := [][2]float64{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
			for i, c := range corners {
				dc.MoveTo(c[0], c[1])
				dc.LineTo(c[0]+dirs[i][0]*corner, c[1])
				dc.LineTo(c[0], c[1]+dirs[i][1]*corner)
				dc.ClosePath()
				dc.Fill()
			}
		} else {
			cx, cy := t.ToWidget(SquareToPos(sq))
			dc.DrawCircle(cx, cy, radius)
			dc.Fill()
		}
	}
}

func (g *Ground) drawFigurine(screen *ebiten.Image, t Transform, f *Figurine, now time.Time) {
	// the promotion overlay substitutes for the promoting piece
	if g.promotable.IsPromoting(f.square) {
		return
	}
	g.drawSprite(screen, t, f.piece, f.Pos(now), 1.0, f.Alpha(now))
}

// drawDrag draws the dragged piece under the cursor, on top of everything
// except the promotion chooser.
func (g *Ground) drawDrag(screen *ebiten.Image, t Transform, now time.Time) {
	if f := g.pieces.Dragging(); f != nil {
		g.drawSprite(screen, t, f.piece, f.pos, 1.0, f.DragAlpha(now))
	}
}

func (g *Ground) drawSprite(screen *ebiten.Image, t Transform, pc base.Piece, p Pos, scale, alpha float64) {
	if g.pieceSet == nil {
		return
	}
	img := g.pieceSet.Image(pc)
	if img == nil {
		return
	}

	unit := t.UnitPx() * scale
	iw := img.Bounds().Dx()
	s := unit / float64(iw)
	px, py := t.ToWidget(p)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(px-unit/2, py-unit/2)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (g *Ground) drawShapes(dc *gg.Context, t Transform) {
	for _, s := range g.drawable.shapes {
		drawShape(dc, t, s)
	}
	if g.drawable.drawing != nil {
		drawShape(dc, t, *g.drawable.drawing)
	}
}

func drawShape(dc *gg.Context, t Transform, s DrawShape) {
	const opacity = 0.5
	switch s.Brush {
	case BrushGreen:
		dc.SetRGBA(0.08, 0.47, 0.11, opacity)
	case BrushRed:
		dc.SetRGBA(0.53, 0.13, 0.13, opacity)
	case BrushBlue:
		dc.SetRGBA(0.0, 0.19, 0.53, opacity)
	case BrushYellow:
		dc.SetRGBA(0.90, 0.94, 0.0, opacity)
	}

	unit := t.UnitPx()
	ox, oy := t.ToWidget(SquareToPos(s.Orig))
	dx, dy := t.ToWidget(SquareToPos(s.Dest))

	if s.IsCircle() {
		stroke := 0.05 * unit
		dc.SetLineWidth(stroke)
		dc.DrawCircle(dx, dy, 0.5*unit-0.5*stroke)
		dc.Stroke()
		return
	}

	// arrow with a fixed head size and a margin before the target center
	marker := 0.75 * unit
	margin := 0.1 * unit

	vx, vy := dx-ox, dy-oy
	hyp := math.Hypot(vx, vy)

	shaftX := dx - vx*(marker+margin)/hyp
	shaftY := dy - vy*(marker+margin)/hyp
	headX := dx - vx*margin/hyp
	headY := dy - vy*margin/hyp

	dc.SetLineWidth(0.2 * unit)
	dc.DrawLine(ox, oy, shaftX, shaftY)
	dc.Stroke()

	dc.MoveTo(shaftX-vy*0.5*marker/hyp, shaftY+vx*0.5*marker/hyp)
	dc.LineTo(headX, headY)
	dc.LineTo(shaftX+vy*0.5*marker/hyp, shaftY-vx*0.5*marker/hyp)
	dc.LineTo(shaftX, shaftY)
	dc.ClosePath()
	dc.Fill()
}

func (g *Ground) drawPromotionCells(dc *gg.Context, t Transform) {
	pr := g.promotable.promoting
	if pr == nil {
		return
	}

	// dim the playing surface
	x, y, w, h := t.rectPx(0, 0, 8.0, 8.0)
	dc.SetRGBA(0, 0, 0, 0.5)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	unit := t.UnitPx()
	for i, role := range promotionRoles {
		if !g.state.LegalMove(pr.orig, pr.dest, role) {
			continue
		}
		rank := pr.cellRank(i)
		sq := base.NewSquare(pr.dest.File(), rank)

		// cell background
		if (sq.File()+rank)&1 == 1 {
			dc.SetRGB(0.25, 0.25, 0.25)
		} else {
			dc.SetRGB(0.18, 0.18, 0.18)
		}
		x, y, w, h := t.squareRectPx(sq)
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()

		radius, r, gc, b := pr.cellStyle(rank)
		dc.SetRGB(r, gc, b)
		cx, cy := t.ToWidget(SquareToPos(sq))
		dc.DrawCircle(cx, cy, radius*unit)
		dc.Fill()
	}
}

func (g *Ground) drawPromotionPieces(screen *ebiten.Image, t Transform) {
	pr := g.promotable.promoting
	if pr == nil {
		return
	}
	for i, role := range promotionRoles {
		if !g.state.LegalMove(pr.orig, pr.dest, role) {
			continue
		}
		rank := pr.cellRank(i)
		sq := base.NewSquare(pr.dest.File(), rank)
		radius, _, _, _ := pr.cellStyle(rank)
		scale := math.Sqrt2 * radius
		g.drawSprite(screen, t, base.Piece{Role: role, Color: pr.color}, SquareToPos(sq), scale, 1.0)
	}
}

// cellStyle is the radius and circle color of a chooser cell: neutral
// gray, easing to orange over the hover entrance animation.
func (pr *promoting) cellStyle(rank int) (radius, r, g, b float64) {
	if pr.hover != nil && pr.hover.square.Rank() == rank {
		e := pr.hover.elapsed
		return ease(0.5, math.Hypot(0.5, 0.5), e),
			ease(0.69, 1.0, e), ease(0.69, 0.65, e), ease(0.69, 0.0, e)
	}
	return 0.5, 0.69, 0.69, 0.69
}
