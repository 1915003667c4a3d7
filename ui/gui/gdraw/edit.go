package gdraw

import (
	"strings"
	"time"

	"chessground/src/base"
	"chessground/src/rules"
	"chessground/ui/gui/gbase"
	"chessground/ui/gui/gboard"
	"chessground/ui/gui/gctx"
	"chessground/ui/gui/ghelper"
	"chessground/ui/gui/ghelper/gclipboard"
	"chessground/ui/gui/ghelper/gdialog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// paletteRoles is the piece palette order, one column per color.
var paletteRoles = [...]base.Role{base.King, base.Queen, base.Rook, base.Bishop, base.Knight, base.Pawn}

// GUIEditDrawer is the free board editor: the widget runs without hints so
// every gesture passes through, and a piece palette stamps pieces onto
// squares directly.
type GUIEditDrawer struct {
	boardX, boardY int
	boardSize      int

	placement base.Placement
	ground    *gboard.Ground

	board *ebiten.Image
	dirty bool

	// palette
	paletteX, paletteY int
	cell               int
	picked             *base.Piece // nil means move mode

	buttons  []*gbase.Button
	idxClear int
	idxStart int
	idxLoad  int
	idxPaste int
	idxCopy  int
	idxPlay  int

	status   string
	mt       mouseTracker
	lastTick time.Time
}

func NewGUIEditDrawer(ctx *gctx.GUIGameContext) *GUIEditDrawer {
	ed := &GUIEditDrawer{
		placement: base.StartingPlacement(),
		lastTick:  time.Now(),
		dirty:     true,
		status:    "editing, click a palette piece to stamp",
	}

	ed.ground = gboard.New(ctx.Logx, ctx.Pieces)
	ed.ground.Drawable().SetEnabled(false)
	ed.ground.OnUserMove(func(m base.Move) {
		// free mode: any drag or click pair relocates the piece
		if pc, ok := ed.placement[m.From]; ok {
			delete(ed.placement, m.From)
			ed.placement[m.To] = pc
			ed.ground.SetBoard(ed.placement, time.Now())
		}
	})
	ed.ground.SetBoard(ed.placement, time.Now())

	ed.recalcLayout(ctx)
	ed.makeLayoutButtons(ctx)
	return ed
}

func (ed *GUIEditDrawer) recalcLayout(ctx *gctx.GUIGameContext) {
	ww := ctx.Config.WindowW
	wh := ctx.Config.WindowH

	size := ww - 400
	if size > wh-120 {
		size = wh - 120
	}
	if size < 320 {
		size = 320
	}
	if size != ed.boardSize {
		ed.boardSize = size
		ed.board = nil
		ed.dirty = true
	}
	ed.boardX = (ww - ed.boardSize) / 2
	ed.boardY = (wh-ed.boardSize)/2 - 20

	ed.cell = 48
	ed.paletteX = ed.boardX + ed.boardSize + 24
	ed.paletteY = ed.boardY + 40
}

func (ed *GUIEditDrawer) makeLayoutButtons(ctx *gctx.GUIGameContext) {
	ed.buttons = []*gbase.Button{}

	addBtn := func(label string, x, y, w, h int) int {
		img := ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
		b := &gbase.Button{
			Label: label,
			X:     x, Y: y, W: w, H: h,
			Image: img,
			Scale: 1.0, TargetScale: 1.0, AnimSpeed: 10.0,
		}
		idx := len(ed.buttons)
		ed.buttons = append(ed.buttons, b)
		return idx
	}

	x := ed.boardX - 200
	if x < 20 {
		x = 20
	}
	y := ed.boardY + 60
	w, h := 160, 48
	ed.idxClear = addBtn("Clear", x, y, w, h)
	y += h + 14
	ed.idxStart = addBtn("Start pos", x, y, w, h)
	y += h + 14
	ed.idxLoad = addBtn("Load FEN", x, y, w, h)
	y += h + 14
	ed.idxPaste = addBtn("Paste FEN", x, y, w, h)
	y += h + 14
	ed.idxCopy = addBtn("Copy FEN", x, y, w, h)
	y += h + 14
	ed.idxPlay = addBtn("Play", x, y, w, h)
}

func (ed *GUIEditDrawer) setPlacement(p base.Placement) {
	ed.placement = p
	ed.ground.SetBoard(ed.placement, time.Now())
}

func (ed *GUIEditDrawer) loadFEN(ctx *gctx.GUIGameContext, fen string) {
	p, err := rules.PlacementFromFEN(strings.TrimSpace(fen))
	if err != nil {
		ctx.Logx.Errorf("load position: %v", err)
		ed.status = "bad FEN"
		return
	}
	ed.setPlacement(p)
	ed.status = "position loaded"
}

func (ed *GUIEditDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	ed.recalcLayout(ctx)

	now := time.Now()
	dt := now.Sub(ed.lastTick).Seconds()
	ed.lastTick = now

	m := ed.mt.sample()

	for i, b := range ed.buttons {
		clicked := b.HandleInput(m.x, m.y, m.leftJustPressed, !m.leftDown && b.Pressed)
		b.UpdateAnim(dt)
		if clicked {
			switch i {
			case ed.idxClear:
				ed.setPlacement(base.Placement{})
			case ed.idxStart:
				ed.setPlacement(base.StartingPlacement())
			case ed.idxLoad:
				res, err := gdialog.OpenPosition("Load position")
				if err != nil {
					ctx.Logx.Errorf("open position: %v", err)
					break
				}
				ed.loadFEN(ctx, string(res.Data))
			case ed.idxPaste:
				s, err := gclipboard.ReadAll()
				if err != nil {
					ctx.Logx.Errorf("read clipboard: %v", err)
					break
				}
				ed.loadFEN(ctx, s)
			case ed.idxCopy:
				if err := gclipboard.WriteAll(ed.placement.FEN(base.White)); err != nil {
					ctx.Logx.Errorf("copy position: %v", err)
				}
			case ed.idxPlay:
				ctx.InitialFEN = ed.placement.FEN(base.White)
				ed.ground.Teardown()
				return ScenePlay, nil
			}
		}
	}

	if ed.handlePalette(m) {
		return SceneNotChanged, nil
	}

	if ed.picked != nil {
		ed.handleStamp(m, now)
	} else {
		ed.forwardPointer(m, now)
	}

	if ed.ground.IsAnimating(now) {
		gboard.QueueAnimation(ed.ground.ID(), now)
	}
	if _, _, ok := ed.ground.Damage(); ok {
		ed.dirty = true
	}
	return SceneNotChanged, nil
}

// handlePalette picks or unpicks a palette piece; picking the same piece
// again returns to move mode.
func (ed *GUIEditDrawer) handlePalette(m mouse) bool {
	if !m.leftJustPressed {
		return false
	}
	for col, color := range []base.Color{base.White, base.Black} {
		for row, role := range paletteRoles {
			x := ed.paletteX + col*(ed.cell+8)
			y := ed.paletteY + row*(ed.cell+8)
			if !ghelper.PointInRect(m.x, m.y, x, y, ed.cell, ed.cell) {
				continue
			}
			pc := base.Piece{Role: role, Color: color}
			if ed.picked != nil && *ed.picked == pc {
				ed.picked = nil
			} else {
				p := pc
				ed.picked = &p
			}
			return true
		}
	}
	return false
}

// handleStamp places or removes the picked piece on the clicked square.
func (ed *GUIEditDrawer) handleStamp(m mouse, now time.Time) {
	if !m.leftJustPressed {
		return
	}
	t := gboard.NewTransform(ed.boardSize, ed.boardSize, ed.ground.State().Orientation())
	sq, ok := t.SquareAt(float64(m.x-ed.boardX), float64(m.y-ed.boardY))
	if !ok {
		return
	}
	if ed.placement[sq] == *ed.picked {
		delete(ed.placement, sq)
	} else {
		ed.placement[sq] = *ed.picked
	}
	ed.ground.SetBoard(ed.placement, now)
}

func (ed *GUIEditDrawer) forwardPointer(m mouse, now time.Time) {
	lx := float64(m.x - ed.boardX)
	ly := float64(m.y - ed.boardY)

	if m.leftJustPressed {
		ed.ground.ButtonPress(lx, ly, gboard.ButtonPrimary, gboard.Modifiers{}, now)
	}
	if m.moved {
		ed.ground.MotionNotify(lx, ly, now)
	}
	if m.leftJustReleased {
		ed.ground.ButtonRelease(lx, ly, gboard.ButtonPrimary, now)
	}
}

func (ed *GUIEditDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	if ed.board == nil {
		ed.board = ebiten.NewImage(ed.boardSize, ed.boardSize)
		ed.dirty = true
	}
	if ed.dirty {
		ed.board.Clear()
		ed.ground.Draw(ed.board, time.Now())
		ed.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ed.boardX), float64(ed.boardY))
	screen.DrawImage(ed.board, op)

	ed.drawPalette(ctx, screen)

	for _, b := range ed.buttons {
		b.DrawAnimated(screen, ctx.Fonts.Normal, ctx.Theme)
	}

	text.Draw(screen, ed.status, ctx.Fonts.Normal,
		ed.boardX, ed.boardY+ed.boardSize+28, ctx.Theme.StatusText)
}

func (ed *GUIEditDrawer) drawPalette(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	for col, color := range []base.Color{base.White, base.Black} {
		for row, role := range paletteRoles {
			x := ed.paletteX + col*(ed.cell+8)
			y := ed.paletteY + row*(ed.cell+8)
			pc := base.Piece{Role: role, Color: color}

			ghelper.EbitenutilDrawRect(screen, float64(x), float64(y),
				float64(ed.cell), float64(ed.cell), ctx.Theme.ButtonFill)
			if ed.picked != nil && *ed.picked == pc {
				ghelper.EbitenutilDrawRectStroke(screen, float64(x), float64(y),
					float64(ed.cell), float64(ed.cell), 3, ctx.Theme.Accent)
			}

			img := ctx.Pieces.Image(pc)
			if img == nil {
				continue
			}
			s := float64(ed.cell) / float64(img.Bounds().Dx())
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(s, s)
			op.GeoM.Translate(float64(x), float64(y))
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(img, op)
		}
	}
}
