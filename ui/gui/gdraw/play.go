package gdraw

import (
	"fmt"
	"time"

	"chessground/src/base"
	"chessground/src/rules"
	"chessground/ui/gui/gbase"
	"chessground/ui/gui/gboard"
	"chessground/ui/gui/gctx"
	"chessground/ui/gui/ghelper"
	"chessground/ui/gui/ghelper/gclipboard"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/notnil/chess"
)

// GUIPlayDrawer hosts a game against yourself: the board widget wired to a
// rules engine, with every user move validated and applied.
type GUIPlayDrawer struct {
	// layout
	boardX, boardY int // top-left pixel
	boardSize      int // pixel size

	game   *chess.Game
	ground *gboard.Ground

	board *ebiten.Image // widget offscreen
	dirty bool

	// buttons
	buttons   []*gbase.Button
	idxNew    int
	idxFlip   int
	idxCopy   int
	idxEditor int
	idxExit   int

	status   string
	mt       mouseTracker
	lastTick time.Time
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{
		lastTick: time.Now(),
		dirty:    true,
	}

	pd.game = chess.NewGame()
	if ctx.InitialFEN != "" {
		if fen, err := chess.FEN(ctx.InitialFEN); err == nil {
			pd.game = chess.NewGame(fen)
		} else {
			ctx.Logx.Errorf("bad position handed to play scene: %v", err)
		}
		ctx.InitialFEN = ""
	}

	pd.ground = gboard.New(ctx.Logx, ctx.Pieces)
	pd.ground.Drawable().SetEraseOnClick(ctx.Config.EraseOnClick)
	pd.ground.OnUserMove(pd.applyMove(ctx))
	pd.ground.OnShapesChanged(func(shapes []gboard.DrawShape) {
		ctx.Logx.Debugf("shapes changed, %d on board", len(shapes))
	})
	pd.ground.SetPosition(rules.Snapshot(pd.game), time.Now())

	pd.recalcLayout(ctx)
	pd.makeLayoutButtons(ctx)
	pd.refreshStatus()
	return pd
}

func (pd *GUIPlayDrawer) recalcLayout(ctx *gctx.GUIGameContext) {
	ww := ctx.Config.WindowW
	wh := ctx.Config.WindowH

	size := ww - 400
	if size > wh-120 {
		size = wh - 120
	}
	if size < 320 {
		size = 320
	}
	if size != pd.boardSize {
		pd.boardSize = size
		pd.board = nil
		pd.dirty = true
	}
	pd.boardX = (ww - pd.boardSize) / 2
	pd.boardY = (wh-pd.boardSize)/2 - 20
}

func (pd *GUIPlayDrawer) makeLayoutButtons(ctx *gctx.GUIGameContext) {
	pd.buttons = []*gbase.Button{}

	addBtn := func(label string, x, y, w, h int) int {
		img := ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
		b := &gbase.Button{
			Label: label,
			X:     x, Y: y, W: w, H: h,
			Image: img,
			Scale: 1.0, TargetScale: 1.0, AnimSpeed: 10.0,
		}
		idx := len(pd.buttons)
		pd.buttons = append(pd.buttons, b)
		return idx
	}

	x := pd.boardX - 200
	if x < 20 {
		x = 20
	}
	y := pd.boardY + 100
	w, h := 160, 48
	pd.idxNew = addBtn("New game", x, y, w, h)
	y += h + 14
	pd.idxFlip = addBtn("Flip", x, y, w, h)
	y += h + 14
	pd.idxCopy = addBtn("Copy FEN", x, y, w, h)
	y += h + 14
	pd.idxEditor = addBtn("Editor", x, y, w, h)
	y += h + 14
	pd.idxExit = addBtn("Exit", x, y, w, h)
}

// applyMove is the widget callback: the move arrives already validated, so
// a lookup failure means the hints and the game disagree.
func (pd *GUIPlayDrawer) applyMove(ctx *gctx.GUIGameContext) gboard.UserMoveFunc {
	return func(m base.Move) {
		mv, err := rules.FindMove(pd.game, m)
		if err != nil {
			ctx.Logx.Errorf("no game move for %s: %v", m, err)
			return
		}
		if err := pd.game.Move(mv); err != nil {
			ctx.Logx.Errorf("apply %s: %v", m, err)
			return
		}
		pd.ground.SetPosition(rules.Snapshot(pd.game), time.Now())
		pd.refreshStatus()
	}
}

func (pd *GUIPlayDrawer) refreshStatus() {
	switch pd.game.Outcome() {
	case chess.WhiteWon:
		pd.status = "1-0 " + pd.game.Method().String()
	case chess.BlackWon:
		pd.status = "0-1 " + pd.game.Method().String()
	case chess.Draw:
		pd.status = "1/2-1/2 " + pd.game.Method().String()
	default:
		turn := "white"
		if pd.game.Position().Turn() == chess.Black {
			turn = "black"
		}
		pd.status = fmt.Sprintf("%s to move", turn)
	}
}

func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	pd.recalcLayout(ctx)

	now := time.Now()
	dt := now.Sub(pd.lastTick).Seconds()
	pd.lastTick = now

	m := pd.mt.sample()

	// Buttons handling
	for i, b := range pd.buttons {
		clicked := b.HandleInput(m.x, m.y, m.leftJustPressed, !m.leftDown && b.Pressed)
		b.UpdateAnim(dt)
		if clicked {
			switch i {
			case pd.idxNew:
				pd.game = chess.NewGame()
				pd.ground.SetPosition(rules.Snapshot(pd.game), now)
				pd.refreshStatus()
			case pd.idxFlip:
				pd.ground.Flip()
			case pd.idxCopy:
				if err := gclipboard.WriteAll(pd.game.Position().String()); err != nil {
					ctx.Logx.Errorf("copy position: %v", err)
				}
			case pd.idxEditor:
				pd.ground.Teardown()
				return SceneEditor, nil
			case pd.idxExit:
				pd.ground.Teardown()
				return SceneNotChanged, gbase.ErrExit
			}
		}
	}

	pd.forwardPointer(m, now)

	if pd.ground.IsAnimating(now) {
		gboard.QueueAnimation(pd.ground.ID(), now)
	}
	if _, _, ok := pd.ground.Damage(); ok {
		pd.dirty = true
	}
	return SceneNotChanged, nil
}

// forwardPointer translates window coordinates into the widget's frame
// and replays the frame's pointer edges on it.
func (pd *GUIPlayDrawer) forwardPointer(m mouse, now time.Time) {
	lx := float64(m.x - pd.boardX)
	ly := float64(m.y - pd.boardY)
	mods := gboard.Modifiers{
		Shift: ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		Alt:   ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight),
	}

	if m.leftJustPressed {
		pd.ground.ButtonPress(lx, ly, gboard.ButtonPrimary, mods, now)
	}
	if m.rightJustPressed {
		pd.ground.ButtonPress(lx, ly, gboard.ButtonSecondary, mods, now)
	}
	if m.moved {
		pd.ground.MotionNotify(lx, ly, now)
	}
	if m.leftJustReleased {
		pd.ground.ButtonRelease(lx, ly, gboard.ButtonPrimary, now)
	}
	if m.rightJustReleased {
		pd.ground.ButtonRelease(lx, ly, gboard.ButtonSecondary, now)
	}
}

func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	if pd.board == nil {
		pd.board = ebiten.NewImage(pd.boardSize, pd.boardSize)
		pd.dirty = true
	}
	if pd.dirty {
		pd.board.Clear()
		pd.ground.Draw(pd.board, time.Now())
		pd.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pd.boardX), float64(pd.boardY))
	screen.DrawImage(pd.board, op)

	ghelper.EbitenutilDrawRectStroke(screen,
		float64(pd.boardX)-2, float64(pd.boardY)-2,
		float64(pd.boardSize)+4, float64(pd.boardSize)+4,
		2, ctx.Theme.ButtonStroke)

	for _, b := range pd.buttons {
		b.DrawAnimated(screen, ctx.Fonts.Normal, ctx.Theme)
	}

	text.Draw(screen, pd.status, ctx.Fonts.Normal,
		pd.boardX, pd.boardY+pd.boardSize+28, ctx.Theme.StatusText)
}
