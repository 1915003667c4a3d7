package gdraw

import (
	"chessground/ui/gui/gctx"

	"github.com/hajimehoshi/ebiten/v2"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIGameContext) (SceneType, error)
	Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image)
}

type SceneType int

const (
	ScenePlay SceneType = iota
	SceneEditor
	SceneNotChanged
)

func (t SceneType) ToScene(s Scene, ctx *gctx.GUIGameContext) Scene {
	switch t {
	case ScenePlay:
		s = NewGUIPlayDrawer(ctx)
	case SceneEditor:
		s = NewGUIEditDrawer(ctx)
	case SceneNotChanged:
	default:
	}
	return s
}

// mouse captures the per-frame pointer sample with edge detection against
// the previous frame.
type mouse struct {
	x, y              int
	leftDown          bool
	rightDown         bool
	leftJustPressed   bool
	leftJustReleased  bool
	rightJustPressed  bool
	rightJustReleased bool
	moved             bool
}

type mouseTracker struct {
	prevLeft  bool
	prevRight bool
	prevX     int
	prevY     int
}

func (mt *mouseTracker) sample() mouse {
	mx, my := ebiten.CursorPosition()
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	m := mouse{
		x: mx, y: my,
		leftDown:          left,
		rightDown:         right,
		leftJustPressed:   left && !mt.prevLeft,
		leftJustReleased:  !left && mt.prevLeft,
		rightJustPressed:  right && !mt.prevRight,
		rightJustReleased: !right && mt.prevRight,
		moved:             mx != mt.prevX || my != mt.prevY,
	}
	mt.prevLeft = left
	mt.prevRight = right
	mt.prevX = mx
	mt.prevY = my
	return m
}
