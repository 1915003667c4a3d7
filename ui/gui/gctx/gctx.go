package gctx

import (
	"chessground/src/logx"
	"chessground/ui/gui/gbase"
	"chessground/ui/gui/gbase/gconf"
	"chessground/ui/gui/gboard"
	"chessground/ui/gui/ghelper/gfont"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Config *gconf.Config
	Theme  gbase.Palette
	Fonts  *gfont.Fonts
	Pieces gboard.PieceSet
	Logx   logx.Logger

	// InitialFEN hands a position from the editor to the play scene.
	InitialFEN string
}

func NewGUIGameContext(c *gconf.Config, f *gfont.Fonts, p gboard.PieceSet, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Config: c,
		Theme:  gbase.PaletteFromString(c.Theme),
		Fonts:  f,
		Pieces: p,
		Logx:   l,
	}
}
