package gui

import (
	"errors"

	"chessground/src/logx"
	"chessground/ui/gui/gbase"
	"chessground/ui/gui/gbase/gconf"
	"chessground/ui/gui/gboard"
	"chessground/ui/gui/gctx"
	"chessground/ui/gui/gdraw"
	"chessground/ui/gui/ghelper/gfont"
	"chessground/ui/gui/ghelper/gsprites"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

func NewGUI(first gdraw.SceneType, log logx.Logger) (*GUIProcessing, error) {
	cfg, err := gconf.NewGUIConfig()
	if err != nil {
		return nil, err
	}

	fonts := gfont.Basic()
	if cfg.FontAssets != "" {
		if f, err := gfont.LoadFonts(cfg.FontAssets); err == nil {
			fonts = f
		} else {
			log.Warnf("font assets: %v, using built-in", err)
		}
	}

	var pieces gboard.PieceSet = gsprites.NewVectorSet()
	if cfg.PieceAssets != "" {
		if s, err := gsprites.LoadAssetSet(cfg.PieceAssets); err == nil {
			pieces = s
		} else {
			log.Warnf("piece assets: %v, using built-in", err)
		}
	}

	ctx := gctx.NewGUIGameContext(cfg, fonts, pieces, log)
	gp := &GUIProcessing{ctx: ctx}
	gp.current = first.ToScene(nil, ctx)
	if gp.current == nil {
		gp.current = gdraw.NewGUIPlayDrawer(ctx)
	}
	return gp, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("Chessground")
	if err := ebiten.RunGame(gp); err != nil && !errors.Is(err, gbase.ErrExit) {
		return err
	}
	return gp.ctx.Config.Save()
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	if next != gdraw.SceneNotChanged {
		gp.current = next.ToScene(gp.current, gp.ctx)
	}
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
