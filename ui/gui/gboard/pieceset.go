package gboard

import (
	"chessground/src/base"

	"github.com/hajimehoshi/ebiten/v2"
)

// PieceSet supplies the sprite for each piece. Implementations render at
// their own resolution; the widget scales sprites to the square size.
type PieceSet interface {
	Image(p base.Piece) *ebiten.Image
}
