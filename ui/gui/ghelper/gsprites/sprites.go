// Package gsprites provides piece sprite sets for the board widget: a
// PNG-backed set loaded from an assets directory and a self-contained
// vector set rendered at startup.
package gsprites

import (
	"fmt"
	"image/color"
	"math"

	"chessground/src/base"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// AssetSet serves sprites decoded from per-piece PNG files.
type AssetSet struct {
	images map[base.Piece]*ebiten.Image
}

var assetNames = map[base.Role]string{
	base.King:   "king",
	base.Queen:  "queen",
	base.Rook:   "rook",
	base.Bishop: "bishop",
	base.Knight: "knight",
	base.Pawn:   "pawn",
}

// LoadAssetSet reads <workdir>/{w,b}<role>60.png for all twelve pieces.
func LoadAssetSet(workdir string) (*AssetSet, error) {
	images := make(map[base.Piece]*ebiten.Image, 12)
	for role, name := range assetNames {
		for _, c := range []base.Color{base.White, base.Black} {
			prefix := "w"
			if c == base.Black {
				prefix = "b"
			}
			path := fmt.Sprintf("%s/%s%s60.png", workdir, prefix, name)
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("load piece sprite: %w", err)
			}
			images[base.Piece{Role: role, Color: c}] = img
		}
	}
	return &AssetSet{images: images}, nil
}

func (s *AssetSet) Image(p base.Piece) *ebiten.Image {
	return s.images[p]
}

// VectorSet serves flat vector silhouettes rendered once at construction.
// It needs no files on disk, which keeps the board usable when the asset
// directory is missing.
type VectorSet struct {
	images map[base.Piece]*ebiten.Image
}

const vectorSpriteSize = 128

func NewVectorSet() *VectorSet {
	images := make(map[base.Piece]*ebiten.Image, 12)
	for role := range assetNames {
		for _, c := range []base.Color{base.White, base.Black} {
			p := base.Piece{Role: role, Color: c}
			images[p] = renderVectorPiece(p)
		}
	}
	return &VectorSet{images: images}
}

func (s *VectorSet) Image(p base.Piece) *ebiten.Image {
	return s.images[p]
}

func renderVectorPiece(p base.Piece) *ebiten.Image {
	dc := gg.NewContext(vectorSpriteSize, vectorSpriteSize)

	fill := color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	line := color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	if p.Color == base.Black {
		fill, line = line, fill
	}

	tracePiece(dc, p.Role)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(line)
	dc.SetLineWidth(vectorSpriteSize * 0.04)
	dc.Stroke()

	return ebiten.NewImageFromImage(dc.Image())
}

// tracePiece builds the silhouette path for a role on a unit-square
// canvas. Shapes are deliberately simple: distinguishable at small
// sizes beats ornate.
func tracePiece(dc *gg.Context, role base.Role) {
	const s = vectorSpriteSize
	u := func(v float64) float64 { return v * s }

	// common plinth
	dc.MoveTo(u(0.20), u(0.90))
	dc.LineTo(u(0.80), u(0.90))
	dc.LineTo(u(0.74), u(0.78))
	dc.LineTo(u(0.26), u(0.78))
	dc.ClosePath()

	switch role {
	case base.Pawn:
		dc.NewSubPath()
		dc.DrawCircle(u(0.5), u(0.36), u(0.14))
		dc.NewSubPath()
		dc.MoveTo(u(0.34), u(0.78))
		dc.LineTo(u(0.44), u(0.48))
		dc.LineTo(u(0.56), u(0.48))
		dc.LineTo(u(0.66), u(0.78))
		dc.ClosePath()
	case base.Rook:
		dc.NewSubPath()
		dc.MoveTo(u(0.30), u(0.78))
		dc.LineTo(u(0.32), u(0.34))
		dc.LineTo(u(0.26), u(0.34))
		dc.LineTo(u(0.26), u(0.16))
		dc.LineTo(u(0.38), u(0.16))
		dc.LineTo(u(0.38), u(0.24))
		dc.LineTo(u(0.46), u(0.24))
		dc.LineTo(u(0.46), u(0.16))
		dc.LineTo(u(0.54), u(0.16))
		dc.LineTo(u(0.54), u(0.24))
		dc.LineTo(u(0.62), u(0.24))
		dc.LineTo(u(0.62), u(0.16))
		dc.LineTo(u(0.74), u(0.16))
		dc.LineTo(u(0.74), u(0.34))
		dc.LineTo(u(0.68), u(0.34))
		dc.LineTo(u(0.70), u(0.78))
		dc.ClosePath()
	case base.Knight:
		dc.NewSubPath()
		dc.MoveTo(u(0.32), u(0.78))
		dc.LineTo(u(0.36), u(0.50))
		dc.LineTo(u(0.26), u(0.44))
		dc.LineTo(u(0.30), u(0.34))
		dc.LineTo(u(0.46), u(0.14))
		dc.LineTo(u(0.52), u(0.20))
		dc.LineTo(u(0.70), u(0.28))
		dc.LineTo(u(0.74), u(0.48))
		dc.LineTo(u(0.68), u(0.78))
		dc.ClosePath()
	case base.Bishop:
		dc.NewSubPath()
		dc.DrawCircle(u(0.5), u(0.16), u(0.06))
		dc.NewSubPath()
		dc.MoveTo(u(0.36), u(0.78))
		dc.LineTo(u(0.36), u(0.52))
		dc.QuadraticTo(u(0.34), u(0.30), u(0.5), u(0.22))
		dc.QuadraticTo(u(0.66), u(0.30), u(0.64), u(0.52))
		dc.LineTo(u(0.64), u(0.78))
		dc.ClosePath()
	case base.Queen:
		dc.NewSubPath()
		dc.MoveTo(u(0.32), u(0.78))
		dc.LineTo(u(0.24), u(0.24))
		dc.LineTo(u(0.38), u(0.44))
		dc.LineTo(u(0.50), u(0.16))
		dc.LineTo(u(0.62), u(0.44))
		dc.LineTo(u(0.76), u(0.24))
		dc.LineTo(u(0.68), u(0.78))
		dc.ClosePath()
		for _, cx := range []float64{0.24, 0.50, 0.76} {
			dc.NewSubPath()
			dc.DrawCircle(u(cx), u(0.17), u(0.045))
		}
	case base.King:
		dc.NewSubPath()
		dc.MoveTo(u(0.47), u(0.12))
		dc.LineTo(u(0.53), u(0.12))
		dc.LineTo(u(0.53), u(0.17))
		dc.LineTo(u(0.58), u(0.17))
		dc.LineTo(u(0.58), u(0.23))
		dc.LineTo(u(0.53), u(0.23))
		dc.LineTo(u(0.53), u(0.30))
		dc.LineTo(u(0.47), u(0.30))
		dc.LineTo(u(0.47), u(0.23))
		dc.LineTo(u(0.42), u(0.23))
		dc.LineTo(u(0.42), u(0.17))
		dc.LineTo(u(0.47), u(0.17))
		dc.ClosePath()
		dc.NewSubPath()
		dc.MoveTo(u(0.34), u(0.78))
		dc.LineTo(u(0.30), u(0.40))
		dc.QuadraticTo(u(0.50), u(0.26), u(0.70), u(0.40))
		dc.LineTo(u(0.66), u(0.78))
		dc.ClosePath()
	default:
		dc.NewSubPath()
		dc.DrawCircle(u(0.5), u(0.45), u(0.3*math.Sqrt2/2))
	}
}
