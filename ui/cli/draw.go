package cli

import (
	"fmt"

	"chessground/src/base"
)

type DrawFunc func(p base.Placement)

func pieceGlyph(p base.Piece) string {
	glyphs := map[base.Piece]string{
		{Role: base.King, Color: base.White}:   "♔",
		{Role: base.Queen, Color: base.White}:  "♕",
		{Role: base.Rook, Color: base.White}:   "♖",
		{Role: base.Bishop, Color: base.White}: "♗",
		{Role: base.Knight, Color: base.White}: "♘",
		{Role: base.Pawn, Color: base.White}:   "♙",
		{Role: base.King, Color: base.Black}:   "♚",
		{Role: base.Queen, Color: base.Black}:  "♛",
		{Role: base.Rook, Color: base.Black}:   "♜",
		{Role: base.Bishop, Color: base.Black}: "♝",
		{Role: base.Knight, Color: base.Black}: "♞",
		{Role: base.Pawn, Color: base.Black}:   "♟",
	}
	if g, ok := glyphs[p]; ok {
		return g
	}
	return " "
}

// PrintPlacement renders the board to stdout with ANSI colors.
func PrintPlacement(p base.Placement) {
	const (
		reset   = "\033[0m"
		lightBg = "\033[47m"
		darkBg  = "\033[100m"
		whiteF  = "\033[97m"
		blackF  = "\033[30m"
		dimF    = "\033[90m"
	)

	fmt.Println()
	fmt.Println("   a  b  c  d  e  f  g  h")
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			pc, occupied := p[base.NewSquare(file, rank)]
			g := pieceGlyph(pc)

			lightSquare := (rank+file)%2 == 1

			var bg, fg string
			if lightSquare {
				bg = lightBg
				if !occupied {
					fg = dimF
				} else {
					fg = blackF
				}
			} else {
				bg = darkBg
				switch {
				case occupied && pc.Color == base.White:
					fg = whiteF
				case occupied:
					fg = blackF
				default:
					fg = dimF
				}
			}

			fmt.Printf("%s%s %s %s", bg, fg, g, reset)
		}
		fmt.Printf(" %d\n", rank+1)
	}
	fmt.Println("   a  b  c  d  e  f  g  h")
	fmt.Println()
}
