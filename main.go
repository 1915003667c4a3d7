package main

import (
	"fmt"

	"chessground/ui"
)

func main() {
	if err := ui.RunChessground(); err != nil {
		fmt.Println(err)
	}
}
