package main

import (
	"fmt"
	"os"

	"chessground/src/logx"
	"chessground/ui/gui"
	"chessground/ui/gui/gdraw"
)

func GetLogger() *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString("debug"),
		false,
		true,
	)
	l.InitLogger(os.Stdout)
	return l
}

func RunGUI() error {
	logger := GetLogger()
	g, err := gui.NewGUI(gdraw.ScenePlay, logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %v", err)
	}
	return g.Run()
}

func main() {
	RunGUI()
}
