package ui

import (
	"context"
	"fmt"
	"os"

	"chessground/src/logx"
	clic "chessground/ui/cli"
	"chessground/ui/gui"
	"chessground/ui/gui/gdraw"

	"github.com/notnil/chess"
	"github.com/urfave/cli/v3"
)

const logfile string = "chessground.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func RunGUI(c *cli.Command, first gdraw.SceneType) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	g, err := gui.NewGUI(first, GetLogger(file, c))
	if err != nil {
		return err
	}
	return g.Run()
}

func RunChessground() error {
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "string FEN format",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	cliff := []cli.Flag{ff, df, lf, cf}
	guiff := []cli.Flag{df, lf, cf}

	return (&cli.Command{
		Name:  "chessground",
		Usage: "chessboard widget demo",
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Flags: cliff,
				Action: func(ctx context.Context, c *cli.Command) error {
					game := chess.NewGame()
					if s := c.String("fen"); s != "" {
						fen, err := chess.FEN(s)
						if err != nil {
							fmt.Printf("error parse FEN: %v\n", err)
							return nil
						}
						game = chess.NewGame(fen)
					}

					clic.EnableANSI()
					cl := clic.NewCLI(game, clic.PrintPlacement)
					if err := cl.Run(); err != nil {
						fmt.Printf("error chessground: %v", err)
					}
					return nil
				},
			},
			{
				Name:  "gui",
				Flags: guiff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c, gdraw.ScenePlay); err != nil {
						fmt.Printf("error GUI: %v", err)
					}
					return nil
				},
			},
			{
				Name:  "editor",
				Flags: guiff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c, gdraw.SceneEditor); err != nil {
						fmt.Printf("error GUI: %v", err)
					}
					return nil
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RunGUI(c, gdraw.ScenePlay); err != nil {
				fmt.Printf("error GUI: %v", err)
			}
			return nil
		},
	}).Run(context.Background(), os.Args)
}
