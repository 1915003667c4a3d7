package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"chessground/src/rules"

	"github.com/notnil/chess"
	"golang.org/x/term"
)

type CLIProcessing struct {
	game     *chess.Game
	startFEN string
	draw     DrawFunc
	undone   []*chess.Move
	in       *os.File
	out      io.Writer
}

func NewCLI(g *chess.Game, draw DrawFunc) *CLIProcessing {
	start := g.Positions()[0].String()
	return &CLIProcessing{game: g, startFEN: start, draw: draw, in: os.Stdin, out: os.Stdout}
}

func (c *CLIProcessing) redraw() {
	c.draw(rules.Snapshot(c.game).Board)
	c.printStatus()
}

// raw processing
// - enter SAN move
// - left/right arrow keys to undo/redo
// - q or Ctrl+C to exit
// - redraw board every move
func (c *CLIProcessing) Run() error {
	fd := int(c.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	r := bufio.NewReader(c.in)
	var inputBuf strings.Builder

	c.redraw()
	fmt.Fprint(c.out, "\nType SAN and press Enter, left/right arrows to undo/redo, 'fen' 'pgn' to print, 'q' to quit.\n")

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		if b == 3 { // Ctrl+C
			fmt.Fprintln(c.out, "\nInterrupted")
			return nil
		}
		if b == 0x1b { // escape sequence — possible arrow
			b1, err := r.ReadByte()
			if err != nil {
				continue
			}
			b2, err := r.ReadByte()
			if err != nil {
				continue
			}
			if b1 == '[' {
				switch b2 {
				case 'D': // left arrow
					c.undo()
					c.redraw()
				case 'C': // right arrow
					c.redo()
					c.redraw()
				}
			}
			continue
		}

		if b == '\r' || b == '\n' {
			s := strings.TrimSpace(inputBuf.String())
			inputBuf.Reset()
			if s == "" {
				continue
			}
			if quit, err := c.command(s); quit {
				return err
			}
			continue
		}

		// printable ascii: append to buffer and echo
		if b >= 32 && b <= 126 {
			inputBuf.WriteByte(b)
			fmt.Fprintf(c.out, "%c", b)
		}
	}
}

// RunLineMode is the fallback when the terminal refuses raw mode.
func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprintln(c.out, "Enter SAN and press Enter. Use 'undo'/'redo' to navigate, 'q' to quit.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit, err := c.command(line); quit {
			return err
		}
	}
	return scanner.Err()
}

// command runs one input line and reports whether the session ends.
func (c *CLIProcessing) command(s string) (bool, error) {
	switch s {
	case "q", "Q", "quit":
		fmt.Fprintln(c.out, "\nQuitting")
		return true, nil
	case "undo":
		c.undo()
		c.redraw()
	case "redo":
		c.redo()
		c.redraw()
	case "fen":
		fmt.Fprintf(c.out, "\n%s\n", c.game.Position().String())
	case "pgn":
		fmt.Fprintf(c.out, "\n%s\n", c.game.String())
	default:
		if err := c.game.MoveStr(s); err != nil {
			fmt.Fprintf(c.out, "\nInvalid move: %s\n", s)
			c.redraw()
			return false, nil
		}
		c.undone = nil
		c.redraw()
		if c.game.Outcome() != chess.NoOutcome {
			fmt.Fprintf(c.out, "\nGame over: %s %s\n", c.game.Outcome(), c.game.Method())
			return true, nil
		}
	}
	return false, nil
}

// undo rolls the game back one move by replaying the shorter history onto
// a fresh game with the same start position.
func (c *CLIProcessing) undo() {
	moves := c.game.Moves()
	if len(moves) == 0 {
		return
	}
	c.undone = append(c.undone, moves[len(moves)-1])
	c.replay(moves[:len(moves)-1])
}

func (c *CLIProcessing) redo() {
	if len(c.undone) == 0 {
		return
	}
	last := c.undone[len(c.undone)-1]
	c.undone = c.undone[:len(c.undone)-1]
	if err := c.game.Move(last); err != nil {
		c.undone = nil
	}
}

func (c *CLIProcessing) replay(moves []*chess.Move) {
	g := chess.NewGame()
	if fen, err := chess.FEN(c.startFEN); err == nil {
		g = chess.NewGame(fen)
	}
	for _, m := range moves {
		if err := g.Move(m); err != nil {
			return
		}
	}
	c.game = g
}

func (c *CLIProcessing) printStatus() {
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "FEN: %s\n", c.game.Position().String())
	fmt.Fprintf(c.out, "Status: %s\n", statusString(c.game))
}

func statusString(g *chess.Game) string {
	switch g.Method() {
	case chess.Checkmate:
		return "Checkmate"
	case chess.Stalemate:
		return "Stalemate"
	case chess.Resignation, chess.DrawOffer, chess.ThreefoldRepetition,
		chess.FiftyMoveRule, chess.InsufficientMaterial:
		return g.Method().String()
	}
	if snap := rules.Snapshot(g); snap.Check != nil {
		return "Check"
	}
	return "Normal"
}
