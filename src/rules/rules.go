// Package rules adapts the external rules engine (github.com/notnil/chess)
// to the snapshot format the board widget consumes. The widget itself never
// imports this package; hosts build snapshots here and push them in.
package rules

import (
	"fmt"

	"chessground/src/base"
	"chessground/src/position"

	"github.com/notnil/chess"
)

// Snapshot converts the current game state into a widget snapshot:
// placement, exhaustive legal moves, check hint and last move hint.
func Snapshot(g *chess.Game) position.Snapshot {
	pos := g.Position()

	board := make(base.Placement, 32)
	for sq, pc := range pos.Board().SquareMap() {
		if pc != chess.NoPiece {
			board[convSquare(sq)] = convPiece(pc)
		}
	}

	valid := g.ValidMoves()
	legals := make([]base.Move, 0, len(valid))
	for _, m := range valid {
		legals = append(legals, base.Move{
			From:      convSquare(m.S1()),
			To:        convSquare(m.S2()),
			Promotion: convRole(m.Promo()),
		})
	}

	snap := position.Snapshot{Board: board, Legals: legals}

	turn := convColor(pos.Turn())
	snap.Turn = &turn

	moves := g.Moves()
	if len(moves) > 0 {
		last := moves[len(moves)-1]
		snap.LastMove = &position.LastMove{
			From: convSquare(last.S1()),
			To:   convSquare(last.S2()),
		}
		// the engine tags a move that gives check
		if last.HasTag(chess.Check) {
			if king, ok := kingOf(board, turn); ok {
				snap.Check = &king
			}
		}
	}

	return snap
}

// FindMove locates the engine move matching a widget move candidate.
func FindMove(g *chess.Game, m base.Move) (*chess.Move, error) {
	for _, vm := range g.ValidMoves() {
		if convSquare(vm.S1()) == m.From && convSquare(vm.S2()) == m.To && convRole(vm.Promo()) == m.Promotion {
			return vm, nil
		}
	}
	return nil, fmt.Errorf("no legal move %s", m)
}

// PlacementFromFEN parses only the piece placement of a FEN record.
func PlacementFromFEN(fen string) (base.Placement, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("error parse FEN: %w", err)
	}
	g := chess.NewGame(opt)

	board := make(base.Placement, 32)
	for sq, pc := range g.Position().Board().SquareMap() {
		if pc != chess.NoPiece {
			board[convSquare(sq)] = convPiece(pc)
		}
	}
	return board, nil
}

func kingOf(board base.Placement, c base.Color) (base.Square, bool) {
	for sq, pc := range board {
		if pc.Role == base.King && pc.Color == c {
			return sq, true
		}
	}
	return 0, false
}

// both encodings use a1=0 .. h8=63
func convSquare(sq chess.Square) base.Square {
	return base.Square(sq)
}

func convColor(c chess.Color) base.Color {
	if c == chess.White {
		return base.White
	}
	return base.Black
}

func convRole(t chess.PieceType) base.Role {
	switch t {
	case chess.Pawn:
		return base.Pawn
	case chess.Knight:
		return base.Knight
	case chess.Bishop:
		return base.Bishop
	case chess.Rook:
		return base.Rook
	case chess.Queen:
		return base.Queen
	case chess.King:
		return base.King
	default:
		return base.NoRole
	}
}

func convPiece(p chess.Piece) base.Piece {
	return base.Piece{Role: convRole(p.Type()), Color: convColor(p.Color())}
}
