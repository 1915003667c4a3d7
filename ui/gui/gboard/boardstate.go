package gboard

import (
	"chessground/src/base"
	"chessground/src/position"
)

// BoardState holds the board orientation and the snapshot hints the widget
// renders and consults: legal moves, check square, last move and side to
// move. Piece placement lives in Pieces.
type BoardState struct {
	orientation base.Color
	hints       position.Snapshot
}

func NewBoardState() *BoardState {
	return &BoardState{orientation: base.White}
}

func (s *BoardState) Orientation() base.Color {
	return s.orientation
}

func (s *BoardState) SetOrientation(c base.Color) {
	s.orientation = c
}

// setHints replaces the snapshot hints, dropping the placement which is
// consumed by Pieces.
func (s *BoardState) setHints(snap position.Snapshot) {
	snap.Board = nil
	s.hints = snap
}

// clearHints removes all hints, used for free board editing.
func (s *BoardState) clearHints() {
	s.hints = position.Snapshot{}
}

func (s *BoardState) Check() (base.Square, bool) {
	if s.hints.Check == nil {
		return 0, false
	}
	return *s.hints.Check, true
}

func (s *BoardState) LastMove() (position.LastMove, bool) {
	if s.hints.LastMove == nil {
		return position.LastMove{}, false
	}
	return *s.hints.LastMove, true
}

func (s *BoardState) Turn() (base.Color, bool) {
	if s.hints.Turn == nil {
		return 0, false
	}
	return *s.hints.Turn, true
}

// freePlay reports whether the widget is in free-editing mode: a board
// was set without any snapshot hints, so gestures pass through without
// legality validation.
func (s *BoardState) freePlay() bool {
	return s.hints.Turn == nil
}

func (s *BoardState) MoveTargets(orig base.Square) []base.Square {
	return s.hints.MoveTargets(orig)
}

func (s *BoardState) ValidMove(orig, dest base.Square) bool {
	return s.hints.ValidMove(orig, dest)
}

func (s *BoardState) LegalMove(orig, dest base.Square, promotion base.Role) bool {
	return s.hints.LegalMove(orig, dest, promotion)
}

func (s *BoardState) NeedsPromotion(orig, dest base.Square) bool {
	return s.hints.NeedsPromotion(orig, dest)
}
