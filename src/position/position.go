// Package position holds the snapshot of a chess position as pushed to the
// board widget: piece placement plus the hints the widget renders and
// consults (legal moves, check, last move, side to move). The widget never
// mutates chess semantics; a snapshot is replaced wholesale on every
// confirmed move or external reset.
package position

import "chessground/src/base"

// LastMove is the origin/destination pair of the previously played move.
type LastMove struct {
	From base.Square
	To   base.Square
}

// Snapshot is produced by a rules engine adapter (see src/rules) or built
// by hand for free editing. Check, LastMove and Turn are optional hints.
type Snapshot struct {
	Board    base.Placement
	Legals   []base.Move
	Check    *base.Square
	LastMove *LastMove
	Turn     *base.Color
}

// FromBoard builds a snapshot with no legality or check hints, used for
// free board editing.
func FromBoard(board base.Placement) Snapshot {
	return Snapshot{Board: board}
}

// MoveTargets lists the destination squares of legal moves from orig.
func (s *Snapshot) MoveTargets(orig base.Square) []base.Square {
	var targets []base.Square
	for _, m := range s.Legals {
		if m.From == orig {
			targets = append(targets, m.To)
		}
	}
	return targets
}

// ValidMove reports whether some legal move goes from orig to dest,
// with any promotion role.
func (s *Snapshot) ValidMove(orig, dest base.Square) bool {
	for _, m := range s.Legals {
		if m.From == orig && m.To == dest {
			return true
		}
	}
	return false
}

// LegalMove reports whether the fully specified move is legal.
func (s *Snapshot) LegalMove(orig, dest base.Square, promotion base.Role) bool {
	for _, m := range s.Legals {
		if m.From == orig && m.To == dest && m.Promotion == promotion {
			return true
		}
	}
	return false
}

// NeedsPromotion reports whether the orig/dest pair is only legal with a
// promotion role attached.
func (s *Snapshot) NeedsPromotion(orig, dest base.Square) bool {
	for _, m := range s.Legals {
		if m.From == orig && m.To == dest && m.Promotion != base.NoRole {
			return true
		}
	}
	return false
}

// PromotionRoles lists the legal promotion roles for the orig/dest pair in
// chooser order (queen first).
func (s *Snapshot) PromotionRoles(orig, dest base.Square) []base.Role {
	order := []base.Role{base.Queen, base.Rook, base.Bishop, base.Knight, base.King, base.Pawn}
	var roles []base.Role
	for _, r := range order {
		if s.LegalMove(orig, dest, r) {
			roles = append(roles, r)
		}
	}
	return roles
}
