package gboard

import (
	"math"
	"time"

	"chessground/src/base"
)

// promotionRoles is the chooser order; cells stack from the destination
// rank toward the board edge the pawn promotes away from, so the chooser
// never runs off the board. Only actually-legal roles get a cell, which
// accommodates variant rule sets.
var promotionRoles = [...]base.Role{base.Queen, base.Rook, base.Bishop, base.Knight, base.King, base.Pawn}

// Promotable intercepts a move that needs a promotion role and presents a
// radial chooser anchored at the destination file before the move is
// emitted.
type Promotable struct {
	promoting *promoting
}

type promoting struct {
	orig  base.Square
	dest  base.Square
	color base.Color
	hover *hover
}

// hover tracks the highlighted cell and its entrance animation clock.
type hover struct {
	square  base.Square
	since   time.Time
	elapsed float64
}

func NewPromotable() *Promotable {
	return &Promotable{}
}

func (p *Promotable) Start(color base.Color, orig, dest base.Square, now time.Time) {
	p.promoting = &promoting{
		orig:  orig,
		dest:  dest,
		color: color,
		hover: &hover{square: dest, since: now},
	}
}

func (p *Promotable) Cancel() {
	p.promoting = nil
}

func (p *Promotable) Active() bool {
	return p.promoting != nil
}

// IsPromoting reports whether a choice is pending for the piece on the
// given origin square. Its figurine is hidden while the chooser is open.
func (p *Promotable) IsPromoting(orig base.Square) bool {
	return p.promoting != nil && p.promoting.orig == orig
}

// refresh force-cancels a pending choice that is no longer legal under a
// new snapshot, e.g. when the host rejected or overrode the move.
func (p *Promotable) refresh(state *BoardState) {
	if pr := p.promoting; pr != nil && !state.NeedsPromotion(pr.orig, pr.dest) {
		p.promoting = nil
	}
}

// cellRank is the rank of the chooser cell at the given offset.
func (pr *promoting) cellRank(offset int) int {
	if pr.color == base.White {
		return 7 - offset
	}
	return offset
}

// roleAt resolves a square to the role of the chooser cell covering it.
func (pr *promoting) roleAt(sq base.Square) base.Role {
	if sq.File() != pr.dest.File() {
		return base.NoRole
	}
	for i, role := range promotionRoles {
		if pr.cellRank(i) == sq.Rank() {
			return role
		}
	}
	return base.NoRole
}

// mouseMove updates the hovered cell; entering a cell restarts its
// entrance animation, leaving the destination file clears the hover.
func (p *Promotable) mouseMove(ec *eventCtx) {
	pr := p.promoting
	if pr == nil {
		return
	}

	var next *base.Square
	if ec.square != nil && ec.square.File() == pr.dest.File() {
		next = ec.square
	}

	changed := (pr.hover == nil) != (next == nil) ||
		(pr.hover != nil && next != nil && pr.hover.square != *next)
	if !changed {
		return
	}

	if pr.hover != nil {
		ec.inv.addRect(ec.t.InvalidateSquare(pr.hover.square))
	}
	pr.hover = nil
	if next != nil {
		pr.hover = &hover{square: *next, since: ec.now}
		ec.inv.addRect(ec.t.InvalidateSquare(*next))
	}
}

// mouseDown resolves or cancels a pending choice. On resolution it returns
// the fully specified move; on cancel the press falls through so the user
// can immediately grab another piece.
func (p *Promotable) mouseDown(pieces *Pieces, state *BoardState, ec *eventCtx) (base.Move, bool) {
	pr := p.promoting
	if pr == nil {
		return base.Move{}, false
	}
	p.promoting = nil
	ec.inv.addAll()

	// spring the piece back from the destination square
	if f := pieces.FigurineAt(pr.orig); f != nil {
		f.SetPos(SquareToPos(pr.dest), ec.now)
	}

	if ec.square != nil {
		if role := pr.roleAt(*ec.square); role != base.NoRole && state.LegalMove(pr.orig, pr.dest, role) {
			return base.Move{From: pr.orig, To: pr.dest, Promotion: role}, true
		}
	}
	return base.Move{}, false
}

func (p *Promotable) isAnimating() bool {
	pr := p.promoting
	return pr != nil && pr.hover != nil && pr.hover.elapsed < 1.0
}

// queueAnimation advances the hover entrance clock and invalidates the
// animated cell.
func (p *Promotable) queueAnimation(t Transform, inv *damage, now time.Time) {
	pr := p.promoting
	if pr == nil || pr.hover == nil {
		return
	}
	if pr.hover.elapsed < 1.0 {
		inv.addRect(t.InvalidateSquare(pr.hover.square))
	}
	pr.hover.elapsed = math.Min(1.0, now.Sub(pr.hover.since).Seconds())
}
