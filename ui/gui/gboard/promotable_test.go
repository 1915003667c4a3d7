package gboard

import (
	"testing"
	"time"

	"chessground/src/base"
	"chessground/src/position"
)

// promoState builds hints with a white pawn promoting e7 -> e8.
func promoState(t *testing.T) *BoardState {
	t.Helper()
	s := NewBoardState()
	turn := base.White
	s.setHints(position.Snapshot{
		Legals: []base.Move{
			{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: base.Queen},
			{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: base.Rook},
			{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: base.Bishop},
			{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: base.Knight},
		},
		Turn: &turn,
	})
	return s
}

func promoPieces(t *testing.T) *Pieces {
	t.Helper()
	return NewPieces(base.Placement{
		sq(t, "e7"): {Role: base.Pawn, Color: base.White},
	}, t0)
}

func TestPromotableStart(t *testing.T) {
	p := NewPromotable()
	if p.Active() {
		t.Fatal("fresh chooser should be inactive")
	}

	p.Start(base.White, sq(t, "e7"), sq(t, "e8"), t0)
	if !p.Active() {
		t.Fatal("chooser should be active")
	}
	if !p.IsPromoting(sq(t, "e7")) {
		t.Error("origin square should report promoting")
	}
	if p.IsPromoting(sq(t, "e8")) {
		t.Error("destination square should not report promoting")
	}
	// the destination cell starts hovered
	if p.promoting.hover == nil || p.promoting.hover.square != sq(t, "e8") {
		t.Error("destination should be the initial hover")
	}
}

func TestPromotableCellLayoutWhite(t *testing.T) {
	p := NewPromotable()
	p.Start(base.White, sq(t, "e7"), sq(t, "e8"), t0)

	wantRanks := map[base.Role]int{
		base.Queen:  7,
		base.Rook:   6,
		base.Bishop: 5,
		base.Knight: 4,
		base.King:   3,
		base.Pawn:   2,
	}
	for i, role := range promotionRoles {
		if got := p.promoting.cellRank(i); got != wantRanks[role] {
			t.Errorf("%s cell at rank %d, want %d", role, got, wantRanks[role])
		}
	}

	if got := p.promoting.roleAt(sq(t, "e8")); got != base.Queen {
		t.Errorf("e8 resolves %s, want queen", got)
	}
	if got := p.promoting.roleAt(sq(t, "e5")); got != base.Knight {
		t.Errorf("e5 resolves %s, want knight", got)
	}
	if got := p.promoting.roleAt(sq(t, "d8")); got != base.NoRole {
		t.Errorf("off-file square resolves %s", got)
	}
}

func TestPromotableCellLayoutBlack(t *testing.T) {
	p := NewPromotable()
	p.Start(base.Black, sq(t, "e2"), sq(t, "e1"), t0)

	// black stacks up from rank 1
	if got := p.promoting.roleAt(sq(t, "e1")); got != base.Queen {
		t.Errorf("e1 resolves %s, want queen", got)
	}
	if got := p.promoting.roleAt(sq(t, "e2")); got != base.Rook {
		t.Errorf("e2 resolves %s, want rook", got)
	}
}

func TestPromotableResolve(t *testing.T) {
	state := promoState(t)
	pieces := promoPieces(t)
	tr := NewTransform(900, 900, base.White)

	p := NewPromotable()
	p.Start(base.White, sq(t, "e7"), sq(t, "e8"), t0)

	// click the rook cell at e7
	m, ok := p.mouseDown(pieces, state, newEventCtx(tr, SquareToPos(sq(t, "e7")), t0))
	if !ok {
		t.Fatal("legal cell click should resolve")
	}
	want := base.Move{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: base.Rook}
	if m != want {
		t.Errorf("resolved %s, want %s", m, want)
	}
	if p.Active() {
		t.Error("chooser should close after resolving")
	}
}

func TestPromotableClickOutsideCancels(t *testing.T) {
	state := promoState(t)
	pieces := promoPieces(t)
	tr := NewTransform(900, 900, base.White)

	p := NewPromotable()
	p.Start(base.White, sq(t, "e7"), sq(t, "e8"), t0)

	if _, ok := p.mouseDown(pieces, state, newEventCtx(tr, SquareToPos(sq(t, "a1")), t0)); ok {
		t.Fatal("off-chooser click should not resolve")
	}
	if p.Active() {
		t.Error("chooser should close on cancel")
	}
	// the pawn springs back from the destination
	f := pieces.FigurineAt(sq(t, "e7"))
	if f == nil || f.pos != SquareToPos(sq(t, "e8")) {
		t.Error("pawn should animate back from e8")
	}
}

func TestPromotableIllegalCellCancels(t *testing.T) {
	state := promoState(t)
	pieces := promoPieces(t)
	tr := NewTransform(900, 900, base.White)

	p := NewPromotable()
	p.Start(base.White, sq(t, "e7"), sq(t, "e8"), t0)

	// the king cell exists in the layout but the move is not legal
	if _, ok := p.mouseDown(pieces, state, newEventCtx(tr, SquareToPos(sq(t, "e4")), t0)); ok {
		t.Error("illegal role should not resolve")
	}
	if p.Active() {
		t.Error("chooser should close")
	}
}

func TestPromotableHover(t *testing.T) {
	p := NewPromotable()
	p.Start(base.White, sq(t, "e7"), sq(t, "e8"), t0)
	tr := NewTransform(900, 900, base.White)

	// moving within the file re-hovers and restarts the entrance clock
	later := t0.Add(500 * time.Millisecond)
	p.mouseMove(newEventCtx(tr, SquareToPos(sq(t, "e6")), later))
	h := p.promoting.hover
	if h == nil || h.square != sq(t, "e6") {
		t.Fatalf("hover = %+v", h)
	}
	if h.since != later {
		t.Error("entering a cell should restart its clock")
	}

	// off the file clears the hover
	p.mouseMove(newEventCtx(tr, SquareToPos(sq(t, "a1")), later))
	if p.promoting.hover != nil {
		t.Error("leaving the file should clear the hover")
	}
}

func TestPromotableHoverAnimationClock(t *testing.T) {
	p := NewPromotable()
	p.Start(base.White, sq(t, "e7"), sq(t, "e8"), t0)
	tr := NewTransform(900, 900, base.White)

	if !p.isAnimating() {
		t.Fatal("fresh hover should animate")
	}

	var inv damage
	p.queueAnimation(tr, &inv, t0.Add(500*time.Millisecond))
	if got := p.promoting.hover.elapsed; got != 0.5 {
		t.Errorf("elapsed = %v, want 0.5", got)
	}
	if _, _, ok := inv.take(); !ok {
		t.Error("animating hover should accumulate damage")
	}

	p.queueAnimation(tr, &inv, t0.Add(5*time.Second))
	if got := p.promoting.hover.elapsed; got != 1.0 {
		t.Errorf("elapsed clamps at 1, got %v", got)
	}
	if p.isAnimating() {
		t.Error("entrance animation should finish")
	}
}

func TestPromotableRefreshCancelsStale(t *testing.T) {
	state := promoState(t)

	p := NewPromotable()
	p.Start(base.White, sq(t, "e7"), sq(t, "e8"), t0)

	// hints still allow the promotion: stays open
	p.refresh(state)
	if !p.Active() {
		t.Fatal("refresh with valid hints should keep the chooser")
	}

	// new hints no longer allow it: force-cancel
	empty := NewBoardState()
	turn := base.Black
	empty.setHints(position.Snapshot{Turn: &turn})
	p.refresh(empty)
	if p.Active() {
		t.Error("refresh with stale hints should cancel")
	}
}
