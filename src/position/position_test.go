package position

import (
	"testing"

	"chessground/src/base"

	"github.com/google/go-cmp/cmp"
)

func sq(t *testing.T, s string) base.Square {
	t.Helper()
	v, err := base.SquareFromAlgebraic(s)
	if err != nil {
		t.Fatalf("square %q: %v", s, err)
	}
	return v
}

func promoSnapshot(t *testing.T) Snapshot {
	// a white pawn on e7 with promotions to e8 and a capture on d8, plus
	// an ordinary king move
	return Snapshot{
		Legals: []base.Move{
			{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: base.Queen},
			{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: base.Rook},
			{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: base.Bishop},
			{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: base.Knight},
			{From: sq(t, "e7"), To: sq(t, "d8"), Promotion: base.Queen},
			{From: sq(t, "g1"), To: sq(t, "g2")},
		},
	}
}

func TestMoveTargets(t *testing.T) {
	s := promoSnapshot(t)

	got := s.MoveTargets(sq(t, "e7"))
	want := []base.Square{
		sq(t, "e8"), sq(t, "e8"), sq(t, "e8"), sq(t, "e8"), sq(t, "d8"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}

	if got := s.MoveTargets(sq(t, "a1")); got != nil {
		t.Errorf("targets of empty square = %v", got)
	}
}

func TestValidMove(t *testing.T) {
	s := promoSnapshot(t)

	if !s.ValidMove(sq(t, "e7"), sq(t, "e8")) {
		t.Error("promotion pair should be valid regardless of role")
	}
	if !s.ValidMove(sq(t, "g1"), sq(t, "g2")) {
		t.Error("king move should be valid")
	}
	if s.ValidMove(sq(t, "e7"), sq(t, "f8")) {
		t.Error("f8 is not a destination")
	}
}

func TestLegalMove(t *testing.T) {
	s := promoSnapshot(t)

	if !s.LegalMove(sq(t, "e7"), sq(t, "e8"), base.Queen) {
		t.Error("queen promotion should be legal")
	}
	if s.LegalMove(sq(t, "e7"), sq(t, "e8"), base.King) {
		t.Error("king promotion should not be legal")
	}
	if s.LegalMove(sq(t, "e7"), sq(t, "e8"), base.NoRole) {
		t.Error("promotion square without role should not be legal")
	}
	if !s.LegalMove(sq(t, "g1"), sq(t, "g2"), base.NoRole) {
		t.Error("plain move with no role should be legal")
	}
}

func TestNeedsPromotion(t *testing.T) {
	s := promoSnapshot(t)

	if !s.NeedsPromotion(sq(t, "e7"), sq(t, "e8")) {
		t.Error("e7e8 needs a role")
	}
	if !s.NeedsPromotion(sq(t, "e7"), sq(t, "d8")) {
		t.Error("e7d8 needs a role")
	}
	if s.NeedsPromotion(sq(t, "g1"), sq(t, "g2")) {
		t.Error("king move needs no role")
	}
}

func TestPromotionRoles(t *testing.T) {
	s := promoSnapshot(t)

	got := s.PromotionRoles(sq(t, "e7"), sq(t, "e8"))
	want := []base.Role{base.Queen, base.Rook, base.Bishop, base.Knight}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("roles mismatch (-want +got):\n%s", diff)
	}

	if got := s.PromotionRoles(sq(t, "g1"), sq(t, "g2")); got != nil {
		t.Errorf("roles of plain move = %v", got)
	}
}

func TestFromBoard(t *testing.T) {
	board := base.StartingPlacement()
	s := FromBoard(board)
	if s.Turn != nil || s.Check != nil || s.LastMove != nil || s.Legals != nil {
		t.Error("free board snapshot should carry no hints")
	}
	if len(s.Board) != 32 {
		t.Errorf("board has %d pieces", len(s.Board))
	}
}
