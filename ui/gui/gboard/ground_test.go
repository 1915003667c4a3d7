package gboard

import (
	"testing"
	"time"

	"chessground/src/base"
	"chessground/src/position"
)

// playHints builds a snapshot over the starting placement allowing just
// the moves given as "e2e4" strings.
func playHints(t *testing.T, moves ...string) position.Snapshot {
	t.Helper()
	turn := base.White
	snap := position.Snapshot{Board: base.StartingPlacement(), Turn: &turn}
	for _, m := range moves {
		snap.Legals = append(snap.Legals, base.Move{
			From: sq(t, m[:2]),
			To:   sq(t, m[2:4]),
		})
	}
	return snap
}

func testGround(t *testing.T) (*Ground, *[]base.Move) {
	t.Helper()
	g := New(nil, nil)
	t.Cleanup(g.Teardown)
	g.Resize(900, 900)

	moves := &[]base.Move{}
	g.OnUserMove(func(m base.Move) { *moves = append(*moves, m) })
	return g, moves
}

func press(g *Ground, t *testing.T, s string, now time.Time) {
	t.Helper()
	x, y := g.transform().ToWidget(SquareToPos(sq(t, s)))
	g.ButtonPress(x, y, ButtonPrimary, Modifiers{}, now)
}

func release(g *Ground, t *testing.T, s string, now time.Time) {
	t.Helper()
	x, y := g.transform().ToWidget(SquareToPos(sq(t, s)))
	g.ButtonRelease(x, y, ButtonPrimary, now)
}

func motion(g *Ground, t *testing.T, s string, now time.Time) {
	t.Helper()
	x, y := g.transform().ToWidget(SquareToPos(sq(t, s)))
	g.MotionNotify(x, y, now)
}

func TestGroundRegistry(t *testing.T) {
	g := New(nil, nil)
	if got, ok := Find(g.ID()); !ok || got != g {
		t.Fatal("widget should be findable by id")
	}

	g.Teardown()
	if _, ok := Find(g.ID()); ok {
		t.Error("torn down widget should be gone")
	}
	// stale deferred tick is a no-op
	QueueAnimation(g.ID(), t0)
}

func TestGroundClickMoveEmitsValidated(t *testing.T) {
	g, moves := testGround(t)
	g.SetPosition(playHints(t, "e2e4", "e2e3"), t0)

	press(g, t, "e2", t0)
	release(g, t, "e2", t0)
	press(g, t, "e4", t0)
	release(g, t, "e4", t0)

	if len(*moves) != 1 {
		t.Fatalf("%d moves emitted", len(*moves))
	}
	if got := (*moves)[0]; got.From != sq(t, "e2") || got.To != sq(t, "e4") {
		t.Errorf("emitted %s", got)
	}
}

func TestGroundIllegalCandidateDropped(t *testing.T) {
	g, moves := testGround(t)
	g.SetPosition(playHints(t, "e2e4"), t0)

	press(g, t, "e2", t0)
	release(g, t, "e2", t0)
	press(g, t, "e5", t0) // not in the legal list
	release(g, t, "e5", t0)

	if len(*moves) != 0 {
		t.Errorf("illegal candidate emitted: %v", *moves)
	}
}

func TestGroundDragMoveEmits(t *testing.T) {
	g, moves := testGround(t)
	g.SetPosition(playHints(t, "g1f3"), t0)

	press(g, t, "g1", t0)
	motion(g, t, "f3", t0)
	release(g, t, "f3", t0)

	if len(*moves) != 1 {
		t.Fatalf("%d moves emitted", len(*moves))
	}
	if got := (*moves)[0]; got.From != sq(t, "g1") || got.To != sq(t, "f3") {
		t.Errorf("emitted %s", got)
	}
}

func TestGroundFreePlayPassesThrough(t *testing.T) {
	g, moves := testGround(t)
	g.SetBoard(base.Placement{
		sq(t, "a1"): {Role: base.Rook, Color: base.White},
	}, t0)

	// no hints: even a rook teleport is the host's problem
	press(g, t, "a1", t0)
	release(g, t, "a1", t0)
	press(g, t, "h8", t0)
	release(g, t, "h8", t0)

	if len(*moves) != 1 {
		t.Fatalf("%d moves emitted", len(*moves))
	}
	if got := (*moves)[0]; got.From != sq(t, "a1") || got.To != sq(t, "h8") {
		t.Errorf("emitted %s", got)
	}
}

func promotionHints(t *testing.T) position.Snapshot {
	t.Helper()
	turn := base.White
	return position.Snapshot{
		Board: base.Placement{
			sq(t, "e7"): {Role: base.Pawn, Color: base.White},
			sq(t, "e1"): {Role: base.King, Color: base.White},
			sq(t, "a8"): {Role: base.King, Color: base.Black},
		},
		Legals: []base.Move{
			{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: base.Queen},
			{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: base.Rook},
			{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: base.Bishop},
			{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: base.Knight},
		},
		Turn: &turn,
	}
}

func TestGroundPromotionChooserFlow(t *testing.T) {
	g, moves := testGround(t)
	g.SetPosition(promotionHints(t), t0)

	// the gesture opens the chooser instead of emitting
	press(g, t, "e7", t0)
	release(g, t, "e7", t0)
	press(g, t, "e8", t0)
	release(g, t, "e8", t0)

	if len(*moves) != 0 {
		t.Fatalf("role-less promotion emitted early: %v", *moves)
	}
	if !g.promotable.Active() {
		t.Fatal("chooser should be open")
	}

	// pick the knight cell (e5 for a white promotion on the e-file)
	press(g, t, "e5", t0)

	if len(*moves) != 1 {
		t.Fatalf("%d moves emitted", len(*moves))
	}
	want := base.Move{From: sq(t, "e7"), To: sq(t, "e8"), Promotion: base.Knight}
	if got := (*moves)[0]; got != want {
		t.Errorf("emitted %s, want %s", got, want)
	}
	if g.promotable.Active() {
		t.Error("chooser should close")
	}
}

func TestGroundPromotionCancelFallsThrough(t *testing.T) {
	g, moves := testGround(t)
	g.SetPosition(promotionHints(t), t0)

	press(g, t, "e7", t0)
	release(g, t, "e7", t0)
	press(g, t, "e8", t0)
	release(g, t, "e8", t0)

	// clicking away cancels the chooser and the press falls through to
	// the board, selecting nothing on the empty square
	press(g, t, "b4", t0)
	if len(*moves) != 0 {
		t.Errorf("cancel emitted %v", *moves)
	}
	if g.promotable.Active() {
		t.Error("chooser should close")
	}
}

func TestGroundStalePromotionCancelledBySetPosition(t *testing.T) {
	g, _ := testGround(t)
	g.SetPosition(promotionHints(t), t0)

	press(g, t, "e7", t0)
	release(g, t, "e7", t0)
	press(g, t, "e8", t0)
	release(g, t, "e8", t0)
	if !g.promotable.Active() {
		t.Fatal("chooser should be open")
	}

	// the host pushes a position where the promotion is gone
	g.SetPosition(playHints(t, "e2e4"), t0)
	if g.promotable.Active() {
		t.Error("stale chooser should be force-cancelled")
	}
}

func TestGroundShapesCallback(t *testing.T) {
	g, _ := testGround(t)
	g.SetPosition(playHints(t), t0)

	var got [][]DrawShape
	g.OnShapesChanged(func(s []DrawShape) { got = append(got, s) })

	x, y := g.transform().ToWidget(SquareToPos(sq(t, "d4")))
	g.ButtonPress(x, y, ButtonSecondary, Modifiers{Alt: true}, t0)
	g.ButtonRelease(x, y, ButtonSecondary, t0)

	if len(got) != 1 {
		t.Fatalf("%d callbacks", len(got))
	}
	want := DrawShape{Orig: sq(t, "d4"), Dest: sq(t, "d4"), Brush: BrushBlue}
	if len(got[0]) != 1 || got[0][0] != want {
		t.Errorf("shapes = %v", got[0])
	}
}

func TestGroundDamageLifecycle(t *testing.T) {
	g, _ := testGround(t)

	// the resize marked everything dirty
	if _, full, ok := g.Damage(); !ok || !full {
		t.Fatal("fresh widget should need a full repaint")
	}
	if _, _, ok := g.Damage(); ok {
		t.Error("taking damage should clear it")
	}

	g.SetPosition(playHints(t, "e2e4"), t0)
	if _, full, ok := g.Damage(); !ok || !full {
		t.Error("position update should mark full damage")
	}
}

func TestGroundAnimationDamage(t *testing.T) {
	g, _ := testGround(t)
	g.SetPosition(playHints(t), t0)
	g.Damage()

	// move a pawn by board diff so a figurine animates
	hints := playHints(t)
	delete(hints.Board, sq(t, "e2"))
	hints.Board[sq(t, "e4")] = base.Piece{Role: base.Pawn, Color: base.White}
	g.SetPosition(hints, t0)
	g.Damage()

	if !g.IsAnimating(t0.Add(100 * time.Millisecond)) {
		t.Fatal("pawn should be in flight")
	}

	QueueAnimation(g.ID(), t0.Add(100*time.Millisecond))
	if _, _, ok := g.Damage(); !ok {
		t.Error("animation tick should accumulate damage")
	}

	if g.IsAnimating(t0.Add(time.Second)) {
		t.Error("animation should finish")
	}
}

func TestGroundFlip(t *testing.T) {
	g, _ := testGround(t)

	if g.State().Orientation() != base.White {
		t.Fatal("default orientation should be white")
	}
	g.Flip()
	if g.State().Orientation() != base.Black {
		t.Error("flip should rotate to black")
	}

	// coordinates now resolve mirrored: the top-left square is h1
	if got, ok := g.transform().SquareAt(100, 100); !ok || got != sq(t, "h1") {
		t.Errorf("top-left square = %s", got)
	}
}
