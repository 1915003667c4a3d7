// Package gboard implements an embeddable chessboard widget: an animated
// piece layer, a user-annotation layer and a promotion chooser behind a
// single pointer-event surface. The widget renders positions and emits
// user moves; chess legality is consulted from the snapshot pushed by the
// host, never computed.
package gboard

import (
	"image"
	"time"

	"chessground/src/base"
	"chessground/src/logx"
	"chessground/src/position"

	"github.com/google/uuid"
)

type Button uint8

const (
	ButtonPrimary   Button = 1
	ButtonSecondary Button = 3
)

// Modifiers are the keyboard modifiers held during a pointer event,
// used to pick the annotation brush.
type Modifiers struct {
	Shift bool
	Alt   bool
}

type UserMoveFunc func(base.Move)
type ShapesChangedFunc func([]DrawShape)

// grounds registers live widgets by id so deferred animation callbacks
// can hold a non-owning handle. Everything runs on the single UI
// goroutine, no locking.
var grounds = map[uuid.UUID]*Ground{}

// Find resolves a widget handle. It fails after Teardown, turning stale
// deferred callbacks into no-ops.
func Find(id uuid.UUID) (*Ground, bool) {
	g, ok := grounds[id]
	return g, ok
}

// QueueAnimation is the deferred entry point for animation ticks held by
// hosts: a no-op when the widget is already gone.
func QueueAnimation(id uuid.UUID, now time.Time) {
	if g, ok := grounds[id]; ok {
		g.QueueAnimation(now)
	}
}

// Ground is the board interaction controller. It owns the position hints,
// the piece animation layer, the shape layer and the promotion chooser,
// routes pointer events between them in priority order and emits the
// final user move upward.
type Ground struct {
	id  uuid.UUID
	log logx.Logger

	state      *BoardState
	pieces     *Pieces
	drawable   *Drawable
	promotable *Promotable
	pieceSet   PieceSet

	width      int
	height     int
	inv        damage
	lastRender time.Time

	onUserMove      UserMoveFunc
	onShapesChanged ShapesChangedFunc
}

// New creates a widget showing the classic starting placement with no
// hints. The piece set may be nil for a headless widget.
func New(log logx.Logger, set PieceSet) *Ground {
	if log == nil {
		log = logx.Nop{}
	}
	g := &Ground{
		id:         uuid.New(),
		log:        log,
		state:      NewBoardState(),
		pieces:     NewPieces(base.StartingPlacement(), time.Now()),
		drawable:   NewDrawable(),
		promotable: NewPromotable(),
		pieceSet:   set,
	}
	grounds[g.id] = g
	return g
}

func (g *Ground) ID() uuid.UUID {
	return g.id
}

// Teardown unregisters the widget; pending deferred callbacks become
// no-ops.
func (g *Ground) Teardown() {
	delete(grounds, g.id)
}

func (g *Ground) OnUserMove(fn UserMoveFunc)           { g.onUserMove = fn }
func (g *Ground) OnShapesChanged(fn ShapesChangedFunc) { g.onShapesChanged = fn }

func (g *Ground) State() *BoardState  { return g.state }
func (g *Ground) Pieces() *Pieces     { return g.pieces }
func (g *Ground) Drawable() *Drawable { return g.drawable }
func (g *Ground) Shapes() []DrawShape { return g.drawable.Shapes() }

// Resize sets the widget extent in device pixels.
func (g *Ground) Resize(width, height int) {
	if g.width != width || g.height != height {
		g.width = width
		g.height = height
		g.inv.addAll()
	}
}

func (g *Ground) transform() Transform {
	return NewTransform(g.width, g.height, g.state.orientation)
}

// SetPosition replaces the rendered position wholesale: the placement is
// diffed into animations and the hints are swapped. A pending promotion
// choice that the new snapshot no longer allows is force-cancelled.
func (g *Ground) SetPosition(snap position.Snapshot, now time.Time) {
	g.pieces.SetBoard(snap.Board, now)
	g.state.setHints(snap)
	g.promotable.refresh(g.state)
	g.inv.addAll()
}

// SetBoard replaces the placement with no legality or check hints, used
// for free board editing. Gesture candidates then pass through without
// validation.
func (g *Ground) SetBoard(board base.Placement, now time.Time) {
	g.pieces.SetBoard(board, now)
	g.state.clearHints()
	g.promotable.Cancel()
	g.inv.addAll()
}

// SetOrientation flips instantly, no animation.
func (g *Ground) SetOrientation(c base.Color) {
	g.state.SetOrientation(c)
	g.inv.addAll()
}

func (g *Ground) Flip() {
	g.SetOrientation(g.state.Orientation().Other())
}

func (g *Ground) eventCtx(x, y float64, now time.Time) *eventCtx {
	t := g.transform()
	ec := &eventCtx{t: t, now: now, inv: &g.inv}
	if pos, ok := t.ToBoard(x, y); ok {
		ec.pos = pos
		if sq, ok := PosToSquare(pos); ok {
			s := sq
			ec.square = &s
		}
	}
	return ec
}

// ButtonPress routes a pointer press: the promotion chooser has first
// refusal, then selection and drag, then the shape layer.
func (g *Ground) ButtonPress(x, y float64, btn Button, mods Modifiers, now time.Time) {
	ec := g.eventCtx(x, y, now)

	if m, ok := g.promotable.mouseDown(g.pieces, g.state, ec); ok {
		g.emitUserMove(m)
		return
	}

	if btn == ButtonPrimary {
		if m, ok := g.pieces.selectionMouseDown(ec); ok {
			g.userMove(m, now)
		}
		g.pieces.dragMouseDown(ec)
	}
	if g.drawable.mouseDown(ec, btn, mods) {
		g.emitShapesChanged()
	}
}

func (g *Ground) MotionNotify(x, y float64, now time.Time) {
	ec := g.eventCtx(x, y, now)
	g.promotable.mouseMove(ec)
	g.pieces.dragMouseMove(ec)
	g.drawable.mouseMove(ec)
}

func (g *Ground) ButtonRelease(x, y float64, btn Button, now time.Time) {
	ec := g.eventCtx(x, y, now)

	if m, ok := g.pieces.dragMouseUp(ec); ok {
		g.userMove(m, now)
	}
	if g.drawable.mouseUp(ec) {
		g.emitShapesChanged()
	}
}

// userMove validates a gesture candidate against the legal-move list. An
// illegal candidate is dropped silently; a candidate that needs a
// promotion role opens the chooser instead of emitting.
func (g *Ground) userMove(m base.Move, now time.Time) {
	if g.state.freePlay() {
		g.emitUserMove(m)
		return
	}

	if !g.state.ValidMove(m.From, m.To) {
		g.log.Debugf("drop illegal move %s", m)
		return
	}

	if m.Promotion == base.NoRole && g.state.NeedsPromotion(m.From, m.To) {
		color := base.White
		if f := g.pieces.FigurineAt(m.From); f != nil {
			color = f.Piece().Color
		} else if m.To.Rank() <= 3 {
			color = base.Black
		}
		g.promotable.Start(color, m.From, m.To, now)
		g.inv.addAll()
		return
	}

	g.emitUserMove(m)
}

func (g *Ground) emitUserMove(m base.Move) {
	g.log.Infof("user move %s", m)
	if g.onUserMove != nil {
		g.onUserMove(m)
	}
}

func (g *Ground) emitShapesChanged() {
	if g.onShapesChanged != nil {
		g.onShapesChanged(g.drawable.Shapes())
	}
}

// IsAnimating reports whether another repaint tick should be scheduled.
func (g *Ground) IsAnimating(now time.Time) bool {
	return g.pieces.IsAnimating(now) || g.promotable.isAnimating()
}

// QueueAnimation accumulates the invalidation region for all running
// animations between the last render and now.
func (g *Ground) QueueAnimation(now time.Time) {
	t := g.transform()
	for _, f := range g.pieces.figurines {
		f.queueAnimation(t, &g.inv, g.lastRender, now)
	}
	g.promotable.queueAnimation(t, &g.inv, now)
}

// Damage returns the pending redraw region and clears it. full means the
// whole widget needs repainting and the rectangle should be ignored.
func (g *Ground) Damage() (rect image.Rectangle, full bool, ok bool) {
	return g.inv.take()
}
