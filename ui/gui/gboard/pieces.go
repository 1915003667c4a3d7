package gboard

import (
	"math"
	"time"

	"chessground/src/base"

	"golang.org/x/exp/slices"
)

const (
	dragThresholdBoard  = 0.1
	dragThresholdPixels = 4.0
)

// Pieces owns the animated figurines, the click-to-move selection and the
// live drag gesture.
type Pieces struct {
	figurines []*Figurine
	selected  *base.Square
	dragStart *dragStart
}

// dragStart remembers a primary-button press over an occupied square. It
// only becomes a drag once the pointer crosses the movement threshold.
type dragStart struct {
	pos    Pos
	square base.Square
}

func NewPieces(board base.Placement, now time.Time) *Pieces {
	p := &Pieces{}
	p.SetBoard(board, now)
	return p
}

// SetBoard diffs the new placement against the live figurines. In-flight
// animations are frozen and restarted from their rendered position, so a
// second rapid update never jumps. Vanished pieces are matched to appeared
// pieces of the same value by minimum king distance; unmatched vanished
// pieces fade out, unmatched appeared pieces pop in at rest.
func (p *Pieces) SetBoard(board base.Placement, now time.Time) {
	// collect completed fades first, keeping the live set bounded
	p.figurines = slices.DeleteFunc(p.figurines, func(f *Figurine) bool {
		return f.fading && f.Alpha(now) <= 0.0001
	})

	type entry struct {
		square base.Square
		piece  base.Piece
	}
	var added []entry
	for sq, pc := range board {
		if f := p.FigurineAt(sq); f == nil || f.piece != pc {
			added = append(added, entry{sq, pc})
		}
	}
	// container order is the documented tie break, keep it stable
	slices.SortFunc(added, func(a, b entry) int { return int(a.square) - int(b.square) })

	for _, f := range p.figurines {
		if f.fading {
			continue
		}

		// checkpoint animation
		f.pos = f.Pos(now)
		f.time = now

		if pc, ok := board[f.square]; ok && pc == f.piece {
			continue
		}

		// the figurine was removed from its square; find the closest
		// appeared square it could have moved to
		best := -1
		for i, a := range added {
			if a.piece != f.piece {
				continue
			}
			if best < 0 || f.square.Distance(a.square) < f.square.Distance(added[best].square) {
				best = i
			}
		}

		if best >= 0 {
			f.square = added[best].square
			f.time = now
			added = slices.Delete(added, best, best+1)

			// snap a just-dropped figurine to its square
			if now.Sub(f.lastDrag) < dragSnapWindow {
				f.pos = SquareToPos(f.square)
			}
		} else {
			f.fading = true
			_, f.replaced = board[f.square]
			f.time = now
		}
	}

	for _, a := range added {
		p.figurines = append(p.figurines, &Figurine{
			square: a.square,
			piece:  a.piece,
			pos:    SquareToPos(a.square),
			time:   now,
		})
	}
}

// FigurineAt looks up the live figurine on a square. Fading figurines are
// never returned.
func (p *Pieces) FigurineAt(sq base.Square) *Figurine {
	for _, f := range p.figurines {
		if !f.fading && f.square == sq {
			return f
		}
	}
	return nil
}

func (p *Pieces) OccupiedAt(sq base.Square) bool {
	return p.FigurineAt(sq) != nil
}

func (p *Pieces) Dragging() *Figurine {
	for _, f := range p.figurines {
		if f.dragging {
			return f
		}
	}
	return nil
}

func (p *Pieces) Selected() (base.Square, bool) {
	if p.selected == nil {
		return 0, false
	}
	return *p.selected, true
}

func (p *Pieces) IsAnimating(now time.Time) bool {
	for _, f := range p.figurines {
		if f.IsAnimating(now) {
			return true
		}
	}
	return false
}

// selectionMouseDown implements click-to-select and click-to-move. The
// returned candidate still has to pass legality validation.
func (p *Pieces) selectionMouseDown(ec *eventCtx) (base.Move, bool) {
	orig := p.selected
	p.selected = nil

	dest := ec.square
	if dest != nil && p.OccupiedAt(*dest) {
		p.selected = dest
	}

	ec.inv.addAll()

	if orig != nil && dest != nil {
		p.selected = nil
		if *orig != *dest {
			return base.Move{From: *orig, To: *dest}, true
		}
	}
	return base.Move{}, false
}

func (p *Pieces) dragMouseDown(ec *eventCtx) {
	if ec.square != nil && p.OccupiedAt(*ec.square) {
		p.dragStart = &dragStart{pos: ec.pos, square: *ec.square}
	}
}

func (p *Pieces) dragMouseMove(ec *eventCtx) {
	if start := p.dragStart; start != nil {
		dx := start.pos.X - ec.pos.X
		dy := start.pos.Y - ec.pos.Y
		pdx, pdy := ec.t.TransformDistance(dx, dy)

		// the press counts as a drag once it crosses the threshold in
		// either board units or device pixels
		if math.Hypot(dx, dy) >= dragThresholdBoard || math.Hypot(pdx, pdy) >= dragThresholdPixels {
			if f := p.FigurineAt(start.square); f != nil {
				f.dragging = true
			}
			if p.selected == nil || *p.selected != start.square {
				sq := start.square
				p.selected = &sq
				ec.inv.addAll()
			}
		}
	}

	if f := p.Dragging(); f != nil {
		// invalidate previous
		ec.inv.addRect(ec.t.InvalidateRect(f.pos.X-0.5, f.pos.Y-0.5, 1.0, 1.0))
		ec.inv.addRect(ec.t.InvalidateSquare(f.square))
		if sq, ok := PosToSquare(f.pos); ok {
			ec.inv.addRect(ec.t.InvalidateSquare(sq))
		}

		f.pos = ec.pos
		f.time = ec.now

		// invalidate new
		ec.inv.addRect(ec.t.InvalidateRect(f.pos.X-0.5, f.pos.Y-0.5, 1.0, 1.0))
		if ec.square != nil {
			ec.inv.addRect(ec.t.InvalidateSquare(*ec.square))
		}
	}
}

// dragMouseUp completes the gesture. Dropping on the origin square or
// off the board cancels; dropping elsewhere yields a move candidate.
func (p *Pieces) dragMouseUp(ec *eventCtx) (base.Move, bool) {
	p.dragStart = nil

	f := p.Dragging()
	if f == nil {
		return base.Move{}, false
	}

	ec.inv.addAll()

	dest := f.square
	if ec.square != nil {
		dest = *ec.square
	}

	f.time = ec.now
	f.lastDrag = ec.now
	f.pos = SquareToPos(f.square)
	f.dragging = false

	if f.square == dest || f.fading {
		return base.Move{}, false
	}

	p.selected = nil
	return base.Move{From: f.square, To: dest}, true
}
