package dnd

import (
	"dragd/internal/element"
	"dragd/internal/log"
	"dragd/pkg/types"
)

// NoInsertion is the sentinel insertion index meaning "none computed".
const NoInsertion = -1

// scrollBoxExtent is half the side of the box scrolled into view around the
// drop point while a payload hovers an inserter inside a viewport.
const scrollBoxExtent = 20

// Collection is the ordered-children surface an insertion-point target
// edits. HitElement resolves a cursor position to a child; with exact set,
// only a child whose bounds contain the point qualifies, otherwise the
// vertically nearest child is returned. Move relocates the items at the
// given document-order indices to the boundary position to, expressed
// against the pre-move ordering; Erase removes them.
type Collection interface {
	element.Composite
	HitElement(bounds types.Rect, p types.Point, exact bool) (element.Element, types.Rect, int)
	Move(to int, indices []int)
	Erase(indices []int)
}

// DropInserter is the drop target for ordered collections: while a
// compatible payload hovers it, every draw recomputes a between-children
// insertion index from the cursor position and renders a guide line at the
// corresponding boundary. A committed drop, move or erase edits the wrapped
// collection and resynchronizes the companion selection model.
type DropInserter struct {
	DropBase
	// OnDrop accepts an external payload at the computed insertion index.
	OnDrop func(info types.DropInfo, index int) bool
	// OnMove reports a committed reorder: the pre-move boundary index and
	// the pre-move indices of the items that moved.
	OnMove func(index int, indices []int)
	// OnErase reports committed removals.
	OnErase func(indices []int)
	// OnSelect reports the selection and its anchor after a click release
	// or a consumed key changes them.
	OnSelect func(selection []int, anchor int)

	insertion int
}

// NewDropInserter returns an insertion-point target wrapping subject,
// interested in the given payload-name patterns in addition to its own
// identity token.
func NewDropInserter(subject element.Element, names ...string) (*DropInserter, error) {
	base, err := NewDropBase(subject, names...)
	if err != nil {
		return nil, err
	}
	ins := &DropInserter{DropBase: *base, insertion: NoInsertion}
	ins.Prepare()
	return ins, nil
}

// InsertionIndex returns the most recently computed insertion index, or
// NoInsertion. Meaningful only after a draw has run while tracking.
func (ins *DropInserter) InsertionIndex() int {
	return ins.insertion
}

// collection returns the ordered collection below this inserter.
func (ins *DropInserter) collection() (Collection, bool) {
	e := element.FindSubject(ins.Subject(), func(e element.Element) bool {
		_, ok := e.(Collection)
		return ok
	})
	if e == nil {
		return nil, false
	}
	return e.(Collection), true
}

// selectionModel returns the companion selection model below this inserter.
func (ins *DropInserter) selectionModel() (element.SelectionModel, bool) {
	e := element.FindSubject(ins.Subject(), func(e element.Element) bool {
		_, ok := e.(element.SelectionModel)
		return ok
	})
	if e == nil {
		return nil, false
	}
	return e.(element.SelectionModel), true
}

// Draw renders the wrapped content, then, while tracking, recomputes the
// insertion index from the current cursor position and draws the guide
// line. The index is recomputed on every draw rather than cached from the
// notification: a commit always consumes the value of the most recent
// draw.
func (ins *DropInserter) Draw(ctx *element.Context) {
	ins.Proxy.Draw(ctx)
	if !ins.IsTracking() {
		return
	}
	list, ok := ins.collection()
	if !ok {
		return
	}
	if list.Size() == 0 {
		ins.insertion = 0
		ins.drawGuide(ctx, ctx.Bounds.Top)
		return
	}
	cursor := ctx.View.CursorPos()
	_, bounds, idx := list.HitElement(ctx.Bounds, cursor, false)
	if idx < 0 {
		return
	}
	if cursor.Y <= bounds.Center().Y {
		ins.insertion = idx
		ins.drawGuide(ctx, bounds.Top)
	} else {
		ins.insertion = idx + 1
		ins.drawGuide(ctx, bounds.Bottom)
	}
}

func (ins *DropInserter) drawGuide(ctx *element.Context, y float32) {
	a := types.Point{X: ctx.Bounds.Left, Y: y}
	b := types.Point{X: ctx.Bounds.Right, Y: y}
	ctx.Canvas.Line(a, b, ctx.Theme.IndicatorHilite, ctx.Theme.StrokeWidth)
}

// TrackDrop updates tracking state, then, while tracking, keeps the drop
// point visible inside any ancestor viewport and requests a redraw so the
// guide follows the cursor. An Entering edge starts the session with a
// clean index, so a commit that lands before any draw is a no-op.
func (ins *DropInserter) TrackDrop(ctx *element.Context, info types.DropInfo, status types.TrackingStatus) {
	if status == types.Entering {
		ins.insertion = NoInsertion
	}
	ins.DropBase.TrackDrop(ctx, info, status)
	if ins.IsTracking() {
		box := types.RectXYWH(
			info.Where.X-scrollBoxExtent, info.Where.Y-scrollBoxExtent,
			2*scrollBoxExtent, 2*scrollBoxExtent,
		)
		element.ScrollIntoView(ctx, box)
		ctx.View.Refresh()
	}
}

// Drop resets tracking, then commits the payload at the computed insertion
// index if one is active. The index is consumed either way.
func (ins *DropInserter) Drop(ctx *element.Context, info types.DropInfo) bool {
	ins.DropBase.Drop(ctx, info)
	if ins.insertion == NoInsertion {
		return false
	}
	index := ins.insertion
	ins.insertion = NoInsertion
	accepted := false
	if ins.OnDrop != nil {
		accepted = ins.OnDrop(info, index)
	}
	ctx.View.Refresh()
	log.Debugf("drop inserter: drop at index %d, accepted=%v", index, accepted)
	return accepted
}

// Click forwards to the wrapped content and, when the release was handled,
// reports the resulting selection. Selection-changed notifications stay
// centralized here instead of being duplicated per child.
func (ins *DropInserter) Click(ctx *element.Context, btn types.MouseButton) bool {
	result := ins.Proxy.Click(ctx, btn)
	if result && !btn.Down {
		ins.notifySelection()
	}
	return result
}

// Key forwards to the wrapped content and reports the selection after any
// consumed key.
func (ins *DropInserter) Key(ctx *element.Context, k types.KeyInfo) bool {
	result := ins.Proxy.Key(ctx, k)
	if result {
		ins.notifySelection()
	}
	return result
}

func (ins *DropInserter) notifySelection() {
	if ins.OnSelect == nil {
		return
	}
	if sel, ok := ins.selectionModel(); ok {
		ins.OnSelect(sel.Selection(), sel.SelectEnd())
	}
}

// Move relocates the items at indices to the active insertion boundary,
// reports the move, and selects the moved block at its final position. A
// missing index or an empty index set is a no-op. Indices are captured by
// value before the structural edit.
func (ins *DropInserter) Move(indices []int) {
	if ins.insertion == NoInsertion || len(indices) == 0 {
		return
	}
	list, ok := ins.collection()
	if !ok {
		return
	}
	to := ins.insertion
	ins.insertion = NoInsertion
	moved := append([]int(nil), indices...)
	list.Move(to, moved)
	if ins.OnMove != nil {
		ins.OnMove(to, moved)
	}
	// The block lands at the boundary index minus the moved items that
	// sat before it.
	final := to
	for _, i := range moved {
		if i < to {
			final--
		}
	}
	if sel, ok := ins.selectionModel(); ok {
		sel.UpdateSelection(final, final+len(moved)-1)
	}
	log.Debugf("drop inserter: moved %d item(s) to index %d", len(moved), final)
}

// Erase removes the items at indices from the collection, reports the
// removal, and clears the selection model.
func (ins *DropInserter) Erase(indices []int) {
	if len(indices) == 0 {
		return
	}
	list, ok := ins.collection()
	if !ok {
		return
	}
	doomed := append([]int(nil), indices...)
	list.Erase(doomed)
	if ins.OnErase != nil {
		ins.OnErase(doomed)
	}
	if sel, ok := ins.selectionModel(); ok {
		sel.SelectNone()
	}
	log.Debugf("drop inserter: erased %d item(s)", len(doomed))
}
