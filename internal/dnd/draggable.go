package dnd

import (
	"dragd/internal/element"
	"dragd/internal/log"
	"dragd/pkg/types"
)

const (
	// DefaultDragThreshold is the per-axis displacement, in view units, a
	// gesture must exceed before a release commits a move instead of
	// degenerating into a click.
	DefaultDragThreshold float32 = 10

	// dragImageOffset keeps the floating visual clear of the pointer.
	dragImageOffset float32 = 10

	// selectionRadius rounds the selection highlight corners.
	selectionRadius float32 = 2
)

// Draggable wraps arbitrary content so it can be picked up as part of a
// selection and dragged to the nearest ancestor insertion-point target. It
// owns the floating drag visual for the duration of a session and destroys
// it on every exit path: release, cancellation, or a foreign commit.
type Draggable struct {
	element.Proxy
	selected  bool
	enabled   bool
	threshold float32
	tracker   types.TrackerInfo
	image     *element.Floating
}

// NewDraggable returns an enabled, unselected draggable wrapping subject.
func NewDraggable(subject element.Element) *Draggable {
	return &Draggable{
		Proxy:     element.NewProxy(subject),
		enabled:   true,
		threshold: DefaultDragThreshold,
	}
}

// SetDragThreshold overrides the per-axis displacement threshold. Terminal
// front ends use a smaller value since a cell is a far coarser unit than a
// pixel.
func (d *Draggable) SetDragThreshold(t float32) {
	d.threshold = t
}

// Selected reports the selection flag.
func (d *Draggable) Selected() bool {
	return d.selected
}

// Select sets the selection flag. The selection model calls this; the flag
// itself lives here so drawing needs no model lookup.
func (d *Draggable) Select(on bool) {
	d.selected = on
}

// Enabled reports whether the element accepts input.
func (d *Draggable) Enabled() bool {
	return d.enabled
}

// Enable toggles input. Disabled draggables draw dimmed and are
// transparent to hit-testing.
func (d *Draggable) Enable(on bool) {
	d.enabled = on
}

// Dragging reports whether a drag session currently owns a floating
// visual.
func (d *Draggable) Dragging() bool {
	return d.image != nil
}

// Draw renders the selection highlight behind the wrapped content and dims
// the content when disabled.
func (d *Draggable) Draw(ctx *element.Context) {
	if d.selected {
		ctx.Canvas.FillRoundRect(ctx.Bounds, ctx.Theme.Indicator, selectionRadius)
	}
	if !d.enabled {
		if s := d.Subject(); s != nil {
			cctx := ctx.Child(s, ctx.Bounds)
			cctx.Theme.Label = cctx.Theme.InactiveLabel
			s.Draw(cctx)
		}
		return
	}
	d.Proxy.Draw(ctx)
}

// Click starts tracking on a press and finishes the session on a release.
// The result reports whether the gesture was claimed: an unclaimed press or
// release lets the caller treat it as a plain selection update.
func (d *Draggable) Click(ctx *element.Context, btn types.MouseButton) bool {
	if !d.enabled {
		return false
	}
	if btn.Down {
		d.tracker = types.TrackerInfo{
			Start:    btn.Pos,
			Previous: btn.Pos,
			Current:  btn.Pos,
			Mods:     btn.Mods,
		}
		d.beginTracking(ctx)
	} else {
		d.tracker.Previous = d.tracker.Current
		d.tracker.Current = btn.Pos
		d.endTracking(ctx)
	}
	return d.tracker.Processed
}

// Drag advances the session with the latest pointer position.
func (d *Draggable) Drag(ctx *element.Context, btn types.MouseButton) {
	if !d.enabled {
		return
	}
	d.tracker.Previous = d.tracker.Current
	d.tracker.Current = btn.Pos
	d.tracker.Mods |= btn.Mods
	d.keepTracking(ctx)
}

// Key handles the two bindings the protocol reacts to: escape cancels an
// active drag without committing, backspace and delete erase the current
// selection through the nearest ancestor inserter.
func (d *Draggable) Key(ctx *element.Context, k types.KeyInfo) bool {
	if !d.enabled || k.Action == types.KeyRelease {
		return false
	}
	switch k.Code {
	case types.KeyEscape:
		if d.image == nil {
			return false
		}
		d.discardImage(ctx)
		if ins, ictx := findInserter(ctx); ins != nil {
			d.notify(ictx, ins, types.Leaving, ctx.View.CursorPos())
		}
		ctx.View.Refresh()
		log.Debugf("draggable: drag cancelled")
		return true
	case types.KeyBackspace, types.KeyDelete:
		ins, _ := findInserter(ctx)
		sel, _ := findSelectionModel(ctx)
		if ins == nil || sel == nil {
			return false
		}
		indices := sel.Selection()
		if len(indices) == 0 {
			return false
		}
		ins.Erase(indices)
		ctx.View.Refresh()
		return true
	}
	return false
}

// beginTracking starts a session: with no selection-unrelated modifiers and
// this element selected, it builds the floating drag visual and sends the
// Entering edge addressed to the nearest ancestor inserter's identity
// token. The gesture is claimed only if a drag actually started.
func (d *Draggable) beginTracking(ctx *element.Context) {
	d.tracker.Processed = false
	if d.tracker.Mods&(types.ModShift|types.ModAction) != 0 {
		return
	}
	if !d.selected {
		return
	}
	if d.image != nil {
		d.discardImage(ctx)
	}
	count := 1
	if sel, _ := findSelectionModel(ctx); sel != nil {
		if n := len(sel.Selection()); n > 0 {
			count = n
		}
	}
	d.image = NewDragImage(d.Subject(), ctx.Bounds, count)
	ctx.View.AddOverlay(d.image)
	if ins, ictx := findInserter(ctx); ins != nil {
		d.notify(ictx, ins, types.Entering, d.tracker.Start)
	}
	d.tracker.Processed = true
	log.Debugf("draggable: drag started with %d item(s)", count)
}

// keepTracking relocates the floating visual to the pointer and re-sends
// the Hovering edge.
func (d *Draggable) keepTracking(ctx *element.Context) {
	if d.image == nil {
		return
	}
	where := d.tracker.Current
	b := d.image.Bounds()
	d.image.SetBounds(b.MoveTo(where.X+dragImageOffset, where.Y+dragImageOffset))
	if ins, ictx := findInserter(ctx); ins != nil {
		d.notify(ictx, ins, types.Hovering, where)
	}
	ctx.View.Refresh()
	d.tracker.Processed = true
}

// endTracking tears the session down: the visual is destroyed and the
// Leaving edge sent before any commit, so the inserter's last drawn index
// survives into the move. The move commits only when displacement exceeded
// the threshold on either axis and a non-empty selection exists.
func (d *Draggable) endTracking(ctx *element.Context) {
	dragged := d.image != nil
	ins, ictx := findInserter(ctx)
	if dragged {
		d.discardImage(ctx)
		if ins != nil {
			d.notify(ictx, ins, types.Leaving, d.tracker.Current)
		}
		ctx.View.Refresh()
	}
	delta := d.tracker.Distance()
	if !dragged || (abs32(delta.X) <= d.threshold && abs32(delta.Y) <= d.threshold) {
		d.tracker.Processed = false
		return
	}
	if ins == nil {
		d.tracker.Processed = false
		return
	}
	sel, _ := findSelectionModel(ctx)
	if sel == nil {
		d.tracker.Processed = false
		return
	}
	indices := sel.Selection()
	if len(indices) == 0 {
		d.tracker.Processed = false
		return
	}
	ins.Move(indices)
	ctx.View.Refresh()
	d.tracker.Processed = true
}

func (d *Draggable) discardImage(ctx *element.Context) {
	ctx.View.RemoveOverlay(d.image)
	d.image = nil
}

// notify sends one tracking edge directly to the ancestor inserter, with a
// fresh payload carrying only that inserter's identity token.
func (d *Draggable) notify(ictx *element.Context, ins *DropInserter, status types.TrackingStatus, where types.Point) {
	info := types.DropInfo{
		Data:  types.Payload{ins.Token(): nil},
		Where: where,
	}
	ins.TrackDrop(ictx, info, status)
}

func findInserter(ctx *element.Context) (*DropInserter, *element.Context) {
	e, ectx := element.FindParent(ctx, func(e element.Element) bool {
		_, ok := e.(*DropInserter)
		return ok
	})
	if e == nil {
		return nil, nil
	}
	return e.(*DropInserter), ectx
}

func findSelectionModel(ctx *element.Context) (element.SelectionModel, *element.Context) {
	e, ectx := element.FindParent(ctx, func(e element.Element) bool {
		_, ok := e.(element.SelectionModel)
		return ok
	})
	if e == nil {
		return nil, nil
	}
	return e.(element.SelectionModel), ectx
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
