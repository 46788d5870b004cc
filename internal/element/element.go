// Package element defines the retained element tree the interaction engine
// runs on: a minimal Element interface, optional capability interfaces
// discovered by type assertion, and the per-dispatch Context that carries
// view, canvas, theme and bounds down the tree.
package element

import (
	"dragd/pkg/types"
)

// Element is the one interface every node in the tree implements. All other
// behavior (clicking, dragging, key handling, drop tracking) is optional and
// discovered by type assertion at dispatch time.
type Element interface {
	Draw(ctx *Context)
}

// Clickable receives button transitions, routed top-down so wrappers can
// intercept before their subjects. The return value on a press reports
// whether the element (or a descendant) wants the implicit grab: a true
// result makes the view route subsequent moves and the release through the
// same dispatch path.
type Clickable interface {
	Element
	Click(ctx *Context, btn types.MouseButton) bool
}

// Dragger receives pointer motion while a press is being tracked.
// Containers forward it to the child that claimed the press, wherever that
// child currently sits.
type Dragger interface {
	Element
	Drag(ctx *Context, btn types.MouseButton)
}

// KeyHandler receives keyboard input. A true result consumes the key and
// stops further routing.
type KeyHandler interface {
	Element
	Key(ctx *Context, k types.KeyInfo) bool
}

// DropTarget is implemented by elements that can receive a dragged payload.
// WantsDrop is the compatibility filter consulted before any tracking
// starts; TrackDrop receives the Entering, Hovering and Leaving edges while
// a compatible payload moves over the target; Drop commits the payload and
// reports whether the target consumed it.
type DropTarget interface {
	Element
	WantsDrop(info types.DropInfo) bool
	TrackDrop(ctx *Context, info types.DropInfo, status types.TrackingStatus)
	Drop(ctx *Context, info types.DropInfo) bool
}

// Selectable is implemented by elements that carry a selection flag. The
// flag is owned by the element but kept in sync by its selection model.
type Selectable interface {
	Selected() bool
	Select(on bool)
}

// Enableable is implemented by elements that can be disabled. Disabled
// elements still draw (dimmed) but receive no input and track no drops.
type Enableable interface {
	Enabled() bool
	Enable(on bool)
}

// Subjecter is implemented by single-child wrappers. Tree walks use it to
// descend decorator chains.
type Subjecter interface {
	Subject() Element
}

// SubjectBoundser is implemented by wrappers whose subject does not share
// their own bounds, such as a viewport placing taller content behind its
// window. Tree walks consult it when descending.
type SubjectBoundser interface {
	SubjectBounds(own types.Rect) types.Rect
}

// Composite is the read surface of an ordered container. Indices are
// document order, 0-based; ChildBounds maps a child index to its rectangle
// given the container's own bounds, so walks and overlays can reconstruct
// geometry without a layout pass.
type Composite interface {
	Element
	Size() int
	At(i int) Element
	ChildBounds(bounds types.Rect, i int) types.Rect
}

// SelectionModel is the selection surface of a container whose children may
// be Selectable. Indices follow the container's document order; SelectEnd is
// the anchorless end of the most recent range, -1 when nothing is selected.
type SelectionModel interface {
	Composite
	Selection() []int
	SelectEnd() int
	UpdateSelection(from, to int)
	SelectAll()
	SelectNone()
}

// Scrollable is implemented by viewports. ScrollIntoView adjusts the scroll
// position so r, in view coordinates, becomes visible, and reports whether
// anything moved. ctx is the scrollable's own frame.
type Scrollable interface {
	ScrollIntoView(ctx *Context, r types.Rect) bool
}

// ContentSized is implemented by elements that know their natural vertical
// extent, letting an enclosing viewport size its scroll range.
type ContentSized interface {
	ContentHeight() float32
}

// View is the engine surface the tree can reach back into: overlay
// management for drag images, redraw scheduling, cursor queries, and
// payload routing for both internal gestures and platform drags.
type View interface {
	// AddOverlay pushes a floating layer above the content tree.
	AddOverlay(f *Floating)
	// RemoveOverlay removes a previously added layer.
	RemoveOverlay(f *Floating)
	// Refresh schedules a redraw of the whole view.
	Refresh()
	// CursorPos returns the current pointer position in view coordinates.
	CursorPos() types.Point
	// TrackDrop routes an active payload at info.Where, computing the
	// Entering/Hovering/Leaving edges for whichever target sits under the
	// cursor. Drag sources call it on every move; drop targets call it
	// again when their own geometry changes mid-gesture.
	TrackDrop(info types.DropInfo, status types.TrackingStatus)
	// Drop commits the payload on the currently tracked target and
	// reports whether it was consumed. The target receives its Leaving
	// edge first, then Drop.
	Drop(info types.DropInfo) bool
}

// Enabled reports the effective enabled state of e: elements that do not
// implement Enableable are always enabled.
func Enabled(e Element) bool {
	if en, ok := e.(Enableable); ok {
		return en.Enabled()
	}
	return true
}
