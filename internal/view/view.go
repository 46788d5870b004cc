// Package view hosts an element tree for a front end: it dispatches
// pointer and keyboard events into the tree, routes drop payloads to
// whichever target sits under the cursor, owns the overlay stack floating
// layers live in, and draws content plus overlays through a front-end
// supplied canvas.
//
// Everything here is single-threaded by contract: the front end delivers
// events from one goroutine and every dispatch runs to completion before
// the next, so the view carries no locks.
package view

import (
	"dragd/internal/element"
	"dragd/pkg/types"
)

// Host is the surface a front end provides to the view. Refresh schedules
// a redraw; the view never draws spontaneously.
type Host interface {
	Refresh()
}

// View hosts one element tree plus an overlay stack above it.
type View struct {
	host     Host
	content  element.Element
	theme    element.Theme
	bounds   types.Rect
	cursor   types.Point
	overlays []*element.Floating
	tracking bool

	dropTarget element.DropTarget
}

// New returns a view over content, reporting redraws to host.
func New(host Host, content element.Element) *View {
	return &View{host: host, content: content, theme: element.DefaultTheme()}
}

// SetBounds places the content tree. Front ends call it on every resize.
func (v *View) SetBounds(r types.Rect) {
	v.bounds = r
}

// Bounds returns the content bounds.
func (v *View) Bounds() types.Rect {
	return v.bounds
}

// Content returns the hosted tree.
func (v *View) Content() element.Element {
	return v.content
}

// SetContent replaces the hosted tree.
func (v *View) SetContent(e element.Element) {
	v.content = e
	v.Refresh()
}

// Theme returns the active theme.
func (v *View) Theme() element.Theme {
	return v.theme
}

// SetTheme replaces the active theme.
func (v *View) SetTheme(t element.Theme) {
	v.theme = t
	v.Refresh()
}

// CursorPos returns the most recent pointer position.
func (v *View) CursorPos() types.Point {
	return v.cursor
}

// Refresh schedules a redraw through the host.
func (v *View) Refresh() {
	if v.host != nil {
		v.host.Refresh()
	}
}

// AddOverlay pushes a floating layer above the content and any layers
// added before it.
func (v *View) AddOverlay(f *element.Floating) {
	if f == nil {
		return
	}
	v.overlays = append(v.overlays, f)
	v.Refresh()
}

// RemoveOverlay removes a floating layer.
func (v *View) RemoveOverlay(f *element.Floating) {
	for i, o := range v.overlays {
		if o == f {
			v.overlays = append(v.overlays[:i], v.overlays[i+1:]...)
			v.Refresh()
			return
		}
	}
}

// Overlays returns the overlay stack, bottom first.
func (v *View) Overlays() []*element.Floating {
	return v.overlays
}

// Draw renders the content tree, then the overlay stack bottom to top.
func (v *View) Draw(cv element.Canvas) {
	if v.content != nil {
		v.content.Draw(element.NewContext(v, cv, v.theme, v.bounds, v.content))
	}
	for _, f := range v.overlays {
		f.Draw(element.NewContext(v, cv, v.theme, f.Bounds(), f))
	}
}

// Press dispatches a button press and reports whether the tree claimed it.
// A claimed press grabs the pointer: moves and the release are routed
// through the same dispatch path until Release.
func (v *View) Press(p types.Point, num types.ButtonID, mods types.Modifiers) bool {
	v.cursor = p
	btn := types.MouseButton{Down: true, Num: num, Mods: mods, Pos: p}
	if c, ok := v.content.(element.Clickable); ok {
		v.tracking = c.Click(v.rootContext(), btn)
	} else {
		v.tracking = false
	}
	return v.tracking
}

// Move dispatches pointer motion. Motion matters only while a press is
// being tracked; an idle pointer just updates the cursor position.
func (v *View) Move(p types.Point, num types.ButtonID, mods types.Modifiers) {
	v.cursor = p
	if !v.tracking {
		return
	}
	btn := types.MouseButton{Down: true, Num: num, Mods: mods, Pos: p}
	if d, ok := v.content.(element.Dragger); ok {
		d.Drag(v.rootContext(), btn)
	}
}

// Release dispatches the button release that ends a tracked press and
// reports whether the tree claimed the gesture.
func (v *View) Release(p types.Point, num types.ButtonID, mods types.Modifiers) bool {
	v.cursor = p
	if !v.tracking {
		return false
	}
	v.tracking = false
	btn := types.MouseButton{Down: false, Num: num, Mods: mods, Pos: p}
	if c, ok := v.content.(element.Clickable); ok {
		return c.Click(v.rootContext(), btn)
	}
	return false
}

// Key dispatches keyboard input and reports whether the tree consumed it.
func (v *View) Key(k types.KeyInfo) bool {
	if h, ok := v.content.(element.KeyHandler); ok {
		return h.Key(v.rootContext(), k)
	}
	return false
}

// TrackDrop routes an active payload at info.Where: the target under the
// cursor that wants the payload receives Entering on first contact and
// Hovering afterwards; a previously tracked target that no longer resolves
// receives Leaving. Passing a Leaving status ends routing outright, for
// payloads that left the view or sessions that ended without a drop.
func (v *View) TrackDrop(info types.DropInfo, status types.TrackingStatus) {
	if status == types.Leaving {
		v.leaveTracked(info)
		return
	}
	target, tctx := element.DropTargetAt(v.rootContext(), info)
	if v.dropTarget != nil && target != v.dropTarget {
		v.dropTarget.TrackDrop(v.orphanContext(v.dropTarget), info, types.Leaving)
		v.dropTarget = nil
	}
	if target == nil {
		return
	}
	if target == v.dropTarget {
		target.TrackDrop(tctx, info, types.Hovering)
	} else {
		target.TrackDrop(tctx, info, types.Entering)
		v.dropTarget = target
	}
}

// Drop commits the payload on the target under info.Where. The target's
// edge sequence is closed with Leaving before Drop runs; a drop over
// nothing just clears any tracked target.
func (v *View) Drop(info types.DropInfo) bool {
	target, tctx := element.DropTargetAt(v.rootContext(), info)
	if v.dropTarget != nil && target != v.dropTarget {
		v.leaveTracked(info)
	}
	if target == nil {
		v.leaveTracked(info)
		return false
	}
	if target != v.dropTarget {
		// the payload arrived without prior motion; open the sequence
		// before closing it
		target.TrackDrop(tctx, info, types.Entering)
	}
	v.dropTarget = nil
	target.TrackDrop(tctx, info, types.Leaving)
	return target.Drop(tctx, info)
}

// TrackedTarget returns the drop target currently receiving edges, or nil.
func (v *View) TrackedTarget() element.DropTarget {
	return v.dropTarget
}

func (v *View) leaveTracked(info types.DropInfo) {
	if v.dropTarget == nil {
		return
	}
	v.dropTarget.TrackDrop(v.orphanContext(v.dropTarget), info, types.Leaving)
	v.dropTarget = nil
}

func (v *View) rootContext() *element.Context {
	return element.NewContext(v, nil, v.theme, v.bounds, v.content)
}

// orphanContext frames an element that can no longer be located in the
// tree, for edges that need no geometry.
func (v *View) orphanContext(e element.Element) *element.Context {
	return element.NewContext(v, nil, v.theme, v.bounds, e)
}
