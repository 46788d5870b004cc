// Package list provides the ordered child collection the insertion-point
// protocol edits, and the selection model that keeps child selection flags,
// the anchor, and structural edits in sync.
package list

import (
	"sort"

	"dragd/internal/element"
	"dragd/internal/log"
	"dragd/pkg/types"
)

// List is a vertical stack of uniform-height items. It routes clicks and
// keys to its children, answers hit queries, and supports the structural
// edits a drop commit performs. Edits build fresh slices, so no caller can
// hold a stale reference into the mutated ordering.
type List struct {
	items      []element.Element
	itemHeight float32
	trackee    element.Element
}

// New returns a list of the given items with a uniform item height.
func New(itemHeight float32, items ...element.Element) *List {
	return &List{items: items, itemHeight: itemHeight}
}

// Size returns the number of items.
func (l *List) Size() int {
	return len(l.items)
}

// At returns the item at index i.
func (l *List) At(i int) element.Element {
	return l.items[i]
}

// ItemHeight returns the uniform item height.
func (l *List) ItemHeight() float32 {
	return l.itemHeight
}

// ContentHeight returns the total height of all items, the natural content
// extent for a viewport.
func (l *List) ContentHeight() float32 {
	return float32(len(l.items)) * l.itemHeight
}

// ChildBounds maps item index i to its rectangle given the list's bounds.
func (l *List) ChildBounds(bounds types.Rect, i int) types.Rect {
	top := bounds.Top + float32(i)*l.itemHeight
	return types.Rect{Left: bounds.Left, Top: top, Right: bounds.Right, Bottom: top + l.itemHeight}
}

// IndexAt returns the index of the item containing p, or -1.
func (l *List) IndexAt(bounds types.Rect, p types.Point) int {
	if !bounds.Contains(p) {
		return -1
	}
	i := int((p.Y - bounds.Top) / l.itemHeight)
	if i < 0 || i >= len(l.items) {
		return -1
	}
	if !l.ChildBounds(bounds, i).Contains(p) {
		return -1
	}
	return i
}

// HitElement resolves p to an item. With exact set, only an item whose
// bounds contain p qualifies; otherwise the vertically nearest item is
// returned, so a cursor in the padding above or below the items still
// resolves. Returns a -1 index when the list is empty or an exact hit
// misses.
func (l *List) HitElement(bounds types.Rect, p types.Point, exact bool) (element.Element, types.Rect, int) {
	n := len(l.items)
	if n == 0 {
		return nil, types.Rect{}, -1
	}
	if exact {
		i := l.IndexAt(bounds, p)
		if i < 0 {
			return nil, types.Rect{}, -1
		}
		return l.items[i], l.ChildBounds(bounds, i), i
	}
	i := int((p.Y - bounds.Top) / l.itemHeight)
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return l.items[i], l.ChildBounds(bounds, i), i
}

// Draw renders the items top to bottom.
func (l *List) Draw(ctx *element.Context) {
	for i, e := range l.items {
		e.Draw(ctx.Child(e, l.ChildBounds(ctx.Bounds, i)))
	}
}

// Click routes a press to the enabled item under the pointer and remembers
// it; the release goes to the remembered item wherever it now sits, so a
// reorder between press and release cannot misroute the gesture.
func (l *List) Click(ctx *element.Context, btn types.MouseButton) bool {
	if btn.Down {
		l.trackee = nil
		i := l.IndexAt(ctx.Bounds, btn.Pos)
		if i < 0 {
			return false
		}
		child := l.items[i]
		if !element.Enabled(child) {
			return false
		}
		c, ok := child.(element.Clickable)
		if !ok {
			return false
		}
		if c.Click(ctx.Child(child, l.ChildBounds(ctx.Bounds, i)), btn) {
			l.trackee = child
			return true
		}
		return false
	}
	child := l.trackee
	l.trackee = nil
	if child == nil {
		return false
	}
	i := l.indexOf(child)
	if i < 0 {
		return false
	}
	c, ok := child.(element.Clickable)
	if !ok {
		return false
	}
	return c.Click(ctx.Child(child, l.ChildBounds(ctx.Bounds, i)), btn)
}

// Drag routes pointer motion to the item that claimed the press.
func (l *List) Drag(ctx *element.Context, btn types.MouseButton) {
	child := l.trackee
	if child == nil {
		return
	}
	i := l.indexOf(child)
	if i < 0 {
		l.trackee = nil
		return
	}
	if d, ok := child.(element.Dragger); ok {
		d.Drag(ctx.Child(child, l.ChildBounds(ctx.Bounds, i)), btn)
	}
}

// Key offers the key to the item tracking a gesture first, then to the
// remaining items in document order, stopping at the first consumer.
func (l *List) Key(ctx *element.Context, k types.KeyInfo) bool {
	if l.trackee != nil {
		if i := l.indexOf(l.trackee); i >= 0 {
			if h, ok := l.trackee.(element.KeyHandler); ok {
				if h.Key(ctx.Child(l.trackee, l.ChildBounds(ctx.Bounds, i)), k) {
					return true
				}
			}
		}
	}
	for i, child := range l.items {
		if child == l.trackee {
			continue
		}
		if h, ok := child.(element.KeyHandler); ok {
			if h.Key(ctx.Child(child, l.ChildBounds(ctx.Bounds, i)), k) {
				return true
			}
		}
	}
	return false
}

// Move relocates the items at the given pre-move indices, in document
// order, to the boundary position to (also pre-move). Out-of-range input
// is clamped or dropped rather than rejected; the committed boundary is
// always within the collection.
func (l *List) Move(to int, indices []int) {
	n := len(l.items)
	if to < 0 || to > n {
		log.Warnf("list: move boundary %d clamped, count %d", to, n)
		if to < 0 {
			to = 0
		} else {
			to = n
		}
	}
	idx := normalize(indices, n)
	if len(idx) == 0 {
		return
	}
	moving := make([]element.Element, 0, len(idx))
	picked := make(map[int]bool, len(idx))
	adjusted := to
	for _, i := range idx {
		moving = append(moving, l.items[i])
		picked[i] = true
		if i < to {
			adjusted--
		}
	}
	remaining := make([]element.Element, 0, n-len(idx))
	for i, e := range l.items {
		if !picked[i] {
			remaining = append(remaining, e)
		}
	}
	out := make([]element.Element, 0, n)
	out = append(out, remaining[:adjusted]...)
	out = append(out, moving...)
	out = append(out, remaining[adjusted:]...)
	l.items = out
}

// Erase removes the items at the given indices.
func (l *List) Erase(indices []int) {
	idx := normalize(indices, len(l.items))
	if len(idx) == 0 {
		return
	}
	doomed := make(map[int]bool, len(idx))
	for _, i := range idx {
		doomed[i] = true
	}
	out := make([]element.Element, 0, len(l.items)-len(idx))
	for i, e := range l.items {
		if !doomed[i] {
			out = append(out, e)
		}
	}
	if l.trackee != nil && doomed[l.indexOf(l.trackee)] {
		l.trackee = nil
	}
	l.items = out
}

// SetItems replaces the whole collection, dropping any gesture tracking.
func (l *List) SetItems(items ...element.Element) {
	l.items = append([]element.Element(nil), items...)
	l.trackee = nil
}

// Insert places items before index at, clamped to the collection.
func (l *List) Insert(at int, items ...element.Element) {
	n := len(l.items)
	if at < 0 {
		at = 0
	}
	if at > n {
		at = n
	}
	out := make([]element.Element, 0, n+len(items))
	out = append(out, l.items[:at]...)
	out = append(out, items...)
	out = append(out, l.items[at:]...)
	l.items = out
}

func (l *List) indexOf(e element.Element) int {
	for i, item := range l.items {
		if item == e {
			return i
		}
	}
	return -1
}

// normalize returns the in-range indices sorted ascending with duplicates
// dropped.
func normalize(indices []int, n int) []int {
	idx := make([]int, 0, len(indices))
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= n {
			log.Warnf("list: index %d out of range, count %d", i, n)
			continue
		}
		if !seen[i] {
			seen[i] = true
			idx = append(idx, i)
		}
	}
	sort.Ints(idx)
	return idx
}
