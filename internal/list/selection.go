package list

import (
	"dragd/internal/dnd"
	"dragd/internal/element"
	"dragd/pkg/types"
)

// SelectionList wraps an ordered collection with click and keyboard
// selection semantics: plain click selects one item, shift extends the
// range from the anchor, the action modifier toggles. Selection flags live
// on the items themselves; this wrapper keeps them, the anchor, and the
// range end consistent.
//
// A plain press on an already-selected item defers the collapse to a
// single selection until release, so a multi-item drag can start from any
// selected item without first destroying the selection.
type SelectionList struct {
	element.Proxy
	selectStart     int
	selectEnd       int
	pendingCollapse int
	pressClaimed    bool
}

// NewSelectionList returns a selection wrapper over subject, which must
// contain an ordered collection in its decorator chain.
func NewSelectionList(subject element.Element) *SelectionList {
	return &SelectionList{
		Proxy:           element.NewProxy(subject),
		selectStart:     -1,
		selectEnd:       -1,
		pendingCollapse: -1,
	}
}

func (s *SelectionList) collection() (dnd.Collection, bool) {
	e := element.FindSubject(s.Subject(), func(e element.Element) bool {
		_, ok := e.(dnd.Collection)
		return ok
	})
	if e == nil {
		return nil, false
	}
	return e.(dnd.Collection), true
}

// Size returns the number of items in the wrapped collection.
func (s *SelectionList) Size() int {
	if c, ok := s.collection(); ok {
		return c.Size()
	}
	return 0
}

// At returns the item at index i in the wrapped collection.
func (s *SelectionList) At(i int) element.Element {
	c, _ := s.collection()
	return c.At(i)
}

// ChildBounds maps an item index to its rectangle given these bounds.
func (s *SelectionList) ChildBounds(bounds types.Rect, i int) types.Rect {
	c, _ := s.collection()
	return c.ChildBounds(bounds, i)
}

// Selection returns the indices of the selected items in document order.
func (s *SelectionList) Selection() []int {
	c, ok := s.collection()
	if !ok {
		return nil
	}
	var out []int
	for i := 0; i < c.Size(); i++ {
		if sel, ok := c.At(i).(element.Selectable); ok && sel.Selected() {
			out = append(out, i)
		}
	}
	return out
}

// SelectEnd returns the moving end of the most recent selection range, -1
// when nothing is selected.
func (s *SelectionList) SelectEnd() int {
	return s.selectEnd
}

// UpdateSelection selects the range between from and to inclusive, with
// from as the anchor and to as the range end. Items outside the range are
// deselected; items that cannot carry a selection flag are skipped.
func (s *SelectionList) UpdateSelection(from, to int) {
	c, ok := s.collection()
	if !ok {
		return
	}
	n := c.Size()
	if n == 0 {
		s.selectStart, s.selectEnd = -1, -1
		return
	}
	from = clampIndex(from, n)
	to = clampIndex(to, n)
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := 0; i < n; i++ {
		if sel, ok := c.At(i).(element.Selectable); ok {
			sel.Select(i >= lo && i <= hi)
		}
	}
	s.selectStart, s.selectEnd = from, to
}

// SelectAll selects every item, anchoring at the first.
func (s *SelectionList) SelectAll() {
	c, ok := s.collection()
	if !ok || c.Size() == 0 {
		return
	}
	s.UpdateSelection(0, c.Size()-1)
}

// SelectNone clears every selection flag and the anchor.
func (s *SelectionList) SelectNone() {
	c, ok := s.collection()
	if !ok {
		return
	}
	for i := 0; i < c.Size(); i++ {
		if sel, ok := c.At(i).(element.Selectable); ok {
			sel.Select(false)
		}
	}
	s.selectStart, s.selectEnd = -1, -1
}

// Click applies the selection gesture on press, then forwards so the hit
// item can start its own tracking. On release it forwards first and only
// collapses a deferred multi-selection when no drag claimed the gesture.
func (s *SelectionList) Click(ctx *element.Context, btn types.MouseButton) bool {
	if btn.Down {
		s.pressClaimed = s.pressSelect(ctx, btn)
		forwarded := s.Proxy.Click(ctx, btn)
		s.pressClaimed = s.pressClaimed || forwarded
		return s.pressClaimed
	}
	forwarded := s.Proxy.Click(ctx, btn)
	if !forwarded && s.pendingCollapse >= 0 {
		s.UpdateSelection(s.pendingCollapse, s.pendingCollapse)
		ctx.View.Refresh()
	}
	s.pendingCollapse = -1
	claimed := s.pressClaimed
	s.pressClaimed = false
	return claimed || forwarded
}

// pressSelect updates the selection for one press and reports whether the
// press engaged a selection gesture.
func (s *SelectionList) pressSelect(ctx *element.Context, btn types.MouseButton) bool {
	s.pendingCollapse = -1
	c, ok := s.collection()
	if !ok {
		return false
	}
	_, _, i := c.HitElement(ctx.Bounds, btn.Pos, true)
	if i < 0 || !element.Enabled(c.At(i)) {
		// a plain press on empty space clears the selection
		if btn.Mods&(types.ModShift|types.ModAction) == 0 {
			s.SelectNone()
			ctx.View.Refresh()
			return true
		}
		return false
	}
	item, selectable := c.At(i).(element.Selectable)
	if !selectable {
		return false
	}
	switch {
	case btn.Mods&types.ModShift != 0:
		anchor := s.selectStart
		if anchor < 0 {
			anchor = i
		}
		s.UpdateSelection(anchor, i)
	case btn.Mods&types.ModAction != 0:
		item.Select(!item.Selected())
		s.selectStart, s.selectEnd = i, i
	case item.Selected():
		s.pendingCollapse = i
	default:
		s.UpdateSelection(i, i)
	}
	ctx.View.Refresh()
	return true
}

// Key forwards to the wrapped content first, then handles list navigation:
// up and down move the selection end, with shift extending the range from
// the anchor.
func (s *SelectionList) Key(ctx *element.Context, k types.KeyInfo) bool {
	if s.Proxy.Key(ctx, k) {
		return true
	}
	if k.Action == types.KeyRelease {
		return false
	}
	c, ok := s.collection()
	if !ok || c.Size() == 0 {
		return false
	}
	n := c.Size()
	var end int
	switch k.Code {
	case types.KeyUp:
		if s.selectEnd < 0 {
			end = n - 1
		} else {
			end = clampIndex(s.selectEnd-1, n)
		}
	case types.KeyDown:
		if s.selectEnd < 0 {
			end = 0
		} else {
			end = clampIndex(s.selectEnd+1, n)
		}
	default:
		return false
	}
	if k.Mods&types.ModShift != 0 && s.selectStart >= 0 {
		s.UpdateSelection(s.selectStart, end)
	} else {
		s.UpdateSelection(end, end)
	}
	element.ScrollIntoView(ctx, c.ChildBounds(ctx.Bounds, end))
	ctx.View.Refresh()
	return true
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
