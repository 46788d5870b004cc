package demo

import (
	"dragd/internal/element"
	"dragd/pkg/types"
)

// split stacks two elements vertically at a fixed share, routing input to
// the region under the pointer and keeping the press grab on whichever
// child claimed it.
type split struct {
	top, bottom element.Element
	share       float32
	trackee     int // child index holding the press grab, -1 when idle
}

func newSplit(top, bottom element.Element, share float32) *split {
	return &split{top: top, bottom: bottom, share: share, trackee: -1}
}

func (s *split) Size() int { return 2 }

func (s *split) At(i int) element.Element {
	if i == 0 {
		return s.top
	}
	return s.bottom
}

func (s *split) ChildBounds(bounds types.Rect, i int) types.Rect {
	div := bounds.Top + bounds.Height()*s.share
	if i == 0 {
		return types.NewRect(bounds.Left, bounds.Top, bounds.Right, div)
	}
	return types.NewRect(bounds.Left, div, bounds.Right, bounds.Bottom)
}

func (s *split) Draw(ctx *element.Context) {
	for i := 0; i < s.Size(); i++ {
		child := ctx.Child(s.At(i), s.ChildBounds(ctx.Bounds, i))
		child.Elem.Draw(child)
	}
	if ctx.Canvas != nil {
		div := ctx.Bounds.Top + ctx.Bounds.Height()*s.share
		ctx.Canvas.Line(
			types.Pt(ctx.Bounds.Left, div),
			types.Pt(ctx.Bounds.Right, div),
			ctx.Theme.InactiveLabel, 1,
		)
	}
}

func (s *split) Click(ctx *element.Context, btn types.MouseButton) bool {
	if btn.Down {
		s.trackee = -1
		for i := 0; i < s.Size(); i++ {
			b := s.ChildBounds(ctx.Bounds, i)
			if !b.Contains(btn.Pos) || !element.Enabled(s.At(i)) {
				continue
			}
			c, ok := s.At(i).(element.Clickable)
			if !ok {
				continue
			}
			if c.Click(ctx.Child(s.At(i), b), btn) {
				s.trackee = i
				return true
			}
			return false
		}
		return false
	}
	if s.trackee < 0 {
		return false
	}
	i := s.trackee
	s.trackee = -1
	c, ok := s.At(i).(element.Clickable)
	if !ok {
		return false
	}
	return c.Click(ctx.Child(s.At(i), s.ChildBounds(ctx.Bounds, i)), btn)
}

func (s *split) Drag(ctx *element.Context, btn types.MouseButton) {
	if s.trackee < 0 {
		return
	}
	d, ok := s.At(s.trackee).(element.Dragger)
	if !ok {
		return
	}
	d.Drag(ctx.Child(s.At(s.trackee), s.ChildBounds(ctx.Bounds, s.trackee)), btn)
}

func (s *split) Key(ctx *element.Context, k types.KeyInfo) bool {
	order := []int{0, 1}
	if s.trackee == 1 {
		order = []int{1, 0}
	}
	for _, i := range order {
		h, ok := s.At(i).(element.KeyHandler)
		if !ok || !element.Enabled(s.At(i)) {
			continue
		}
		if h.Key(ctx.Child(s.At(i), s.ChildBounds(ctx.Bounds, i)), k) {
			return true
		}
	}
	return false
}
