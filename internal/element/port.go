package element

import (
	"dragd/pkg/types"
)

// Port is a vertical viewport: it clips its subject to its own bounds and
// scrolls taller content behind the window. The subject's height comes from
// the nearest ContentSized element in its decorator chain; content no
// taller than the window never scrolls.
type Port struct {
	Proxy
	offset float32
}

// NewPort returns a viewport over subject.
func NewPort(subject Element) *Port {
	return &Port{Proxy: NewProxy(subject)}
}

// ScrollOffset returns the current vertical offset, >= 0.
func (p *Port) ScrollOffset() float32 {
	return p.offset
}

// SubjectBounds maps the port's window to the content rectangle behind it.
func (p *Port) SubjectBounds(own types.Rect) types.Rect {
	h := p.contentHeight(own)
	r := own
	r.Top = own.Top - p.offset
	r.Bottom = r.Top + h
	return r
}

func (p *Port) contentHeight(own types.Rect) float32 {
	e := FindSubject(p.Subject(), func(e Element) bool {
		_, ok := e.(ContentSized)
		return ok
	})
	if e == nil {
		return own.Height()
	}
	h := e.(ContentSized).ContentHeight()
	if h < own.Height() {
		return own.Height()
	}
	return h
}

// clampOffset keeps the window inside the content.
func (p *Port) clampOffset(own types.Rect) {
	max := p.contentHeight(own) - own.Height()
	if max < 0 {
		max = 0
	}
	if p.offset > max {
		p.offset = max
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// ScrollBy shifts the window by dy, clamped to the content. Returns whether
// anything moved.
func (p *Port) ScrollBy(ctx *Context, dy float32) bool {
	was := p.offset
	p.offset += dy
	p.clampOffset(ctx.Bounds)
	return p.offset != was
}

// ScrollIntoView shifts the window the minimal distance that makes r
// visible, preferring r's top edge when r is taller than the window.
func (p *Port) ScrollIntoView(ctx *Context, r types.Rect) bool {
	own := ctx.Bounds
	was := p.offset
	if r.Bottom > own.Bottom {
		p.offset += r.Bottom - own.Bottom
	}
	if r.Top < own.Top {
		p.offset -= own.Top - r.Top
	}
	p.clampOffset(own)
	return p.offset != was
}

// Draw clips to the window and renders the content behind it.
func (p *Port) Draw(ctx *Context) {
	s := p.Subject()
	if s == nil {
		return
	}
	p.clampOffset(ctx.Bounds)
	ctx.Canvas.PushClip(ctx.Bounds)
	s.Draw(ctx.Child(s, p.SubjectBounds(ctx.Bounds)))
	ctx.Canvas.PopClip()
}

// Click forwards presses inside the window to the content.
func (p *Port) Click(ctx *Context, btn types.MouseButton) bool {
	if btn.Down && !ctx.Bounds.Contains(btn.Pos) {
		return false
	}
	if c, ok := p.Subject().(Clickable); ok {
		return c.Click(ctx.Child(p.Subject(), p.SubjectBounds(ctx.Bounds)), btn)
	}
	return false
}

// Drag forwards motion to the content; a grabbed pointer may leave the
// window.
func (p *Port) Drag(ctx *Context, btn types.MouseButton) {
	if d, ok := p.Subject().(Dragger); ok {
		d.Drag(ctx.Child(p.Subject(), p.SubjectBounds(ctx.Bounds)), btn)
	}
}

// Key forwards keyboard input to the content.
func (p *Port) Key(ctx *Context, k types.KeyInfo) bool {
	if h, ok := p.Subject().(KeyHandler); ok {
		return h.Key(ctx.Child(p.Subject(), p.SubjectBounds(ctx.Bounds)), k)
	}
	return false
}
