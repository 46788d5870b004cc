package element

import (
	"dragd/pkg/types"
)

// Proxy is the embeddable base for single-subject wrappers. It forwards
// drawing and input to its subject through a fresh child frame; wrappers
// override the methods they intercept and fall through to the embedded
// forwarding for the rest.
type Proxy struct {
	subject Element
}

// NewProxy returns a proxy wrapping subject.
func NewProxy(subject Element) Proxy {
	return Proxy{subject: subject}
}

// Subject returns the wrapped element.
func (p *Proxy) Subject() Element {
	return p.subject
}

// SetSubject replaces the wrapped element.
func (p *Proxy) SetSubject(e Element) {
	p.subject = e
}

// Draw forwards to the subject with the proxy's own bounds.
func (p *Proxy) Draw(ctx *Context) {
	if p.subject != nil {
		p.subject.Draw(ctx.Child(p.subject, ctx.Bounds))
	}
}

// Click forwards to the subject when it is clickable.
func (p *Proxy) Click(ctx *Context, btn types.MouseButton) bool {
	if c, ok := p.subject.(Clickable); ok {
		return c.Click(ctx.Child(p.subject, ctx.Bounds), btn)
	}
	return false
}

// Drag forwards to the subject when it accepts drags.
func (p *Proxy) Drag(ctx *Context, btn types.MouseButton) {
	if d, ok := p.subject.(Dragger); ok {
		d.Drag(ctx.Child(p.subject, ctx.Bounds), btn)
	}
}

// Key forwards to the subject when it handles keys.
func (p *Proxy) Key(ctx *Context, k types.KeyInfo) bool {
	if h, ok := p.subject.(KeyHandler); ok {
		return h.Key(ctx.Child(p.subject, ctx.Bounds), k)
	}
	return false
}
