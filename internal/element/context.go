package element

import (
	"dragd/pkg/types"
)

// Context is the frame passed down the tree on every dispatch. It is built
// fresh for each traversal and never cached across events: an element that
// needs its ancestors later re-discovers them through the parent chain of
// the context it is currently handed.
type Context struct {
	View   View
	Canvas Canvas
	Theme  Theme
	Bounds types.Rect
	Parent *Context
	Elem   Element
}

// NewContext returns a root frame for one dispatch over elem.
func NewContext(v View, cv Canvas, th Theme, bounds types.Rect, elem Element) *Context {
	return &Context{View: v, Canvas: cv, Theme: th, Bounds: bounds, Elem: elem}
}

// Child returns the frame for descending into e with the given bounds. The
// theme is copied by value, so a wrapper can dim or recolor its subtree by
// mutating the child frame without touching its own.
func (ctx *Context) Child(e Element, bounds types.Rect) *Context {
	return &Context{
		View:   ctx.View,
		Canvas: ctx.Canvas,
		Theme:  ctx.Theme,
		Bounds: bounds,
		Parent: ctx,
		Elem:   e,
	}
}

// FindParent walks the ancestor chain (excluding ctx itself) and returns the
// first element satisfying pred, with its frame. Returns nil, nil when no
// ancestor matches.
func FindParent(ctx *Context, pred func(Element) bool) (Element, *Context) {
	for c := ctx.Parent; c != nil; c = c.Parent {
		if c.Elem != nil && pred(c.Elem) {
			return c.Elem, c
		}
	}
	return nil, nil
}

// FindScrollable returns the nearest ancestor viewport and its frame, or
// nil, nil.
func FindScrollable(ctx *Context) (Scrollable, *Context) {
	e, ectx := FindParent(ctx, func(e Element) bool {
		_, ok := e.(Scrollable)
		return ok
	})
	if e == nil {
		return nil, nil
	}
	return e.(Scrollable), ectx
}

// ScrollIntoView asks the nearest ancestor viewport to reveal r and reports
// whether anything scrolled. A tree without viewports reports false.
func ScrollIntoView(ctx *Context, r types.Rect) bool {
	if s, sctx := FindScrollable(ctx); s != nil {
		return s.ScrollIntoView(sctx, r)
	}
	return false
}

// FindSubject descends the decorator chain starting at e (inclusive) and
// returns the first element satisfying pred, or nil.
func FindSubject(e Element, pred func(Element) bool) Element {
	for e != nil {
		if pred(e) {
			return e
		}
		s, ok := e.(Subjecter)
		if !ok {
			return nil
		}
		e = s.Subject()
	}
	return nil
}
