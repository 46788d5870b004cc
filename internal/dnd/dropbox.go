package dnd

import (
	"dragd/internal/element"
	"dragd/internal/log"
	"dragd/pkg/types"
)

// DropBox is the simplest drop target: it accepts or rejects a dropped
// payload as an opaque unit and strokes a full-bounds highlight while a
// compatible payload hovers it. OnDrop decides acceptance.
type DropBox struct {
	DropBase
	OnDrop func(info types.DropInfo) bool
}

// NewDropBox returns a drop box wrapping subject, interested in the given
// payload-name patterns.
func NewDropBox(subject element.Element, names ...string) (*DropBox, error) {
	base, err := NewDropBase(subject, names...)
	if err != nil {
		return nil, err
	}
	b := &DropBox{DropBase: *base}
	b.Prepare()
	return b, nil
}

// Draw renders the wrapped content, then the hover indicator on top.
func (b *DropBox) Draw(ctx *element.Context) {
	b.Proxy.Draw(ctx)
	if b.IsTracking() {
		ctx.Canvas.StrokeRect(ctx.Bounds, ctx.Theme.IndicatorHilite, ctx.Theme.StrokeWidth)
	}
}

// Drop resets tracking, hands the payload to OnDrop, and requests a redraw
// whether or not the payload was accepted.
func (b *DropBox) Drop(ctx *element.Context, info types.DropInfo) bool {
	b.DropBase.Drop(ctx, info)
	accepted := false
	if b.OnDrop != nil {
		accepted = b.OnDrop(info)
	}
	ctx.View.Refresh()
	log.Debugf("drop box: drop with %d item(s), accepted=%v", len(info.Data), accepted)
	return accepted
}
