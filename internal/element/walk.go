package element

import (
	"dragd/pkg/types"
)

// DropTargetAt returns the deepest enabled drop target under info.Where that
// wants the payload, together with its frame. Children are visited topmost
// first, so overlapping siblings resolve to the one drawn last. Returns
// nil, nil when nothing under the cursor accepts the payload.
func DropTargetAt(ctx *Context, info types.DropInfo) (DropTarget, *Context) {
	if ctx.Elem == nil || !ctx.Bounds.Contains(info.Where) || !Enabled(ctx.Elem) {
		return nil, nil
	}
	switch e := ctx.Elem.(type) {
	case Composite:
		for i := e.Size() - 1; i >= 0; i-- {
			child := ctx.Child(e.At(i), e.ChildBounds(ctx.Bounds, i))
			if dt, dctx := DropTargetAt(child, info); dt != nil {
				return dt, dctx
			}
		}
	case Subjecter:
		if s := e.Subject(); s != nil {
			b := ctx.Bounds
			if sb, ok := e.(SubjectBoundser); ok {
				b = sb.SubjectBounds(b)
			}
			if dt, dctx := DropTargetAt(ctx.Child(s, b), info); dt != nil {
				return dt, dctx
			}
		}
	}
	if dt, ok := ctx.Elem.(DropTarget); ok && dt.WantsDrop(info) {
		return dt, ctx
	}
	return nil, nil
}
