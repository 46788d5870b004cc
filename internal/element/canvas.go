package element

import (
	"dragd/pkg/types"
)

// Canvas is the small drawing surface the engine needs. Front ends supply a
// concrete canvas per frame: the terminal renderer rasterizes into a cell
// grid, the GUI renderer maps calls onto toolkit primitives, and tests use a
// recorder that captures the call stream.
type Canvas interface {
	// FillRect fills r with c.
	FillRect(r types.Rect, c types.Color)
	// FillRoundRect fills r with c, rounding corners by radius.
	FillRoundRect(r types.Rect, c types.Color, radius float32)
	// StrokeRect outlines r with c at the given stroke width.
	StrokeRect(r types.Rect, c types.Color, width float32)
	// Line draws a straight segment from a to b.
	Line(a, b types.Point, c types.Color, width float32)
	// Text draws s anchored at the left-center point pos.
	Text(pos types.Point, s string, c types.Color)
	// PushClip restricts drawing to the intersection of r with the
	// current clip region; PopClip restores the previous region.
	PushClip(r types.Rect)
	PopClip()
}
