//go:build !nogui
// +build !nogui

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"dragd/pkg/types"
)

// sceneCanvas collects one frame of engine draw calls as fyne canvas
// objects. Fyne has no arbitrary clip regions, so clipping is applied
// geometrically: rectangles are intersected with the clip, text outside it
// is dropped.
type sceneCanvas struct {
	objects []fyne.CanvasObject
	clips   []types.Rect
	bounds  types.Rect
}

func newSceneCanvas(bounds types.Rect) *sceneCanvas {
	return &sceneCanvas{bounds: bounds}
}

func (c *sceneCanvas) clip() types.Rect {
	r := c.bounds
	for _, cl := range c.clips {
		r = r.Intersect(cl)
	}
	return r
}

func toNRGBA(c types.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func place(obj fyne.CanvasObject, r types.Rect) {
	obj.Move(fyne.NewPos(r.Left, r.Top))
	obj.Resize(fyne.NewSize(r.Width(), r.Height()))
}

// FillRect adds a solid rectangle.
func (c *sceneCanvas) FillRect(r types.Rect, col types.Color) {
	c.FillRoundRect(r, col, 0)
}

// FillRoundRect adds a solid rectangle with rounded corners.
func (c *sceneCanvas) FillRoundRect(r types.Rect, col types.Color, radius float32) {
	r = r.Intersect(c.clip())
	if r.Empty() {
		return
	}
	rect := canvas.NewRectangle(toNRGBA(col))
	rect.CornerRadius = radius
	place(rect, r)
	c.objects = append(c.objects, rect)
}

// StrokeRect adds a rectangle outline.
func (c *sceneCanvas) StrokeRect(r types.Rect, col types.Color, width float32) {
	r = r.Intersect(c.clip())
	if r.Empty() {
		return
	}
	rect := canvas.NewRectangle(color.Transparent)
	rect.StrokeColor = toNRGBA(col)
	rect.StrokeWidth = width
	place(rect, r)
	c.objects = append(c.objects, rect)
}

// Line adds a line segment, clipped on the axis it runs along.
func (c *sceneCanvas) Line(a, b types.Point, col types.Color, width float32) {
	cl := c.clip()
	if a.Y == b.Y {
		if a.Y < cl.Top || a.Y > cl.Bottom {
			return
		}
		a.X = clampf(a.X, cl.Left, cl.Right)
		b.X = clampf(b.X, cl.Left, cl.Right)
	} else if a.X == b.X {
		if a.X < cl.Left || a.X > cl.Right {
			return
		}
		a.Y = clampf(a.Y, cl.Top, cl.Bottom)
		b.Y = clampf(b.Y, cl.Top, cl.Bottom)
	}
	line := canvas.NewLine(toNRGBA(col))
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(a.X, a.Y)
	line.Position2 = fyne.NewPos(b.X, b.Y)
	c.objects = append(c.objects, line)
}

// Text adds a string anchored at pos's left edge, vertically centered.
func (c *sceneCanvas) Text(pos types.Point, s string, col types.Color) {
	if !c.clip().Contains(pos) {
		return
	}
	t := canvas.NewText(s, toNRGBA(col))
	t.TextSize = textSize
	min := t.MinSize()
	t.Move(fyne.NewPos(pos.X, pos.Y-min.Height/2))
	c.objects = append(c.objects, t)
}

// PushClip intersects the clip region with r.
func (c *sceneCanvas) PushClip(r types.Rect) {
	c.clips = append(c.clips, r)
}

// PopClip restores the clip region active before the matching PushClip.
func (c *sceneCanvas) PopClip() {
	if len(c.clips) > 0 {
		c.clips = c.clips[:len(c.clips)-1]
	}
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
