package types

import "fmt"

// Point is a position in element coordinates.
type Point struct {
	X float32
	Y float32
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from d to p.
func (p Point) Sub(d Point) Point {
	return Point{X: p.X - d.X, Y: p.Y - d.Y}
}

// String returns a human-readable representation.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle in element coordinates.
// Right and Bottom are exclusive edges: a point on them is outside.
type Rect struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// NewRect builds a Rect from its four edges.
func NewRect(left, top, right, bottom float32) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectXYWH builds a Rect from an origin and a size.
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Move returns the rectangle shifted by (dx, dy).
func (r Rect) Move(dx, dy float32) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// MoveTo returns the rectangle relocated so its top-left corner is at (x, y).
func (r Rect) MoveTo(x, y float32) Rect {
	return r.Move(x-r.Left, y-r.Top)
}

// Inset returns the rectangle shrunk by dx horizontally and dy vertically on
// each side. Negative values grow the rectangle.
func (r Rect) Inset(dx, dy float32) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right - dx, Bottom: r.Bottom - dy}
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}

// Intersect returns the overlap of r and o. The result is Empty when the
// rectangles do not intersect.
func (r Rect) Intersect(o Rect) Rect {
	if o.Left > r.Left {
		r.Left = o.Left
	}
	if o.Top > r.Top {
		r.Top = o.Top
	}
	if o.Right < r.Right {
		r.Right = o.Right
	}
	if o.Bottom < r.Bottom {
		r.Bottom = o.Bottom
	}
	return r
}

// String returns a human-readable representation.
func (r Rect) String() string {
	return fmt.Sprintf("[%g %g %g %g]", r.Left, r.Top, r.Right, r.Bottom)
}
