package element

import (
	"dragd/pkg/types"
)

// Floating places its subject at explicit view coordinates, independent of
// any layout. The view keeps floating layers in an overlay stack above the
// content tree; the drag image is the canonical user.
type Floating struct {
	Proxy
	bounds types.Rect
}

// NewFloating returns a floating wrapper for subject at bounds.
func NewFloating(bounds types.Rect, subject Element) *Floating {
	return &Floating{Proxy: NewProxy(subject), bounds: bounds}
}

// Bounds returns the current placement in view coordinates.
func (f *Floating) Bounds() types.Rect {
	return f.bounds
}

// SetBounds moves the layer. The caller refreshes the view.
func (f *Floating) SetBounds(r types.Rect) {
	f.bounds = r
}
