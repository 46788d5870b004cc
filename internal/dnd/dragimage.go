package dnd

import (
	"dragd/internal/element"
	"dragd/pkg/types"
)

const (
	// maxDragLayers caps the stack depth of the floating visual.
	maxDragLayers = 20

	// dragLayerOffset is the diagonal displacement between stack layers.
	dragLayerOffset float32 = 10

	// dragImageOpacity is the topmost layer's opacity; each layer behind
	// fades by the same factor.
	dragImageOpacity float32 = 0.6

	// dragImageRadius rounds the stack cards.
	dragImageRadius float32 = 4

	// dragImagePadX and dragImagePadY grow the card around the content.
	dragImagePadX float32 = 8
	dragImagePadY float32 = 2
)

// DragImage is the floating stack visual a drag session carries: one card
// per dragged item up to a cap, each offset diagonally behind the last with
// decaying opacity, the front card showing the picked item's content. The
// content element is shared with the tree, not copied; it is simply drawn a
// second time in the overlay.
type DragImage struct {
	content element.Element
	layers  int
}

// NewDragImage builds the stack visual for count dragged items, anchored at
// the picked element's bounds, and returns it wrapped in a floating layer
// sized to fit the whole stack.
func NewDragImage(content element.Element, anchor types.Rect, count int) *element.Floating {
	if count > maxDragLayers {
		count = maxDragLayers
	}
	if count < 1 {
		count = 1
	}
	img := &DragImage{content: content, layers: count}
	b := anchor.Inset(-dragImagePadX, -dragImagePadY)
	b.Right += float32(count-1) * dragLayerOffset
	b.Bottom += float32(count-1) * dragLayerOffset
	return element.NewFloating(b, img)
}

// Layers returns the stack depth.
func (g *DragImage) Layers() int {
	return g.layers
}

// Draw renders the stack back to front: the farthest, faintest cards first,
// then the front card with the content inside it.
func (g *DragImage) Draw(ctx *element.Context) {
	base := ctx.Bounds
	base.Right -= float32(g.layers-1) * dragLayerOffset
	base.Bottom -= float32(g.layers-1) * dragLayerOffset

	fades := make([]float32, g.layers)
	fade := dragImageOpacity
	for i := range fades {
		fades[i] = fade
		fade *= dragImageOpacity
	}
	for i := g.layers - 1; i >= 1; i-- {
		off := float32(i) * dragLayerOffset
		card := base.Move(off, off)
		ctx.Canvas.FillRoundRect(card, ctx.Theme.Indicator.Opacity(fades[i]), dragImageRadius)
	}
	ctx.Canvas.FillRoundRect(base, ctx.Theme.Indicator.Opacity(fades[0]), dragImageRadius)
	if g.content != nil {
		inner := base.Inset(dragImagePadX, dragImagePadY)
		g.content.Draw(ctx.Child(g.content, inner))
	}
}
