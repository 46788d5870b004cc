package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dragd/internal/dnd"
	"dragd/internal/element"
	"dragd/internal/list"
	"dragd/pkg/types"
)

// pile stacks two children on the same bounds, second on top.
type pile struct {
	children [2]element.Element
}

func (p *pile) Draw(ctx *element.Context) {}

func (p *pile) Size() int { return 2 }

func (p *pile) At(i int) element.Element { return p.children[i] }

func (p *pile) ChildBounds(bounds types.Rect, i int) types.Rect { return bounds }

func rootAt(e element.Element, bounds types.Rect) *element.Context {
	return element.NewContext(nil, nil, element.DefaultTheme(), bounds, e)
}

func textInfo(where types.Point) types.DropInfo {
	return types.DropInfo{
		Data:  types.Payload{"text/plain": []byte("x")},
		Where: where,
	}
}

func mustBox(t *testing.T, name string) *dnd.DropBox {
	t.Helper()
	box, err := dnd.NewDropBox(element.NewLabel(name), name)
	require.NoError(t, err)
	return box
}

func TestDropTargetAt(t *testing.T) {
	bounds := types.RectXYWH(0, 0, 100, 100)

	t.Run("resolves the target under the point", func(t *testing.T) {
		top := mustBox(t, "text/*")
		bottom := mustBox(t, "image/*")
		l := list.New(50, top, bottom)
		ctx := rootAt(l, bounds)

		dt, dctx := element.DropTargetAt(ctx, textInfo(types.Pt(50, 25)))
		require.NotNil(t, dt)
		assert.Same(t, top, dt)
		assert.Equal(t, types.NewRect(0, 0, 100, 50), dctx.Bounds)
	})

	t.Run("an unwilling target does not match", func(t *testing.T) {
		top := mustBox(t, "text/*")
		bottom := mustBox(t, "image/*")
		l := list.New(50, top, bottom)
		ctx := rootAt(l, bounds)

		dt, _ := element.DropTargetAt(ctx, textInfo(types.Pt(50, 75)))
		assert.Nil(t, dt)
	})

	t.Run("a point outside the bounds misses", func(t *testing.T) {
		box := mustBox(t, "text/*")
		ctx := rootAt(box, bounds)

		dt, _ := element.DropTargetAt(ctx, textInfo(types.Pt(50, 150)))
		assert.Nil(t, dt)
	})

	t.Run("overlapping siblings resolve topmost first", func(t *testing.T) {
		under := mustBox(t, "text/*")
		over := mustBox(t, "text/*")
		ctx := rootAt(&pile{children: [2]element.Element{under, over}}, bounds)

		dt, _ := element.DropTargetAt(ctx, textInfo(types.Pt(50, 50)))
		assert.Same(t, over, dt)
	})

	t.Run("a disabled wrapper hides its subtree", func(t *testing.T) {
		box := mustBox(t, "text/*")
		gate := dnd.NewDraggable(box)
		ctx := rootAt(gate, bounds)

		require.NotNil(t, firstTarget(ctx))

		gate.Enable(false)
		assert.Nil(t, firstTarget(ctx))
	})

	t.Run("descends through a scrolled viewport", func(t *testing.T) {
		boxes := make([]element.Element, 4)
		for i := range boxes {
			boxes[i] = mustBox(t, "text/*")
		}
		l := list.New(50, boxes...)
		port := element.NewPort(l)
		ctx := rootAt(port, bounds)
		port.ScrollBy(ctx, 50)

		dt, dctx := element.DropTargetAt(ctx, textInfo(types.Pt(50, 25)))
		require.NotNil(t, dt)
		// the window starts 50 units into the content, so the point lands
		// on the second box
		assert.Same(t, boxes[1], dt)
		assert.Equal(t, types.NewRect(0, 0, 100, 50), dctx.Bounds)
	})
}

func firstTarget(ctx *element.Context) element.DropTarget {
	dt, _ := element.DropTargetAt(ctx, textInfo(types.Pt(50, 50)))
	return dt
}
