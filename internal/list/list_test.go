package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dragd/internal/element"
	"dragd/internal/list"
	"dragd/internal/log"
	"dragd/pkg/types"
)

func init() {
	// clamp warnings are expected noise here
	log.Quiet()
}

// fakeItem records the input routed to it and claims gestures on demand.
type fakeItem struct {
	name     string
	claim    bool
	presses  int
	releases int
	drags    int
	keys     int
	consume  bool
	bounds   types.Rect
}

func (f *fakeItem) Draw(ctx *element.Context) {}

func (f *fakeItem) Click(ctx *element.Context, btn types.MouseButton) bool {
	if btn.Down {
		f.presses++
	} else {
		f.releases++
	}
	f.bounds = ctx.Bounds
	return f.claim
}

func (f *fakeItem) Drag(ctx *element.Context, btn types.MouseButton) {
	f.drags++
	f.bounds = ctx.Bounds
}

func (f *fakeItem) Key(ctx *element.Context, k types.KeyInfo) bool {
	f.keys++
	return f.consume
}

func namesOf(l *list.List) []string {
	out := make([]string, 0, l.Size())
	for i := 0; i < l.Size(); i++ {
		out = append(out, l.At(i).(*fakeItem).name)
	}
	return out
}

func newList(itemHeight float32, names ...string) *list.List {
	items := make([]element.Element, 0, len(names))
	for _, n := range names {
		items = append(items, &fakeItem{name: n, claim: true})
	}
	return list.New(itemHeight, items...)
}

func listContext(l *list.List, bounds types.Rect) *element.Context {
	return element.NewContext(nil, nil, element.DefaultTheme(), bounds, l)
}

func TestListMove(t *testing.T) {
	tests := []struct {
		name    string
		items   []string
		to      int
		indices []int
		want    []string
	}{
		{"block to the top", []string{"a", "b", "c", "d", "e"}, 0, []int{2, 3}, []string{"c", "d", "a", "b", "e"}},
		{"one item down a slot", []string{"a", "b", "c", "d", "e"}, 3, []int{1}, []string{"a", "c", "b", "d", "e"}},
		{"disjoint picks converge", []string{"a", "b", "c", "d", "e"}, 2, []int{0, 4}, []string{"b", "a", "e", "c", "d"}},
		{"to the end boundary", []string{"a", "b", "c", "d", "e"}, 5, []int{0}, []string{"b", "c", "d", "e", "a"}},
		{"to its own slot", []string{"a", "b", "c"}, 1, []int{1}, []string{"a", "b", "c"}},
		{"negative boundary clamps", []string{"a", "b", "c"}, -3, []int{2}, []string{"c", "a", "b"}},
		{"oversized boundary clamps", []string{"a", "b", "c"}, 99, []int{0}, []string{"b", "c", "a"}},
		{"duplicate indices collapse", []string{"a", "b", "c"}, 0, []int{1, 1}, []string{"b", "a", "c"}},
		{"out-of-range indices drop", []string{"a", "b", "c"}, 0, []int{-2, 1, 7}, []string{"b", "a", "c"}},
		{"unsorted indices keep document order", []string{"a", "b", "c", "d"}, 0, []int{3, 1}, []string{"b", "d", "a", "c"}},
		{"no usable indices", []string{"a", "b", "c"}, 0, []int{9}, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newList(10, tt.items...)
			l.Move(tt.to, tt.indices)
			assert.Equal(t, tt.want, namesOf(l))
		})
	}
}

func TestListErase(t *testing.T) {
	tests := []struct {
		name    string
		items   []string
		indices []int
		want    []string
	}{
		{"middle items", []string{"a", "b", "c", "d", "e"}, []int{1, 3}, []string{"a", "c", "e"}},
		{"everything", []string{"a", "b"}, []int{0, 1}, []string{}},
		{"out-of-range ignored", []string{"a", "b"}, []int{5, 1}, []string{"a"}},
		{"nothing", []string{"a", "b"}, nil, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newList(10, tt.items...)
			l.Erase(tt.indices)
			assert.Equal(t, tt.want, namesOf(l))
		})
	}
}

func TestListInsert(t *testing.T) {
	l := newList(10, "a", "b", "c")

	l.Insert(1, &fakeItem{name: "x"}, &fakeItem{name: "y"})
	assert.Equal(t, []string{"a", "x", "y", "b", "c"}, namesOf(l))

	l.Insert(-5, &fakeItem{name: "front"})
	assert.Equal(t, "front", l.At(0).(*fakeItem).name)

	l.Insert(99, &fakeItem{name: "back"})
	assert.Equal(t, "back", l.At(l.Size()-1).(*fakeItem).name)
}

func TestListSetItems(t *testing.T) {
	l := newList(10, "a", "b")

	l.SetItems(&fakeItem{name: "x"})
	assert.Equal(t, []string{"x"}, namesOf(l))

	l.SetItems()
	assert.Equal(t, 0, l.Size())
}

func TestListGeometry(t *testing.T) {
	l := newList(10, "a", "b", "c")
	bounds := types.RectXYWH(0, 0, 100, 100)

	t.Run("child bounds stack downward", func(t *testing.T) {
		assert.Equal(t, types.NewRect(0, 0, 100, 10), l.ChildBounds(bounds, 0))
		assert.Equal(t, types.NewRect(0, 20, 100, 30), l.ChildBounds(bounds, 2))
	})

	t.Run("content height covers every item", func(t *testing.T) {
		assert.Equal(t, float32(30), l.ContentHeight())
		assert.Equal(t, float32(10), l.ItemHeight())
	})

	t.Run("index at point", func(t *testing.T) {
		assert.Equal(t, 0, l.IndexAt(bounds, types.Pt(50, 5)))
		assert.Equal(t, 2, l.IndexAt(bounds, types.Pt(50, 29)))
		// below the items but inside the bounds
		assert.Equal(t, -1, l.IndexAt(bounds, types.Pt(50, 55)))
		// outside the bounds entirely
		assert.Equal(t, -1, l.IndexAt(bounds, types.Pt(50, 150)))
	})
}

func TestListHitElement(t *testing.T) {
	l := newList(10, "a", "b", "c")
	bounds := types.RectXYWH(0, 0, 100, 100)

	t.Run("exact hit", func(t *testing.T) {
		e, r, i := l.HitElement(bounds, types.Pt(50, 15), true)
		require.NotNil(t, e)
		assert.Equal(t, "b", e.(*fakeItem).name)
		assert.Equal(t, types.NewRect(0, 10, 100, 20), r)
		assert.Equal(t, 1, i)
	})

	t.Run("exact miss", func(t *testing.T) {
		e, _, i := l.HitElement(bounds, types.Pt(50, 55), true)
		assert.Nil(t, e)
		assert.Equal(t, -1, i)
	})

	t.Run("nearest clamps below", func(t *testing.T) {
		e, _, i := l.HitElement(bounds, types.Pt(50, 95), false)
		require.NotNil(t, e)
		assert.Equal(t, "c", e.(*fakeItem).name)
		assert.Equal(t, 2, i)
	})

	t.Run("nearest clamps above", func(t *testing.T) {
		e, _, i := l.HitElement(bounds, types.Pt(50, -30), false)
		require.NotNil(t, e)
		assert.Equal(t, "a", e.(*fakeItem).name)
		assert.Equal(t, 0, i)
	})

	t.Run("empty list misses", func(t *testing.T) {
		empty := list.New(10)
		e, _, i := empty.HitElement(bounds, types.Pt(50, 5), false)
		assert.Nil(t, e)
		assert.Equal(t, -1, i)
	})
}

func TestListClickRouting(t *testing.T) {
	t.Run("press routes to the item under the pointer", func(t *testing.T) {
		l := newList(10, "a", "b", "c")
		ctx := listContext(l, types.RectXYWH(0, 0, 100, 100))

		claimed := l.Click(ctx, types.MouseButton{Down: true, Pos: types.Pt(50, 15)})
		assert.True(t, claimed)
		assert.Equal(t, 1, l.At(1).(*fakeItem).presses)
		assert.Equal(t, 0, l.At(0).(*fakeItem).presses)
	})

	t.Run("press outside every item is unclaimed", func(t *testing.T) {
		l := newList(10, "a", "b", "c")
		ctx := listContext(l, types.RectXYWH(0, 0, 100, 100))

		assert.False(t, l.Click(ctx, types.MouseButton{Down: true, Pos: types.Pt(50, 55)}))
	})

	t.Run("declined press leaves no trackee", func(t *testing.T) {
		l := newList(10, "a")
		l.At(0).(*fakeItem).claim = false
		ctx := listContext(l, types.RectXYWH(0, 0, 100, 100))

		assert.False(t, l.Click(ctx, types.MouseButton{Down: true, Pos: types.Pt(50, 5)}))
		assert.False(t, l.Click(ctx, types.MouseButton{Down: false, Pos: types.Pt(50, 5)}))
		assert.Equal(t, 0, l.At(0).(*fakeItem).releases)
	})

	t.Run("release follows the item through a reorder", func(t *testing.T) {
		l := newList(10, "a", "b", "c")
		ctx := listContext(l, types.RectXYWH(0, 0, 100, 100))
		picked := l.At(0).(*fakeItem)

		require.True(t, l.Click(ctx, types.MouseButton{Down: true, Pos: types.Pt(50, 5)}))
		l.Move(3, []int{0})
		require.Equal(t, []string{"b", "c", "a"}, namesOf(l))

		// release lands on the picked item at its new position
		l.Click(ctx, types.MouseButton{Down: false, Pos: types.Pt(50, 5)})
		assert.Equal(t, 1, picked.releases)
		assert.Equal(t, types.NewRect(0, 20, 100, 30), picked.bounds)
		assert.Equal(t, 0, l.At(0).(*fakeItem).releases)
	})

	t.Run("release after erase goes nowhere", func(t *testing.T) {
		l := newList(10, "a", "b")
		ctx := listContext(l, types.RectXYWH(0, 0, 100, 100))
		picked := l.At(0).(*fakeItem)

		require.True(t, l.Click(ctx, types.MouseButton{Down: true, Pos: types.Pt(50, 5)}))
		l.Erase([]int{0})

		assert.False(t, l.Click(ctx, types.MouseButton{Down: false, Pos: types.Pt(50, 5)}))
		assert.Equal(t, 0, picked.releases)
	})
}

func TestListDragRouting(t *testing.T) {
	l := newList(10, "a", "b", "c")
	ctx := listContext(l, types.RectXYWH(0, 0, 100, 100))
	picked := l.At(1).(*fakeItem)

	t.Run("no trackee, no routing", func(t *testing.T) {
		l.Drag(ctx, types.MouseButton{Down: true, Pos: types.Pt(50, 15)})
		assert.Equal(t, 0, picked.drags)
	})

	t.Run("motion goes to the claimed item wherever it sits", func(t *testing.T) {
		require.True(t, l.Click(ctx, types.MouseButton{Down: true, Pos: types.Pt(50, 15)}))
		l.Move(0, []int{1})

		l.Drag(ctx, types.MouseButton{Down: true, Pos: types.Pt(50, 80)})
		assert.Equal(t, 1, picked.drags)
		assert.Equal(t, types.NewRect(0, 0, 100, 10), picked.bounds)
	})
}

func TestListKeyRouting(t *testing.T) {
	t.Run("first consumer wins in document order", func(t *testing.T) {
		l := newList(10, "a", "b", "c")
		l.At(1).(*fakeItem).consume = true
		ctx := listContext(l, types.RectXYWH(0, 0, 100, 100))

		assert.True(t, l.Key(ctx, types.KeyInfo{Code: types.KeyEnter}))
		assert.Equal(t, 1, l.At(0).(*fakeItem).keys)
		assert.Equal(t, 1, l.At(1).(*fakeItem).keys)
		assert.Equal(t, 0, l.At(2).(*fakeItem).keys)
	})

	t.Run("the gesture trackee is offered the key first", func(t *testing.T) {
		l := newList(10, "a", "b", "c")
		tracked := l.At(2).(*fakeItem)
		tracked.consume = true
		ctx := listContext(l, types.RectXYWH(0, 0, 100, 100))
		require.True(t, l.Click(ctx, types.MouseButton{Down: true, Pos: types.Pt(50, 25)}))

		assert.True(t, l.Key(ctx, types.KeyInfo{Code: types.KeyEscape}))
		assert.Equal(t, 1, tracked.keys)
		assert.Equal(t, 0, l.At(0).(*fakeItem).keys)
	})

	t.Run("no consumer", func(t *testing.T) {
		l := newList(10, "a", "b")
		ctx := listContext(l, types.RectXYWH(0, 0, 100, 100))

		assert.False(t, l.Key(ctx, types.KeyInfo{Code: types.KeyEnter}))
	})
}
