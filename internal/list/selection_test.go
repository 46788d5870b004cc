package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dragd/pkg/testutils"
	"dragd/pkg/types"
)

func TestSelectionClick(t *testing.T) {
	t.Run("plain click selects one item", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c")

		s.Click(1, 0)
		assert.Equal(t, []int{1}, s.Selection.Selection())
		assert.Equal(t, 1, s.Selection.SelectEnd())

		s.Click(2, 0)
		assert.Equal(t, []int{2}, s.Selection.Selection())
	})

	t.Run("shift click extends from the anchor", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c", "d", "e")

		s.Click(1, 0)
		s.Click(3, types.ModShift)
		assert.Equal(t, []int{1, 2, 3}, s.Selection.Selection())
		assert.Equal(t, 3, s.Selection.SelectEnd())

		// extending the other way keeps the anchor
		s.Click(0, types.ModShift)
		assert.Equal(t, []int{0, 1}, s.Selection.Selection())
		assert.Equal(t, 0, s.Selection.SelectEnd())
	})

	t.Run("shift click with no anchor selects one", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c")

		s.Click(2, types.ModShift)
		assert.Equal(t, []int{2}, s.Selection.Selection())
	})

	t.Run("action click toggles membership", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c", "d")

		s.Click(0, 0)
		s.Click(2, types.ModAction)
		assert.Equal(t, []int{0, 2}, s.Selection.Selection())
		assert.Equal(t, 2, s.Selection.SelectEnd())

		s.Click(2, types.ModAction)
		assert.Equal(t, []int{0}, s.Selection.Selection())
	})

	t.Run("plain click on empty space clears", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c")
		s.Click(1, 0)
		require.NotEmpty(t, s.Selection.Selection())

		p := types.Pt(50, 80)
		s.Press(p, 0)
		s.Release(p, 0)
		assert.Empty(t, s.Selection.Selection())
		assert.Equal(t, -1, s.Selection.SelectEnd())
	})

	t.Run("shift click on empty space keeps the selection", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c")
		s.Click(1, 0)

		p := types.Pt(50, 80)
		s.Press(p, types.ModShift)
		s.Release(p, types.ModShift)
		assert.Equal(t, []int{1}, s.Selection.Selection())
	})
}

func TestSelectionDeferredCollapse(t *testing.T) {
	t.Run("press on a selected item keeps the range until release", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c", "d")
		s.Click(1, 0)
		s.Click(3, types.ModShift)
		require.Equal(t, []int{1, 2, 3}, s.Selection.Selection())

		// the multi-selection must survive the press so a drag can pick it up
		s.Press(s.ItemCenter(2), 0)
		assert.Equal(t, []int{1, 2, 3}, s.Selection.Selection())

		// an undragged release collapses to the pressed item
		s.Release(s.ItemCenter(2), 0)
		assert.Equal(t, []int{2}, s.Selection.Selection())
	})

	t.Run("a committed drag skips the collapse", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c", "d", "e")
		s.Click(1, 0)
		s.Click(2, types.ModShift)
		require.Equal(t, []int{1, 2}, s.Selection.Selection())

		s.DragTo(1, types.Pt(50, 48))

		// the moved block stays selected as a whole
		assert.Equal(t, []string{"a", "d", "e", "b", "c"}, s.Titles())
		assert.Equal(t, []int{3, 4}, s.Selection.Selection())
	})
}

func TestSelectionKeys(t *testing.T) {
	t.Run("down with no selection starts at the top", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c")

		assert.True(t, s.Key(types.KeyDown, 0))
		assert.Equal(t, []int{0}, s.Selection.Selection())
	})

	t.Run("up with no selection starts at the bottom", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c")

		assert.True(t, s.Key(types.KeyUp, 0))
		assert.Equal(t, []int{2}, s.Selection.Selection())
	})

	t.Run("arrows move the selection end", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c")
		s.Click(1, 0)

		s.Key(types.KeyDown, 0)
		assert.Equal(t, []int{2}, s.Selection.Selection())

		// clamped at the bottom
		s.Key(types.KeyDown, 0)
		assert.Equal(t, []int{2}, s.Selection.Selection())

		s.Key(types.KeyUp, 0)
		assert.Equal(t, []int{1}, s.Selection.Selection())
	})

	t.Run("shift arrows extend the range", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c", "d")
		s.Click(1, 0)

		s.Key(types.KeyDown, types.ModShift)
		assert.Equal(t, []int{1, 2}, s.Selection.Selection())
		assert.Equal(t, 2, s.Selection.SelectEnd())

		s.Key(types.KeyDown, types.ModShift)
		assert.Equal(t, []int{1, 2, 3}, s.Selection.Selection())

		s.Key(types.KeyUp, types.ModShift)
		assert.Equal(t, []int{1, 2}, s.Selection.Selection())
	})

	t.Run("empty list consumes nothing", func(t *testing.T) {
		s := testutils.NewScene(t)

		assert.False(t, s.Key(types.KeyDown, 0))
	})

	t.Run("key releases are ignored", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c")
		s.Click(1, 0)

		up := types.KeyInfo{Code: types.KeyDown, Action: types.KeyRelease}
		assert.False(t, s.View.Key(up))
		assert.Equal(t, []int{1}, s.Selection.Selection())
	})
}

func TestSelectionModel(t *testing.T) {
	t.Run("select all anchors at the first item", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c")

		s.Selection.SelectAll()
		assert.Equal(t, []int{0, 1, 2}, s.Selection.Selection())
		assert.Equal(t, 2, s.Selection.SelectEnd())
	})

	t.Run("select none clears flags and anchor", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c")
		s.Selection.SelectAll()

		s.Selection.SelectNone()
		assert.Empty(t, s.Selection.Selection())
		assert.Equal(t, -1, s.Selection.SelectEnd())
		assert.False(t, s.Draggable(0).Selected())
	})

	t.Run("update selection clamps its range", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c")

		s.Selection.UpdateSelection(-5, 99)
		assert.Equal(t, []int{0, 1, 2}, s.Selection.Selection())
		assert.Equal(t, 2, s.Selection.SelectEnd())
	})

	t.Run("update selection works inverted", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c", "d")

		s.Selection.UpdateSelection(2, 0)
		assert.Equal(t, []int{0, 1, 2}, s.Selection.Selection())
		assert.Equal(t, 0, s.Selection.SelectEnd())
	})

	t.Run("empty collection", func(t *testing.T) {
		s := testutils.NewScene(t)

		s.Selection.SelectAll()
		assert.Empty(t, s.Selection.Selection())
		s.Selection.UpdateSelection(0, 0)
		assert.Equal(t, -1, s.Selection.SelectEnd())
	})

	t.Run("flags live on the items", func(t *testing.T) {
		s := testutils.NewScene(t, "a", "b", "c")

		s.Selection.UpdateSelection(1, 2)
		assert.False(t, s.Draggable(0).Selected())
		assert.True(t, s.Draggable(1).Selected())
		assert.True(t, s.Draggable(2).Selected())
	})
}
