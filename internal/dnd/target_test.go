package dnd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dragd/internal/dnd"
	"dragd/internal/element"
	"dragd/internal/errors"
	"dragd/internal/view"
	"dragd/pkg/testutils"
	"dragd/pkg/types"
)

// baseContext frames a bare drop target for direct protocol calls.
func baseContext(target element.Element) (*element.Context, *testutils.Host) {
	host := &testutils.Host{}
	v := view.New(host, target)
	bounds := types.RectXYWH(0, 0, 100, 100)
	v.SetBounds(bounds)
	return element.NewContext(v, nil, v.Theme(), bounds, target), host
}

func textDrop(where types.Point) types.DropInfo {
	return types.DropInfo{
		Data:  types.Payload{"text/plain": []byte("hello")},
		Where: where,
	}
}

func TestNewDropBase(t *testing.T) {
	t.Run("rejects an uncompilable pattern", func(t *testing.T) {
		_, err := dnd.NewDropBase(element.NewLabel("x"), "text/[")
		require.Error(t, err)
		assert.True(t, errors.IsInvalidPattern(err))
	})

	t.Run("accepts glob patterns", func(t *testing.T) {
		b, err := dnd.NewDropBase(element.NewLabel("x"), "text/*", "image/png")
		require.NoError(t, err)
		assert.Equal(t, []string{"text/*", "image/png"}, b.Names())
	})
}

func TestDropBaseNames(t *testing.T) {
	b, err := dnd.NewDropBase(element.NewLabel("x"), "text/*")
	require.NoError(t, err)

	t.Run("token joins the interest set only after prepare", func(t *testing.T) {
		assert.NotContains(t, b.Names(), b.Token())

		b.Prepare()
		assert.Contains(t, b.Names(), b.Token())
		assert.Contains(t, b.Names(), "text/*")
	})

	t.Run("register replaces the interest set", func(t *testing.T) {
		require.NoError(t, b.Register("image/*"))
		assert.Contains(t, b.Names(), "image/*")
		assert.NotContains(t, b.Names(), "text/*")
		// the identity token survives re-registration
		assert.Contains(t, b.Names(), b.Token())
	})

	t.Run("register keeps the old set on error", func(t *testing.T) {
		require.Error(t, b.Register("bad["))
		assert.Contains(t, b.Names(), "image/*")
	})
}

func TestDropBaseWantsDrop(t *testing.T) {
	b, err := dnd.NewDropBase(element.NewLabel("x"), "text/*")
	require.NoError(t, err)
	b.Prepare()

	tests := []struct {
		name    string
		payload types.Payload
		want    bool
	}{
		{"matching name", types.Payload{"text/plain": nil}, true},
		{"glob match", types.Payload{"text/uri-list": nil}, true},
		{"own token", types.Payload{b.Token(): nil}, true},
		{"foreign token", types.Payload{dnd.NewToken(): nil}, false},
		{"no match", types.Payload{"image/png": nil}, false},
		{"one match among several", types.Payload{"image/png": nil, "text/plain": nil}, true},
		{"empty payload", types.Payload{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.WantsDrop(types.DropInfo{Data: tt.payload})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDropBaseTrackDrop(t *testing.T) {
	t.Run("entering starts tracking and redraws once", func(t *testing.T) {
		b, err := dnd.NewDropBase(element.NewLabel("x"), "text/*")
		require.NoError(t, err)
		ctx, host := baseContext(b)
		info := textDrop(types.Pt(10, 10))

		b.TrackDrop(ctx, info, types.Entering)
		assert.True(t, b.IsTracking())
		assert.Equal(t, 1, host.Refreshes)

		// repeated edges with an unchanged flag stay silent
		b.TrackDrop(ctx, info, types.Hovering)
		b.TrackDrop(ctx, info, types.Hovering)
		assert.True(t, b.IsTracking())
		assert.Equal(t, 1, host.Refreshes)
	})

	t.Run("leaving stops tracking", func(t *testing.T) {
		b, err := dnd.NewDropBase(element.NewLabel("x"), "text/*")
		require.NoError(t, err)
		ctx, host := baseContext(b)
		info := textDrop(types.Pt(10, 10))

		b.TrackDrop(ctx, info, types.Entering)
		b.TrackDrop(ctx, info, types.Leaving)
		assert.False(t, b.IsTracking())
		assert.Equal(t, 2, host.Refreshes)

		b.TrackDrop(ctx, info, types.Leaving)
		assert.Equal(t, 2, host.Refreshes)
	})

	t.Run("incompatible payload never starts tracking", func(t *testing.T) {
		b, err := dnd.NewDropBase(element.NewLabel("x"), "text/*")
		require.NoError(t, err)
		ctx, host := baseContext(b)
		info := types.DropInfo{Data: types.Payload{"image/png": nil}}

		b.TrackDrop(ctx, info, types.Entering)
		b.TrackDrop(ctx, info, types.Hovering)
		assert.False(t, b.IsTracking())
		assert.Equal(t, 0, host.Refreshes)
	})
}

func TestDropBaseDrop(t *testing.T) {
	b, err := dnd.NewDropBase(element.NewLabel("x"), "text/*")
	require.NoError(t, err)
	ctx, _ := baseContext(b)
	info := textDrop(types.Pt(10, 10))

	b.TrackDrop(ctx, info, types.Entering)
	require.True(t, b.IsTracking())

	// the base rejects every payload but still resets tracking
	assert.False(t, b.Drop(ctx, info))
	assert.False(t, b.IsTracking())
}

func TestDropBoxHighlight(t *testing.T) {
	box, err := dnd.NewDropBox(element.NewLabel("drop here"), "text/*")
	require.NoError(t, err)
	host := &testutils.Host{}
	v := view.New(host, box)
	bounds := types.RectXYWH(0, 0, 100, 40)
	v.SetBounds(bounds)
	cv := &testutils.Canvas{}

	t.Run("idle box draws no indicator", func(t *testing.T) {
		cv.Reset()
		v.Draw(cv)
		assert.Empty(t, cv.Strokes)
		require.Len(t, cv.Texts, 1)
		assert.Equal(t, "drop here", cv.Texts[0].Text)
	})

	t.Run("hovered box strokes its bounds", func(t *testing.T) {
		v.TrackDrop(textDrop(types.Pt(50, 20)), types.Hovering)
		require.True(t, box.IsTracking())

		cv.Reset()
		v.Draw(cv)
		require.Len(t, cv.Strokes, 1)
		assert.Equal(t, bounds, cv.Strokes[0].R)
		assert.Equal(t, v.Theme().IndicatorHilite, cv.Strokes[0].Color)
		assert.Equal(t, v.Theme().StrokeWidth, cv.Strokes[0].Width)
	})
}

func TestDropBoxDrop(t *testing.T) {
	newBox := func(t *testing.T, accept bool) (*dnd.DropBox, *view.View, *[]types.DropInfo) {
		t.Helper()
		box, err := dnd.NewDropBox(element.NewLabel("drop here"), "text/*")
		require.NoError(t, err)
		var got []types.DropInfo
		box.OnDrop = func(info types.DropInfo) bool {
			got = append(got, info)
			return accept
		}
		v := view.New(&testutils.Host{}, box)
		v.SetBounds(types.RectXYWH(0, 0, 100, 40))
		return box, v, &got
	}

	t.Run("accepted drop", func(t *testing.T) {
		box, v, got := newBox(t, true)
		info := textDrop(types.Pt(50, 20))
		v.TrackDrop(info, types.Hovering)

		assert.True(t, v.Drop(info))
		require.Len(t, *got, 1)
		assert.Equal(t, info.Data, (*got)[0].Data)
		assert.False(t, box.IsTracking())
	})

	t.Run("rejected drop still resets tracking", func(t *testing.T) {
		box, v, got := newBox(t, false)
		info := textDrop(types.Pt(50, 20))
		v.TrackDrop(info, types.Hovering)

		assert.False(t, v.Drop(info))
		assert.Len(t, *got, 1)
		assert.False(t, box.IsTracking())
	})

	t.Run("drop without a handler is rejected", func(t *testing.T) {
		box, err := dnd.NewDropBox(element.NewLabel("drop here"), "text/*")
		require.NoError(t, err)
		v := view.New(&testutils.Host{}, box)
		v.SetBounds(types.RectXYWH(0, 0, 100, 40))
		info := textDrop(types.Pt(50, 20))
		v.TrackDrop(info, types.Hovering)

		assert.False(t, v.Drop(info))
		assert.False(t, box.IsTracking())
	})
}
