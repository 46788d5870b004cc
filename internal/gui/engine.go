//go:build !nogui
// +build !nogui

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"dragd/internal/demo"
	"dragd/pkg/types"
)

const (
	textSize     = 14
	itemHeightPx = 28
	minWidthPx   = 280
	minHeightPx  = 360
)

// engineWidget hosts the interaction engine inside a fyne widget: pointer
// and key events feed the engine's view, and each refresh re-renders the
// view's draw calls as canvas objects.
type engineWidget struct {
	widget.BaseWidget
	scene *demo.Scene
	mods  func() types.Modifiers
}

func newEngineWidget(scene *demo.Scene, mods func() types.Modifiers) *engineWidget {
	w := &engineWidget{scene: scene, mods: mods}
	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer implements fyne.Widget.
func (w *engineWidget) CreateRenderer() fyne.WidgetRenderer {
	return &engineRenderer{w: w}
}

func (w *engineWidget) modifiers() types.Modifiers {
	if w.mods == nil {
		return 0
	}
	return w.mods()
}

func enginePoint(p fyne.Position) types.Point {
	return types.Pt(p.X, p.Y)
}

func engineButton(b desktop.MouseButton) types.ButtonID {
	switch b {
	case desktop.MouseButtonSecondary:
		return types.ButtonRight
	case desktop.MouseButtonTertiary:
		return types.ButtonMiddle
	default:
		return types.ButtonLeft
	}
}

// MouseDown implements desktop.Mouseable.
func (w *engineWidget) MouseDown(ev *desktop.MouseEvent) {
	w.scene.View.Press(enginePoint(ev.Position), engineButton(ev.Button), w.modifiers())
}

// MouseUp implements desktop.Mouseable.
func (w *engineWidget) MouseUp(ev *desktop.MouseEvent) {
	w.scene.View.Release(enginePoint(ev.Position), engineButton(ev.Button), w.modifiers())
}

// MouseIn implements desktop.Hoverable.
func (w *engineWidget) MouseIn(ev *desktop.MouseEvent) {
	w.scene.View.Move(enginePoint(ev.Position), engineButton(ev.Button), w.modifiers())
}

// MouseMoved implements desktop.Hoverable.
func (w *engineWidget) MouseMoved(ev *desktop.MouseEvent) {
	w.scene.View.Move(enginePoint(ev.Position), engineButton(ev.Button), w.modifiers())
}

// MouseOut implements desktop.Hoverable.
func (w *engineWidget) MouseOut() {}

// Dragged implements fyne.Draggable. The desktop driver routes motion here
// while a button is held, which is exactly when the engine tracks it.
func (w *engineWidget) Dragged(ev *fyne.DragEvent) {
	w.scene.View.Move(enginePoint(ev.Position), types.ButtonLeft, w.modifiers())
}

// DragEnd implements fyne.Draggable. The release itself arrives via
// MouseUp.
func (w *engineWidget) DragEnd() {}

// Scrolled implements fyne.Scrollable.
func (w *engineWidget) Scrolled(ev *fyne.ScrollEvent) {
	w.scene.Scroll(-ev.Scrolled.DY)
}

type engineRenderer struct {
	w       *engineWidget
	objects []fyne.CanvasObject
}

func (r *engineRenderer) Layout(size fyne.Size) {
	r.w.scene.View.SetBounds(types.RectXYWH(0, 0, size.Width, size.Height))
	r.rebuild()
}

func (r *engineRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minWidthPx, minHeightPx)
}

func (r *engineRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *engineRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.w)
}

func (r *engineRenderer) Destroy() {}

func (r *engineRenderer) rebuild() {
	cv := newSceneCanvas(r.w.scene.View.Bounds())
	r.w.scene.View.Draw(cv)
	r.objects = cv.objects
}
