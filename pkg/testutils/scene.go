package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dragd/internal/dnd"
	"dragd/internal/element"
	"dragd/internal/list"
	"dragd/internal/view"
	"dragd/pkg/types"
)

// Standard scene geometry. Items are ItemHeight tall, so item i occupies
// the band [i*ItemHeight, (i+1)*ItemHeight) with its center halfway down.
const (
	ItemHeight  float32 = 10
	SceneWidth  float32 = 100
	SceneHeight float32 = 100
)

// Host counts the redraw requests a view issues.
type Host struct {
	Refreshes int
}

// Refresh records one redraw request.
func (h *Host) Refresh() {
	h.Refreshes++
}

// LineOp records one Canvas.Line call.
type LineOp struct {
	A, B  types.Point
	Color types.Color
	Width float32
}

// RectOp records one filled or stroked rectangle.
type RectOp struct {
	R      types.Rect
	Color  types.Color
	Width  float32
	Radius float32
}

// TextOp records one text draw.
type TextOp struct {
	Pos   types.Point
	Text  string
	Color types.Color
}

// Canvas is an element.Canvas that records every call instead of
// rasterizing. It never clips: tests assert on the raw call stream and on
// the pushed clip regions separately.
type Canvas struct {
	Fills   []RectOp
	Strokes []RectOp
	Lines   []LineOp
	Texts   []TextOp
	// Clips lists every region pushed, in push order.
	Clips []types.Rect

	depth int
}

// Reset drops everything recorded so far.
func (c *Canvas) Reset() {
	c.Fills = nil
	c.Strokes = nil
	c.Lines = nil
	c.Texts = nil
	c.Clips = nil
	c.depth = 0
}

// FillRect records a fill.
func (c *Canvas) FillRect(r types.Rect, col types.Color) {
	c.Fills = append(c.Fills, RectOp{R: r, Color: col})
}

// FillRoundRect records a rounded fill.
func (c *Canvas) FillRoundRect(r types.Rect, col types.Color, radius float32) {
	c.Fills = append(c.Fills, RectOp{R: r, Color: col, Radius: radius})
}

// StrokeRect records an outline.
func (c *Canvas) StrokeRect(r types.Rect, col types.Color, width float32) {
	c.Strokes = append(c.Strokes, RectOp{R: r, Color: col, Width: width})
}

// Line records a segment.
func (c *Canvas) Line(a, b types.Point, col types.Color, width float32) {
	c.Lines = append(c.Lines, LineOp{A: a, B: b, Color: col, Width: width})
}

// Text records a text draw.
func (c *Canvas) Text(pos types.Point, s string, col types.Color) {
	c.Texts = append(c.Texts, TextOp{Pos: pos, Text: s, Color: col})
}

// PushClip records the region and deepens the clip stack.
func (c *Canvas) PushClip(r types.Rect) {
	c.Clips = append(c.Clips, r)
	c.depth++
}

// PopClip shallows the clip stack.
func (c *Canvas) PopClip() {
	c.depth--
}

// ClipDepth returns the current stack depth; zero after a balanced frame.
func (c *Canvas) ClipDepth() int {
	return c.depth
}

// HLineYs returns the Y coordinates of the recorded horizontal lines, in
// draw order. The insertion guide is the canonical producer.
func (c *Canvas) HLineYs() []float32 {
	var out []float32
	for _, l := range c.Lines {
		if l.A.Y == l.B.Y {
			out = append(out, l.A.Y)
		}
	}
	return out
}

// Scene is the standard interaction fixture: draggable labels inside a
// list, wrapped by a selection model and an insertion-point target, behind
// a viewport, hosted by a view over a recording canvas.
type Scene struct {
	Host      *Host
	Canvas    *Canvas
	View      *view.View
	List      *list.List
	Selection *list.SelectionList
	Inserter  *dnd.DropInserter
	Port      *element.Port
}

// NewScene builds the fixture with one draggable item per title, accepting
// "text/*" payloads, with the standard geometry and the default drag
// threshold.
func NewScene(t *testing.T, titles ...string) *Scene {
	t.Helper()
	children := make([]element.Element, 0, len(titles))
	for _, title := range titles {
		children = append(children, dnd.NewDraggable(element.NewLabel(title)))
	}
	lst := list.New(ItemHeight, children...)
	sel := list.NewSelectionList(lst)
	ins, err := dnd.NewDropInserter(sel, "text/*")
	require.NoError(t, err)
	port := element.NewPort(ins)
	host := &Host{}
	v := view.New(host, port)
	v.SetBounds(types.RectXYWH(0, 0, SceneWidth, SceneHeight))
	return &Scene{
		Host:      host,
		Canvas:    &Canvas{},
		View:      v,
		List:      lst,
		Selection: sel,
		Inserter:  ins,
		Port:      port,
	}
}

// Draggable returns the list item at index i.
func (s *Scene) Draggable(i int) *dnd.Draggable {
	return s.List.At(i).(*dnd.Draggable)
}

// Titles reads the label text of every item back out, in document order.
func (s *Scene) Titles() []string {
	out := make([]string, 0, s.List.Size())
	for i := 0; i < s.List.Size(); i++ {
		d := s.List.At(i).(*dnd.Draggable)
		out = append(out, d.Subject().(*element.Label).Text())
	}
	return out
}

// ItemCenter returns the center of item i with the viewport unscrolled.
func (s *Scene) ItemCenter(i int) types.Point {
	b := s.View.Bounds()
	return types.Pt(b.Center().X, b.Top+float32(i)*ItemHeight+ItemHeight/2)
}

// Draw renders one frame into a fresh recording and returns the canvas.
func (s *Scene) Draw() *Canvas {
	s.Canvas.Reset()
	s.View.Draw(s.Canvas)
	return s.Canvas
}

// Scroll shifts the viewport by dy view units.
func (s *Scene) Scroll(dy float32) {
	ctx := element.NewContext(s.View, nil, s.View.Theme(), s.View.Bounds(), s.Port)
	s.Port.ScrollBy(ctx, dy)
}

// Press dispatches a left-button press at p.
func (s *Scene) Press(p types.Point, mods types.Modifiers) bool {
	return s.View.Press(p, types.ButtonLeft, mods)
}

// MoveTo dispatches pointer motion to p, then draws a frame the way a
// front end redraws between events. The insertion index is computed at
// draw time, so a gesture that skips drawing has nowhere to commit.
func (s *Scene) MoveTo(p types.Point) {
	s.View.Move(p, types.ButtonLeft, 0)
	s.Draw()
}

// Release dispatches the left-button release at p.
func (s *Scene) Release(p types.Point, mods types.Modifiers) bool {
	return s.View.Release(p, types.ButtonLeft, mods)
}

// Click presses and releases on item i's center without motion.
func (s *Scene) Click(i int, mods types.Modifiers) {
	p := s.ItemCenter(i)
	s.Press(p, mods)
	s.Release(p, mods)
}

// DragTo presses on item from's center, drags to p with a frame drawn
// before the release, and releases at p. The item must already be selected
// for a multi-item drag to keep the selection; a plain press on an
// unselected item collapses the selection to that item first.
func (s *Scene) DragTo(from int, p types.Point) bool {
	start := s.ItemCenter(from)
	s.Press(start, 0)
	s.MoveTo(p)
	return s.Release(p, 0)
}

// Key dispatches one key press.
func (s *Scene) Key(code types.KeyCode, mods types.Modifiers) bool {
	return s.View.Key(types.KeyInfo{Code: code, Action: types.KeyPress, Mods: mods})
}
