package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dragd/pkg/types"
)

// cell is one character of the terminal grid. Foreground and background are
// tracked separately so a fill can pass behind existing text.
type cell struct {
	ch    rune
	fg    types.Color
	bg    types.Color
	hasFg bool
	hasBg bool
}

// Canvas rasterizes engine draw calls onto a cell grid, one cell per
// engine unit. Rectangles land on whole cells; horizontal lines on row
// boundaries render as eighth-block edges so an insertion guide between
// two rows stays visible.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
	clips  []types.Rect
}

// NewCanvas returns a cleared canvas of the given cell size.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Reset(width, height)
	return c
}

// Reset clears the grid, resizing it if needed.
func (c *Canvas) Reset(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width = width
	c.height = height
	c.cells = make([][]cell, height)
	for y := range c.cells {
		row := make([]cell, width)
		for x := range row {
			row[x].ch = ' '
		}
		c.cells[y] = row
	}
	c.clips = c.clips[:0]
}

// Size returns the grid extent in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

func (c *Canvas) clip() types.Rect {
	r := types.RectXYWH(0, 0, float32(c.width), float32(c.height))
	for _, cl := range c.clips {
		r = r.Intersect(cl)
	}
	return r
}

// cellRange maps a rectangle to inclusive cell coordinates, clamped to the
// current clip. ok is false when nothing is visible.
func (c *Canvas) cellRange(r types.Rect) (x0, y0, x1, y1 int, ok bool) {
	r = r.Intersect(c.clip())
	if r.Empty() {
		return 0, 0, 0, 0, false
	}
	x0 = int(r.Left)
	y0 = int(r.Top)
	x1 = int(r.Right) - 1
	if r.Right > float32(x1+1) {
		x1++
	}
	y1 = int(r.Bottom) - 1
	if r.Bottom > float32(y1+1) {
		y1++
	}
	if x1 >= c.width {
		x1 = c.width - 1
	}
	if y1 >= c.height {
		y1 = c.height - 1
	}
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

func (c *Canvas) visible(x, y int) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return false
	}
	cl := c.clip()
	fx, fy := float32(x), float32(y)
	return fx >= cl.Left && fx < cl.Right && fy >= cl.Top && fy < cl.Bottom
}

// FillRect paints the background of every cell the rectangle covers.
func (c *Canvas) FillRect(r types.Rect, col types.Color) {
	x0, y0, x1, y1, ok := c.cellRange(r)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.cells[y][x].bg = col
			c.cells[y][x].hasBg = true
		}
	}
}

// FillRoundRect is FillRect on a cell grid: corner radii are below cell
// resolution.
func (c *Canvas) FillRoundRect(r types.Rect, col types.Color, radius float32) {
	c.FillRect(r, col)
}

// StrokeRect draws a box-drawing border on the rectangle's outermost cells.
func (c *Canvas) StrokeRect(r types.Rect, col types.Color, width float32) {
	x0, y0, x1, y1, ok := c.cellRange(r)
	if !ok {
		return
	}
	for x := x0; x <= x1; x++ {
		c.setRune(x, y0, '─', col)
		c.setRune(x, y1, '─', col)
	}
	for y := y0; y <= y1; y++ {
		c.setRune(x0, y, '│', col)
		c.setRune(x1, y, '│', col)
	}
	c.setRune(x0, y0, '┌', col)
	c.setRune(x1, y0, '┐', col)
	c.setRune(x0, y1, '└', col)
	c.setRune(x1, y1, '┘', col)
}

// Line draws an axis-aligned line. A horizontal line on an exact row
// boundary renders as an upper-eighth block on the row below it, or a
// lower-eighth block on the last row when it sits at the grid's bottom
// edge, keeping between-row guides visible. Diagonals are not supported by
// the cell grid and are dropped.
func (c *Canvas) Line(a, b types.Point, col types.Color, width float32) {
	switch {
	case a.Y == b.Y:
		c.hline(a.X, b.X, a.Y, col)
	case a.X == b.X:
		c.vline(a.Y, b.Y, a.X, col)
	}
}

func (c *Canvas) hline(xa, xb, y float32, col types.Color) {
	if xb < xa {
		xa, xb = xb, xa
	}
	row := int(y)
	ch := '─'
	if y == float32(int(y)) { // on a row boundary
		ch = '▔'
		if row >= c.height {
			row = c.height - 1
			ch = '▁'
		}
	}
	x1 := int(xb)
	if xb > float32(x1) {
		x1++
	}
	for x := int(xa); x < x1; x++ {
		c.setRune(x, row, ch, col)
	}
}

func (c *Canvas) vline(ya, yb, x float32, col types.Color) {
	if yb < ya {
		ya, yb = yb, ya
	}
	colIdx := int(x)
	y1 := int(yb)
	if yb > float32(y1) {
		y1++
	}
	for y := int(ya); y < y1; y++ {
		c.setRune(colIdx, y, '│', col)
	}
}

// Text writes a string anchored at pos's left edge, vertically centered on
// the cell row pos falls in.
func (c *Canvas) Text(pos types.Point, s string, col types.Color) {
	y := int(pos.Y)
	x := int(pos.X)
	for _, r := range s {
		c.setRune(x, y, r, col)
		x++
	}
}

// PushClip intersects the clip region with r.
func (c *Canvas) PushClip(r types.Rect) {
	c.clips = append(c.clips, r)
}

// PopClip restores the clip region active before the matching PushClip.
func (c *Canvas) PopClip() {
	if len(c.clips) > 0 {
		c.clips = c.clips[:len(c.clips)-1]
	}
}

func (c *Canvas) setRune(x, y int, ch rune, col types.Color) {
	if !c.visible(x, y) {
		return
	}
	c.cells[y][x].ch = ch
	c.cells[y][x].fg = col
	c.cells[y][x].hasFg = true
}

// RuneAt returns the character at a cell, for tests and debugging.
func (c *Canvas) RuneAt(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.cells[y][x].ch
}

// BackgroundAt returns the background color at a cell and whether one was
// painted.
func (c *Canvas) BackgroundAt(x, y int) (types.Color, bool) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return types.Color{}, false
	}
	return c.cells[y][x].bg, c.cells[y][x].hasBg
}

// Render flattens the grid into a styled string, one line per row. Runs of
// cells sharing a style render as one lipgloss span.
func (c *Canvas) Render() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		c.renderRow(&sb, c.cells[y])
	}
	return sb.String()
}

func (c *Canvas) renderRow(sb *strings.Builder, row []cell) {
	var run strings.Builder
	var cur cell
	flush := func() {
		if run.Len() == 0 {
			return
		}
		s := lipgloss.NewStyle()
		styled := false
		if cur.hasFg {
			s = s.Foreground(lipgloss.Color(cur.fg.Hex()))
			styled = true
		}
		if cur.hasBg {
			s = s.Background(lipgloss.Color(cur.bg.Hex()))
			styled = true
		}
		if styled {
			sb.WriteString(s.Render(run.String()))
		} else {
			sb.WriteString(run.String())
		}
		run.Reset()
	}
	for i, cl := range row {
		if i == 0 || !sameStyle(cl, cur) {
			flush()
			cur = cl
		}
		run.WriteRune(cl.ch)
	}
	flush()
}

func sameStyle(a, b cell) bool {
	if a.hasFg != b.hasFg || a.hasBg != b.hasBg {
		return false
	}
	if a.hasFg && a.fg != b.fg {
		return false
	}
	if a.hasBg && a.bg != b.bg {
		return false
	}
	return true
}
