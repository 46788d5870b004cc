package element

import (
	"dragd/pkg/types"
)

// Label is a plain text leaf. It draws with the theme's label color, so a
// wrapper that dims its subtree only needs to hand down an adjusted theme.
type Label struct {
	text string
}

// NewLabel returns a label showing text.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// Text returns the label's current text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the label's text. The caller refreshes the view.
func (l *Label) SetText(text string) {
	l.text = text
}

// Draw renders the text left-aligned and vertically centered in the frame.
func (l *Label) Draw(ctx *Context) {
	pos := types.Point{X: ctx.Bounds.Left + 1, Y: ctx.Bounds.Center().Y}
	ctx.Canvas.Text(pos, l.text, ctx.Theme.Label)
}
