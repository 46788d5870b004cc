package element

import (
	"dragd/pkg/types"
)

// Theme carries the colors and stroke metrics the interaction elements draw
// with. It travels by value on the Context, so a wrapper can hand its
// subtree an adjusted copy (the disabled dim, for example) without mutating
// shared state.
type Theme struct {
	// Indicator is the accent used for selection highlights and the drag
	// image backdrop.
	Indicator types.Color
	// IndicatorHilite is the brighter accent used for active drop-target
	// feedback and the insertion guide.
	IndicatorHilite types.Color
	// Label is the default text color.
	Label types.Color
	// InactiveLabel replaces Label under a disabled wrapper.
	InactiveLabel types.Color
	// StrokeWidth is the outline width for drop-target and caret feedback.
	StrokeWidth float32
}

// DefaultTheme returns the stock dark palette.
func DefaultTheme() Theme {
	return Theme{
		Indicator:       types.Color{R: 0, G: 127, B: 255, A: 255},
		IndicatorHilite: types.Color{R: 0, G: 190, B: 255, A: 255},
		Label:           types.Color{R: 220, G: 220, B: 220, A: 255},
		InactiveLabel:   types.Color{R: 127, G: 127, B: 127, A: 255},
		StrokeWidth:     2,
	}
}
