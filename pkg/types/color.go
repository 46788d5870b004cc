package types

import "fmt"

// Color is an 8-bit RGBA color shared by the theme and both canvases.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Opacity returns the color with its alpha scaled to a (0.0–1.0).
// The RGB channels are untouched.
func (c Color) Opacity(a float32) Color {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(a * 255)
	return c
}

// Hex returns the color as a #rrggbb string (alpha dropped), the form
// lipgloss and the config file use.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Alpha returns the alpha channel as a 0.0–1.0 fraction.
func (c Color) Alpha() float32 {
	return float32(c.A) / 255
}

// ParseHex parses a "#rrggbb" string into an opaque color.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB(r, g, b), nil
}
