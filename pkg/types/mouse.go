package types

// ButtonID identifies a pointer button.
type ButtonID int

const (
	ButtonLeft ButtonID = iota
	ButtonMiddle
	ButtonRight
)

// MouseButton is a pointer press or release as seen by the engine.
type MouseButton struct {
	Down bool
	Num  ButtonID
	Mods Modifiers
	Pos  Point
}
