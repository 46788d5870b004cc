package types

// KeyCode identifies the keys the interaction engine reacts to. Front ends
// translate their own key events into these codes; anything else stays in
// the front end.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyUp
	KeyDown
)

// KeyAction distinguishes press, auto-repeat and release.
type KeyAction int

const (
	KeyPress KeyAction = iota
	KeyRepeat
	KeyRelease
)

// Modifiers is a bitmask of modifier keys held during an event.
type Modifiers uint8

const (
	// ModShift marks a range-extend gesture on selection lists.
	ModShift Modifiers = 1 << iota
	// ModAction is the platform action key (ctrl, or cmd on darwin);
	// it marks a discrete-toggle gesture on selection lists.
	ModAction
	ModAlt
)

// KeyInfo is a keyboard event as seen by the engine.
type KeyInfo struct {
	Code   KeyCode
	Action KeyAction
	Mods   Modifiers
}
