package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dragd/pkg/types"
)

// keyMap declares the bindings the terminal front end understands. The
// engine bindings (arrows, escape, delete) are translated and forwarded;
// the rest act on the model itself.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	SelectAll key.Binding
	ClearSel  key.Binding
	Erase     key.Binding
	Cancel    key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+up"),
			key.WithHelp("↑", "move selection"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "shift+down"),
			key.WithHelp("↓", "move selection"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all"),
		),
		ClearSel: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "select none"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("del", "erase selection"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload items"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Erase, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.SelectAll, k.ClearSel},
		{k.Erase, k.Cancel, k.Reload},
		{k.Help, k.Quit},
	}
}

// engineKey translates a terminal key event into an engine key event.
// ok is false for keys the engine has no code for.
func engineKey(msg tea.KeyMsg) (types.KeyInfo, bool) {
	k := types.KeyInfo{Action: types.KeyPress}
	switch msg.Type {
	case tea.KeyEsc:
		k.Code = types.KeyEscape
	case tea.KeyBackspace:
		k.Code = types.KeyBackspace
	case tea.KeyDelete:
		k.Code = types.KeyDelete
	case tea.KeyEnter:
		k.Code = types.KeyEnter
	case tea.KeyUp:
		k.Code = types.KeyUp
	case tea.KeyDown:
		k.Code = types.KeyDown
	case tea.KeyShiftUp:
		k.Code = types.KeyUp
		k.Mods |= types.ModShift
	case tea.KeyShiftDown:
		k.Code = types.KeyDown
		k.Mods |= types.ModShift
	default:
		return types.KeyInfo{}, false
	}
	if msg.Alt {
		k.Mods |= types.ModAlt
	}
	return k, true
}

// mouseMods translates terminal mouse modifier flags.
func mouseMods(msg tea.MouseMsg) types.Modifiers {
	var m types.Modifiers
	if msg.Shift {
		m |= types.ModShift
	}
	if msg.Ctrl {
		m |= types.ModAction
	}
	if msg.Alt {
		m |= types.ModAlt
	}
	return m
}

// mouseButton translates the pressed button, defaulting to left for motion
// events that carry none.
func mouseButton(msg tea.MouseMsg) types.ButtonID {
	switch msg.Button {
	case tea.MouseButtonMiddle:
		return types.ButtonMiddle
	case tea.MouseButtonRight:
		return types.ButtonRight
	default:
		return types.ButtonLeft
	}
}
