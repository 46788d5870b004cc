// Package tui is the terminal front end: a bubbletea program that
// rasterizes the interaction engine onto a cell canvas and feeds terminal
// mouse and key events back into it.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dragd/internal/config"
	"dragd/internal/demo"
	"dragd/internal/items"
	"dragd/internal/log"
	"dragd/internal/watch"
	"dragd/pkg/types"
)

// chrome extents around the canvas, in cells.
const (
	frameX = 2 // border + padding each side
	frameY = 1 // border top/bottom
	barsY  = 3 // title, status, help lines
)

type itemsChangedMsg struct {
	mod watch.ItemsModification
}

type watchClosedMsg struct{}

type Model struct {
	cfg   *config.Config
	scene *demo.Scene

	canvas  *Canvas
	keys    keyMap
	help    help.Model
	spinner spinner.Model

	width  int
	height int

	statusMsg string
	lastErr   error
	showHelp  bool
	watching  bool

	watcher *watch.ItemsWatcher
}

// NewModel assembles the terminal front end from configuration: items are
// loaded from the configured store, the scene is built at terminal
// metrics, and a watcher is started when configured.
func NewModel(cfg *config.Config) (*Model, error) {
	m := &Model{
		cfg:     cfg,
		canvas:  NewCanvas(0, 0),
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.spinner.Style = HelpStyle

	content, err := items.Load(cfg.Items.Path)
	if err != nil {
		return nil, err
	}

	scene, err := demo.Build(cfg, m, content, demo.Metrics{
		ItemHeight:    1,
		DragThreshold: cfg.Interaction.TerminalDragThreshold,
		ListShare:     0.8,
	})
	if err != nil {
		return nil, err
	}
	m.scene = scene
	scene.OnStatus = func(status string) {
		m.statusMsg = status
	}
	scene.OnChange = func(current []items.Item) {
		if err := items.Save(cfg.Items.Path, current); err != nil {
			m.lastErr = err
			log.Errorf("saving items: %v", err)
		}
	}

	if cfg.Items.Watch {
		w, err := watch.New(cfg.Items.Path)
		if err != nil {
			log.Warnf("items watch disabled: %v", err)
		} else {
			m.watcher = w
			m.watching = true
		}
	}
	return m, nil
}

// Refresh implements the engine's host surface. The terminal redraws after
// every Update, so a refresh request needs no bookkeeping.
func (m *Model) Refresh() {}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.watcher != nil {
		if err := m.watcher.Start(); err != nil {
			m.lastErr = err
			m.watching = false
		} else {
			cmds = append(cmds, m.awaitChange())
		}
	}
	if m.watching {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// awaitChange blocks on the watcher channel and surfaces the next
// modification as a message.
func (m *Model) awaitChange() tea.Cmd {
	ch := m.watcher.Channel()
	return func() tea.Msg {
		mod, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return itemsChangedMsg{mod: mod}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case itemsChangedMsg:
		m.reload()
		return m, m.awaitChange()

	case watchClosedMsg:
		m.watching = false
		return m, nil

	case spinner.TickMsg:
		if !m.watching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Engine keys first: an active drag owns escape, and a selection owns
	// delete, before any chrome binding sees them.
	if k, ok := engineKey(msg); ok {
		if m.scene.View.Key(k) {
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.SelectAll):
		m.scene.Sel.SelectAll()
		m.statusMsg = fmt.Sprintf("%d selected", len(m.scene.Sel.Selection()))
	case key.Matches(msg, m.keys.ClearSel):
		m.scene.Sel.SelectNone()
		m.statusMsg = "selection cleared"
	case key.Matches(msg, m.keys.Reload):
		m.reload()
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := m.enginePos(msg.X, msg.Y)
	mods := mouseMods(msg)
	btn := mouseButton(msg)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scene.Scroll(-1)
		case tea.MouseButtonWheelDown:
			m.scene.Scroll(1)
		default:
			m.scene.View.Press(pos, btn, mods)
		}
	case tea.MouseActionMotion:
		m.scene.View.Move(pos, btn, mods)
	case tea.MouseActionRelease:
		m.scene.View.Release(pos, btn, mods)
	}
}

// enginePos maps a terminal cell to engine coordinates, centered in the
// cell so row midpoint comparisons behave.
func (m *Model) enginePos(x, y int) types.Point {
	return types.Pt(float32(x-frameX)+0.5, float32(y-frameY-1)+0.5)
}

func (m *Model) layout() {
	w := m.width - 2*frameX
	h := m.height - 2*frameY - barsY
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	m.canvas.Reset(w, h)
	m.scene.View.SetBounds(types.RectXYWH(0, 0, float32(w), float32(h)))
	m.help.Width = w
}

// reload re-reads the item store and rebuilds the list.
func (m *Model) reload() {
	content, err := items.Load(m.cfg.Items.Path)
	if err != nil {
		m.lastErr = err
		log.Errorf("reloading items: %v", err)
		return
	}
	m.lastErr = nil
	m.scene.Reload(content)
	m.statusMsg = fmt.Sprintf("loaded %d item(s)", len(content))
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	w, h := m.canvas.Size()
	m.canvas.Reset(w, h)
	m.scene.View.Draw(m.canvas)

	title := TitleStyle.Render("dragd") + " " + StatusStyle.Render("drag, drop, reorder")
	status := m.statusLine()
	m.help.ShowAll = m.showHelp
	helpLine := m.help.View(m.keys)

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.canvas.Render(),
		status,
		helpLine,
	)
	return App.Render(body)
}

func (m *Model) statusLine() string {
	if m.lastErr != nil {
		return ErrorStyle.Render("error: " + m.lastErr.Error())
	}
	line := m.statusMsg
	if line == "" {
		line = fmt.Sprintf("%d item(s)", m.scene.List.Size())
	}
	if m.watching {
		line = m.spinner.View() + " " + line
	}
	return StatusStyle.Render(line)
}

// Close releases the watcher. Safe to call more than once.
func (m *Model) Close() {
	if m.watcher != nil && m.watcher.IsRunning() {
		m.watcher.Stop()
	}
	m.watcher = nil
}

// Run builds the model and runs the program until quit.
func Run(cfg *config.Config) error {
	ApplyConfigStyles(cfg)
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}
