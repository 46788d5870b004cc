//go:build !nogui
// +build !nogui

package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"dragd/internal/config"
	"dragd/internal/demo"
	"dragd/internal/items"
	"dragd/internal/log"
	"dragd/internal/watch"
	"dragd/pkg/types"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config

	scene       *demo.Scene
	engine      *engineWidget
	statusLabel *widget.Label
	watcher     *watch.ItemsWatcher

	// Modifier state tracked from canvas key events; fyne's typed-key
	// callback carries none.
	mods types.Modifiers
}

// NewApp creates a new GUI application
func NewApp(cfg *config.Config) (*App, error) {
	// Create app with a unique ID for preferences storage
	fyneApp := app.NewWithID("io.github.dragd")

	a := &App{
		fyneApp:     fyneApp,
		cfg:         cfg,
		statusLabel: widget.NewLabel(""),
	}
	a.mainWindow = fyneApp.NewWindow("Dragd")

	content, err := items.Load(cfg.Items.Path)
	if err != nil {
		return nil, err
	}

	scene, err := demo.Build(cfg, a, content, demo.Metrics{
		ItemHeight:    itemHeightPx,
		DragThreshold: cfg.Interaction.DragThreshold,
		ListShare:     0.8,
	})
	if err != nil {
		return nil, err
	}
	a.scene = scene
	a.engine = newEngineWidget(scene, func() types.Modifiers { return a.mods })

	scene.OnStatus = func(status string) {
		a.statusLabel.SetText(status)
	}
	scene.OnChange = func(current []items.Item) {
		if err := items.Save(cfg.Items.Path, current); err != nil {
			a.ShowError("Failed to save items", err)
		}
	}

	if cfg.Items.Watch {
		w, err := watch.New(cfg.Items.Path)
		if err != nil {
			log.Warnf("items watch disabled: %v", err)
		} else {
			a.watcher = w
		}
	}

	a.setupMainWindow()
	return a, nil
}

// Refresh implements the engine's host surface.
func (a *App) Refresh() {
	if a.engine != nil {
		a.engine.Refresh()
	}
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run starts the GUI application
func (a *App) Run() {
	if a.watcher != nil {
		if err := a.watcher.Start(); err != nil {
			log.Warnf("items watch disabled: %v", err)
			a.watcher = nil
		} else {
			go a.watchLoop()
		}
	}

	a.mainWindow.Show()
	a.fyneApp.Run()
}

// setupMainWindow sets up the main window content
func (a *App) setupMainWindow() {
	title := canvas.NewText("dragd", toNRGBA(a.scene.View.Theme().Indicator))
	title.TextStyle.Monospace = true
	title.TextStyle.Bold = true
	title.TextSize = 20
	title.Alignment = fyne.TextAlignCenter

	a.statusLabel.SetText(fmt.Sprintf("%d item(s)", a.scene.List.Size()))

	content := container.NewBorder(
		title,         // top
		a.statusLabel, // bottom
		nil,
		nil,
		a.engine,
	)
	a.mainWindow.SetContent(content)
	a.mainWindow.Resize(fyne.NewSize(480, 560))

	a.mainWindow.SetOnDropped(func(pos fyne.Position, uris []fyne.URI) {
		a.handleDropped(pos, uris)
	})

	a.mainWindow.Canvas().SetOnTypedKey(func(ke *fyne.KeyEvent) {
		a.handleTypedKey(ke)
	})
	if deskCanvas, ok := a.mainWindow.Canvas().(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(func(ke *fyne.KeyEvent) {
			a.setModifier(ke.Name, true)
		})
		deskCanvas.SetOnKeyUp(func(ke *fyne.KeyEvent) {
			a.setModifier(ke.Name, false)
		})
	}

	a.mainWindow.SetCloseIntercept(func() {
		a.Close()
		a.fyneApp.Quit()
	})
}

func (a *App) setModifier(name fyne.KeyName, down bool) {
	var m types.Modifiers
	switch name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		m = types.ModShift
	case desktop.KeyControlLeft, desktop.KeyControlRight,
		desktop.KeySuperLeft, desktop.KeySuperRight:
		m = types.ModAction
	case desktop.KeyAltLeft, desktop.KeyAltRight:
		m = types.ModAlt
	default:
		return
	}
	if down {
		a.mods |= m
	} else {
		a.mods &^= m
	}
}

func (a *App) handleTypedKey(ke *fyne.KeyEvent) {
	if k, ok := engineKeyName(ke.Name); ok {
		k.Mods = a.mods
		if a.scene.View.Key(k) {
			return
		}
	}
	switch ke.Name {
	case fyne.KeyQ:
		a.Close()
		a.fyneApp.Quit()
	case fyne.KeyR:
		a.reloadItems()
	}
}

func engineKeyName(name fyne.KeyName) (types.KeyInfo, bool) {
	k := types.KeyInfo{Action: types.KeyPress}
	switch name {
	case fyne.KeyEscape:
		k.Code = types.KeyEscape
	case fyne.KeyBackspace:
		k.Code = types.KeyBackspace
	case fyne.KeyDelete:
		k.Code = types.KeyDelete
	case fyne.KeyReturn, fyne.KeyEnter:
		k.Code = types.KeyEnter
	case fyne.KeyUp:
		k.Code = types.KeyUp
	case fyne.KeyDown:
		k.Code = types.KeyDown
	default:
		return types.KeyInfo{}, false
	}
	return k, true
}

// handleDropped routes a platform file drop into the engine. The platform
// reports no motion, only the final position, so the payload goes straight
// to the drop dispatch.
func (a *App) handleDropped(pos fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	origin := fyne.CurrentApp().Driver().AbsolutePositionForObject(a.engine)
	where := types.Pt(pos.X-origin.X, pos.Y-origin.Y)

	lines := make([]string, 0, len(uris))
	for _, u := range uris {
		lines = append(lines, u.String())
	}
	payload := types.NewPayload()
	payload.Set("text/uri-list", []byte(strings.Join(lines, "\n")))

	if !a.scene.View.Drop(types.DropInfo{Data: payload, Where: where}) {
		log.Debugf("drop of %d uri(s) not accepted at %v", len(uris), where)
	}
}

func (a *App) watchLoop() {
	for range a.watcher.Channel() {
		a.reloadItems()
	}
}

func (a *App) reloadItems() {
	content, err := items.Load(a.cfg.Items.Path)
	if err != nil {
		log.Errorf("reloading items: %v", err)
		return
	}
	a.scene.Reload(content)
	a.statusLabel.SetText(fmt.Sprintf("loaded %d item(s)", len(content)))
}

// Close releases the watcher. Safe to call more than once.
func (a *App) Close() {
	if a.watcher != nil && a.watcher.IsRunning() {
		a.watcher.Stop()
	}
	a.watcher = nil
}

// ShowError displays an error message
func (a *App) ShowError(message string, err error) {
	log.Errorf("%s: %v", message, err)
	dialog.ShowError(fmt.Errorf("%s: %w", message, err), a.mainWindow)
}

// ShowInfo displays an information message
func (a *App) ShowInfo(message string) {
	log.Info(message)
	dialog.ShowInformation("Info", message, a.mainWindow)
}
