// internal/app/app.go
package app

import (
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/loom/internal/action"
	"github.com/bethropolis/loom/internal/commands"
	"github.com/bethropolis/loom/internal/config"
	"github.com/bethropolis/loom/internal/event"
	"github.com/bethropolis/loom/internal/input"
	"github.com/bethropolis/loom/internal/logger"
	"github.com/bethropolis/loom/internal/menu"
	"github.com/bethropolis/loom/internal/statusbar"
	"github.com/bethropolis/loom/internal/tab"
	"github.com/bethropolis/loom/internal/tui"
)

// App encapsulates the core components and main loop.
type App struct {
	tuiManager   *tui.TUI
	eventManager *event.Manager
	tabManager   *tab.Manager
	dispatcher   *input.Dispatcher
	registry     *action.Registry
	menuModel    *menu.Model
	statusBar    *statusbar.StatusBar
	builtins     *commands.Builtins

	quit     chan struct{}
	quitOnce sync.Once
}

// NewApp creates and initializes a new application instance. filePaths are
// opened as text tabs; with none given the app starts with one empty tab.
func NewApp(cfg *config.Config, filePaths []string) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, err
	}

	eventManager := event.NewManager()
	tabManager := tab.NewManager(eventManager)

	dispatcher := input.NewDispatcher()
	dispatcher.SetPrecedence(input.ParsePrecedence(cfg.Input.Precedence))

	registry := action.New(action.Config{
		Events: eventManager,
		Tabs:   tabManager,
		Keys:   dispatcher,
	})

	// The menu model must exist before any action registers, or it misses
	// the new-action events it mirrors from.
	menuModel := menu.NewModel(registry, eventManager)

	statusBar := statusbar.New(statusbar.DefaultConfig())

	a := &App{
		tuiManager:   tuiManager,
		eventManager: eventManager,
		tabManager:   tabManager,
		dispatcher:   dispatcher,
		registry:     registry,
		menuModel:    menuModel,
		statusBar:    statusBar,
		quit:         make(chan struct{}),
	}

	a.builtins = commands.RegisterBuiltins(commands.Deps{
		Registry:        registry,
		Tabs:            tabManager,
		Status:          statusBar,
		Quit:            a.requestQuit,
		SystemClipboard: cfg.Editor.SystemClipboard,
	})
	registerAppActions(a)

	eventManager.Subscribe(event.TypeTabChanged, func(e event.Event) bool {
		data := e.Data.(event.TabChangedData)
		statusBar.SetTabInfo(data.Title, data.Type)
		return false
	})
	eventManager.Subscribe(event.TypeActionDisabled, func(e event.Event) bool {
		logger.Debugf("App: action %q disabled", e.Data.(event.ActionData).Path)
		return false
	})

	for _, path := range filePaths {
		t := tab.NewTextTab(path)
		if content, err := os.ReadFile(path); err == nil {
			t.SetText(string(content))
		}
		tabManager.Append(t)
	}
	if len(filePaths) == 0 {
		tabManager.Append(tab.NewTextTab("[untitled]"))
	}

	return a, nil
}

// Registry exposes the action registry, e.g. for tests or plugins.
func (a *App) Registry() *action.Registry {
	return a.registry
}

func (a *App) requestQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// Run drives the main event loop until quit is requested.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			return nil
		default:
		}

		a.draw()

		switch ev := a.tuiManager.PollEvent().(type) {
		case *tcell.EventKey:
			a.handleKey(ev)
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
		}
	}
}

// handleKey routes a key press: bound shortcuts first, then the focused text
// area's default editing behavior for whatever was not consumed.
func (a *App) handleKey(ev *tcell.EventKey) {
	a.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	textTab, inTextArea := a.tabManager.Focused().(*tab.TextTab)
	if a.dispatcher.HandleKey(ev, inTextArea) {
		return
	}
	if !inTextArea {
		return
	}

	switch {
	case ev.Key() == tcell.KeyRune && ev.Modifiers()&^tcell.ModShift == 0:
		textTab.AppendRune(ev.Rune())
	case ev.Key() == tcell.KeyEnter:
		textTab.AppendLine()
	case ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
		textTab.DeleteRune()
	}
}

// registerAppActions registers actions that belong to the shell rather than
// to any document: tab cycling and the line-ending status echo.
func registerAppActions(a *App) {
	if _, err := a.registry.AddCommand("View/Next Tab", func() {
		a.tabManager.FocusNext()
	}, action.WithBinding("F2")); err != nil {
		logger.Warnf("Failed to register 'View/Next Tab': %v", err)
	}

	// Surface choice changes on the status bar so they are visible without
	// a rendered menu.
	a.builtins.LineEnding.Listen(func(value string) {
		a.statusBar.SetTemporaryMessage("Line ending: %s", value)
	})
	a.builtins.Theme.Listen(func(value string) {
		a.statusBar.SetTemporaryMessage("Theme: %s", value)
	})
}
