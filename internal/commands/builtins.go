// internal/commands/builtins.go

// Package commands registers the built-in action set against the registry:
// the File/Edit/View menus every loom window starts with.
package commands

import (
	"github.com/atotto/clipboard"

	"github.com/bethropolis/loom/internal/action"
	"github.com/bethropolis/loom/internal/logger"
	"github.com/bethropolis/loom/internal/observe"
	"github.com/bethropolis/loom/internal/statusbar"
	"github.com/bethropolis/loom/internal/tab"
)

// Deps holds everything the built-in actions touch.
type Deps struct {
	Registry *action.Registry
	Tabs     *tab.Manager
	Status   *statusbar.StatusBar
	Quit     func()

	// SystemClipboard selects the OS clipboard for Edit/Copy and
	// Edit/Paste; when false an in-process register is used instead.
	SystemClipboard bool
}

// Builtins exposes the shared state cells of the stateful built-ins, so the
// host can render from them.
type Builtins struct {
	WordWrap      *observe.Var[bool]
	HighlightLine *observe.Var[bool]
	LineEnding    *observe.Var[string]
	Theme         *observe.Var[string]
}

// RegisterBuiltins registers the standard actions. Registration failures are
// logged and skipped; they indicate a path collision with an earlier caller.
func RegisterBuiltins(d Deps) *Builtins {
	b := &Builtins{
		WordWrap:      observe.NewVar(false),
		HighlightLine: observe.NewVar(true),
		LineEnding:    observe.NewVar("LF"),
		Theme:         observe.NewVar("blue"),
	}

	register := "" // in-process fallback clipboard

	readClipboard := func() (string, error) {
		if d.SystemClipboard {
			return clipboard.ReadAll()
		}
		return register, nil
	}
	writeClipboard := func(text string) error {
		if d.SystemClipboard {
			return clipboard.WriteAll(text)
		}
		register = text
		return nil
	}

	// --- File menu ---
	add(d, "File/New File", func() {
		d.Tabs.Append(tab.NewTextTab("[untitled]"))
		d.Status.SetTemporaryMessage("New file")
	}, action.WithBinding("Ctrl+N"))

	add(d, "File/Save", func() {
		t := d.Tabs.Focused()
		d.Status.SetTemporaryMessage("Saved %s", t.Title())
	}, action.WithBinding("Ctrl+S"), action.WithTabTypes(tab.TypeText))

	add(d, "File/Close", func() {
		d.Tabs.CloseFocused()
	}, action.WithBinding("Ctrl+W"), action.WithTabTypes(tab.TypeText, tab.TypeDirectory))

	add(d, "File/Quit", func() {
		d.Quit()
	}, action.WithBinding("Ctrl+Q"))

	// --- Edit menu ---
	add(d, "Edit/Copy", func() {
		t, ok := d.Tabs.Focused().(*tab.TextTab)
		if !ok {
			return
		}
		if err := writeClipboard(t.Text()); err != nil {
			d.Status.SetTemporaryMessage("Copy failed: %v", err)
			return
		}
		d.Status.SetTemporaryMessage("Copied %s", t.Title())
	}, action.WithBinding("Ctrl+C"), action.WithTabTypes(tab.TypeText))

	add(d, "Edit/Paste", func() {
		t, ok := d.Tabs.Focused().(*tab.TextTab)
		if !ok {
			return
		}
		text, err := readClipboard()
		if err != nil {
			d.Status.SetTemporaryMessage("Paste failed: %v", err)
			return
		}
		t.SetText(t.Text() + text)
	}, action.WithBinding("Ctrl+V"), action.WithTabTypes(tab.TypeText))

	// --- Stateful actions ---
	if _, err := d.Registry.AddYesNo("View/Word Wrap",
		action.WithBoolVar(b.WordWrap),
		action.WithBinding("Alt+Z"),
		action.WithTabTypes(tab.TypeText)); err != nil {
		logger.Warnf("Failed to register 'View/Word Wrap': %v", err)
	}

	if _, err := d.Registry.AddYesNo("View/Highlight Current Line",
		action.WithBoolVar(b.HighlightLine),
		action.WithTabTypes(tab.TypeText)); err != nil {
		logger.Warnf("Failed to register 'View/Highlight Current Line': %v", err)
	}

	if _, err := d.Registry.AddChoice("Edit/Line Ending",
		[]string{"LF", "CRLF"},
		action.WithChoiceVar(b.LineEnding),
		action.WithTabTypes(tab.TypeText)); err != nil {
		logger.Warnf("Failed to register 'Edit/Line Ending': %v", err)
	}

	if _, err := d.Registry.AddChoice("View/Color Theme",
		[]string{"blue", "slate", "mono"},
		action.WithChoiceVar(b.Theme)); err != nil {
		logger.Warnf("Failed to register 'View/Color Theme': %v", err)
	}

	return b
}

func add(d Deps, path string, callback func(), opts ...action.Option) {
	if _, err := d.Registry.AddCommand(path, callback, opts...); err != nil {
		logger.Warnf("Failed to register '%s': %v", path, err)
	}
}
