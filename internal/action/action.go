// internal/action/action.go

// Package action implements the editor's action registry: the catalog of
// named, user-invokable operations addressed by hierarchical path, with
// optional keyboard bindings, optional observable state and automatic
// enablement driven by the focused tab's type.
package action

import (
	"fmt"

	"github.com/bethropolis/loom/internal/event"
	"github.com/bethropolis/loom/internal/observe"
)

// Kind discriminates the three action variants.
type Kind int

const (
	// KindCommand runs a callback when invoked.
	KindCommand Kind = iota
	// KindYesNo toggles a shared boolean cell.
	KindYesNo
	// KindChoice selects one value from a fixed list into a shared cell.
	KindChoice
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindYesNo:
		return "yesno"
	case KindChoice:
		return "choice"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Action is a registered unit of editor functionality. Exactly one payload
// group is populated, selected by the kind; accessors for the wrong kind
// panic, since that is a caller bug, not a runtime condition.
type Action struct {
	path    string
	kind    Kind
	binding string
	enabled bool

	events *event.Manager

	callback  func()               // KindCommand
	boolVar   *observe.Var[bool]   // KindYesNo
	choiceVar *observe.Var[string] // KindChoice
	choices   []string             // KindChoice
}

// Path returns the action's unique hierarchical path.
func (a *Action) Path() string { return a.path }

// Kind returns the action's variant tag.
func (a *Action) Kind() Kind { return a.kind }

// Binding returns the shortcut descriptor, empty when the action has none.
func (a *Action) Binding() string { return a.binding }

// Enabled reports whether the action may currently be invoked.
func (a *Action) Enabled() bool { return a.enabled }

// SetEnabled sets the enabled flag. Writing the current value is observably
// a no-op; an actual transition dispatches exactly one TypeActionEnabled or
// TypeActionDisabled event carrying the path. Menu renderers rely on this to
// mirror state from event replay alone.
func (a *Action) SetEnabled(enabled bool) {
	if a.enabled == enabled {
		return
	}
	a.enabled = enabled
	eventType := event.TypeActionDisabled
	if enabled {
		eventType = event.TypeActionEnabled
	}
	a.events.Dispatch(eventType, event.ActionData{Path: a.path})
}

// Callback returns the command callback. Panics on non-Command actions.
func (a *Action) Callback() func() {
	if a.kind != KindCommand {
		panic(fmt.Sprintf("action %q: Callback on %s action", a.path, a.kind))
	}
	return a.callback
}

// BoolVar returns the shared boolean cell. Panics on non-YesNo actions.
func (a *Action) BoolVar() *observe.Var[bool] {
	if a.kind != KindYesNo {
		panic(fmt.Sprintf("action %q: BoolVar on %s action", a.path, a.kind))
	}
	return a.boolVar
}

// ChoiceVar returns the shared selection cell. Panics on non-Choice actions.
func (a *Action) ChoiceVar() *observe.Var[string] {
	if a.kind != KindChoice {
		panic(fmt.Sprintf("action %q: ChoiceVar on %s action", a.path, a.kind))
	}
	return a.choiceVar
}

// Choices returns the declared choice list. Panics on non-Choice actions.
func (a *Action) Choices() []string {
	if a.kind != KindChoice {
		panic(fmt.Sprintf("action %q: Choices on %s action", a.path, a.kind))
	}
	return a.choices
}

// Invoke performs the action's kind-specific effect: run the callback for a
// command, flip the cell for a toggle. Choice actions have no single effect
// to invoke. Enablement is not checked here; dispatch does that.
func (a *Action) Invoke() {
	switch a.kind {
	case KindCommand:
		a.callback()
	case KindYesNo:
		a.boolVar.Set(!a.boolVar.Get())
	default:
		panic(fmt.Sprintf("action %q: Invoke on %s action", a.path, a.kind))
	}
}
