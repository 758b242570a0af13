// internal/event/event.go
package event

import (
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Action Registry Events
	TypeActionNew      // Fired right after an action is registered
	TypeActionEnabled  // Fired when an action transitions disabled -> enabled
	TypeActionDisabled // Fired when an action transitions enabled -> disabled

	// Tab Events
	TypeTabChanged // Fired whenever the focused tab changes (or goes away)

	// Input Events
	TypeKeyPressed // Raw key press forwarded before dispatch

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// ActionData identifies the action an action-lifecycle event refers to.
// Carried by TypeActionNew, TypeActionEnabled and TypeActionDisabled.
type ActionData struct {
	Path string
}

// TabChangedData describes the newly focused tab. Type is the tab's type
// tag; an empty tag means no tab has focus anymore.
type TabChangedData struct {
	Type  string
	Title string
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
