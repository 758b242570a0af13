// internal/tab/manager.go
package tab

import (
	"github.com/bethropolis/loom/internal/event"
	"github.com/bethropolis/loom/internal/logger"
)

// Manager owns the ordered tab list and the focus index. Every focus change
// is announced as TypeTabChanged so subscribers (action enablement, status
// bar) never need to poll.
type Manager struct {
	events  *event.Manager
	tabs    []Tab
	focused int // index into tabs, -1 when nothing has focus
}

// NewManager creates a tab manager dispatching on events.
func NewManager(events *event.Manager) *Manager {
	if events == nil {
		panic("tab.NewManager: event manager is required")
	}
	return &Manager{
		events:  events,
		focused: -1,
	}
}

// Append adds t at the end of the tab list and focuses it.
func (m *Manager) Append(t Tab) {
	m.tabs = append(m.tabs, t)
	m.Focus(len(m.tabs) - 1)
}

// Focus moves focus to the tab at index i. Out-of-range indices clear focus.
func (m *Manager) Focus(i int) {
	if i < 0 || i >= len(m.tabs) {
		i = -1
	}
	m.focused = i
	m.dispatchChanged()
}

// FocusNext cycles focus to the next tab.
func (m *Manager) FocusNext() {
	if len(m.tabs) == 0 {
		return
	}
	m.Focus((m.focused + 1) % len(m.tabs))
}

// CloseFocused removes the focused tab. Focus moves to the previous tab, or
// away entirely when the last tab closes.
func (m *Manager) CloseFocused() {
	if m.focused < 0 {
		return
	}
	logger.Debugf("Tab Manager: closing tab %q", m.tabs[m.focused].Title())
	m.tabs = append(m.tabs[:m.focused], m.tabs[m.focused+1:]...)
	next := m.focused - 1
	if next < 0 && len(m.tabs) > 0 {
		next = 0
	}
	m.Focus(next)
}

// Focused returns the focused tab, or nil when no tab has focus.
func (m *Manager) Focused() Tab {
	if m.focused < 0 {
		return nil
	}
	return m.tabs[m.focused]
}

// FocusedType returns the focused tab's type tag, TypeNone when no tab has focus.
func (m *Manager) FocusedType() Type {
	t := m.Focused()
	if t == nil {
		return TypeNone
	}
	return t.Type()
}

// Tabs returns the tab list in display order.
func (m *Manager) Tabs() []Tab {
	return m.tabs
}

func (m *Manager) dispatchChanged() {
	data := event.TabChangedData{}
	if t := m.Focused(); t != nil {
		data.Type = string(t.Type())
		data.Title = t.Title()
	}
	m.events.Dispatch(event.TypeTabChanged, data)
}
