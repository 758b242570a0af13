// internal/menu/model.go

// Package menu maintains a menu tree that mirrors the action registry
// purely from its notifications. Nothing here polls registry state after
// insertion: enabled flags are maintained from event replay alone, which is
// the contract the registry's transition-only events exist to support.
package menu

import (
	"strings"

	"github.com/bethropolis/loom/internal/action"
	"github.com/bethropolis/loom/internal/event"
	"github.com/bethropolis/loom/internal/logger"
)

// Item is one entry in the menu tree. Submenus have children and no action
// path; leaves carry the registered action's path, kind and binding.
type Item struct {
	Label    string
	Path     string
	Kind     action.Kind
	Binding  string
	Enabled  bool
	Children []*Item
}

// submenu reports whether the item is a non-leaf node.
func (i *Item) submenu() bool { return i.Path == "" }

// Model is the event-driven mirror of the registry.
type Model struct {
	registry *action.Registry
	root     *Item
	byPath   map[string]*Item
}

// NewModel creates a menu model and subscribes it to the registry's
// lifecycle events. Actions registered before the model existed are not
// picked up; create the model before registering actions.
func NewModel(registry *action.Registry, events *event.Manager) *Model {
	m := &Model{
		registry: registry,
		root:     &Item{},
		byPath:   make(map[string]*Item),
	}

	events.Subscribe(event.TypeActionNew, func(e event.Event) bool {
		m.insert(e.Data.(event.ActionData).Path)
		return false
	})
	events.Subscribe(event.TypeActionEnabled, func(e event.Event) bool {
		m.setEnabled(e.Data.(event.ActionData).Path, true)
		return false
	})
	events.Subscribe(event.TypeActionDisabled, func(e event.Event) bool {
		m.setEnabled(e.Data.(event.ActionData).Path, false)
		return false
	})

	return m
}

func (m *Model) insert(path string) {
	a, err := m.registry.Get(path)
	if err != nil {
		logger.Warnf("menu: new-action event for unknown path %q", path)
		return
	}

	segments := strings.Split(path, "/")
	node := m.root
	for _, segment := range segments[:len(segments)-1] {
		node = node.child(segment)
	}

	leaf := &Item{
		Label:   segments[len(segments)-1],
		Path:    path,
		Kind:    a.Kind(),
		Binding: a.Binding(),
		Enabled: true, // actions start enabled; a disable event may follow
	}
	node.Children = append(node.Children, leaf)
	m.byPath[path] = leaf
}

// child finds or creates the submenu with the given label.
func (i *Item) child(label string) *Item {
	for _, c := range i.Children {
		if c.submenu() && c.Label == label {
			return c
		}
	}
	c := &Item{Label: label}
	i.Children = append(i.Children, c)
	return c
}

func (m *Model) setEnabled(path string, enabled bool) {
	if item, ok := m.byPath[path]; ok {
		item.Enabled = enabled
	}
}

// Top returns the top-level menus in insertion order.
func (m *Model) Top() []*Item {
	return m.root.Children
}

// Lookup returns the leaf item for an action path, nil when absent.
func (m *Model) Lookup(path string) *Item {
	return m.byPath[path]
}

// Walk visits every leaf item depth-first, menus in insertion order.
func (m *Model) Walk(visit func(item *Item)) {
	var rec func(*Item)
	rec = func(node *Item) {
		for _, c := range node.Children {
			if c.submenu() {
				rec(c)
				continue
			}
			visit(c)
		}
	}
	rec(m.root)
}
