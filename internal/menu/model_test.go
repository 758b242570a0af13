package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/loom/internal/action"
	"github.com/bethropolis/loom/internal/event"
	"github.com/bethropolis/loom/internal/input"
	"github.com/bethropolis/loom/internal/tab"
)

func setup(t *testing.T) (*Model, *action.Registry, *tab.Manager) {
	t.Helper()
	events := event.NewManager()
	tabs := tab.NewManager(events)
	registry := action.New(action.Config{
		Events: events,
		Tabs:   tabs,
		Keys:   input.NewDispatcher(),
	})
	// Model first, so it sees every registration.
	model := NewModel(registry, events)
	return model, registry, tabs
}

func TestModelMirrorsRegistrations(t *testing.T) {
	model, registry, _ := setup(t)

	_, err := registry.AddCommand("File/Save", func() {}, action.WithBinding("Ctrl+S"))
	require.NoError(t, err)
	_, err = registry.AddCommand("File/Quit", func() {})
	require.NoError(t, err)
	_, err = registry.AddYesNo("View/Word Wrap", action.WithDefaultBool(true))
	require.NoError(t, err)

	top := model.Top()
	require.Len(t, top, 2)
	assert.Equal(t, "File", top[0].Label)
	assert.Equal(t, "View", top[1].Label)

	file := top[0]
	require.Len(t, file.Children, 2)
	assert.Equal(t, "Save", file.Children[0].Label)
	assert.Equal(t, "Ctrl+S", file.Children[0].Binding)
	assert.Equal(t, action.KindCommand, file.Children[0].Kind)
	assert.Equal(t, "Quit", file.Children[1].Label)

	wrap := model.Lookup("View/Word Wrap")
	require.NotNil(t, wrap)
	assert.Equal(t, action.KindYesNo, wrap.Kind)
	assert.True(t, wrap.Enabled)
}

func TestModelTracksEnablementFromEvents(t *testing.T) {
	model, registry, tabs := setup(t)
	tabs.Append(tab.NewTextTab("a.txt"))

	_, err := registry.AddCommand("File/Save", func() {}, action.WithTabTypes(tab.TypeText))
	require.NoError(t, err)
	assert.True(t, model.Lookup("File/Save").Enabled)

	tabs.Append(tab.NewDirTab("/tmp"))
	assert.False(t, model.Lookup("File/Save").Enabled)

	tabs.Focus(0)
	assert.True(t, model.Lookup("File/Save").Enabled)
}

func TestModelInitialDisableArrivesAfterInsert(t *testing.T) {
	model, registry, _ := setup(t)

	// No tab focused: the registry disables right after announcing.
	_, err := registry.AddCommand("File/Save", func() {}, action.WithTabTypes(tab.TypeText))
	require.NoError(t, err)

	item := model.Lookup("File/Save")
	require.NotNil(t, item)
	assert.False(t, item.Enabled)
}

func TestWalkVisitsLeavesInOrder(t *testing.T) {
	model, registry, _ := setup(t)

	for _, path := range []string{"File/New", "File/Save", "Edit/Copy"} {
		_, err := registry.AddCommand(path, func() {})
		require.NoError(t, err)
	}

	var paths []string
	model.Walk(func(item *Item) { paths = append(paths, item.Path) })
	assert.Equal(t, []string{"File/New", "File/Save", "Edit/Copy"}, paths)
}
