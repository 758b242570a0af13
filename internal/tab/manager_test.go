package tab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/loom/internal/event"
)

func newManagerWithLog() (*Manager, *[]event.TabChangedData) {
	events := event.NewManager()
	var log []event.TabChangedData
	events.Subscribe(event.TypeTabChanged, func(e event.Event) bool {
		log = append(log, e.Data.(event.TabChangedData))
		return false
	})
	return NewManager(events), &log
}

func TestAppendFocusesNewTab(t *testing.T) {
	m, log := newManagerWithLog()

	m.Append(NewTextTab("a.txt"))
	assert.Equal(t, TypeText, m.FocusedType())
	assert.Equal(t, "a.txt", m.Focused().Title())

	m.Append(NewDirTab("/tmp"))
	assert.Equal(t, TypeDirectory, m.FocusedType())

	assert.Len(t, *log, 2)
	assert.Equal(t, "text", (*log)[0].Type)
	assert.Equal(t, "directory", (*log)[1].Type)
}

func TestFocusedTypeWithNoTabs(t *testing.T) {
	m, _ := newManagerWithLog()
	assert.Nil(t, m.Focused())
	assert.Equal(t, TypeNone, m.FocusedType())
}

func TestFocusNextCycles(t *testing.T) {
	m, _ := newManagerWithLog()
	m.Append(NewTextTab("a.txt"))
	m.Append(NewTextTab("b.txt"))

	assert.Equal(t, "b.txt", m.Focused().Title())
	m.FocusNext()
	assert.Equal(t, "a.txt", m.Focused().Title())
	m.FocusNext()
	assert.Equal(t, "b.txt", m.Focused().Title())
}

func TestCloseFocused(t *testing.T) {
	m, log := newManagerWithLog()
	m.Append(NewTextTab("a.txt"))
	m.Append(NewDirTab("/tmp"))

	m.CloseFocused()
	assert.Equal(t, TypeText, m.FocusedType())

	m.CloseFocused()
	assert.Equal(t, TypeNone, m.FocusedType())
	assert.Nil(t, m.Focused())

	// Last change event reports the empty tag.
	last := (*log)[len(*log)-1]
	assert.Equal(t, "", last.Type)
}

func TestTextTabEditing(t *testing.T) {
	tab := NewTextTab("a.txt")
	tab.AppendRune('h')
	tab.AppendRune('i')
	tab.AppendLine()
	tab.AppendRune('!')
	assert.Equal(t, "hi\n!", tab.Text())

	tab.DeleteRune()
	assert.Equal(t, "hi\n", tab.Text())
	tab.DeleteRune()
	assert.Equal(t, "hi", tab.Text())

	tab.SetText("one\ntwo")
	assert.Equal(t, []string{"one", "two"}, tab.Lines())
}
