package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, d *Dispatcher, descriptor string, inTextArea bool) bool {
	t.Helper()
	chord, err := ParseBinding(descriptor)
	require.NoError(t, err)
	ev := tcell.NewEventKey(chord.Key, chord.Rune, chord.Mod)
	return d.HandleKey(ev, inTextArea)
}

func TestDispatchGlobalScope(t *testing.T) {
	d := NewDispatcher()
	chord, _ := ParseBinding("Ctrl+S")

	fired := 0
	d.Bind(ScopeGlobal, chord, func() bool {
		fired++
		return true
	})

	assert.True(t, press(t, d, "Ctrl+S", false))
	assert.True(t, press(t, d, "Ctrl+S", true)) // global also reachable from text areas
	assert.Equal(t, 2, fired)
}

func TestDispatchUnboundChord(t *testing.T) {
	d := NewDispatcher()
	assert.False(t, press(t, d, "Ctrl+S", false))
}

func TestTextAreaScopeOnlyInsideTextArea(t *testing.T) {
	d := NewDispatcher()
	chord, _ := ParseBinding("Ctrl+W")

	fired := 0
	d.Bind(ScopeTextArea, chord, func() bool {
		fired++
		return true
	})

	assert.False(t, press(t, d, "Ctrl+W", false))
	assert.Equal(t, 0, fired)

	assert.True(t, press(t, d, "Ctrl+W", true))
	assert.Equal(t, 1, fired)
}

func TestLocalFirstPrecedence(t *testing.T) {
	d := NewDispatcher()
	chord, _ := ParseBinding("Ctrl+O")

	var order []string
	d.Bind(ScopeGlobal, chord, func() bool {
		order = append(order, "global")
		return true
	})
	d.Bind(ScopeTextArea, chord, func() bool {
		order = append(order, "local")
		return true
	})

	assert.True(t, press(t, d, "Ctrl+O", true))
	assert.Equal(t, []string{"local"}, order)
}

func TestGlobalFirstPrecedence(t *testing.T) {
	d := NewDispatcher()
	d.SetPrecedence(PrecedenceGlobalFirst)
	chord, _ := ParseBinding("Ctrl+O")

	var order []string
	d.Bind(ScopeGlobal, chord, func() bool {
		order = append(order, "global")
		return true
	})
	d.Bind(ScopeTextArea, chord, func() bool {
		order = append(order, "local")
		return true
	})

	assert.True(t, press(t, d, "Ctrl+O", true))
	assert.Equal(t, []string{"global"}, order)
}

func TestDecliningHandlerLetsNextOneRun(t *testing.T) {
	d := NewDispatcher()
	chord, _ := ParseBinding("Ctrl+S")

	var order []string
	d.Bind(ScopeTextArea, chord, func() bool {
		order = append(order, "declined")
		return false
	})
	d.Bind(ScopeGlobal, chord, func() bool {
		order = append(order, "global")
		return true
	})

	assert.True(t, press(t, d, "Ctrl+S", true))
	assert.Equal(t, []string{"declined", "global"}, order)
}

func TestAllHandlersDeclining(t *testing.T) {
	d := NewDispatcher()
	chord, _ := ParseBinding("Ctrl+S")
	d.Bind(ScopeGlobal, chord, func() bool { return false })

	// Nobody consumed: the event stays available to the caller.
	assert.False(t, press(t, d, "Ctrl+S", false))
}

func TestParsePrecedence(t *testing.T) {
	assert.Equal(t, PrecedenceGlobalFirst, ParsePrecedence("global-first"))
	assert.Equal(t, PrecedenceLocalFirst, ParsePrecedence("local-first"))
	assert.Equal(t, PrecedenceLocalFirst, ParsePrecedence(""))
}
