package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBinding(t *testing.T) {
	cases := []struct {
		descriptor string
		want       Chord
	}{
		{"Ctrl+S", Chord{Key: tcell.KeyCtrlS, Mod: tcell.ModCtrl}},
		{"ctrl+s", Chord{Key: tcell.KeyCtrlS, Mod: tcell.ModCtrl}},
		{"Alt+Enter", Chord{Key: tcell.KeyEnter, Mod: tcell.ModAlt}},
		{"F5", Chord{Key: tcell.KeyF5}},
		{"Esc", Chord{Key: tcell.KeyEscape}},
		{"Ctrl+Shift+P", Chord{Key: tcell.KeyCtrlP, Mod: tcell.ModCtrl | tcell.ModShift}},
		{"Alt+x", Chord{Key: tcell.KeyRune, Mod: tcell.ModAlt, Rune: 'x'}},
		{"Ctrl++", Chord{Key: tcell.KeyRune, Mod: tcell.ModCtrl, Rune: '+'}},
		{"PageDown", Chord{Key: tcell.KeyPgDn}},
	}
	for _, tc := range cases {
		got, err := ParseBinding(tc.descriptor)
		require.NoError(t, err, tc.descriptor)
		assert.Equal(t, tc.want, got, tc.descriptor)
	}
}

func TestParseBindingErrors(t *testing.T) {
	for _, descriptor := range []string{"", "Ctrl+", "Bogus", "Ctrl+Bogus", "Meta+X", "Ctrl++X"} {
		_, err := ParseBinding(descriptor)
		assert.Error(t, err, "descriptor %q", descriptor)
	}
}

func TestChordFromEventNormalizesCtrlKeys(t *testing.T) {
	// Terminals report Ctrl+S as a control key, sometimes with a rune attached.
	ev := tcell.NewEventKey(tcell.KeyCtrlS, 's', tcell.ModCtrl)
	assert.Equal(t, Chord{Key: tcell.KeyCtrlS, Mod: tcell.ModCtrl}, ChordFromEvent(ev))

	// Shift on a printable rune is already baked into the rune.
	ev = tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift)
	assert.Equal(t, Chord{Key: tcell.KeyRune, Rune: 'X'}, ChordFromEvent(ev))
}

func TestChordString(t *testing.T) {
	chord, err := ParseBinding("Ctrl+S")
	require.NoError(t, err)
	assert.Equal(t, "Ctrl+S", chord.String())

	chord, err = ParseBinding("Alt+Enter")
	require.NoError(t, err)
	assert.Equal(t, "Alt+Enter", chord.String())
}
