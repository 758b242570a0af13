// internal/input/binding.go

// Package input turns textual shortcut descriptors into key chords and
// routes incoming key events to bound handlers across two scopes.
package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Chord is a normalized key combination usable as a map key.
type Chord struct {
	Key  tcell.Key
	Mod  tcell.ModMask
	Rune rune
}

// specialKeys maps descriptor key names to tcell keys.
var specialKeys = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pageup":    tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"pagedown":  tcell.KeyPgDn,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"f5":        tcell.KeyF5,
	"f6":        tcell.KeyF6,
	"f7":        tcell.KeyF7,
	"f8":        tcell.KeyF8,
	"f9":        tcell.KeyF9,
	"f10":       tcell.KeyF10,
	"f11":       tcell.KeyF11,
	"f12":       tcell.KeyF12,
}

// ParseBinding parses a shortcut descriptor like "Ctrl+S", "Alt+Enter" or
// "F5" into a Chord. Descriptors are case-insensitive; modifiers are joined
// with '+'. Returns an error for empty, unknown or ambiguous descriptors.
func ParseBinding(descriptor string) (Chord, error) {
	if strings.TrimSpace(descriptor) == "" {
		return Chord{}, fmt.Errorf("invalid binding %q: empty descriptor", descriptor)
	}

	parts := strings.Split(descriptor, "+")
	keyName := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]
	if keyName == "" {
		// "Ctrl++" splits into a trailing pair of empties: the key is '+'.
		if len(parts) >= 2 && parts[len(parts)-2] == "" {
			keyName = "+"
			modParts = parts[:len(parts)-2]
		} else {
			return Chord{}, fmt.Errorf("invalid binding %q: no key", descriptor)
		}
	}

	var mod tcell.ModMask
	for _, part := range modParts {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "ctrl", "control":
			mod |= tcell.ModCtrl
		case "alt":
			mod |= tcell.ModAlt
		case "shift":
			mod |= tcell.ModShift
		default:
			return Chord{}, fmt.Errorf("invalid binding %q: unknown modifier %q", descriptor, part)
		}
	}

	keyName = strings.ToLower(strings.TrimSpace(keyName))

	if key, ok := specialKeys[keyName]; ok {
		return Chord{Key: key, Mod: mod}, nil
	}

	runes := []rune(keyName)
	if len(runes) != 1 {
		return Chord{}, fmt.Errorf("invalid binding %q: unknown key %q", descriptor, keyName)
	}
	r := runes[0]

	// Ctrl+letter arrives from the terminal as a control key, not a rune.
	if mod&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
		key := tcell.KeyCtrlA + tcell.Key(r-'a')
		return Chord{Key: key, Mod: mod}, nil
	}

	return Chord{Key: tcell.KeyRune, Mod: mod, Rune: r}, nil
}

// ChordFromEvent normalizes a tcell key event into the same Chord form
// ParseBinding produces, so lookups match regardless of how the terminal
// reported the key.
func ChordFromEvent(ev *tcell.EventKey) Chord {
	key := ev.Key()
	mod := ev.Modifiers()
	r := ev.Rune()

	switch key {
	case tcell.KeyBackspace, tcell.KeyTab, tcell.KeyEnter:
		// Numeric aliases of Ctrl+H/I/M that terminals send for the plain
		// keys; trust the reported modifiers for these.
	default:
		if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
			mod |= tcell.ModCtrl
			r = 0
		}
	}
	if key != tcell.KeyRune {
		r = 0
	}
	// Shift is already baked into the rune for printable keys.
	if key == tcell.KeyRune {
		mod &^= tcell.ModShift
	}

	return Chord{Key: key, Mod: mod, Rune: r}
}

// String renders the chord in descriptor form, for logs and the menu model.
func (c Chord) String() string {
	var parts []string
	if c.Mod&tcell.ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if c.Mod&tcell.ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if c.Mod&tcell.ModShift != 0 {
		parts = append(parts, "Shift")
	}
	switch {
	case c.Key == tcell.KeyRune:
		parts = append(parts, strings.ToUpper(string(c.Rune)))
	case c.Key == tcell.KeyEnter, c.Key == tcell.KeyTab, c.Key == tcell.KeyBackspace:
		// Aliases of Ctrl+M/I/H; show the plain key name.
		parts = append(parts, keyName(c.Key))
	case c.Key >= tcell.KeyCtrlA && c.Key <= tcell.KeyCtrlZ:
		parts = append(parts, string(rune('A'+c.Key-tcell.KeyCtrlA)))
	default:
		parts = append(parts, keyName(c.Key))
	}
	return strings.Join(parts, "+")
}

func keyName(key tcell.Key) string {
	shortest := ""
	for n, k := range specialKeys {
		if k != key {
			continue
		}
		if shortest == "" || len(n) < len(shortest) {
			shortest = n
		}
	}
	if shortest == "" {
		return "?"
	}
	return strings.ToUpper(shortest[:1]) + shortest[1:]
}
