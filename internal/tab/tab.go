// internal/tab/tab.go

// Package tab tracks the open tabs and which one has focus. Other components
// (most importantly the action registry) only care about the focused tab's
// type tag; they learn about focus changes through the event bus.
package tab

// Type classifies a tab for action enablement purposes.
type Type string

const (
	// TypeNone is the designated tag reported when no tab has focus.
	TypeNone Type = ""

	// TypeText is an editable text document.
	TypeText Type = "text"

	// TypeDirectory is a read-only directory listing.
	TypeDirectory Type = "directory"
)

// Tab is the minimal contract a tab must satisfy.
type Tab interface {
	Type() Type
	Title() string
}

// TextTab is an in-memory text document tab.
type TextTab struct {
	name  string
	lines []string
}

// NewTextTab creates an empty text tab with the given display name.
func NewTextTab(name string) *TextTab {
	return &TextTab{name: name, lines: []string{""}}
}

// Type implements Tab.
func (t *TextTab) Type() Type { return TypeText }

// Title implements Tab.
func (t *TextTab) Title() string { return t.name }

// Lines returns the document content, one entry per line.
func (t *TextTab) Lines() []string { return t.lines }

// Text returns the document content as a single string.
func (t *TextTab) Text() string {
	out := ""
	for i, line := range t.lines {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}

// AppendRune appends r to the last line.
func (t *TextTab) AppendRune(r rune) {
	last := len(t.lines) - 1
	t.lines[last] += string(r)
}

// AppendLine starts a new empty line.
func (t *TextTab) AppendLine() {
	t.lines = append(t.lines, "")
}

// DeleteRune removes the last rune of the last line, joining lines when the
// last line is already empty.
func (t *TextTab) DeleteRune() {
	last := len(t.lines) - 1
	line := []rune(t.lines[last])
	if len(line) > 0 {
		t.lines[last] = string(line[:len(line)-1])
		return
	}
	if last > 0 {
		t.lines = t.lines[:last]
	}
}

// SetText replaces the whole document content.
func (t *TextTab) SetText(text string) {
	t.lines = splitLines(text)
}

func splitLines(text string) []string {
	lines := []string{""}
	for _, r := range text {
		if r == '\n' {
			lines = append(lines, "")
			continue
		}
		lines[len(lines)-1] += string(r)
	}
	return lines
}

// DirTab is a read-only directory listing tab. It exists so the demo app has
// a second tab type to drive enablement transitions with.
type DirTab struct {
	path string
}

// NewDirTab creates a directory tab for path.
func NewDirTab(path string) *DirTab {
	return &DirTab{path: path}
}

// Type implements Tab.
func (d *DirTab) Type() Type { return TypeDirectory }

// Title implements Tab.
func (d *DirTab) Title() string { return d.path }
