// internal/app/ui.go
package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/loom/internal/config"
	"github.com/bethropolis/loom/internal/tab"
)

// contentStyle maps the View/Color Theme selection to a drawing style. An
// out-of-choices value (possible, since the cell is shared and writes are
// only reported) falls back to the default.
func (a *App) contentStyle() tcell.Style {
	switch a.builtins.Theme.Get() {
	case "slate":
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	case "mono":
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	default:
		return tcell.StyleDefault
	}
}

func (a *App) draw() {
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	a.tuiManager.Clear()

	a.drawMenuBar(screen, width)

	contentTop := 1
	contentHeight := height - contentTop - config.StatusBarHeight
	if contentHeight > 0 {
		a.drawContent(screen, width, contentTop, contentHeight)
	}

	a.statusBar.Draw(screen, width, height-config.StatusBarHeight)
	a.tuiManager.Show()
}

// drawMenuBar renders the top-level menu labels, dimming a menu when every
// action under it is disabled.
func (a *App) drawMenuBar(screen tcell.Screen, width int) {
	barStyle := tcell.StyleDefault.Reverse(true)
	dimStyle := barStyle.Dim(true)

	x := 0
	for _, item := range a.menuModel.Top() {
		style := dimStyle
		for _, child := range item.Children {
			if child.Enabled {
				style = barStyle
				break
			}
		}
		x = drawText(screen, x, 0, width, " "+item.Label+" ", style)
	}
	for ; x < width; x++ {
		screen.SetContent(x, 0, ' ', nil, barStyle)
	}
}

func (a *App) drawContent(screen tcell.Screen, width, top, height int) {
	textTab, ok := a.tabManager.Focused().(*tab.TextTab)
	if !ok {
		return
	}

	baseStyle := a.contentStyle()
	wrap := a.builtins.WordWrap.Get()
	highlight := a.builtins.HighlightLine.Get()
	lines := textTab.Lines()

	y := top
	for i, line := range lines {
		if y >= top+height {
			break
		}
		style := baseStyle
		// The cursor always sits on the last line in this simple editor.
		if highlight && i == len(lines)-1 {
			style = baseStyle.Underline(true)
		}
		if !wrap {
			drawText(screen, 0, y, width, line, style)
			y++
			continue
		}
		for {
			n := fitWidth(line, width)
			drawText(screen, 0, y, width, line[:n], style)
			y++
			line = line[n:]
			if line == "" || y >= top+height {
				break
			}
		}
	}
}

// drawText draws s starting at (x, y), clipped to maxWidth columns, and
// returns the x position after the text.
func drawText(screen tcell.Screen, x, y, maxWidth int, s string, style tcell.Style) int {
	for _, r := range s {
		w := uniseg.StringWidth(string(r))
		if x+w > maxWidth {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// fitWidth returns the byte length of the longest prefix of s that fits in
// width columns. Always consumes at least one rune so wrapping advances.
func fitWidth(s string, width int) int {
	cols := 0
	for i, r := range s {
		w := uniseg.StringWidth(string(r))
		if cols+w > width && i > 0 {
			return i
		}
		cols += w
	}
	return len(s)
}
