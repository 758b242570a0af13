// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleMessage   tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	tabTitle string
	tabType  string

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
	}
}

// SetTabInfo updates the focused tab shown in the status bar.
func (sb *StatusBar) SetTabInfo(title, tabType string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tabTitle = title
	sb.tabType = tabType
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// Draw renders the status bar on the given row of the screen.
func (sb *StatusBar) Draw(screen tcell.Screen, width, y int) {
	sb.mu.RLock()
	text := sb.tempMessage
	style := sb.config.StyleMessage
	if text == "" || time.Since(sb.tempMessageTime) > sb.config.MessageTimeout {
		title := sb.tabTitle
		if title == "" {
			title = "[no tab]"
		}
		text = fmt.Sprintf(" %s  (%s)", title, sb.tabType)
		style = sb.config.StyleDefault
	}
	sb.mu.RUnlock()

	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += uniseg.StringWidth(string(r))
	}
	for ; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
