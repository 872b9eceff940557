// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation

	"github.com/bethropolis/multitab/internal/types"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleError     tcell.Style // Style for the last I/O failure
	StyleMessage   tcell.Style // Style for temporary messages
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleError:     tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar is the single status line under the editor.
type StatusBar struct {
	mu     sync.RWMutex
	config Config
	now    func() time.Time

	filePath  string
	cursorPos types.Position
	errorText string // last I/O failure, replaces the path while set

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetStyles replaces the colours, keeping the timeout.
func (sb *StatusBar) SetStyles(def, errStyle, message tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config.StyleDefault = def
	sb.config.StyleError = errStyle
	sb.config.StyleMessage = message
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetError shows text in place of the path; an empty text clears it.
func (sb *StatusBar) SetError(text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.errorText = text
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Text returns the left and right parts of the line and the style to draw them with.
func (sb *StatusBar) Text() (left, right string, style tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	right = fmt.Sprintf("%d:%d", sb.cursorPos.Line+1, sb.cursorPos.Col+1)

	active := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	switch {
	case sb.errorText != "":
		return sb.errorText, right, sb.config.StyleError
	case active:
		return sb.tempMessage, right, sb.config.StyleMessage
	case sb.filePath != "":
		return sb.filePath, right, sb.config.StyleDefault
	default:
		return "New file", right, sb.config.StyleDefault
	}
}

// Draw renders the status bar on row y using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, y, width int) {
	if width <= 0 {
		return
	}
	left, right, style := sb.Text()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	rightWidth := uniseg.StringWidth(right)
	rightX := width - rightWidth - 1
	limit := width
	if rightX > 0 {
		limit = rightX - 1
		drawText(screen, rightX, y, width, right, style)
	}
	drawText(screen, 1, y, limit, left, style)
}

// drawText draws text from x up to (not including) column limit, by grapheme cluster.
func drawText(screen tcell.Screen, x, y, limit int, text string, style tcell.Style) {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if x+clusterWidth > limit {
			break // Stop if cluster doesn't fit
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += clusterWidth
	}
}
