package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/multitab/internal/content"
	"github.com/bethropolis/multitab/internal/highlighter"
	"github.com/bethropolis/multitab/internal/input"
	"github.com/bethropolis/multitab/internal/session"
	"github.com/bethropolis/multitab/internal/statusbar"
	"github.com/bethropolis/multitab/internal/theme"
	"github.com/bethropolis/multitab/internal/types"
)

func newTestRenderer(t *testing.T, width, height int) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	tuiManager, err := NewWithScreen(screen)
	require.NoError(t, err)
	t.Cleanup(tuiManager.Close)
	screen.SetSize(width, height)
	return NewRenderer(tuiManager, highlighter.New(), 3, "go"), screen
}

func newFrame(t *testing.T, s *session.Session) Frame {
	t.Helper()
	themes := theme.NewManager(t.TempDir())
	status := statusbar.New(statusbar.DefaultConfig())
	status.SetFileInfo(s.Current().Path)
	return Frame{Session: s, Theme: themes.Current(), Syntax: themes.SyntaxTheme(), Status: status}
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteString(string(runes))
	}
	return sb.String()
}

func TestDrawLayout(t *testing.T) {
	r, screen := newTestRenderer(t, 100, 12)
	s := session.New(nil)
	s.Open("/w/main.go", "package main\n\nfunc main() {}\n")

	r.Draw(newFrame(t, s))

	assert.Contains(t, rowText(screen, 0), "New ^N")
	tabs := rowText(screen, 1)
	assert.Contains(t, tabs, "New file")
	assert.Contains(t, tabs, "main.go")
	assert.Contains(t, rowText(screen, 2), "1 package main")
	assert.Contains(t, rowText(screen, 4), "3 func main() {}")
	assert.Contains(t, rowText(screen, 11), "/w/main.go")
	assert.Contains(t, rowText(screen, 11), "1:1")

	x, y, visible := screen.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 2, x, "the cursor sits after the gutter")
	assert.Equal(t, 2, y)
}

func TestModifiedTabTitle(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 10)
	s := session.New(session.Sample())

	r.Draw(newFrame(t, s))

	assert.Contains(t, rowText(screen, 1), "New file*")
}

func TestHitTestTabsAndMenu(t *testing.T) {
	r, screen := newTestRenderer(t, 100, 12)
	s := session.New(nil)
	s.Open("/w/a.go", "a")
	r.Draw(newFrame(t, s))

	tabs := rowText(screen, 1)
	i := strings.Index(tabs, "a.go")
	require.GreaterOrEqual(t, i, 0)
	x := len([]rune(tabs[:i]))
	hit := r.HitTest(x, 1)
	assert.Equal(t, HitTab, hit.Kind)
	assert.Equal(t, 1, hit.Index)

	closeX := x + len("a.go ")
	hit = r.HitTest(closeX, 1)
	assert.Equal(t, HitTabClose, hit.Kind)
	assert.Equal(t, 1, hit.Index)

	menu := rowText(screen, 0)
	hit = r.HitTest(strings.Index(menu, "Open"), 0)
	assert.Equal(t, HitMenu, hit.Kind)
	assert.Equal(t, input.ActionOpen, hit.Action)
}

func TestHitTestEditor(t *testing.T) {
	r, _ := newTestRenderer(t, 40, 10)
	s := session.New(nil)
	s.Open("/w/a.txt", "a世b\nsecond")
	r.Draw(newFrame(t, s))

	hit := r.HitTest(2+3, 2)
	assert.Equal(t, HitEditor, hit.Kind)
	assert.Equal(t, types.Position{Line: 0, Col: 2}, hit.Pos)

	hit = r.HitTest(30, 8)
	assert.Equal(t, HitEditor, hit.Kind)
	assert.Equal(t, types.Position{Line: 1, Col: 6}, hit.Pos, "clicks below the text land on the last line")

	assert.Equal(t, HitNone, r.HitTest(0, 2).Kind, "the gutter is not clickable")
}

func TestEditorFollowsCursor(t *testing.T) {
	r, screen := newTestRenderer(t, 40, 10)
	s := session.New(nil)
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "line"
	}
	s.Open("/w/a.txt", strings.Join(lines, "\n"))
	for i := 0; i < 30; i++ {
		s.Edit(content.Move(content.MotionDown))
	}

	r.Draw(newFrame(t, s))

	_, y, visible := screen.GetCursor()
	assert.True(t, visible)
	editorRows := r.EditorHeight()
	assert.Equal(t, 7, editorRows)
	assert.Equal(t, 2+editorRows-1-3, y, "scroll_off keeps three lines below the cursor")
	assert.Contains(t, rowText(screen, y), "31 line")
}

func TestSettingsOverlay(t *testing.T) {
	r, screen := newTestRenderer(t, 100, 40)
	s := session.New(nil)
	f := newFrame(t, s)
	f.Overlay = OverlaySettings
	f.Focus = 1
	f.Cursor = [2]int{0, 2}

	r.Draw(f)

	var found bool
	for y := 0; y < 40; y++ {
		row := rowText(screen, y)
		if strings.Contains(row, theme.AllUIThemes()[0].String()) && strings.Contains(row, theme.AllSyntaxThemes()[0].String()) {
			found = true
			x := strings.Index(row, theme.AllSyntaxThemes()[0].String())
			hit := r.HitTest(len([]rune(row[:x])), y)
			assert.Equal(t, HitModalItem, hit.Kind)
			assert.Equal(t, 1, hit.List)
			assert.Equal(t, 0, hit.Index)
		}
	}
	assert.True(t, found, "both lists are drawn side by side")

	assert.Equal(t, HitNone, r.HitTest(0, 1).Kind, "tabs are blocked while a modal is shown")
	_, _, visible := screen.GetCursor()
	assert.False(t, visible)
}

func TestAboutOverlay(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 20)
	f := newFrame(t, session.New(nil))
	f.Overlay = OverlayAbout

	r.Draw(f)

	var text strings.Builder
	for y := 0; y < 20; y++ {
		text.WriteString(rowText(screen, y))
	}
	assert.Contains(t, text.String(), "About")
	assert.Contains(t, text.String(), "github.com/bethropolis/multitab")
}

func TestViewportFollow(t *testing.T) {
	v := viewport{}
	v.follow(0, 0, 100, 10, 20, 3)
	assert.Equal(t, viewport{}, v)

	v.follow(9, 0, 100, 10, 20, 3)
	assert.Equal(t, 3, v.top)

	v.follow(99, 0, 100, 10, 20, 3)
	assert.Equal(t, 90, v.top, "never scrolls past the last line")

	v.follow(91, 0, 100, 10, 20, 3)
	assert.Equal(t, 88, v.top)

	v.follow(88, 25, 100, 10, 20, 3)
	assert.Equal(t, 6, v.left)
	v.follow(88, 2, 100, 10, 20, 3)
	assert.Equal(t, 2, v.left)
}

func TestVisualColumns(t *testing.T) {
	line := []byte("a世b")
	assert.Equal(t, 0, visualColumn(line, 0))
	assert.Equal(t, 3, visualColumn(line, 2))
	assert.Equal(t, 4, visualColumn(line, 3))

	assert.Equal(t, 1, runeIndexAt(line, 1))
	assert.Equal(t, 1, runeIndexAt(line, 2), "both cells of a wide cluster map to it")
	assert.Equal(t, 2, runeIndexAt(line, 3))
	assert.Equal(t, 3, runeIndexAt(line, 10))
}
