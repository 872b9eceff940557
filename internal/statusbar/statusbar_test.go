package statusbar

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/multitab/internal/types"
)

func TestTextPrecedence(t *testing.T) {
	sb := New(DefaultConfig())
	now := time.Unix(1000, 0)
	sb.now = func() time.Time { return now }

	left, right, _ := sb.Text()
	assert.Equal(t, "New file", left)
	assert.Equal(t, "1:1", right)

	sb.SetFileInfo("/tmp/a.go")
	sb.SetCursorInfo(types.Position{Line: 4, Col: 2})
	left, right, _ = sb.Text()
	assert.Equal(t, "/tmp/a.go", left)
	assert.Equal(t, "5:3", right)

	sb.SetTemporaryMessage("%s changed on disk", "a.go")
	left, _, style := sb.Text()
	assert.Equal(t, "a.go changed on disk", left)
	assert.Equal(t, DefaultConfig().StyleMessage, style)

	sb.SetError("I/O error: not found")
	left, _, style = sb.Text()
	assert.Equal(t, "I/O error: not found", left)
	assert.Equal(t, DefaultConfig().StyleError, style)

	sb.SetError("")
	now = now.Add(5 * time.Second)
	left, _, _ = sb.Text()
	assert.Equal(t, "/tmp/a.go", left, "message expired")
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(30, 2)

	sb := New(DefaultConfig())
	sb.SetFileInfo("notes.txt")
	sb.SetCursorInfo(types.Position{Line: 11, Col: 0})
	sb.Draw(screen, 1, 30)
	screen.Show()

	cells, w, _ := screen.GetContents()
	row := make([]rune, w)
	for x := 0; x < w; x++ {
		row[x] = cells[w+x].Runes[0]
	}
	line := string(row)
	assert.Contains(t, line, " notes.txt")
	assert.Contains(t, line, "12:1 ")
}
