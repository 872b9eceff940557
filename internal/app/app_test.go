package app

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/multitab/internal/config"
	"github.com/bethropolis/multitab/internal/theme"
)

func newTestApp(t *testing.T, dir string) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	cfg := config.NewDefaultConfig()
	cfg.Editor.WatchFiles = false
	cfg.Editor.SystemClipboard = false

	a, err := NewApp(Options{Config: cfg, Paths: config.PathsIn(dir), Screen: screen})
	require.NoError(t, err)
	screen.SetSize(80, 24)
	return a, screen
}

func runUntilDone(t *testing.T, a *App, ctx context.Context) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestRunAppliesKeysUntilQuit(t *testing.T) {
	a, screen := newTestApp(t, t.TempDir())

	screen.InjectKey(tcell.KeyCtrlN, 0, tcell.ModCtrl)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	runUntilDone(t, a, context.Background())

	s := a.Dispatcher().Session()
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "x", s.Current().Text())
	assert.True(t, s.Current().Modified)
}

func TestRunStopsWhenContextEnds(t *testing.T) {
	a, _ := newTestApp(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runUntilDone(t, a, ctx)
}

func TestStartupAppliesSavedThemes(t *testing.T) {
	dir := t.TempDir()
	first, _ := newTestApp(t, dir)
	first.Dispatcher().Update(SetTheme{Theme: theme.ThemeNord})
	first.Dispatcher().Update(SetSyntaxTheme{Theme: theme.SyntaxInspiredGitHub})
	first.tuiManager.Close()

	second, _ := newTestApp(t, dir)
	defer second.tuiManager.Close()

	assert.Equal(t, theme.ThemeNord, second.themes.UITheme())
	assert.Equal(t, theme.SyntaxInspiredGitHub, second.themes.SyntaxTheme())
}

func TestStartupWithoutSettingsUsesDefaults(t *testing.T) {
	a, _ := newTestApp(t, t.TempDir())
	defer a.tuiManager.Close()

	assert.Equal(t, theme.DefaultUITheme, a.themes.UITheme())
	assert.Equal(t, theme.DefaultSyntaxTheme, a.themes.SyntaxTheme())
}
