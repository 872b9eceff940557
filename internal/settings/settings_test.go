package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/multitab/internal/theme"
)

func TestLoadAbsent(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "cfg", "settings.json"))
	st, ok := s.Load()
	assert.False(t, ok)
	assert.Equal(t, Settings{}, st)

	assert.Equal(t, theme.DefaultUITheme, theme.KeyToTheme(st.Theme))
	assert.Equal(t, theme.DefaultSyntaxTheme, theme.KeyToSyntaxTheme(st.SyntaxTheme))
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, ok := NewStore(path).Load()
	assert.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nested", "settings.json"))
	s.EnsureDir()
	s.EnsureDir()

	s.Save("theme.nord", "syntax.base16.ocean")

	st, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, Settings{Theme: "theme.nord", SyntaxTheme: "syntax.base16.ocean"}, st)

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"theme.nord","syntax_theme":"syntax.base16.ocean"}`, string(raw))
}

func TestSaveWithoutDirectoryIsSilent(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing", "settings.json"))
	assert.NotPanics(t, func() { s.Save("theme.dark", "syntax.base16.mocha") })

	_, ok := s.Load()
	assert.False(t, ok)
}
