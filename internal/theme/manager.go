// internal/theme/manager.go
package theme

import (
	"sync"

	"github.com/bethropolis/multitab/internal/logger"
)

// Manager holds the selected UI and syntax themes and the resolved styles
// of the active UI theme.
type Manager struct {
	mutex     sync.RWMutex
	overrides map[UITheme]Palette
	ui        UITheme
	syntax    SyntaxTheme
	current   *Theme
}

// NewManager creates a manager using the palette overrides found in themesDir.
func NewManager(themesDir string) *Manager {
	overrides, err := LoadPaletteDir(themesDir)
	if err != nil {
		logger.Errorf("Error loading palettes from '%s': %v", themesDir, err)
	}
	m := &Manager{overrides: overrides, syntax: DefaultSyntaxTheme}
	m.SetTheme(DefaultUITheme)
	return m
}

// Palette returns the effective palette of t, including overrides.
func (m *Manager) Palette(t UITheme) Palette {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.paletteLocked(t)
}

func (m *Manager) paletteLocked(t UITheme) Palette {
	if p, ok := m.overrides[t]; ok {
		return p
	}
	return BuiltinPalette(t)
}

// SetTheme activates UI theme t.
func (m *Manager) SetTheme(t UITheme) {
	if !t.valid() {
		t = DefaultUITheme
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	built, err := Build(t.String(), m.paletteLocked(t))
	if err != nil {
		logger.Errorf("Theme '%s': %v; using built-in palette", t, err)
		built, err = Build(t.String(), BuiltinPalette(t))
		if err != nil {
			built = fallbackTheme()
		}
	}
	m.ui = t
	m.current = built
	logger.Infof("Active theme set to: %s", t)
}

// SetSyntaxTheme activates syntax theme t.
func (m *Manager) SetSyntaxTheme(t SyntaxTheme) {
	if !t.valid() {
		t = DefaultSyntaxTheme
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.syntax = t
	logger.Infof("Syntax theme set to: %s", t)
}

// Current returns the resolved styles of the active UI theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.current
}

func (m *Manager) UITheme() UITheme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.ui
}

func (m *Manager) SyntaxTheme() SyntaxTheme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.syntax
}
