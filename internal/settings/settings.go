// Package settings persists the selected theme keys between runs.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/multitab/internal/logger"
)

// Settings is the persisted record.
type Settings struct {
	Theme       string `json:"theme"`
	SyntaxTheme string `json:"syntax_theme"`
}

// Store reads and writes Settings at a fixed path.
// Failures are logged and never returned.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// EnsureDir creates the directory holding the settings file. It is idempotent.
func (s *Store) EnsureDir() {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		logger.Errorf("Settings: cannot create config directory: %v", err)
	}
}

// Load returns the saved settings. The boolean is false when the file is
// absent or cannot be parsed; both mean "use defaults".
func (s *Store) Load() (Settings, bool) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		logger.Debugf("Settings: no file at %s", s.path)
		return Settings{}, false
	}
	if err != nil {
		logger.Errorf("Settings: read %s: %v", s.path, err)
		return Settings{}, false
	}

	var st Settings
	if err := json.Unmarshal(data, &st); err != nil {
		logger.Errorf("Settings: parse %s: %v", s.path, err)
		return Settings{}, false
	}
	return st, true
}

// Save overwrites the settings file.
func (s *Store) Save(themeKey, syntaxThemeKey string) {
	if err := s.write(Settings{Theme: themeKey, SyntaxTheme: syntaxThemeKey}); err != nil {
		logger.Errorf("Settings: %v", err)
		return
	}
	logger.DebugTagf("settings", "Saved theme=%s syntax=%s", themeKey, syntaxThemeKey)
}

func (s *Store) write(st Settings) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
