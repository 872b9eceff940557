// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/multitab/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // [logger] table
	Editor EditorConfig  `toml:"editor"` // Editor-specific settings
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	ScrollOff       int    `toml:"scroll_off"`
	SystemClipboard bool   `toml:"system_clipboard"`
	WatchFiles      bool   `toml:"watch_files"`
	DefaultExt      string `toml:"default_extension"` // Pre-filled extension for Save As
}

// Paths locates every file the application reads or writes.
type Paths struct {
	Dir      string // <user config dir>/multi_tab_text_editor
	Config   string // config.toml
	Settings string // theme selections, JSON
	Log      string
	Themes   string // palette overrides
}

// ResolvePaths derives Paths from the platform user configuration directory.
func ResolvePaths() (Paths, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return Paths{}, fmt.Errorf("locating user config directory: %w", err)
	}
	return PathsIn(filepath.Join(base, AppName)), nil
}

// PathsIn lays out Paths under dir.
func PathsIn(dir string) Paths {
	return Paths{
		Dir:      dir,
		Config:   filepath.Join(dir, DefaultConfigFileName),
		Settings: filepath.Join(dir, SettingsFileName),
		Log:      filepath.Join(dir, DefaultLogFileName),
		Themes:   filepath.Join(dir, ThemesDirName),
	}
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			WatchFiles:      WatchFiles,
			DefaultExt:      DefaultExtension,
		},
	}
}

// Load reads the TOML file at path over the defaults.
// A missing file yields the defaults and no error. On a parse error the
// defaults are still returned alongside the error.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if path == "" {
		return cfg, nil
	}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return cfg, nil // File not found is not an error here
	}
	if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", path, err)
	}

	fileCfg := NewDefaultConfig()
	metadata, err := toml.DecodeFile(path, fileCfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		// The logger is not configured yet during startup; this is retained
		// for callers that load after logger.Init.
		logger.Warnf("Config file '%s': Unrecognized keys: %v", path, undecoded)
	}

	fileCfg.validate()
	return fileCfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.ScrollOff < 0 { // Allow 0
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	c.Editor.DefaultExt = strings.TrimPrefix(strings.TrimSpace(c.Editor.DefaultExt), ".")
	if c.Editor.DefaultExt == "" {
		c.Editor.DefaultExt = defaults.Editor.DefaultExt
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LogFile returns the effective log destination: "-" for stderr, the
// configured path, or the default file in the config directory.
func (c *Config) LogFile(p Paths) string {
	if c.Logger.LogFilePath != "" {
		return c.Logger.LogFilePath
	}
	return p.Log
}
