// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/bethropolis/multitab/internal/logger"
)

// TomlPalette is the structure of a palette override file:
//
//	key = "theme.nord"
//	background = "#2E3440"
//	primary = "#88C0D0"
type TomlPalette struct {
	Key string `toml:"key"`
	Palette
}

// LoadPaletteFile parses a palette override file. Missing colours keep the
// built-in values of the theme named by key.
func LoadPaletteFile(filePath string) (UITheme, Palette, error) {
	var tp TomlPalette
	metadata, err := toml.DecodeFile(filePath, &tp)
	if err != nil {
		return 0, Palette{}, fmt.Errorf("failed to parse TOML palette file '%s': %w", filePath, err)
	}

	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Palette file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}

	t, ok := keyToUITheme[tp.Key]
	if !ok {
		return 0, Palette{}, fmt.Errorf("palette file '%s': unknown theme key %q", filePath, tp.Key)
	}

	merged := BuiltinPalette(t).merge(tp.Palette)
	for field, value := range map[string]string{
		"background": merged.Background,
		"text":       merged.Text,
		"primary":    merged.Primary,
		"success":    merged.Success,
		"danger":     merged.Danger,
	} {
		if _, err := colorful.Hex(value); err != nil {
			return 0, Palette{}, fmt.Errorf("palette file '%s': invalid %s color %q, must be #RRGGBB", filePath, field, value)
		}
	}
	return t, merged, nil
}

// LoadPaletteDir loads every *.toml override in dir. A missing directory is not an error.
func LoadPaletteDir(dir string) (map[UITheme]Palette, error) {
	overrides := make(map[UITheme]Palette)
	if dir == "" {
		return overrides, nil
	}

	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		logger.Debugf("Palette directory '%s' does not exist. No overrides loaded.", dir)
		return overrides, nil
	}
	if err != nil {
		return overrides, fmt.Errorf("failed to read palette directory '%s': %w", dir, err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		filePath := filepath.Join(dir, file.Name())
		t, p, err := LoadPaletteFile(filePath)
		if err != nil {
			logger.Warnf("Failed to load palette from '%s': %v", filePath, err)
			continue
		}
		if _, dup := overrides[t]; dup {
			logger.Warnf("Palette '%s' from '%s' overrides an earlier file", ThemeToKey(t), filePath)
		}
		overrides[t] = p
	}
	logger.Infof("Loaded %d palette overrides.", len(overrides))
	return overrides, nil
}
