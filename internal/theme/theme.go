// internal/theme/theme.go
package theme

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/bethropolis/multitab/internal/logger"
)

// Theme is a resolved set of named tcell styles for the editor chrome.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, falling back to its base name
// (the part before the first dot) and then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Background is the colour of the editing area.
func (t *Theme) Background() tcell.Color {
	_, bg, _ := t.GetStyle("Default").Decompose()
	return bg
}

// Build resolves p into a Theme. Surface, muted and selection colours are
// derived from the palette by blending in CIE-Lab space.
func Build(name string, p Palette) (*Theme, error) {
	bg, err := colorful.Hex(p.Background)
	if err != nil {
		return nil, fmt.Errorf("theme '%s': background: %w", name, err)
	}
	text, err := colorful.Hex(p.Text)
	if err != nil {
		return nil, fmt.Errorf("theme '%s': text: %w", name, err)
	}
	primary, err := colorful.Hex(p.Primary)
	if err != nil {
		return nil, fmt.Errorf("theme '%s': primary: %w", name, err)
	}
	success, err := colorful.Hex(p.Success)
	if err != nil {
		return nil, fmt.Errorf("theme '%s': success: %w", name, err)
	}
	danger, err := colorful.Hex(p.Danger)
	if err != nil {
		return nil, fmt.Errorf("theme '%s': danger: %w", name, err)
	}

	surface := bg.BlendLab(text, 0.08)
	muted := text.BlendLab(bg, 0.45)
	selection := bg.BlendLab(primary, 0.35)
	lightness, _, _ := bg.Lab()

	cBg, cText, cPrimary := toTcell(bg), toTcell(text), toTcell(primary)
	cSurface, cMuted := toTcell(surface), toTcell(muted)

	base := tcell.StyleDefault.Background(cBg).Foreground(cText)
	chrome := tcell.StyleDefault.Background(cSurface).Foreground(cText)

	return &Theme{
		Name:   name,
		IsDark: lightness < 0.5,
		Styles: map[string]tcell.Style{
			"Default":    base,
			"Selection":  base.Background(toTcell(selection)),
			"LineNumber": base.Foreground(cMuted),

			"MenuBar":     chrome,
			"MenuBar.key": chrome.Foreground(cPrimary).Bold(true),

			"Tab":        chrome.Foreground(cMuted),
			"Tab.active": base.Foreground(cPrimary).Bold(true),
			"Tab.close":  chrome.Foreground(cMuted),

			"StatusBar":       chrome,
			"StatusBar.error": chrome.Foreground(toTcell(danger)).Bold(true),
			"StatusBar.info":  chrome.Foreground(toTcell(success)),

			"Modal":          chrome,
			"Modal.title":    chrome.Foreground(cPrimary).Bold(true),
			"Modal.border":   chrome.Foreground(cMuted),
			"Modal.selected": tcell.StyleDefault.Background(cPrimary).Foreground(cBg),
			"Modal.active":   chrome.Foreground(toTcell(success)).Bold(true),
		},
	}, nil
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// fallbackTheme is used when a palette cannot be parsed.
func fallbackTheme() *Theme {
	return &Theme{Name: "Fallback", Styles: map[string]tcell.Style{"Default": tcell.StyleDefault}}
}
