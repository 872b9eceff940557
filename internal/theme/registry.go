package theme

// UITheme selects the colour palette of the editor chrome.
type UITheme int

const (
	ThemeLight UITheme = iota
	ThemeDark
	ThemeDracula
	ThemeNord
	ThemeSolarizedLight
	ThemeSolarizedDark
	ThemeGruvboxLight
	ThemeGruvboxDark
	ThemeCatppuccinLatte
	ThemeCatppuccinFrappe
	ThemeCatppuccinMacchiato
	ThemeCatppuccinMocha
	ThemeTokyoNight
	ThemeTokyoNightStorm
	ThemeTokyoNightLight
	ThemeKanagawaWave
	ThemeKanagawaDragon
	ThemeKanagawaLotus
	ThemeMoonfly
	ThemeNightfly
	ThemeOxocarbon
	numUIThemes
)

// SyntaxTheme selects the highlighting colours of buffer text.
// It is a separate enumeration from UITheme; the two never convert.
type SyntaxTheme int

const (
	SyntaxSolarizedDark SyntaxTheme = iota
	SyntaxBase16Mocha
	SyntaxBase16Ocean
	SyntaxBase16Eighties
	SyntaxInspiredGitHub
	numSyntaxThemes
)

// Defaults used when a key is unknown or no settings were saved.
const (
	DefaultUITheme     = ThemeLight
	DefaultSyntaxTheme = SyntaxBase16Eighties
)

type uiThemeInfo struct {
	key  string
	name string
}

var uiThemes = [numUIThemes]uiThemeInfo{
	ThemeLight:               {"theme.light", "Light"},
	ThemeDark:                {"theme.dark", "Dark"},
	ThemeDracula:             {"theme.dracula", "Dracula"},
	ThemeNord:                {"theme.nord", "Nord"},
	ThemeSolarizedLight:      {"theme.solarized.light", "Solarized Light"},
	ThemeSolarizedDark:       {"theme.solarized.dark", "Solarized Dark"},
	ThemeGruvboxLight:        {"theme.gruvbox.light", "Gruvbox Light"},
	ThemeGruvboxDark:         {"theme.gruvbox.dark", "Gruvbox Dark"},
	ThemeCatppuccinLatte:     {"theme.catppuccin.latte", "Catppuccin Latte"},
	ThemeCatppuccinFrappe:    {"theme.catppuccin.frappe", "Catppuccin Frappé"},
	ThemeCatppuccinMacchiato: {"theme.catppuccin.macchiato", "Catppuccin Macchiato"},
	ThemeCatppuccinMocha:     {"theme.catppuccin.mocha", "Catppuccin Mocha"},
	ThemeTokyoNight:          {"theme.tokyonight", "Tokyo Night"},
	ThemeTokyoNightStorm:     {"theme.tokyonight.storm", "Tokyo Night Storm"},
	ThemeTokyoNightLight:     {"theme.tokyonight.light", "Tokyo Night Light"},
	ThemeKanagawaWave:        {"theme.kanagawa.wave", "Kanagawa Wave"},
	ThemeKanagawaDragon:      {"theme.kanagawa.dragon", "Kanagawa Dragon"},
	ThemeKanagawaLotus:       {"theme.kanagawa.lotus", "Kanagawa Lotus"},
	ThemeMoonfly:             {"theme.moonfly", "Moonfly"},
	ThemeNightfly:            {"theme.nightfly", "Nightfly"},
	ThemeOxocarbon:           {"theme.oxocarbon", "Oxocarbon"},
}

type syntaxThemeInfo struct {
	key    string
	name   string
	chroma string // chroma style providing the token colours
}

var syntaxThemes = [numSyntaxThemes]syntaxThemeInfo{
	SyntaxSolarizedDark:  {"syntax.solarized.dark", "Solarized Dark", "solarized-dark"},
	SyntaxBase16Mocha:    {"syntax.base16.mocha", "Base16 Mocha", "base16-snazzy"},
	SyntaxBase16Ocean:    {"syntax.base16.ocean", "Base16 Ocean", "nord"},
	SyntaxBase16Eighties: {"syntax.base16.eighties", "Base16 Eighties", "monokai"},
	SyntaxInspiredGitHub: {"syntax.inspired-github", "Inspired GitHub", "github"},
}

var (
	keyToUITheme     = make(map[string]UITheme, numUIThemes)
	keyToSyntaxTheme = make(map[string]SyntaxTheme, numSyntaxThemes)
)

func init() {
	for t, info := range uiThemes {
		keyToUITheme[info.key] = UITheme(t)
	}
	for t, info := range syntaxThemes {
		keyToSyntaxTheme[info.key] = SyntaxTheme(t)
	}
}

// AllUIThemes lists every UI theme in menu order.
func AllUIThemes() []UITheme {
	all := make([]UITheme, numUIThemes)
	for i := range all {
		all[i] = UITheme(i)
	}
	return all
}

// AllSyntaxThemes lists every syntax theme in menu order.
func AllSyntaxThemes() []SyntaxTheme {
	all := make([]SyntaxTheme, numSyntaxThemes)
	for i := range all {
		all[i] = SyntaxTheme(i)
	}
	return all
}

func (t UITheme) valid() bool     { return t >= 0 && t < numUIThemes }
func (t SyntaxTheme) valid() bool { return t >= 0 && t < numSyntaxThemes }

// String returns the display name.
func (t UITheme) String() string {
	if !t.valid() {
		return uiThemes[DefaultUITheme].name
	}
	return uiThemes[t].name
}

// String returns the display name.
func (t SyntaxTheme) String() string {
	if !t.valid() {
		return syntaxThemes[DefaultSyntaxTheme].name
	}
	return syntaxThemes[t].name
}

// ChromaStyle names the chroma style rendering this syntax theme.
func (t SyntaxTheme) ChromaStyle() string {
	if !t.valid() {
		t = DefaultSyntaxTheme
	}
	return syntaxThemes[t].chroma
}

// ThemeToKey returns the persistable key of t. Out-of-range values map to the default's key.
func ThemeToKey(t UITheme) string {
	if !t.valid() {
		t = DefaultUITheme
	}
	return uiThemes[t].key
}

// KeyToTheme returns the theme persisted as key, or DefaultUITheme.
func KeyToTheme(key string) UITheme {
	if t, ok := keyToUITheme[key]; ok {
		return t
	}
	return DefaultUITheme
}

// SyntaxThemeToKey returns the persistable key of t.
func SyntaxThemeToKey(t SyntaxTheme) string {
	if !t.valid() {
		t = DefaultSyntaxTheme
	}
	return syntaxThemes[t].key
}

// KeyToSyntaxTheme returns the syntax theme persisted as key, or DefaultSyntaxTheme.
func KeyToSyntaxTheme(key string) SyntaxTheme {
	if t, ok := keyToSyntaxTheme[key]; ok {
		return t
	}
	return DefaultSyntaxTheme
}
