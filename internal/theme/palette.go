package theme

// Palette is the five-colour description a UI theme is built from.
// Colours are "#RRGGBB" strings.
type Palette struct {
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Primary    string `toml:"primary"`
	Success    string `toml:"success"`
	Danger     string `toml:"danger"`
}

var builtinPalettes = [numUIThemes]Palette{
	ThemeLight:               {"#FFFFFF", "#000000", "#5E7CE2", "#12664F", "#C3423F"},
	ThemeDark:                {"#202225", "#E6E6E6", "#5E7CE2", "#12664F", "#C3423F"},
	ThemeDracula:             {"#282A36", "#F8F8F2", "#BD93F9", "#50FA7B", "#FF5555"},
	ThemeNord:                {"#2E3440", "#ECEFF4", "#8FBCBB", "#A3BE8C", "#BF616A"},
	ThemeSolarizedLight:      {"#FDF6E3", "#657B83", "#2AA198", "#859900", "#DC322F"},
	ThemeSolarizedDark:       {"#002B36", "#839496", "#2AA198", "#859900", "#DC322F"},
	ThemeGruvboxLight:        {"#FBF1C7", "#282828", "#458588", "#98971A", "#CC241D"},
	ThemeGruvboxDark:         {"#282828", "#FBF1C7", "#458588", "#98971A", "#CC241D"},
	ThemeCatppuccinLatte:     {"#EFF1F5", "#4C4F69", "#1E66F5", "#40A02B", "#D20F39"},
	ThemeCatppuccinFrappe:    {"#303446", "#C6D0F5", "#8CAAEE", "#A6D189", "#E78284"},
	ThemeCatppuccinMacchiato: {"#24273A", "#CAD3F5", "#8AADF4", "#A6DA95", "#ED8796"},
	ThemeCatppuccinMocha:     {"#1E1E2E", "#CDD6F4", "#89B4FA", "#A6E3A1", "#F38BA8"},
	ThemeTokyoNight:          {"#1A1B26", "#9AA5CE", "#2AC3DE", "#9ECE6A", "#F7768E"},
	ThemeTokyoNightStorm:     {"#24283B", "#9AA5CE", "#2AC3DE", "#9ECE6A", "#F7768E"},
	ThemeTokyoNightLight:     {"#D5D6DB", "#565A6E", "#166775", "#485E30", "#8C4351"},
	ThemeKanagawaWave:        {"#1F1F28", "#DCD7BA", "#7E9CD8", "#76946A", "#C34043"},
	ThemeKanagawaDragon:      {"#181616", "#C5C9C5", "#658594", "#8A9A7B", "#C4746E"},
	ThemeKanagawaLotus:       {"#F2ECBC", "#545464", "#4D699B", "#6F894E", "#C84053"},
	ThemeMoonfly:             {"#080808", "#BDBDBD", "#80A0FF", "#8CC85F", "#FF5454"},
	ThemeNightfly:            {"#011627", "#BDC1C6", "#82AAFF", "#A1CD5E", "#FC514E"},
	ThemeOxocarbon:           {"#232323", "#D0D0D0", "#00B4FF", "#00C15A", "#F62D0F"},
}

// BuiltinPalette returns the compiled-in palette of t.
func BuiltinPalette(t UITheme) Palette {
	if !t.valid() {
		t = DefaultUITheme
	}
	return builtinPalettes[t]
}

// merge returns p with every non-empty field of o applied.
func (p Palette) merge(o Palette) Palette {
	if o.Background != "" {
		p.Background = o.Background
	}
	if o.Text != "" {
		p.Text = o.Text
	}
	if o.Primary != "" {
		p.Primary = o.Primary
	}
	if o.Success != "" {
		p.Success = o.Success
	}
	if o.Danger != "" {
		p.Danger = o.Danger
	}
	return p
}
