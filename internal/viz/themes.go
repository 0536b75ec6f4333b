package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of the TUI
type Theme struct {
	Name       string
	Title      lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:       "dark",
		Title:      lipgloss.Color("#00ffff"),
		Accent:     lipgloss.Color("#ff88ff"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666688"),
		Border:     lipgloss.Color("#444466"),
		Success:    lipgloss.Color("#4caf50"),
		Error:      lipgloss.Color("#ff4444"),
	}

	ThemeLight = Theme{
		Name:       "light",
		Title:      lipgloss.Color("#0077be"),
		Accent:     lipgloss.Color("#cc3366"),
		Background: lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#333333"),
		Muted:      lipgloss.Color("#888888"),
		Border:     lipgloss.Color("#aaaaaa"),
		Success:    lipgloss.Color("#008000"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemeRetro = Theme{
		Name:       "retro",
		Title:      lipgloss.Color("#00ff00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Border:     lipgloss.Color("#00cc00"),
		Success:    lipgloss.Color("#88ff88"),
		Error:      lipgloss.Color("#ffff00"),
	}

	Themes = []Theme{ThemeDark, ThemeLight, ThemeRetro}
)

// GetTheme returns a theme by name, falling back to dark.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

// NextTheme cycles through Themes.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
