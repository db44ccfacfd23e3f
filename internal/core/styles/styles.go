// Package styles provides shared lipgloss styles for the console renderer.
package styles

import (
	"sort"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
	Muted      lipgloss.TerminalColor
	Success    lipgloss.TerminalColor
	Error      lipgloss.TerminalColor
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Success:    lipgloss.Color("#9ece6a"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Success:    lipgloss.Color("#b8bb26"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"plain": {
		Primary:    lipgloss.NoColor{},
		Foreground: lipgloss.NoColor{},
		Muted:      lipgloss.NoColor{},
		Success:    lipgloss.NoColor{},
		Error:      lipgloss.NoColor{},
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports, rebuilt by SetTheme.
var (
	HeaderStyle  lipgloss.Style
	IDStyle      lipgloss.Style
	PendingStyle lipgloss.Style
	DoneStyle    lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
)

func init() {
	SetTheme(themes[DefaultTheme])
}

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	IDStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Width(4).
		Align(lipgloss.Right)
	PendingStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	DoneStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Strikethrough(true)
	SuccessStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)
	MutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
}

// FormTheme returns a huh theme matching the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(CurrentPalette.Primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(CurrentPalette.Muted)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(CurrentPalette.Error)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(CurrentPalette.Error)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(CurrentPalette.Primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(CurrentPalette.Primary)
	t.Blurred.Title = t.Blurred.Title.Foreground(CurrentPalette.Muted)

	return t
}
