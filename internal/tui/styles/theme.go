// Package styles defines the termfolio color palettes.
package styles

import "github.com/charmbracelet/lipgloss"

// BaseColors defines global UI colors.
type BaseColors struct {
	Background string
	Foreground string
	Muted      string
	Accent     string
	Border     string
}

// PromptColors defines colors for the command prompt line.
type PromptColors struct {
	User   string
	Host   string
	Path   string
	Symbol string
}

// ScrollbackColors defines colors for rendered history entries.
type ScrollbackColors struct {
	Command string
	Output  string
	Error   string
	Banner  string
}

// ChromeColors defines non-content UI colors.
type ChromeColors struct {
	Header      string
	Footer      string
	ActiveTab   string
	InactiveTab string
	Selected    string
}

// Theme defines the termfolio style tokens.
type Theme struct {
	Name        string
	BorderStyle string // "rounded", "sharp", "hidden"

	Base       BaseColors
	Prompt     PromptColors
	Scrollback ScrollbackColors
	Chrome     ChromeColors
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
	"matrix":        MatrixTheme,
}

// Names returns the palette names in a stable order.
func Names() []string {
	return []string{"default", "high-contrast", "matrix"}
}

// Border returns the lipgloss border for the theme's BorderStyle.
func (t Theme) Border() lipgloss.Border {
	switch t.BorderStyle {
	case "sharp":
		return lipgloss.NormalBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// TitleStyle renders section titles.
func (t Theme) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Base.Accent))
}

// MutedStyle renders secondary text.
func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Base.Muted))
}

// AccentStyle renders highlighted text.
func (t Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Base.Accent))
}

// SelectedStyle renders the cursor row in selection lists.
func (t Theme) SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Chrome.Selected))
}
