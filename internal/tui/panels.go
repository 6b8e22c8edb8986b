package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/askel4dd/termfolio/internal/content"
	"github.com/askel4dd/termfolio/internal/tui/styles"
)

// aboutView renders the biography markdown.
type aboutView struct {
	reg *content.Registry
}

func newAboutView(reg *content.Registry) *aboutView {
	return &aboutView{reg: reg}
}

func (v *aboutView) Update(_ tea.Msg) tea.Cmd {
	return nil
}

func (v *aboutView) View(width, height int, theme styles.Theme) string {
	profile := v.reg.Profile()
	lines := []string{
		theme.TitleStyle().Render("about"),
		theme.MutedStyle().Render(profile.Name + " · " + profile.Location),
		"",
		renderMarkdown(profile.About, maxInt(20, width-4)),
	}
	return panelFrame(strings.Join(lines, "\n"), width, height, theme)
}

// skillsView renders the skills table.
type skillsView struct {
	reg *content.Registry
}

func newSkillsView(reg *content.Registry) *skillsView {
	return &skillsView{reg: reg}
}

func (v *skillsView) Update(_ tea.Msg) tea.Cmd {
	return nil
}

func (v *skillsView) View(width, height int, theme styles.Theme) string {
	lines := []string{theme.TitleStyle().Render("skills"), ""}
	for _, group := range v.reg.Profile().Skills {
		lines = append(lines,
			theme.AccentStyle().Render(group.Area),
			"  "+strings.Join(group.Items, " · "),
		)
	}
	return panelFrame(strings.Join(lines, "\n"), width, height, theme)
}

// contactView renders the contact table.
type contactView struct {
	reg *content.Registry
}

func newContactView(reg *content.Registry) *contactView {
	return &contactView{reg: reg}
}

func (v *contactView) Update(_ tea.Msg) tea.Cmd {
	return nil
}

func (v *contactView) View(width, height int, theme styles.Theme) string {
	c := v.reg.Profile().Contact
	rows := []struct{ label, value string }{
		{"email", c.Email},
		{"github", c.GitHub},
		{"linkedin", c.LinkedIn},
		{"website", c.Website},
	}
	lines := []string{theme.TitleStyle().Render("contact"), ""}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		lines = append(lines, theme.AccentStyle().Render(padRight(row.label, 10))+row.value)
	}
	return panelFrame(strings.Join(lines, "\n"), width, height, theme)
}

// panelFrame wraps panel content in the theme border, sized to the body.
func panelFrame(body string, width, height int, theme styles.Theme) string {
	frame := lipgloss.NewStyle().
		Border(theme.Border()).
		BorderForeground(lipgloss.Color(theme.Base.Border)).
		Padding(0, 1).
		Width(maxInt(0, width-2))
	out := frame.Render(body)
	if height > 0 && lipgloss.Height(out) > height {
		lines := strings.Split(out, "\n")
		out = strings.Join(lines[:height], "\n")
	}
	return out
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
