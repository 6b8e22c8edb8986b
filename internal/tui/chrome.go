package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/askel4dd/termfolio/internal/shell"
)

func (m *Model) renderHeader() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Base.Foreground)).
		Background(lipgloss.Color(m.theme.Chrome.Header)).
		Bold(true).
		Padding(0, 1)

	left := m.reg.Profile().Name
	center := m.renderTabs()
	right := m.reg.Profile().Tagline
	line := joinHeader(left, center, right, m.width)
	return style.Width(maxInt(0, m.width)).Render(line)
}

func (m *Model) renderTabs() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Chrome.ActiveTab))
	inactive := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Chrome.InactiveTab))

	parts := make([]string, 0, 8)
	for _, sec := range shell.Sections() {
		label := string(sec)
		if sec == m.sess.Section() {
			parts = append(parts, active.Render("["+label+"]"))
		} else {
			parts = append(parts, inactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderFooter() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Base.Foreground)).
		Background(lipgloss.Color(m.theme.Chrome.Footer)).
		Padding(0, 1)

	base := "tab/shift+tab sections · enter run · type 'help' · ctrl+c quit"
	if sec := m.sess.Section(); sec == shell.SectionProjects || sec == shell.SectionWork {
		base = "up/down browse · tab/shift+tab sections · esc terminal · ctrl+c quit"
	}
	return style.Width(maxInt(0, m.width)).Render(truncate(base, maxInt(0, m.width-2)))
}

// promptPrefix renders user@host:~/section$ for the current section.
func (m *Model) promptPrefix() string {
	userStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Prompt.User))
	hostStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Prompt.Host))
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Prompt.Path))
	symStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Prompt.Symbol))

	path := "~"
	if sec := m.sess.Section(); sec != shell.SectionTerminal {
		path = "~/" + string(sec)
	}
	return userStyle.Render(m.cfg.User) +
		symStyle.Render("@") +
		hostStyle.Render(m.cfg.Host) +
		symStyle.Render(":") +
		pathStyle.Render(path) +
		symStyle.Render("$ ")
}

func (m *Model) renderPromptLine() string {
	return m.promptPrefix() + m.input.View()
}

// renderScrollback renders the banner plus every history entry in
// submission order.
func (m *Model) renderScrollback(width int) string {
	cmdStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Scrollback.Command))
	outStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Scrollback.Output))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Scrollback.Error))
	bannerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Scrollback.Banner))

	profile := m.reg.Profile()
	lines := []string{
		bannerStyle.Render(fmt.Sprintf("%s — %s", profile.Name, profile.Tagline)),
		bannerStyle.Render("type 'help' to see what this terminal understands"),
		"",
	}

	for _, entry := range m.sess.History() {
		lines = append(lines, m.promptPrefix()+cmdStyle.Render(entry.Input))
		if !entry.HasOutput() {
			continue
		}
		style := outStyle
		if isErrorOutput(entry.Output) {
			style = errStyle
		}
		for _, out := range strings.Split(entry.Output, "\n") {
			lines = append(lines, style.Render(truncate(out, maxInt(0, width))))
		}
	}
	return strings.Join(lines, "\n")
}

// isErrorOutput matches the three error lines the interpreter can emit.
func isErrorOutput(out string) bool {
	return strings.HasPrefix(out, "command not found: ") ||
		strings.HasPrefix(out, "no such file or directory: ") ||
		strings.HasPrefix(out, "could not connect to host: ")
}

func joinHeader(left, center, right string, width int) string {
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)
	if width <= 0 {
		return left
	}

	space := width - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if space < 2 {
		return truncateVis(left+" "+center, width)
	}

	leftGap := space / 2
	rightGap := space - leftGap
	return truncateVis(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

func truncate(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}

// truncateVis truncates by visible width, tolerating ANSI sequences.
func truncateVis(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
