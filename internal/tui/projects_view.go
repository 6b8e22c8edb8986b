package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askel4dd/termfolio/internal/content"
	"github.com/askel4dd/termfolio/internal/shell"
	"github.com/askel4dd/termfolio/internal/tui/styles"
)

// projectsView lists the project registry. Moving the cursor selects the
// row directly, the same transition as the view command; nothing here
// touches the scrollback.
type projectsView struct {
	reg  *content.Registry
	sess *shell.Session
}

func newProjectsView(reg *content.Registry, sess *shell.Session) *projectsView {
	return &projectsView{reg: reg, sess: sess}
}

func (v *projectsView) selectedIndex() int {
	key, ok := v.sess.SelectedProject()
	if !ok {
		return -1
	}
	for i, k := range v.reg.ProjectKeys() {
		if k == key {
			return i
		}
	}
	return -1
}

func (v *projectsView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	keys := v.reg.ProjectKeys()
	if len(keys) == 0 {
		return nil
	}
	idx := v.selectedIndex()
	switch keyMsg.String() {
	case "down":
		idx = minInt(idx+1, len(keys)-1)
	case "up":
		idx = maxInt(idx-1, 0)
	default:
		return nil
	}
	v.sess.SelectProject(keys[idx])
	return nil
}

func (v *projectsView) View(width, height int, theme styles.Theme) string {
	lines := []string{theme.TitleStyle().Render("projects"), ""}
	selected := v.selectedIndex()

	for i, project := range v.reg.Projects() {
		marker := "  "
		nameStyle := theme.AccentStyle()
		if i == selected {
			marker = "> "
			nameStyle = theme.SelectedStyle()
		}
		lines = append(lines, marker+nameStyle.Render(project.Name)+
			theme.MutedStyle().Render("  view "+project.Key))
		if i == selected {
			lines = append(lines, v.renderDetail(project, width, theme)...)
		}
	}

	if selected < 0 {
		lines = append(lines, "", theme.MutedStyle().Render("up/down to browse, or run: view <project>"))
	}
	return panelFrame(strings.Join(lines, "\n"), width, height, theme)
}

func (v *projectsView) renderDetail(project content.Project, width int, theme styles.Theme) []string {
	detail := []string{renderMarkdown(project.Description, maxInt(20, width-8))}
	if len(project.Tools) > 0 {
		detail = append(detail, theme.MutedStyle().Render("    tools: "+strings.Join(project.Tools, ", ")))
	}
	if project.Link != "" {
		detail = append(detail, theme.MutedStyle().Render("    link:  "+project.Link))
	}
	detail = append(detail, "")
	return detail
}
