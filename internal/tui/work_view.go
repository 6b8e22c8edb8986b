package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askel4dd/termfolio/internal/content"
	"github.com/askel4dd/termfolio/internal/shell"
	"github.com/askel4dd/termfolio/internal/tui/styles"
)

// workView lists the work-history registry with the same cursor-as-
// selection behavior as projectsView.
type workView struct {
	reg  *content.Registry
	sess *shell.Session
}

func newWorkView(reg *content.Registry, sess *shell.Session) *workView {
	return &workView{reg: reg, sess: sess}
}

func (v *workView) selectedIndex() int {
	key, ok := v.sess.SelectedWork()
	if !ok {
		return -1
	}
	for i, k := range v.reg.WorkKeys() {
		if k == key {
			return i
		}
	}
	return -1
}

func (v *workView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	keys := v.reg.WorkKeys()
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
	v.sess.SelectWork(keys[idx])
	return nil
}

func (v *workView) View(width, height int, theme styles.Theme) string {
	lines := []string{theme.TitleStyle().Render("work history"), ""}
	selected := v.selectedIndex()

	for i, record := range v.reg.Work() {
		marker := "  "
		nameStyle := theme.AccentStyle()
		if i == selected {
			marker = "> "
			nameStyle = theme.SelectedStyle()
		}
		lines = append(lines, marker+nameStyle.Render(record.Role)+
			theme.MutedStyle().Render("  "+record.Organization+" · "+record.Start+" – "+record.End))
		if i == selected {
			lines = append(lines, v.renderDetail(record, width, theme)...)
		}
	}

	if selected < 0 {
		lines = append(lines, "", theme.MutedStyle().Render("up/down to expand a record"))
	}
	return panelFrame(strings.Join(lines, "\n"), width, height, theme)
}

func (v *workView) renderDetail(record content.WorkRecord, width int, theme styles.Theme) []string {
	detail := make([]string, 0, len(record.Summary)+1)
	for _, bullet := range record.Summary {
		detail = append(detail, "    • "+truncate(bullet, maxInt(20, width-8)))
	}
	detail = append(detail, "")
	return detail
}
