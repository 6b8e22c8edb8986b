package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/askel4dd/termfolio/internal/shell"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(Config{})
	require.NoError(t, err)
	return m
}

func TestConfigNormalize(t *testing.T) {
	t.Parallel()

	cfg, err := Config{}.normalize()
	require.NoError(t, err)
	require.Equal(t, "default", cfg.Theme)
	require.Equal(t, "visitor", cfg.User)
	require.Equal(t, "termfolio", cfg.Host)

	_, err = Config{Theme: "neon"}.normalize()
	require.Error(t, err)

	cfg, err = Config{Theme: " matrix ", User: " guest "}.normalize()
	require.NoError(t, err)
	require.Equal(t, "matrix", cfg.Theme)
	require.Equal(t, "guest", cfg.User)
}

func TestSubmitLineRunsInterpreterAndClearsInput(t *testing.T) {
	t.Parallel()
	m := testModel(t)

	m.input.SetValue("cd skills")
	m.submitLine()

	require.Equal(t, shell.SectionSkills, m.sess.Section())
	require.Empty(t, m.input.Value(), "input box must be cleared after submission")
	require.Equal(t, 1, m.sess.HistoryLen())
}

func TestTabCyclesSectionsWithoutScrollbackEntries(t *testing.T) {
	t.Parallel()
	m := testModel(t)

	_, handled := m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, handled)
	require.Equal(t, shell.SectionAbout, m.sess.Section())

	_, handled = m.handleKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.True(t, handled)
	require.Equal(t, shell.SectionTerminal, m.sess.Section())

	// Direct navigation bypasses the scrollback.
	require.Zero(t, m.sess.HistoryLen())
}

func TestTabNavigationClearsSelection(t *testing.T) {
	t.Parallel()
	m := testModel(t)

	m.input.SetValue("cd projects")
	m.submitLine()
	m.input.SetValue("view sentiment_analysis")
	m.submitLine()
	_, ok := m.sess.SelectedProject()
	require.True(t, ok)

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	_, ok = m.sess.SelectedProject()
	require.False(t, ok)
}

func TestArrowKeysSelectInProjectsSection(t *testing.T) {
	t.Parallel()
	m := testModel(t)
	m.enterSection(shell.SectionProjects)

	_, handled := m.handleKey(tea.KeyMsg{Type: tea.KeyDown})
	require.True(t, handled)

	key, ok := m.sess.SelectedProject()
	require.True(t, ok)
	require.Equal(t, m.reg.ProjectKeys()[0], key)

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyDown})
	key, _ = m.sess.SelectedProject()
	require.Equal(t, m.reg.ProjectKeys()[1], key)

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	key, _ = m.sess.SelectedProject()
	require.Equal(t, m.reg.ProjectKeys()[0], key)
}

func TestEscReturnsToTerminal(t *testing.T) {
	t.Parallel()
	m := testModel(t)
	m.enterSection(shell.SectionContact)

	_, handled := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, handled)
	require.Equal(t, shell.SectionTerminal, m.sess.Section())
}

func TestViewRendersEverySection(t *testing.T) {
	t.Parallel()
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	for _, sec := range shell.Sections() {
		m.enterSection(sec)
		out := m.View()
		require.NotEmpty(t, out, "section %s rendered nothing", sec)
	}
}

func TestScrollbackRendersEntriesInOrder(t *testing.T) {
	t.Parallel()
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.input.SetValue("help")
	m.submitLine()
	m.input.SetValue("wat")
	m.submitLine()

	out := m.renderScrollback(100)
	helpAt := strings.Index(out, "help")
	errAt := strings.Index(out, "command not found: wat")
	require.Greater(t, helpAt, -1)
	require.Greater(t, errAt, -1)
	require.Less(t, helpAt, errAt, "entries must render in submission order")
}
