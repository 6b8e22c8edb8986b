// Package tui renders the portfolio as a simulated terminal: a prompt, an
// append-only scrollback, and one static panel per section. All state
// transitions go through the shell package; the TUI never mutates
// navigation state directly.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/askel4dd/termfolio/internal/content"
	"github.com/askel4dd/termfolio/internal/logging"
	"github.com/askel4dd/termfolio/internal/shell"
	"github.com/askel4dd/termfolio/internal/tui/styles"
)

// Config configures a TUI run.
type Config struct {
	Theme       string
	User        string
	Host        string
	ContentFile string
}

func (c Config) normalize() (Config, error) {
	c.Theme = strings.TrimSpace(c.Theme)
	c.User = strings.TrimSpace(c.User)
	c.Host = strings.TrimSpace(c.Host)
	c.ContentFile = strings.TrimSpace(c.ContentFile)
	if c.Theme == "" {
		c.Theme = "default"
	}
	if _, ok := styles.Themes[c.Theme]; !ok {
		return Config{}, fmt.Errorf("invalid theme %q (have: %s)", c.Theme, strings.Join(styles.Names(), ", "))
	}
	if c.User == "" {
		c.User = "visitor"
	}
	if c.Host == "" {
		c.Host = "termfolio"
	}
	return c, nil
}

// sectionView renders one static panel and reacts to selection keys.
type sectionView interface {
	Update(msg tea.Msg) tea.Cmd
	View(width, height int, theme styles.Theme) string
}

// Model is the root bubbletea model.
type Model struct {
	cfg    Config
	reg    *content.Registry
	sess   *shell.Session
	interp *shell.Interpreter
	theme  styles.Theme
	log    zerolog.Logger

	input    textinput.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int

	views map[shell.Section]sectionView
}

// NewModel builds the root model from a normalized config.
func NewModel(cfg Config) (*Model, error) {
	normalized, err := cfg.normalize()
	if err != nil {
		return nil, err
	}

	var reg *content.Registry
	if normalized.ContentFile != "" {
		reg, err = content.LoadFile(normalized.ContentFile)
	} else {
		reg, err = content.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 256
	input.Focus()

	sess := shell.NewSession()
	m := &Model{
		cfg:    normalized,
		reg:    reg,
		sess:   sess,
		interp: shell.NewInterpreter(reg),
		theme:  styles.Themes[normalized.Theme],
		log:    logging.WithSession(uuid.NewString()),
		input:  input,
		views:  make(map[shell.Section]sectionView),
	}
	m.initViews()
	return m, nil
}

// Run launches the TUI and blocks until it exits.
func Run(cfg Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	model.log.Info().Str("theme", model.cfg.Theme).Msg("tui started")

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func (m *Model) initViews() {
	m.views[shell.SectionAbout] = newAboutView(m.reg)
	m.views[shell.SectionSkills] = newSkillsView(m.reg)
	m.views[shell.SectionWork] = newWorkView(m.reg, m.sess)
	m.views[shell.SectionProjects] = newProjectsView(m.reg, m.sess)
	m.views[shell.SectionContact] = newContactView(m.reg)
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		bodyHeight := m.bodyHeight()
		if !m.ready {
			m.viewport = viewport.New(typed.Width, bodyHeight)
			m.ready = true
			m.refreshScrollback(true)
		} else {
			m.viewport.Width = typed.Width
			m.viewport.Height = bodyHeight
			m.refreshScrollback(false)
		}
		m.input.Width = maxInt(10, typed.Width-lipgloss.Width(m.promptPrefix())-2)
		return m, nil
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(typed); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d":
		m.log.Info().Int("history", m.sess.HistoryLen()).Msg("tui exiting")
		return tea.Quit, true
	case "tab":
		m.enterSection(m.sess.Section().Next())
		return nil, true
	case "shift+tab":
		m.enterSection(m.sess.Section().Prev())
		return nil, true
	case "esc":
		m.enterSection(shell.SectionTerminal)
		return nil, true
	case "enter":
		m.submitLine()
		return nil, true
	case "up", "down", "pgup", "pgdown", "home", "end":
		if m.sess.Section() == shell.SectionTerminal {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd, true
		}
		if view := m.views[m.sess.Section()]; view != nil {
			return view.Update(msg), true
		}
		return nil, true
	}
	return nil, false
}

// submitLine feeds the current input to the interpreter and clears the
// input box. Every submission, including an empty one, lands in the
// scrollback.
func (m *Model) submitLine() {
	raw := m.input.Value()
	entry := m.interp.Eval(m.sess, raw)
	m.log.Debug().
		Str("input", raw).
		Bool("has_output", entry.HasOutput()).
		Str("section", string(m.sess.Section())).
		Msg("line evaluated")
	m.input.SetValue("")
	m.refreshScrollback(true)
}

// enterSection is the direct-navigation handler: same transition as a cd
// command, but it does not append to the scrollback.
func (m *Model) enterSection(sec shell.Section) {
	m.sess.EnterSection(sec)
}

func (m *Model) bodyHeight() int {
	// header + prompt + footer
	return maxInt(0, m.height-3)
}

func (m *Model) refreshScrollback(toBottom bool) {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderScrollback(m.viewport.Width))
	if toBottom {
		m.viewport.GotoBottom()
	}
}

func (m *Model) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	prompt := m.renderPromptLine()

	var body string
	if m.sess.Section() == shell.SectionTerminal {
		body = m.viewport.View()
	} else if view := m.views[m.sess.Section()]; view != nil {
		body = view.View(m.width, m.bodyHeight(), m.theme)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, prompt, footer)
}
