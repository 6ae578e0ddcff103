package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/ecohero/engine"
	"github.com/nathoo/ecohero/play"
)

// Model is the Bubble Tea model for the EcoHero TUI.
type Model struct {
	driver *play.Driver
	keys   keyMap

	viewport viewport.Model
	input    textinput.Model
	history  *History
	lines    transcript

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
	lastCmd  string
}

// outputMsg carries one turn of output into Update.
type outputMsg struct {
	input  string // echoed command, empty for the intro
	lines  []string
	origin origin
	quit   bool
}

// New creates a TUI model wired to the given session.
func New(sess *engine.Session) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "fight 1"
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		driver:  play.New(sess),
		keys:    defaultKeyMap(),
		input:   ti,
		history: NewHistory(100),
	}
}

// Run starts the Bubble Tea program.
func Run(sess *engine.Session) error {
	_, err := tea.NewProgram(New(sess), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// Init shows the intro and roster.
func (m Model) Init() tea.Cmd {
	intro := m.driver.Intro()
	return tea.Batch(textinput.Blink, func() tea.Msg {
		return outputMsg{lines: intro}
	})
}

// Update handles key presses, resizes and turn output.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Older):
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil
		case key.Matches(msg, m.keys.Newer):
			next, _ := m.history.Next()
			m.input.SetValue(next)
			m.input.CursorEnd()
			return m, nil
		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case outputMsg:
		m.lines = m.lines.add(msg.input, msg.lines, msg.origin)
		m.refresh()
		if msg.quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	vpHeight := max(height-2, 1) // status bar and input line

	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.viewport.KeyMap = viewportKeyMap(m.keys)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.refresh()
}

// submit runs the typed line and returns its output as a message.
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if input == "" {
		return m, nil
	}
	m.history.Push(input)
	m.history.ResetCursor()

	out := m.run(input)
	return m, func() tea.Msg { return out }
}

// run dispatches one command line. It mutates the model (trace toggle,
// last command) but leaves the transcript to Update.
func (m *Model) run(input string) outputMsg {
	if strings.HasPrefix(input, "/") {
		lines, quit := m.handleMeta(input)
		return outputMsg{input: input, lines: lines, origin: fromSystem, quit: quit}
	}

	switch strings.ToLower(input) {
	case "again", "g":
		if m.lastCmd == "" {
			return outputMsg{input: input, lines: []string{"Nothing to repeat."}, origin: fromSystem}
		}
		input = m.lastCmd
	default:
		m.lastCmd = input
	}

	result := m.driver.Step(input)
	lines := result.Output
	if m.trace {
		lines = append(lines, formatTrace(result)...)
	}
	return outputMsg{input: input, lines: lines, origin: fromGame}
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.lines.render(m.width))
	m.viewport.GotoBottom()
}

// View renders the viewport, the status bar and the input line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return strings.Join([]string{m.viewport.View(), m.renderStatusBar(), m.input.View()}, "\n")
}
