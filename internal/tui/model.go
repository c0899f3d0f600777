// Package tui is a terminal front end for a calculator session.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/arith/internal/calc"
)

// resetMsg asks the model to clear the display after a failed calculation.
// seq identifies the failure so that a stale reset does not clear newer input.
type resetMsg struct {
	seq int
}

// Model is a bubbletea model driving a calc.Session from the keyboard.
type Model struct {
	session *calc.Session
	keys    KeyMap
	help    help.Model
	seq     int // failed calculations so far
	err     error
}

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Width(32).
			Align(lipgloss.Right)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// New creates a model over s.
func New(s *calc.Session) Model {
	return Model{
		session: s,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Session returns the session the model drives.
func (m Model) Session() *calc.Session {
	return m.session
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case resetMsg:
		if msg.seq == m.seq && m.session.Failed() {
			m.session.Clear()
			m.err = nil
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Calculate):
			if err := m.session.Calculate(); err != nil {
				m.err = err
				m.seq++
				return m, resetAfter(m.seq)
			}
		case key.Matches(msg, m.keys.Clear):
			m.session.Clear()
			m.err = nil
		case key.Matches(msg, m.keys.Backspace):
			m.session.Backspace()
			m.err = nil
		case msg.Type == tea.KeyRunes:
			for _, r := range msg.Runes {
				if strings.ContainsRune(Keypad, r) {
					m.session.Append(string(r))
					m.err = nil
				}
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	text := m.session.Display()
	if m.session.Failed() {
		text = errorStyle.Render(text)
	}
	if text == "" {
		text = hintStyle.Render("0")
	}
	var b strings.Builder
	b.WriteString(displayStyle.Render(text))
	b.WriteByte('\n')
	if m.err != nil {
		b.WriteString(hintStyle.Render(m.err.Error()))
		b.WriteByte('\n')
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}

func resetAfter(seq int) tea.Cmd {
	return tea.Tick(calc.ResetDelay, func(time.Time) tea.Msg {
		return resetMsg{seq: seq}
	})
}

// Run runs the calculator on the terminal until the user quits.
func Run(s *calc.Session, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(s), opts...).Run()
	return err
}
