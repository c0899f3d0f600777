package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/arith/internal/calc"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds messages to m and returns the updated model and the last command.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m, cmd
}

func TestTyping(t *testing.T) {
	m := New(calc.New())
	m, _ = send(t, m, runes("2"), runes("+"), runes("3"), runes("x"), runes("*4"))
	assert.Equal(t, "2+3*4", m.Session().Display())

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "14", m.Session().Display())
	assert.Contains(t, m.View(), "14")
}

func TestEqualsCalculates(t *testing.T) {
	m := New(calc.New())
	m, _ = send(t, m, runes("(2+3)*4"), runes("="))
	assert.Equal(t, "20", m.Session().Display())
}

func TestClearAndBackspace(t *testing.T) {
	m := New(calc.New())
	m, _ = send(t, m, runes("123"), tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "12", m.Session().Display())
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", m.Session().Display())
}

func TestErrorReset(t *testing.T) {
	m := New(calc.New())
	m, cmd := send(t, m, runes("1/0"), tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.Session().Failed())
	assert.Equal(t, calc.ErrorText, m.Session().Display())
	assert.Contains(t, m.View(), calc.ErrorText)
	assert.Contains(t, m.View(), "division by zero")

	m, _ = send(t, m, resetMsg{seq: m.seq})
	assert.False(t, m.Session().Failed())
	assert.Equal(t, "", m.Session().Display())
	assert.NotContains(t, m.View(), "division by zero")
}

func TestStaleReset(t *testing.T) {
	m := New(calc.New())
	m, _ = send(t, m, runes("1/0"), tea.KeyMsg{Type: tea.KeyEnter})
	stale := m.seq
	// Typing after the error starts new input which a late reset must keep.
	m, _ = send(t, m, runes("7"))
	m, _ = send(t, m, resetMsg{seq: stale})
	assert.Equal(t, "7", m.Session().Display())

	m, _ = send(t, m, runes("/0"), tea.KeyMsg{Type: tea.KeyEnter})
	require.NotEqual(t, stale, m.seq)
	m, _ = send(t, m, resetMsg{seq: stale})
	assert.True(t, m.Session().Failed())
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, runes("q")} {
		_, cmd := send(t, New(calc.New()), msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestHelpToggle(t *testing.T) {
	m := New(calc.New())
	short := m.View()
	m, _ = send(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.NotEqual(t, short, m.View())
	assert.Contains(t, m.View(), "delete")
}
