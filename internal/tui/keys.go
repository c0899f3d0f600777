package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the calculator's key bindings. Keys typed into the display are
// not bindings; any rune in Keypad is appended as-is.
type KeyMap struct {
	Calculate key.Binding
	Clear     key.Binding
	Backspace key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// Keypad contains the runes that are appended to the display.
const Keypad = "0123456789.+-*/()"

// DefaultKeyMap mirrors a desktop calculator's keyboard support.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Calculate: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter", "calculate"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Calculate, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Calculate, k.Clear, k.Backspace},
		{k.Help, k.Quit},
	}
}
