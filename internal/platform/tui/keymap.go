package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings translated into core keys. Letters are not
// bound here: they reach the game as runes so that name entry can use them,
// and the game itself treats w/a/s/d and p as movement and pause.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Erase   key.Binding
	Quit    key.Binding

	Screenshot key.Binding // Handled by the model, never forwarded
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Confirm, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Confirm, k.Back, k.Erase},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space/p", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "erase"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Translate converts a key message into zero or more core keys. Pasted text
// arrives as several runes in one message.
func (k KeyMap) Translate(msg tea.KeyMsg) []core.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return []core.Key{core.KeyOf(core.KeyInterrupt)}
	case key.Matches(msg, k.Up):
		return []core.Key{core.KeyOf(core.KeyUp)}
	case key.Matches(msg, k.Down):
		return []core.Key{core.KeyOf(core.KeyDown)}
	case key.Matches(msg, k.Left):
		return []core.Key{core.KeyOf(core.KeyLeft)}
	case key.Matches(msg, k.Right):
		return []core.Key{core.KeyOf(core.KeyRight)}
	case key.Matches(msg, k.Pause):
		return []core.Key{core.KeyOf(core.KeySpace)}
	case key.Matches(msg, k.Confirm):
		return []core.Key{core.KeyOf(core.KeyEnter)}
	case key.Matches(msg, k.Back):
		return []core.Key{core.KeyOf(core.KeyEscape)}
	case key.Matches(msg, k.Erase):
		return []core.Key{core.KeyOf(core.KeyBackspace)}
	}

	if msg.Type != tea.KeyRunes {
		return nil
	}
	keys := make([]core.Key, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		keys = append(keys, core.RuneKey(r))
	}
	return keys
}
