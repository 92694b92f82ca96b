package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/balloon-pop/internal/core"
)

// KeyMap defines the key bindings for a round.
type KeyMap struct {
	Start      key.Binding
	Reset      key.Binding
	Replay     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Reset, k.Replay, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Reset, k.Replay},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea input messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart, false
	case key.Matches(msg, km.keys.Reset):
		return core.ActionReset, false
	case key.Matches(msg, km.keys.Replay):
		return core.ActionReplay, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left-button press as a tap.
// Returns true if the message produced a tap.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	frame.AddTap(msg.X, msg.Y)
	return true
}
