package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/balloon-pop/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"start", runeKey("s"), core.ActionStart, false},
		{"reset", runeKey("r"), core.ActionReset, false},
		{"replay", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionReplay, false},
		{"quit q", runeKey("q"), core.ActionQuit, true},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("x"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("s"), &frame) {
		t.Error("s should not quit")
	}
	if !frame.Has(core.ActionStart) {
		t.Error("s should set ActionStart")
	}

	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is handled by the model, not forwarded to the game")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		tap  bool
	}{
		{"left press", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
		{"left release", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{"right press", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false},
		{"motion", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionMotion}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			got := km.MapMouseToFrame(tc.msg, &frame)
			if got != tc.tap {
				t.Fatalf("MapMouseToFrame() = %v, want %v", got, tc.tap)
			}
			if tc.tap && (len(frame.Taps) != 1 || frame.Taps[0] != (core.Tap{X: 4, Y: 7})) {
				t.Errorf("frame taps = %v, want [{4 7}]", frame.Taps)
			}
			if !tc.tap && len(frame.Taps) != 0 {
				t.Errorf("frame taps = %v, want none", frame.Taps)
			}
		})
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if n := len(keys.ShortHelp()); n != 4 {
		t.Errorf("ShortHelp() has %d bindings, want 4", n)
	}
	for _, b := range keys.ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v lacks help text", b.Keys())
		}
	}
}
