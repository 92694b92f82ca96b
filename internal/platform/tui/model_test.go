package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-pop/internal/config"
	"github.com/vovakirdan/balloon-pop/internal/core"
	"github.com/vovakirdan/balloon-pop/internal/games/balloon"
)

func newTestModel(t *testing.T, logger *log.Logger) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 42}
	return NewModel(balloon.New(config.DefaultBalloonConfig()), cfg, logger)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestModelReservesFooterRow(t *testing.T) {
	m := newTestModel(t, nil)
	if m.screen.Height() != 24 {
		t.Errorf("screen height = %d, want 24 (25 minus footer)", m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, "start") || !strings.Contains(view, "quit") {
		t.Errorf("view should include the help footer:\n%s", view)
	}
}

func TestModelStartAndReset(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	m := newTestModel(t, logger)

	m = update(t, m, runeKey("s"))
	m = update(t, m, TickMsg(time.Now()))
	if !m.GameState().Running {
		t.Fatal("s then tick should start the round")
	}

	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg(time.Now()))
	if m.GameState().Running {
		t.Error("r then tick should reset the round")
	}

	out := buf.String()
	for _, want := range []string{"round started", "round reset"} {
		if !strings.Contains(out, want) {
			t.Errorf("log should mention %q:\n%s", want, out)
		}
	}
}

func TestModelInputClearedAfterTick(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, runeKey("s"))
	m = update(t, m, tea.MouseMsg{X: 1, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(time.Now()))

	if len(m.inputFrame.Actions) != 0 || len(m.inputFrame.Taps) != 0 {
		t.Errorf("input frame not cleared: %+v", m.inputFrame)
	}
}

func TestModelMouseTapStarts(t *testing.T) {
	m := newTestModel(t, nil)

	// The idle modal is centered on the 80x24 field: Start sits on row 13.
	m = update(t, m, tea.MouseMsg{X: 40, Y: 13, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(time.Now()))

	if !m.GameState().Running {
		t.Error("tapping the Start button should start the round")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, runeKey("s"))
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
	if m.game.Snapshot().Phase != balloon.PhaseRunning {
		t.Error("resize should not reset the round")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce tea.QuitMsg")
	}
	if view := next.View(); view != "" {
		t.Errorf("view after quit = %q, want empty", view)
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := newTestModel(t, nil)
	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	if filepath.Dir(path) != filepath.Join(home, ".balloons", "screenshots") {
		t.Errorf("screenshot saved to %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Balloon Pop") {
		t.Errorf("screenshot should contain the idle screen:\n%s", data)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered output has %d newlines, want 1", got)
	}

	framed := RenderFrame(s, "help")
	lines := strings.Split(framed, "\n")
	if len(lines) != 3 || !strings.Contains(lines[2], "help") {
		t.Errorf("frame should end with the footer line: %q", framed)
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tc := range tests {
		if got := frameInterval(tc.rate); got != tc.want {
			t.Errorf("frameInterval(%d) = %v, want %v", tc.rate, got, tc.want)
		}
	}
}
