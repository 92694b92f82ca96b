package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-pop/internal/core"
	"github.com/vovakirdan/balloon-pop/internal/games/balloon"
)

// footerRows is the number of rows below the field reserved for help.
const footerRows = 1

// Model is the Bubble Tea model for a Balloon Pop session.
type Model struct {
	game       *balloon.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	lastPhase  balloon.Phase
	lastPopped int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size; one row is kept for the help footer.
// A nil logger discards output.
func NewModel(game *balloon.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg.ScreenH = core.Max(cfg.ScreenH-footerRows, 0)
	game.Reset(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		logger:     logger,
		lastPhase:  balloon.PhaseIdle,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session ready", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}

	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The round keeps running: balloons live in field units, not cells.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(msg.Height-footerRows, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logRound()

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logRound logs pops at debug level and phase changes of the round.
func (m *Model) logRound() {
	snap := m.game.Snapshot()
	if snap.Popped > m.lastPopped {
		m.logger.Debug("popped", "popped", snap.Popped, "left", len(snap.Balloons))
	}
	m.lastPopped = snap.Popped

	if snap.Phase == m.lastPhase {
		return
	}

	switch snap.Phase {
	case balloon.PhaseRunning:
		m.logger.Info("round started", "from", m.lastPhase)
	case balloon.PhaseGameOver:
		m.logger.Info("round over",
			"popped", snap.Popped,
			"missed", snap.Missed,
			"score", snap.FinalScore(),
		)
	case balloon.PhaseIdle:
		m.logger.Info("round reset", "from", m.lastPhase)
	}
	m.lastPhase = snap.Phase
}

// saveScreenshot writes the current screen as plain text under
// ~/.balloons/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".balloons", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderFrame(m.screen, m.help.View(m.keyMapper.Keys()))
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game *balloon.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Taps arrive as mouse presses
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
