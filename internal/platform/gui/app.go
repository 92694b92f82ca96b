// Package gui provides the Ebiten front end for Balloon Pop: a window (or
// mobile view) at the logical field size where taps and clicks pop balloons.
package gui

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/balloon-pop/internal/config"
	"github.com/vovakirdan/balloon-pop/internal/games/balloon"
)

// frameInput is the input gathered during one Update.
type frameInput struct {
	Start  bool
	Reset  bool
	Replay bool
	Quit   bool
	Taps   []image.Point // Window pixels, which are field units
}

// App implements ebiten.Game around a round controller.
type App struct {
	cfg       config.BalloonConfig
	ctrl      *balloon.Controller
	logger    *log.Logger
	lastPhase balloon.Phase
	tps       int
	taps      []image.Point // Reused between frames
	touchIDs  []ebiten.TouchID
}

// NewApp creates an idle app. A nil logger discards output.
func NewApp(cfg config.BalloonConfig, seed int64, tps int, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &App{
		cfg:    cfg,
		ctrl:   balloon.NewController(cfg, seed),
		logger: logger,
		tps:    tps,
	}
}

// Controller exposes the round controller.
func (a *App) Controller() *balloon.Controller {
	return a.ctrl
}

// Update reads input and advances the round by one tick.
func (a *App) Update() error {
	return a.step(a.readInput())
}

// readInput collects this frame's keys, clicks and touches.
func (a *App) readInput() frameInput {
	in := frameInput{
		Start:  inpututil.IsKeyJustPressed(ebiten.KeyS),
		Reset:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		Replay: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Quit:   inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}

	a.taps = a.taps[:0]
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.taps = append(a.taps, image.Pt(x, y))
	}
	a.touchIDs = inpututil.AppendJustPressedTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		x, y := ebiten.TouchPosition(id)
		a.taps = append(a.taps, image.Pt(x, y))
	}
	in.Taps = a.taps

	return in
}

// step applies one frame of input, then advances simulated time.
func (a *App) step(in frameInput) error {
	if in.Quit {
		a.logger.Info("quit", "score", a.ctrl.FinalScore())
		return ebiten.Termination
	}

	if in.Reset {
		a.ctrl.Reset()
	}
	if in.Start {
		a.ctrl.Start()
	}
	if in.Replay {
		a.ctrl.Replay()
	}

	for _, p := range in.Taps {
		a.tap(p)
	}

	a.ctrl.Advance(time.Second / time.Duration(a.tps))
	a.logTransition()
	return nil
}

// tap resolves one tap: buttons first, then the topmost balloon.
func (a *App) tap(p image.Point) {
	w, h := a.cfg.Field.Width, a.cfg.Field.Height
	if kind, ok := buttonAt(layoutButtons(a.ctrl.Phase(), w, h), p); ok {
		switch kind {
		case balloon.ButtonStart:
			a.ctrl.Start()
		case balloon.ButtonReset:
			a.ctrl.Reset()
		case balloon.ButtonReplay:
			a.ctrl.Replay()
		}
		return
	}

	if id, ok := a.ctrl.Tap(p.X, p.Y); ok {
		a.logger.Debug("popped", "id", id, "x", p.X, "y", p.Y)
	}
}

func (a *App) logTransition() {
	phase := a.ctrl.Phase()
	if phase == a.lastPhase {
		return
	}
	switch phase {
	case balloon.PhaseRunning:
		a.logger.Info("round started", "from", a.lastPhase)
	case balloon.PhaseGameOver:
		snap := a.ctrl.Snapshot()
		a.logger.Info("round over", "popped", snap.Popped, "missed", snap.Missed, "score", snap.FinalScore())
	case balloon.PhaseIdle:
		a.logger.Info("round reset", "from", a.lastPhase)
	}
	a.lastPhase = phase
}

// Layout fixes the logical screen to the field size; Ebiten scales it to
// the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Field.Width, a.cfg.Field.Height
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.BalloonConfig, seed int64, tps int, logger *log.Logger) error {
	app := NewApp(cfg, seed, tps, logger)

	ebiten.SetWindowSize(cfg.Field.Width, cfg.Field.Height)
	ebiten.SetWindowTitle("Balloon Pop")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.tps)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
