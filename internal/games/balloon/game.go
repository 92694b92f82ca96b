package balloon

import (
	"fmt"
	"time"

	"github.com/vovakirdan/balloon-pop/internal/config"
	"github.com/vovakirdan/balloon-pop/internal/core"
)

const balloonRune = '█'

// Game adapts the round controller to a fixed-tick platform loop.
// Each Step applies actions, then taps, then advances the round clock by
// one platform tick.
type Game struct {
	cfg      config.BalloonConfig
	ctrl     *Controller
	tickRate int
	screenW  int
	screenH  int
}

// New creates a Balloon Pop game using the given configuration.
func New(cfg config.BalloonConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "balloons"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Balloon Pop"
}

// Reset builds a fresh idle controller seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ctrl = NewController(g.cfg, cfg.Seed)
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
}

// Resize updates the terminal size used for layout. The round is unaffected
// since balloons live in field units.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Controller exposes the underlying round controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// TickDuration returns the simulated time covered by one Step.
func (g *Game) TickDuration() time.Duration {
	return time.Second / time.Duration(g.tickRate)
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionReset) {
		g.apply(core.ActionReset)
	}
	if input.Has(core.ActionStart) {
		g.apply(core.ActionStart)
	}
	if input.Has(core.ActionReplay) {
		g.apply(core.ActionReplay)
	}

	// Taps land before the movement tick, so a balloon tapped in the same
	// frame it would cross the bottom counts as popped.
	for _, tap := range input.Taps {
		g.handleTap(tap)
	}

	g.ctrl.Advance(g.TickDuration())

	return core.StepResult{State: g.State()}
}

func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionStart:
		g.ctrl.Start()
	case core.ActionReset:
		g.ctrl.Reset()
	case core.ActionReplay:
		g.ctrl.Replay()
	}
}

// handleTap resolves a tap in screen cells: buttons first, then the topmost
// balloon under the cell.
func (g *Game) handleTap(tap core.Tap) {
	l := computeLayout(g.screenW, g.screenH, g.ctrl.Phase())
	if b := l.buttonAt(tap.X, tap.Y); b != ButtonNone {
		g.apply(b.Action())
		return
	}
	if g.ctrl.Phase() != PhaseRunning || !l.field.Contains(tap.X, tap.Y) {
		return
	}
	if id, ok := g.balloonAt(l, tap.X, tap.Y); ok {
		g.ctrl.Pop(id)
	}
}

// balloonAt hit-tests against the rendered cell rects, newest first.
func (g *Game) balloonAt(l screenLayout, x, y int) (string, bool) {
	size := g.cfg.Spawn.BalloonSize
	balloons := g.ctrl.balloons
	for i := len(balloons) - 1; i >= 0; i-- {
		r := l.balloonCells(balloons[i], size, g.cfg.Field.Width, g.cfg.Field.Height)
		if r.Contains(x, y) {
			return balloons[i].ID, true
		}
	}
	return "", false
}

// Render draws the field, the HUD and any modal to dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.ctrl.Snapshot()
	l := computeLayout(dst.Width(), dst.Height(), snap.Phase)

	g.renderBalloons(dst, l, snap)
	g.renderHUD(dst, l, snap)

	switch snap.Phase {
	case PhaseIdle:
		g.renderModal(dst, l,
			"Balloon Pop",
			"Tap balloons before they land",
			"Press S or tap Start",
		)
	case PhaseGameOver:
		g.renderModal(dst, l,
			"Time's up!",
			fmt.Sprintf("Popped: %d  Missed: %d", snap.Popped, snap.Missed),
			fmt.Sprintf("Score: %d", snap.FinalScore()),
		)
	}

	for _, pb := range l.buttons {
		dst.DrawTextColor(pb.rect.X, pb.rect.Y, pb.button.Label(), core.ColorBrightGreen)
	}
}

func (g *Game) renderBalloons(dst *core.Screen, l screenLayout, snap Snapshot) {
	size := g.cfg.Spawn.BalloonSize
	for i, b := range snap.Balloons {
		r := l.balloonCells(b, size, g.cfg.Field.Width, g.cfg.Field.Height)
		dst.DrawDisc(r, balloonRune, g.ctrl.ColorFor(i))
	}
}

func (g *Game) renderHUD(dst *core.Screen, l screenLayout, snap Snapshot) {
	if l.hud.H == 0 {
		return
	}
	dst.DrawRect(l.hud, ' ')
	hud := fmt.Sprintf(" %s  Speed %d  Popped %d  Missed %d",
		snap.Clock(), snap.Speed, snap.Popped, snap.Missed)
	dst.DrawTextColor(0, l.hud.Y, hud, core.ColorBrightWhite)
}

// renderModal draws a bordered box with three centered lines.
func (g *Game) renderModal(dst *core.Screen, l screenLayout, title, line1, line2 string) {
	m := l.modal
	if m.W < 2 || m.H < 2 {
		return
	}
	dst.DrawRect(m, ' ')
	dst.DrawBox(m)

	lines := []struct {
		text  string
		color core.Color
	}{
		{title, core.ColorBrightYellow},
		{line1, core.ColorDefault},
		{line2, core.ColorDefault},
	}
	for i, ln := range lines {
		y := m.Y + 1 + i
		if y >= m.Bottom()-1 {
			break
		}
		x := m.X + (m.W-len([]rune(ln.text)))/2
		dst.DrawTextColor(core.Max(x, m.X+1), y, ln.text, ln.color)
	}
}

// State returns the coarse game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ctrl.FinalScore(),
		Running:  g.ctrl.Phase() == PhaseRunning,
		GameOver: g.ctrl.Phase() == PhaseGameOver,
	}
}

// Snapshot returns the controller's current snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.ctrl.Snapshot()
}
