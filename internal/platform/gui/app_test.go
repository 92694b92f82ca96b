package gui

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/balloon-pop/internal/config"
	"github.com/vovakirdan/balloon-pop/internal/games/balloon"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	return NewApp(config.DefaultBalloonConfig(), 42, 60, nil)
}

func centerOf(t *testing.T, phase balloon.Phase, kind balloon.Button) image.Point {
	t.Helper()
	for _, b := range layoutButtons(phase, 360, 640) {
		if b.Kind == kind {
			return image.Pt((b.Rect.Min.X+b.Rect.Max.X)/2, (b.Rect.Min.Y+b.Rect.Max.Y)/2)
		}
	}
	t.Fatalf("no %q button in phase %v", kind.Label(), phase)
	return image.Point{}
}

func TestLayoutButtonsPerPhase(t *testing.T) {
	tests := []struct {
		phase balloon.Phase
		want  []balloon.Button
	}{
		{balloon.PhaseIdle, []balloon.Button{balloon.ButtonStart}},
		{balloon.PhaseRunning, []balloon.Button{balloon.ButtonReset}},
		{balloon.PhaseGameOver, []balloon.Button{balloon.ButtonReplay, balloon.ButtonReset}},
	}

	field := image.Rect(0, 0, 360, 640)
	for _, tc := range tests {
		t.Run(tc.phase.String(), func(t *testing.T) {
			buttons := layoutButtons(tc.phase, 360, 640)
			if len(buttons) != len(tc.want) {
				t.Fatalf("got %d buttons, want %d", len(buttons), len(tc.want))
			}
			for i, b := range buttons {
				if b.Kind != tc.want[i] {
					t.Errorf("button %d = %v, want %v", i, b.Kind, tc.want[i])
				}
				if !b.Rect.In(field) {
					t.Errorf("button %v at %v is outside the field", b.Kind, b.Rect)
				}
			}
			for i := 1; i < len(buttons); i++ {
				if buttons[i].Rect.Overlaps(buttons[i-1].Rect) {
					t.Errorf("buttons %d and %d overlap", i-1, i)
				}
			}
		})
	}
}

func TestStepKeys(t *testing.T) {
	a := newTestApp(t)

	if err := a.step(frameInput{Start: true}); err != nil {
		t.Fatal(err)
	}
	if a.ctrl.Phase() != balloon.PhaseRunning {
		t.Fatalf("phase = %v, want running", a.ctrl.Phase())
	}

	if err := a.step(frameInput{Reset: true}); err != nil {
		t.Fatal(err)
	}
	if a.ctrl.Phase() != balloon.PhaseIdle {
		t.Errorf("phase = %v, want idle", a.ctrl.Phase())
	}
}

func TestStepQuitTerminates(t *testing.T) {
	a := newTestApp(t)
	if err := a.step(frameInput{Quit: true}); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit should return ebiten.Termination, got %v", err)
	}
}

func TestTapButtons(t *testing.T) {
	a := newTestApp(t)

	a.step(frameInput{Taps: []image.Point{centerOf(t, balloon.PhaseIdle, balloon.ButtonStart)}})
	if a.ctrl.Phase() != balloon.PhaseRunning {
		t.Fatalf("Start tap: phase = %v, want running", a.ctrl.Phase())
	}

	a.step(frameInput{Taps: []image.Point{centerOf(t, balloon.PhaseRunning, balloon.ButtonReset)}})
	if a.ctrl.Phase() != balloon.PhaseIdle {
		t.Errorf("Reset tap: phase = %v, want idle", a.ctrl.Phase())
	}
}

func TestTapPopsBalloon(t *testing.T) {
	a := newTestApp(t)
	a.step(frameInput{Start: true})
	a.ctrl.TickSpawn()

	b := a.ctrl.Snapshot().Balloons[0]
	size := a.cfg.Spawn.BalloonSize
	a.step(frameInput{Taps: []image.Point{image.Pt(b.X+size/2, b.Y+size/2)}})

	snap := a.ctrl.Snapshot()
	if snap.Popped != 2 {
		t.Errorf("popped = %d, want 2", snap.Popped)
	}
	for _, left := range snap.Balloons {
		if left.ID == b.ID {
			t.Error("tapped balloon is still on screen")
		}
	}
}

func TestStepAdvancesOneTick(t *testing.T) {
	a := newTestApp(t)
	a.step(frameInput{Start: true})

	// The start frame plus 60 more is 61 ticks, just over one second
	for i := 0; i < 60; i++ {
		a.step(frameInput{})
	}
	snap := a.ctrl.Snapshot()
	if snap.RemainingSeconds != 119 {
		t.Errorf("remaining = %d after one second, want 119", snap.RemainingSeconds)
	}
	if len(snap.Balloons) != 1 {
		t.Errorf("balloons = %d after one second, want 1", len(snap.Balloons))
	}
}

func TestLayoutIsFieldSize(t *testing.T) {
	a := newTestApp(t)
	w, h := a.Layout(1080, 1920)
	if w != 360 || h != 640 {
		t.Errorf("Layout() = %dx%d, want 360x640", w, h)
	}
}

func TestLerpRGBA(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 50, 255}

	if got := lerpRGBA(a, b, 0); got != a {
		t.Errorf("lerp(0) = %v, want %v", got, a)
	}
	if got := lerpRGBA(a, b, 1); got != b {
		t.Errorf("lerp(1) = %v, want %v", got, b)
	}
	if got := lerpRGBA(a, b, 0.5); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("lerp(0.5) = %v", got)
	}
}
