package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/balloon-pop/internal/config"
	"github.com/vovakirdan/balloon-pop/internal/games/balloon"
)

func TestSimulatePopEverything(t *testing.T) {
	res := simulate(config.DefaultBalloonConfig(), 42, 10, 1, nil)

	if res.Spawned != 10 {
		t.Errorf("spawned = %d in 10s, want 10", res.Spawned)
	}
	snap := res.Snapshot
	if snap.Popped != 2*res.Spawned || snap.Missed != 0 {
		t.Errorf("popped/missed = %d/%d, want %d/0", snap.Popped, snap.Missed, 2*res.Spawned)
	}
	if snap.Phase != balloon.PhaseRunning || snap.RemainingSeconds != 110 {
		t.Errorf("phase/remaining = %v/%d, want running/110", snap.Phase, snap.RemainingSeconds)
	}
}

func TestSimulateNeverPop(t *testing.T) {
	res := simulate(config.DefaultBalloonConfig(), 42, 10, 0, nil)

	snap := res.Snapshot
	if snap.Popped != 0 {
		t.Errorf("popped = %d, want 0", snap.Popped)
	}
	if snap.Missed == 0 {
		t.Error("balloons spawned early should have landed by 10s")
	}
	if snap.FinalScore() != 0 {
		t.Errorf("score = %d without pops, want 0", snap.FinalScore())
	}
}

func TestSimulateFullRound(t *testing.T) {
	cfg := config.DefaultBalloonConfig()
	cfg.Round.DurationSeconds = 5

	var log bytes.Buffer
	res := simulate(cfg, 7, 0, 2, &log)

	if res.Snapshot.Phase != balloon.PhaseGameOver {
		t.Fatalf("phase = %v, want game_over", res.Snapshot.Phase)
	}
	if res.Snapshot.RemainingSeconds != 0 || len(res.Snapshot.Balloons) != 0 {
		t.Errorf("finished round should be empty at 00:00, got %+v", res.Snapshot)
	}
	if !strings.Contains(log.String(), "round over") {
		t.Errorf("progress log should report the end of the round: %q", log.String())
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.DefaultBalloonConfig()
	a := simulate(cfg, 99, 45, 3, nil)
	b := simulate(cfg, 99, 45, 3, nil)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different runs:\n%+v\n%+v", a, b)
	}
}
