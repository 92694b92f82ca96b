package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/balloon-pop/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadBalloons("")
	if err != nil {
		t.Fatalf("LoadBalloons() failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultBalloonConfig()) {
		t.Errorf("embedded YAML differs from DefaultBalloonConfig():\n got %+v\nwant %+v", cfg, DefaultBalloonConfig())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := DefaultBalloonConfig()

	if cfg.Round.DurationSeconds != 120 {
		t.Errorf("round duration = %d, want 120", cfg.Round.DurationSeconds)
	}
	if cfg.Speed.Initial != 2 || cfg.Speed.Max != 7 {
		t.Errorf("speed = %d..%d, want 2..7", cfg.Speed.Initial, cfg.Speed.Max)
	}
	if cfg.Speed.RampInterval != 30*time.Second {
		t.Errorf("ramp interval = %v, want 30s", cfg.Speed.RampInterval)
	}
	if cfg.Movement.Interval != 25*time.Millisecond {
		t.Errorf("movement interval = %v, want 25ms", cfg.Movement.Interval)
	}
	if cfg.Spawn.BalloonSize != 50 {
		t.Errorf("balloon size = %d, want 50", cfg.Spawn.BalloonSize)
	}
	if cfg.Scoring.PopPoints != 2 || cfg.Scoring.MissPenalty != 1 {
		t.Errorf("scoring = %+v, want pop 2 / miss 1", cfg.Scoring)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
round:
  duration_seconds: 60
movement:
  interval: 50ms
palette: [yellow, magenta]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBalloons(path)
	if err != nil {
		t.Fatalf("LoadBalloons(%q) failed: %v", path, err)
	}

	if cfg.Round.DurationSeconds != 60 {
		t.Errorf("duration = %d, want 60", cfg.Round.DurationSeconds)
	}
	if cfg.Movement.Interval != 50*time.Millisecond {
		t.Errorf("movement interval = %v, want 50ms", cfg.Movement.Interval)
	}
	// Untouched keys keep defaults
	if cfg.Round.CountdownInterval != time.Second {
		t.Errorf("countdown interval = %v, want default 1s", cfg.Round.CountdownInterval)
	}
	if cfg.Speed.Max != 7 {
		t.Errorf("speed max = %d, want default 7", cfg.Speed.Max)
	}

	colors := cfg.Colors()
	if len(colors) != 2 || colors[0] != core.ColorYellow || colors[1] != core.ColorMagenta {
		t.Errorf("Colors() = %v, want [yellow magenta]", colors)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"malformed yaml", "round: [unclosed", "failed to parse"},
		{"bad duration", "movement:\n  interval: soon\n", "failed to parse"},
		{"invalid speed", "speed:\n  initial: 5\n  max: 3\n", "speed.max"},
		{"unknown color", "palette: [chartreuse]\n", "chartreuse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}

			_, err := LoadBalloons(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("error %q should mention %q", err, tc.errPart)
			}
		})
	}

	if _, err := LoadBalloons(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".balloons", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "balloons.yaml"), []byte("spawn:\n  interval: 500ms\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBalloons("")
	if err != nil {
		t.Fatalf("LoadBalloons() failed: %v", err)
	}
	if cfg.Spawn.Interval != 500*time.Millisecond {
		t.Errorf("spawn interval = %v, want 500ms from user config", cfg.Spawn.Interval)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BalloonConfig)
	}{
		{"zero duration", func(c *BalloonConfig) { c.Round.DurationSeconds = 0 }},
		{"zero countdown interval", func(c *BalloonConfig) { c.Round.CountdownInterval = 0 }},
		{"zero initial speed", func(c *BalloonConfig) { c.Speed.Initial = 0 }},
		{"max below initial", func(c *BalloonConfig) { c.Speed.Max = 1 }},
		{"zero ramp interval", func(c *BalloonConfig) { c.Speed.RampInterval = 0 }},
		{"zero spawn interval", func(c *BalloonConfig) { c.Spawn.Interval = 0 }},
		{"zero move interval", func(c *BalloonConfig) { c.Movement.Interval = 0 }},
		{"empty field", func(c *BalloonConfig) { c.Field.Height = 0 }},
		{"balloon wider than field", func(c *BalloonConfig) { c.Spawn.BalloonSize = c.Field.Width + 1 }},
		{"negative penalty", func(c *BalloonConfig) { c.Scoring.MissPenalty = -1 }},
		{"empty palette", func(c *BalloonConfig) { c.Palette = nil }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBalloonConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestMarshalDurationsAsStrings(t *testing.T) {
	data, err := Marshal(DefaultBalloonConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	out := string(data)
	for _, want := range []string{"interval: 25ms", "ramp_interval: 30s", "duration_seconds: 120"} {
		if !strings.Contains(out, want) {
			t.Errorf("marshalled config should contain %q:\n%s", want, out)
		}
	}
}
