// Package config provides YAML-based configuration loading for the balloon
// game: round timing, speed ramp, spawn cadence, field size and scoring.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/balloon-pop/internal/core"
)

// BalloonConfig contains all configuration for a round of Balloon Pop.
type BalloonConfig struct {
	Round    RoundConfig    `yaml:"round"`
	Speed    SpeedConfig    `yaml:"speed"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Movement MovementConfig `yaml:"movement"`
	Field    FieldConfig    `yaml:"field"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Palette  []string       `yaml:"palette"`
}

// RoundConfig defines the round countdown.
type RoundConfig struct {
	DurationSeconds   int           `yaml:"duration_seconds"`
	CountdownInterval time.Duration `yaml:"countdown_interval"`
}

// SpeedConfig defines the linear speed ramp.
type SpeedConfig struct {
	Initial      int           `yaml:"initial"`       // Field units per movement tick
	Max          int           `yaml:"max"`           // Ramp cap
	RampInterval time.Duration `yaml:"ramp_interval"` // +1 speed every interval
}

// SpawnConfig defines balloon spawn cadence and size.
type SpawnConfig struct {
	Interval    time.Duration `yaml:"interval"`
	BalloonSize int           `yaml:"balloon_size"`
}

// MovementConfig defines the movement tick.
type MovementConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// FieldConfig defines the logical play field in field units.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig defines counter increments.
type ScoringConfig struct {
	PopPoints   int `yaml:"pop_points"`   // Added to the popped counter per pop
	MissPenalty int `yaml:"miss_penalty"` // Added to the missed counter per miss
}

// Colors resolves the palette names to screen colors.
// Unknown names resolve to ColorDefault; Validate reports them.
func (c BalloonConfig) Colors() []core.Color {
	colors := make([]core.Color, 0, len(c.Palette))
	for _, name := range c.Palette {
		col, _ := core.ParseColor(name)
		colors = append(colors, col)
	}
	return colors
}

// Validate checks that the configuration describes a playable round.
func (c BalloonConfig) Validate() error {
	var errs []error

	if c.Round.DurationSeconds <= 0 {
		errs = append(errs, fmt.Errorf("round.duration_seconds must be positive, got %d", c.Round.DurationSeconds))
	}
	if c.Round.CountdownInterval <= 0 {
		errs = append(errs, errors.New("round.countdown_interval must be positive"))
	}
	if c.Speed.Initial <= 0 {
		errs = append(errs, fmt.Errorf("speed.initial must be positive, got %d", c.Speed.Initial))
	}
	if c.Speed.Max < c.Speed.Initial {
		errs = append(errs, fmt.Errorf("speed.max (%d) is below speed.initial (%d)", c.Speed.Max, c.Speed.Initial))
	}
	if c.Speed.RampInterval <= 0 {
		errs = append(errs, errors.New("speed.ramp_interval must be positive"))
	}
	if c.Spawn.Interval <= 0 {
		errs = append(errs, errors.New("spawn.interval must be positive"))
	}
	if c.Movement.Interval <= 0 {
		errs = append(errs, errors.New("movement.interval must be positive"))
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must be positive, got %dx%d", c.Field.Width, c.Field.Height))
	}
	if c.Spawn.BalloonSize <= 0 || c.Spawn.BalloonSize > c.Field.Width {
		errs = append(errs, fmt.Errorf("spawn.balloon_size must be in [1, field.width], got %d", c.Spawn.BalloonSize))
	}
	if c.Scoring.PopPoints < 0 || c.Scoring.MissPenalty < 0 {
		errs = append(errs, errors.New("scoring values must not be negative"))
	}
	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette must not be empty"))
	}
	for _, name := range c.Palette {
		if _, ok := core.ParseColor(name); !ok {
			errs = append(errs, fmt.Errorf("palette: unknown color %q", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid balloon config: %w", errors.Join(errs...))
	}
	return nil
}
