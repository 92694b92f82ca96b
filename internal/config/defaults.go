package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/balloons.yaml
var defaultBalloonsYAML []byte

// DefaultBalloonConfig returns the default Balloon Pop configuration.
func DefaultBalloonConfig() BalloonConfig {
	return BalloonConfig{
		Round: RoundConfig{
			DurationSeconds:   120,
			CountdownInterval: time.Second,
		},
		Speed: SpeedConfig{
			Initial:      2,
			Max:          7,
			RampInterval: 30 * time.Second,
		},
		Spawn: SpawnConfig{
			Interval:    time.Second,
			BalloonSize: 50,
		},
		Movement: MovementConfig{
			Interval: 25 * time.Millisecond,
		},
		Field: FieldConfig{
			Width:  360,
			Height: 640,
		},
		Scoring: ScoringConfig{
			PopPoints:   2,
			MissPenalty: 1,
		},
		Palette: []string{"red", "blue", "green"},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBalloonsYAML
}
