package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBalloons loads Balloon Pop configuration.
// Search order: customPath -> ~/.balloons/configs/balloons.yaml -> ./configs/balloons.yaml -> embedded default
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadBalloons(customPath string) (BalloonConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BalloonConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseBalloons(data)
		if err != nil {
			return BalloonConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BalloonConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Unreadable or invalid files here are skipped rather than fatal.
	candidates := []string{userConfigPath("balloons.yaml"), filepath.Join("configs", "balloons.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseBalloons(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBalloons(defaultBalloonsYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultBalloonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBalloons decodes YAML on top of the hard-coded defaults.
func parseBalloons(data []byte) (BalloonConfig, error) {
	cfg := DefaultBalloonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BalloonConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg BalloonConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".balloons", "configs", filename)
}
