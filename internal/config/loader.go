package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	var cfg RunnerConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err = parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults, so a partial file only
// overrides the keys it names.
func parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// Validate reports every out-of-range field in cfg.
func (cfg RunnerConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", name, v))
		}
	}

	positive("viewport.cell_width", cfg.Viewport.CellWidth)
	positive("viewport.cell_height", cfg.Viewport.CellHeight)
	nonNegative("track.epsilon", cfg.Track.Epsilon)

	positive("player.width", cfg.Player.Width)
	positive("player.height", cfg.Player.Height)

	nonNegative("jump.height", cfg.Jump.Height)
	positive("jump.phase_duration", cfg.Jump.PhaseDuration)

	for _, p := range []struct {
		name string
		cfg  PoolConfig
	}{{"barriers", cfg.Barriers}, {"birds", cfg.Birds}} {
		positive(p.name+".width", p.cfg.Width)
		positive(p.name+".height", p.cfg.Height)
		positive(p.name+".spacing", p.cfg.Spacing)
		nonNegative(p.name+".jitter", p.cfg.Jitter)
		nonNegative(p.name+".speed_multiplier", p.cfg.SpeedMultiplier)
		nonNegative(p.name+".start_offset", p.cfg.StartOffset)
	}

	positive("progression.base_speed", cfg.Progression.BaseSpeed)
	positive("progression.distance_per_point", cfg.Progression.DistancePerPoint)
	if cfg.Progression.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("progression.threshold must be positive, got %d", cfg.Progression.Threshold))
	}
	nonNegative("progression.increment", cfg.Progression.Increment)

	nonNegative("notify.timeout", cfg.Notify.Timeout.Seconds())

	return errors.Join(errs...)
}
