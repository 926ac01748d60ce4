package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Viewport: ViewportConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Track: TrackConfig{
			GroundOffset: 40,
			Epsilon:      2,
		},
		Player: PlayerConfig{
			X:            120,
			StartYOffset: 70,
			Width:        60,
			Height:       60,
			Hitbox:       core.Inset{OffsetX: 0.2, OffsetY: 0.2, Width: 0.2, Height: 0.2},
		},
		Jump: JumpConfig{
			Height:        120,
			PhaseDuration: 0.5,
		},
		Barriers: PoolConfig{
			Width:           40,
			Height:          60,
			Altitude:        0,
			Spacing:         550,
			Jitter:          200,
			SpeedMultiplier: 1.0,
			RecycleX:        -100,
			StartOffset:     0,
			Hitbox:          core.Inset{OffsetX: 0.1, OffsetY: 0.1, Width: 0.4, Height: 0.4},
		},
		Birds: PoolConfig{
			Width:           50,
			Height:          30,
			Altitude:        70,
			Spacing:         1100,
			Jitter:          200,
			SpeedMultiplier: 1.0,
			RecycleX:        -100,
			StartOffset:     275, // Half the barrier spacing
			Hitbox:          core.Inset{OffsetX: 0.1, OffsetY: 0.2, Width: 0.5, Height: 0.5},
		},
		Progression: ProgressionConfig{
			BaseSpeed:        300,
			DistancePerPoint: 10,
			Threshold:        1000,
			Increment:        50,
		},
		Notify: NotifyConfig{
			Endpoint: "",
			Message:  "connect server",
			Timeout:  3 * time.Second,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
