// Package config provides YAML-based configuration loading for the runner.
package config

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// RunnerConfig contains all tunables of an endless runner session.
// Lengths are world units, durations are seconds unless typed otherwise.
type RunnerConfig struct {
	Viewport    ViewportConfig    `yaml:"viewport"`
	Track       TrackConfig       `yaml:"track"`
	Player      PlayerConfig      `yaml:"player"`
	Jump        JumpConfig        `yaml:"jump"`
	Barriers    PoolConfig        `yaml:"barriers"`
	Birds       PoolConfig        `yaml:"birds"`
	Progression ProgressionConfig `yaml:"progression"`
	Notify      NotifyConfig      `yaml:"notify"`
}

// ViewportConfig maps terminal cells to world units.
type ViewportConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per column
	CellHeight float64 `yaml:"cell_height"` // World units per row
}

// TrackConfig defines the scrolling ground.
type TrackConfig struct {
	GroundOffset float64 `yaml:"ground_offset"` // Ground line distance from the viewport bottom
	Epsilon      float64 `yaml:"epsilon"`       // Overlap applied when a segment wraps
}

// PlayerConfig defines the player sprite and its start position.
type PlayerConfig struct {
	X            float64    `yaml:"x"`              // Sprite centre from the left edge
	StartYOffset float64    `yaml:"start_y_offset"` // Sprite centre from the viewport bottom
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	Hitbox       core.Inset `yaml:"hitbox"`
}

// JumpConfig defines the two-phase jump arc.
type JumpConfig struct {
	Height        float64 `yaml:"height"`
	PhaseDuration float64 `yaml:"phase_duration"` // Rise time; the fall takes the same
}

// PoolConfig defines one obstacle pool.
type PoolConfig struct {
	Width           float64    `yaml:"width"`
	Height          float64    `yaml:"height"`
	Altitude        float64    `yaml:"altitude"` // Bottom edge height above the ground line
	Spacing         float64    `yaml:"spacing"`  // Base gap between consecutive obstacles
	Jitter          float64    `yaml:"jitter"`   // Upper bound of the random extra gap
	SpeedMultiplier float64    `yaml:"speed_multiplier"`
	RecycleX        float64    `yaml:"recycle_x"`    // Obstacles at or left of this x are recycled
	StartOffset     float64    `yaml:"start_offset"` // First obstacle spawns this far past the right edge
	Hitbox          core.Inset `yaml:"hitbox"`
}

// ProgressionConfig defines the score and speed-up rule.
type ProgressionConfig struct {
	BaseSpeed        float64 `yaml:"base_speed"`         // Scroll speed at session start
	DistancePerPoint float64 `yaml:"distance_per_point"` // Distance worth one point
	Threshold        int     `yaml:"threshold"`          // Score interval between speed-ups
	Increment        float64 `yaml:"increment"`          // Speed added per speed-up
}

// NotifyConfig defines the optional session-start hook.
type NotifyConfig struct {
	Endpoint string        `yaml:"endpoint"` // ws:// or wss:// URL; empty disables the hook
	Message  string        `yaml:"message"`
	Timeout  time.Duration `yaml:"timeout"`
}
