package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Progression converts distance into score and raises the scroll speed at
// fixed score intervals.
type Progression struct {
	Distance               float64
	Score                  int
	Speed                  float64
	LastSpeedIncreaseScore int

	cfg config.ProgressionConfig
}

// NewProgression creates a tracker at base speed.
func NewProgression(cfg config.ProgressionConfig) *Progression {
	p := &Progression{cfg: cfg}
	p.Reset()
	return p
}

// Reset returns to zero distance at base speed.
func (p *Progression) Reset() {
	p.Distance = 0
	p.Score = 0
	p.Speed = p.cfg.BaseSpeed
	p.LastSpeedIncreaseScore = 0
}

// Advance accumulates speed*delta of distance and applies the speed-up rule.
// The rule is a single comparison per call: a delta large enough to cross
// several thresholds at once still adds only one increment.
// Returns true when the speed increased.
func (p *Progression) Advance(delta float64) bool {
	p.Distance += p.Speed * delta
	p.Score = int(math.Floor(p.Distance / p.cfg.DistancePerPoint))

	if p.Score-p.LastSpeedIncreaseScore >= p.cfg.Threshold {
		p.Speed += p.cfg.Increment
		p.LastSpeedIncreaseScore = p.Score
		return true
	}
	return false
}
