package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// JumpState is the player's logical state.
type JumpState int

const (
	Grounded JumpState = iota
	Jumping
)

// String returns the state name.
func (s JumpState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Jumping:
		return "jumping"
	default:
		return "unknown"
	}
}

// arcPhase is the active half of a jump arc.
type arcPhase int

const (
	phaseNone arcPhase = iota
	phaseRising
	phaseFalling
)

// Player owns the player's position and jump state machine. X is fixed for
// the session; Y only changes while a jump arc is in flight.
type Player struct {
	X, Y  float64 // Sprite centre
	BaseY float64 // Grounded Y
	State JumpState

	cfg     config.PlayerConfig
	jump    config.JumpConfig
	phase   arcPhase
	elapsed float64 // Seconds into the current phase
}

// NewPlayer creates a grounded player positioned for the viewport.
func NewPlayer(cfg config.PlayerConfig, jump config.JumpConfig, vp Viewport) *Player {
	p := &Player{
		X:     cfg.X,
		BaseY: vp.H - cfg.StartYOffset,
		cfg:   cfg,
		jump:  jump,
	}
	p.Reset()
	return p
}

// Reset grounds the player at the start position.
func (p *Player) Reset() {
	p.Y = p.BaseY
	p.State = Grounded
	p.phase = phaseNone
	p.elapsed = 0
}

// RequestJump starts a jump arc. It has no effect while a jump is in flight
// and reports whether a new arc started.
func (p *Player) RequestJump() bool {
	if p.State == Jumping {
		return false
	}
	p.State = Jumping
	p.phase = phaseRising
	p.elapsed = 0
	return true
}

// Advance moves the arc forward by delta seconds. Time left over at the end
// of the rise carries into the fall.
func (p *Player) Advance(delta float64) {
	if p.State != Jumping {
		return
	}
	d := p.jump.PhaseDuration
	h := p.jump.Height
	p.elapsed += delta

	if p.phase == phaseRising {
		if p.elapsed < d {
			p.Y = p.BaseY - h*easeOutQuad(p.elapsed/d)
			return
		}
		p.elapsed -= d
		p.phase = phaseFalling
	}

	if p.elapsed < d {
		p.Y = p.BaseY - h + h*easeInQuad(p.elapsed/d)
		return
	}

	// Land exactly on the pre-jump height.
	p.Reset()
}

// Rising reports whether the player is in the up half of the arc.
func (p *Player) Rising() bool {
	return p.phase == phaseRising
}

// Bounds returns the rendered bounding box of the player sprite.
func (p *Player) Bounds() core.RectF {
	return core.NewRectF(p.X-p.cfg.Width/2, p.Y-p.cfg.Height/2, p.cfg.Width, p.cfg.Height)
}

// Hitbox returns the inset collision box of the player.
func (p *Player) Hitbox() core.RectF {
	return p.cfg.Hitbox.Apply(p.Bounds())
}

// easeOutQuad decelerates towards t=1.
func easeOutQuad(t float64) float64 {
	t = core.ClampF(t, 0, 1)
	return t * (2 - t)
}

// easeInQuad accelerates from t=0.
func easeInQuad(t float64) float64 {
	t = core.ClampF(t, 0, 1)
	return t * t
}
