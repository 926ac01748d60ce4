package runner

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Viewport is the visible world area in world units.
type Viewport struct {
	W, H float64
}

// SessionConfig is the immutable input of a session.
type SessionConfig struct {
	Viewport Viewport
	Seed     int64
	Tuning   config.RunnerConfig
}

// Session runs the per-frame pipeline and owns the game-over flag. It is not
// safe for concurrent use; the host loop is its only caller.
type Session struct {
	cfg     SessionConfig
	groundY float64

	rng         *rand.Rand
	track       *Track
	field       *Field
	player      *Player
	progression *Progression

	cleared  int
	frames   int
	gameOver bool
	hit      Obstacle
}

// NewSession validates cfg and builds a session in its start state.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Viewport.W <= 0 || cfg.Viewport.H <= 0 {
		return nil, fmt.Errorf("runner: invalid viewport %gx%g", cfg.Viewport.W, cfg.Viewport.H)
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("runner: invalid config: %w", err)
	}

	t := cfg.Tuning
	s := &Session{
		cfg:     cfg,
		groundY: cfg.Viewport.H - t.Track.GroundOffset,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}
	s.track = NewTrack(cfg.Viewport.W, t.Track.Epsilon)
	s.field = NewField(t, cfg.Viewport, s.groundY, s.rng)
	s.player = NewPlayer(t.Player, t.Jump, cfg.Viewport)
	s.progression = NewProgression(t.Progression)
	return s, nil
}

// Reset restores the exact start state, including the obstacle layout drawn
// from the session seed.
func (s *Session) Reset() {
	s.rng.Seed(s.cfg.Seed)
	s.progression.Reset()
	s.track.Reset()
	s.field.Reset()
	s.player.Reset()
	s.cleared = 0
	s.frames = 0
	s.gameOver = false
	s.hit = Obstacle{}
}

// Update advances the simulation by delta seconds. After game over it does
// nothing until Reset.
func (s *Session) Update(delta float64) {
	if s.gameOver {
		return
	}
	if delta < 0 {
		delta = 0
	}
	s.frames++

	s.progression.Advance(delta)
	speed := s.progression.Speed
	s.track.Advance(delta, speed)
	s.field.Advance(delta, speed)
	s.player.Advance(delta)

	for _, pool := range s.field.Pools() {
		s.cleared += pool.MarkCleared(s.player.X)
	}

	if o, hit := Hit(s.player.Hitbox(), s.field); hit {
		s.gameOver = true
		s.hit = o
	}
}

// RequestJump forwards a jump request to the player unless the session is
// over. Reports whether a new jump arc started.
func (s *Session) RequestJump() bool {
	if s.gameOver {
		return false
	}
	return s.player.RequestJump()
}

// GameOver reports whether the player has hit an obstacle.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Score returns the current (or final) score.
func (s *Session) Score() int {
	return s.progression.Score
}

// Speed returns the current scroll speed.
func (s *Session) Speed() float64 {
	return s.progression.Speed
}

// GroundY returns the ground line y.
func (s *Session) GroundY() float64 {
	return s.groundY
}

// Viewport returns the session viewport.
func (s *Session) Viewport() Viewport {
	return s.cfg.Viewport
}
