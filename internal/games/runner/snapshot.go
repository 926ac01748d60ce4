package runner

// PlayerView is the renderer's view of the player.
type PlayerView struct {
	X, Y   float64
	W, H   float64
	State  JumpState
	Rising bool
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Viewport Viewport
	GroundY  float64
	Segments [2]Segment
	Barriers []Obstacle
	Birds    []Obstacle
	Player   PlayerView

	Distance float64
	Score    int
	Speed    float64
	Cleared  int
	Frames   int

	GameOver bool
	HitBy    Variant // Valid only when GameOver
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	b := s.player.Bounds()
	return Snapshot{
		Viewport: s.cfg.Viewport,
		GroundY:  s.groundY,
		Segments: s.track.Segments(),
		Barriers: s.field.Barriers.Obstacles(),
		Birds:    s.field.Birds.Obstacles(),
		Player: PlayerView{
			X:      s.player.X,
			Y:      s.player.Y,
			W:      b.W,
			H:      b.H,
			State:  s.player.State,
			Rising: s.player.Rising(),
		},
		Distance: s.progression.Distance,
		Score:    s.progression.Score,
		Speed:    s.progression.Speed,
		Cleared:  s.cleared,
		Frames:   s.frames,
		GameOver: s.gameOver,
		HitBy:    s.hit.Variant,
	}
}
