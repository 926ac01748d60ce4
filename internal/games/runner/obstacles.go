package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Variant identifies the obstacle kind of a pool.
type Variant int

const (
	Barrier Variant = iota // Ground-anchored obstacle, jumped over
	Bird                   // Airborne obstacle, run under
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Barrier:
		return "barrier"
	case Bird:
		return "bird"
	default:
		return "unknown"
	}
}

// Obstacle is one recyclable entity of a pool.
type Obstacle struct {
	Variant Variant
	X       float64 // Horizontal centre
	Y       float64 // Bottom edge, fixed per variant
	W, H    float64
	cleared bool // Passed behind the player since the last recycle
}

// Bounds returns the rendered bounding box of the obstacle.
func (o Obstacle) Bounds() core.RectF {
	return core.NewRectF(o.X-o.W/2, o.Y-o.H, o.W, o.H)
}

// Pool is a fixed-size set of obstacles of one variant. Obstacles are never
// destroyed; an obstacle that leaves the screen is moved past the pool's
// rightmost obstacle.
type Pool struct {
	variant   Variant
	cfg       config.PoolConfig
	y         float64
	obstacles []Obstacle
	rng       *rand.Rand
}

// NewPool creates an empty pool. Obstacles sit with their bottom edge
// cfg.Altitude above groundY.
func NewPool(variant Variant, cfg config.PoolConfig, groundY float64, rng *rand.Rand) *Pool {
	return &Pool{
		variant: variant,
		cfg:     cfg,
		y:       groundY - cfg.Altitude,
		rng:     rng,
	}
}

// PoolSize returns how many obstacles a pool needs so that some always wait
// beyond the right edge of a viewport of the given width.
func PoolSize(viewportW, spacing float64) int {
	return int(math.Ceil(viewportW/spacing)) + 2
}

// Spawn (re)creates the pool. The first obstacle sits StartOffset past the
// right edge of the viewport.
func (p *Pool) Spawn(viewportW float64) {
	n := PoolSize(viewportW, p.cfg.Spacing)
	p.obstacles = p.obstacles[:0]

	x := viewportW + p.cfg.StartOffset
	for i := 0; i < n; i++ {
		if i > 0 {
			x += p.gap()
		}
		p.obstacles = append(p.obstacles, Obstacle{
			Variant: p.variant,
			X:       x,
			Y:       p.y,
			W:       p.cfg.Width,
			H:       p.cfg.Height,
		})
	}
}

// gap draws a spacing from the pool's distribution: base spacing plus a
// uniform jitter in [0, Jitter).
func (p *Pool) gap() float64 {
	return p.cfg.Spacing + p.rng.Float64()*p.cfg.Jitter
}

// Advance shifts every obstacle left and recycles those past the threshold.
// Returns the number of recycled obstacles.
func (p *Pool) Advance(delta, speed float64) int {
	shift := speed * p.cfg.SpeedMultiplier * delta
	for i := range p.obstacles {
		p.obstacles[i].X -= shift
	}

	recycled := 0
	for i := range p.obstacles {
		if p.obstacles[i].X > p.cfg.RecycleX {
			continue
		}
		// Attach past the current rightmost obstacle, including any
		// obstacle already recycled this frame.
		p.obstacles[i].X = p.MaxX() + p.gap()
		p.obstacles[i].cleared = false
		recycled++
	}
	return recycled
}

// MaxX returns the x of the rightmost obstacle, or -Inf for an empty pool.
func (p *Pool) MaxX() float64 {
	maxX := math.Inf(-1)
	for _, o := range p.obstacles {
		if o.X > maxX {
			maxX = o.X
		}
	}
	return maxX
}

// MarkCleared flags obstacles that moved behind playerX and returns how
// many were newly flagged.
func (p *Pool) MarkCleared(playerX float64) int {
	n := 0
	for i := range p.obstacles {
		if !p.obstacles[i].cleared && p.obstacles[i].X < playerX {
			p.obstacles[i].cleared = true
			n++
		}
	}
	return n
}

// Hitbox returns the collision box of an obstacle of this pool.
func (p *Pool) Hitbox(o Obstacle) core.RectF {
	return p.cfg.Hitbox.Apply(o.Bounds())
}

// Obstacles returns a copy of the pool in iteration order.
func (p *Pool) Obstacles() []Obstacle {
	out := make([]Obstacle, len(p.obstacles))
	copy(out, p.obstacles)
	return out
}

// Len returns the pool size.
func (p *Pool) Len() int {
	return len(p.obstacles)
}

// Variant returns the obstacle kind of the pool.
func (p *Pool) Variant() Variant {
	return p.variant
}

// Field holds the barrier and bird pools.
type Field struct {
	Barriers *Pool
	Birds    *Pool
	width    float64
}

// NewField creates and spawns both pools. They share the session RNG.
func NewField(cfg config.RunnerConfig, vp Viewport, groundY float64, rng *rand.Rand) *Field {
	f := &Field{
		Barriers: NewPool(Barrier, cfg.Barriers, groundY, rng),
		Birds:    NewPool(Bird, cfg.Birds, groundY, rng),
		width:    vp.W,
	}
	f.Reset()
	return f
}

// Reset respawns both pools.
func (f *Field) Reset() {
	f.Barriers.Spawn(f.width)
	f.Birds.Spawn(f.width)
}

// Advance moves and recycles both pools.
func (f *Field) Advance(delta, speed float64) {
	f.Barriers.Advance(delta, speed)
	f.Birds.Advance(delta, speed)
}

// Pools returns the pools in collision evaluation order.
func (f *Field) Pools() [2]*Pool {
	return [2]*Pool{f.Barriers, f.Birds}
}
