// Package runner implements a side-scrolling endless runner. The player runs
// automatically and jumps over ground barriers while staying under birds;
// the score grows with distance and the scroll speed rises at fixed score
// intervals.
package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Visual characters for rendering
const (
	PlayerBody  = '█'
	PlayerHead  = '◆'
	PlayerLeg1  = '╱'
	PlayerLeg2  = '╲'
	BarrierChar = '▓'
	BirdBody    = '≈'
	GroundChar  = '═'
	GroundMark  = '▪'
)

// groundMarkEvery is the column spacing of the ground texture.
const groundMarkEvery = 8

// Game adapts a Session to the registry.Game contract used by the terminal host.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	cfg     config.RunnerConfig
	paused  bool
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

const (
	gameID    = "runner"
	gameTitle = "Endless Runner"
)

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return gameTitle
}

// Reset starts a fresh session sized to the screen. The viewport is captured
// here and kept until the next Reset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}

	vp := Viewport{
		W: float64(core.Max(runtime.ScreenW, 1)) * cfg.Viewport.CellWidth,
		H: float64(core.Max(runtime.ScreenH, 1)) * cfg.Viewport.CellHeight,
	}

	session, err := NewSession(SessionConfig{Viewport: vp, Seed: runtime.Seed, Tuning: cfg})
	if err != nil {
		cfg = config.DefaultRunnerConfig()
		vp = Viewport{
			W: float64(core.Max(runtime.ScreenW, 1)) * cfg.Viewport.CellWidth,
			H: float64(core.Max(runtime.ScreenH, 1)) * cfg.Viewport.CellHeight,
		}
		// Defaults always validate and the viewport is positive.
		session, _ = NewSession(SessionConfig{Viewport: vp, Seed: runtime.Seed, Tuning: cfg})
	}

	g.cfg = cfg
	g.session = session
}

// Step advances the game by one frame of in.Delta.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.GameOver() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.session.RequestJump()
	}

	g.session.Update(in.Delta.Seconds())

	return core.StepResult{State: g.State()}
}

// State returns the current game state. It is zero before the first Reset.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// Snapshot returns the session state for external renderers.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.session.Snapshot()
	proj := projection{cw: g.cfg.Viewport.CellWidth, ch: g.cfg.Viewport.CellHeight}

	g.drawGround(dst, proj, snap)

	for _, b := range snap.Barriers {
		drawBarrier(dst, proj.rect(b.Bounds()))
	}
	for _, b := range snap.Birds {
		drawBird(dst, proj.rect(b.Bounds()), snap.Frames)
	}

	drawPlayer(dst, proj, snap)

	// Draw HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))
	dst.DrawTextColored(16, 0, fmt.Sprintf(" Cleared: %d ", snap.Cleared), core.ColorGray)
	speedText := fmt.Sprintf(" Spd: %.0f ", snap.Speed)
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Hit a %s  |  R: replay  Q: quit", snap.Score, snap.HitBy))
	}
}

// projection maps world units to screen cells.
type projection struct {
	cw, ch float64
}

func (p projection) col(x float64) int {
	return int(math.Floor(x / p.cw))
}

func (p projection) row(y float64) int {
	return int(math.Floor(y / p.ch))
}

// rect returns the cells covered by a world rectangle, at least one cell.
func (p projection) rect(r core.RectF) core.Rect {
	x0, y0 := p.col(r.X), p.row(r.Y)
	x1, y1 := int(math.Ceil(r.Right()/p.cw)), int(math.Ceil(r.Bottom()/p.ch))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// drawGround draws the ground line and a texture row that scrolls with the
// track segments.
func (g *Game) drawGround(dst *core.Screen, proj projection, snap Snapshot) {
	groundRow := proj.row(snap.GroundY)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorBrown)

	segW := core.Max(proj.col(snap.Viewport.W), 1)
	for _, seg := range snap.Segments {
		start := proj.col(seg.X)
		for c := 0; c < segW; c += groundMarkEvery {
			dst.SetColored(start+c, groundRow+1, GroundMark, core.ColorGray)
		}
	}
}

func drawBarrier(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, BarrierChar, core.ColorGreen)
}

func drawBird(dst *core.Screen, r core.Rect, frames int) {
	wing := 'v'
	if (frames/8)%2 == 1 {
		wing = '^'
	}
	dst.DrawRect(r, BirdBody, core.ColorCyan)
	dst.SetColored(r.X, r.Y, wing, core.ColorCyan)
	dst.SetColored(r.Right()-1, r.Y, wing, core.ColorCyan)
}

// drawPlayer draws a small figure inside the player box:
//
//	 ◆█
//	███
//	╱ ╲
func drawPlayer(dst *core.Screen, proj projection, snap Snapshot) {
	pv := snap.Player
	box := proj.rect(core.NewRectF(pv.X-pv.W/2, pv.Y-pv.H/2, pv.W, pv.H))
	cx := proj.col(pv.X)
	top, legs := box.Y, box.Bottom()-1
	color := core.ColorBrightYellow
	if snap.GameOver {
		color = core.ColorBrightRed
	}

	dst.SetColored(cx, top, PlayerHead, color)
	dst.SetColored(cx+1, top, PlayerBody, color)
	for y := top + 1; y < legs; y++ {
		for x := cx - 1; x <= cx+1; x++ {
			dst.SetColored(x, y, PlayerBody, color)
		}
	}

	switch {
	case pv.State == Jumping:
		// In air - legs tucked
		dst.SetColored(cx-1, legs, PlayerLeg1, color)
		dst.SetColored(cx, legs, PlayerLeg2, color)
	case (snap.Frames/5)%2 == 0:
		dst.SetColored(cx-1, legs, PlayerLeg1, color)
		dst.SetColored(cx+1, legs, PlayerLeg2, color)
	default:
		dst.SetColored(cx, legs, PlayerLeg1, color)
		dst.SetColored(cx+1, legs, PlayerLeg2, color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

func init() {
	registry.Register(registry.Entry{
		ID:    gameID,
		Title: gameTitle,
		New:   func() registry.Game { return New() },
	})
}
