package runner

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

const frameDelta = time.Second / 60

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	in.Delta = frameDelta
	return g.Step(in)
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("runner") {
		t.Fatal("runner should be registered")
	}
	g, err := registry.Create("runner")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "runner" || g.Title() != "Endless Runner" {
		t.Errorf("unexpected game %q / %q", g.ID(), g.Title())
	}
}

func TestGameViewportFromScreen(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	if snap.Viewport != (Viewport{W: 800, H: 480}) {
		t.Errorf("viewport = %+v, expected 800x480", snap.Viewport)
	}
}

func TestGameJump(t *testing.T) {
	g := newTestGame(t)
	step(g, core.ActionJump)

	snap := g.Snapshot()
	if snap.Player.State != Jumping {
		t.Fatalf("player state = %v, expected jumping", snap.Player.State)
	}
	if snap.Player.Y >= 410 {
		t.Errorf("player y = %g, expected above the start height", snap.Player.Y)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t)
	step(g)

	res := step(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	for i := 0; i < 20; i++ {
		step(g, core.ActionJump)
	}
	after := g.Snapshot()
	if after.Distance != before.Distance || after.Player.State != Grounded {
		t.Error("paused game should not advance or accept jumps")
	}

	res = step(g, core.ActionPause)
	if res.State.Paused {
		t.Error("second pause should resume")
	}
	if g.Snapshot().Distance <= before.Distance {
		t.Error("resumed game should advance")
	}
}

func TestGameUsesFrameDelta(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Delta = 100 * time.Millisecond
	g.Step(in)

	if d := g.Snapshot().Distance; !approx(d, 30) {
		t.Errorf("distance = %g, expected 300 * 0.1", d)
	}
}

func TestGameOverAndReplay(t *testing.T) {
	g := newTestGame(t)
	parkObstacles(g.session.field)
	g.session.field.Barriers.obstacles[0].X = 120

	res := step(g)
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}

	score := res.State.Score
	for i := 0; i < 10; i++ {
		res = step(g)
	}
	if res.State.Score != score {
		t.Error("score should be frozen after game over")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over screen should show GAME OVER")
	}
	if !strings.Contains(screen.String(), "barrier") {
		t.Error("game over screen should name the obstacle")
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 43})
	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("Reset() should start a new run, state %+v", g.State())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if got := screen.Get(12, 19); got != PlayerHead {
		t.Errorf("player head at (12, 19) = %q, expected %q", got, PlayerHead)
	}
	if got := screen.Get(0, 22); got != GroundChar {
		t.Errorf("ground at (0, 22) = %q, expected %q", got, GroundChar)
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected a score", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Spd: 300") {
		t.Errorf("HUD row = %q, expected the speed", screen.Row(0))
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() core.GameState {
		g := newTestGame(t)
		var state core.GameState
		for i := 0; i < 1200; i++ {
			var res core.StepResult
			if i%40 == 0 {
				res = step(g, core.ActionJump)
			} else {
				res = step(g)
			}
			state = res.State
			if state.GameOver {
				break
			}
		}
		return state
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed and inputs gave %+v and %+v", a, b)
	}
}
