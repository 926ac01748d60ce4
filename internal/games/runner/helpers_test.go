package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

const eps = 1e-9

// newTestSession builds a session over an 800x480 world with default tuning.
func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	return newSessionWith(t, Viewport{W: 800, H: 480}, seed, config.DefaultRunnerConfig())
}

func newSessionWith(t *testing.T, vp Viewport, seed int64, cfg config.RunnerConfig) *Session {
	t.Helper()
	s, err := NewSession(SessionConfig{Viewport: vp, Seed: seed, Tuning: cfg})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// parkObstacles moves every obstacle far to the right so that nothing
// collides or recycles during a test.
func parkObstacles(f *Field) {
	for _, pool := range f.Pools() {
		for i := range pool.obstacles {
			pool.obstacles[i].X = 1e6 + float64(i)*1e3
		}
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
