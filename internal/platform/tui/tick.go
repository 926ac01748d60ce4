// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the time a single frame may cover.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// frameClock turns tick timestamps into frame deltas.
type frameClock struct {
	last    time.Time
	nominal time.Duration
}

func newFrameClock(tickRate int) frameClock {
	return frameClock{nominal: tickInterval(tickRate)}
}

// reset forgets the previous tick; the next delta is the nominal interval.
func (c *frameClock) reset() {
	c.last = time.Time{}
}

// delta returns the time since the previous tick, clamped to
// [0, maxFrameDelta].
func (c *frameClock) delta(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return c.nominal
	}
	d := now.Sub(c.last)
	c.last = now

	switch {
	case d < 0:
		return 0
	case d > maxFrameDelta:
		return maxFrameDelta
	}
	return d
}
