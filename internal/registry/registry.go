// Package registry maps game ids to constructors. Game packages add
// themselves from init() and the hosts (play, serve, sim) look them up by id.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game is the core interface that every game must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "runner").
	// Used for CLI commands and the SSH server.
	ID() string

	// Title returns a human-readable name for display (e.g., "Endless Runner").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame covering in.Delta.
	// Input is abstracted to platform-level actions (Jump, Pause, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Factory builds a fresh game instance.
type Factory func() Game

// Entry describes one registered game.
type Entry struct {
	ID    string
	Title string
	New   Factory
}

// ErrUnknownGame is returned by Create for an id nothing registered.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	mu      sync.RWMutex
	entries = map[string]Entry{}
)

// Register records a game under e.ID. It panics on an empty id, a nil
// factory or a duplicate id, all of which are programming errors in an
// init() function.
func Register(e Entry) {
	if e.ID == "" || e.New == nil {
		panic("registry: entry needs an id and a factory")
	}
	if e.Title == "" {
		e.Title = e.ID
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[e.ID]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", e.ID))
	}
	entries[e.ID] = e
}

// List returns every registered entry ordered by id.
func List() []Entry {
	mu.RLock()
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b Entry) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.New(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
