package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/notify"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Model is the Bubble Tea model for running a game: a start screen, then
// the game loop with replay after game over.
type Model struct {
	ctx        context.Context
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	fixedSeed  bool
	notifier   *notify.Notifier
	keyMapper  *KeyMapper
	start      StartScreen
	clock      frameClock
	inputFrame core.InputFrame
	gameState  core.GameState
	started    bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. A zero seed
// picks a time-based seed for every run; any other seed is reused on replay.
// The notifier may be nil.
func NewModel(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, notifier *notify.Notifier) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	km := NewKeyMapper()

	return Model{
		ctx:        ctx,
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		fixedSeed:  fixed,
		notifier:   notifier,
		keyMapper:  km,
		start:      NewStartScreen(game.Title(), km.Keys()),
		clock:      newFrameClock(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model. The game loop starts from the start screen.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.started {
		if m.keyMapper.IsStart(msg) {
			return m.startGame()
		}
		return m, nil
	}

	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleMouse treats a left click as START on the start screen and as a
// jump in game.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapMouse(msg) != core.ActionJump {
		return m, nil
	}
	if !m.started {
		return m.startGame()
	}
	m.inputFrame.Set(core.ActionJump)
	return m, nil
}

// startGame leaves the start screen. This is the only place the session
// start hook fires; replays do not fire it again.
func (m Model) startGame() (tea.Model, tea.Cmd) {
	m.started = true
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.clock.reset()
	m.notifier.SessionStarted(m.ctx)
	return m, tickCmd(m.config.TickRate)
}

// handleResize processes window resize events. A running session keeps its
// world size; the new size applies from the next run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.started {
		return m, nil
	}
	m.inputFrame.Delta = m.clock.delta(now)

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.started {
		return m.start.View(m.config.ScreenW, m.config.ScreenH)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Started reports whether the start screen has been left.
func (m Model) Started() bool {
	return m.started
}

// Run starts the Bubble Tea program with the given model.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, notifier *notify.Notifier) error {
	model := NewModel(ctx, game, cfg, notifier)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	notifier.Close()
	return err
}
