package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/notify"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the endless runner in this terminal.

Controls:
  Enter/Click        - Start
  Space/W/Up/Click   - Jump
  P/Esc              - Pause
  R                  - Replay (after game over)
  Q/Ctrl+C           - Quit

Logs are discarded unless --log-file is given, since the game owns the
terminal.

Examples:
  runner play
  runner play --seed 42
  runner play --config ./my-runner.yaml
  runner play --notify ws://localhost:8080/ws/receive --log-file runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// Fail before entering the alt screen on a broken config; the game itself
	// falls back to defaults.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger("runner", io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	if flagFPS > 0 {
		runtime.TickRate = flagFPS
	}
	runtime.Seed = flagSeed

	runner.SetConfigPath(flagConfig)
	game, err := registry.Create("runner")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifier := notify.New(cfg.Notify, logger)
	logger.Info("starting", "screen", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH), "fps", runtime.TickRate, "notify", notifier.Enabled())

	if err := tui.Run(ctx, game, runtime, notifier); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("finished", "score", game.State().Score)
	return nil
}
