package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/autoscroller/internal/game"
	"github.com/vovakirdan/autoscroller/internal/platform/tui"
	"github.com/vovakirdan/autoscroller/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the runner in the terminal.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump
  R                - Respawn
  P                - Pause
  N                - New run (paused or game over)
  Esc/B            - Back to menu
  Tab              - High scores (menu)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Five lives, slower world
  normal - Three lives
  hard   - Two lives, faster world
  fixed  - Three lives, difficulty curve never progresses

Examples:
  autoscroller play
  autoscroller play --difficulty easy
  autoscroller play --patterns ./my-patterns.yaml
  autoscroller play --log-file ~/.autoscroller/autoscroller.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
}

// openLogger returns a logger writing to path, or a silent one. The TUI owns
// the terminal, so logs never go to stderr during play.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "autoscroller",
		Level:           log.DebugLevel,
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}
	lib, err := loadPatterns()
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	opts := []game.Option{game.WithLogger(logger)}
	if store != nil {
		opts = append(opts, game.WithStore(store))
		defer store.Close()
	}

	rt := runtimeConfig()
	logger.Info("starting", "seed", rt.Seed, "fps", rt.TickRate, "patterns", lib.Len())

	g := game.New(cfg, lib, rt, opts...)
	if err := tui.Run(g, store, rt); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
