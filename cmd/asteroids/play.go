package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var (
	flagMute    bool
	flagLogFile string
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Asteroids",
	Long: `Start a round of Asteroids in this terminal.

Controls:
  Left/A, Right/D  - Rotate
  Up/W             - Thrust
  Down/S           - Reverse thrust
  Space            - Fire
  P/Esc            - Pause
  Enter/R          - Restart (after the round ends)
  ?                - More keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Config values as written
  normal - A few extra rocks, moving faster
  hard   - Many extra rocks, moving much faster
  fixed  - Config values as written, never adjusted

Examples:
  asteroids play
  asteroids play --difficulty hard
  asteroids play --mute --log ./asteroids.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().StringVar(&flagLogFile, "log", "", "Write logs to this file")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	// Hand CLI settings to the game before creation
	asteroids.SetConfigPath(flagConfig)
	asteroids.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(asteroids.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if flagMute {
		cfg.Audio.Enabled = false
	}
	engine := audio.New(cfg.Audio, logger)
	switch err := engine.Init(); {
	case errors.Is(err, audio.ErrDisabled):
		logger.Info("audio disabled")
	case err != nil:
		// The game is playable without sound
		logger.Warn("audio unavailable", "error", err)
	default:
		defer engine.Close()
		if g, ok := game.(*asteroids.Game); ok {
			g.SetEventSink(engine)
		}
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, runtime, tui.Options{HoldTicks: cfg.Input.HoldTicks}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("game closed", "score", game.State().Score)
	return nil
}

// loadConfig resolves the effective config and applies the difficulty flag.
// An unreadable --config file is an error rather than a silent fallback.
func loadConfig() (config.AsteroidsConfig, string, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.AsteroidsConfig{}, "", err
	}
	if flagFPS <= 0 {
		return config.AsteroidsConfig{}, "", fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, source, err := config.ResolveAsteroids(flagConfig)
	if err != nil {
		return config.AsteroidsConfig{}, "", err
	}
	config.ApplyAsteroidsPreset(&cfg, preset)
	return cfg, source, nil
}

// openLogger returns a logger writing to path. The terminal belongs to the
// game while it runs, so without a path logs are discarded.
func openLogger(path string, debug bool) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
		Level:           level,
	})
	return logger, func() { _ = f.Close() }, nil
}
