// asteroids is a terminal Asteroids game.
//
// Usage:
//
//	asteroids                 - Play (same as "asteroids play")
//	asteroids play            - Play in this terminal
//	asteroids serve           - Start SSH server for remote play
//	asteroids list            - List registered games
//	asteroids config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids in your terminal",
	Long: `Fly a ship through a field of drifting rocks and shoot them apart.
Large rocks split into medium and small ones; clear the field to win.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  list     - Show registered games
  config   - Print the effective configuration

Examples:
  asteroids
  asteroids play --difficulty hard
  asteroids play --seed 42 --mute
  asteroids serve --addr :2222
  asteroids config --config ./my-asteroids.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom asteroids config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
