// autoscroller is a side-scrolling arcade runner for the terminal.
//
// Usage:
//
//	autoscroller play              - Play in the terminal
//	autoscroller serve             - Start SSH server for remote play
//	autoscroller scores            - Show high scores
//	autoscroller scores delete <id> - Remove a score
//	autoscroller patterns          - List the terrain pattern catalog
//	autoscroller simulate          - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.autoscroller/scores.db)
//	--config <path>       - Runner config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--patterns <path>     - Pattern catalog YAML (default: built-in)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPatterns   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "autoscroller",
	Short: "Autoscroller - a side-scrolling runner in your terminal",
	Long: `Autoscroller is a side-scrolling arcade runner. The world scrolls on its
own; jump across generated terrain, dodge sensors and cables, and grab parts
and power-ups for points.

Available commands:
  play      - Play in the terminal
  serve     - Start SSH server for remote play
  scores    - View or edit high scores
  patterns  - List the terrain pattern catalog
  simulate  - Run a headless simulation

Examples:
  autoscroller play
  autoscroller play --difficulty hard
  autoscroller serve --ssh :2222
  autoscroller scores
  autoscroller simulate --ticks 3600 --seed 42`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.autoscroller/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagPatterns, "patterns", "", "Path to pattern catalog YAML (default: built-in)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(simulateCmd)
}
