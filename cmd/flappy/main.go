// flappy is a terminal Flappy game with a persistent best score.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show the best score and session history
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--tick <duration>   - Override the simulation tick (e.g. 30ms)
//	--db <path>         - Set database path (default: ~/.flappy/scores.db)
//	--config <path>     - Use a custom game config YAML
//	--difficulty <name> - Apply a difficulty preset
//	--log <path>        - Write logs to a file
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagTick       time.Duration
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through the pipes in your terminal",
	Long: `Flappy is a terminal arcade game: keep the bird in the air and fly
through the gaps between pipes. Every pipe passed is a point and the best
score is kept between runs.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best score and session history

Examples:
  flappy play
  flappy play --difficulty hard
  flappy serve --ssh :2222
  flappy scores --reset`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Simulation tick (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
