// twenty48 is a sliding-tile puzzle game for the terminal.
//
// Usage:
//
//	twenty48 play     - Play in a full-screen terminal UI
//	twenty48 repl     - Play with a line-based prompt (up/down/left/right)
//	twenty48 serve    - Start an SSH server for remote play
//
// Global flags:
//
//	--size <n>      - Board size (default: 4)
//	--seed <value>  - RNG seed for reproducible games (0 = random)
//	--config <path> - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ademidov/twenty48/internal/config"
)

var (
	// Global flags
	flagSize   int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twenty48",
	Short: "Play 2048 in your terminal",
	Long: `twenty48 is a terminal version of the 2048 sliding-tile puzzle.

Shift the tiles in one of four directions; equal neighbors merge into
one tile of double the value, and a new tile appears after every move.

Available commands:
  play     - Full-screen terminal UI
  repl     - Line-based prompt (type up/down/left/right)
  serve    - SSH server for remote play

Examples:
  twenty48 play
  twenty48 play --size 5
  twenty48 repl --seed 42
  twenty48 serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size (0 = use config, default 4)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the game config and applies the --size override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagSize != 0 {
		cfg.Board.Size = flagSize
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
