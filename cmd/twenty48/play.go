package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ademidov/twenty48/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a full-screen terminal UI",
	Long: `Start the game in a full-screen terminal UI.

Controls:
  Arrows/WASD/HJKL - Move tiles
  R                - Restart
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  twenty48 play
  twenty48 play --size 5
  twenty48 play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early; the model also tracks resize events.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Run(cfg, flagSeed, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
