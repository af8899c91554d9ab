package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ademidov/twenty48/internal/game"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Play with a line-based prompt",
	Long: `Play by typing direction tokens at a prompt.

Each turn, type one of up/down/left/right. A recognized direction that
cannot slide or merge anything prints "Move not possible!" and leaves the
board unchanged; any other token prints "Invalid move". Type quit (or
press Ctrl+D) to exit.

Examples:
  twenty48 repl
  twenty48 repl --size 3 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	grid := game.NewGrid(cfg.Board.Size, cfg.Spawn.FourProbability, rng)

	printGrid(grid)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter move (up/down/left/right): ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}

		token := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if token == "quit" || token == "exit" {
			return
		}

		dir, err := game.ParseDirection(token)
		if err != nil {
			fmt.Println("Invalid move")
			continue
		}

		if grid.PlayMove(dir) {
			printGrid(grid)
		} else {
			fmt.Println("Move not possible!")
		}
	}
}

// printGrid writes the board as tab-separated tile values, 0 for empty.
func printGrid(grid *game.Grid) {
	for _, row := range grid.Cells() {
		for _, value := range row {
			fmt.Printf("%d\t", value)
		}
		fmt.Println()
	}
	fmt.Println()
}
