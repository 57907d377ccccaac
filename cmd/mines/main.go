// mines is a terminal minesweeper with undo, a time-based score and an SSH mode.
//
// Usage:
//
//	mines list               - List available boards
//	mines play [board]       - Play a board (default: mines)
//	mines menu               - Start menu to pick boards interactively
//	mines serve              - Start SSH server for remote play
//	mines scores [board]     - Show high scores and results
//
// Global flags:
//
//	--fps <rate>    - Set screen refresh rate (default: 4)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.tui-mines/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "mines"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper for the terminal. Reveal every safe cell without
touching a mine. Flags, undos and time cost points.

Available commands:
  list     - Show all available boards
  play     - Play a board directly
  menu     - Interactive board picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and results

Examples:
  mines list
  mines play mines_expert
  mines menu
  mines serve --ssh :2222
  mines scores mines_beginner`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 4, "Screen refresh rate (the timer needs at least 1)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-mines/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
