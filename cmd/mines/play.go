package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the specified board (default: mines).

Controls:
  Arrows/hjkl  - Move cursor
  Space/Enter  - Reveal cell (left click)
  F            - Flag cell (right click)
  U            - Undo last action (-5 points)
  R            - New board
  Esc          - Back
  Q/Ctrl+C     - Quit

Scoring:
  Start with one point per cell. Each undo costs 5, each cell ever
  flagged costs 1, and every second costs 0.2. Scores are saved on a win.

Difficulty options (for the default board):
  easy   - 9x9, 10 mines
  normal - 16x16, 40 mines
  hard   - 16x30, 99 mines

Examples:
  mines play
  mines play mines_expert
  mines play --difficulty hard
  mines play --config ./my-mines.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	}
}

// applyGameFlags validates and hands the config flags to the game package.
func applyGameFlags() error {
	if flagDifficulty != "" {
		if _, err := config.PresetForDifficulty(config.DifficultyPreset(flagDifficulty)); err != nil {
			return err
		}
	}
	if flagConfig != "" {
		if _, err := config.LoadMines(flagConfig); err != nil {
			return err
		}
	}
	minesweeper.SetConfigPath(flagConfig)
	minesweeper.SetDifficultyPreset(flagDifficulty)
	return nil
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := minesweeper.BaseID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mines list' to see available boards.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
